// Package codec provides ready-made extension rules for chartopts.
//
// Extension rules are passed through chartopts.Settings.Rules and take
// precedence over the built-in rules for the types they handle:
//
//	p, err := chartopts.Serialize(in, chartopts.SerializeOpt{
//		Settings: chartopts.Settings{Rules: []chartopts.Rule{codec.TimeUnixMillis()}},
//		NoCache:  true,
//	})
package codec
