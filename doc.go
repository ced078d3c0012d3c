// Package chartopts encodes typed chart configuration trees into the option
// payloads consumed by the ECharts runtime.
//
// It provides:
//
// - Rule-based encoding of a Go value tree into JSON-like text that may
// embed raw JavaScript (functions, gradient constructors, data lookups)
// - Closed one-of values (NumberArrayOrFunction, NumberOrString,
// StringOrFunction, Color) validated at construction
// - Deferred references to externally fetched data (ExternalDataSourceRef)
// resolved by the runtime, plus the strict-JSON fetch commands that feed it
// - A shared, lazily built rule set (Config) with extension rules
//
// Design policy:
// - Encoding is one-directional; the wire-only types refuse to decode.
// - Raw expressions are kept as separate output segments so they stay auditable.
// - Option record types live under options/, runtime glue under chart/,
// extension codecs under codec/ and the CLI under cmd/chartopts.
//
// Typical usage:
//
//	sales := chartopts.NewExternalDataSource("/api/sales")
//	opts := &options.ChartOptions{ /* ... */ Dataset: &options.Dataset{Source: sales.RefPath("rows")} }
//	p, err := chartopts.Serialize(chartopts.Input{
//		Options:     opts,
//		DataSources: []*chartopts.ExternalDataSource{sales},
//	}, chartopts.SerializeOpt{})
//
//	// p.Chart is evaluated by the runtime after it has fetched p.Fetch.
package chartopts
