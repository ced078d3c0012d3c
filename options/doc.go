// Package options holds the chart option records: the typed tree handed to
// chartopts.Serialize.
//
// Every field is optional. Pointers, slices, maps and interfaces are unset
// when nil; the polymorphic values from package chartopts are unset at their
// zero value; enumerations are unset at zero. Field names follow the
// lower-camel-case policy of the encoder, so most records carry no tags.
package options
