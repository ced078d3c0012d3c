package chartopts

import (
	"reflect"
)

// Rule pairs a value shape with its wire encoding. Rules are registered in
// a Config; for a given type the most recently registered matching rule wins.
type Rule interface {
	// Handles reports whether the rule encodes values of type t. It is
	// consulted once per type and the answer is memoized.
	Handles(t reflect.Type) bool
	// Encode writes exactly one value for v. Writing zero or several values
	// fails the encode with CodeRuleViolation.
	Encode(e *Encoder, v reflect.Value) error
}

// RuleFor returns a Rule that handles exactly the type T.
func RuleFor[T any](fn func(e *Encoder, v T) error) Rule {
	return &typedRule[T]{t: reflect.TypeFor[T](), fn: fn}
}

type typedRule[T any] struct {
	t  reflect.Type
	fn func(e *Encoder, v T) error
}

func (r *typedRule[T]) Handles(t reflect.Type) bool { return t == r.t }

func (r *typedRule[T]) Encode(e *Encoder, v reflect.Value) error {
	return r.fn(e, v.Interface().(T))
}

// RuleFunc adapts a predicate and an encode function into a Rule.
type RuleFunc struct {
	Match func(t reflect.Type) bool
	Write func(e *Encoder, v reflect.Value) error
}

func (r RuleFunc) Handles(t reflect.Type) bool              { return r.Match(t) }
func (r RuleFunc) Encode(e *Encoder, v reflect.Value) error { return r.Write(e, v) }

// Typed is implemented by option records that carry a discriminating "type"
// member, such as series and data zoom components. The encoder writes it as
// the first member unless the record has its own "type" field.
type Typed interface {
	OptionType() string
}

// Input is everything needed to render one chart.
type Input struct {
	// Options is the configuration tree, typically *options.ChartOptions.
	Options     any
	Maps        []MapDefinition
	DataSources []*ExternalDataSource
}

// Settings configures a rule set.
type Settings struct {
	// Rules are caller extension rules. They take precedence over the
	// built-in rules but not over the external data rules.
	Rules []Rule
	// GraphicNamespace is the global the gradient constructors hang off.
	// Default: "echarts".
	GraphicNamespace string
	// RuntimeNamespace is the runtime object exposing getDataSource.
	// Default: "window.chartopts".
	RuntimeNamespace string
	// Indent, when non-empty, pretty-prints the chart options.
	Indent string
	// MaxDepth bounds container nesting. Default: 64.
	MaxDepth int
}

// SerializeOpt bundles per-call serialization options.
type SerializeOpt struct {
	Settings Settings
	// NoCache builds a private Config from Settings instead of using the
	// shared one. The shared Config is built once, from the Settings of the
	// first caching call; Settings passed to later caching calls, including
	// extension rules, are ignored.
	NoCache bool
	// InlineMaps emits the map definitions into Payload.Maps.
	InlineMaps bool
}

// Ptr returns a pointer to v, for optional option fields.
func Ptr[T any](v T) *T { return &v }
