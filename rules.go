package chartopts

import (
	"fmt"
	"reflect"
)

var dataSourceType = reflect.TypeFor[ExternalDataSource]()

// builtinRules returns the rule set every Config starts with, in
// registration order.
func builtinRules() []Rule {
	return []Rule{
		RuleFor(encodeDate),
		RuleFor(encodeDateTime),
		RuleFor(encodeOffsetDateTime),
		enumRule{},
		RuleFor(func(e *Encoder, v JSFunction) error { return encodeFunction(e, v) }),
		RuleFor(func(e *Encoder, v NumberArrayOrFunction) error { return v.encode(e) }),
		RuleFor(func(e *Encoder, v NumberOrNumberArray) error { return v.encode(e) }),
		RuleFor(func(e *Encoder, v NumberOrString) error { return v.encode(e) }),
		RuleFor(func(e *Encoder, v StringOrFunction) error { return v.encode(e) }),
		RuleFor(func(e *Encoder, v Color) error { return v.encode(e) }),
	}
}

// dataRules are registered after any extension rules.
func dataRules() []Rule {
	return []Rule{
		dataSourceRule{},
		RuleFor(encodeDataSourceRef),
	}
}

// enumRule encodes every non-pointer type implementing Enum.
type enumRule struct{}

func (enumRule) Handles(t reflect.Type) bool {
	return t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && t.Implements(enumType)
}

func (enumRule) Encode(e *Encoder, v reflect.Value) error {
	return encodeEnum(e, v.Interface().(Enum))
}

// dataSourceRule encodes an embedded *ExternalDataSource as a reference to
// the root of its data.
type dataSourceRule struct{}

func (dataSourceRule) Handles(t reflect.Type) bool {
	return t == dataSourceType || t == reflect.PointerTo(dataSourceType)
}

func (dataSourceRule) Encode(e *Encoder, v reflect.Value) error {
	if v.Kind() != reflect.Pointer {
		if !v.CanAddr() {
			return issueAt(e.Path(), CodeUnsupportedType, fmt.Sprintf("%s must be referenced by pointer", dataSourceType), nil)
		}
		v = v.Addr()
	}
	return encodeDataSourceRef(e, v.Interface().(*ExternalDataSource).Ref())
}

