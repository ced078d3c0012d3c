package chartopts

import (
	"math"
	"strings"
)

type variant uint8

const (
	variantNone variant = iota
	variantNumber
	variantNumbers
	variantFunction
	variantString
	variantGradient
)

// JSFunction is JavaScript source for a callable (for example a label
// formatter). It is written into the chart options verbatim, unquoted.
type JSFunction string

// IsZero reports whether no source is set.
func (f JSFunction) IsZero() bool { return strings.TrimSpace(string(f)) == "" }

func (f *JSFunction) UnmarshalJSON([]byte) error { return unsupportedDecode("JSFunction") }

func encodeFunction(e *Encoder, f JSFunction) error {
	if f.IsZero() {
		return e.Null()
	}
	return e.Raw(string(f))
}

// NumberArrayOrFunction holds exactly one of a number, a number sequence or
// a callable. The zero value is unset.
type NumberArrayOrFunction struct {
	kind    variant
	number  float64
	numbers []float64
	fn      JSFunction
}

// Number returns a value holding a single number.
func Number(x float64) NumberArrayOrFunction {
	return NumberArrayOrFunction{kind: variantNumber, number: x}
}

// Numbers returns a value holding a number sequence. The sequence is copied.
func Numbers(xs ...float64) NumberArrayOrFunction {
	return NumberArrayOrFunction{kind: variantNumbers, numbers: append([]float64{}, xs...)}
}

// Func returns a value holding a callable.
func Func(fn JSFunction) NumberArrayOrFunction {
	return NumberArrayOrFunction{kind: variantFunction, fn: fn}
}

// NumberArrayOrFunctionOf builds a value from optional arms. Exactly one of
// number, numbers (non-nil) or fn (non-empty) must be supplied.
func NumberArrayOrFunctionOf(number *float64, numbers []float64, fn JSFunction) (NumberArrayOrFunction, error) {
	set := 0
	var out NumberArrayOrFunction
	if number != nil {
		set++
		out = Number(*number)
	}
	if numbers != nil {
		set++
		out = Numbers(numbers...)
	}
	if !fn.IsZero() {
		set++
		out = Func(fn)
	}
	if set != 1 {
		return NumberArrayOrFunction{}, invalidVariant("NumberArrayOrFunction", set)
	}
	return out, nil
}

func (v NumberArrayOrFunction) IsZero() bool { return v.kind == variantNone }

// Number returns the single number arm.
func (v NumberArrayOrFunction) Number() (float64, bool) {
	return v.number, v.kind == variantNumber
}

// Numbers returns the sequence arm.
func (v NumberArrayOrFunction) Numbers() ([]float64, bool) {
	return append([]float64(nil), v.numbers...), v.kind == variantNumbers
}

// Function returns the callable arm.
func (v NumberArrayOrFunction) Function() (JSFunction, bool) {
	return v.fn, v.kind == variantFunction
}

func (v *NumberArrayOrFunction) UnmarshalJSON([]byte) error {
	return unsupportedDecode("NumberArrayOrFunction")
}

func (v NumberArrayOrFunction) encode(e *Encoder) error {
	switch v.kind {
	case variantNumber:
		return e.Number(v.number)
	case variantNumbers:
		return encodeNumberArray(e, v.numbers)
	case variantFunction:
		return encodeFunction(e, v.fn)
	default:
		return e.Null()
	}
}

// NumberOrNumberArray holds a number or a number sequence, as used by axis
// index options that accept 0 or [0, 1].
type NumberOrNumberArray struct {
	kind    variant
	number  float64
	numbers []float64
}

// Scalar returns a value holding a single number.
func Scalar(x float64) NumberOrNumberArray {
	return NumberOrNumberArray{kind: variantNumber, number: x}
}

// Vector returns a value holding a number sequence. The sequence is copied.
func Vector(xs ...float64) NumberOrNumberArray {
	return NumberOrNumberArray{kind: variantNumbers, numbers: append([]float64{}, xs...)}
}

// NumberOrNumberArrayOf builds a value from optional arms. Exactly one of
// number or numbers (non-nil) must be supplied.
func NumberOrNumberArrayOf(number *float64, numbers []float64) (NumberOrNumberArray, error) {
	switch {
	case number != nil && numbers == nil:
		return Scalar(*number), nil
	case number == nil && numbers != nil:
		return Vector(numbers...), nil
	case number == nil:
		return NumberOrNumberArray{}, invalidVariant("NumberOrNumberArray", 0)
	default:
		return NumberOrNumberArray{}, invalidVariant("NumberOrNumberArray", 2)
	}
}

func (v NumberOrNumberArray) IsZero() bool { return v.kind == variantNone }

func (v NumberOrNumberArray) Number() (float64, bool) { return v.number, v.kind == variantNumber }

func (v NumberOrNumberArray) Numbers() ([]float64, bool) {
	return append([]float64(nil), v.numbers...), v.kind == variantNumbers
}

func (v *NumberOrNumberArray) UnmarshalJSON([]byte) error {
	return unsupportedDecode("NumberOrNumberArray")
}

func (v NumberOrNumberArray) encode(e *Encoder) error {
	switch v.kind {
	case variantNumber:
		return e.Number(v.number)
	case variantNumbers:
		return encodeNumberArray(e, v.numbers)
	default:
		return e.Null()
	}
}

// NumberOrString holds a number or a string, as used by position and size
// options that accept 10, "20%" or "center".
type NumberOrString struct {
	kind   variant
	number float64
	str    string
}

// Pixels returns a numeric value.
func Pixels(x float64) NumberOrString { return NumberOrString{kind: variantNumber, number: x} }

// Percent returns a percentage string such as "25%".
func Percent(p float64) NumberOrString {
	return NumberOrString{kind: variantString, str: formatFloat(p, 64) + "%"}
}

// Text returns a string value such as "center".
func Text(s string) NumberOrString { return NumberOrString{kind: variantString, str: s} }

// NumberOrStringOf builds a value from optional arms; exactly one must be set.
func NumberOrStringOf(number *float64, s *string) (NumberOrString, error) {
	switch {
	case number != nil && s == nil:
		return Pixels(*number), nil
	case number == nil && s != nil:
		return Text(*s), nil
	case number != nil:
		return NumberOrString{}, invalidVariant("NumberOrString", 2)
	default:
		return NumberOrString{}, invalidVariant("NumberOrString", 0)
	}
}

func (v NumberOrString) IsZero() bool { return v.kind == variantNone }

func (v NumberOrString) Number() (float64, bool) { return v.number, v.kind == variantNumber }

func (v NumberOrString) Text() (string, bool) { return v.str, v.kind == variantString }

func (v *NumberOrString) UnmarshalJSON([]byte) error { return unsupportedDecode("NumberOrString") }

func (v NumberOrString) encode(e *Encoder) error {
	switch v.kind {
	case variantNumber:
		return e.Number(v.number)
	case variantString:
		return e.String(v.str)
	default:
		return e.Null()
	}
}

// StringOrFunction holds a string template or a callable, as used by
// formatter options.
type StringOrFunction struct {
	kind variant
	str  string
	fn   JSFunction
}

// Template returns a string formatter such as "{b}: {c}".
func Template(s string) StringOrFunction { return StringOrFunction{kind: variantString, str: s} }

// Callback returns a callable formatter.
func Callback(fn JSFunction) StringOrFunction {
	return StringOrFunction{kind: variantFunction, fn: fn}
}

// StringOrFunctionOf builds a value from optional arms; exactly one must be set.
func StringOrFunctionOf(s *string, fn JSFunction) (StringOrFunction, error) {
	switch {
	case s != nil && fn.IsZero():
		return Template(*s), nil
	case s == nil && !fn.IsZero():
		return Callback(fn), nil
	case s != nil:
		return StringOrFunction{}, invalidVariant("StringOrFunction", 2)
	default:
		return StringOrFunction{}, invalidVariant("StringOrFunction", 0)
	}
}

func (v StringOrFunction) IsZero() bool { return v.kind == variantNone }

func (v StringOrFunction) Template() (string, bool) { return v.str, v.kind == variantString }

func (v StringOrFunction) Function() (JSFunction, bool) { return v.fn, v.kind == variantFunction }

func (v *StringOrFunction) UnmarshalJSON([]byte) error { return unsupportedDecode("StringOrFunction") }

func (v StringOrFunction) encode(e *Encoder) error {
	switch v.kind {
	case variantString:
		return e.String(v.str)
	case variantFunction:
		return encodeFunction(e, v.fn)
	default:
		return e.Null()
	}
}

// encodeNumberArray writes xs as a single JSON array segment.
func encodeNumberArray(e *Encoder, xs []float64) error {
	b := make([]byte, 0, 2+len(xs)*4)
	b = append(b, '[')
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return issueAt(e.Path(), CodeInvalidNumber, "NaN and Inf are not representable", nil)
		}
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, formatFloat(x, 64)...)
	}
	b = append(b, ']')
	return e.rawJSON(b)
}
