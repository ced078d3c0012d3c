package chartopts

import (
	"unicode"
	"unicode/utf8"
)

// Enum is implemented by fixed-vocabulary option values. EnumName returns
// the identifier name of the member (for example "Horizontal"); an empty
// name marks the zero, unset value.
type Enum interface {
	EnumName() string
}

// BoolEnum is implemented by enumerations that mix true boolean members
// with named modes. Members for which EnumBool reports ok encode as the bare
// tokens true and false.
type BoolEnum interface {
	Enum
	EnumBool() (value bool, ok bool)
}

// EnumToken returns the wire token of e: its name with the first character
// lower-cased.
func EnumToken(e Enum) string {
	return lowerFirst(e.EnumName())
}

// EnumNameOf looks up the member name in a table indexed by the member value.
// Out-of-range values yield "".
func EnumNameOf[E ~int | ~int8 | ~uint8](names []string, v E) string {
	i := int(v)
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || !unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

func encodeEnum(e *Encoder, v Enum) error {
	if b, ok := v.(BoolEnum); ok {
		if val, isBool := b.EnumBool(); isBool {
			return e.Bool(val)
		}
	}
	name := v.EnumName()
	if name == "" {
		return issueAt(e.Path(), CodeInvalidEnum, "enumeration value has no name", nil)
	}
	return e.String(lowerFirst(name))
}
