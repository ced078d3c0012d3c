package chartopts

import (
	"reflect"
	"strings"
	"unicode"
)

// ResolveStructKey resolves the wire name of a struct field.
// Priority: json tag name > lower-camel-case field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) (name string, omitEmpty bool) {
	if jt, ok := sf.Tag.Lookup("json"); ok {
		if jt == "-" {
			return "-", false
		}
		tagName, opts, _ := strings.Cut(jt, ",")
		for _, o := range strings.Split(opts, ",") {
			if strings.TrimSpace(o) == "omitempty" {
				omitEmpty = true
			}
		}
		if tagName != "" {
			return tagName, omitEmpty
		}
	}
	return CamelCase(sf.Name), omitEmpty
}

// CamelCase lower-cases the leading run of upper-case letters of name,
// keeping the last one when it starts a new word: XAxisIndex -> xAxisIndex,
// URL -> url, HTMLContent -> htmlContent.
func CamelCase(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return name
	}
	for i := 0; i < len(runes); i++ {
		if i == 1 && !unicode.IsUpper(runes[i]) {
			break
		}
		hasNext := i+1 < len(runes)
		if i > 0 && hasNext && !unicode.IsUpper(runes[i+1]) {
			if runes[i+1] == ' ' {
				runes[i] = unicode.ToLower(runes[i])
			}
			break
		}
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
