// Package jsonschema holds the JSON Schema subset used to describe chart
// documents for editors and validators.
package jsonschema

// Draft is the dialect URI written to the root schema.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	SchemaURI   string `json:"$schema,omitempty"`
	ID          string `json:"$id,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Format  string `json:"format,omitempty"`
	Enum    []any  `json:"enum,omitempty"`
	Default any    `json:"default,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	PatternProperties    map[string]*Schema `json:"patternProperties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
	AnyOf []*Schema `json:"anyOf,omitempty"`

	Defs map[string]*Schema `json:"$defs,omitempty"`
}

// String returns {"type":"string"} with an optional description.
func String(desc string) *Schema { return &Schema{Type: "string", Description: desc} }

// Number returns {"type":"number"}.
func Number() *Schema { return &Schema{Type: "number"} }

// Boolean returns {"type":"boolean"}.
func Boolean() *Schema { return &Schema{Type: "boolean"} }

// Enum returns a string schema restricted to values.
func Enum(values ...string) *Schema {
	s := &Schema{Type: "string"}
	for _, v := range values {
		s.Enum = append(s.Enum, v)
	}
	return s
}

// Ref returns a reference to a definition in the root $defs.
func Ref(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Object returns a closed object schema with the given properties.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: props, Required: required, AdditionalProperties: false}
}

// ArrayOf returns an array schema of items.
func ArrayOf(items *Schema) *Schema { return &Schema{Type: "array", Items: items} }

// IntPtr returns a pointer to n, for MinLength and the item bounds.
func IntPtr(n int) *int { return &n }

// AnyOf returns a schema matching any of alts.
func AnyOf(alts ...*Schema) *Schema { return &Schema{AnyOf: alts} }
