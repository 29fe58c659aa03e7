// Package jsonschema holds the descriptor document emitted by the schema
// algebra's second interpreter mode.
package jsonschema

// Schema is a minimal JSON Schema representation used for export. Keep this
// struct small and extend incrementally.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Const       any    `json:"const,omitempty" yaml:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`

	// Union
	OneOf         []*Schema      `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
}

// Discriminator names the property that selects a oneOf alternative,
// following the OpenAPI discriminator object.
type Discriminator struct {
	PropertyName string `json:"propertyName" yaml:"propertyName"`
}
