// Package openapi renders composed schema descriptors into an OpenAPI-style
// YAML document, for consumers that publish the descriptor rather than read
// JSON Schema directly.
package openapi

import (
	"errors"

	js "github.com/piotrkosecki/endpoints/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is the subset of an OpenAPI 3 document this package emits:
// metadata plus components.schemas.
type Document struct {
	OpenAPI    string     `yaml:"openapi" json:"openapi"`
	Info       Info       `yaml:"info" json:"info"`
	Components Components `yaml:"components" json:"components"`
}

// Info carries the document title and version.
type Info struct {
	Title   string `yaml:"title" json:"title"`
	Version string `yaml:"version" json:"version"`
}

// Components holds the named schema descriptors.
type Components struct {
	Schemas map[string]*js.Schema `yaml:"schemas" json:"schemas"`
}

// Render marshals the named descriptors into an OpenAPI 3 YAML document.
// Schema names must be non-empty; yaml.v3 emits map keys sorted, so output
// is deterministic.
func Render(title, version string, schemas map[string]*js.Schema) ([]byte, error) {
	if len(schemas) == 0 {
		return nil, errors.New("openapi: no schemas to render")
	}
	for name := range schemas {
		if name == "" {
			return nil, errors.New("openapi: empty schema name")
		}
	}
	doc := Document{
		OpenAPI: "3.0.3",
		Info:    Info{Title: title, Version: version},
		Components: Components{
			Schemas: schemas,
		},
	}
	return yaml.Marshal(doc)
}
