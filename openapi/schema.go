package openapi

import (
	v "github.com/Gobd/formvalidation"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForSchema describes the record validated by s.
// See [formvalidation.NewSchemaRef].
func NewSchemaRefForSchema(s v.Schema) *openapi3.SchemaRef {
	return v.NewSchemaRef(s)
}

// NewErrorSchemaRef describes the error tree produced for s, wrapped in an
// object under "errors".
func NewErrorSchemaRef(s v.Schema) *openapi3.SchemaRef {
	obj := openapi3.NewObjectSchema()
	obj.Properties = openapi3.Schemas{"errors": v.NewErrorTreeSchemaRef(s)}
	obj.Required = []string{"errors"}
	return openapi3.NewSchemaRef("", obj)
}

// NewCandidateSchemaRef describes the raw values a form posts for s: every
// field optional and typed as submitted. Numbers may arrive as strings and
// checkboxes as "on", so only strings are promised for non-boolean fields.
func NewCandidateSchemaRef(s v.Schema) *openapi3.SchemaRef {
	obj := openapi3.NewObjectSchema()
	for _, name := range s.Fields() {
		f, _ := s.Field(name)
		prop := openapi3.NewStringSchema()
		if f.Type == v.TypeBoolean {
			prop = openapi3.NewBoolSchema()
		}
		obj.WithProperty(name, prop)
	}
	return openapi3.NewSchemaRef("", obj)
}
