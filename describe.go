package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRef describes the validated record of s as an OpenAPI 3 object
// schema: one property per field with its type, length and value bounds,
// required fields and predicate messages in the property description.
func NewSchemaRef(s Schema) *openapi3.SchemaRef {
	obj := openapi3.NewObjectSchema()
	for i, f := range s.fields {
		prop := propertySchema(f.Type)
		for _, r := range s.rules[i] {
			r.describe(f.Name, obj, prop)
		}
		obj.WithProperty(f.Name, prop)
	}
	return openapi3.NewSchemaRef("", obj)
}

// NewErrorTreeSchemaRef describes the JSON encoding of an [ErrorTree] for s.
// Every field is required because the tree is total.
func NewErrorTreeSchemaRef(s Schema) *openapi3.SchemaRef {
	messages := func() *openapi3.Schema {
		return openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	}
	node := func() *openapi3.Schema {
		n := openapi3.NewObjectSchema().WithProperty("_errors", messages())
		n.Required = []string{"_errors"}
		return n
	}

	obj := openapi3.NewObjectSchema().WithProperty("_errors", messages())
	obj.Required = []string{"_errors"}
	for _, name := range s.Fields() {
		obj.WithProperty(name, node())
		obj.Required = append(obj.Required, name)
	}
	return openapi3.NewSchemaRef("", obj)
}

func propertySchema(t Type) *openapi3.Schema {
	switch t {
	case TypeNumber:
		return openapi3.NewFloat64Schema()
	case TypeBoolean:
		return openapi3.NewBoolSchema()
	}
	return openapi3.NewStringSchema()
}
