package formvalidation

import (
	"fmt"
)

// Schema is an ordered set of field schemas. It is immutable once built and
// safe for concurrent use; build it once and reuse it for every validation.
type Schema struct {
	fields []FieldSchema
	rules  [][]rule
	index  map[string]int
}

// NewSchema builds a Schema from fields in declaration order. It checks names
// are unique and that every constraint fits its field's type.
func NewSchema(fields ...FieldSchema) (Schema, error) {
	s := Schema{
		fields: make([]FieldSchema, 0, len(fields)),
		rules:  make([][]rule, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return Schema{}, ErrEmptyFieldName
		}
		if _, dup := s.index[f.Name]; dup {
			return Schema{}, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		// Normalise literals that bypassed Field.
		f = Field(f.Name, f.Type, f.Constraints...)
		rules, err := f.compile()
		if err != nil {
			return Schema{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
		s.rules = append(s.rules, rules)
	}
	return s, nil
}

// MustSchema is like [NewSchema] but panics on error.
func MustSchema(fields ...FieldSchema) Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the field names in declaration order.
func (s Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the named field schema.
func (s Schema) Field(name string) (FieldSchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSchema{}, false
	}
	f := s.fields[i]
	f.Constraints = append([]Constraint(nil), f.Constraints...)
	return f, true
}

// Len returns the number of fields.
func (s Schema) Len() int {
	return len(s.fields)
}
