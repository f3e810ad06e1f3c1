package formvalidation

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Record is a validated, typed record: string, float64 or bool per field, in
// schema order. It only exists as the success output of validation and is
// immutable.
type Record struct {
	fields []string
	values map[string]any
}

// Fields returns the field names in schema order.
func (r Record) Fields() []string {
	return append([]string(nil), r.fields...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Get returns the value of field.
func (r Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// String returns the string value of field, or "" when it is not a string field.
func (r Record) String(field string) string {
	s, _ := r.values[field].(string)
	return s
}

// Float returns the number value of field, or 0 when it is not a number field.
func (r Record) Float(field string) float64 {
	f, _ := r.values[field].(float64)
	return f
}

// Bool returns the boolean value of field, or false when it is not a boolean field.
func (r Record) Bool(field string) bool {
	b, _ := r.values[field].(bool)
	return b
}

// Candidate returns the record's values as a fresh Candidate. Validating it
// with the same schema succeeds and yields an equal Record.
func (r Record) Candidate() Candidate {
	c := make(Candidate, len(r.values))
	for k, v := range r.values {
		c[k] = v
	}
	return c
}

// MarshalJSON encodes the record as an object with keys in schema order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Result is the outcome of validating a candidate. Errors is always total over
// the schema's fields; Record is only populated when OK reports true.
type Result struct {
	Record Record
	Errors ErrorTree
}

// OK reports whether validation succeeded.
func (r Result) OK() bool {
	return r.Errors.Valid()
}
