package formvalidation

import (
	"bytes"
	"strings"

	json "github.com/goccy/go-json"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// FieldErrors is the ordered list of messages for one field, in constraint
// declaration order. It is empty when the field is valid.
type FieldErrors []string

// Error joins the messages.
func (e FieldErrors) Error() string {
	return strings.Join(e, "; ")
}

// ErrorTree mirrors a Schema: it holds a FieldErrors node for every field of
// the schema, in declaration order, whether or not the field failed.
type ErrorTree struct {
	fields []string
	nodes  map[string]FieldErrors
}

func newErrorTree(s Schema) ErrorTree {
	t := ErrorTree{
		fields: s.Fields(),
		nodes:  make(map[string]FieldErrors, len(s.fields)),
	}
	for _, name := range t.fields {
		t.nodes[name] = FieldErrors{}
	}
	return t
}

// Fields returns every field name in schema order.
func (t ErrorTree) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Errors returns a copy of the messages recorded for field.
func (t ErrorTree) Errors(field string) FieldErrors {
	return append(FieldErrors{}, t.nodes[field]...)
}

// Has reports whether field has at least one message.
func (t ErrorTree) Has(field string) bool {
	return len(t.nodes[field]) > 0
}

// Contains reports whether field is part of the tree.
func (t ErrorTree) Contains(field string) bool {
	_, ok := t.nodes[field]
	return ok
}

// Failing returns the fields with at least one message, in schema order.
func (t ErrorTree) Failing() []string {
	var out []string
	for _, name := range t.fields {
		if len(t.nodes[name]) > 0 {
			out = append(out, name)
		}
	}
	return out
}

// Valid reports whether no field has messages.
func (t ErrorTree) Valid() bool {
	for _, errs := range t.nodes {
		if len(errs) > 0 {
			return false
		}
	}
	return true
}

// Map returns a copy of the tree as a plain map.
func (t ErrorTree) Map() map[string][]string {
	out := make(map[string][]string, len(t.fields))
	for _, name := range t.fields {
		out[name] = append([]string{}, t.nodes[name]...)
	}
	return out
}

// Filter returns a tree with the same fields where only nodes for which keep
// returns true retain their messages.
func (t ErrorTree) Filter(keep func(field string) bool) ErrorTree {
	out := ErrorTree{
		fields: t.fields,
		nodes:  make(map[string]FieldErrors, len(t.fields)),
	}
	for _, name := range t.fields {
		if keep(name) {
			out.nodes[name] = append(FieldErrors{}, t.nodes[name]...)
		} else {
			out.nodes[name] = FieldErrors{}
		}
	}
	return out
}

// ValidationErrors converts the failing nodes into ozzo-validation's error map.
// It returns nil when the tree is valid.
func (t ErrorTree) ValidationErrors() ValidationErrors {
	if t.Valid() {
		return nil
	}
	errs := ValidationErrors{}
	for _, name := range t.Failing() {
		errs[name] = t.Errors(name)
	}
	return errs
}

// Err returns the tree as an error, or nil when valid.
func (t ErrorTree) Err() error {
	if t.Valid() {
		return nil
	}
	return t.ValidationErrors()
}

// Error renders the failing fields the way ozzo-validation does.
func (t ErrorTree) Error() string {
	errs := t.ValidationErrors()
	if errs == nil {
		return ""
	}
	return errs.Error()
}

// MarshalJSON encodes the tree in the formatted-error shape used by form
// libraries: a root "_errors" list plus one object per field, every field
// present.
//
//	{"_errors":[],"name":{"_errors":["Name must be more than 5 characters"]},"price":{"_errors":[]}}
func (t ErrorTree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"_errors":[]`)
	for _, name := range t.fields {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		msgs, err := json.Marshal(append([]string{}, t.nodes[name]...))
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteString(`:{"_errors":`)
		buf.Write(msgs)
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
