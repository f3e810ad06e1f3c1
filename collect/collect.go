// Package collect assembles candidate records from the places a form keeps
// its values.
//
// A form differs from another only in when it calls [Collect]: a reactive
// form on every change through [Live], a snapshot form once on submit from
// posted [Form] values, an imperative form once on submit through pre-bound
// [Handles]. Each source yields the same candidate shape, so one schema
// serves all three.
package collect

import (
	"net/url"

	v "github.com/Gobd/formvalidation"
)

// Source supplies raw field values.
type Source interface {
	// Lookup returns the raw value of field, and false when the source has
	// none.
	Lookup(field string) (any, bool)
}

// Collect reads every field of schema from src. Fields the source lacks are
// left out of the candidate so they read as missing.
func Collect(schema v.Schema, src Source) v.Candidate {
	c := make(v.Candidate, schema.Len())
	if src == nil {
		return c
	}
	for _, name := range schema.Fields() {
		if val, ok := src.Lookup(name); ok {
			c[name] = val
		}
	}
	return c
}

// Form reads posted HTML form values. The first value of a key is used. A
// checkbox key is only posted when the box is checked, so an unchecked box
// reads as missing, which the boolean coercion turns into false.
type Form url.Values

// Lookup implements Source.
func (f Form) Lookup(field string) (any, bool) {
	vals, ok := f[field]
	if !ok || len(vals) == 0 {
		return nil, false
	}
	return vals[0], true
}

// Handle is a stable reference to one field's current value, bound once when
// the form is built.
type Handle interface {
	Value() any
}

// HandleFunc adapts a function to Handle.
type HandleFunc func() any

// Value implements Handle.
func (f HandleFunc) Value() any {
	return f()
}

// Handles maps field names to their handles. A handle returning nil reads as
// missing.
type Handles map[string]Handle

// Lookup implements Source.
func (h Handles) Lookup(field string) (any, bool) {
	handle, ok := h[field]
	if !ok || handle == nil {
		return nil, false
	}
	val := handle.Value()
	if val == nil {
		return nil, false
	}
	return val, true
}

// Map reads values from a plain candidate, as decoded from a JSON body.
type Map v.Candidate

// Lookup implements Source.
func (m Map) Lookup(field string) (any, bool) {
	val, ok := m[field]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}
