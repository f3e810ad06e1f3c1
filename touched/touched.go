// Package touched tracks which form fields a user has interacted with and
// filters validation errors down to the ones eligible for display.
//
// The policy never changes what is validated. The full error tree is
// recomputed on every change; only its display is gated.
package touched

import (
	v "github.com/Gobd/formvalidation"
)

// Policy decides whether a field's errors may be shown.
type Policy interface {
	Shows(field string) bool
}

// Set is the set of fields touched during one editing session. Its zero value
// is ready to use. A Set is owned by a single UI session and is not safe for
// concurrent use.
type Set struct {
	names []string
	seen  map[string]struct{}
}

// New returns a Set already holding fields.
func New(fields ...string) *Set {
	s := &Set{}
	for _, f := range fields {
		s.Touch(f)
	}
	return s
}

// Touch adds field to the set. Touching a field twice is a no-op.
func (s *Set) Touch(field string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[field]; ok {
		return
	}
	s.seen[field] = struct{}{}
	s.names = append(s.names, field)
}

// Has reports whether field was touched.
func (s *Set) Has(field string) bool {
	if s == nil {
		return false
	}
	_, ok := s.seen[field]
	return ok
}

// Shows implements Policy.
func (s *Set) Shows(field string) bool {
	return s.Has(field)
}

// Len returns the number of touched fields.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the touched fields in the order they were first touched.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

// Reset empties the set, ending the editing session.
func (s *Set) Reset() {
	s.names = nil
	s.seen = nil
}

type all struct{}

func (all) Shows(string) bool { return true }

// All shows every field's errors. Snapshot forms use it: values are read and
// validated once, on submit, so every error is eligible at once.
var All Policy = all{}

// Visible returns a tree with the same fields as tree where the nodes p hides
// are empty.
func Visible(tree v.ErrorTree, p Policy) v.ErrorTree {
	if p == nil {
		p = All
	}
	return tree.Filter(p.Shows)
}

// Displayed returns the fields whose errors are currently shown: those p shows
// that have at least one message, in schema order.
func Displayed(tree v.ErrorTree, p Policy) []string {
	return Visible(tree, p).Failing()
}
