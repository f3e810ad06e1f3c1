package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	rule    *validation.LengthRule // nil when the bound can never fail
	n       int
	min     bool
	message string
}

// MinLength returns a constraint that checks a string has at least n runes.
func MinLength(n int, message string) Constraint {
	return Constraint{Kind: KindMinLength, Param: n, Message: message}
}

// MaxLength returns a constraint that checks a string has at most n runes.
func MaxLength(n int, message string) Constraint {
	return Constraint{Kind: KindMaxLength, Param: n, Message: message}
}

func newLengthRule(n int, minimum bool, message string) lengthRule {
	r := lengthRule{n: n, min: minimum, message: message}
	switch {
	case minimum && n > 0:
		lr := validation.RuneLength(n, 0)
		r.rule = &lr
	case !minimum:
		// RuneLength(0, 0) only accepts the empty string, which is what a
		// zero maximum means.
		lr := validation.RuneLength(0, n)
		r.rule = &lr
	}
	return r
}

func (r lengthRule) apply(st *fieldState) {
	if !st.checkable() || r.rule == nil {
		return
	}
	if err := r.rule.Validate(st.value); err != nil {
		st.fail(r.message)
	}
}

func (r lengthRule) describe(_ string, _, prop *openapi3.Schema) {
	n := uint64(r.n)
	if r.min {
		prop.MinLength = n
		return
	}
	prop.MaxLength = &n
}
