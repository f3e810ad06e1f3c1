package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Kind names the check a [Constraint] performs.
type Kind string

const (
	KindRequired  Kind = "required"
	KindMinLength Kind = "minLength"
	KindMaxLength Kind = "maxLength"
	KindMinValue  Kind = "minValue"
	KindMaxValue  Kind = "maxValue"
	KindPredicate Kind = "predicate"
	KindCoerce    Kind = "coerce"
)

// Type is the semantic type a field reduces to after coercion.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
)

type (
	// Predicate reports whether a coerced value satisfies a business rule.
	Predicate func(value any) bool

	// Constraint is one checkable rule on a single field. Param holds the
	// bound, the [Predicate] or the [Coercion], depending on Kind.
	Constraint struct {
		Kind    Kind
		Param   any
		Message string
	}

	// FieldSchema is a named field with its output type and ordered constraints.
	// Build one with [Field].
	FieldSchema struct {
		Name        string
		Type        Type
		Constraints []Constraint
	}

	// Candidate is an untyped record as supplied by a form: field name to raw
	// value. Missing keys read as nil.
	Candidate map[string]any

	// rule is the compiled form of a Constraint.
	rule interface {
		apply(st *fieldState)
		describe(name string, parent, prop *openapi3.Schema)
	}
)

// fieldState carries a field's value through its rules.
type fieldState struct {
	value   any
	present bool
	failed  bool // a coercion failed; later rules skip
	errs    FieldErrors
}

func (st *fieldState) fail(msg string) {
	st.errs = append(st.errs, msg)
}

// checkable reports whether bound and predicate rules should run.
func (st *fieldState) checkable() bool {
	return st.present && !st.failed
}
