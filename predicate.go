package formvalidation

import (
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type predicateRule struct {
	pred    Predicate
	message string
}

// Satisfies returns a constraint that fails when pred rejects the coerced value.
// Missing values are left to [Required].
func Satisfies(pred Predicate, message string) Constraint {
	return Constraint{Kind: KindPredicate, Param: pred, Message: message}
}

func (r predicateRule) apply(st *fieldState) {
	if !st.checkable() {
		return
	}
	if !r.pred(st.value) {
		st.fail(r.message)
	}
}

func (r predicateRule) describe(_ string, _, prop *openapi3.Schema) {
	if prop.Description != "" && !strings.HasSuffix(prop.Description, " ") {
		prop.Description += " "
	}
	prop.Description += r.message
}

// NotIn returns a predicate that rejects any of values.
func NotIn(values ...any) Predicate {
	rule := validation.NotIn(values...)
	return func(value any) bool {
		return rule.Validate(value) == nil
	}
}

// In returns a predicate that accepts only values.
func In(values ...any) Predicate {
	rule := validation.In(values...)
	return func(value any) bool {
		return rule.Validate(value) == nil
	}
}

// Matches returns a predicate that accepts strings matching re.
func Matches(re *regexp.Regexp) Predicate {
	rule := validation.Match(re)
	return func(value any) bool {
		if _, ok := value.(string); !ok {
			return false
		}
		return rule.Validate(value) == nil
	}
}
