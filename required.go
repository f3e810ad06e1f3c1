package formvalidation

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type requiredRule struct {
	message string
}

// Required returns a constraint that fails when the field is missing or its
// coerced value is an empty string.
func Required(message string) Constraint {
	return Constraint{Kind: KindRequired, Message: message}
}

func (r requiredRule) apply(st *fieldState) {
	if st.failed {
		return
	}
	if !st.present {
		st.fail(r.message)
	}
}

func (r requiredRule) describe(name string, parent, _ *openapi3.Schema) {
	parent.Required = append(parent.Required, name)
}
