package formvalidation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// Coercion converts a raw form value into a field's output type.
type Coercion string

const (
	// CoerceText accepts strings unchanged.
	CoerceText Coercion = "text"
	// CoerceTrim accepts strings and strips surrounding whitespace, so padding
	// cannot satisfy a length bound.
	CoerceTrim Coercion = "trim"
	// CoerceNumber accepts numeric strings and Go numbers and yields a float64.
	CoerceNumber Coercion = "number"
	// CoerceBoolean accepts anything. A missing value, false, an empty string
	// and numeric zero yield false; everything else, including "off", yields
	// true.
	CoerceBoolean Coercion = "boolean"
)

// Coerce returns a constraint converting the raw value with c. message is
// reported when the raw value cannot be converted. Coercions always run before
// the other constraints of a field.
func Coerce(c Coercion, message string) Constraint {
	return Constraint{Kind: KindCoerce, Param: c, Message: message}
}

// output reports the type a coercion produces.
func (c Coercion) output() (Type, bool) {
	switch c {
	case CoerceText, CoerceTrim:
		return TypeString, true
	case CoerceNumber:
		return TypeNumber, true
	case CoerceBoolean:
		return TypeBoolean, true
	}
	return "", false
}

// defaultCoercion is applied to fields that declare none.
func defaultCoercion(t Type) Constraint {
	switch t {
	case TypeNumber:
		return Coerce(CoerceNumber, "must be a number")
	case TypeBoolean:
		return Coerce(CoerceBoolean, "")
	}
	return Coerce(CoerceText, "must be a string")
}

type coerceRule struct {
	coercion Coercion
	message  string
}

func (r coerceRule) apply(st *fieldState) {
	if st.failed {
		return
	}
	if r.coercion == CoerceBoolean {
		st.value, st.present = truthy(st.value), true
		return
	}
	if st.value == nil {
		st.present = false
		return
	}

	var (
		v  any
		ok bool
	)
	switch r.coercion {
	case CoerceText:
		v, ok = st.value.(string)
	case CoerceTrim:
		var s string
		s, ok = st.value.(string)
		v = strings.TrimSpace(s)
	case CoerceNumber:
		if s, isString := st.value.(string); isString && strings.TrimSpace(s) == "" {
			st.value, st.present = "", false
			return
		}
		v, ok = toNumber(st.value)
	}
	if !ok {
		st.failed = true
		st.fail(r.message)
		return
	}
	st.value = v
	st.present = v != ""
}

func (r coerceRule) describe(_ string, _, _ *openapi3.Schema) {}

// toNumber converts raw to a finite float64.
func toNumber(raw any) (float64, bool) {
	var f float64
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if !govalidator.IsFloat(s) {
			return 0, false
		}
		var err error
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return 0, false
		}
	case json.Number:
		var err error
		if f, err = v.Float64(); err != nil {
			return 0, false
		}
	case bool:
		return 0, false
	default:
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			f = rv.Float()
		default:
			return 0, false
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f == 0 {
		// Drops the sign of -0.
		f = 0
	}
	return f, true
}

// truthy maps any raw value to a boolean.
func truthy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	}
	if f, ok := toNumber(raw); ok {
		return f != 0
	}
	return true
}

func parseCoercion(param any) (Coercion, error) {
	var c Coercion
	switch p := param.(type) {
	case Coercion:
		c = p
	case string:
		c = Coercion(p)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownCoercion, param)
	}
	if _, ok := c.output(); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCoercion, c)
	}
	return c, nil
}
