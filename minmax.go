package formvalidation

import (
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold float64
	min       bool
	message   string
}

// MinValue returns a constraint that checks a number is greater than or equal
// to threshold.
func MinValue(threshold float64, message string) Constraint {
	return Constraint{Kind: KindMinValue, Param: threshold, Message: message}
}

// MaxValue returns a constraint that checks a number is less than or equal to
// threshold.
func MaxValue(threshold float64, message string) Constraint {
	return Constraint{Kind: KindMaxValue, Param: threshold, Message: message}
}

func newThresholdRule(threshold float64, minimum bool, message string) thresholdRule {
	tr := validation.Max(threshold)
	if minimum {
		tr = validation.Min(threshold)
	}
	return thresholdRule{
		ThresholdRule: tr,
		threshold:     threshold,
		min:           minimum,
		message:       message,
	}
}

func (r thresholdRule) apply(st *fieldState) {
	if !st.checkable() {
		return
	}
	f, ok := st.value.(float64)
	if !ok {
		return
	}
	// ozzo treats zero as empty and skips it.
	if f == 0 {
		if (r.min && r.threshold > 0) || (!r.min && r.threshold < 0) {
			st.fail(r.message)
		}
		return
	}
	if err := r.ThresholdRule.Validate(f); err != nil {
		st.fail(r.message)
	}
}

func (r thresholdRule) describe(_ string, _, prop *openapi3.Schema) {
	f := r.threshold
	if r.min {
		prop.Min = &f
	} else {
		prop.Max = &f
	}
}

var floatType = reflect.TypeOf(float64(0))

// toFloat converts any numeric parameter to float64. YAML and JSON decoders
// hand back ints for whole numbers.
func toFloat(unk any) (float64, error) {
	v := reflect.ValueOf(unk)
	if !v.IsValid() {
		return 0, fmt.Errorf("%w: nil bound", ErrInvalidParam)
	}
	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.Convert(floatType).Float(), nil
	}
	return 0, fmt.Errorf("%w: cannot convert %T to float64", ErrInvalidParam, unk)
}
