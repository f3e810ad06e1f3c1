package formvalidation

import (
	"fmt"
)

// Field creates a FieldSchema. Coercion constraints are moved ahead of all
// other constraints, keeping their relative order, so bounds never run against
// an uncoerced value. A field that declares no coercion gets the default one
// for its type.
func Field(name string, t Type, constraints ...Constraint) FieldSchema {
	coercions := make([]Constraint, 0, 1)
	rest := make([]Constraint, 0, len(constraints))
	for _, c := range constraints {
		if c.Kind == KindCoerce {
			coercions = append(coercions, c)
			continue
		}
		rest = append(rest, c)
	}
	if len(coercions) == 0 {
		coercions = append(coercions, defaultCoercion(t))
	}
	return FieldSchema{
		Name:        name,
		Type:        t,
		Constraints: append(coercions, rest...),
	}
}

// compile checks the field's constraints against its type and turns them into
// rules.
func (f FieldSchema) compile() ([]rule, error) {
	switch f.Type {
	case TypeString, TypeNumber, TypeBoolean:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, f.Type)
	}

	rules := make([]rule, 0, len(f.Constraints))
	var (
		minLen, maxLen = -1, -1
		minVal, maxVal *float64
	)
	for i, c := range f.Constraints {
		switch c.Kind {
		case KindCoerce:
			co, err := parseCoercion(c.Param)
			if err != nil {
				return nil, fmt.Errorf("constraint %d: %w", i, err)
			}
			if out, _ := co.output(); out != f.Type {
				return nil, fmt.Errorf("constraint %d: %w: %s coercion on %s field", i, ErrKindMismatch, co, f.Type)
			}
			rules = append(rules, coerceRule{coercion: co, message: c.Message})
		case KindRequired:
			rules = append(rules, requiredRule{message: c.Message})
		case KindMinLength, KindMaxLength:
			if f.Type != TypeString {
				return nil, fmt.Errorf("constraint %d: %w: %s on %s field", i, ErrKindMismatch, c.Kind, f.Type)
			}
			n, ok := c.Param.(int)
			if !ok || n < 0 {
				return nil, fmt.Errorf("constraint %d: %w: %s needs a non-negative int, got %v", i, ErrInvalidParam, c.Kind, c.Param)
			}
			if c.Kind == KindMinLength {
				minLen = n
			} else {
				maxLen = n
			}
			rules = append(rules, newLengthRule(n, c.Kind == KindMinLength, c.Message))
		case KindMinValue, KindMaxValue:
			if f.Type != TypeNumber {
				return nil, fmt.Errorf("constraint %d: %w: %s on %s field", i, ErrKindMismatch, c.Kind, f.Type)
			}
			v, err := toFloat(c.Param)
			if err != nil {
				return nil, fmt.Errorf("constraint %d: %w", i, err)
			}
			if c.Kind == KindMinValue {
				minVal = &v
			} else {
				maxVal = &v
			}
			rules = append(rules, newThresholdRule(v, c.Kind == KindMinValue, c.Message))
		case KindPredicate:
			p, ok := c.Param.(Predicate)
			if !ok {
				if fn, isFunc := c.Param.(func(any) bool); isFunc {
					p, ok = Predicate(fn), true
				}
			}
			if !ok || p == nil {
				return nil, fmt.Errorf("constraint %d: %w: predicate needs a Predicate, got %T", i, ErrInvalidParam, c.Param)
			}
			rules = append(rules, predicateRule{pred: p, message: c.Message})
		default:
			return nil, fmt.Errorf("constraint %d: %w: %q", i, ErrUnknownKind, c.Kind)
		}
	}

	if minLen >= 0 && maxLen >= 0 && minLen > maxLen {
		return nil, fmt.Errorf("%w: minLength %d exceeds maxLength %d", ErrInvalidParam, minLen, maxLen)
	}
	if minVal != nil && maxVal != nil && *minVal > *maxVal {
		return nil, fmt.Errorf("%w: minValue %g exceeds maxValue %g", ErrInvalidParam, *minVal, *maxVal)
	}
	return rules, nil
}
