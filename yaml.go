package formvalidation

import (
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"
)

// PredicateFactory builds a Predicate from the arguments given in a schema
// document.
type PredicateFactory func(args []any) (Predicate, error)

// PredicateRegistry resolves predicate names used in schema documents.
type PredicateRegistry map[string]PredicateFactory

// DefaultPredicates returns a registry with:
//   - not_in: rejects any of the arguments
//   - in: accepts only the arguments
//   - matches: accepts strings matching the single regular expression argument
func DefaultPredicates() PredicateRegistry {
	return PredicateRegistry{
		"not_in": func(args []any) (Predicate, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%w: not_in needs at least one value", ErrInvalidParam)
			}
			return NotIn(args...), nil
		},
		"in": func(args []any) (Predicate, error) {
			if len(args) == 0 {
				return nil, fmt.Errorf("%w: in needs at least one value", ErrInvalidParam)
			}
			return In(args...), nil
		},
		"matches": func(args []any) (Predicate, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%w: matches needs one pattern", ErrInvalidParam)
			}
			pattern, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: matches pattern must be a string", ErrInvalidParam)
			}
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
			}
			return Matches(re), nil
		},
	}
}

type (
	schemaDocument struct {
		Fields []fieldDocument `yaml:"fields"`
	}

	fieldDocument struct {
		Name        string               `yaml:"name"`
		Type        Type                 `yaml:"type"`
		Constraints []constraintDocument `yaml:"constraints"`
	}

	constraintDocument struct {
		Kind      Kind      `yaml:"kind"`
		Parameter yaml.Node `yaml:"parameter"`
		Message   string    `yaml:"message"`
	}

	predicateDocument struct {
		Name string `yaml:"name"`
		Args []any  `yaml:"args"`
	}
)

// LoadSchema reads a YAML schema document from r. See [ParseSchema].
func LoadSchema(r io.Reader, predicates PredicateRegistry) (Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Schema{}, err
	}
	return ParseSchema(data, predicates)
}

// ParseSchema builds a Schema from a YAML document of the form:
//
//	fields:
//	  - name: price
//	    type: number
//	    constraints:
//	      - {kind: coerce, parameter: number, message: Price must be a number}
//	      - {kind: required, message: Price is required}
//	      - {kind: minValue, parameter: 0, message: Price should be more than 0}
//	  - name: category
//	    type: string
//	    constraints:
//	      - kind: predicate
//	        parameter: {name: not_in, args: [uncategorised]}
//	        message: Choose category other than uncategorised
//
// Predicate names are resolved in predicates; a nil registry uses
// [DefaultPredicates].
func ParseSchema(data []byte, predicates PredicateRegistry) (Schema, error) {
	if predicates == nil {
		predicates = DefaultPredicates()
	}
	var doc schemaDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}

	fields := make([]FieldSchema, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		constraints := make([]Constraint, 0, len(fd.Constraints))
		for i, cd := range fd.Constraints {
			c, err := cd.constraint(fd.Type, predicates)
			if err != nil {
				return Schema{}, fmt.Errorf("field %q: constraint %d: %w", fd.Name, i, err)
			}
			constraints = append(constraints, c)
		}
		fields = append(fields, Field(fd.Name, fd.Type, constraints...))
	}
	return NewSchema(fields...)
}

func (cd constraintDocument) constraint(t Type, predicates PredicateRegistry) (Constraint, error) {
	c := Constraint{Kind: cd.Kind, Message: cd.Message}
	p := &cd.Parameter
	switch cd.Kind {
	case KindRequired:
	case KindMinLength, KindMaxLength:
		var n int
		if err := p.Decode(&n); err != nil {
			return Constraint{}, fmt.Errorf("%w: %s: %w", ErrInvalidParam, cd.Kind, err)
		}
		c.Param = n
	case KindMinValue, KindMaxValue:
		var f float64
		if err := p.Decode(&f); err != nil {
			return Constraint{}, fmt.Errorf("%w: %s: %w", ErrInvalidParam, cd.Kind, err)
		}
		c.Param = f
	case KindCoerce:
		var s string
		if err := p.Decode(&s); err != nil {
			return Constraint{}, fmt.Errorf("%w: coerce: %w", ErrInvalidParam, err)
		}
		c.Param = Coercion(s)
	case KindPredicate:
		var pd predicateDocument
		if err := p.Decode(&pd); err != nil {
			return Constraint{}, fmt.Errorf("%w: predicate: %w", ErrInvalidParam, err)
		}
		factory, ok := predicates[pd.Name]
		if !ok {
			return Constraint{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, pd.Name)
		}
		args := pd.Args
		if t == TypeNumber {
			args = numberArgs(args)
		}
		pred, err := factory(args)
		if err != nil {
			return Constraint{}, fmt.Errorf("predicate %q: %w", pd.Name, err)
		}
		c.Param = pred
	default:
		return Constraint{}, fmt.Errorf("%w: %q", ErrUnknownKind, cd.Kind)
	}
	return c, nil
}

// numberArgs converts numeric predicate arguments to float64, the type number
// fields coerce to. YAML decodes whole numbers as int.
func numberArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
		if _, isString := a.(string); isString {
			continue
		}
		if f, err := toFloat(a); err == nil {
			out[i] = f
		}
	}
	return out
}
