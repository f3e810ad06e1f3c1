package formvalidation

// Validate checks candidate against schema. Every field is evaluated and every
// failing constraint reported; the result carries either a typed Record or the
// full error tree. Keys of candidate unknown to schema are ignored.
func Validate(schema Schema, candidate Candidate) Result {
	return schema.Validate(candidate)
}

// Validate checks candidate against s. See [Validate].
func (s Schema) Validate(candidate Candidate) Result {
	tree := newErrorTree(s)
	values := make(map[string]any, len(s.fields))
	for i, f := range s.fields {
		st := evaluate(s.rules[i], candidate[f.Name])
		tree.nodes[f.Name] = st.errs
		values[f.Name] = outputValue(f.Type, st)
	}
	if !tree.Valid() {
		return Result{Errors: tree}
	}
	return Result{
		Record: Record{fields: tree.fields, values: values},
		Errors: tree,
	}
}

// ValidateField evaluates a single field of candidate and returns its own
// errors. It returns nil when schema has no such field.
func ValidateField(schema Schema, candidate Candidate, name string) FieldErrors {
	i, ok := schema.index[name]
	if !ok {
		return nil
	}
	errs := evaluate(schema.rules[i], candidate[name]).errs
	if errs == nil {
		errs = FieldErrors{}
	}
	return errs
}

func evaluate(rules []rule, raw any) *fieldState {
	st := &fieldState{
		value:   raw,
		present: raw != nil,
		errs:    FieldErrors{},
	}
	for _, r := range rules {
		r.apply(st)
	}
	return st
}

// outputValue returns the coerced value, or the zero value of t for fields
// that are absent.
func outputValue(t Type, st *fieldState) any {
	if st.present && !st.failed {
		switch v := st.value.(type) {
		case string, float64, bool:
			return v
		}
	}
	switch t {
	case TypeNumber:
		return float64(0)
	case TypeBoolean:
		return false
	}
	return ""
}
