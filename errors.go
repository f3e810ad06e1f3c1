package formvalidation

import "errors"

// Schema construction errors. They are wrapped with the offending field name.
var (
	ErrEmptyFieldName   = errors.New("field name is empty")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrUnknownType      = errors.New("unknown field type")
	ErrUnknownKind      = errors.New("unknown constraint kind")
	ErrInvalidParam     = errors.New("invalid constraint parameter")
	ErrKindMismatch     = errors.New("constraint does not apply to field type")
	ErrUnknownCoercion  = errors.New("unknown coercion")
	ErrUnknownPredicate = errors.New("unknown predicate")
)
