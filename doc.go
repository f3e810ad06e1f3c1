// Package formvalidation validates untyped form input against a declarative
// record schema and reports every failure in an error tree shaped like the
// schema.
//
// A schema is plain data: an ordered list of fields, each carrying an ordered
// list of constraints with the message shown when the constraint fails:
//
//	schema := formvalidation.MustSchema(
//	    formvalidation.Field("name", formvalidation.TypeString,
//	        formvalidation.Coerce(formvalidation.CoerceTrim, "Name must be text"),
//	        formvalidation.Required("Name is required"),
//	        formvalidation.MinLength(5, "Name must be more than 5 characters"),
//	    ),
//	    formvalidation.Field("price", formvalidation.TypeNumber,
//	        formvalidation.Required("Price is required"),
//	        formvalidation.MinValue(0, "Price should be more than 0"),
//	    ),
//	)
//
// Then validate a candidate record:
//
//	res := schema.Validate(formvalidation.Candidate{"name": " Blue Shirt ", "price": "19.99"})
//	if !res.OK() {
//	    fmt.Println(res.Errors.Errors("name"))
//	}
//
// Coercions always run before the other constraints of a field, so length and
// value bounds only ever see the coerced value. Validation never returns a Go
// error: the result either carries a typed [Record] or a total [ErrorTree].
//
// Schemas can also be loaded from YAML with [ParseSchema] and described as
// OpenAPI 3 schemas with [NewSchemaRef].
//
// Sub-packages:
//   - product: the product form schemas and the typed product record
//   - touched: touched-field tracking and the error display filter
//   - collect: building candidate records from live edits, form posts or handles
//   - session: reactive editing sessions and one-shot submissions
//   - openapi: OpenAPI document assembly for the HTTP surface
package formvalidation
