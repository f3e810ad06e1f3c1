package product

import (
	"fmt"

	v "github.com/Gobd/formvalidation"
)

// Field names shared by every form variant.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldIsFeatured  = "is_featured"
)

// Uncategorised is the placeholder option of the category select. It is an
// ordinary value that the schema rejects, not an empty state.
const Uncategorised = "uncategorised"

// Categories lists the category select options, placeholder first.
var Categories = []Category{
	{Value: Uncategorised, Label: "Choose a category"},
	{Value: "shirts", Label: "Shirts"},
	{Value: "pants", Label: "Pants"},
	{Value: "glasses", Label: "Glasses"},
	{Value: "hats", Label: "Hats"},
}

// Category is one select option.
type Category struct {
	Value string
	Label string
}

// Variant identifies one of the product form flavours. They share field names
// and messages and differ in when the candidate record is assembled.
type Variant string

const (
	// Reactive forms validate on every change and gate display on touched fields.
	Reactive Variant = "reactive"
	// Handle forms read values through pre-bound field handles on submit.
	Handle Variant = "handle"
	// Snapshot forms read every value once at submit and show all errors.
	// This variant has no upper length bounds.
	Snapshot Variant = "snapshot"
)

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case Reactive, Handle, Snapshot:
		return Variant(s), nil
	}
	return "", fmt.Errorf("unknown form variant %q", s)
}

// TouchGated reports whether the variant shows only errors of touched fields.
func (vr Variant) TouchGated() bool {
	return vr != Snapshot
}

var (
	boundedSchema   = v.MustSchema(fields(true)...)
	unboundedSchema = v.MustSchema(fields(false)...)
)

// Schema returns the product schema for vr. Unknown variants get the reactive
// schema.
func Schema(vr Variant) v.Schema {
	if vr == Snapshot {
		return unboundedSchema
	}
	return boundedSchema
}

func fields(upperBounds bool) []v.FieldSchema {
	name := []v.Constraint{
		v.Coerce(v.CoerceTrim, "Name must be text"),
		v.Required("Name is required"),
		v.MinLength(5, "Name must be more than 5 characters"),
	}
	description := []v.Constraint{
		v.Coerce(v.CoerceTrim, "Description must be text"),
		v.Required("Description is required"),
		v.MinLength(10, "Description must be more than 10 characters"),
	}
	if upperBounds {
		name = append(name, v.MaxLength(50, "Name must be less than 50 characters"))
		description = append(description, v.MaxLength(150, "Description must be less than 150 characters"))
	}

	return []v.FieldSchema{
		v.Field(FieldName, v.TypeString, name...),
		v.Field(FieldDescription, v.TypeString, description...),
		v.Field(FieldPrice, v.TypeNumber,
			v.Coerce(v.CoerceNumber, "Price must be a number"),
			v.Required("Price is required"),
			v.MinValue(0, "Price should be more than 0"),
		),
		v.Field(FieldCategory, v.TypeString,
			v.Coerce(v.CoerceText, "Category must be text"),
			v.Required("Category is required"),
			v.Satisfies(v.NotIn(Uncategorised), "Choose category other than uncategorised"),
		),
		v.Field(FieldIsFeatured, v.TypeBoolean,
			v.Coerce(v.CoerceBoolean, ""),
		),
	}
}
