package formvalidation_test

import (
	"strings"
	"testing"

	v "github.com/Gobd/formvalidation"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTree_MarshalJSON(t *testing.T) {
	s := newItemSchema(t)
	tree := s.Validate(v.Candidate{"name": "ab", "price": "5", "category": "hats"}).Errors

	b, err := json.Marshal(tree)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"_errors": [],
		"name": {"_errors": ["Name must be more than 5 characters"]},
		"price": {"_errors": []},
		"category": {"_errors": []},
		"featured": {"_errors": []}
	}`, string(b))

	out := string(b)
	assert.Less(t, strings.Index(out, `"name"`), strings.Index(out, `"price"`))
	assert.Less(t, strings.Index(out, `"price"`), strings.Index(out, `"featured"`))
}

func TestErrorTree_Error(t *testing.T) {
	s := newItemSchema(t)
	tree := s.Validate(v.Candidate{"category": "shirts"}).Errors

	assert.Equal(t, "name: Name is required; price: Price is required.", tree.Error())
	require.Error(t, tree.Err())

	errs := tree.ValidationErrors()
	require.Len(t, errs, 2)
	assert.Equal(t, "Name is required", errs["name"].Error())

	valid := s.Validate(validItem()).Errors
	assert.Equal(t, "", valid.Error())
	assert.Nil(t, valid.ValidationErrors())
}

func TestErrorTree_Filter(t *testing.T) {
	s := newItemSchema(t)
	tree := s.Validate(v.Candidate{}).Errors

	only := tree.Filter(func(f string) bool { return f == "price" })
	assert.Equal(t, tree.Fields(), only.Fields())
	assert.Equal(t, []string{"price"}, only.Failing())
	assert.Empty(t, only.Errors("name"))

	assert.Equal(t, []string{"name", "price", "category"}, tree.Failing(), "filter must not modify the source tree")
}

func TestErrorTree_Map(t *testing.T) {
	s := newItemSchema(t)
	m := s.Validate(v.Candidate{"name": "Linen shirt"}).Errors.Map()

	assert.Equal(t, map[string][]string{
		"name":     {},
		"price":    {"Price is required"},
		"category": {"Category is required"},
		"featured": {},
	}, m)
}

func TestRecord_MarshalJSON(t *testing.T) {
	s := newItemSchema(t)
	res := s.Validate(validItem())
	require.True(t, res.OK())

	b, err := json.Marshal(res.Record)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Linen shirt","price":19.99,"category":"shirts","featured":true}`, string(b))
}

func TestFieldErrors_Error(t *testing.T) {
	assert.Equal(t, "a; b", v.FieldErrors{"a", "b"}.Error())
	assert.Equal(t, "", v.FieldErrors{}.Error())
}
