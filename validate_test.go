package formvalidation_test

import (
	"math"
	"regexp"
	"strings"
	"sync"
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemSchema(t *testing.T) v.Schema {
	t.Helper()
	s, err := v.NewSchema(
		v.Field("name", v.TypeString,
			v.Coerce(v.CoerceTrim, "Name must be text"),
			v.Required("Name is required"),
			v.MinLength(5, "Name must be more than 5 characters"),
			v.MaxLength(50, "Name must be less than 50 characters"),
		),
		v.Field("price", v.TypeNumber,
			v.Coerce(v.CoerceNumber, "Price must be a number"),
			v.Required("Price is required"),
			v.MinValue(0, "Price should be more than 0"),
		),
		v.Field("category", v.TypeString,
			v.Coerce(v.CoerceText, "Category must be text"),
			v.Required("Category is required"),
			v.Satisfies(v.NotIn("uncategorised"), "Choose category other than uncategorised"),
		),
		v.Field("featured", v.TypeBoolean),
	)
	require.NoError(t, err)
	return s
}

func validItem() v.Candidate {
	return v.Candidate{
		"name":     "Linen shirt",
		"price":    "19.99",
		"category": "shirts",
		"featured": "on",
	}
}

func TestValidate_ErrorTreeIsTotal(t *testing.T) {
	s := newItemSchema(t)

	res := v.Validate(s, v.Candidate{})
	require.False(t, res.OK())

	assert.Equal(t, s.Fields(), res.Errors.Fields())
	for _, f := range s.Fields() {
		assert.True(t, res.Errors.Contains(f), f)
	}
	assert.Equal(t, v.FieldErrors{"Name is required"}, res.Errors.Errors("name"))
	assert.Equal(t, v.FieldErrors{"Price is required"}, res.Errors.Errors("price"))
	assert.Equal(t, v.FieldErrors{"Category is required"}, res.Errors.Errors("category"))
	assert.Empty(t, res.Errors.Errors("featured"))
	assert.NotNil(t, res.Errors.Errors("featured"))
	assert.Equal(t, []string{"name", "price", "category"}, res.Errors.Failing())
	assert.Zero(t, res.Record.Len())
}

func TestValidate_Success(t *testing.T) {
	s := newItemSchema(t)

	res := s.Validate(validItem())
	require.True(t, res.OK(), res.Errors.Error())

	assert.Equal(t, s.Fields(), res.Record.Fields())
	assert.Equal(t, "Linen shirt", res.Record.String("name"))
	assert.InDelta(t, 19.99, res.Record.Float("price"), 1e-9)
	assert.Equal(t, "shirts", res.Record.String("category"))
	assert.True(t, res.Record.Bool("featured"))
	assert.True(t, res.Errors.Valid())
	assert.Nil(t, res.Errors.Failing())
	assert.NoError(t, res.Errors.Err())
}

func TestValidate_RoundTrip(t *testing.T) {
	s := newItemSchema(t)

	first := s.Validate(validItem())
	require.True(t, first.OK())

	second := s.Validate(first.Record.Candidate())
	require.True(t, second.OK())
	assert.Equal(t, first.Record, second.Record)
}

func TestValidate_Idempotent(t *testing.T) {
	s := newItemSchema(t)
	c := v.Candidate{"name": "ab", "price": "abc", "category": "uncategorised"}

	assert.Equal(t, s.Validate(c), s.Validate(c))
	assert.Equal(t, "ab", c["name"], "candidate must not be modified")
}

func TestValidate_TrimBeforeLength(t *testing.T) {
	s := newItemSchema(t)

	tests := []struct {
		name string
		in   any
		want v.FieldErrors
	}{
		{"padded short", "  ab  ", v.FieldErrors{"Name must be more than 5 characters"}},
		{"padded long enough", "  abcde ", v.FieldErrors{}},
		{"whitespace only", "   ", v.FieldErrors{"Name is required"}},
		{"empty", "", v.FieldErrors{"Name is required"}},
		{"too long", strings.Repeat("a", 51), v.FieldErrors{"Name must be less than 50 characters"}},
		{"max runes", strings.Repeat("é", 50), v.FieldErrors{}},
		{"not text", 42, v.FieldErrors{"Name must be text"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validItem()
			c["name"] = tt.in
			assert.Equal(t, tt.want, s.Validate(c).Errors.Errors("name"))
		})
	}
}

func TestValidate_CoerceBeforeBound(t *testing.T) {
	s := newItemSchema(t)

	tests := []struct {
		name string
		in   any
		want v.FieldErrors
	}{
		{"not numeric", "abc", v.FieldErrors{"Price must be a number"}},
		{"empty", "", v.FieldErrors{"Price is required"}},
		{"blank", "  ", v.FieldErrors{"Price is required"}},
		{"missing", nil, v.FieldErrors{"Price is required"}},
		{"negative", "-1", v.FieldErrors{"Price should be more than 0"}},
		{"zero", "0", v.FieldErrors{}},
		{"padded", " 12.5 ", v.FieldErrors{}},
		{"go int", 3, v.FieldErrors{}},
		{"go float", 2.5, v.FieldErrors{}},
		{"bool", true, v.FieldErrors{"Price must be a number"}},
		{"infinite", "Inf", v.FieldErrors{"Price must be a number"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validItem()
			c["price"] = tt.in
			assert.Equal(t, tt.want, s.Validate(c).Errors.Errors("price"))
		})
	}
}

func TestValidate_NegativeZeroPrice(t *testing.T) {
	s := newItemSchema(t)
	c := validItem()
	c["price"] = "-0"

	res := s.Validate(c)
	require.True(t, res.OK(), res.Errors.Error())
	assert.False(t, math.Signbit(res.Record.Float("price")))

	b, err := res.Record.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":0,`)

	c["price"] = math.Copysign(0, -1)
	assert.False(t, math.Signbit(s.Validate(c).Record.Float("price")))
}

func TestValidate_RejectsSentinel(t *testing.T) {
	s := newItemSchema(t)
	c := validItem()
	c["category"] = "uncategorised"

	res := s.Validate(c)
	require.False(t, res.OK())
	assert.Equal(t, []string{"category"}, res.Errors.Failing())
	assert.Equal(t, v.FieldErrors{"Choose category other than uncategorised"}, res.Errors.Errors("category"))
}

func TestValidate_BooleanNeverFails(t *testing.T) {
	s := newItemSchema(t)

	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{"", false},
		{"on", true},
		{"false", true},
		{"off", true},
		{"0", true},
		{" ", true},
		{"true", true},
		{"yes", true},
		{true, true},
		{false, false},
		{0, false},
		{1, true},
		{struct{}{}, true},
	}
	for _, tt := range tests {
		c := validItem()
		c["featured"] = tt.in
		res := s.Validate(c)
		require.True(t, res.OK(), "%v: %s", tt.in, res.Errors.Error())
		assert.Equal(t, tt.want, res.Record.Bool("featured"), "%#v", tt.in)
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	s := v.MustSchema(
		v.Field("code", v.TypeString,
			v.MinLength(3, "too short"),
			v.Satisfies(v.Matches(regexp.MustCompile(`^[a-z]+$`)), "lowercase only"),
		),
	)

	res := s.Validate(v.Candidate{"code": "A1"})
	assert.Equal(t, v.FieldErrors{"too short", "lowercase only"}, res.Errors.Errors("code"))
}

func TestValidate_IgnoresUnknownKeys(t *testing.T) {
	s := newItemSchema(t)
	c := validItem()
	c["colour"] = "red"

	res := s.Validate(c)
	require.True(t, res.OK())
	assert.False(t, res.Errors.Contains("colour"))
	_, ok := res.Record.Get("colour")
	assert.False(t, ok)
}

func TestValidate_CoercionsAreHoisted(t *testing.T) {
	f := v.Field("code", v.TypeString,
		v.MinLength(3, "too short"),
		v.Coerce(v.CoerceTrim, "must be text"),
	)
	require.Len(t, f.Constraints, 2)
	assert.Equal(t, v.KindCoerce, f.Constraints[0].Kind)
	assert.Equal(t, v.KindMinLength, f.Constraints[1].Kind)

	s := v.MustSchema(f)
	assert.Equal(t, v.FieldErrors{"too short"}, s.Validate(v.Candidate{"code": " ab "}).Errors.Errors("code"))
}

func TestValidate_ZeroAgainstThreshold(t *testing.T) {
	s := v.MustSchema(
		v.Field("low", v.TypeNumber, v.MinValue(1, "at least one")),
		v.Field("high", v.TypeNumber, v.MaxValue(-1, "at most minus one")),
		v.Field("inside", v.TypeNumber, v.MinValue(-1, "low"), v.MaxValue(1, "high")),
	)

	res := s.Validate(v.Candidate{"low": 0, "high": "0", "inside": 0.0})
	assert.Equal(t, v.FieldErrors{"at least one"}, res.Errors.Errors("low"))
	assert.Equal(t, v.FieldErrors{"at most minus one"}, res.Errors.Errors("high"))
	assert.Empty(t, res.Errors.Errors("inside"))
}

func TestValidate_OptionalFieldsSkipBounds(t *testing.T) {
	s := v.MustSchema(
		v.Field("nickname", v.TypeString, v.MinLength(3, "too short")),
		v.Field("age", v.TypeNumber, v.MinValue(18, "too young")),
	)

	res := s.Validate(v.Candidate{})
	require.True(t, res.OK())
	assert.Equal(t, "", res.Record.String("nickname"))
	assert.Equal(t, float64(0), res.Record.Float("age"))
}

func TestValidate_Concurrent(t *testing.T) {
	s := newItemSchema(t)
	want := s.Validate(validItem())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, s.Validate(validItem()))
			}
		}()
	}
	wg.Wait()
}

func TestValidateField(t *testing.T) {
	s := newItemSchema(t)
	c := v.Candidate{"name": "ab"}

	assert.Equal(t, v.FieldErrors{"Name must be more than 5 characters"}, v.ValidateField(s, c, "name"))
	assert.Equal(t, v.FieldErrors{"Price is required"}, v.ValidateField(s, c, "price"))

	ok := v.ValidateField(s, c, "featured")
	assert.NotNil(t, ok)
	assert.Empty(t, ok)

	assert.Nil(t, v.ValidateField(s, c, "colour"))
}
