package session_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/collect"
	"github.com/Gobd/formvalidation/product"
	"github.com/Gobd/formvalidation/session"
	"github.com/Gobd/formvalidation/touched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	records []v.Record
	err     error
}

func (r *recorder) Submit(_ context.Context, rec v.Record) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func fill(s *session.Session) {
	s.Change(collect.Text(product.FieldName, "Blue Shirt"))
	s.Change(collect.Text(product.FieldDescription, "A nice blue cotton shirt"))
	s.Change(collect.Text(product.FieldPrice, "19.99"))
	s.Change(collect.Text(product.FieldCategory, "shirts"))
	s.Change(collect.Checkbox(product.FieldIsFeatured, true))
}

func TestSession_InitialState(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))

	assert.False(t, s.Result().OK())
	assert.Len(t, s.Result().Errors.Failing(), 4)
	assert.Empty(t, s.Visible().Failing(), "nothing touched yet")
	assert.Zero(t, s.Touched().Len())
}

func TestSession_ChangeGatesDisplay(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))

	res := s.Change(collect.Text(product.FieldPrice, "-5"))
	assert.Len(t, res.Errors.Failing(), 4, "every field is still validated")
	assert.Equal(t, []string{product.FieldPrice}, s.Visible().Failing())
	assert.Equal(t, v.FieldErrors{"Price should be more than 0"}, s.Visible().Errors(product.FieldPrice))

	s.Change(collect.Text(product.FieldPrice, "5"))
	assert.Empty(t, s.Visible().Failing())
	assert.True(t, s.Touched().Has(product.FieldPrice))
}

func TestSession_Set(t *testing.T) {
	s := session.New(product.Schema(product.Handle))
	s.Set(product.FieldName, "Hi")

	assert.Equal(t, v.FieldErrors{"Name must be more than 5 characters"}, s.Visible().Errors(product.FieldName))
	assert.Equal(t, "Hi", s.Candidate()[product.FieldName])
}

func TestSession_SubmitInvalidKeepsTouchedGating(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))
	s.Change(collect.Text(product.FieldPrice, "-5"))
	require.Equal(t, []string{product.FieldPrice}, touched.Displayed(s.Result().Errors, s.Touched()))
	rec := &recorder{}

	res, err := s.Submit(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Empty(t, rec.records)

	assert.Equal(t, []string{product.FieldPrice}, s.Touched().Names())
	assert.Equal(t, []string{product.FieldPrice}, s.Visible().Failing())
	assert.Len(t, touched.Displayed(res.Errors, touched.All), 4)
}

func TestSession_SubmitValidResets(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))
	fill(s)
	rec := &recorder{}

	res, err := s.Submit(context.Background(), rec)
	require.NoError(t, err)
	require.True(t, res.OK())
	require.Len(t, rec.records, 1)

	p, err := product.Decode(rec.records[0])
	require.NoError(t, err)
	assert.Equal(t, "Blue Shirt", p.Name)
	assert.True(t, p.IsFeatured)

	assert.Zero(t, s.Touched().Len())
	assert.Empty(t, s.Candidate())
	assert.False(t, s.Result().OK())
}

func TestSession_SubmitterError(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))
	fill(s)
	boom := errors.New("boom")

	res, err := s.Submit(context.Background(), &recorder{err: boom})
	require.ErrorIs(t, err, boom)
	assert.True(t, res.OK())
	assert.NotEmpty(t, s.Candidate(), "values are kept when delivery fails")
}

func TestSession_NoSubmitter(t *testing.T) {
	s := session.New(product.Schema(product.Reactive))
	fill(s)

	_, err := s.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNoSubmitter)
}

func TestSubmit_Snapshot(t *testing.T) {
	schema := product.Schema(product.Snapshot)
	form := collect.Form(url.Values{
		product.FieldName:        {"Blue Shirt"},
		product.FieldDescription: {"A nice blue cotton shirt"},
		product.FieldPrice:       {"19.99"},
		product.FieldCategory:    {"shirts"},
		product.FieldIsFeatured:  {"on"},
	})

	var got v.Record
	res, err := session.Submit(context.Background(), schema, form, session.SubmitterFunc(func(_ context.Context, rec v.Record) error {
		got = rec
		return nil
	}))
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, res.Record, got)
	assert.InDelta(t, 19.99, got.Float(product.FieldPrice), 1e-9)
}

func TestSubmit_SnapshotInvalid(t *testing.T) {
	called := false
	res, err := session.Submit(context.Background(), product.Schema(product.Snapshot), collect.Form(url.Values{}),
		session.SubmitterFunc(func(context.Context, v.Record) error {
			called = true
			return nil
		}))
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.False(t, called)
	assert.Len(t, res.Errors.Failing(), 4)
}
