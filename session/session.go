// Package session drives the validation engine the way interactive forms do:
// a reactive [Session] that re-validates on every change and gates error
// display on touched fields, and a one-shot [Submit] for forms that read their
// values only at submission.
package session

import (
	"context"
	"errors"
	"fmt"

	v "github.com/Gobd/formvalidation"
	"github.com/Gobd/formvalidation/collect"
	"github.com/Gobd/formvalidation/touched"
)

// Submitter receives a validated record. Where it goes is up to the caller.
type Submitter interface {
	Submit(ctx context.Context, rec v.Record) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, rec v.Record) error

// Submit implements Submitter.
func (f SubmitterFunc) Submit(ctx context.Context, rec v.Record) error {
	return f(ctx, rec)
}

// ErrNoSubmitter is returned when a valid record has nowhere to go.
var ErrNoSubmitter = errors.New("session: no submitter")

// Session is one reactive editing session: the live candidate, the touched
// set and the latest result. It belongs to a single UI and is not safe for
// concurrent use.
type Session struct {
	schema  v.Schema
	live    *collect.Live
	touched *touched.Set
	result  v.Result
}

// New starts a session for schema. The initial result reflects an empty form.
func New(schema v.Schema) *Session {
	s := &Session{
		schema:  schema,
		live:    collect.NewLive(nil),
		touched: touched.New(),
	}
	s.revalidate()
	return s
}

// Change applies ev, marks its field touched and re-validates the whole form.
func (s *Session) Change(ev collect.Event) v.Result {
	s.touched.Touch(ev.Name)
	s.live.Change(ev)
	return s.revalidate()
}

// Set stores a raw value as if the user had edited field.
func (s *Session) Set(field string, value any) v.Result {
	s.touched.Touch(field)
	s.live.Set(field, value)
	return s.revalidate()
}

// Result returns the latest validation result.
func (s *Session) Result() v.Result {
	return s.result
}

// Candidate returns the current candidate record.
func (s *Session) Candidate() v.Candidate {
	return collect.Collect(s.schema, s.live)
}

// Touched returns the session's touched set.
func (s *Session) Touched() *touched.Set {
	return s.touched
}

// Visible returns the latest error tree with untouched fields emptied.
func (s *Session) Visible() v.ErrorTree {
	return touched.Visible(s.result.Errors, s.touched)
}

// Submit validates the current values and, when they pass, hands the record
// to sub and resets the session. A failed submit leaves the touched set as it
// is; callers that show every error on submit filter with [touched.All].
func (s *Session) Submit(ctx context.Context, sub Submitter) (v.Result, error) {
	res := s.revalidate()
	if !res.OK() {
		return res, nil
	}
	if err := deliver(ctx, sub, res.Record); err != nil {
		return res, err
	}
	s.Reset()
	return res, nil
}

// Reset clears values and touched fields, starting a new session.
func (s *Session) Reset() {
	s.live.Reset()
	s.touched.Reset()
	s.revalidate()
}

func (s *Session) revalidate() v.Result {
	s.result = s.schema.Validate(s.Candidate())
	return s.result
}

// Submit is the snapshot flow: it collects every value from src once,
// validates once and hands a valid record to sub. A validation failure is
// reported in the result, not as an error.
func Submit(ctx context.Context, schema v.Schema, src collect.Source, sub Submitter) (v.Result, error) {
	res := schema.Validate(collect.Collect(schema, src))
	if !res.OK() {
		return res, nil
	}
	if err := deliver(ctx, sub, res.Record); err != nil {
		return res, err
	}
	return res, nil
}

func deliver(ctx context.Context, sub Submitter, rec v.Record) error {
	if sub == nil {
		return ErrNoSubmitter
	}
	if err := sub.Submit(ctx, rec); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	return nil
}
