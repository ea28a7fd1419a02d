package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// AggregateError is the failure of a batch of invocations.
// Cause is the first failure in iteration order; Suppressed holds the
// later failures in order, bounded by the configured maximum.
type AggregateError struct {
	Cause      error
	Suppressed []error
}

func (e *AggregateError) Error() string {
	if e.Cause == nil {
		return "lifecycle: aggregate error without cause"
	}
	if len(e.Suppressed) == 0 {
		return e.Cause.Error()
	}
	parts := make([]string, len(e.Suppressed))
	for i := range e.Suppressed {
		parts[i] = e.Suppressed[i].Error()
	}
	return fmt.Sprintf("%s (suppressed %d: %s)",
		e.Cause.Error(), len(e.Suppressed), strings.Join(parts, "; "))
}

// Unwrap returns the primary cause, so errors.Is and errors.As match the
// first failure. Suppressed causes are reachable through Suppressed.
func (e *AggregateError) Unwrap() error {
	return e.Cause
}

// Suppressed returns the suppressed causes of the first AggregateError in
// err's chain, or nil.
func Suppressed(err error) []error {
	var agg *AggregateError
	if !errors.As(err, &agg) {
		return nil
	}
	return agg.Suppressed
}

// suppress attaches failures to trigger as suppressed causes, keeping at
// most limit of them. trigger is returned unchanged when failures is empty,
// and stays the primary cause otherwise.
func suppress(trigger error, failures []error, limit int) error {
	if len(failures) > limit {
		failures = failures[:limit]
	}
	if len(failures) == 0 {
		return trigger
	}
	return &AggregateError{
		Cause:      trigger,
		Suppressed: append([]error(nil), failures...),
	}
}

// extend appends failures to err's suppressed causes when err is an
// AggregateError, so repeated attachment stays one level deep and bounded
// by limit. Other errors get a new AggregateError with err as cause.
func extend(err error, failures []error, limit int) error {
	agg, ok := err.(*AggregateError)
	if !ok {
		return suppress(err, failures, limit)
	}
	merged := make([]error, 0, len(agg.Suppressed)+len(failures))
	merged = append(merged, agg.Suppressed...)
	merged = append(merged, failures...)
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return &AggregateError{Cause: agg.Cause, Suppressed: merged}
}

// flatten expands an AggregateError into its primary and suppressed causes.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	agg, ok := err.(*AggregateError)
	if !ok {
		return []error{err}
	}
	out := make([]error, 0, 1+len(agg.Suppressed))
	out = append(out, agg.Cause)
	return append(out, agg.Suppressed...)
}
