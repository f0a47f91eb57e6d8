package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
//
// A ValidationError means the input was malformed or out of range. Aggregate
// methods return it before touching any state, so a failed call leaves the
// aggregate unchanged.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StateError reports an operation that is well-formed but would violate an
// aggregate invariant in the current state (over-reservation, an illegal
// status transition, deactivating stocked inventory). It wraps ErrConflict:
// the request should be rejected, not retried, because retrying against the
// same state will fail the same way.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConflict.Error(), e.Op, e.Reason)
}

func (e *StateError) Unwrap() error {
	return ErrConflict
}

// NewStateError creates a StateError with a formatted reason.
func NewStateError(op, format string, args ...any) *StateError {
	return &StateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
