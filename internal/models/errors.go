package models

import (
	"fmt"
)

// ValidationError marks caller input missing a mandatory field. It is
// surfaced to the caller immediately and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// StoreError wraps a persistence backend failure. Backend is the
// reportable store kind; the underlying error is never leaked to callers.
type StoreError struct {
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("lead store %s: %v", e.Backend, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
