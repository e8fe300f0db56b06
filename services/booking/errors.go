package booking

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDeleteNotConfirmed = errors.New("deletion was not confirmed")
)

// ValidationError rejects a change that would break a booking invariant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PersistError means the collection could not be written. The in-memory
// collection still holds the state from before the attempt.
type PersistError struct {
	Op  string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
