// Package apperr carries the error taxonomy shared by the core services:
// business-rule violations (ValidationError) and missing-resource lookups
// (ErrNotFound). Anything else is treated as an infrastructure failure.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for lookups that reference a missing entity or
// relationship.
var ErrNotFound = errors.New("not found")

// ValidationError signals a business-rule violation. It is always surfaced to
// the caller and never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func NotFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
