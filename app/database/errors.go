package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist (including a
// second delete of the same id). Handlers surface it as a generic
// could-not-find message.
var ErrNotFound = errors.New("not found")

// ValidationError is a caller-fixable input problem. Its message is surfaced
// verbatim to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// storeErr wraps a backend failure with the failing operation. Anything that
// is neither ErrNotFound nor a ValidationError is treated as a store error
// and surfaced as a generic failure; no retry.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
