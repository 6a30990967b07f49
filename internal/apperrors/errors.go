package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create or
// transition a resource into a state it already holds, e.g. approving
// an entry twice.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that a mutation was attempted without the
// required capability. The caller is never silently no-oped.
var ErrForbidden = errors.New("operation requires the manage capability")

// ValidationError reports a validation failure naming the offending
// field. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
