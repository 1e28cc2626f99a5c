package columns

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a field has no column.
	ErrColumnNotFound = errors.New("columns: column not found")

	// ErrDuplicateField is returned when two columns share a field.
	ErrDuplicateField = errors.New("columns: duplicate field")

	// ErrEmptyField is returned for a column without a field.
	ErrEmptyField = errors.New("columns: field is required")

	// ErrUnknownType is returned for an unregistered column type.
	ErrUnknownType = errors.New("columns: unknown column type")

	// ErrMissingActions is returned when an actions column has no GetActions.
	ErrMissingActions = errors.New("columns: actions column requires GetActions")
)

// FieldError attaches a field to a column error.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Field)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error { return e.Err }
