package rows

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRowID is returned when a row has a missing or unusable id.
	ErrInvalidRowID = errors.New("rows: every row requires a unique id")

	// ErrBatchUpdateNotAllowed is returned when a multi-row update reaches a
	// registry that only accepts single-row updates.
	ErrBatchUpdateNotAllowed = errors.New("rows: updating multiple rows at once requires the pro signature")

	// ErrRowNotFound is returned when an operation targets an unknown row.
	ErrRowNotFound = errors.New("rows: row not found")
)

// IDError reports a row whose id could not be extracted.
type IDError struct {
	Row   Row
	Value any
}

// Error implements the error interface.
func (e *IDError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%v: missing id in row %v; set a row id getter", ErrInvalidRowID, e.Row)
	}
	return fmt.Sprintf("%v: unsupported id %v (%T)", ErrInvalidRowID, e.Value, e.Value)
}

// Unwrap returns ErrInvalidRowID.
func (e *IDError) Unwrap() error { return ErrInvalidRowID }

// NotFoundError reports an unknown row id.
type NotFoundError struct {
	ID ID
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRowNotFound, e.ID)
}

// Unwrap returns ErrRowNotFound.
func (e *NotFoundError) Unwrap() error { return ErrRowNotFound }
