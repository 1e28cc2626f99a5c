package grid

import "errors"

var (
	// ErrNotGroup is returned when an expansion targets a leaf row.
	ErrNotGroup = errors.New("grid: row is not a group")

	// ErrColumnNotSortable is returned when sorting a column that does not
	// allow it.
	ErrColumnNotSortable = errors.New("grid: column is not sortable")

	// ErrInvalidPageSize is returned for a page size below one.
	ErrInvalidPageSize = errors.New("grid: page size must be positive")

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("grid: closed")
)
