package editing

import (
	"errors"
	"fmt"

	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

var (
	// ErrNotEditable is returned when an edit targets a read-only cell.
	ErrNotEditable = errors.New("editing: cell is not editable")

	// ErrNotInMode is returned when a cell is not in the mode an operation
	// requires.
	ErrNotInMode = errors.New("editing: cell is not in the required mode")
)

// CellError reports a misuse of the editing API on one cell.
type CellError struct {
	ID    rows.ID
	Field string

	// Mode is the mode the operation required, for ErrNotInMode.
	Mode store.CellMode

	Err error
}

// Error implements the error interface.
func (e *CellError) Error() string {
	if errors.Is(e.Err, ErrNotInMode) {
		return fmt.Sprintf("editing: the cell with id=%v and field=%s is not in %s mode", e.ID, e.Field, e.Mode)
	}
	return fmt.Sprintf("editing: the cell with id=%v and field=%s: %v", e.ID, e.Field, e.Err)
}

// Unwrap returns the sentinel error.
func (e *CellError) Unwrap() error { return e.Err }
