package store

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// State is the grid state tree. A State is never modified after it is
// stored; Set installs a new one and slices or maps are replaced, not
// mutated, so selectors can compare them by reference.
type State struct {
	Rows         RowsState
	Columns      *columns.State
	Filter       filter.State
	Sorting      SortingState
	RowGrouping  RowGroupingState
	Editing      EditingState
	ColumnResize ColumnResizeState
	Focus        FocusState
	Pagination   PaginationState
	Dimensions   DimensionsState
}

// RowsState is the processed row model.
type RowsState struct {
	Tree *tree.Tree

	// IDToRow includes the synthesized rows of group nodes.
	IDToRow map[rows.ID]rows.Row

	// IDs lists every node of Tree in creation order.
	IDs []rows.ID

	GroupingName string

	// TotalRowCount is max(rowCount prop, number of rows).
	TotalRowCount         int
	TotalTopLevelRowCount int
}

// SortingState holds the sort model and its result.
type SortingState struct {
	Model      sorting.Model
	SortedRows []rows.ID
}

// RowGroupingState holds the grouping model.
type RowGroupingState struct {
	Model []string
}

// CellMode is the mode of a cell.
type CellMode string

const (
	CellModeView CellMode = "view"
	CellModeEdit CellMode = "edit"
)

// EditingState holds the staged props of every cell in edit mode.
type EditingState struct {
	Rows map[rows.ID]map[string]columns.EditCellProps
}

// Props returns the staged props of a cell.
func (e EditingState) Props(id rows.ID, field string) (columns.EditCellProps, bool) {
	p, ok := e.Rows[id][field]
	return p, ok
}

// Mode returns the mode of a cell.
func (e EditingState) Mode(id rows.ID, field string) CellMode {
	if _, ok := e.Props(id, field); ok {
		return CellModeEdit
	}
	return CellModeView
}

// With returns a copy holding props for the cell.
func (e EditingState) With(id rows.ID, field string, props columns.EditCellProps) EditingState {
	out := EditingState{Rows: make(map[rows.ID]map[string]columns.EditCellProps, len(e.Rows)+1)}
	for k, v := range e.Rows {
		out.Rows[k] = v
	}
	cells := make(map[string]columns.EditCellProps, len(e.Rows[id])+1)
	for k, v := range e.Rows[id] {
		cells[k] = v
	}
	cells[field] = props
	out.Rows[id] = cells
	return out
}

// Without returns a copy with the cell removed.
func (e EditingState) Without(id rows.ID, field string) EditingState {
	if _, ok := e.Props(id, field); !ok {
		return e
	}
	out := EditingState{Rows: make(map[rows.ID]map[string]columns.EditCellProps, len(e.Rows))}
	for k, v := range e.Rows {
		out.Rows[k] = v
	}
	cells := make(map[string]columns.EditCellProps, len(e.Rows[id]))
	for k, v := range e.Rows[id] {
		if k != field {
			cells[k] = v
		}
	}
	if len(cells) == 0 {
		delete(out.Rows, id)
	} else {
		out.Rows[id] = cells
	}
	return out
}

// ColumnResizeState tracks the column being resized.
type ColumnResizeState struct {
	ResizingColumnField string
}

// CellRef addresses a cell.
type CellRef struct {
	ID    rows.ID
	Field string
}

// FocusState holds the focused cell, if any.
type FocusState struct {
	Cell *CellRef
}

// PaginationState holds the current page.
type PaginationState struct {
	Page     int
	PageSize int
}

// DimensionsState holds the layout inputs the engine needs.
type DimensionsState struct {
	ViewportWidth float64
}
