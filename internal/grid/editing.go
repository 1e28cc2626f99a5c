package grid

import (
	"context"
	"time"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/editing"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// editHost is the grid as seen by the editing controller. Its methods run
// with the grid lock held.
type editHost struct{ g *Grid }

func (h editHost) State() *store.State { return h.g.store.Get() }

func (h editHost) SetEditing(fn func(store.EditingState) store.EditingState) {
	h.g.store.Set(func(s store.State) store.State {
		s.Editing = fn(s.Editing)
		return s
	})
	h.g.render()
}

func (h editHost) IsCellEditable(id rows.ID, field string) bool {
	return h.g.isCellEditable(id, field)
}

func (h editHost) CellParams(id rows.ID, field string) (columns.CellParams, *columns.ColDef, error) {
	return h.g.cellParams(id, field)
}

func (h editHost) UpdateRows(updates []rows.Row) error { return h.g.registry.UpdateRows(updates) }

func (h editHost) Await(fn func()) { h.g.await(fn) }

func (h editHost) Publish(ev event.TopicProvider) { h.g.publish(ev) }

func (h editHost) SetCellFocus(id rows.ID, field string) { h.g.setCellFocus(id, field) }

func (h editHost) MoveFocus(id rows.ID, field string, move editing.FocusMove) {
	switch move {
	case editing.FocusBelow:
		h.g.moveFocus(id, field, 1, 0)
	case editing.FocusRight:
		h.g.moveFocus(id, field, 0, 1)
	case editing.FocusLeft:
		h.g.moveFocus(id, field, 0, -1)
	}
}

func (g *Grid) cellParams(id rows.ID, field string) (columns.CellParams, *columns.ColDef, error) {
	id, err := canonicalID(id)
	if err != nil {
		return columns.CellParams{}, nil, err
	}
	s := g.store.Get()
	c, err := s.Columns.Column(field)
	if err != nil {
		return columns.CellParams{}, nil, err
	}
	row, ok := s.Rows.IDToRow[id]
	if !ok {
		return columns.CellParams{}, nil, &rows.NotFoundError{ID: id}
	}
	n, _ := s.Rows.Tree.Node(id)
	p := columns.CellParams{ID: id, Field: field, Row: row, Node: n}
	p.Value = c.Value(p)
	return p, c, nil
}

// isCellEditable allows edits on data rows of editable, non-grouping
// columns that pass the isCellEditable option.
func (g *Grid) isCellEditable(id rows.ID, field string) bool {
	if grouping.IsGroupingColumn(field) {
		return false
	}
	p, c, err := g.cellParams(id, field)
	if err != nil || !c.Editable {
		return false
	}
	if p.Node != nil && p.Node.IsGroup() {
		return false
	}
	if fn := g.opts.isCellEditable; fn != nil {
		return fn(p)
	}
	return true
}

// CellMode returns the mode of a cell.
func (g *Grid) CellMode(id rows.ID, field string) store.CellMode {
	id, err := canonicalID(id)
	if err != nil {
		return store.CellModeView
	}
	g.lock()
	defer g.unlock()
	return g.editing.Mode(id, field)
}

// IsCellEditable reports whether a cell accepts edits.
func (g *Grid) IsCellEditable(id rows.ID, field string) bool {
	id, err := canonicalID(id)
	if err != nil {
		return false
	}
	g.lock()
	defer g.unlock()
	return g.isCellEditable(id, field)
}

// EditCellProps returns the staged props of a cell in edit mode.
func (g *Grid) EditCellProps(id rows.ID, field string) (columns.EditCellProps, bool) {
	id, err := canonicalID(id)
	if err != nil {
		return columns.EditCellProps{}, false
	}
	g.lock()
	defer g.unlock()
	return g.store.Get().Editing.Props(id, field)
}

// StartCellEditMode puts a view cell in edit mode.
func (g *Grid) StartCellEditMode(id rows.ID, field string) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	if _, ok := g.store.Get().Rows.IDToRow[id]; !ok {
		return &rows.NotFoundError{ID: id}
	}
	return g.editing.Start(id, field, events.StartReasonAPI)
}

// StopCellEditMode leaves edit mode, committing the staged value unless
// p.IgnoreModifications is set. It may block on processRowUpdate.
func (g *Grid) StopCellEditMode(ctx context.Context, p editing.StopParams) (bool, error) {
	id, err := canonicalID(p.ID)
	if err != nil {
		return false, err
	}
	p.ID = id
	g.lock()
	defer g.unlock()
	if g.closed {
		return false, ErrClosed
	}
	return g.editing.Stop(ctx, p)
}

// SetEditCellValue stages a value for a cell in edit mode. It may block on
// preProcessEditCellProps and reports whether the value was staged.
func (g *Grid) SetEditCellValue(ctx context.Context, id rows.ID, field string, value any) (bool, error) {
	id, err := canonicalID(id)
	if err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return false, ErrClosed
	}
	return g.editing.SetEditCellValue(ctx, id, field, value)
}

// SetEditCellValueDebounced stages a value after d, replacing any change
// still waiting for the cell.
func (g *Grid) SetEditCellValueDebounced(ctx context.Context, id rows.ID, field string, value any, d time.Duration) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	return g.editing.SetEditCellValueDebounced(ctx, id, field, value, d)
}

// SetProcessRowUpdate replaces the row update hook.
func (g *Grid) SetProcessRowUpdate(fn editing.ProcessRowUpdate, onError func(error)) {
	g.lock()
	defer g.unlock()
	g.editing.SetProcessRowUpdate(fn, onError)
}

// CellValue returns the value of a cell as its column's getter derives it.
func (g *Grid) CellValue(id rows.ID, field string) (any, error) {
	g.lock()
	defer g.unlock()
	p, _, err := g.cellParams(id, field)
	return p.Value, err
}

// FormattedValue returns the cell value rendered by its column formatter.
func (g *Grid) FormattedValue(id rows.ID, field string) (string, error) {
	g.lock()
	defer g.unlock()
	p, c, err := g.cellParams(id, field)
	if err != nil {
		return "", err
	}
	return c.Format(p.Value, p), nil
}
