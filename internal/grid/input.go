package grid

import (
	"context"

	"github.com/m4theushw/material-ui-x/internal/input/key"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// HandleCellKeyDown routes a key press on a cell. Space on a grouping cell
// toggles its group, editing keys go to the editing controller and arrows
// move the focus. handled is false when the key was ignored.
func (g *Grid) HandleCellKeyDown(ctx context.Context, id rows.ID, field string, ev key.Event) (handled bool, err error) {
	if id, err = canonicalID(id); err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return false, ErrClosed
	}

	if g.editing.Mode(id, field) == store.CellModeView && ev.IsRune() && ev.Rune == ' ' && !ev.HasModifiers() {
		if n, ok := g.grouping.ToggleTarget(g.store.Get(), id, field); ok {
			return true, g.setExpansion(n.ID, !n.ChildrenExpanded)
		}
	}

	handled, err = g.editing.HandleKeyDown(ctx, id, field, ev)
	if handled || err != nil {
		return handled, err
	}
	if g.editing.Mode(id, field) == store.CellModeEdit {
		return false, nil
	}

	switch ev.Key {
	case key.KeyDown:
		g.moveFocus(id, field, 1, 0)
	case key.KeyUp:
		g.moveFocus(id, field, -1, 0)
	case key.KeyRight:
		g.moveFocus(id, field, 0, 1)
	case key.KeyLeft:
		g.moveFocus(id, field, 0, -1)
	default:
		return false, nil
	}
	return true, nil
}

// HandleCellClick focuses the clicked cell.
func (g *Grid) HandleCellClick(id rows.ID, field string) {
	id, err := canonicalID(id)
	if err != nil {
		return
	}
	g.lock()
	defer g.unlock()
	g.setCellFocus(id, field)
}

// HandleCellDoubleClick starts editing an editable cell.
func (g *Grid) HandleCellDoubleClick(ctx context.Context, id rows.ID, field string) (bool, error) {
	id, err := canonicalID(id)
	if err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return false, ErrClosed
	}
	return g.editing.HandleDoubleClick(ctx, id, field)
}

// HandleCellFocusOut commits a cell in edit mode when focus leaves it.
func (g *Grid) HandleCellFocusOut(ctx context.Context, id rows.ID, field string) (bool, error) {
	id, err := canonicalID(id)
	if err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()
	if g.closed {
		return false, ErrClosed
	}
	return g.editing.HandleFocusOut(ctx, id, field)
}
