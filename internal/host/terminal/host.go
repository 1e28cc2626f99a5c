package terminal

import (
	"context"
	"log/slog"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/input/pointer"
	"github.com/m4theushw/material-ui-x/internal/resize"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

// DefaultCellWidth is the column width unit covered by one terminal cell.
const DefaultCellWidth = 8

// Host translates terminal events into grid input.
type Host struct {
	grid      *grid.Grid
	cellWidth float64
	clicks    *pointer.ClickTracker
	held      pointer.Buttons
	logger    *slog.Logger
}

// Option configures a Host.
type Option func(*Host)

// WithCellWidth sets the width units per terminal cell.
func WithCellWidth(w float64) Option {
	return func(h *Host) {
		if w > 0 {
			h.cellWidth = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// New creates a host for g.
func New(g *grid.Grid, opts ...Option) *Host {
	h := &Host{
		grid:      g,
		cellWidth: DefaultCellWidth,
		clicks:    pointer.NewClickTracker(),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With("component", "terminal")
	// Terminal clicks land on whole cells, one cell apart at most.
	h.clicks.MaxDistance = h.cellWidth
	return h
}

// Handle routes one terminal event. handled is false for events the grid
// ignored, so the caller can apply its own bindings.
func (h *Host) Handle(ctx context.Context, ev tcell.Event) (handled bool, err error) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ctx, e)
	case *tcell.EventMouse:
		return h.handleMouse(ctx, e)
	case *tcell.EventResize:
		w, _ := e.Size()
		h.grid.SetViewportWidth(float64(w) * h.cellWidth)
		return true, nil
	}
	return false, nil
}

func (h *Host) handleKey(ctx context.Context, e *tcell.EventKey) (bool, error) {
	kev, ok := convertKey(e)
	if !ok {
		return false, nil
	}
	cell, ok := h.grid.FocusedCell()
	if !ok {
		return false, nil
	}
	return h.grid.HandleCellKeyDown(ctx, cell.ID, cell.Field, kev)
}

func (h *Host) handleMouse(ctx context.Context, e *tcell.EventMouse) (bool, error) {
	x, y := e.Position()
	buttons := convertButtons(e.Buttons())
	pe := pointer.Event{
		X:         h.toUnits(x),
		Y:         float64(y),
		Buttons:   buttons,
		Modifiers: convertMod(e.Modifiers()),
		Timestamp: e.When(),
	}
	pressed := buttons&^h.held
	h.held = buttons

	if h.grid.ResizingColumn() != "" {
		if buttons == 0 {
			h.grid.PointerUp(pe)
		} else {
			h.grid.PointerMove(pe)
		}
		return true, nil
	}
	if pressed&pointer.HeldPrimary == 0 {
		return false, nil
	}
	pe.Button = pointer.ButtonPrimary

	if y == 0 {
		field, ok := h.SeparatorAt(x)
		if !ok {
			return false, nil
		}
		return h.grid.SeparatorPointerDown(field, resize.SideRight, pe), nil
	}

	id, field, ok := h.CellAt(x, y)
	if !ok {
		h.clicks.Reset()
		return false, nil
	}
	if h.clicks.Record(pe) == 2 {
		return h.grid.HandleCellDoubleClick(ctx, id, field)
	}
	if cur, ok := h.grid.FocusedCell(); ok && (cur.ID != id || cur.Field != field) {
		if _, err := h.grid.HandleCellFocusOut(ctx, cur.ID, cur.Field); err != nil {
			h.logger.Warn("leaving cell failed", "id", cur.ID, "field", cur.Field, "error", err)
		}
	}
	h.grid.HandleCellClick(id, field)
	return true, nil
}

func (h *Host) toUnits(x int) float64 { return float64(x) * h.cellWidth }

// toCell maps a width position to the terminal column containing it.
func (h *Host) toCell(v float64) int { return int(math.Floor(v / h.cellWidth)) }

// span returns the terminal columns [left, right) of visible column i.
func (h *Host) span(i int, meta []float64, width float64) (int, int) {
	return h.toCell(meta[i]), h.toCell(meta[i] + width)
}

// SeparatorAt returns the column whose resize handle covers terminal
// column x: the last cell of a resizable header.
func (h *Host) SeparatorAt(x int) (string, bool) {
	cols := h.grid.VisibleColumns()
	meta := h.grid.ColumnsMeta()
	for i, c := range cols {
		left, right := h.span(i, meta.Positions, c.ComputedWidth)
		if right > left && x == right-1 && c.IsResizable() {
			return c.Field, true
		}
	}
	return "", false
}

// ColumnAt returns the field shown at terminal column x.
func (h *Host) ColumnAt(x int) (string, bool) {
	cols := h.grid.VisibleColumns()
	meta := h.grid.ColumnsMeta()
	for i, c := range cols {
		if left, right := h.span(i, meta.Positions, c.ComputedWidth); x >= left && x < right {
			return c.Field, true
		}
	}
	return "", false
}

// CellAt returns the cell shown at terminal position (x, y).
func (h *Host) CellAt(x, y int) (rows.ID, string, bool) {
	if y < 1 {
		return nil, "", false
	}
	page := h.grid.PageRowIDs()
	if y-1 >= len(page) {
		return nil, "", false
	}
	field, ok := h.ColumnAt(x)
	if !ok {
		return nil, "", false
	}
	return page[y-1], field, true
}
