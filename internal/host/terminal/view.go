package terminal

import (
	"context"
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/store"
)

var (
	styleHeader  = tcell.StyleDefault.Bold(true).Reverse(true)
	styleResize  = styleHeader.Underline(true)
	styleFocused = tcell.StyleDefault.Reverse(true)
	styleEditing = tcell.StyleDefault.Underline(true)
	styleInvalid = styleEditing.Foreground(tcell.ColorRed)
)

// Draw renders the header and the current page onto s.
func (h *Host) Draw(s tcell.Screen) {
	s.Clear()
	cols := h.grid.VisibleColumns()
	meta := h.grid.ColumnsMeta()
	resizing := h.grid.ResizingColumn()

	for i, c := range cols {
		left, right := h.span(i, meta.Positions, c.ComputedWidth)
		title := c.HeaderName
		if title == "" {
			title = c.Field
		}
		st := styleHeader
		if c.Field == resizing {
			st = styleResize
		}
		drawText(s, left, 0, right-left, title, st)
	}

	focus, hasFocus := h.grid.FocusedCell()
	for y, id := range h.grid.PageRowIDs() {
		node, _ := h.grid.RowNode(id)
		for i, c := range cols {
			left, right := h.span(i, meta.Positions, c.ComputedWidth)
			text, err := h.grid.FormattedValue(id, c.Field)
			if err != nil {
				continue
			}
			st := tcell.StyleDefault
			if props, ok := h.grid.EditCellProps(id, c.Field); ok {
				text = columns.FormatValue(props.Value)
				st = styleEditing
				if props.Error {
					st = styleInvalid
				}
			} else if hasFocus && focus == (store.CellRef{ID: id, Field: c.Field}) {
				st = styleFocused
			}
			if grouping.IsGroupingColumn(c.Field) && node != nil {
				marker := "  "
				if node.IsGroup() {
					marker = "▸ "
					if node.ChildrenExpanded {
						marker = "▾ "
					}
				}
				text = strings.Repeat("  ", node.Depth) + marker + text
			}
			drawText(s, left, y+1, right-left, text, st)
		}
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y, width int, text string, st tcell.Style) {
	col := 0
	for _, r := range text {
		if col >= width-1 {
			break
		}
		s.SetContent(x+col, y, r, nil, st)
		col++
	}
	for ; col < width; col++ {
		s.SetContent(x+col, y, ' ', nil, st)
	}
}

// Run draws the grid and processes events until ctx is done or Ctrl+C is
// pressed. Redraws follow the grid's render notifications.
func (h *Host) Run(ctx context.Context, s tcell.Screen) error {
	s.EnableMouse()
	w, _ := s.Size()
	h.grid.SetViewportWidth(float64(w) * h.cellWidth)

	cancel := h.grid.OnRender(func(*store.State) {
		// PostEvent fails only when the queue is full; a later render
		// notification queues another redraw.
		_ = s.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer cancel()
	h.Draw(s)

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if k, isKey := ev.(*tcell.EventKey); isKey && k.Key() == tcell.KeyCtrlC {
				return nil
			}
			if _, err := h.Handle(ctx, ev); err != nil && !errors.Is(err, context.Canceled) {
				h.logger.Warn("event failed", "error", err)
			}
			h.Draw(s)
		}
	}
}
