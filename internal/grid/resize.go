package grid

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/input/pointer"
	"github.com/m4theushw/material-ui-x/internal/resize"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// resizeHost is the grid as seen by the resize controller. Its methods run
// with the grid lock held.
type resizeHost struct{ g *Grid }

func (h resizeHost) Column(field string) (*columns.ColDef, error) {
	return h.g.store.Get().Columns.Column(field)
}

func (h resizeHost) UpdateColumn(c *columns.ColDef) error {
	delete(h.g.liveWidths, c.Field)
	return h.g.updateColumns([]*columns.ColDef{c})
}

func (h resizeHost) SetResizingField(field string) {
	h.g.store.Set(func(s store.State) store.State {
		s.ColumnResize.ResizingColumnField = field
		return s
	})
	h.g.render()
}

func (h resizeHost) Publish(ev event.TopicProvider) { h.g.publish(ev) }

// metaLayout is the layout of a grid nothing renders: bounds come from the
// column positions and live widths are kept until the gesture commits.
type metaLayout struct{ g *Grid }

func (l metaLayout) ColumnBounds(field string) (resize.Bounds, bool) {
	cols := l.g.sel.visibleColumns.Select(l.g.store.Get())
	meta := l.g.sel.columnsMeta.Select(l.g.store.Get())
	for i, c := range cols {
		if c.Field != field {
			continue
		}
		w := c.ComputedWidth
		if live, ok := l.g.liveWidths[field]; ok {
			w = live
		}
		return resize.Bounds{Left: meta.Positions[i], Right: meta.Positions[i] + w}, true
	}
	return resize.Bounds{}, false
}

func (l metaLayout) SetColumnWidth(field string, width float64) {
	l.g.liveWidths[field] = width
}

// SetLayout replaces the live layout column resizing writes to.
func (g *Grid) SetLayout(l resize.Layout) {
	g.lock()
	defer g.unlock()
	if l == nil {
		l = metaLayout{g}
	}
	g.resize.SetLayout(l)
}

// ResizingColumn returns the field of the column being resized, or "".
func (g *Grid) ResizingColumn() string {
	g.lock()
	defer g.unlock()
	return g.store.Get().ColumnResize.ResizingColumnField
}

// SeparatorPointerDown starts resizing field from a press on one of its
// separators. It reports whether a gesture started.
func (g *Grid) SeparatorPointerDown(field string, side resize.Side, e pointer.Event) bool {
	g.lock()
	defer g.unlock()
	return g.resize.SeparatorDown(field, side, e)
}

// SeparatorTouchStart starts resizing field from a touch.
func (g *Grid) SeparatorTouchStart(field string, side resize.Side, e pointer.TouchEvent) bool {
	g.lock()
	defer g.unlock()
	return g.resize.TouchStart(field, side, e)
}

// PointerMove drives a running resize gesture.
func (g *Grid) PointerMove(e pointer.Event) {
	g.lock()
	defer g.unlock()
	g.resize.PointerMove(e)
}

// PointerUp ends a running resize gesture.
func (g *Grid) PointerUp(e pointer.Event) {
	g.lock()
	defer g.unlock()
	g.resize.PointerUp(e)
}

// TouchMove drives a running touch resize gesture.
func (g *Grid) TouchMove(e pointer.TouchEvent) {
	g.lock()
	defer g.unlock()
	g.resize.TouchMove(e)
}

// TouchEnd ends a running touch resize gesture.
func (g *Grid) TouchEnd(e pointer.TouchEvent) {
	g.lock()
	defer g.unlock()
	g.resize.TouchEnd(e)
}
