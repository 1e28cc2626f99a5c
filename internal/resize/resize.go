package resize

import (
	"log/slog"

	"github.com/m4theushw/material-ui-x/internal/clock"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/input/pointer"
)

// Side is the side of the column header a separator sits on.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

// String returns the side name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Bounds is the horizontal extent of a rendered column header.
type Bounds struct {
	Left, Right float64
}

// Layout is the live rendering of the columns.
type Layout interface {
	// ColumnBounds returns the current extent of a column header.
	ColumnBounds(field string) (Bounds, bool)

	// SetColumnWidth resizes the header and cells of a column.
	SetColumnWidth(field string, width float64)
}

// Host is the grid as seen by the controller.
type Host interface {
	Column(field string) (*columns.ColDef, error)

	// UpdateColumn commits a column definition to the registry.
	UpdateColumn(c *columns.ColDef) error

	// SetResizingField records the column being resized, "" for none.
	SetResizingField(field string)

	Publish(ev event.TopicProvider)
}

// Config configures a Controller.
type Config struct {
	Scheduler clock.Scheduler
	Source    string
	Logger    *slog.Logger
}

// Controller tracks one resize gesture at a time. It is not safe for
// concurrent use; the grid serializes calls.
type Controller struct {
	host   Host
	layout Layout
	cfg    Config
	logger *slog.Logger

	col    *columns.ColDef
	side   Side
	offset float64

	touch     bool
	touchID   int
	stopTimer clock.Timer
}

// New creates a controller. layout may be nil when nothing is rendered.
func New(host Host, layout Layout, cfg Config) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = clock.Real{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{host: host, layout: layout, cfg: cfg, logger: logger.With("component", "columnResize")}
}

// SetLayout replaces the live layout.
func (c *Controller) SetLayout(l Layout) { c.layout = l }

// Active reports whether a gesture is running.
func (c *Controller) Active() bool { return c.col != nil }

// Field returns the column being resized, or "".
func (c *Controller) Field() string {
	if c.col == nil {
		return ""
	}
	return c.col.Field
}

func (c *Controller) bounds() Bounds {
	if c.layout != nil {
		if b, ok := c.layout.ColumnBounds(c.col.Field); ok {
			return b
		}
	}
	return Bounds{Right: c.col.ComputedWidth}
}

// offsetToSeparator is the distance between the press and the separator;
// the separator has padding, so a press is rarely right on the edge.
func offsetToSeparator(x float64, b Bounds, side Side) float64 {
	if side == SideLeft {
		return x - b.Left
	}
	return b.Right - x
}

func newWidth(offset, x float64, b Bounds, side Side) float64 {
	if side == SideRight {
		return offset + x - b.Left
	}
	return offset + b.Right - x
}

func (c *Controller) start(field string, side Side, x float64) bool {
	col, err := c.host.Column(field)
	if err != nil || !col.IsResizable() {
		return false
	}
	if c.col != nil {
		c.finish()
	}
	c.col = col.Clone()
	c.side = side
	c.offset = offsetToSeparator(x, c.bounds(), side)

	c.logger.Debug("column resize started", "field", field, "side", side)
	c.host.SetResizingField(field)
	c.host.Publish(event.NewEvent(events.TopicColumnResizeStart, events.ColumnResize{
		Field: field, Width: c.col.ComputedWidth,
	}, c.cfg.Source))
	return true
}

func (c *Controller) move(x float64) {
	w := c.col.ClampWidth(newWidth(c.offset, x, c.bounds(), c.side))
	c.col.Width = w
	c.col.ComputedWidth = w
	c.col.Flex = 0
	if c.layout != nil {
		c.layout.SetColumnWidth(c.col.Field, w)
	}
	c.host.Publish(event.NewEvent(events.TopicColumnResize, events.ColumnResize{
		Field: c.col.Field, Width: w,
	}, c.cfg.Source))
}

func (c *Controller) finish() {
	col := c.col
	c.col = nil
	c.touch = false

	if err := c.host.UpdateColumn(col); err != nil {
		c.logger.Warn("column resize commit failed", "field", col.Field, "error", err)
	}
	c.logger.Debug("column resize committed", "field", col.Field, "width", col.Width)

	if c.stopTimer != nil {
		c.stopTimer.Stop()
	}
	var t clock.Timer
	t = c.cfg.Scheduler.AfterFunc(0, func() {
		if c.stopTimer != t {
			return
		}
		c.stopTimer = nil
		c.host.Publish(event.NewEvent(events.TopicColumnResizeStop, events.ColumnResize{
			Field: col.Field, Width: col.ComputedWidth,
		}, c.cfg.Source))
		c.host.Publish(event.NewEvent(events.TopicColumnWidthChanged, events.ColumnResize{
			Field: col.Field, Width: col.ComputedWidth,
		}, c.cfg.Source))
		if !c.Active() {
			c.host.SetResizingField("")
		}
	})
	c.stopTimer = t
}

// SeparatorDown starts a gesture from a press on the separator of field.
// It reports whether a gesture started.
func (c *Controller) SeparatorDown(field string, side Side, e pointer.Event) bool {
	if e.Button != pointer.ButtonPrimary {
		return false
	}
	return c.start(field, side, e.X)
}

// PointerMove resizes the column under a running mouse gesture.
func (c *Controller) PointerMove(e pointer.Event) {
	if c.col == nil || c.touch {
		return
	}
	if e.Buttons == 0 {
		c.finish()
		return
	}
	c.move(e.X)
}

// PointerUp ends a running mouse gesture.
func (c *Controller) PointerUp(pointer.Event) {
	if c.col == nil || c.touch {
		return
	}
	c.finish()
}

// TouchStart starts a gesture from the first changed touch.
func (c *Controller) TouchStart(field string, side Side, e pointer.TouchEvent) bool {
	if len(e.Changed) == 0 {
		return false
	}
	t := e.Changed[0]
	if !c.start(field, side, t.X) {
		return false
	}
	c.touch = true
	c.touchID = t.ID
	return true
}

// TouchMove follows the finger that started the gesture.
func (c *Controller) TouchMove(e pointer.TouchEvent) {
	if c.col == nil || !c.touch {
		return
	}
	t, ok := e.Find(c.touchID)
	if !ok {
		return
	}
	c.move(t.X)
}

// TouchEnd ends the gesture when its finger lifts.
func (c *Controller) TouchEnd(e pointer.TouchEvent) {
	if c.col == nil || !c.touch {
		return
	}
	if _, ok := e.Find(c.touchID); !ok {
		return
	}
	c.finish()
}

// Close drops a pending stop notification.
func (c *Controller) Close() {
	if c.stopTimer != nil {
		c.stopTimer.Stop()
		c.stopTimer = nil
	}
}
