package resize

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/m4theushw/material-ui-x/internal/clock"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/input/pointer"
)

type fakeHost struct {
	cols     map[string]*columns.ColDef
	updates  []*columns.ColDef
	resizing []string
	topics   []event.Topic
	widths   []float64
}

func newFakeHost() *fakeHost {
	return &fakeHost{cols: map[string]*columns.ColDef{
		"brand": {Field: "brand", Width: 100, ComputedWidth: 100, MinWidth: 50, MaxWidth: 300},
		"year":  {Field: "year", Width: 100, ComputedWidth: 100, MinWidth: 50, Flex: 1, Resizable: columns.Bool(false)},
	}}
}

func (h *fakeHost) Column(field string) (*columns.ColDef, error) {
	c, ok := h.cols[field]
	if !ok {
		return nil, errors.New("no such column")
	}
	return c, nil
}

func (h *fakeHost) UpdateColumn(c *columns.ColDef) error {
	h.updates = append(h.updates, c)
	h.cols[c.Field] = c
	return nil
}

func (h *fakeHost) SetResizingField(field string) { h.resizing = append(h.resizing, field) }

func (h *fakeHost) Publish(ev event.TopicProvider) {
	h.topics = append(h.topics, ev.EventTopic())
	if e, ok := ev.(event.Event[events.ColumnResize]); ok {
		h.widths = append(h.widths, e.Payload.Width)
	}
}

type fakeLayout struct {
	bounds map[string]Bounds
	set    map[string]float64
}

func (l *fakeLayout) ColumnBounds(field string) (Bounds, bool) {
	b, ok := l.bounds[field]
	return b, ok
}

func (l *fakeLayout) SetColumnWidth(field string, w float64) {
	l.set[field] = w
	b := l.bounds[field]
	b.Right = b.Left + w
	l.bounds[field] = b
}

func newController() (*Controller, *fakeHost, *fakeLayout, *clock.Manual) {
	h := newFakeHost()
	l := &fakeLayout{
		bounds: map[string]Bounds{"brand": {Left: 0, Right: 100}},
		set:    map[string]float64{},
	}
	m := clock.NewManual(time.Unix(0, 0))
	return New(h, l, Config{Scheduler: m, Source: "test"}), h, l, m
}

func held(x float64) pointer.Event {
	return pointer.Event{X: x, Button: pointer.ButtonPrimary, Buttons: pointer.HeldPrimary}
}

func TestController_MouseGesture(t *testing.T) {
	c, h, l, m := newController()

	if !c.SeparatorDown("brand", SideRight, held(98)) {
		t.Fatal("SeparatorDown() = false, want true")
	}
	if !c.Active() || c.Field() != "brand" {
		t.Fatalf("Field() = %q, want brand", c.Field())
	}

	// offset is 2: the press sits 2px left of the right edge.
	c.PointerMove(held(148))
	if got := l.set["brand"]; got != 150 {
		t.Errorf("live width = %v, want 150", got)
	}
	c.PointerMove(held(178))
	if got := l.set["brand"]; got != 180 {
		t.Errorf("live width = %v, want 180", got)
	}
	if len(h.updates) != 0 {
		t.Fatalf("UpdateColumn called %d times during the gesture, want 0", len(h.updates))
	}

	c.PointerUp(pointer.Event{X: 178})
	if c.Active() {
		t.Error("Active() = true after PointerUp")
	}
	if len(h.updates) != 1 {
		t.Fatalf("UpdateColumn called %d times, want 1", len(h.updates))
	}
	if got := h.updates[0]; got.Width != 180 || got.ComputedWidth != 180 || got.Flex != 0 {
		t.Errorf("committed column = %+v, want width 180 and no flex", got)
	}

	want := []event.Topic{events.TopicColumnResizeStart, events.TopicColumnResize, events.TopicColumnResize}
	if diff := cmp.Diff(want, h.topics); diff != "" {
		t.Errorf("topics before tick mismatch (-want +got):\n%s", diff)
	}

	m.Advance(0)
	want = append(want, events.TopicColumnResizeStop, events.TopicColumnWidthChanged)
	if diff := cmp.Diff(want, h.topics); diff != "" {
		t.Errorf("topics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"brand", ""}, h.resizing); diff != "" {
		t.Errorf("resizing field mismatch (-want +got):\n%s", diff)
	}
}

func TestController_ClampsToBounds(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"below min width", 10, 50},
		{"above max width", 1000, 300},
		{"within bounds", 120, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, h, l, _ := newController()
			c.SeparatorDown("brand", SideRight, held(100))
			c.PointerMove(held(tt.x))
			if got := l.set["brand"]; got != tt.want {
				t.Errorf("live width = %v, want %v", got, tt.want)
			}
			c.PointerUp(pointer.Event{})
			if got := h.cols["brand"].Width; got != tt.want {
				t.Errorf("committed width = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestController_LeftSeparator(t *testing.T) {
	c, _, l, _ := newController()
	l.bounds["brand"] = Bounds{Left: 200, Right: 300}

	c.SeparatorDown("brand", SideLeft, held(202))
	c.PointerMove(held(152))
	if got := l.set["brand"]; got != 150 {
		t.Errorf("live width = %v, want 150", got)
	}
}

func TestController_Guards(t *testing.T) {
	c, h, _, _ := newController()

	if c.SeparatorDown("brand", SideRight, pointer.Event{Button: pointer.ButtonSecondary}) {
		t.Error("SeparatorDown() with the secondary button = true, want false")
	}
	if c.SeparatorDown("year", SideRight, held(100)) {
		t.Error("SeparatorDown() on a fixed column = true, want false")
	}
	if c.SeparatorDown("missing", SideRight, held(100)) {
		t.Error("SeparatorDown() on an unknown column = true, want false")
	}

	c.PointerMove(held(150))
	c.PointerUp(pointer.Event{})
	if len(h.topics) != 0 || len(h.updates) != 0 {
		t.Errorf("idle controller published %v and committed %d columns", h.topics, len(h.updates))
	}
}

func TestController_ReleasedButtonsEndGesture(t *testing.T) {
	c, h, _, _ := newController()
	c.SeparatorDown("brand", SideRight, held(100))
	c.PointerMove(held(130))
	c.PointerMove(pointer.Event{X: 160})

	if c.Active() {
		t.Fatal("Active() = true after a move with no buttons held")
	}
	if len(h.updates) != 1 || h.updates[0].Width != 130 {
		t.Errorf("updates = %+v, want one commit at 130", h.updates)
	}
}

func TestController_Touch(t *testing.T) {
	c, h, l, m := newController()

	start := pointer.TouchEvent{Changed: []pointer.Touch{{ID: 7, X: 100}}}
	if !c.TouchStart("brand", SideRight, start) {
		t.Fatal("TouchStart() = false, want true")
	}

	// Mouse moves do not drive a touch gesture.
	c.PointerMove(held(400))
	if _, ok := l.set["brand"]; ok {
		t.Error("mouse move resized a touch gesture")
	}

	c.TouchMove(pointer.TouchEvent{Changed: []pointer.Touch{{ID: 3, X: 400}}})
	if _, ok := l.set["brand"]; ok {
		t.Error("another finger resized the column")
	}
	c.TouchMove(pointer.TouchEvent{Changed: []pointer.Touch{{ID: 3, X: 10}, {ID: 7, X: 140}}})
	if got := l.set["brand"]; got != 140 {
		t.Errorf("live width = %v, want 140", got)
	}

	c.TouchEnd(pointer.TouchEvent{Changed: []pointer.Touch{{ID: 3}}})
	if !c.Active() {
		t.Fatal("gesture ended by another finger")
	}
	c.TouchEnd(pointer.TouchEvent{Changed: []pointer.Touch{{ID: 7, X: 140}}})
	if c.Active() {
		t.Fatal("Active() = true after TouchEnd")
	}

	m.Advance(0)
	if got := h.topics[len(h.topics)-1]; got != events.TopicColumnWidthChanged {
		t.Errorf("last topic = %s, want %s", got, events.TopicColumnWidthChanged)
	}
}

func TestController_StopDebounced(t *testing.T) {
	c, h, _, m := newController()

	c.SeparatorDown("brand", SideRight, held(100))
	c.PointerUp(pointer.Event{})
	c.SeparatorDown("brand", SideRight, held(100))
	c.PointerMove(held(110))
	c.PointerUp(pointer.Event{})

	if got := m.Pending(); got != 1 {
		t.Fatalf("pending timers = %d, want 1", got)
	}
	m.Advance(0)

	stops := 0
	for _, topic := range h.topics {
		if topic == events.TopicColumnResizeStop {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("stop events = %d, want 1", stops)
	}
	if h.widths[len(h.widths)-1] != 110 {
		t.Errorf("last width = %v, want 110", h.widths[len(h.widths)-1])
	}
}

func TestController_Close(t *testing.T) {
	c, h, _, m := newController()
	c.SeparatorDown("brand", SideRight, held(100))
	c.PointerUp(pointer.Event{})
	c.Close()
	m.Advance(time.Second)

	for _, topic := range h.topics {
		if topic == events.TopicColumnResizeStop {
			t.Fatal("stop published after Close()")
		}
	}
}
