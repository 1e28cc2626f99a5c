package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/input/key"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

func newHost(t *testing.T, opts ...grid.Option) (*Host, *grid.Grid) {
	t.Helper()
	g, err := grid.New([]*columns.ColDef{
		{Field: "name", Editable: true},
		{Field: "dept"},
		{Field: "amount", Type: columns.TypeNumber},
	}, opts...)
	if err != nil {
		t.Fatalf("grid.New() failed: %v", err)
	}
	t.Cleanup(g.Close)
	err = g.SetRows([]rows.Row{
		{"id": 1, "name": "Ann", "dept": "Sales", "amount": 10},
		{"id": 2, "name": "Bob", "dept": "Sales", "amount": 30},
		{"id": 3, "name": "Cid", "dept": "Eng", "amount": 20},
	})
	if err != nil {
		t.Fatalf("SetRows() failed: %v", err)
	}
	return New(g, WithCellWidth(10)), g
}

func mouse(x, y int, b tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, b, tcell.ModNone)
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.NewRuneEvent(' ', key.ModNone), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone), true},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyTab, key.ModShift), true},
		{"ctrl arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyDown, key.ModCtrl), true},
		{"unmapped", tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl), key.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := convertKey(tt.ev)
			if ok != tt.ok {
				t.Fatalf("convertKey() ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("convertKey() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHost_HitTesting(t *testing.T) {
	h, _ := newHost(t)

	if f, ok := h.SeparatorAt(9); !ok || f != "name" {
		t.Errorf("SeparatorAt(9) = %q, %v; want name", f, ok)
	}
	if _, ok := h.SeparatorAt(5); ok {
		t.Error("SeparatorAt(5) found a handle inside a header")
	}
	if f, ok := h.ColumnAt(12); !ok || f != "dept" {
		t.Errorf("ColumnAt(12) = %q, %v; want dept", f, ok)
	}
	if _, ok := h.ColumnAt(30); ok {
		t.Error("ColumnAt(30) found a column past the last one")
	}
	if id, f, ok := h.CellAt(25, 3); !ok || id != int64(3) || f != "amount" {
		t.Errorf("CellAt(25, 3) = %v, %q, %v; want 3/amount", id, f, ok)
	}
	if _, _, ok := h.CellAt(0, 4); ok {
		t.Error("CellAt(0, 4) found a row past the page")
	}
}

func TestHost_ResizeGesture(t *testing.T) {
	h, g := newHost(t)
	ctx := context.Background()

	if ok, _ := h.Handle(ctx, mouse(9, 0, tcell.Button1)); !ok {
		t.Fatal("press on the separator was not handled")
	}
	if got := g.ResizingColumn(); got != "name" {
		t.Fatalf("ResizingColumn() = %q, want name", got)
	}
	h.Handle(ctx, mouse(14, 0, tcell.Button1))
	h.Handle(ctx, mouse(14, 0, tcell.ButtonNone))

	c, _ := g.Column("name")
	// Dragged 5 cells to the right of the grab point at 90.
	if c.Width != 150 {
		t.Errorf("name width = %v, want 150", c.Width)
	}
}

func TestHost_ClickAndKeys(t *testing.T) {
	h, g := newHost(t)
	ctx := context.Background()

	h.Handle(ctx, mouse(12, 1, tcell.Button1))
	h.Handle(ctx, mouse(12, 1, tcell.ButtonNone))
	if got, _ := g.FocusedCell(); got != (store.CellRef{ID: int64(1), Field: "dept"}) {
		t.Fatalf("FocusedCell() = %+v, want 1/dept", got)
	}

	if ok, err := h.Handle(ctx, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)); err != nil || !ok {
		t.Fatalf("Handle(Down) = %v, %v", ok, err)
	}
	if got, _ := g.FocusedCell(); got != (store.CellRef{ID: int64(2), Field: "dept"}) {
		t.Errorf("FocusedCell() = %+v, want 2/dept", got)
	}
}

func TestHost_DoubleClickEdits(t *testing.T) {
	h, g := newHost(t)
	ctx := context.Background()

	h.Handle(ctx, mouse(2, 2, tcell.Button1))
	h.Handle(ctx, mouse(2, 2, tcell.ButtonNone))
	h.Handle(ctx, mouse(2, 2, tcell.Button1))

	if got := g.CellMode(int64(2), "name"); got != store.CellModeEdit {
		t.Errorf("CellMode() = %s, want edit", got)
	}
}

func screenLine(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestHost_Draw(t *testing.T) {
	h, _ := newHost(t, grid.WithRowGroupingModel([]string{"dept"}))
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer s.Fini()
	s.SetSize(60, 6)

	h.Draw(s)

	if got := screenLine(s, 0, 60); !strings.HasPrefix(got, "Group") || !strings.Contains(got, "name") {
		t.Errorf("header = %q", got)
	}
	if got := screenLine(s, 1, 20); got != "▸ Sales" {
		t.Errorf("first row = %q, want the collapsed Sales group", got)
	}
	if got := screenLine(s, 2, 20); got != "▸ Eng" {
		t.Errorf("second row = %q, want the collapsed Eng group", got)
	}
}
