package script

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

const hooksSource = `
function full_name(row, field)
  return row.first .. " " .. row.last
end

function decade(row, field)
  return math.floor(row.year / 10) * 10
end

function by_length(a, b)
  return #a - #b
end

function starts_with(value, prefix)
  return string.sub(value, 1, #prefix) == prefix
end

function positive(value, row)
  return value > 0
end

function spin()
  while true do end
end

function boom()
  error("boom")
end
`

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(opts...)
	t.Cleanup(e.Close)
	if err := e.LoadString("hooks.lua", hooksSource); err != nil {
		t.Fatalf("LoadString() failed: %v", err)
	}
	return e
}

func TestEngine_Sandbox(t *testing.T) {
	e := newEngine(t)
	for _, name := range []string{"dofile", "loadfile", "load", "require"} {
		if e.Has(name) {
			t.Errorf("Has(%q) = true, want false", name)
		}
	}
	if err := e.LoadString("io.lua", `io.write("x")`); err == nil {
		t.Error("io library is reachable")
	}
}

func TestEngine_Call(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	got, err := e.Call(ctx, "full_name", rows.Row{"first": "Ada", "last": "Lovelace"}, "name")
	if err != nil {
		t.Fatalf("Call() failed: %v", err)
	}
	if got != "Ada Lovelace" {
		t.Errorf("Call() = %v, want Ada Lovelace", got)
	}

	if _, err := e.Call(ctx, "missing"); !errors.Is(err, ErrUndefinedFunction) {
		t.Errorf("Call(missing) error = %v, want ErrUndefinedFunction", err)
	}
	var ce *CallError
	if _, err := e.Call(ctx, "boom"); !errors.As(err, &ce) || ce.Function != "boom" {
		t.Errorf("Call(boom) error = %v, want *CallError", err)
	}
}

func TestEngine_Timeout(t *testing.T) {
	e := newEngine(t, WithTimeout(20*time.Millisecond))
	if _, err := e.Call(context.Background(), "spin"); err == nil {
		t.Fatal("Call(spin) returned no error")
	}
	// The state stays usable after a cancelled call.
	if _, err := e.Call(context.Background(), "full_name", rows.Row{"first": "a", "last": "b"}, ""); err != nil {
		t.Errorf("Call() after timeout failed: %v", err)
	}
}

func TestEngine_Closed(t *testing.T) {
	e := New()
	e.Close()
	e.Close()
	if _, err := e.Call(context.Background(), "x"); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Call() error = %v, want ErrEngineClosed", err)
	}
	if err := e.LoadString("x", ""); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("LoadString() error = %v, want ErrEngineClosed", err)
	}
}

func TestEngine_Bind(t *testing.T) {
	e := newEngine(t)
	def := &columns.ColDef{Field: "name"}
	err := e.Bind(def, Hooks{
		ValueGetter:         "full_name",
		GroupingValueGetter: "decade",
		Comparator:          "by_length",
		FilterOperator:      "starts_with",
		Validator:           "positive",
	})
	if err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}

	row := rows.Row{"first": "Ada", "last": "Lovelace", "year": 1843}
	if got := def.ValueGetter(columns.CellParams{Row: row, Field: "name"}); got != "Ada Lovelace" {
		t.Errorf("ValueGetter() = %v", got)
	}
	if got := def.GroupingValueGetter(columns.CellParams{Row: row}); got != int64(1840) {
		t.Errorf("GroupingValueGetter() = %#v, want 1840", got)
	}

	cmpTests := []struct {
		a, b string
		want int
	}{
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"ab", "cd", 0},
	}
	for _, tt := range cmpTests {
		if got := def.SortComparator(tt.a, tt.b, columns.CellParams{}, columns.CellParams{}); got != tt.want {
			t.Errorf("SortComparator(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	op := def.FilterOperators[len(def.FilterOperators)-1]
	if op.Value != "starts_with" {
		t.Fatalf("operator value = %q", op.Value)
	}
	if fn := op.GetApplyFilterFn(columns.FilterItem{}, def); fn != nil {
		t.Error("item without value produced a filter")
	}
	fn := op.GetApplyFilterFn(columns.FilterItem{Value: "Ad"}, def)
	var matched []bool
	for _, v := range []string{"Ada", "Bob"} {
		matched = append(matched, fn(columns.CellParams{Value: v}))
	}
	if diff := cmp.Diff([]bool{true, false}, matched); diff != "" {
		t.Errorf("filter results (-want +got):\n%s", diff)
	}

	props, err := def.PreProcessEditCellProps(context.Background(), columns.PreProcessParams{
		Row:   row,
		Props: columns.EditCellProps{Value: -1},
	})
	if err != nil {
		t.Fatalf("validator failed: %v", err)
	}
	if !props.Error {
		t.Error("negative value accepted")
	}
}

func TestEngine_BindUndefined(t *testing.T) {
	e := newEngine(t)
	def := &columns.ColDef{Field: "name"}
	if err := e.Bind(def, Hooks{Comparator: "nope"}); !errors.Is(err, ErrUndefinedFunction) {
		t.Errorf("Bind() error = %v, want ErrUndefinedFunction", err)
	}
	if def.SortComparator != nil {
		t.Error("Bind() installed hooks despite the error")
	}
}

func TestEngine_HookFailures(t *testing.T) {
	e := newEngine(t)
	if got := e.ValueGetter("boom")(columns.CellParams{}); got != nil {
		t.Errorf("failing getter = %v, want nil", got)
	}
	if got := e.Comparator("boom")(1, 2, columns.CellParams{}, columns.CellParams{}); got != 0 {
		t.Errorf("failing comparator = %d, want 0", got)
	}
}
