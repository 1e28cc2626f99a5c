package store

import (
	"testing"

	"github.com/m4theushw/material-ui-x/internal/columns"
)

func TestStore_SetReplacesState(t *testing.T) {
	s := New(State{Pagination: PaginationState{PageSize: 25}})
	before := s.Get()

	after := s.Set(func(st State) State {
		st.Pagination.Page = 2
		return st
	})

	if before == after || s.Get() != after {
		t.Fatal("Set should install a new state pointer")
	}
	if before.Pagination.Page != 0 {
		t.Error("Set modified the previous state")
	}
	if after.Pagination.Page != 2 || after.Pagination.PageSize != 25 {
		t.Errorf("Pagination = %+v", after.Pagination)
	}
}

func TestStore_ForceUpdate(t *testing.T) {
	s := New(State{})
	calls := 0
	cancel := s.Subscribe(func(*State) { calls++ })

	s.ForceUpdate()
	cancel()
	s.ForceUpdate()

	if calls != 1 {
		t.Errorf("listener calls = %d, want 1", calls)
	}
	if s.Updates() != 2 {
		t.Errorf("Updates() = %d, want 2", s.Updates())
	}
}

func TestEditingState(t *testing.T) {
	var e EditingState
	if e.Mode(int64(1), "brand") != CellModeView {
		t.Fatal("empty state should be in view mode")
	}

	e1 := e.With(int64(1), "brand", columns.EditCellProps{Value: "Adidas"})
	e2 := e1.With(int64(1), "qty", columns.EditCellProps{Value: 3})
	if e1.Mode(int64(1), "qty") != CellModeView {
		t.Error("With modified its receiver")
	}
	if e2.Mode(int64(1), "brand") != CellModeEdit || e2.Mode(int64(1), "qty") != CellModeEdit {
		t.Error("expected both cells in edit mode")
	}

	e3 := e2.Without(int64(1), "brand").Without(int64(1), "qty")
	if len(e3.Rows) != 0 {
		t.Errorf("Rows = %v, want empty", e3.Rows)
	}
	if e2.Mode(int64(1), "brand") != CellModeEdit {
		t.Error("Without modified its receiver")
	}
}
