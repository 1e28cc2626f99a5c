package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

var testRows = map[rows.ID]rows.Row{
	int64(1): {"id": 1, "brand": "Nike", "qty": 10},
	int64(2): {"id": 2, "brand": "Adidas", "qty": 5},
	int64(3): {"id": 3, "brand": "Puma", "qty": 20},
}

func testColumns(t *testing.T) *columns.State {
	t.Helper()
	s, err := columns.NewState([]*columns.ColDef{
		{Field: "brand"},
		{Field: "qty", Type: columns.TypeNumber},
		{Field: "locked", Filterable: columns.Bool(false)},
	}, columns.DefaultTypes(), nil)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	return s
}

func lookup(id rows.ID) (rows.Row, *tree.Node) {
	return testRows[id], nil
}

func TestApplier_Match(t *testing.T) {
	cols := testColumns(t)

	tests := []struct {
		name  string
		model Model
		want  map[rows.ID]bool
	}{
		{
			name:  "and",
			model: Model{Items: []Item{{ID: 1, ColumnField: "brand", OperatorValue: "contains", Value: "a"}, {ID: 2, ColumnField: "qty", OperatorValue: ">", Value: 6}}},
			want:  map[rows.ID]bool{int64(1): false, int64(2): false, int64(3): true},
		},
		{
			name:  "or",
			model: Model{LinkOperator: LinkOr, Items: []Item{{ID: 1, ColumnField: "brand", OperatorValue: "equals", Value: "nike"}, {ID: 2, ColumnField: "qty", OperatorValue: "<", Value: 6}}},
			want:  map[rows.ID]bool{int64(1): true, int64(2): true, int64(3): false},
		},
		{
			name: "unresolvable items ignored",
			model: Model{Items: []Item{
				{ID: 1, ColumnField: "missing", OperatorValue: "contains", Value: "x"},
				{ID: 2, ColumnField: "brand", OperatorValue: "nope", Value: "x"},
				{ID: 3, ColumnField: "brand", OperatorValue: "contains"},
				{ID: 4, ColumnField: "locked", OperatorValue: "contains", Value: "x"},
			}},
			want: map[rows.ID]bool{int64(1): true, int64(2): true, int64(3): true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewApplier(tt.model, cols, lookup)
			for id, want := range tt.want {
				if got := a.Match(id, nil); got != want {
					t.Errorf("Match(%v) = %v, want %v", id, got, want)
				}
			}
		})
	}
}

func TestApplier_ShortCircuit(t *testing.T) {
	calls := 0
	counting := columns.FilterOperator{
		Value: "count",
		GetApplyFilterFn: func(item columns.FilterItem, _ *columns.ColDef) columns.ApplyFilterFn {
			pass := item.Value == true
			return func(columns.CellParams) bool {
				calls++
				return pass
			}
		},
	}
	cols, _ := columns.NewState([]*columns.ColDef{{Field: "x", FilterOperators: []columns.FilterOperator{counting}}}, columns.DefaultTypes(), nil)

	tests := []struct {
		name      string
		link      LinkOperator
		values    []bool
		wantCalls int
		want      bool
	}{
		{"and stops on failure", LinkAnd, []bool{true, false, true}, 2, false},
		{"or stops on success", LinkOr, []bool{false, true, false}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls = 0
			m := Model{LinkOperator: tt.link}
			for i, v := range tt.values {
				m.Items = append(m.Items, Item{ID: i + 1, ColumnField: "x", OperatorValue: "count", Value: v})
			}
			got := NewApplier(m, cols, nil).Match(int64(1), nil)
			if got != tt.want || calls != tt.wantCalls {
				t.Errorf("Match() = %v with %d calls, want %v with %d", got, calls, tt.want, tt.wantCalls)
			}
		})
	}
}

func TestApplier_ShouldApply(t *testing.T) {
	cols := testColumns(t)
	m := Model{Items: []Item{
		{ID: 1, ColumnField: "brand", OperatorValue: "equals", Value: "Nike"},
		{ID: 2, ColumnField: "qty", OperatorValue: ">", Value: 100},
	}}
	a := NewApplier(m, cols, lookup)

	onlyBrand := func(field string) bool { return field == "brand" }
	ok, applied := a.MatchCount(int64(1), onlyBrand)
	if !ok || applied != 1 {
		t.Errorf("MatchCount(brand only) = %v, %d; want true, 1", ok, applied)
	}
	ok, applied = a.MatchCount(int64(1), func(string) bool { return false })
	if !ok || applied != 0 {
		t.Errorf("MatchCount(none) = %v, %d; want true, 0", ok, applied)
	}
}

func TestFlat(t *testing.T) {
	cols := testColumns(t)
	tr := tree.Flat([]rows.ID{int64(1), int64(2), int64(3)}, nil)

	l := Flat(tr, NewApplier(Model{Items: []Item{{ID: 1, ColumnField: "qty", OperatorValue: ">=", Value: 10}}}, cols, lookup))
	want := map[rows.ID]bool{int64(1): true, int64(2): false, int64(3): true}
	if diff := cmp.Diff(want, l.Visible); diff != "" {
		t.Errorf("Visible (-want +got):\n%s", diff)
	}

	l = Flat(tr, NewApplier(NewModel(), cols, lookup))
	if len(l.Visible) != 0 {
		t.Errorf("empty model produced %d lookups", len(l.Visible))
	}
}

func TestModel_UpsertDelete(t *testing.T) {
	m := NewModel()
	m = m.Upsert(Item{ColumnField: "brand", OperatorValue: "contains", Value: "a"})
	m = m.Upsert(Item{ColumnField: "qty", OperatorValue: ">", Value: 1})
	if m.Items[0].ID != 1 || m.Items[1].ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", m.Items[0].ID, m.Items[1].ID)
	}

	m = m.Upsert(Item{ID: 1, ColumnField: "brand", OperatorValue: "equals", Value: "Nike"})
	if len(m.Items) != 2 || m.Items[0].OperatorValue != "equals" {
		t.Errorf("Upsert(existing) = %+v", m.Items)
	}

	m = m.Delete(1)
	if len(m.Items) != 1 || m.Items[0].ID != 2 {
		t.Errorf("Delete(1) = %+v", m.Items)
	}

	if !m.Equal(Model{Items: []Item{{ID: 2, ColumnField: "qty", OperatorValue: ">", Value: 1}}}) {
		t.Error("Equal() = false for identical models")
	}
}

func TestState_IsVisible(t *testing.T) {
	s := State{VisibleRowsLookup: map[rows.ID]bool{int64(1): false, int64(2): true}}
	if s.IsVisible(int64(1)) || !s.IsVisible(int64(2)) || !s.IsVisible(int64(3)) {
		t.Error("IsVisible should treat absent ids as visible")
	}
}
