package snapshot

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
)

func sampleState() grid.InitialState {
	return grid.InitialState{
		Columns: grid.ColumnsInitialState{
			Widths:          map[string]float64{"name": 180, "amount": 92.5},
			VisibilityModel: columns.VisibilityModel{"dept": false},
		},
		Filter: filter.Model{
			LinkOperator: filter.LinkOr,
			Items: []filter.Item{
				{ID: 1, ColumnField: "amount", OperatorValue: ">", Value: int64(15)},
				{ID: 2, ColumnField: "dept", OperatorValue: "isAnyOf", Value: []any{"Sales", "HR"}},
			},
		},
		Sorting:     sorting.Model{{Field: "amount", Sort: sorting.Desc}},
		RowGrouping: []string{"dept"},
		Expansion:   map[string]bool{"auto-generated-row-dept/Sales": true, "a.b": false},
		Pagination:  store.PaginationState{Page: 2, PageSize: 25},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	want := sampleState()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode(Encode()) (-want +got):\n%s", diff)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"malformed", `{"version":`, ErrInvalidDocument},
		{"no version", `{"sorting":[]}`, ErrInvalidDocument},
		{"newer", `{"version":99}`, ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode_Defaults(t *testing.T) {
	got, err := Decode([]byte(`{"version":1}`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got.Filter.Link() != filter.LinkAnd {
		t.Errorf("link operator = %q, want and", got.Filter.Link())
	}
	if got.Columns.VisibilityModel != nil {
		t.Errorf("visibility model = %v, want nil", got.Columns.VisibilityModel)
	}
}

func TestStore(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "snap.db"), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Load("people"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load() error = %v, want ErrNoSnapshot", err)
	}

	want := sampleState()
	if err := s.Save("people", want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := s.Save("orders", grid.InitialState{}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := s.Load("people")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() (-want +got):\n%s", diff)
	}

	keys, _ := s.Keys()
	if diff := cmp.Diff([]string{"orders", "people"}, keys); diff != "" {
		t.Errorf("Keys() (-want +got):\n%s", diff)
	}
	if err := s.Delete("orders"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := s.Load("orders"); !errors.Is(err, ErrNoSnapshot) {
		t.Errorf("Load() after Delete error = %v, want ErrNoSnapshot", err)
	}
}

func TestStore_GridRoundTrip(t *testing.T) {
	defs := []*columns.ColDef{{Field: "name"}, {Field: "dept"}}
	g, err := grid.New(defs, grid.WithRowGroupingModel([]string{"dept"}))
	if err != nil {
		t.Fatalf("grid.New() failed: %v", err)
	}
	defer g.Close()
	if err := g.SetRows([]rows.Row{{"id": 1, "name": "Ann", "dept": "Sales"}}); err != nil {
		t.Fatalf("SetRows() failed: %v", err)
	}
	if err := g.SetRowChildrenExpansion("auto-generated-row-dept/Sales", true); err != nil {
		t.Fatalf("SetRowChildrenExpansion() failed: %v", err)
	}

	s, err := Open(filepath.Join(t.TempDir(), "snap.db"), nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()
	if err := s.Save("g", g.ExportState()); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	st, err := s.Load("g")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !st.Expansion["auto-generated-row-dept/Sales"] {
		t.Errorf("expansion = %v, want Sales expanded", st.Expansion)
	}
}
