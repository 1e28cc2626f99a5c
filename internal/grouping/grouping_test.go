package grouping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

func TestModelOperations(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"add appends", Add([]string{"a"}, "b", -1), []string{"a", "b"}},
		{"add at index", Add([]string{"a", "c"}, "b", 1), []string{"a", "b", "c"}},
		{"add present", Add([]string{"a", "b"}, "a", 1), []string{"a", "b"}},
		{"remove", Remove([]string{"a", "b", "c"}, "b"), []string{"a", "c"}},
		{"remove absent", Remove([]string{"a"}, "z"), []string{"a"}},
		{"move forward", Move([]string{"a", "b", "c"}, "a", 2), []string{"b", "c", "a"}},
		{"move back", Move([]string{"a", "b", "c"}, "c", 0), []string{"c", "a", "b"}},
		{"move absent", Move([]string{"a", "b"}, "z", 0), []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("model (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdd_Idempotent(t *testing.T) {
	model := Add(nil, "dept", -1)
	again := Add(model, "dept", -1)
	if len(again) != 1 || &again[0] != &model[0] {
		t.Errorf("Add() twice = %v, want the same one-field model", again)
	}
}

func TestGroupingColumnField(t *testing.T) {
	f := GroupingColumnField("dept")
	if !IsGroupingColumn(f) || !IsGroupingColumn(SingleGroupingColumnField()) {
		t.Errorf("IsGroupingColumn(%q) = false", f)
	}
	if IsGroupingColumn("dept") {
		t.Error("IsGroupingColumn(dept) = true")
	}
	if got, ok := CriteriaFromGroupingField(f); !ok || got != "dept" {
		t.Errorf("CriteriaFromGroupingField(%q) = %q, %v", f, got, ok)
	}
	if _, ok := CriteriaFromGroupingField(SingleGroupingColumnField()); ok {
		t.Error("CriteriaFromGroupingField(single) ok = true")
	}
}

func testColumns(t *testing.T) *columns.State {
	t.Helper()
	s, err := columns.NewState([]*columns.ColDef{
		{Field: CheckboxField, Width: 50},
		{Field: "dept", HeaderName: "Department"},
		{Field: "company"},
		{Field: "name"},
		{Field: "secret", Groupable: columns.Bool(false)},
	}, columns.DefaultTypes(), nil)
	if err != nil {
		t.Fatalf("NewState() failed: %v", err)
	}
	return s
}

func testCache(t *testing.T) *rows.Cache {
	t.Helper()
	c, err := rows.ConvertRows([]rows.Row{
		{"id": 1, "dept": "Sales", "company": "Acme", "name": "Ann"},
		{"id": 2, "dept": "Eng", "company": "Acme", "name": "Bob"},
		{"id": 3, "dept": "Sales", "company": "Globex", "name": "Cid"},
		{"id": 4, "company": "Acme", "name": "Dan"},
	}, nil)
	if err != nil {
		t.Fatalf("ConvertRows() failed: %v", err)
	}
	return c
}

func TestSanitize(t *testing.T) {
	got := Sanitize([]string{"dept", "missing", "secret", "company"}, testColumns(t))
	if diff := cmp.Diff([]string{"dept", "company"}, got); diff != "" {
		t.Errorf("Sanitize() (-want +got):\n%s", diff)
	}
}

func TestBuildTree(t *testing.T) {
	created := BuildTree(tree.CreateParams{Cache: testCache(t)}, testColumns(t), []string{"dept", "company"}, Expansion{})

	sales := "auto-generated-row-dept/Sales"
	salesAcme := "auto-generated-row-dept/Sales-company/Acme"
	acme := "auto-generated-row-company/Acme"

	if created.Tree.GroupingName != FeatureName {
		t.Errorf("GroupingName = %q, want %q", created.Tree.GroupingName, FeatureName)
	}
	if diff := cmp.Diff(rows.Row{"dept": "Sales", "company": "Acme"}, created.IDToRow[salesAcme]); diff != "" {
		t.Errorf("group row (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rows.Row{"dept": "Sales"}, created.IDToRow[sales]); diff != "" {
		t.Errorf("group row (-want +got):\n%s", diff)
	}

	// A row without a dept is grouped by its company at the top level.
	n, ok := created.Tree.Node(acme)
	if !ok || n.Depth != 0 || n.GroupingField != "company" {
		t.Fatalf("node %q = %+v, %v", acme, n, ok)
	}
	if diff := cmp.Diff([]rows.ID{int64(4)}, n.Children); diff != "" {
		t.Errorf("children (-want +got):\n%s", diff)
	}
	if created.IDToRow[int64(1)]["name"] != "Ann" {
		t.Errorf("data row lost: %v", created.IDToRow[int64(1)])
	}
}

func TestBuildTree_GroupingValueGetter(t *testing.T) {
	cols, err := columns.NewState([]*columns.ColDef{{
		Field: "dept",
		GroupingValueGetter: func(p columns.CellParams) any {
			return p.Row["dept"].(string)[:1]
		},
	}}, columns.DefaultTypes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	c, _ := rows.ConvertRows([]rows.Row{{"id": 1, "dept": "Sales"}, {"id": 2, "dept": "Support"}}, nil)

	created := BuildTree(tree.CreateParams{Cache: c}, cols, []string{"dept"}, Expansion{})
	if diff := cmp.Diff([]rows.ID{"auto-generated-row-dept/S"}, created.Tree.Roots); diff != "" {
		t.Errorf("Roots (-want +got):\n%s", diff)
	}
}

func newFeature(t *testing.T, mode ColumnMode, model *[]string) (*Feature, *columns.State) {
	t.Helper()
	cols := testColumns(t)
	f := New(Config{Mode: mode}, func() []string { return *model }, func() *columns.State { return cols })
	return f, cols
}

func TestHydrateColumns(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColumnMode
		model []string
		want  []string
	}{
		{
			name:  "multiple",
			mode:  ColumnModeMultiple,
			model: []string{"dept", "company"},
			want:  []string{CheckboxField, GroupingColumnField("dept"), GroupingColumnField("company"), "dept", "company", "name", "secret"},
		},
		{
			name:  "single",
			mode:  ColumnModeSingle,
			model: []string{"dept", "company"},
			want:  []string{CheckboxField, SingleGroupingColumnField(), "dept", "company", "name", "secret"},
		},
		{
			name:  "empty model",
			mode:  ColumnModeSingle,
			model: nil,
			want:  []string{CheckboxField, "dept", "company", "name", "secret"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := tt.model
			f, cols := newFeature(t, tt.mode, &model)
			got := f.hydrateColumns(cols, nil)
			if diff := cmp.Diff(tt.want, got.All); diff != "" {
				t.Errorf("All (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHydrateColumns_KeepsWidth(t *testing.T) {
	model := []string{"dept"}
	f, cols := newFeature(t, ColumnModeMultiple, &model)

	first := f.hydrateColumns(cols, nil)
	field := GroupingColumnField("dept")
	if first.Lookup[field].HeaderName != "Department" {
		t.Errorf("HeaderName = %q, want Department", first.Lookup[field].HeaderName)
	}

	resized := first.Clone()
	c := resized.Lookup[field].Clone()
	c.Width, c.Flex = 321, 2
	resized.Lookup[field] = c

	model = []string{"dept", "company"}
	second := f.hydrateColumns(resized, nil)
	if got := second.Lookup[field]; got.Width != 321 || got.Flex != 2 || got.ComputedWidth != 321 {
		t.Errorf("grouping column = width %v flex %v computed %v, want 321 2 321", got.Width, got.Flex, got.ComputedWidth)
	}
	if got := second.Lookup[GroupingColumnField("company")].Width; got != defaultColumnWidth {
		t.Errorf("new grouping column width = %v, want %v", got, defaultColumnWidth)
	}
}

func TestFilter(t *testing.T) {
	sales := "auto-generated-row-dept/Sales"
	eng := "auto-generated-row-dept/Eng"

	tests := []struct {
		name      string
		mode      ColumnMode
		model     filter.Model
		wantShown map[rows.ID]bool
		wantCount map[rows.ID]int
	}{
		{
			name:      "no items",
			mode:      ColumnModeSingle,
			model:     filter.NewModel(),
			wantShown: map[rows.ID]bool{sales: true, eng: true, int64(1): true, int64(2): true, int64(3): true},
			wantCount: map[rows.ID]int{sales: 2, eng: 1},
		},
		{
			name:      "leaf items",
			mode:      ColumnModeSingle,
			model:     filter.Model{Items: []filter.Item{{ID: 1, ColumnField: "name", OperatorValue: "equals", Value: "cid"}}},
			wantShown: map[rows.ID]bool{sales: true, eng: false, int64(1): false, int64(2): false, int64(3): true},
			wantCount: map[rows.ID]int{sales: 1, eng: 0},
		},
		{
			name:      "single grouping column",
			mode:      ColumnModeSingle,
			model:     filter.Model{Items: []filter.Item{{ID: 1, ColumnField: SingleGroupingColumnField(), OperatorValue: "equals", Value: "sales"}}},
			wantShown: map[rows.ID]bool{sales: true, eng: false, int64(1): true, int64(2): false, int64(3): true},
			wantCount: map[rows.ID]int{sales: 2, eng: 0},
		},
		{
			name:      "multiple grouping column",
			mode:      ColumnModeMultiple,
			model:     filter.Model{Items: []filter.Item{{ID: 1, ColumnField: GroupingColumnField("dept"), OperatorValue: "equals", Value: "eng"}}},
			wantShown: map[rows.ID]bool{sales: false, eng: true, int64(1): false, int64(2): true, int64(3): false},
			wantCount: map[rows.ID]int{sales: 0, eng: 1},
		},
		{
			name: "or across levels",
			mode: ColumnModeSingle,
			model: filter.Model{LinkOperator: filter.LinkOr, Items: []filter.Item{
				{ID: 1, ColumnField: SingleGroupingColumnField(), OperatorValue: "equals", Value: "eng"},
				{ID: 2, ColumnField: "name", OperatorValue: "equals", Value: "ann"},
			}},
			wantShown: map[rows.ID]bool{sales: true, eng: true, int64(1): true, int64(2): true, int64(3): false},
			wantCount: map[rows.ID]int{sales: 1, eng: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := []string{"dept"}
			f, cols := newFeature(t, tt.mode, &model)
			hydrated := f.hydrateColumns(cols, nil)

			c, _ := rows.ConvertRows([]rows.Row{
				{"id": 1, "dept": "Sales", "name": "Ann"},
				{"id": 2, "dept": "Eng", "name": "Bob"},
				{"id": 3, "dept": "Sales", "name": "Cid"},
			}, nil)
			created := BuildTree(tree.CreateParams{Cache: c}, hydrated, model, Expansion{})
			lookup := func(id rows.ID) (rows.Row, *tree.Node) {
				n, _ := created.Tree.Node(id)
				return created.IDToRow[id], n
			}

			got := Filter(tt.mode)(filter.Params{Tree: created.Tree, Applier: filter.NewApplier(tt.model, hydrated, lookup)})
			if diff := cmp.Diff(tt.wantShown, got.Visible); diff != "" {
				t.Errorf("Visible (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantCount, got.DescendantCount); diff != "" {
				t.Errorf("DescendantCount (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFeature_Sync(t *testing.T) {
	var model []string
	f, _ := newFeature(t, ColumnModeSingle, &model)

	if f.Sync() {
		t.Error("Sync() on empty model = true")
	}
	model = Add(model, "dept", -1)
	if !f.Sync() {
		t.Error("Sync() after Add = false")
	}
	model = Add(model, "dept", -1)
	if f.Sync() {
		t.Error("Sync() after second Add = true, want a single rebuild")
	}
	model = Add(model, "secret", -1)
	if f.Sync() {
		t.Error("Sync() after adding a non-groupable field = true")
	}
}

func TestFeature_ColumnMenu(t *testing.T) {
	model := []string{"dept"}
	f, cols := newFeature(t, ColumnModeMultiple, &model)
	hydrated := f.hydrateColumns(cols, nil)

	base := []columns.MenuItem{columns.MenuFilter}
	tests := []struct {
		field string
		want  []columns.MenuItem
	}{
		{GroupingColumnField("dept"), []columns.MenuItem{columns.MenuFilter, columns.MenuDivider, columns.MenuUngroupBy}},
		{"dept", []columns.MenuItem{columns.MenuFilter, columns.MenuDivider, columns.MenuStopGroupBy}},
		{"company", []columns.MenuItem{columns.MenuFilter, columns.MenuDivider, columns.MenuGroupBy}},
		{"secret", base},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got := f.columnMenu(base, hydrated.Lookup[tt.field])
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("columnMenu() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFeature_ToggleTarget(t *testing.T) {
	model := []string{"dept", "company"}
	f, cols := newFeature(t, ColumnModeMultiple, &model)
	created := BuildTree(tree.CreateParams{Cache: testCache(t)}, cols, model, Expansion{})

	sales := "auto-generated-row-dept/Sales"
	salesAcme := "auto-generated-row-dept/Sales-company/Acme"
	s := &store.State{
		Rows: store.RowsState{Tree: created.Tree},
		Filter: filter.State{FilteredDescendantCountLookup: map[rows.ID]int{
			sales: 2, salesAcme: 0,
		}},
	}

	tests := []struct {
		name  string
		id    rows.ID
		field string
		want  bool
	}{
		{"own column", sales, GroupingColumnField("dept"), true},
		{"other grouping column", sales, GroupingColumnField("company"), false},
		{"data column", sales, "dept", false},
		{"leaf", int64(1), GroupingColumnField("dept"), false},
		{"no visible descendants", salesAcme, GroupingColumnField("company"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := f.ToggleTarget(s, tt.id, tt.field)
			if got != tt.want {
				t.Errorf("ToggleTarget(%v, %q) = %v, want %v", tt.id, tt.field, got, tt.want)
			}
		})
	}
}
