package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/script"
	"github.com/m4theushw/material-ui-x/internal/sorting"
)

const tomlDoc = `
[grid]
signature = "datagrid"
throttle_rows = "50ms"
page_size = 25

[grid.grouping]
model = ["dept"]
default_expansion_depth = -1

[[grid.sort]]
field = "amount"
sort = "desc"

[grid.filter]
link_operator = "or"

[[grid.filter.items]]
id = 1
field = "amount"
operator = ">"
value = 15

[[columns]]
field = "name"
editable = true
width = 180.0

[columns.hooks]
validator = "not_empty"

[[columns]]
field = "dept"
sortable = false

[[columns]]
field = "amount"
type = "number"
align = "right"

[source]
path = "people.json"
query = "data.people"

[logging]
level = "debug"
`

const yamlDoc = `
grid:
  page_size: 10
  grouping:
    model: [dept]
columns:
  - field: name
    width: 120
  - field: dept
    groupable: true
source:
  path: /abs/rows.json
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "grid.toml", tomlDoc)
	doc, err := LoadWithEnv(path, noEnv)
	if err != nil {
		t.Fatalf("LoadWithEnv() failed: %v", err)
	}

	if doc.Grid.Signature != "datagrid" || doc.Grid.PageSize != 25 {
		t.Errorf("grid = %+v", doc.Grid)
	}
	if doc.Grid.RowHeight != 52 {
		t.Errorf("row height = %v, want the default 52", doc.Grid.RowHeight)
	}
	if diff := cmp.Diff([]string{"dept"}, doc.Grid.Grouping.Model); diff != "" {
		t.Errorf("grouping model (-want +got):\n%s", diff)
	}
	if got, want := doc.Source.Path, filepath.Join(filepath.Dir(path), "people.json"); got != want {
		t.Errorf("source path = %q, want %q", got, want)
	}
	if doc.Columns[1].Sortable == nil || *doc.Columns[1].Sortable {
		t.Errorf("dept sortable = %v, want false", doc.Columns[1].Sortable)
	}
	if doc.Columns[0].Hooks.Validator != "not_empty" {
		t.Errorf("hooks = %+v", doc.Columns[0].Hooks)
	}
	if doc.LogLevel().String() != "DEBUG" {
		t.Errorf("LogLevel() = %v, want DEBUG", doc.LogLevel())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "grid.yml", yamlDoc)
	doc, err := LoadWithEnv(path, noEnv)
	if err != nil {
		t.Fatalf("LoadWithEnv() failed: %v", err)
	}
	if doc.Grid.PageSize != 10 || doc.Grid.Signature != "pro" {
		t.Errorf("grid = %+v", doc.Grid)
	}
	if doc.Columns[0].Width != 120 {
		t.Errorf("name width = %v, want 120", doc.Columns[0].Width)
	}
	if doc.Source.Path != "/abs/rows.json" {
		t.Errorf("absolute source path rewritten to %q", doc.Source.Path)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := LoadWithEnv(writeFile(t, "grid.json", "{}"), noEnv); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("json document error = %v, want ErrUnknownFormat", err)
	}

	var pe *ParseError
	path := writeFile(t, "bad.toml", "[grid\n")
	if _, err := LoadWithEnv(path, noEnv); !errors.As(err, &pe) || pe.Path != path {
		t.Errorf("malformed document error = %v, want *ParseError for %s", err, path)
	}

	if _, err := LoadWithEnv(writeFile(t, "unknown.yaml", "grid:\n  nope: 1\n"), noEnv); !errors.As(err, &pe) {
		t.Errorf("unknown YAML field error = %v, want *ParseError", err)
	}
}

func TestApplyEnv(t *testing.T) {
	doc := Default()
	err := ApplyEnv(doc, envMap(map[string]string{
		"GRID_PAGE_SIZE":       "7",
		"GRID_ROW_GROUPING":    "dept, team,",
		"GRID_SIGNATURE":       "DataGrid",
		"GRID_EXPANSION_DEPTH": "-1",
		"GRID_LOG_LEVEL":       "WARN",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() failed: %v", err)
	}
	if doc.Grid.PageSize != 7 || doc.Grid.Signature != "datagrid" || doc.Grid.Grouping.DefaultExpansionDepth != -1 {
		t.Errorf("grid = %+v", doc.Grid)
	}
	if diff := cmp.Diff([]string{"dept", "team"}, doc.Grid.Grouping.Model); diff != "" {
		t.Errorf("grouping model (-want +got):\n%s", diff)
	}
	if doc.Logging.Level != "warn" {
		t.Errorf("log level = %q", doc.Logging.Level)
	}

	var ee *EnvError
	if err := ApplyEnv(Default(), envMap(map[string]string{"GRID_PAGE_SIZE": "many"})); !errors.As(err, &ee) || ee.Var != "GRID_PAGE_SIZE" {
		t.Errorf("ApplyEnv() error = %v, want *EnvError", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "grid.toml", tomlDoc)
	doc, err := LoadWithEnv(path, envMap(map[string]string{"GRID_PAGE_SIZE": "5"}))
	if err != nil {
		t.Fatalf("LoadWithEnv() failed: %v", err)
	}
	if doc.Grid.PageSize != 5 {
		t.Errorf("page size = %d, want 5", doc.Grid.PageSize)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Document)
		paths []string
	}{
		{"defaults", func(*Document) {}, nil},
		{"signature", func(d *Document) { d.Grid.Signature = "enterprise" }, []string{"grid.signature"}},
		{"throttle", func(d *Document) { d.Grid.ThrottleRows = "soon" }, []string{"grid.throttle_rows"}},
		{"page size", func(d *Document) { d.Grid.PageSize = 0 }, []string{"grid.page_size"}},
		{"columns", func(d *Document) {
			d.Columns = []ColumnSection{
				{Field: "a", Type: "money"},
				{Field: "a", MinWidth: 200, MaxWidth: 100},
				{},
			}
		}, []string{"columns[0].type", "columns[1].field", "columns[1].min_width", "columns[2].field"}},
		{"model fields", func(d *Document) {
			d.Columns = []ColumnSection{{Field: "a"}}
			d.Grid.Grouping.Model = []string{"b"}
			d.Grid.Sort = []SortSection{{Field: "a", Sort: "up"}}
		}, []string{"grid.grouping.model[0]", "grid.sort[0].sort"}},
		{"log level", func(d *Document) { d.Logging.Level = "loud" }, []string{"logging.level"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.edit(d)
			err := d.Validate()
			if len(tt.paths) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("Validate() = %v, want ErrValidationFailed", err)
			}
			var got []string
			for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
				got = append(got, e.(*ValidationError).Path)
			}
			if diff := cmp.Diff(tt.paths, got); diff != "" {
				t.Errorf("failed paths (-want +got):\n%s", diff)
			}
		})
	}
}

type recordingBinder struct {
	bound map[string]script.Hooks
}

func (b *recordingBinder) Bind(def *columns.ColDef, h script.Hooks) error {
	b.bound[def.Field] = h
	return nil
}

func TestColDefs(t *testing.T) {
	doc, err := Parse([]byte(tomlDoc), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if _, err := doc.ColDefs(nil); !errors.Is(err, ErrHooksWithoutScript) {
		t.Errorf("ColDefs(nil) error = %v, want ErrHooksWithoutScript", err)
	}

	b := &recordingBinder{bound: map[string]script.Hooks{}}
	defs, err := doc.ColDefs(b)
	if err != nil {
		t.Fatalf("ColDefs() failed: %v", err)
	}
	if diff := cmp.Diff(map[string]script.Hooks{"name": {Validator: "not_empty"}}, b.bound); diff != "" {
		t.Errorf("bound hooks (-want +got):\n%s", diff)
	}
	if len(defs) != 3 || defs[2].Type != columns.TypeNumber || defs[2].Align != columns.AlignRight {
		t.Errorf("defs[2] = %+v", defs[2])
	}
	if defs[1].IsSortable() {
		t.Error("dept is sortable")
	}
}

func TestOptions(t *testing.T) {
	doc, err := Parse([]byte(tomlDoc), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	doc.Columns[0].Hooks = HooksSection{}
	defs, err := doc.ColDefs(nil)
	if err != nil {
		t.Fatalf("ColDefs() failed: %v", err)
	}

	g, err := grid.New(defs, doc.Options()...)
	if err != nil {
		t.Fatalf("grid.New() failed: %v", err)
	}
	defer g.Close()

	if diff := cmp.Diff([]string{"dept"}, g.RowGroupingModel()); diff != "" {
		t.Errorf("RowGroupingModel() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sorting.Model{{Field: "amount", Sort: sorting.Desc}}, g.SortModel()); diff != "" {
		t.Errorf("SortModel() (-want +got):\n%s", diff)
	}
	if got := g.Page().PageSize; got != 25 {
		t.Errorf("page size = %d, want 25", got)
	}
	if fm := g.FilterModel(); fm.Link() != "or" || len(fm.Items) != 1 {
		t.Errorf("FilterModel() = %+v", fm)
	}
}
