package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/config"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

const peopleJSON = `[
	{"id": 1, "name": "Ann", "dept": "Sales", "amount": 10},
	{"id": 2, "name": "Bob", "dept": "Sales", "amount": 30},
	{"id": 3, "name": "Cid", "dept": "Eng", "amount": 20},
	{"id": 4, "name": "Dee", "dept": "Eng", "amount": 40},
	{"id": 5, "name": "Eve", "dept": "HR", "amount": 5}
]`

const groupedDoc = `
[grid.grouping]
model = ["dept"]
default_expansion_depth = -1

[[columns]]
field = "name"

[[columns]]
field = "dept"

[[columns]]
field = "amount"
type = "number"

[source]
path = "people.json"

[snapshot]
path = "state.db"
`

func writeFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "people.json"), []byte(peopleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "grid.toml")
	if err := os.WriteFile(path, []byte(groupedDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestShowGroupedTree(t *testing.T) {
	path := writeFixture(t)

	got, err := execute(t, "show", "--config", path, "--ascii", "--all", "--no-restore")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	want := `name | dept | amount
v Sales (2)
  - Ann | Sales | 10
  - Bob | Sales | 30
v Eng (2)
  - Cid | Eng | 20
  - Dee | Eng | 40
v HR (1)
  - Eve | HR | 5
8 shown, 5 rows, page 1/1
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("show output (-want +got):\n%s", diff)
	}
}

func TestSnapshotSaveAndList(t *testing.T) {
	path := writeFixture(t)

	got, err := execute(t, "snapshot", "save", "people", "--config", path)
	if err != nil {
		t.Fatalf("snapshot save error = %v", err)
	}
	if got != "saved people\n" {
		t.Errorf("snapshot save = %q, want %q", got, "saved people\n")
	}

	got, err = execute(t, "snapshot", "list", "--config", path)
	if err != nil {
		t.Fatalf("snapshot list error = %v", err)
	}
	if got != "people\n" {
		t.Errorf("snapshot list = %q, want %q", got, "people\n")
	}

	if _, err := execute(t, "snapshot", "delete", "people", "--config", path); err != nil {
		t.Fatalf("snapshot delete error = %v", err)
	}
	got, err = execute(t, "snapshot", "list", "--config", path)
	if err != nil || got != "" {
		t.Errorf("snapshot list after delete = %q, %v, want empty", got, err)
	}
}

func TestWriteTreeFlat(t *testing.T) {
	g, err := grid.New([]*columns.ColDef{
		{Field: "name", HeaderName: "Name"},
		{Field: "amount", Type: columns.TypeNumber},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if err := g.SetRows([]rows.Row{
		{"id": 1, "name": "Ann", "amount": 10},
		{"id": 2, "name": "Bob", "amount": 2.5},
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeTree(&buf, g, g.VisibleRowIDs(), unicodeGlyphs); err != nil {
		t.Fatal(err)
	}
	want := "Name | amount\n• Ann | 10\n• Bob | 2.5\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("writeTree() (-want +got):\n%s", diff)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("load: %w", &config.ValidationError{Path: "grid.page_size"}), exitUserError},
		{"parse", &config.ParseError{Path: "grid.toml", Err: errors.New("bad")}, exitUserError},
		{"usage", fmt.Errorf("%w: snapshot.path is not set", errUsage), exitUserError},
		{"other", os.ErrPermission, exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
