package rows

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertRows(t *testing.T) {
	input := []Row{
		{"id": 1, "brand": "Nike"},
		{"id": 2, "brand": "Adidas"},
		{"id": 1, "brand": "Puma"},
	}
	c, err := ConvertRows(input, nil)
	if err != nil {
		t.Fatalf("ConvertRows() failed: %v", err)
	}

	if diff := cmp.Diff([]ID{int64(1), int64(2)}, c.IDs); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	if got := c.IDToRow[int64(1)]["brand"]; got != "Puma" {
		t.Errorf("row 1 brand = %v, want Puma", got)
	}
	if len(c.RowsBeforePartialUpdates) != 3 {
		t.Errorf("RowsBeforePartialUpdates len = %d, want 3", len(c.RowsBeforePartialUpdates))
	}
}

func TestConvertRows_Idempotent(t *testing.T) {
	input := []Row{{"id": "a"}, {"id": "b"}, {"id": "c"}}
	first, _ := ConvertRows(input, nil)
	second, _ := ConvertRows(input, nil)

	if diff := cmp.Diff(first.IDs, second.IDs); diff != "" {
		t.Errorf("IDs differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.IDToRow, second.IDToRow); diff != "" {
		t.Errorf("IDToRow differs (-first +second):\n%s", diff)
	}
}

func TestMergeUpdates(t *testing.T) {
	base, _ := ConvertRows([]Row{
		{"id": 1, "brand": "Nike", "qty": 1},
		{"id": 2, "brand": "Adidas", "qty": 2},
		{"id": 3, "brand": "Puma", "qty": 3},
	}, nil)

	tests := []struct {
		name    string
		updates []Row
		wantIDs []ID
		check   func(t *testing.T, c *Cache)
	}{
		{
			name:    "merge existing",
			updates: []Row{{"id": 2, "qty": 20}},
			wantIDs: []ID{int64(1), int64(2), int64(3)},
			check: func(t *testing.T, c *Cache) {
				want := Row{"id": 2, "brand": "Adidas", "qty": 20}
				if diff := cmp.Diff(want, c.IDToRow[int64(2)]); diff != "" {
					t.Errorf("row 2 (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "append unknown",
			updates: []Row{{"id": 4, "brand": "Reebok"}},
			wantIDs: []ID{int64(1), int64(2), int64(3), int64(4)},
		},
		{
			name:    "delete",
			updates: []Row{{"id": 2, ActionField: ActionDelete}},
			wantIDs: []ID{int64(1), int64(3)},
		},
		{
			name:    "duplicates merge left to right",
			updates: []Row{{"id": 1, "qty": 10}, {"id": 1, "brand": "Asics"}},
			wantIDs: []ID{int64(1), int64(2), int64(3)},
			check: func(t *testing.T, c *Cache) {
				want := Row{"id": 1, "brand": "Asics", "qty": 10}
				if diff := cmp.Diff(want, c.IDToRow[int64(1)]); diff != "" {
					t.Errorf("row 1 (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "delete then re-add moves to end",
			updates: []Row{{"id": 1, ActionField: ActionDelete}, {"id": 1, "brand": "New"}},
			wantIDs: []ID{int64(2), int64(3), int64(1)},
			check: func(t *testing.T, c *Cache) {
				if diff := cmp.Diff(Row{"id": 1, "brand": "New"}, c.IDToRow[int64(1)]); diff != "" {
					t.Errorf("row 1 (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:    "delete unknown is ignored",
			updates: []Row{{"id": 99, ActionField: ActionDelete}},
			wantIDs: []ID{int64(1), int64(2), int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeUpdates(base, tt.updates, nil)
			if err != nil {
				t.Fatalf("MergeUpdates() failed: %v", err)
			}
			if diff := cmp.Diff(tt.wantIDs, got.IDs); diff != "" {
				t.Errorf("IDs (-want +got):\n%s", diff)
			}
			if len(got.IDs) != len(got.IDToRow) {
				t.Errorf("len(IDs) = %d, len(IDToRow) = %d", len(got.IDs), len(got.IDToRow))
			}
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}

	if len(base.IDs) != 3 || base.IDToRow[int64(2)]["qty"] != 2 {
		t.Error("MergeUpdates modified its input cache")
	}
}

func TestMergeUpdates_BatchEqualsSequential(t *testing.T) {
	base, _ := ConvertRows([]Row{{"id": 1, "v": 1}, {"id": 2, "v": 2}}, nil)
	updates := []Row{
		{"id": 3, "v": 3},
		{"id": 1, "v": 10},
		{"id": 2, ActionField: ActionDelete},
		{"id": 3, "w": 30},
		{"id": 2, "v": 22},
		{"id": 1, ActionField: ActionDelete},
	}

	batch, err := MergeUpdates(base, updates, nil)
	if err != nil {
		t.Fatalf("MergeUpdates(batch) failed: %v", err)
	}

	seq := base
	for _, u := range updates {
		seq, err = MergeUpdates(seq, []Row{u}, nil)
		if err != nil {
			t.Fatalf("MergeUpdates(single) failed: %v", err)
		}
	}

	if diff := cmp.Diff(seq.IDs, batch.IDs); diff != "" {
		t.Errorf("IDs (-sequential +batch):\n%s", diff)
	}
	if diff := cmp.Diff(seq.IDToRow, batch.IDToRow); diff != "" {
		t.Errorf("IDToRow (-sequential +batch):\n%s", diff)
	}
}
