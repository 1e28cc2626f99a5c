package grouping

import (
	"fmt"
	"reflect"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// Expansion sets the initial expansion of groups the previous tree does
// not know.
type Expansion struct {
	// DefaultDepth expands groups above this depth; -1 expands all.
	DefaultDepth int

	// IsExpandedByDefault overrides DefaultDepth when set.
	IsExpandedByDefault func(*tree.Node) bool
}

// BuildTree groups the rows of p.Cache by the fields of a sanitized model.
// Every group node gets a synthesized row holding the keys of its path.
func BuildTree(p tree.CreateParams, cols *columns.State, model []string, exp Expansion) tree.Created {
	if p.Cache == nil {
		p.Cache = &rows.Cache{IDToRow: map[rows.ID]rows.Row{}}
	}

	paths := make([]tree.PathRow, 0, len(p.Cache.IDs))
	for _, id := range p.Cache.IDs {
		row := p.Cache.IDToRow[id]
		path := make([]tree.Criterion, 0, len(model)+1)
		for _, field := range model {
			key := groupingKey(cols, field, id, row)
			if key == nil {
				continue
			}
			path = append(path, tree.Criterion{Field: field, Key: key})
		}
		path = append(path, tree.LeafCriterion(id))
		paths = append(paths, tree.PathRow{ID: id, Path: path})
	}

	t := tree.Build(tree.BuildParams{
		Rows:                     paths,
		PreviousTree:             p.Previous,
		DefaultExpansionDepth:    exp.DefaultDepth,
		IsGroupExpandedByDefault: exp.IsExpandedByDefault,
		GroupingName:             FeatureName,
	})

	idToRow := make(map[rows.ID]rows.Row, t.Len())
	for id, row := range p.Cache.IDToRow {
		idToRow[id] = row
	}
	for _, id := range t.IDs {
		n := t.Nodes[id]
		if !n.IsGroup() {
			continue
		}
		row := rows.Row{}
		for cur, ok := n, true; ok; cur, ok = t.Node(cur.Parent) {
			row[cur.GroupingField] = cur.GroupingKey
			if cur.Parent == nil {
				break
			}
		}
		idToRow[id] = row
	}
	return tree.Created{Tree: t, IDToRow: idToRow}
}

func groupingKey(cols *columns.State, field string, id rows.ID, row rows.Row) any {
	col, err := cols.Column(field)
	if err != nil {
		return nil
	}
	var v any
	if col.GroupingValueGetter != nil {
		v = col.GroupingValueGetter(columns.CellParams{ID: id, Field: field, Row: row, Value: row[field]})
	} else if row != nil {
		v = row[field]
	}
	if v == nil {
		return nil
	}
	if !reflect.TypeOf(v).Comparable() {
		return fmt.Sprint(v)
	}
	return v
}
