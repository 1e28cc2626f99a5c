// Package sorting implements the sorting engine.
//
// A Model lists sort items in priority order. Comparators come from the
// columns: each sortable column contributes its SortComparator, negated for
// descending items, and ties fall through to the next item. Sorting is
// stable, so rows that tie on every item keep their input order.
package sorting

import (
	"sort"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// Direction is a sort direction. The empty direction removes the item.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
	None Direction = ""
)

// Item sorts one column.
type Item struct {
	Field string
	Sort  Direction
}

// Model is the sort model, highest priority first.
type Model []Item

// DefaultOrder is the cycle followed by Next.
var DefaultOrder = []Direction{Asc, Desc, None}

// Next returns the direction following current in order.
func Next(current Direction, order []Direction) Direction {
	if len(order) == 0 {
		order = DefaultOrder
	}
	for i, d := range order {
		if d == current {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

// Direction returns the direction of field, or None.
func (m Model) Direction(field string) Direction {
	for _, it := range m {
		if it.Field == field {
			return it.Sort
		}
	}
	return None
}

// With returns a model where field sorts in dir. Without multi the result
// holds only that item. A None direction removes the field.
func (m Model) With(field string, dir Direction, multi bool) Model {
	var out Model
	if multi {
		for _, it := range m {
			if it.Field != field {
				out = append(out, it)
			}
		}
	}
	if dir == None {
		if out == nil {
			return Model{}
		}
		return out
	}
	if multi {
		// Keep an existing item in place.
		for i, it := range m {
			if it.Field == field {
				res := append(Model(nil), m...)
				res[i].Sort = dir
				return res
			}
		}
	}
	return append(out, Item{Field: field, Sort: dir})
}

// Equal reports whether two models are identical.
func (m Model) Equal(o Model) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}
	return true
}

// RowLookup resolves a row and its tree node.
type RowLookup func(id rows.ID) (rows.Row, *tree.Node)

type comparator struct {
	col  *columns.ColDef
	cmp  columns.Comparator
	sign int
}

// NewSortList builds the sibling comparator for model. It returns nil when
// no item applies, which keeps the input order.
func NewSortList(model Model, cols *columns.State, lookup RowLookup) tree.SortList {
	var comps []comparator
	for _, it := range model {
		if it.Sort == None {
			continue
		}
		col, err := cols.Column(it.Field)
		if err != nil || !col.IsSortable() || col.SortComparator == nil {
			continue
		}
		sign := 1
		if it.Sort == Desc {
			sign = -1
		}
		comps = append(comps, comparator{col: col, cmp: col.SortComparator, sign: sign})
	}
	if len(comps) == 0 {
		return nil
	}

	return func(nodes []*tree.Node) []rows.ID {
		type entry struct {
			node   *tree.Node
			params []columns.CellParams
		}
		entries := make([]entry, len(nodes))
		for i, n := range nodes {
			var row rows.Row
			if lookup != nil {
				row, _ = lookup(n.ID)
			}
			params := make([]columns.CellParams, len(comps))
			for j, c := range comps {
				p := columns.CellParams{ID: n.ID, Field: c.col.Field, Row: row, Node: n}
				p.Value = c.col.Value(p)
				params[j] = p
			}
			entries[i] = entry{node: n, params: params}
		}

		sort.SliceStable(entries, func(a, b int) bool {
			pa, pb := entries[a].params, entries[b].params
			for j, c := range comps {
				if r := c.sign * c.cmp(pa[j].Value, pb[j].Value, pa[j], pb[j]); r != 0 {
					return r < 0
				}
			}
			return false
		})

		ids := make([]rows.ID, len(entries))
		for i, e := range entries {
			ids[i] = e.node.ID
		}
		return ids
	}
}

// Params is passed to the sorting processor of the active strategy.
// A nil SortList keeps the tree order.
type Params struct {
	Tree     *tree.Tree
	SortList tree.SortList
}

// Flat is the sorting method of ungrouped rows.
func Flat(t *tree.Tree, sortList tree.SortList) []rows.ID {
	if t == nil {
		return nil
	}
	if sortList == nil {
		return t.IDs
	}
	nodes := make([]*tree.Node, 0, len(t.IDs))
	for _, id := range t.IDs {
		nodes = append(nodes, t.Nodes[id])
	}
	return sortList(nodes)
}

// Tree sorts siblings independently and returns a depth-first order.
func Tree(t *tree.Tree, sortList tree.SortList) []rows.ID {
	return tree.Sort(t, sortList)
}
