package filter

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// RowLookup resolves a row and its tree node.
type RowLookup func(id rows.ID) (rows.Row, *tree.Node)

type resolved struct {
	item  Item
	col   *columns.ColDef
	apply columns.ApplyFilterFn
}

// Applier tests rows against a model.
type Applier struct {
	link    LinkOperator
	items   []resolved
	lookup  RowLookup
	ignored int
}

// NewApplier resolves model against cols. Unresolvable items are dropped.
func NewApplier(model Model, cols *columns.State, lookup RowLookup) *Applier {
	a := &Applier{link: model.Link(), lookup: lookup}
	for _, item := range model.Items {
		col, err := cols.Column(item.ColumnField)
		if err != nil || !col.IsFilterable() {
			a.ignored++
			continue
		}
		op, ok := col.Operator(item.OperatorValue)
		if !ok || op.GetApplyFilterFn == nil {
			a.ignored++
			continue
		}
		fn := op.GetApplyFilterFn(item, col)
		if fn == nil {
			a.ignored++
			continue
		}
		a.items = append(a.items, resolved{item: item, col: col, apply: fn})
	}
	return a
}

// Empty reports whether no item survived resolution.
func (a *Applier) Empty() bool { return len(a.items) == 0 }

// Link returns the link operator of the model.
func (a *Applier) Link() LinkOperator { return a.link }

// Ignored returns the number of unresolvable items.
func (a *Applier) Ignored() int { return a.ignored }

// Match reports whether row id passes the items for which shouldApply
// returns true; a nil shouldApply applies every item.
func (a *Applier) Match(id rows.ID, shouldApply func(field string) bool) bool {
	ok, _ := a.MatchCount(id, shouldApply)
	return ok
}

// MatchCount is Match that also returns how many items applied. With no
// applicable item the row matches.
func (a *Applier) MatchCount(id rows.ID, shouldApply func(field string) bool) (bool, int) {
	var row rows.Row
	var node *tree.Node
	if a.lookup != nil {
		row, node = a.lookup(id)
	}

	applied := 0
	for _, r := range a.items {
		if shouldApply != nil && !shouldApply(r.item.ColumnField) {
			continue
		}
		applied++
		p := columns.CellParams{ID: id, Field: r.col.Field, Row: row, Node: node}
		p.Value = r.col.Value(p)
		pass := r.apply(p)
		if a.link == LinkAnd && !pass {
			return false, applied
		}
		if a.link == LinkOr && pass {
			return true, applied
		}
	}
	if applied == 0 {
		return true, 0
	}
	return a.link == LinkAnd, applied
}

// Params is passed to the filtering processor of the active strategy.
type Params struct {
	Tree    *tree.Tree
	Applier *Applier
}

// Flat is the filtering method of ungrouped rows: each row is visible when
// it matches every applicable item.
func Flat(t *tree.Tree, a *Applier) tree.Lookups {
	if a == nil || a.Empty() {
		return tree.Lookups{Visible: map[rows.ID]bool{}, DescendantCount: map[rows.ID]int{}}
	}
	return tree.Filter(t, func(n *tree.Node) bool {
		return a.Match(n.ID, nil)
	})
}
