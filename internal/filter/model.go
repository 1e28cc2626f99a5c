package filter

import (
	"reflect"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

// LinkOperator joins filter items.
type LinkOperator string

const (
	LinkAnd LinkOperator = "and"
	LinkOr  LinkOperator = "or"
)

// Item is one filter condition.
type Item = columns.FilterItem

// Model is the filter model.
type Model struct {
	Items        []Item
	LinkOperator LinkOperator
}

// NewModel returns an empty AND model.
func NewModel() Model {
	return Model{LinkOperator: LinkAnd}
}

// Link returns the link operator, AND when unset.
func (m Model) Link() LinkOperator {
	if m.LinkOperator == LinkOr {
		return LinkOr
	}
	return LinkAnd
}

// Upsert returns a model where the item with the same ID is replaced, or
// item is appended. Items without an ID get the next free one.
func (m Model) Upsert(item Item) Model {
	items := make([]Item, 0, len(m.Items)+1)
	found := false
	next := 1
	for _, it := range m.Items {
		if it.ID >= next {
			next = it.ID + 1
		}
		if item.ID != 0 && it.ID == item.ID {
			items = append(items, item)
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		if item.ID == 0 {
			item.ID = next
		}
		items = append(items, item)
	}
	return Model{Items: items, LinkOperator: m.LinkOperator}
}

// Delete returns a model without the item with the given ID.
func (m Model) Delete(id int) Model {
	items := make([]Item, 0, len(m.Items))
	for _, it := range m.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	return Model{Items: items, LinkOperator: m.LinkOperator}
}

// Equal reports whether two models hold the same items and operator.
func (m Model) Equal(o Model) bool {
	if m.Link() != o.Link() || len(m.Items) != len(o.Items) {
		return false
	}
	for i := range m.Items {
		a, b := m.Items[i], o.Items[i]
		if a.ID != b.ID || a.ColumnField != b.ColumnField || a.OperatorValue != b.OperatorValue || !reflect.DeepEqual(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// State is the filter slice of the grid state.
type State struct {
	Model Model

	// VisibleRowsLookup has false for filtered-out rows; absent means visible.
	VisibleRowsLookup map[rows.ID]bool

	// FilteredDescendantCountLookup counts passing leaves below each group.
	FilteredDescendantCountLookup map[rows.ID]int
}

// IsVisible reports whether id passed the filters.
func (s State) IsVisible(id rows.ID) bool {
	v, ok := s.VisibleRowsLookup[id]
	return !ok || v
}
