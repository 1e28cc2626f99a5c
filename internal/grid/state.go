package grid

import (
	"maps"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// ColumnsInitialState is the restorable part of the columns.
type ColumnsInitialState struct {
	// Widths holds the width of every column without flex.
	Widths          map[string]float64
	VisibilityModel columns.VisibilityModel
}

// InitialState is what ExportState captures and RestoreState applies.
type InitialState struct {
	Columns     ColumnsInitialState
	Filter      filter.Model
	Sorting     sorting.Model
	RowGrouping []string

	// Expansion maps the string form of group ids to their expansion.
	Expansion map[string]bool

	Pagination store.PaginationState
}

// ExportState captures the user-facing state of the grid.
func (g *Grid) ExportState() InitialState {
	g.lock()
	defer g.unlock()
	s := g.store.Get()

	out := InitialState{
		Columns: ColumnsInitialState{
			Widths:          map[string]float64{},
			VisibilityModel: maps.Clone(s.Columns.VisibilityModel),
		},
		Filter:      s.Filter.Model,
		Sorting:     s.Sorting.Model,
		RowGrouping: s.RowGrouping.Model,
		Expansion:   map[string]bool{},
		Pagination:  s.Pagination,
	}
	for _, c := range s.Columns.Columns() {
		if c.Flex == 0 {
			out.Columns.Widths[c.Field] = c.Width
		}
	}
	if t := s.Rows.Tree; t != nil {
		for _, id := range t.IDs {
			if n := t.Nodes[id]; n.IsGroup() {
				out.Expansion[rows.IDString(id)] = n.ChildrenExpanded
			}
		}
	}
	return out
}

// RestoreState applies an exported state. Models are applied directly,
// controlled or not. Groups created later take their restored expansion.
func (g *Grid) RestoreState(st InitialState) error {
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	return g.restoreState(st)
}

func (g *Grid) restoreState(st InitialState) error {
	cur := g.store.Get().Columns
	var updates []*columns.ColDef
	for _, f := range cur.All {
		w, ok := st.Columns.Widths[f]
		if !ok {
			continue
		}
		c := cur.Lookup[f].Clone()
		c.Width = w
		c.Flex = 0
		updates = append(updates, c)
	}
	if len(updates) > 0 {
		if err := g.updateColumns(updates); err != nil {
			return err
		}
	}
	if st.Columns.VisibilityModel != nil {
		g.setVisibilityModel(maps.Clone(st.Columns.VisibilityModel))
	}

	g.restoredExpansion = st.Expansion
	g.applyGroupingModel(st.RowGrouping)
	g.applyFilterModel(st.Filter)
	g.applySortModel(st.Sorting)

	if t := g.store.Get().Rows.Tree; t != nil {
		for _, id := range t.IDs {
			n := t.Nodes[id]
			if !n.IsGroup() {
				continue
			}
			if v, ok := st.Expansion[rows.IDString(id)]; ok && v != n.ChildrenExpanded {
				if err := g.setExpansion(id, v); err != nil {
					return err
				}
			}
		}
	}

	if st.Pagination.PageSize > 0 {
		g.setPagination(st.Pagination.Page, st.Pagination.PageSize)
	}
	g.logger.Debug("state restored", "widths", len(updates), "grouping", st.RowGrouping)
	return nil
}
