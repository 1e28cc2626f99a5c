package grid

import (
	"time"

	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// SetRows replaces every row. The recomputation may be throttled.
func (g *Grid) SetRows(input []rows.Row) error {
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	return g.registry.SetRows(input)
}

// UpdateRows merges partial updates into the rows. An update holding the
// delete marker removes its row.
func (g *Grid) UpdateRows(updates []rows.Row) error {
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	return g.registry.UpdateRows(updates)
}

// FlushRows runs a pending throttled recomputation now.
func (g *Grid) FlushRows() {
	g.lock()
	defer g.unlock()
	g.registry.Flush()
}

// SetThrottleRows changes the throttle delay of subsequent row writes.
func (g *Grid) SetThrottleRows(d time.Duration) {
	g.lock()
	defer g.unlock()
	g.registry.SetThrottle(d)
}

// regenerateRows rebuilds the row tree from the latest raw rows with the
// active strategy, then filters and sorts it. A pending throttled
// recomputation is superseded.
func (g *Grid) regenerateRows() {
	g.registry.Stop()
	cache := g.registry.Cache()
	prev := g.store.Get().Rows.Tree

	created, err := pipeline.ApplyStrategy[tree.CreateParams, tree.Created](g.pipe, pipeline.ProcessorRowTreeCreation,
		tree.CreateParams{Cache: cache, Previous: prev})
	if err != nil {
		g.logger.Error("row tree creation failed", "strategy", g.pipe.ActiveStrategy(), "error", err)
		return
	}
	t := created.Tree
	name := t.GroupingName
	if name == "" {
		name = pipeline.StrategyNone
	}

	g.store.Set(func(s store.State) store.State {
		s.Rows = store.RowsState{
			Tree:                  t,
			IDToRow:               created.IDToRow,
			IDs:                   t.IDs,
			GroupingName:          name,
			TotalRowCount:         max(g.opts.rowCount, cache.Len()),
			TotalTopLevelRowCount: max(g.opts.rowCount, len(t.Roots)),
		}
		return s
	})
	g.rebuilds++
	g.logger.Debug("row tree regenerated", "strategy", name, "rows", cache.Len(), "nodes", t.Len(), "depth", t.Depth)

	g.applyFilters()
	g.applySorting()
	g.clampPage()

	g.publish(event.NewEvent(events.TopicRowsSet, events.RowsSet{
		RowCount: cache.Len(), TreeDepth: t.Depth, GroupingName: name,
	}, g.id))
	g.render()
}

func rowLookup(s *store.State) func(rows.ID) (rows.Row, *tree.Node) {
	return func(id rows.ID) (rows.Row, *tree.Node) {
		n, _ := s.Rows.Tree.Node(id)
		return s.Rows.IDToRow[id], n
	}
}

// applyFilters runs the filtering method of the active strategy.
func (g *Grid) applyFilters() {
	s := g.store.Get()
	a := filter.NewApplier(s.Filter.Model, s.Columns, rowLookup(s))
	lk, err := pipeline.ApplyStrategy[filter.Params, tree.Lookups](g.pipe, pipeline.ProcessorFiltering,
		filter.Params{Tree: s.Rows.Tree, Applier: a})
	if err != nil {
		g.logger.Error("filtering failed", "strategy", g.pipe.ActiveStrategy(), "error", err)
		return
	}
	if a.Ignored() > 0 {
		g.logger.Debug("filter items ignored", "count", a.Ignored())
	}
	g.store.Set(func(s store.State) store.State {
		s.Filter.VisibleRowsLookup = lk.Visible
		s.Filter.FilteredDescendantCountLookup = lk.DescendantCount
		return s
	})
}

// IsRowMatchingFilters tests a row against the current filter model.
// shouldApply selects the items to test by column field; nil tests every
// item. The row matches when no item applies.
func (g *Grid) IsRowMatchingFilters(id rows.ID, shouldApply func(field string) bool) (bool, error) {
	id, err := canonicalID(id)
	if err != nil {
		return false, err
	}
	g.lock()
	defer g.unlock()
	s := g.store.Get()
	if _, ok := s.Rows.IDToRow[id]; !ok {
		return false, &rows.NotFoundError{ID: id}
	}
	a := filter.NewApplier(s.Filter.Model, s.Columns, rowLookup(s))
	return a.Match(id, shouldApply), nil
}

// applySorting runs the sorting method of the active strategy.
func (g *Grid) applySorting() {
	s := g.store.Get()
	sortList := sorting.NewSortList(s.Sorting.Model, s.Columns, rowLookup(s))
	sorted, err := pipeline.ApplyStrategy[sorting.Params, []rows.ID](g.pipe, pipeline.ProcessorSorting,
		sorting.Params{Tree: s.Rows.Tree, SortList: sortList})
	if err != nil {
		g.logger.Error("sorting failed", "strategy", g.pipe.ActiveStrategy(), "error", err)
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.Sorting.SortedRows = sorted
		return s
	})
}

// canonicalID normalizes an id received from a caller the way row ids are
// normalized on registration, so 1, int32(1) and 1.0 address the same row.
func canonicalID(id rows.ID) (rows.ID, error) {
	n, ok := rows.NormalizeID(id)
	if !ok {
		return nil, &rows.IDError{Value: id}
	}
	return n, nil
}

// Row returns a row by id, including the synthesized rows of groups.
func (g *Grid) Row(id rows.ID) (rows.Row, bool) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, false
	}
	g.lock()
	defer g.unlock()
	row, ok := g.store.Get().Rows.IDToRow[id]
	return row, ok
}

// RowModels returns the data rows by id. Group rows are not included.
func (g *Grid) RowModels() map[rows.ID]rows.Row {
	g.lock()
	defer g.unlock()
	s := g.store.Get()
	out := make(map[rows.ID]rows.Row, len(s.Rows.IDToRow))
	for id, row := range s.Rows.IDToRow {
		if n, ok := s.Rows.Tree.Node(id); ok && n.IsGroup() {
			continue
		}
		out[id] = row
	}
	return out
}

// RowsCount returns the total row count, floored by the row count option.
func (g *Grid) RowsCount() int {
	g.lock()
	defer g.unlock()
	return g.store.Get().Rows.TotalRowCount
}

// TopLevelRowsCount returns the number of depth-0 rows.
func (g *Grid) TopLevelRowsCount() int {
	g.lock()
	defer g.unlock()
	return g.store.Get().Rows.TotalTopLevelRowCount
}

// AllRowIDs returns every node id of the row tree in creation order.
func (g *Grid) AllRowIDs() []rows.ID {
	g.lock()
	defer g.unlock()
	return g.store.Get().Rows.IDs
}

// RowNode returns the tree node of a row.
func (g *Grid) RowNode(id rows.ID) (*tree.Node, bool) {
	id, err := canonicalID(id)
	if err != nil {
		return nil, false
	}
	g.lock()
	defer g.unlock()
	return g.store.Get().Rows.Tree.Node(id)
}

// SortedRowIDs returns every node id in sorted order, filtered rows and
// collapsed children included.
func (g *Grid) SortedRowIDs() []rows.ID {
	g.lock()
	defer g.unlock()
	return g.store.Get().Sorting.SortedRows
}

// VisibleRowIDs returns the sorted ids of the rows that passed the filters
// and whose ancestors are expanded.
func (g *Grid) VisibleRowIDs() []rows.ID {
	g.lock()
	defer g.unlock()
	return g.sel.expandedRows.Select(g.store.Get())
}

// IsRowVisible reports whether a row passed the filters. Unknown rows are
// not visible.
func (g *Grid) IsRowVisible(id rows.ID) bool {
	id, err := canonicalID(id)
	if err != nil {
		return false
	}
	g.lock()
	defer g.unlock()
	s := g.store.Get()
	if _, ok := s.Rows.Tree.Node(id); !ok {
		return false
	}
	return s.Filter.IsVisible(id)
}

// FilteredDescendantCount returns the number of passing leaves below a
// group.
func (g *Grid) FilteredDescendantCount(id rows.ID) int {
	id, err := canonicalID(id)
	if err != nil {
		return 0
	}
	g.lock()
	defer g.unlock()
	return g.store.Get().Filter.FilteredDescendantCountLookup[id]
}

// RowIndexRelativeToVisibleRows returns the position of a row among the
// visible rows, or -1.
func (g *Grid) RowIndexRelativeToVisibleRows(id rows.ID) int {
	id, err := canonicalID(id)
	if err != nil {
		return -1
	}
	g.lock()
	defer g.unlock()
	return g.visibleIndex(g.store.Get(), id)
}

func (g *Grid) visibleIndex(s *store.State, id rows.ID) int {
	for i, v := range g.sel.expandedRows.Select(s) {
		if v == id {
			return i
		}
	}
	return -1
}
