package grid

import (
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// FilterModel returns the current filter model.
func (g *Grid) FilterModel() filter.Model {
	g.lock()
	defer g.unlock()
	return g.store.Get().Filter.Model
}

// SetFilterModel requests a new filter model. A controlled model is only
// reported to its change callback.
func (g *Grid) SetFilterModel(m filter.Model) {
	g.lock()
	defer g.unlock()
	g.requestFilterModel(m)
}

// PushFilterModel applies a filter model chosen by the host.
func (g *Grid) PushFilterModel(m filter.Model) {
	g.lock()
	defer g.unlock()
	g.applyFilterModel(m)
}

// UpsertFilterItem adds a filter item, or replaces the one with its id.
func (g *Grid) UpsertFilterItem(item filter.Item) {
	g.lock()
	defer g.unlock()
	g.requestFilterModel(g.store.Get().Filter.Model.Upsert(item))
}

// DeleteFilterItem removes the filter item with the given id.
func (g *Grid) DeleteFilterItem(id int) {
	g.lock()
	defer g.unlock()
	g.requestFilterModel(g.store.Get().Filter.Model.Delete(id))
}

// SetFilterLinkOperator changes how filter items combine.
func (g *Grid) SetFilterLinkOperator(op filter.LinkOperator) {
	g.lock()
	defer g.unlock()
	m := g.store.Get().Filter.Model
	g.requestFilterModel(filter.Model{Items: m.Items, LinkOperator: op})
}

func (g *Grid) requestFilterModel(m filter.Model) {
	if g.opts.filterControlled {
		if fn := g.opts.onFilterModel; fn != nil {
			g.notify(func() { fn(m) })
		}
		return
	}
	g.applyFilterModel(m)
}

func (g *Grid) applyFilterModel(m filter.Model) {
	if m.Equal(g.store.Get().Filter.Model) {
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.Filter.Model = m
		return s
	})
	g.applyFilters()
	g.clampPage()
	g.logger.Debug("filter model changed", "items", len(m.Items), "link", m.Link())
	g.publish(event.NewEvent(events.TopicFilterModelChanged, events.FilterModelChanged{Model: m}, g.id))
	g.render()
}

// SortModel returns the current sort model.
func (g *Grid) SortModel() sorting.Model {
	g.lock()
	defer g.unlock()
	return g.store.Get().Sorting.Model
}

// SetSortModel requests a new sort model.
func (g *Grid) SetSortModel(m sorting.Model) {
	g.lock()
	defer g.unlock()
	g.requestSortModel(m)
}

// PushSortModel applies a sort model chosen by the host.
func (g *Grid) PushSortModel(m sorting.Model) {
	g.lock()
	defer g.unlock()
	g.applySortModel(m)
}

// SortColumn sorts field in dir. With multi the other items are kept.
func (g *Grid) SortColumn(field string, dir sorting.Direction, multi bool) error {
	g.lock()
	defer g.unlock()
	c, err := g.store.Get().Columns.Column(field)
	if err != nil {
		return err
	}
	if !c.IsSortable() {
		return ErrColumnNotSortable
	}
	g.requestSortModel(g.store.Get().Sorting.Model.With(field, dir, multi))
	return nil
}

// ToggleSort moves field to the next direction of the default cycle.
func (g *Grid) ToggleSort(field string, multi bool) error {
	g.lock()
	cur := g.store.Get().Sorting.Model.Direction(field)
	g.unlock()
	return g.SortColumn(field, sorting.Next(cur, nil), multi)
}

func (g *Grid) requestSortModel(m sorting.Model) {
	if g.opts.sortControlled {
		if fn := g.opts.onSortModel; fn != nil {
			g.notify(func() { fn(m) })
		}
		return
	}
	g.applySortModel(m)
}

func (g *Grid) applySortModel(m sorting.Model) {
	if m.Equal(g.store.Get().Sorting.Model) {
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.Sorting.Model = m
		return s
	})
	g.applySorting()
	g.logger.Debug("sort model changed", "items", len(m))
	g.publish(event.NewEvent(events.TopicSortModelChanged, events.SortModelChanged{Model: m}, g.id))
	g.render()
}

// RowGroupingModel returns the current grouping model.
func (g *Grid) RowGroupingModel() []string {
	g.lock()
	defer g.unlock()
	return g.store.Get().RowGrouping.Model
}

// SetRowGroupingModel requests a new grouping model.
func (g *Grid) SetRowGroupingModel(m []string) {
	g.lock()
	defer g.unlock()
	g.requestGroupingModel(m)
}

// PushRowGroupingModel applies a grouping model chosen by the host.
func (g *Grid) PushRowGroupingModel(m []string) {
	g.lock()
	defer g.unlock()
	g.applyGroupingModel(m)
}

// AddRowGroupingCriteria groups by field at index, or last when index is
// negative. Adding a field twice has no effect.
func (g *Grid) AddRowGroupingCriteria(field string, index int) {
	g.lock()
	defer g.unlock()
	g.requestGroupingModel(grouping.Add(g.store.Get().RowGrouping.Model, field, index))
}

// RemoveRowGroupingCriteria stops grouping by field.
func (g *Grid) RemoveRowGroupingCriteria(field string) {
	g.lock()
	defer g.unlock()
	g.requestGroupingModel(grouping.Remove(g.store.Get().RowGrouping.Model, field))
}

// SetRowGroupingCriteriaIndex moves field to index in the grouping model.
func (g *Grid) SetRowGroupingCriteriaIndex(field string, index int) {
	g.lock()
	defer g.unlock()
	g.requestGroupingModel(grouping.Move(g.store.Get().RowGrouping.Model, field, index))
}

func (g *Grid) requestGroupingModel(m []string) {
	if g.opts.groupingControlled {
		if fn := g.opts.onGroupingModel; fn != nil {
			g.notify(func() { fn(m) })
		}
		return
	}
	g.applyGroupingModel(m)
}

func (g *Grid) applyGroupingModel(m []string) {
	if grouping.Equal(m, g.store.Get().RowGrouping.Model) {
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.RowGrouping.Model = m
		return s
	})
	g.publish(event.NewEvent(events.TopicRowGroupingModelChanged, events.RowGroupingModelChanged{Model: m}, g.id))
	g.syncGrouping()
	g.render()
}

// syncGrouping regenerates the grouping columns and the row tree when the
// sanitized grouping model differs from the one applied last. Rows written
// since the last recomputation are part of the same regeneration.
func (g *Grid) syncGrouping() bool {
	if !g.grouping.Sync() {
		return false
	}
	g.pipe.Invalidate(pipeline.GroupHydrateColumns)
	g.pipe.Invalidate(pipeline.GroupColumnMenu)
	g.setColumnsState(g.hydrateColumns(g.store.Get().Columns))

	if name, changed := g.pipe.UpdateActiveStrategy(); changed {
		g.publish(event.NewEvent(events.TopicActiveStrategyChanged, events.ActiveStrategyChanged{Strategy: name}, g.id))
	}
	g.regenerateRows()
	return true
}
