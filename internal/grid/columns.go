package grid

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// hydrateColumns runs the hydrateColumns processors over s and computes the
// column widths for the current viewport.
func (g *Grid) hydrateColumns(s *columns.State) *columns.State {
	h := pipeline.Apply(g.pipe, pipeline.GroupHydrateColumns, s, g.opts.types)
	return columns.ComputeWidths(h, g.store.Get().Dimensions.ViewportWidth)
}

func (g *Grid) setColumnsState(s *columns.State) {
	g.store.Set(func(st store.State) store.State {
		st.Columns = s
		return st
	})
	g.publish(event.NewEvent(events.TopicColumnsChanged, events.ColumnsChanged{Fields: s.All}, g.id))
	g.render()
}

// columnsChanged re-derives what depends on the columns: the grouping
// model may now sanitize differently, and operators or comparators may
// have changed.
func (g *Grid) columnsChanged() {
	if g.syncGrouping() {
		return
	}
	g.applyFilters()
	g.applySorting()
	g.clampPage()
}

// SetColumns replaces the column definitions. Grouping columns and the
// visibility model are kept.
func (g *Grid) SetColumns(defs []*columns.ColDef) error {
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	cur := g.store.Get().Columns
	next, err := columns.NewState(defs, g.opts.types, cur.VisibilityModel)
	if err != nil {
		return err
	}
	// Carry the grouping columns so they keep a resized width.
	for _, f := range cur.All {
		if grouping.IsGroupingColumn(f) {
			next.All = append(next.All, f)
			next.Lookup[f] = cur.Lookup[f]
		}
	}
	g.setColumnsState(g.hydrateColumns(next))
	g.columnsChanged()
	return nil
}

// UpdateColumns replaces the columns with matching fields and appends the
// others.
func (g *Grid) UpdateColumns(defs []*columns.ColDef) error {
	g.lock()
	defer g.unlock()
	if g.closed {
		return ErrClosed
	}
	return g.updateColumns(defs)
}

func (g *Grid) updateColumns(defs []*columns.ColDef) error {
	next, err := g.store.Get().Columns.Upsert(defs, g.opts.types)
	if err != nil {
		return err
	}
	g.setColumnsState(g.hydrateColumns(next))
	g.columnsChanged()
	return nil
}

// Column returns the hydrated column of a field.
func (g *Grid) Column(field string) (*columns.ColDef, error) {
	g.lock()
	defer g.unlock()
	return g.store.Get().Columns.Column(field)
}

// Columns returns every column in order, hidden and grouping ones included.
func (g *Grid) Columns() []*columns.ColDef {
	g.lock()
	defer g.unlock()
	return g.store.Get().Columns.Columns()
}

// VisibleColumns returns the visible columns in order.
func (g *Grid) VisibleColumns() []*columns.ColDef {
	g.lock()
	defer g.unlock()
	return g.sel.visibleColumns.Select(g.store.Get())
}

// ColumnsMeta returns the left offsets and total width of the visible
// columns.
func (g *Grid) ColumnsMeta() columns.Meta {
	g.lock()
	defer g.unlock()
	return g.sel.columnsMeta.Select(g.store.Get())
}

// SetColumnVisibility shows or hides one column.
func (g *Grid) SetColumnVisibility(field string, visible bool) error {
	g.lock()
	defer g.unlock()
	cur := g.store.Get().Columns
	c, err := cur.Column(field)
	if err != nil {
		return err
	}
	if !visible && !c.IsHideable() {
		return nil
	}
	model := make(columns.VisibilityModel, len(cur.VisibilityModel)+1)
	for k, v := range cur.VisibilityModel {
		model[k] = v
	}
	model[field] = visible
	g.setVisibilityModel(model)
	return nil
}

// SetColumnVisibilityModel replaces the visibility model.
func (g *Grid) SetColumnVisibilityModel(model columns.VisibilityModel) {
	g.lock()
	defer g.unlock()
	g.setVisibilityModel(model)
}

func (g *Grid) setVisibilityModel(model columns.VisibilityModel) {
	next := g.store.Get().Columns.Clone()
	next.VisibilityModel = model
	g.store.Set(func(st store.State) store.State {
		st.Columns = columns.ComputeWidths(next, st.Dimensions.ViewportWidth)
		return st
	})
	g.publish(event.NewEvent(events.TopicColumnVisibilityChanged, events.ColumnVisibilityChanged{Model: model}, g.id))
	g.render()
}

// SetColumnWidth sets the width of a column and drops its flex.
func (g *Grid) SetColumnWidth(field string, width float64) error {
	g.lock()
	defer g.unlock()
	c, err := g.store.Get().Columns.Column(field)
	if err != nil {
		return err
	}
	c = c.Clone()
	c.Width = c.ClampWidth(width)
	c.Flex = 0
	if err := g.updateColumns([]*columns.ColDef{c}); err != nil {
		return err
	}
	g.publish(event.NewEvent(events.TopicColumnWidthChanged, events.ColumnResize{Field: field, Width: c.Width}, g.id))
	return nil
}

// SetViewportWidth sets the width flex columns share.
func (g *Grid) SetViewportWidth(width float64) {
	g.lock()
	defer g.unlock()
	g.store.Set(func(st store.State) store.State {
		st.Dimensions.ViewportWidth = width
		if st.Columns != nil {
			st.Columns = columns.ComputeWidths(st.Columns, width)
		}
		return st
	})
	g.render()
}

// ColumnMenu returns the menu entries of a column after the columnMenu
// processors ran.
func (g *Grid) ColumnMenu(field string) ([]columns.MenuItem, error) {
	g.lock()
	defer g.unlock()
	c, err := g.store.Get().Columns.Column(field)
	if err != nil {
		return nil, err
	}
	return pipeline.Apply(g.pipe, pipeline.GroupColumnMenu, columns.BaseMenu(c), c), nil
}
