package grid

import (
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// SetRowChildrenExpansion expands or collapses a group.
func (g *Grid) SetRowChildrenExpansion(id rows.ID, expanded bool) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	return g.setExpansion(id, expanded)
}

// ToggleRowExpansion flips the expansion of a group.
func (g *Grid) ToggleRowExpansion(id rows.ID) error {
	id, err := canonicalID(id)
	if err != nil {
		return err
	}
	g.lock()
	defer g.unlock()
	n, ok := g.store.Get().Rows.Tree.Node(id)
	if !ok {
		return &rows.NotFoundError{ID: id}
	}
	return g.setExpansion(id, !n.ChildrenExpanded)
}

func (g *Grid) setExpansion(id rows.ID, expanded bool) error {
	t := g.store.Get().Rows.Tree
	n, ok := t.Node(id)
	if !ok {
		return &rows.NotFoundError{ID: id}
	}
	if !n.IsGroup() {
		return ErrNotGroup
	}
	if n.ChildrenExpanded == expanded {
		return nil
	}
	next, err := t.WithExpansion(id, expanded)
	if err != nil {
		return err
	}
	g.store.Set(func(s store.State) store.State {
		s.Rows.Tree = next
		return s
	})
	g.clampPage()
	g.publish(event.NewEvent(events.TopicRowExpansionChanged, events.RowExpansionChanged{ID: id, Expanded: expanded}, g.id))
	g.render()
	return nil
}

// FocusedCell returns the focused cell, if any.
func (g *Grid) FocusedCell() (store.CellRef, bool) {
	g.lock()
	defer g.unlock()
	c := g.store.Get().Focus.Cell
	if c == nil {
		return store.CellRef{}, false
	}
	return *c, true
}

// SetCellFocus focuses a cell. Invalid ids are ignored.
func (g *Grid) SetCellFocus(id rows.ID, field string) {
	id, err := canonicalID(id)
	if err != nil {
		return
	}
	g.lock()
	defer g.unlock()
	g.setCellFocus(id, field)
}

func (g *Grid) setCellFocus(id rows.ID, field string) {
	if c := g.store.Get().Focus.Cell; c != nil && c.ID == id && c.Field == field {
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.Focus.Cell = &store.CellRef{ID: id, Field: field}
		return s
	})
	g.publish(event.NewEvent(events.TopicCellFocusChanged, events.CellFocusChanged{ID: id, Field: field}, g.id))
	g.render()
}

// moveFocus focuses the cell dRow rows and dCol columns away from
// (id, field) among the visible rows and columns. Focus stays when the
// target is out of range.
func (g *Grid) moveFocus(id rows.ID, field string, dRow, dCol int) {
	s := g.store.Get()
	ids := g.sel.expandedRows.Select(s)
	cols := g.sel.visibleColumns.Select(s)

	r, c := -1, -1
	for i, v := range ids {
		if v == id {
			r = i
			break
		}
	}
	for i, col := range cols {
		if col.Field == field {
			c = i
			break
		}
	}
	if r < 0 || c < 0 {
		return
	}
	r, c = r+dRow, c+dCol
	if r < 0 || r >= len(ids) || c < 0 || c >= len(cols) {
		return
	}
	g.setCellFocus(ids[r], cols[c].Field)
}

// Page returns the current page and page size.
func (g *Grid) Page() store.PaginationState {
	g.lock()
	defer g.unlock()
	return g.store.Get().Pagination
}

// SetPage moves to page, clamped to the available pages.
func (g *Grid) SetPage(page int) {
	g.lock()
	defer g.unlock()
	p := g.store.Get().Pagination
	g.setPagination(page, p.PageSize)
}

// SetPageSize changes the page size and keeps the page in range.
func (g *Grid) SetPageSize(size int) error {
	if size < 1 {
		return ErrInvalidPageSize
	}
	g.lock()
	defer g.unlock()
	g.setPagination(g.store.Get().Pagination.Page, size)
	return nil
}

// PageCount returns the number of pages of visible rows, at least one.
func (g *Grid) PageCount() int {
	g.lock()
	defer g.unlock()
	s := g.store.Get()
	return pageCount(len(g.sel.expandedRows.Select(s)), s.Pagination.PageSize)
}

// PageRowIDs returns the visible rows of the current page.
func (g *Grid) PageRowIDs() []rows.ID {
	g.lock()
	defer g.unlock()
	return g.sel.pageRows.Select(g.store.Get())
}

func pageCount(n, size int) int {
	if size < 1 || n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

func (g *Grid) setPagination(page, size int) {
	s := g.store.Get()
	last := pageCount(len(g.sel.expandedRows.Select(s)), size) - 1
	page = min(max(page, 0), last)
	if page == s.Pagination.Page && size == s.Pagination.PageSize {
		return
	}
	g.store.Set(func(s store.State) store.State {
		s.Pagination = store.PaginationState{Page: page, PageSize: size}
		return s
	})
	g.publish(event.NewEvent(events.TopicPaginationChanged, events.PaginationChanged{Page: page, PageSize: size}, g.id))
	g.render()
}

// clampPage keeps the page in range after the visible rows changed.
func (g *Grid) clampPage() {
	p := g.store.Get().Pagination
	g.setPagination(p.Page, p.PageSize)
}

// RowSpacing is the margin above and below a row.
type RowSpacing struct {
	Top, Bottom float64
}

// RowHeightEntry is the value of the rowHeight processor group.
type RowHeightEntry struct {
	Content float64
	Spacing RowSpacing
}

// Total returns the content height plus the spacing.
func (e RowHeightEntry) Total() float64 {
	return e.Content + e.Spacing.Top + e.Spacing.Bottom
}

// RowHeightParams identifies the row a rowHeight processor runs for.
type RowHeightParams struct {
	ID rows.ID

	// IndexRelativeToCurrentPage is the position of the row on its page.
	IndexRelativeToCurrentPage int

	IsFirstVisible bool
	IsLastVisible  bool
}

// RowHeight returns the height of a visible row after the rowHeight
// processors ran.
func (g *Grid) RowHeight(id rows.ID) (RowHeightEntry, error) {
	id, err := canonicalID(id)
	if err != nil {
		return RowHeightEntry{}, err
	}
	g.lock()
	defer g.unlock()
	s := g.store.Get()
	page := g.sel.pageRows.Select(s)
	idx := -1
	for i, v := range page {
		if v == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return RowHeightEntry{}, &rows.NotFoundError{ID: id}
	}
	p := RowHeightParams{
		ID:                         id,
		IndexRelativeToCurrentPage: idx,
		IsFirstVisible:             idx == 0,
		IsLastVisible:              idx == len(page)-1,
	}
	return pipeline.Apply(g.pipe, pipeline.GroupRowHeight, RowHeightEntry{Content: g.opts.rowHeight}, p), nil
}

// RegisterRowHeightProcessor adds a processor to the rowHeight group.
// The returned func removes it.
func (g *Grid) RegisterRowHeightProcessor(name string, fn func(RowHeightEntry, RowHeightParams) RowHeightEntry) func() {
	g.lock()
	defer g.unlock()
	undo := pipeline.Register(g.pipe, pipeline.GroupRowHeight, name, fn)
	return func() {
		g.lock()
		defer g.unlock()
		undo()
	}
}
