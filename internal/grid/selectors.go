package grid

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/selector"
	"github.com/m4theushw/material-ui-x/internal/store"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

type (
	columnsSelector = selector.Selector[*store.State, []*columns.ColDef]
	metaSelector    = selector.Selector[*store.State, columns.Meta]
	idsSelector     = selector.Selector[*store.State, []rows.ID]
)

// selectors are the memoized derivations of one grid.
type selectors struct {
	visibleColumns *columnsSelector
	columnsMeta    *metaSelector
	expandedRows   *idsSelector
	pageRows       *idsSelector
}

func columnsState(s *store.State) *columns.State { return s.Columns }
func rowTree(s *store.State) *tree.Tree { return s.Rows.Tree }
func sortedRows(s *store.State) []rows.ID { return s.Sorting.SortedRows }
func visibleLookup(s *store.State) map[rows.ID]bool { return s.Filter.VisibleRowsLookup }
func pagination(s *store.State) store.PaginationState { return s.Pagination }

func newSelectors() *selectors {
	sel := &selectors{}
	sel.visibleColumns = selector.Create1(columnsState, func(cs *columns.State) []*columns.ColDef {
		if cs == nil {
			return nil
		}
		return columns.Visible(cs.Columns(), cs.VisibilityModel)
	})
	sel.columnsMeta = selector.Create1(sel.visibleColumns.Func(), columns.ComputeMeta)
	sel.expandedRows = selector.Create3(rowTree, sortedRows, visibleLookup, tree.Expanded)
	sel.pageRows = selector.Create2(sel.expandedRows.Func(), pagination, func(ids []rows.ID, p store.PaginationState) []rows.ID {
		if p.PageSize < 1 {
			return ids
		}
		start := min(p.Page*p.PageSize, len(ids))
		end := min(start+p.PageSize, len(ids))
		return ids[start:end]
	})
	return sel
}
