package grouping

import (
	"log/slog"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// Config configures the row grouping feature.
type Config struct {
	Mode      ColumnMode
	Column    ColumnOptions
	Expansion Expansion
	Disabled  bool
	Types     columns.Types
	Logger    *slog.Logger
}

// Feature plugs row grouping into a grid pipeline. It reads the grouping
// model and the columns through accessors so it always sees the current
// state; it is not safe for concurrent use.
type Feature struct {
	cfg     Config
	model   func() []string
	columns func() *columns.State
	applied []string
	logger  *slog.Logger
}

// New creates the feature.
func New(cfg Config, model func() []string, cols func() *columns.State) *Feature {
	if cfg.Mode == "" {
		cfg.Mode = ColumnModeSingle
	}
	if cfg.Types == nil {
		cfg.Types = columns.DefaultTypes()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feature{
		cfg:     cfg,
		model:   model,
		columns: cols,
		logger:  logger.With("component", FeatureName),
	}
}

// Mode returns the grouping column mode.
func (f *Feature) Mode() ColumnMode { return f.cfg.Mode }

// Sanitized returns the current model restricted to groupable columns.
// It is empty when the feature is disabled.
func (f *Feature) Sanitized() []string {
	if f.cfg.Disabled {
		return nil
	}
	return Sanitize(f.model(), f.columns())
}

// Sync records the sanitized model and reports whether it differs from the
// one recorded last. The grid regenerates columns and rows only when it did.
func (f *Feature) Sync() bool {
	next := f.Sanitized()
	if Equal(next, f.applied) {
		return false
	}
	f.logger.Debug("grouping model applied", "from", f.applied, "to", next)
	f.applied = next
	return true
}

// Register installs the column processors and the grouping strategy.
// The returned func removes them.
func (f *Feature) Register(p *pipeline.Pipeline) func() {
	undo := []func(){
		pipeline.Register(p, pipeline.GroupHydrateColumns, FeatureName, f.hydrateColumns),
		pipeline.Register(p, pipeline.GroupColumnMenu, FeatureName, f.columnMenu),
		p.RegisterStrategy(FeatureName, pipeline.ProcessorRowTreeCreation, f.createTree),
		p.RegisterStrategy(FeatureName, pipeline.ProcessorFiltering, Filter(f.cfg.Mode)),
		p.RegisterStrategy(FeatureName, pipeline.ProcessorSorting, func(sp sorting.Params) []rows.ID {
			return sorting.Tree(sp.Tree, sp.SortList)
		}),
	}
	p.SetStrategyAvailability(FeatureName, func() bool {
		return len(f.Sanitized()) > 0
	})
	return func() {
		for _, fn := range undo {
			fn()
		}
		p.SetStrategyAvailability(FeatureName, func() bool { return false })
	}
}

func (f *Feature) hydrateColumns(s *columns.State, types columns.Types) *columns.State {
	if types == nil {
		types = f.cfg.Types
	}
	var model []string
	if !f.cfg.Disabled {
		model = Sanitize(f.model(), s)
	}
	return hydrate(s, model, f.cfg.Mode, f.cfg.Column, types, f.logger)
}

func (f *Feature) createTree(p tree.CreateParams) tree.Created {
	cols := f.columns()
	model := f.Sanitized()
	created := BuildTree(p, cols, model, f.cfg.Expansion)
	f.logger.Debug("row tree grouped", "model", model, "nodes", created.Tree.Len(), "depth", created.Tree.Depth)
	return created
}

func (f *Feature) columnMenu(items []columns.MenuItem, c *columns.ColDef) []columns.MenuItem {
	if f.cfg.Disabled || c == nil {
		return items
	}
	var add columns.MenuItem
	switch {
	case IsGroupingColumn(c.Field):
		add = columns.MenuUngroupBy
	case c.IsGroupable() && Contains(f.model(), c.Field):
		add = columns.MenuStopGroupBy
	case c.IsGroupable():
		add = columns.MenuGroupBy
	default:
		return items
	}
	out := make([]columns.MenuItem, 0, len(items)+2)
	out = append(out, items...)
	return append(out, columns.MenuDivider, add)
}

// ToggleTarget reports whether pressing Space on the cell (id, field)
// toggles the expansion of a group, and returns that group.
func (f *Feature) ToggleTarget(s *store.State, id rows.ID, field string) (*tree.Node, bool) {
	if !IsGroupingColumn(field) || s.Rows.Tree == nil {
		return nil, false
	}
	n, ok := s.Rows.Tree.Node(id)
	if !ok || !n.IsGroup() {
		return nil, false
	}
	if f.cfg.Mode != ColumnModeSingle && GroupingColumnField(n.GroupingField) != field {
		return nil, false
	}
	if s.Filter.FilteredDescendantCountLookup != nil {
		if count, ok := s.Filter.FilteredDescendantCountLookup[id]; ok && count == 0 {
			return nil, false
		}
	}
	return n, true
}
