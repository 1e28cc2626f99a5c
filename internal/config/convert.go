package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/script"
	"github.com/m4theushw/material-ui-x/internal/sorting"
)

// HookBinder installs named Lua hooks on a column. *script.Engine
// implements it.
type HookBinder interface {
	Bind(def *columns.ColDef, h script.Hooks) error
}

// ColDefs converts the column sections. binder may be nil when no column
// names hooks.
func (d *Document) ColDefs(binder HookBinder) ([]*columns.ColDef, error) {
	defs := make([]*columns.ColDef, 0, len(d.Columns))
	for _, c := range d.Columns {
		def := &columns.ColDef{
			Field:        c.Field,
			HeaderName:   c.HeaderName,
			Description:  c.Description,
			Type:         columns.Type(c.Type),
			Width:        c.Width,
			MinWidth:     c.MinWidth,
			MaxWidth:     c.MaxWidth,
			Flex:         c.Flex,
			Hide:         c.Hide,
			Editable:     c.Editable,
			Sortable:     c.Sortable,
			Filterable:   c.Filterable,
			Groupable:    c.Groupable,
			Resizable:    c.Resizable,
			Hideable:     c.Hideable,
			Align:        columns.Align(c.Align),
			ValueOptions: c.ValueOptions,
		}
		if !c.Hooks.IsZero() {
			if binder == nil {
				return nil, fmt.Errorf("%w: column %q", ErrHooksWithoutScript, c.Field)
			}
			if err := binder.Bind(def, script.Hooks(c.Hooks)); err != nil {
				return nil, err
			}
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Options converts the grid section into engine options. The document must
// be valid.
func (d *Document) Options() []grid.Option {
	g := d.Grid
	sig := rows.SignaturePro
	if g.Signature == "datagrid" {
		sig = rows.SignatureDataGrid
	}
	opts := []grid.Option{
		grid.WithSignature(sig),
		grid.WithRowCount(g.RowCount),
		grid.WithPageSize(g.PageSize),
		grid.WithRowHeight(g.RowHeight),
		grid.WithRowGrouping(grouping.Config{
			Mode:      grouping.ColumnMode(g.Grouping.Mode),
			Expansion: grouping.Expansion{DefaultDepth: g.Grouping.DefaultExpansionDepth},
			Disabled:  g.Grouping.Disabled,
		}),
	}
	if t, err := time.ParseDuration(g.ThrottleRows); err == nil {
		opts = append(opts, grid.WithThrottleRows(t))
	}
	if len(g.Grouping.Model) > 0 {
		opts = append(opts, grid.WithRowGroupingModel(append([]string(nil), g.Grouping.Model...)))
	}
	if len(g.Sort) > 0 {
		opts = append(opts, grid.WithSortModel(d.SortModel()))
	}
	if len(g.Filter.Items) > 0 || g.Filter.LinkOperator == "or" {
		opts = append(opts, grid.WithFilterModel(d.FilterModel()))
	}
	if g.Visibility != nil {
		opts = append(opts, grid.WithColumnVisibilityModel(columns.VisibilityModel(g.Visibility)))
	}
	if f := d.Source.IDField; f != "" && f != rows.DefaultIDField {
		opts = append(opts, grid.WithGetRowID(func(r rows.Row) any { return r[f] }))
	}
	return opts
}

// SortModel converts the sort items.
func (d *Document) SortModel() sorting.Model {
	m := make(sorting.Model, len(d.Grid.Sort))
	for i, s := range d.Grid.Sort {
		m[i] = sorting.Item{Field: s.Field, Sort: sorting.Direction(s.Sort)}
	}
	return m
}

// FilterModel converts the filter section.
func (d *Document) FilterModel() filter.Model {
	f := d.Grid.Filter
	m := filter.Model{LinkOperator: filter.LinkOperator(f.LinkOperator)}
	for _, it := range f.Items {
		m.Items = append(m.Items, filter.Item{
			ID:            it.ID,
			ColumnField:   it.Field,
			OperatorValue: it.Operator,
			Value:         it.Value,
		})
	}
	return m
}

// ScriptOptions converts the script section into engine options.
func (d *Document) ScriptOptions() []script.Option {
	if t, err := time.ParseDuration(d.Script.Timeout); err == nil {
		return []script.Option{script.WithTimeout(t)}
	}
	return nil
}

// LogLevel returns the configured level, Info when unset or invalid.
func (d *Document) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(d.Logging.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
