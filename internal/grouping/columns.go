package grouping

import (
	"log/slog"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

const defaultColumnWidth = 200

// ColumnOptions customizes the generated grouping columns.
type ColumnOptions struct {
	// HeaderName of the single grouping column. Multiple-mode columns take
	// the header of the column they group by.
	HeaderName string

	Width float64

	// LeafField is shown by grouping columns on leaf rows.
	LeafField string
}

// groupingColumns returns the grouping column definitions of a sanitized
// model, before type defaults are applied.
func groupingColumns(cols *columns.State, model []string, mode ColumnMode, o ColumnOptions) []*columns.ColDef {
	if len(model) == 0 {
		return nil
	}
	if mode == ColumnModeSingle {
		return []*columns.ColDef{singleColumn(o)}
	}
	out := make([]*columns.ColDef, 0, len(model))
	for _, field := range model {
		src, err := cols.Column(field)
		if err != nil {
			continue
		}
		out = append(out, multipleColumn(src, o))
	}
	return out
}

func singleColumn(o ColumnOptions) *columns.ColDef {
	header := o.HeaderName
	if header == "" {
		header = "Group"
	}
	return &columns.ColDef{
		Field:           singleColumnField,
		HeaderName:      header,
		Type:            columns.TypeString,
		Width:           width(o),
		Groupable:       columns.Bool(false),
		Hideable:        columns.Bool(false),
		SortComparator:  columns.StringNumberComparer,
		FilterOperators: columns.StringOperators(),
		ValueGetter: valueGetter(func(*tree.Node) bool {
			return true
		}, o.LeafField),
	}
}

func multipleColumn(src *columns.ColDef, o ColumnOptions) *columns.ColDef {
	criteria := src.Field
	typ := src.Type
	if typ == columns.TypeActions {
		typ = columns.TypeString
	}
	return &columns.ColDef{
		Field:           GroupingColumnField(criteria),
		HeaderName:      src.HeaderName,
		Type:            typ,
		Width:           width(o),
		Groupable:       columns.Bool(false),
		Hideable:        columns.Bool(false),
		Align:           src.Align,
		HeaderAlign:     src.HeaderAlign,
		ValueFormatter:  src.ValueFormatter,
		SortComparator:  src.SortComparator,
		FilterOperators: src.FilterOperators,
		ValueOptions:    src.ValueOptions,
		ValueGetter: valueGetter(func(n *tree.Node) bool {
			return n.GroupingField == criteria
		}, o.LeafField),
	}
}

func width(o ColumnOptions) float64 {
	if o.Width > 0 {
		return o.Width
	}
	return defaultColumnWidth
}

// valueGetter returns the grouping key on groups accepted by owns and the
// leaf field on leaves.
func valueGetter(owns func(*tree.Node) bool, leafField string) columns.ValueGetter {
	return func(p columns.CellParams) any {
		n := p.Node
		if n != nil && n.IsGroup() {
			if owns(n) {
				return n.GroupingKey
			}
			return nil
		}
		if leafField == "" || p.Row == nil {
			return nil
		}
		return p.Row[leafField]
	}
}

// hydrate replaces the grouping columns of s with the ones model needs.
// New columns go first, after the checkbox column, and keep the width and
// flex of the column they replace.
func hydrate(s *columns.State, model []string, mode ColumnMode, o ColumnOptions, types columns.Types, logger *slog.Logger) *columns.State {
	if s == nil {
		return s
	}
	defs := groupingColumns(s, model, mode, o)

	out := &columns.State{
		Lookup:          make(map[string]*columns.ColDef, len(s.Lookup)+len(defs)),
		VisibilityModel: s.VisibilityModel,
	}
	fields := make([]string, 0, len(s.All)+len(defs))
	for _, f := range s.All {
		if IsGroupingColumn(f) {
			continue
		}
		fields = append(fields, f)
		out.Lookup[f] = s.Lookup[f]
	}

	added := make([]string, 0, len(defs))
	for _, def := range defs {
		if prev, ok := s.Lookup[def.Field]; ok {
			def.Width = prev.Width
			def.Flex = prev.Flex
		}
		c, err := types.Apply(def)
		if err != nil {
			logger.Warn("grouping column rejected", "field", def.Field, "error", err)
			continue
		}
		out.Lookup[c.Field] = c
		added = append(added, c.Field)
	}

	start := 0
	if len(fields) > 0 && fields[0] == CheckboxField {
		start = 1
	}
	out.All = make([]string, 0, len(fields)+len(added))
	out.All = append(out.All, fields[:start]...)
	out.All = append(out.All, added...)
	out.All = append(out.All, fields[start:]...)
	return out
}
