package script

import (
	"context"
	"fmt"

	"github.com/m4theushw/material-ui-x/internal/columns"
)

// Hooks names the Lua functions bound to one column. Empty names are
// skipped.
type Hooks struct {
	ValueGetter         string
	GroupingValueGetter string
	Comparator          string
	FilterOperator      string
	Validator           string
}

// Bind installs the hooks on def. Every named function must exist.
func (e *Engine) Bind(def *columns.ColDef, h Hooks) error {
	for _, name := range []string{h.ValueGetter, h.GroupingValueGetter, h.Comparator, h.FilterOperator, h.Validator} {
		if name != "" && !e.Has(name) {
			return fmt.Errorf("%w: %s (column %q)", ErrUndefinedFunction, name, def.Field)
		}
	}
	if h.ValueGetter != "" {
		def.ValueGetter = e.ValueGetter(h.ValueGetter)
	}
	if h.GroupingValueGetter != "" {
		def.GroupingValueGetter = e.ValueGetter(h.GroupingValueGetter)
	}
	if h.Comparator != "" {
		def.SortComparator = e.Comparator(h.Comparator)
	}
	if h.FilterOperator != "" {
		def.FilterOperators = append(def.FilterOperators, e.FilterOperator(h.FilterOperator, h.FilterOperator))
	}
	if h.Validator != "" {
		def.PreProcessEditCellProps = e.Validator(h.Validator)
	}
	return nil
}

// ValueGetter adapts fn(row, field) to a value getter. A failing call
// yields nil.
func (e *Engine) ValueGetter(name string) columns.ValueGetter {
	return func(p columns.CellParams) any {
		v, err := e.Call(context.Background(), name, p.Row, p.Field)
		if err != nil {
			e.logger.Warn("value getter failed", "function", name, "field", p.Field, "error", err)
			return nil
		}
		return v
	}
}

// Comparator adapts fn(a, b) to a sort comparator. A failing call
// reports the values as equal.
func (e *Engine) Comparator(name string) columns.Comparator {
	return func(v1, v2 any, _, _ columns.CellParams) int {
		v, err := e.Call(context.Background(), name, v1, v2)
		if err != nil {
			e.logger.Warn("comparator failed", "function", name, "error", err)
			return 0
		}
		f, _ := columns.ToFloat(v)
		switch {
		case f < 0:
			return -1
		case f > 0:
			return 1
		}
		return 0
	}
}

// FilterOperator adapts fn(value, filterValue) to a filter operator with
// the given operator value. Items without a value are ignored.
func (e *Engine) FilterOperator(value, label string) columns.FilterOperator {
	return columns.FilterOperator{
		Label: label,
		Value: value,
		GetApplyFilterFn: func(item columns.FilterItem, _ *columns.ColDef) columns.ApplyFilterFn {
			if item.Value == nil {
				return nil
			}
			return func(p columns.CellParams) bool {
				v, err := e.Call(context.Background(), value, p.Value, item.Value)
				if err != nil {
					e.logger.Warn("filter operator failed", "function", value, "error", err)
					return false
				}
				ok, _ := v.(bool)
				return ok
			}
		},
	}
}

// Validator adapts fn(value, row) to an edit pre-processor. A false
// result marks the staged props as invalid.
func (e *Engine) Validator(name string) columns.PreProcessEditCellProps {
	return func(ctx context.Context, p columns.PreProcessParams) (columns.EditCellProps, error) {
		v, err := e.Call(ctx, name, p.Props.Value, p.Row)
		if err != nil {
			return p.Props, err
		}
		ok, _ := v.(bool)
		props := p.Props
		props.Error = !ok
		return props, nil
	}
}
