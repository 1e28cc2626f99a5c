package columns

import (
	"fmt"
	"strings"
	"time"
)

// FilterItem is one condition of a filter model.
type FilterItem struct {
	ID            int
	ColumnField   string
	OperatorValue string
	Value         any
}

// ApplyFilterFn tests the cell in p; p.Value holds the cell value.
type ApplyFilterFn func(p CellParams) bool

// FilterOperator is a named filter condition of a column.
type FilterOperator struct {
	Label string
	Value string

	// GetApplyFilterFn returns nil when the item cannot be applied, for
	// example when it carries no value. Such items are ignored.
	GetApplyFilterFn func(item FilterItem, col *ColDef) ApplyFilterFn
}

func hasValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	}
	return true
}

func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func anyOf(v any) []any {
	switch t := v.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	}
	return nil
}

func isEmptyOperator() FilterOperator {
	return FilterOperator{
		Label: "is empty",
		Value: "isEmpty",
		GetApplyFilterFn: func(FilterItem, *ColDef) ApplyFilterFn {
			return func(p CellParams) bool { return p.Value == nil || p.Value == "" }
		},
	}
}

func isNotEmptyOperator() FilterOperator {
	return FilterOperator{
		Label: "is not empty",
		Value: "isNotEmpty",
		GetApplyFilterFn: func(FilterItem, *ColDef) ApplyFilterFn {
			return func(p CellParams) bool { return p.Value != nil && p.Value != "" }
		},
	}
}

func stringOperator(label, value string, test func(cell, filter string) bool) FilterOperator {
	return FilterOperator{
		Label: label,
		Value: value,
		GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
			if !hasValue(item.Value) {
				return nil
			}
			needle := strings.ToLower(text(item.Value))
			return func(p CellParams) bool {
				return test(strings.ToLower(text(p.Value)), needle)
			}
		},
	}
}

// StringOperators returns the operators of string columns.
func StringOperators() []FilterOperator {
	return []FilterOperator{
		stringOperator("contains", "contains", strings.Contains),
		{
			Label: "equals",
			Value: "equals",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				if !hasValue(item.Value) {
					return nil
				}
				want := text(item.Value)
				return func(p CellParams) bool { return EqualFold(text(p.Value), want) }
			},
		},
		stringOperator("starts with", "startsWith", strings.HasPrefix),
		stringOperator("ends with", "endsWith", strings.HasSuffix),
		isEmptyOperator(),
		isNotEmptyOperator(),
		{
			Label: "is any of",
			Value: "isAnyOf",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				values := anyOf(item.Value)
				if len(values) == 0 {
					return nil
				}
				return func(p CellParams) bool {
					cell := text(p.Value)
					for _, v := range values {
						if EqualFold(cell, text(v)) {
							return true
						}
					}
					return false
				}
			},
		},
	}
}

func numberOperator(value string, test func(cell, filter float64) bool) FilterOperator {
	return FilterOperator{
		Label: value,
		Value: value,
		GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
			want, ok := ToFloat(item.Value)
			if !ok {
				return nil
			}
			return func(p CellParams) bool {
				got, ok := ToFloat(p.Value)
				return ok && test(got, want)
			}
		},
	}
}

// NumericOperators returns the operators of number columns.
func NumericOperators() []FilterOperator {
	return []FilterOperator{
		numberOperator("=", func(a, b float64) bool { return a == b }),
		{
			Label: "!=",
			Value: "!=",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				want, ok := ToFloat(item.Value)
				if !ok {
					return nil
				}
				return func(p CellParams) bool {
					got, ok := ToFloat(p.Value)
					return !ok || got != want
				}
			},
		},
		numberOperator(">", func(a, b float64) bool { return a > b }),
		numberOperator(">=", func(a, b float64) bool { return a >= b }),
		numberOperator("<", func(a, b float64) bool { return a < b }),
		numberOperator("<=", func(a, b float64) bool { return a <= b }),
		isEmptyOperator(),
		isNotEmptyOperator(),
		{
			Label: "is any of",
			Value: "isAnyOf",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				var wants []float64
				for _, v := range anyOf(item.Value) {
					if f, ok := ToFloat(v); ok {
						wants = append(wants, f)
					}
				}
				if len(wants) == 0 {
					return nil
				}
				return func(p CellParams) bool {
					got, ok := ToFloat(p.Value)
					if !ok {
						return false
					}
					for _, w := range wants {
						if got == w {
							return true
						}
					}
					return false
				}
			},
		},
	}
}

func dateOperator(label, value string, withTime bool, test func(c int) bool) FilterOperator {
	return FilterOperator{
		Label: label,
		Value: value,
		GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
			want, ok := ToTime(item.Value)
			if !ok {
				return nil
			}
			want = truncateDate(want, withTime)
			return func(p CellParams) bool {
				got, ok := ToTime(p.Value)
				if !ok {
					return false
				}
				return test(truncateDate(got, withTime).Compare(want))
			}
		},
	}
}

func truncateDate(t time.Time, withTime bool) time.Time {
	if withTime {
		return t.Truncate(time.Minute)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateOperators returns the operators of date columns. withTime keeps the
// time of day, truncated to minutes.
func DateOperators(withTime bool) []FilterOperator {
	return []FilterOperator{
		dateOperator("is", "is", withTime, func(c int) bool { return c == 0 }),
		dateOperator("is not", "not", withTime, func(c int) bool { return c != 0 }),
		dateOperator("is after", "after", withTime, func(c int) bool { return c > 0 }),
		dateOperator("is on or after", "onOrAfter", withTime, func(c int) bool { return c >= 0 }),
		dateOperator("is before", "before", withTime, func(c int) bool { return c < 0 }),
		dateOperator("is on or before", "onOrBefore", withTime, func(c int) bool { return c <= 0 }),
		isEmptyOperator(),
		isNotEmptyOperator(),
	}
}

// BooleanOperators returns the operators of boolean columns.
func BooleanOperators() []FilterOperator {
	return []FilterOperator{{
		Label: "is",
		Value: "is",
		GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
			var want bool
			switch v := item.Value.(type) {
			case bool:
				want = v
			case string:
				if v == "" {
					return nil
				}
				want = v == "true"
			default:
				return nil
			}
			return func(p CellParams) bool {
				got, _ := p.Value.(bool)
				return got == want
			}
		},
	}}
}

// SingleSelectOperators returns the operators of singleSelect columns.
func SingleSelectOperators() []FilterOperator {
	return []FilterOperator{
		{
			Label: "is",
			Value: "is",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				if !hasValue(item.Value) {
					return nil
				}
				want := text(item.Value)
				return func(p CellParams) bool { return text(p.Value) == want }
			},
		},
		{
			Label: "is not",
			Value: "not",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				if !hasValue(item.Value) {
					return nil
				}
				want := text(item.Value)
				return func(p CellParams) bool { return text(p.Value) != want }
			},
		},
		{
			Label: "is any of",
			Value: "isAnyOf",
			GetApplyFilterFn: func(item FilterItem, _ *ColDef) ApplyFilterFn {
				values := anyOf(item.Value)
				if len(values) == 0 {
					return nil
				}
				return func(p CellParams) bool {
					cell := text(p.Value)
					for _, v := range values {
						if cell == text(v) {
							return true
						}
					}
					return false
				}
			},
		},
	}
}
