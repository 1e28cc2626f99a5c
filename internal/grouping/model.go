package grouping

import (
	"strings"

	"github.com/m4theushw/material-ui-x/internal/columns"
)

// FeatureName is the strategy and tree grouping name of row grouping.
const FeatureName = "rowGrouping"

// CheckboxField is the field of the selection column, kept first.
const CheckboxField = "__check__"

const (
	columnPrefix      = "__row_group_by_columns_group_"
	columnSuffix      = "__"
	singleColumnField = "__row_group_by_columns_group__"
)

// ColumnMode selects how grouping columns are created.
type ColumnMode string

const (
	ColumnModeSingle   ColumnMode = "single"
	ColumnModeMultiple ColumnMode = "multiple"
)

// GroupingColumnField returns the field of the multiple-mode grouping
// column of a criteria field.
func GroupingColumnField(criteria string) string {
	return columnPrefix + criteria + columnSuffix
}

// SingleGroupingColumnField returns the field of the single-mode grouping column.
func SingleGroupingColumnField() string { return singleColumnField }

// IsGroupingColumn reports whether field belongs to a grouping column.
func IsGroupingColumn(field string) bool {
	return field == singleColumnField || strings.HasPrefix(field, columnPrefix)
}

// CriteriaFromGroupingField returns the criteria field of a multiple-mode
// grouping column. ok is false for the single column and other fields.
func CriteriaFromGroupingField(field string) (string, bool) {
	if field == singleColumnField || !strings.HasPrefix(field, columnPrefix) || !strings.HasSuffix(field, columnSuffix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(field, columnPrefix), columnSuffix), true
}

// Contains reports whether model groups by field.
func Contains(model []string, field string) bool {
	return indexOf(model, field) >= 0
}

func indexOf(model []string, field string) int {
	for i, f := range model {
		if f == field {
			return i
		}
	}
	return -1
}

// Add inserts field at index, or at the end when index is negative or out of
// range. A field already in the model returns the model unchanged.
func Add(model []string, field string, index int) []string {
	if Contains(model, field) {
		return model
	}
	if index < 0 || index > len(model) {
		index = len(model)
	}
	out := make([]string, 0, len(model)+1)
	out = append(out, model[:index]...)
	out = append(out, field)
	return append(out, model[index:]...)
}

// Remove drops field. A field not in the model returns the model unchanged.
func Remove(model []string, field string) []string {
	if !Contains(model, field) {
		return model
	}
	out := make([]string, 0, len(model)-1)
	for _, f := range model {
		if f != field {
			out = append(out, f)
		}
	}
	return out
}

// Move moves field to target. A field not in the model returns the model
// unchanged.
func Move(model []string, field string, target int) []string {
	cur := indexOf(model, field)
	if cur < 0 {
		return model
	}
	rest := make([]string, 0, len(model)-1)
	rest = append(rest, model[:cur]...)
	rest = append(rest, model[cur+1:]...)
	if target < 0 {
		target = 0
	}
	if target > len(rest) {
		target = len(rest)
	}
	out := make([]string, 0, len(model))
	out = append(out, rest[:target]...)
	out = append(out, field)
	return append(out, rest[target:]...)
}

// Sanitize keeps the model fields that name a groupable column.
func Sanitize(model []string, cols *columns.State) []string {
	out := make([]string, 0, len(model))
	for _, f := range model {
		if cols == nil {
			break
		}
		if c, ok := cols.Lookup[f]; ok && c.IsGroupable() {
			out = append(out, f)
		}
	}
	return out
}

// Equal reports whether two models hold the same fields in the same order.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
