package rows

import (
	"fmt"
	"math"
)

// ID identifies a row. Valid ids are strings and numbers; NormalizeID folds
// every integral number into int64 so 3, int32(3) and 3.0 address the same row.
type ID any

// Row is an opaque record. Rows are treated as immutable; updates produce
// new maps.
type Row map[string]any

// IDGetter extracts the raw id from a row.
type IDGetter func(Row) any

// DefaultIDField is read when no IDGetter is configured.
const DefaultIDField = "id"

// ActionField marks partial updates. A value of ActionDelete removes the row.
const (
	ActionField  = "_action"
	ActionDelete = "delete"
)

// NormalizeID converts a raw id into its canonical form.
func NormalizeID(v any) (ID, bool) {
	switch id := v.(type) {
	case string:
		return id, true
	case int:
		return int64(id), true
	case int8:
		return int64(id), true
	case int16:
		return int64(id), true
	case int32:
		return int64(id), true
	case int64:
		return id, true
	case uint:
		return uintID(uint64(id))
	case uint8:
		return int64(id), true
	case uint16:
		return int64(id), true
	case uint32:
		return int64(id), true
	case uint64:
		return uintID(id)
	case float32:
		return floatID(float64(id))
	case float64:
		return floatID(id)
	}
	return nil, false
}

func uintID(v uint64) (ID, bool) {
	if v > math.MaxInt64 {
		return nil, false
	}
	return int64(v), true
}

func floatID(f float64) (ID, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f), true
	}
	return f, true
}

// GetID extracts and normalizes the id of row.
func GetID(row Row, getter IDGetter) (ID, error) {
	var raw any
	if getter != nil {
		raw = getter(row)
	} else {
		raw = row[DefaultIDField]
	}
	id, ok := NormalizeID(raw)
	if !ok {
		return nil, &IDError{Row: row, Value: raw}
	}
	return id, nil
}

// IDString formats an id the way grouping keys and generated ids spell it.
func IDString(id ID) string {
	if f, ok := id.(float64); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprint(id)
}

// IsDelete reports whether a partial update is a delete marker.
func IsDelete(update Row) bool {
	action, _ := update[ActionField].(string)
	return action == ActionDelete
}

// Merge returns a new row holding base overlaid with patch.
func Merge(base, patch Row) Row {
	out := make(Row, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
