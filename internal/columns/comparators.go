package columns

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators are not safe for concurrent use.
var (
	collatorMu sync.Mutex
	sortColl   = collate.New(language.Und)
	baseColl   = collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics, collate.IgnoreWidth)
)

// CompareStrings orders strings with the root locale collation.
func CompareStrings(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return sortColl.CompareString(a, b)
}

// EqualFold reports whether a and b are equal ignoring case and accents.
func EqualFold(a, b string) bool {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return baseColl.CompareString(a, b) == 0
}

// compareNil orders nil before everything else. ok is false when neither
// value is nil.
func compareNil(v1, v2 any) (int, bool) {
	switch {
	case v1 == nil && v2 == nil:
		return 0, true
	case v1 == nil:
		return -1, true
	case v2 == nil:
		return 1, true
	}
	return 0, false
}

// StringNumberComparer compares strings by collation and numbers by value.
func StringNumberComparer(v1, v2 any, _, _ CellParams) int {
	if c, ok := compareNil(v1, v2); ok {
		return c
	}
	s1, ok1 := v1.(string)
	s2, ok2 := v2.(string)
	if ok1 && ok2 {
		return CompareStrings(s1, s2)
	}
	f1, okf1 := ToFloat(v1)
	f2, okf2 := ToFloat(v2)
	if okf1 && okf2 {
		return cmp.Compare(f1, f2)
	}
	return CompareStrings(fmt.Sprint(v1), fmt.Sprint(v2))
}

// NumberComparer compares numeric values; unparsable values sort as nil.
func NumberComparer(v1, v2 any, _, _ CellParams) int {
	f1, ok1 := ToFloat(v1)
	f2, ok2 := ToFloat(v2)
	switch {
	case !ok1 && !ok2:
		return 0
	case !ok1:
		return -1
	case !ok2:
		return 1
	}
	return cmp.Compare(f1, f2)
}

// DateComparer compares time values.
func DateComparer(v1, v2 any, _, _ CellParams) int {
	t1, ok1 := ToTime(v1)
	t2, ok2 := ToTime(v2)
	switch {
	case !ok1 && !ok2:
		return 0
	case !ok1:
		return -1
	case !ok2:
		return 1
	}
	return t1.Compare(t2)
}

// BooleanComparer orders false before true.
func BooleanComparer(v1, v2 any, p1, p2 CellParams) int {
	b1, ok1 := v1.(bool)
	b2, ok2 := v2.(bool)
	if !ok1 || !ok2 {
		return StringNumberComparer(v1, v2, p1, p2)
	}
	switch {
	case b1 == b2:
		return 0
	case !b1:
		return -1
	}
	return 1
}

// ToFloat converts numeric values and numeric strings.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// Date layouts accepted by ToTime, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ToTime converts time values and date strings.
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, !t.IsZero()
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// FormatValue renders a cell value as text: nil is empty, times use RFC 3339.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
