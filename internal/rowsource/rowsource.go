// Package rowsource loads grid rows from JSON documents.
//
// A document is addressed with a gjson path that must resolve to an array of
// objects; "" selects the document root. Integral numbers are loaded as int64
// so they compare equal to normalized row ids.
package rowsource

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

var (
	// ErrInvalidJSON is returned for malformed documents.
	ErrInvalidJSON = errors.New("rowsource: invalid JSON")

	// ErrNotArray is returned when the path does not select an array.
	ErrNotArray = errors.New("rowsource: path does not select an array")
)

// RowError reports an array element that is not an object.
type RowError struct {
	Index int
	Kind  gjson.Type
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("rowsource: element %d is a %s, want an object", e.Index, e.Kind)
}

// Load reads the file at path and parses it with Parse.
func Load(path, query string) ([]rows.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rowsource: reading %s: %w", path, err)
	}
	return Parse(data, query)
}

// Parse returns the objects selected by query.
func Parse(data []byte, query string) ([]rows.Row, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	res := gjson.ParseBytes(data)
	if query != "" {
		res = res.Get(query)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: %q", ErrNotArray, query)
	}

	out := make([]rows.Row, 0, len(res.Array()))
	var err error
	i := 0
	res.ForEach(func(_, el gjson.Result) bool {
		if !el.IsObject() {
			err = &RowError{Index: i, Kind: el.Type}
			return false
		}
		row := rows.Row{}
		el.ForEach(func(k, v gjson.Result) bool {
			row[k.String()] = value(v)
			return true
		})
		out = append(out, row)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func value(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if f := v.Float(); f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return v.Int()
		}
		return v.Float()
	case gjson.String:
		return v.String()
	}
	if v.IsArray() {
		arr := v.Array()
		out := make([]any, len(arr))
		for i, e := range arr {
			out[i] = value(e)
		}
		return out
	}
	m := map[string]any{}
	v.ForEach(func(k, e gjson.Result) bool {
		m[k.String()] = value(e)
		return true
	})
	return m
}

// InferColumns derives column definitions from the fields of rs, sorted by
// field with "id" first. A field whose values are all numbers is a number
// column, all booleans a boolean column, anything else a string column.
func InferColumns(rs []rows.Row) []*columns.ColDef {
	kinds := map[string]columns.Type{}
	for _, r := range rs {
		for f, v := range r {
			t := kindOf(v)
			if t == "" {
				if _, seen := kinds[f]; !seen {
					kinds[f] = ""
				}
				continue
			}
			switch prev, seen := kinds[f]; {
			case !seen || prev == "":
				kinds[f] = t
			case prev != t:
				kinds[f] = columns.TypeString
			}
		}
	}

	fields := make([]string, 0, len(kinds))
	for f := range kinds {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		if (fields[i] == "id") != (fields[j] == "id") {
			return fields[i] == "id"
		}
		return fields[i] < fields[j]
	})

	out := make([]*columns.ColDef, len(fields))
	for i, f := range fields {
		t := kinds[f]
		if t == "" {
			t = columns.TypeString
		}
		out[i] = &columns.ColDef{Field: f, Type: t}
	}
	return out
}

func kindOf(v any) columns.Type {
	switch v.(type) {
	case nil:
		return ""
	case int64, float64:
		return columns.TypeNumber
	case bool:
		return columns.TypeBoolean
	}
	return columns.TypeString
}
