package snapshot

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/sorting"
)

// Version is the document version written by Encode.
const Version = 1

var (
	// ErrInvalidDocument is returned for data that is not a snapshot.
	ErrInvalidDocument = errors.New("snapshot: invalid document")

	// ErrUnsupportedVersion is returned for documents from a newer writer.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
)

// Encode renders st as a JSON document.
func Encode(st grid.InitialState) ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, v any) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, v)
		}
	}

	set("version", Version)
	set("columns.widths", mapOrEmpty(st.Columns.Widths))
	if st.Columns.VisibilityModel != nil {
		set("columns.visibility", map[string]bool(st.Columns.VisibilityModel))
	}

	items := make([]map[string]any, len(st.Filter.Items))
	for i, it := range st.Filter.Items {
		items[i] = map[string]any{
			"id":       it.ID,
			"field":    it.ColumnField,
			"operator": it.OperatorValue,
			"value":    it.Value,
		}
	}
	set("filter.items", items)
	set("filter.linkOperator", string(st.Filter.Link()))

	sortItems := make([]map[string]string, len(st.Sorting))
	for i, it := range st.Sorting {
		sortItems[i] = map[string]string{"field": it.Field, "sort": string(it.Sort)}
	}
	set("sorting", sortItems)
	set("rowGrouping", append([]string{}, st.RowGrouping...))
	set("expansion", mapOrEmpty(st.Expansion))
	set("pagination.page", st.Pagination.Page)
	set("pagination.pageSize", st.Pagination.PageSize)

	if err != nil {
		return nil, fmt.Errorf("snapshot: encoding: %w", err)
	}
	return doc, nil
}

func mapOrEmpty[V any](m map[string]V) map[string]V {
	if m == nil {
		return map[string]V{}
	}
	return m
}

// Decode parses a document written by Encode.
func Decode(data []byte) (grid.InitialState, error) {
	var st grid.InitialState
	if !gjson.ValidBytes(data) {
		return st, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(data)
	v := doc.Get("version")
	if !v.Exists() {
		return st, ErrInvalidDocument
	}
	if v.Int() > Version {
		return st, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v.Int())
	}

	st.Columns.Widths = map[string]float64{}
	doc.Get("columns.widths").ForEach(func(k, w gjson.Result) bool {
		st.Columns.Widths[k.String()] = w.Float()
		return true
	})
	if vis := doc.Get("columns.visibility"); vis.IsObject() {
		st.Columns.VisibilityModel = columns.VisibilityModel{}
		vis.ForEach(func(k, b gjson.Result) bool {
			st.Columns.VisibilityModel[k.String()] = b.Bool()
			return true
		})
	}

	st.Filter = filter.NewModel()
	if doc.Get("filter.linkOperator").String() == string(filter.LinkOr) {
		st.Filter.LinkOperator = filter.LinkOr
	}
	for _, it := range doc.Get("filter.items").Array() {
		st.Filter.Items = append(st.Filter.Items, filter.Item{
			ID:            int(it.Get("id").Int()),
			ColumnField:   it.Get("field").String(),
			OperatorValue: it.Get("operator").String(),
			Value:         value(it.Get("value")),
		})
	}

	for _, it := range doc.Get("sorting").Array() {
		st.Sorting = append(st.Sorting, sorting.Item{
			Field: it.Get("field").String(),
			Sort:  sorting.Direction(it.Get("sort").String()),
		})
	}
	for _, f := range doc.Get("rowGrouping").Array() {
		st.RowGrouping = append(st.RowGrouping, f.String())
	}

	st.Expansion = map[string]bool{}
	doc.Get("expansion").ForEach(func(k, b gjson.Result) bool {
		st.Expansion[k.String()] = b.Bool()
		return true
	})

	st.Pagination.Page = int(doc.Get("pagination.page").Int())
	st.Pagination.PageSize = int(doc.Get("pagination.pageSize").Int())
	return st, nil
}

func value(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		if f := r.Float(); f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return r.Int()
		}
		return r.Float()
	case gjson.JSON:
		if r.IsArray() {
			arr := r.Array()
			out := make([]any, len(arr))
			for i, e := range arr {
				out[i] = value(e)
			}
			return out
		}
	}
	return r.Value()
}
