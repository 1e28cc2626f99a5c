package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/m4theushw/material-ui-x/internal/columns"
)

var knownTypes = map[string]bool{
	string(columns.TypeString):       true,
	string(columns.TypeNumber):       true,
	string(columns.TypeDate):         true,
	string(columns.TypeDateTime):     true,
	string(columns.TypeBoolean):      true,
	string(columns.TypeSingleSelect): true,
	string(columns.TypeActions):      true,
}

// Validate checks the document and returns every problem found, joined.
// Each problem is a *ValidationError matching ErrValidationFailed.
func (d *Document) Validate() error {
	var errs []error
	fail := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	g := d.Grid
	if g.Signature != "pro" && g.Signature != "datagrid" {
		fail("grid.signature", `must be "pro" or "datagrid"`, g.Signature)
	}
	if g.ThrottleRows != "" {
		if t, err := time.ParseDuration(g.ThrottleRows); err != nil || t < 0 {
			fail("grid.throttle_rows", "must be a non-negative duration", g.ThrottleRows)
		}
	}
	if g.RowCount < 0 {
		fail("grid.row_count", "must not be negative", g.RowCount)
	}
	if g.PageSize <= 0 {
		fail("grid.page_size", "must be positive", g.PageSize)
	}
	if g.RowHeight <= 0 {
		fail("grid.row_height", "must be positive", g.RowHeight)
	}
	if g.Grouping.Mode != "single" && g.Grouping.Mode != "multiple" {
		fail("grid.grouping.mode", `must be "single" or "multiple"`, g.Grouping.Mode)
	}
	if g.Grouping.DefaultExpansionDepth < -1 {
		fail("grid.grouping.default_expansion_depth", "must be -1 or more", g.Grouping.DefaultExpansionDepth)
	}
	if g.Filter.LinkOperator != "and" && g.Filter.LinkOperator != "or" {
		fail("grid.filter.link_operator", `must be "and" or "or"`, g.Filter.LinkOperator)
	}

	fields := map[string]bool{}
	for i, c := range d.Columns {
		path := fmt.Sprintf("columns[%d]", i)
		switch {
		case c.Field == "":
			fail(path+".field", "is required", nil)
		case fields[c.Field]:
			fail(path+".field", "is duplicated", c.Field)
		}
		fields[c.Field] = true
		if c.Type != "" && !knownTypes[c.Type] {
			fail(path+".type", "is not a known column type", c.Type)
		}
		if c.Type == string(columns.TypeActions) {
			fail(path+".type", "actions columns cannot be declared in a document", c.Type)
		}
		if c.Width < 0 || c.MinWidth < 0 || c.MaxWidth < 0 || c.Flex < 0 {
			fail(path, "widths and flex must not be negative", nil)
		}
		if c.MaxWidth > 0 && c.MinWidth > c.MaxWidth {
			fail(path+".min_width", "exceeds max_width", c.MinWidth)
		}
		switch columns.Align(c.Align) {
		case "", columns.AlignLeft, columns.AlignRight, columns.AlignCenter:
		default:
			fail(path+".align", "must be left, right or center", c.Align)
		}
	}

	known := func(field string) bool { return len(d.Columns) == 0 || fields[field] }
	for i, f := range g.Grouping.Model {
		if !known(f) {
			fail(fmt.Sprintf("grid.grouping.model[%d]", i), "names no column", f)
		}
	}
	for i, s := range g.Sort {
		path := fmt.Sprintf("grid.sort[%d]", i)
		if !known(s.Field) || s.Field == "" {
			fail(path+".field", "names no column", s.Field)
		}
		if s.Sort != "asc" && s.Sort != "desc" {
			fail(path+".sort", `must be "asc" or "desc"`, s.Sort)
		}
	}
	for i, it := range g.Filter.Items {
		path := fmt.Sprintf("grid.filter.items[%d]", i)
		if it.Field == "" || !known(it.Field) {
			fail(path+".field", "names no column", it.Field)
		}
		if it.Operator == "" {
			fail(path+".operator", "is required", nil)
		}
	}

	if d.Script.Timeout != "" {
		if _, err := time.ParseDuration(d.Script.Timeout); err != nil {
			fail("script.timeout", "must be a duration", d.Script.Timeout)
		}
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(d.Logging.Level)); err != nil {
		fail("logging.level", "must be debug, info, warn or error", d.Logging.Level)
	}

	return errors.Join(errs...)
}
