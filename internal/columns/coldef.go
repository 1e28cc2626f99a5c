package columns

import (
	"context"
	"math"

	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// Type names a column type.
type Type string

const (
	TypeString       Type = "string"
	TypeNumber       Type = "number"
	TypeDate         Type = "date"
	TypeDateTime     Type = "dateTime"
	TypeBoolean      Type = "boolean"
	TypeSingleSelect Type = "singleSelect"
	TypeActions      Type = "actions"
)

// Align is the horizontal alignment of cells.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// CellParams identifies a cell for hooks.
type CellParams struct {
	ID    rows.ID
	Field string
	Row   rows.Row
	Node  *tree.Node
	Value any
}

// EditCellProps is the staged state of a cell in edit mode.
type EditCellProps struct {
	Value             any
	Error             bool
	IsProcessingProps bool
}

// PreProcessParams is passed to PreProcessEditCellProps.
type PreProcessParams struct {
	ID    rows.ID
	Row   rows.Row
	Props EditCellProps

	// HasChanged reports whether the new value differs from the staged one.
	HasChanged bool
}

type (
	// ValueGetter derives a cell value from its row.
	ValueGetter func(CellParams) any

	// ValueSetter returns a copy of row holding value.
	ValueSetter func(value any, row rows.Row) (rows.Row, error)

	// ValueParser converts raw input into a cell value.
	ValueParser func(value any, p CellParams) any

	// ValueFormatter renders a value as text.
	ValueFormatter func(value any, p CellParams) string

	// Comparator orders two cell values; negative means v1 first.
	Comparator func(v1, v2 any, p1, p2 CellParams) int

	// PreProcessEditCellProps validates or rewrites staged props. It may
	// block; the grid calls it without holding its lock.
	PreProcessEditCellProps func(ctx context.Context, p PreProcessParams) (EditCellProps, error)
)

// Action is an entry of an actions column.
type Action struct {
	Label      string
	ShowInMenu bool
	OnClick    func()
}

// ColDef describes a column. Nil flag pointers take the type default.
type ColDef struct {
	Field       string
	HeaderName  string
	Description string
	Type        Type

	Width         float64
	MinWidth      float64
	MaxWidth      float64
	Flex          float64
	ComputedWidth float64

	// Hide is deprecated; it seeds the visibility model when none is given.
	Hide bool

	Editable   bool
	Sortable   *bool
	Filterable *bool
	Groupable  *bool
	Resizable  *bool
	Hideable   *bool
	Pinnable   *bool

	Align       Align
	HeaderAlign Align

	ValueGetter             ValueGetter
	ValueSetter             ValueSetter
	ValueParser             ValueParser
	ValueFormatter          ValueFormatter
	GroupingValueGetter     ValueGetter
	SortComparator          Comparator
	FilterOperators         []FilterOperator
	PreProcessEditCellProps PreProcessEditCellProps
	GetActions              func(p CellParams) []Action

	// ValueOptions lists the choices of a singleSelect column.
	ValueOptions []any
}

// Bool returns a pointer to v, for the optional flags of ColDef.
func Bool(v bool) *bool { return &v }

func flag(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// IsSortable reports the sortable flag, true by default.
func (c *ColDef) IsSortable() bool { return flag(c.Sortable, true) }

// IsFilterable reports the filterable flag, true by default.
func (c *ColDef) IsFilterable() bool { return flag(c.Filterable, true) }

// IsGroupable reports the groupable flag, true by default.
func (c *ColDef) IsGroupable() bool { return flag(c.Groupable, true) }

// IsResizable reports the resizable flag, true by default.
func (c *ColDef) IsResizable() bool { return flag(c.Resizable, true) }

// IsHideable reports the hideable flag, true by default.
func (c *ColDef) IsHideable() bool { return flag(c.Hideable, true) }

// Value returns the cell value of p.Row for this column.
func (c *ColDef) Value(p CellParams) any {
	p.Field = c.Field
	if c.ValueGetter != nil {
		return c.ValueGetter(p)
	}
	if p.Row == nil {
		return nil
	}
	return p.Row[c.Field]
}

// Format renders a value with the column formatter.
func (c *ColDef) Format(value any, p CellParams) string {
	if c.ValueFormatter != nil {
		return c.ValueFormatter(value, p)
	}
	return FormatValue(value)
}

// Operator returns the filter operator with the given value.
func (c *ColDef) Operator(value string) (FilterOperator, bool) {
	for _, op := range c.FilterOperators {
		if op.Value == value {
			return op, true
		}
	}
	return FilterOperator{}, false
}

// ClampWidth bounds w to the column's min and max widths.
func (c *ColDef) ClampWidth(w float64) float64 {
	hi := c.MaxWidth
	if hi <= 0 {
		hi = math.Inf(1)
	}
	return math.Min(math.Max(w, c.MinWidth), hi)
}

// Clone returns a copy that can be modified without touching c.
func (c *ColDef) Clone() *ColDef {
	cp := *c
	if c.FilterOperators != nil {
		cp.FilterOperators = append([]FilterOperator(nil), c.FilterOperators...)
	}
	if c.ValueOptions != nil {
		cp.ValueOptions = append([]any(nil), c.ValueOptions...)
	}
	return &cp
}

// Validate checks the capability tags of a definition.
func (c *ColDef) Validate() error {
	if c.Field == "" {
		return ErrEmptyField
	}
	if c.Type == TypeActions && c.GetActions == nil {
		return &FieldError{Field: c.Field, Err: ErrMissingActions}
	}
	return nil
}
