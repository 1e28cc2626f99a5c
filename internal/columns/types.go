package columns

import (
	"math"
	"strings"
)

// Default sizes of a string column, inherited by every type.
const (
	DefaultWidth    = 100
	DefaultMinWidth = 50
)

// ActionsField is the conventional field of an actions column.
const ActionsField = "actions"

// TypeDef holds the defaults of a column type.
type TypeDef struct {
	Width           float64
	MinWidth        float64
	MaxWidth        float64
	Align           Align
	HeaderAlign     Align
	Sortable        bool
	Filterable      bool
	Resizable       bool
	Groupable       bool
	Hideable        bool
	Comparator      Comparator
	FilterOperators func() []FilterOperator
	ValueParser     ValueParser
}

func stringTypeDef() TypeDef {
	return TypeDef{
		Width:           DefaultWidth,
		MinWidth:        DefaultMinWidth,
		MaxWidth:        math.Inf(1),
		Align:           AlignLeft,
		Sortable:        true,
		Filterable:      true,
		Resizable:       true,
		Groupable:       true,
		Hideable:        true,
		Comparator:      StringNumberComparer,
		FilterOperators: StringOperators,
	}
}

// Types maps a column type to its defaults.
type Types map[Type]TypeDef

// DefaultTypes returns the built-in column types.
func DefaultTypes() Types {
	number := stringTypeDef()
	number.Align, number.HeaderAlign = AlignRight, AlignRight
	number.Comparator = NumberComparer
	number.FilterOperators = NumericOperators
	number.ValueParser = func(v any, _ CellParams) any {
		if f, ok := ToFloat(v); ok {
			return f
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			return nil
		}
		return v
	}

	date := stringTypeDef()
	date.Comparator = DateComparer
	date.FilterOperators = func() []FilterOperator { return DateOperators(false) }

	dateTime := date
	dateTime.FilterOperators = func() []FilterOperator { return DateOperators(true) }

	boolean := stringTypeDef()
	boolean.Align, boolean.HeaderAlign = AlignCenter, AlignCenter
	boolean.Comparator = BooleanComparer
	boolean.FilterOperators = BooleanOperators

	singleSelect := stringTypeDef()
	singleSelect.FilterOperators = SingleSelectOperators

	actions := stringTypeDef()
	actions.Align, actions.HeaderAlign = AlignRight, AlignRight
	actions.Sortable, actions.Filterable, actions.Groupable = false, false, false
	actions.FilterOperators = func() []FilterOperator { return nil }

	return Types{
		TypeString:       stringTypeDef(),
		TypeNumber:       number,
		TypeDate:         date,
		TypeDateTime:     dateTime,
		TypeBoolean:      boolean,
		TypeSingleSelect: singleSelect,
		TypeActions:      actions,
	}
}

// Apply returns a copy of def with every unset property taken from its type.
func (ts Types) Apply(def *ColDef) (*ColDef, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	c := def.Clone()
	if c.Type == "" {
		c.Type = TypeString
	}
	td, ok := ts[c.Type]
	if !ok {
		return nil, &FieldError{Field: c.Field, Err: ErrUnknownType}
	}

	if c.Width <= 0 {
		c.Width = td.Width
	}
	if c.MinWidth <= 0 {
		c.MinWidth = td.MinWidth
	}
	if c.MaxWidth <= 0 {
		c.MaxWidth = td.MaxWidth
	}
	if c.Align == "" {
		c.Align = td.Align
	}
	if c.HeaderAlign == "" {
		c.HeaderAlign = td.HeaderAlign
	}
	setDefault(&c.Sortable, td.Sortable)
	setDefault(&c.Filterable, td.Filterable)
	setDefault(&c.Resizable, td.Resizable)
	setDefault(&c.Groupable, td.Groupable)
	setDefault(&c.Hideable, td.Hideable)
	if c.SortComparator == nil {
		c.SortComparator = td.Comparator
	}
	if c.FilterOperators == nil && td.FilterOperators != nil {
		c.FilterOperators = td.FilterOperators()
	}
	if c.ValueParser == nil {
		c.ValueParser = td.ValueParser
	}
	if c.HeaderName == "" {
		c.HeaderName = c.Field
	}
	c.ComputedWidth = c.ClampWidth(c.Width)
	return c, nil
}

func setDefault(p **bool, v bool) {
	if *p == nil {
		*p = Bool(v)
	}
}
