package columns

import (
	"math"
)

// VisibilityModel maps a field to its visibility. Absent fields are visible.
type VisibilityModel map[string]bool

// IsVisible reports whether field is visible under m.
func (m VisibilityModel) IsVisible(field string) bool {
	v, ok := m[field]
	return !ok || v
}

// State is the hydrated column registry. It is immutable; writers build a
// new State with Clone.
type State struct {
	All             []string
	Lookup          map[string]*ColDef
	VisibilityModel VisibilityModel
}

// NewState hydrates defs with the given types. When model is nil, the
// deprecated Hide flag seeds the visibility model.
func NewState(defs []*ColDef, types Types, model VisibilityModel) (*State, error) {
	s := &State{
		All:    make([]string, 0, len(defs)),
		Lookup: make(map[string]*ColDef, len(defs)),
	}
	for _, def := range defs {
		if _, dup := s.Lookup[def.Field]; dup {
			return nil, &FieldError{Field: def.Field, Err: ErrDuplicateField}
		}
		c, err := types.Apply(def)
		if err != nil {
			return nil, err
		}
		s.All = append(s.All, c.Field)
		s.Lookup[c.Field] = c
	}

	if model == nil {
		model = VisibilityModel{}
		for _, f := range s.All {
			if s.Lookup[f].Hide {
				model[f] = false
			}
		}
	}
	s.VisibilityModel = model
	return s, nil
}

// Clone returns a shallow copy whose slices and maps can be modified.
func (s *State) Clone() *State {
	out := &State{
		All:             append([]string(nil), s.All...),
		Lookup:          make(map[string]*ColDef, len(s.Lookup)),
		VisibilityModel: make(VisibilityModel, len(s.VisibilityModel)),
	}
	for k, v := range s.Lookup {
		out.Lookup[k] = v
	}
	for k, v := range s.VisibilityModel {
		out.VisibilityModel[k] = v
	}
	return out
}

// Column returns the column with the given field.
func (s *State) Column(field string) (*ColDef, error) {
	if s != nil {
		if c, ok := s.Lookup[field]; ok {
			return c, nil
		}
	}
	return nil, &FieldError{Field: field, Err: ErrColumnNotFound}
}

// Columns returns every column in order, hidden ones included.
func (s *State) Columns() []*ColDef {
	if s == nil {
		return nil
	}
	out := make([]*ColDef, 0, len(s.All))
	for _, f := range s.All {
		if c, ok := s.Lookup[f]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Upsert replaces columns with matching fields and appends new ones.
// Type defaults are applied to each given definition.
func (s *State) Upsert(defs []*ColDef, types Types) (*State, error) {
	out := s.Clone()
	for _, def := range defs {
		c, err := types.Apply(def)
		if err != nil {
			return nil, err
		}
		if _, ok := out.Lookup[c.Field]; !ok {
			out.All = append(out.All, c.Field)
		}
		out.Lookup[c.Field] = c
	}
	return out, nil
}

// Visible filters cols by the visibility model.
func Visible(cols []*ColDef, model VisibilityModel) []*ColDef {
	out := make([]*ColDef, 0, len(cols))
	for _, c := range cols {
		if model.IsVisible(c.Field) {
			out = append(out, c)
		}
	}
	return out
}

// Meta is the horizontal layout of the visible columns.
type Meta struct {
	Positions  []float64
	TotalWidth float64
}

// ComputeMeta returns the left offset of each column and their total width.
func ComputeMeta(visible []*ColDef) Meta {
	m := Meta{Positions: make([]float64, len(visible))}
	for i, c := range visible {
		m.Positions[i] = m.TotalWidth
		m.TotalWidth += c.ComputedWidth
	}
	return m
}

// ComputeWidths returns a copy of s where each visible column has its
// computed width: fixed columns are clamped to their bounds and flex columns
// share the remaining viewport space in proportion to their flex.
// A viewport width of zero leaves flex columns at their clamped width.
func ComputeWidths(s *State, viewport float64) *State {
	out := s.Clone()
	var flexCols []*ColDef
	used := 0.0
	for _, f := range out.All {
		c := out.Lookup[f].Clone()
		out.Lookup[f] = c
		c.ComputedWidth = c.ClampWidth(c.Width)
		if !out.VisibilityModel.IsVisible(f) {
			continue
		}
		if c.Flex > 0 {
			flexCols = append(flexCols, c)
			continue
		}
		used += c.ComputedWidth
	}
	if len(flexCols) > 0 && viewport > 0 {
		distributeFlex(flexCols, math.Max(viewport-used, 0))
	}
	return out
}

// distributeFlex assigns widths to flex columns, freezing any column whose
// share violates its bounds and redistributing the rest.
func distributeFlex(cols []*ColDef, free float64) {
	frozen := make(map[*ColDef]bool, len(cols))
	for {
		units := 0.0
		space := free
		for _, c := range cols {
			if frozen[c] {
				space -= c.ComputedWidth
				continue
			}
			units += c.Flex
		}
		if units == 0 {
			return
		}
		perUnit := math.Max(space, 0) / units

		violated := false
		for _, c := range cols {
			if frozen[c] {
				continue
			}
			w := perUnit * c.Flex
			clamped := c.ClampWidth(w)
			c.ComputedWidth = w
			if clamped != w {
				c.ComputedWidth = clamped
				frozen[c] = true
				violated = true
			}
		}
		if !violated {
			return
		}
	}
}
