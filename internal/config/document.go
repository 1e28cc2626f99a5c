package config

// Document is a parsed grid document.
type Document struct {
	Grid     GridSection     `toml:"grid" yaml:"grid"`
	Columns  []ColumnSection `toml:"columns" yaml:"columns"`
	Source   SourceSection   `toml:"source" yaml:"source"`
	Script   ScriptSection   `toml:"script" yaml:"script"`
	Snapshot SnapshotSection `toml:"snapshot" yaml:"snapshot"`
	Logging  LoggingSection  `toml:"logging" yaml:"logging"`

	// Path is the file the document was loaded from, if any.
	Path string `toml:"-" yaml:"-"`
}

// GridSection holds engine settings and initial models.
type GridSection struct {
	// Signature is "pro" or "datagrid".
	Signature    string          `toml:"signature" yaml:"signature"`
	ThrottleRows string          `toml:"throttle_rows" yaml:"throttle_rows"`
	RowCount     int             `toml:"row_count" yaml:"row_count"`
	PageSize     int             `toml:"page_size" yaml:"page_size"`
	RowHeight    float64         `toml:"row_height" yaml:"row_height"`
	Grouping     GroupingSection `toml:"grouping" yaml:"grouping"`
	Sort         []SortSection   `toml:"sort" yaml:"sort"`
	Filter       FilterSection   `toml:"filter" yaml:"filter"`
	Visibility   map[string]bool `toml:"column_visibility" yaml:"column_visibility"`
}

// GroupingSection configures row grouping.
type GroupingSection struct {
	Model                 []string `toml:"model" yaml:"model"`
	Mode                  string   `toml:"mode" yaml:"mode"`
	DefaultExpansionDepth int      `toml:"default_expansion_depth" yaml:"default_expansion_depth"`
	Disabled              bool     `toml:"disabled" yaml:"disabled"`
}

// SortSection is one sort model item.
type SortSection struct {
	Field string `toml:"field" yaml:"field"`
	Sort  string `toml:"sort" yaml:"sort"`
}

// FilterSection is the initial filter model.
type FilterSection struct {
	LinkOperator string              `toml:"link_operator" yaml:"link_operator"`
	Items        []FilterItemSection `toml:"items" yaml:"items"`
}

// FilterItemSection is one filter condition.
type FilterItemSection struct {
	ID       int    `toml:"id" yaml:"id"`
	Field    string `toml:"field" yaml:"field"`
	Operator string `toml:"operator" yaml:"operator"`
	Value    any    `toml:"value" yaml:"value"`
}

// ColumnSection describes a column.
type ColumnSection struct {
	Field        string       `toml:"field" yaml:"field"`
	HeaderName   string       `toml:"header_name" yaml:"header_name"`
	Description  string       `toml:"description" yaml:"description"`
	Type         string       `toml:"type" yaml:"type"`
	Width        float64      `toml:"width" yaml:"width"`
	MinWidth     float64      `toml:"min_width" yaml:"min_width"`
	MaxWidth     float64      `toml:"max_width" yaml:"max_width"`
	Flex         float64      `toml:"flex" yaml:"flex"`
	Hide         bool         `toml:"hide" yaml:"hide"`
	Editable     bool         `toml:"editable" yaml:"editable"`
	Sortable     *bool        `toml:"sortable" yaml:"sortable"`
	Filterable   *bool        `toml:"filterable" yaml:"filterable"`
	Groupable    *bool        `toml:"groupable" yaml:"groupable"`
	Resizable    *bool        `toml:"resizable" yaml:"resizable"`
	Hideable     *bool        `toml:"hideable" yaml:"hideable"`
	Align        string       `toml:"align" yaml:"align"`
	ValueOptions []any        `toml:"value_options" yaml:"value_options"`
	Hooks        HooksSection `toml:"hooks" yaml:"hooks"`
}

// HooksSection names the Lua functions of a column.
type HooksSection struct {
	ValueGetter         string `toml:"value_getter" yaml:"value_getter"`
	GroupingValueGetter string `toml:"grouping_value_getter" yaml:"grouping_value_getter"`
	Comparator          string `toml:"comparator" yaml:"comparator"`
	FilterOperator      string `toml:"filter_operator" yaml:"filter_operator"`
	Validator           string `toml:"validator" yaml:"validator"`
}

// IsZero reports whether no hook is named.
func (h HooksSection) IsZero() bool { return h == HooksSection{} }

// SourceSection locates the rows.
type SourceSection struct {
	Path    string `toml:"path" yaml:"path"`
	Query   string `toml:"query" yaml:"query"`
	IDField string `toml:"id_field" yaml:"id_field"`
}

// ScriptSection locates the Lua hooks script.
type ScriptSection struct {
	Path    string `toml:"path" yaml:"path"`
	Timeout string `toml:"timeout" yaml:"timeout"`
}

// SnapshotSection locates the snapshot database.
type SnapshotSection struct {
	Path string `toml:"path" yaml:"path"`
	Key  string `toml:"key" yaml:"key"`
}

// LoggingSection configures the CLI logger.
type LoggingSection struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns a document holding the default settings.
func Default() *Document {
	return &Document{
		Grid: GridSection{
			Signature: "pro",
			PageSize:  100,
			RowHeight: 52,
			Grouping:  GroupingSection{Mode: "single"},
			Filter:    FilterSection{LinkOperator: "and"},
		},
		Logging: LoggingSection{Level: "info"},
	}
}
