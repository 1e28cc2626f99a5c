package grid

import (
	"log/slog"
	"time"

	"github.com/m4theushw/material-ui-x/internal/clock"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/editing"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/resize"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
)

// Default configuration values.
const (
	DefaultRowHeight = 52
	DefaultPageSize  = 100
)

// Option configures a Grid during creation.
type Option func(*options)

type options struct {
	id        string
	signature rows.Signature
	getRowID  rows.IDGetter
	throttle  time.Duration
	rowCount  int
	types     columns.Types
	scheduler clock.Scheduler
	logger    *slog.Logger
	busOpts   []event.BusOption

	grouping grouping.Config

	filterModel        filter.Model
	filterControlled   bool
	onFilterModel      func(filter.Model)
	sortModel          sorting.Model
	sortControlled     bool
	onSortModel        func(sorting.Model)
	groupingModel      []string
	groupingControlled bool
	onGroupingModel    func([]string)
	visibilityModel    columns.VisibilityModel

	processRowUpdate editing.ProcessRowUpdate
	onRowUpdateError func(error)
	isCellEditable   func(columns.CellParams) bool

	layout     resize.Layout
	rowHeight  float64
	rowSpacing func(RowHeightParams) RowSpacing
	pageSize   int

	initialState *InitialState
}

func defaultOptions() options {
	return options{
		signature:   rows.SignaturePro,
		types:       columns.DefaultTypes(),
		scheduler:   clock.Real{},
		logger:      slog.New(slog.DiscardHandler),
		filterModel: filter.NewModel(),
		rowHeight:   DefaultRowHeight,
		pageSize:    DefaultPageSize,
	}
}

// WithID sets the instance id used as the source of every notification.
// A random id is used otherwise.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithSignature sets the host flavor. Only the pro signature accepts
// multi-row updates.
func WithSignature(s rows.Signature) Option {
	return func(o *options) {
		o.signature = s
	}
}

// WithGetRowID sets the row id getter. The "id" field is used otherwise.
func WithGetRowID(fn rows.IDGetter) Option {
	return func(o *options) {
		o.getRowID = fn
	}
}

// WithThrottleRows sets the minimum delay between two row recomputations.
func WithThrottleRows(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.throttle = d
		}
	}
}

// WithRowCount sets a floor for the total row count, for hosts that page
// rows on a server.
func WithRowCount(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.rowCount = n
		}
	}
}

// WithColumnTypes replaces the column type definitions.
func WithColumnTypes(types columns.Types) Option {
	return func(o *options) {
		if types != nil {
			o.types = types
		}
	}
}

// WithScheduler sets the time source of the throttle and debounce timers.
func WithScheduler(s clock.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLogger sets the logger. Logging is discarded otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBusOptions configures the notification bus.
func WithBusOptions(opts ...event.BusOption) Option {
	return func(o *options) {
		o.busOpts = append(o.busOpts, opts...)
	}
}

// WithRowGrouping configures the row grouping feature.
func WithRowGrouping(cfg grouping.Config) Option {
	return func(o *options) {
		o.grouping = cfg
	}
}

// WithFilterModel sets the initial filter model.
func WithFilterModel(m filter.Model) Option {
	return func(o *options) {
		o.filterModel = m
	}
}

// WithControlledFilterModel makes the host own the filter model. onChange
// receives every requested model.
func WithControlledFilterModel(m filter.Model, onChange func(filter.Model)) Option {
	return func(o *options) {
		o.filterModel = m
		o.filterControlled = true
		o.onFilterModel = onChange
	}
}

// WithSortModel sets the initial sort model.
func WithSortModel(m sorting.Model) Option {
	return func(o *options) {
		o.sortModel = m
	}
}

// WithControlledSortModel makes the host own the sort model.
func WithControlledSortModel(m sorting.Model, onChange func(sorting.Model)) Option {
	return func(o *options) {
		o.sortModel = m
		o.sortControlled = true
		o.onSortModel = onChange
	}
}

// WithRowGroupingModel sets the initial grouping model.
func WithRowGroupingModel(m []string) Option {
	return func(o *options) {
		o.groupingModel = m
	}
}

// WithControlledRowGroupingModel makes the host own the grouping model.
func WithControlledRowGroupingModel(m []string, onChange func([]string)) Option {
	return func(o *options) {
		o.groupingModel = m
		o.groupingControlled = true
		o.onGroupingModel = onChange
	}
}

// WithColumnVisibilityModel sets the initial visibility model. Without it
// the deprecated Hide flags of the columns seed the model.
func WithColumnVisibilityModel(m columns.VisibilityModel) Option {
	return func(o *options) {
		o.visibilityModel = m
	}
}

// WithProcessRowUpdate sets the hook that may transform or reject an edited
// row before it is committed. onError receives rejections.
func WithProcessRowUpdate(fn editing.ProcessRowUpdate, onError func(error)) Option {
	return func(o *options) {
		o.processRowUpdate = fn
		o.onRowUpdateError = onError
	}
}

// WithIsCellEditable adds a per-cell check on top of the Editable flag.
func WithIsCellEditable(fn func(columns.CellParams) bool) Option {
	return func(o *options) {
		o.isCellEditable = fn
	}
}

// WithLayout sets the live layout the column resize gesture writes to.
func WithLayout(l resize.Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithRowHeight sets the content height of every row.
func WithRowHeight(h float64) Option {
	return func(o *options) {
		if h > 0 {
			o.rowHeight = h
		}
	}
}

// WithRowSpacing registers a rowHeight processor adding margins around
// rows.
func WithRowSpacing(fn func(RowHeightParams) RowSpacing) Option {
	return func(o *options) {
		o.rowSpacing = fn
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithInitialState restores an exported state once the grid is built.
func WithInitialState(s InitialState) Option {
	return func(o *options) {
		o.initialState = &s
	}
}
