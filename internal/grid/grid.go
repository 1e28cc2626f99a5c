package grid

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/m4theushw/material-ui-x/internal/clock"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/editing"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/pipeline"
	"github.com/m4theushw/material-ui-x/internal/resize"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/sorting"
	"github.com/m4theushw/material-ui-x/internal/store"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

// Grid is one data grid instance. It is safe for concurrent use.
type Grid struct {
	mu sync.Mutex

	opts   options
	id     string
	logger *slog.Logger

	store    *store.Store
	bus      *event.Bus
	pipe     *pipeline.Pipeline
	sched    clock.Scheduler
	registry *rows.Registry
	grouping *grouping.Feature
	editing  *editing.Controller
	resize   *resize.Controller
	sel      *selectors

	// outbox holds notifications raised under the lock.
	outbox      []func()
	needsRender bool

	liveWidths        map[string]float64
	restoredExpansion map[string]bool
	rebuilds          int
	unregister        []func()
	closed            bool
}

// New creates a grid over the given column definitions.
func New(defs []*columns.ColDef, opts ...Option) (*Grid, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}

	g := &Grid{
		opts:   o,
		id:     o.id,
		logger: o.logger.With("grid", o.id),
		bus:    event.NewBus(append([]event.BusOption{event.WithLogger(o.logger)}, o.busOpts...)...),
		sel:    newSelectors(),

		liveWidths: map[string]float64{},
	}
	g.sched = clock.Wrap(o.scheduler, func(f func()) {
		g.lock()
		defer g.unlock()
		if !g.closed {
			f()
		}
	})
	g.store = store.New(store.State{
		Filter:      filter.State{Model: o.filterModel},
		Sorting:     store.SortingState{Model: o.sortModel},
		RowGrouping: store.RowGroupingState{Model: o.groupingModel},
		Pagination:  store.PaginationState{PageSize: o.pageSize},
	})

	g.pipe = pipeline.New(g.logger.With("component", "pipeline"))
	g.registerNoneStrategy()

	gcfg := o.grouping
	gcfg.Types = o.types
	gcfg.Logger = g.logger
	gcfg.Expansion = g.restorableExpansion(gcfg.Expansion)
	g.grouping = grouping.New(gcfg,
		func() []string { return g.store.Get().RowGrouping.Model },
		func() *columns.State { return g.store.Get().Columns },
	)
	g.unregister = append(g.unregister, g.grouping.Register(g.pipe))
	if o.rowSpacing != nil {
		g.unregister = append(g.unregister, pipeline.Register(g.pipe, pipeline.GroupRowHeight, "rowSpacing",
			func(h RowHeightEntry, p RowHeightParams) RowHeightEntry {
				h.Spacing = o.rowSpacing(p)
				return h
			}))
	}

	raw, err := columns.NewState(defs, o.types, o.visibilityModel)
	if err != nil {
		return nil, err
	}
	g.setColumnsState(g.hydrateColumns(raw))
	g.grouping.Sync()
	g.pipe.UpdateActiveStrategy()

	g.registry = rows.NewRegistry(rows.RegistryConfig{
		GetRowID:  o.getRowID,
		Signature: o.signature,
		Throttle:  o.throttle,
		Scheduler: g.sched,
		Logger:    g.logger.With("component", "rows"),
		OnChange:  func(*rows.Cache) { g.regenerateRows() },
	})
	g.regenerateRows()

	g.editing = editing.New(editHost{g}, editing.Config{
		ProcessRowUpdate:        o.processRowUpdate,
		OnProcessRowUpdateError: o.onRowUpdateError,
		Scheduler:               g.sched,
		Source:                  g.id,
		Logger:                  g.logger,
	})
	var layout resize.Layout = metaLayout{g}
	if o.layout != nil {
		layout = o.layout
	}
	g.resize = resize.New(resizeHost{g}, layout, resize.Config{
		Scheduler: g.sched,
		Source:    g.id,
		Logger:    g.logger,
	})

	if o.initialState != nil {
		if err := g.restoreState(*o.initialState); err != nil {
			return nil, err
		}
	}

	// Nothing can listen yet.
	g.outbox = nil
	g.needsRender = false
	g.logger.Debug("grid created", "columns", len(defs), "strategy", g.pipe.ActiveStrategy())
	return g, nil
}

func (g *Grid) registerNoneStrategy() {
	g.pipe.RegisterStrategy(pipeline.StrategyNone, pipeline.ProcessorRowTreeCreation, tree.CreateFlat)
	g.pipe.RegisterStrategy(pipeline.StrategyNone, pipeline.ProcessorFiltering, func(p filter.Params) tree.Lookups {
		return filter.Flat(p.Tree, p.Applier)
	})
	g.pipe.RegisterStrategy(pipeline.StrategyNone, pipeline.ProcessorSorting, func(p sorting.Params) []rows.ID {
		return sorting.Flat(p.Tree, p.SortList)
	})
}

// restorableExpansion lets restored expansion win over the default policy
// for groups created after a restore.
func (g *Grid) restorableExpansion(exp grouping.Expansion) grouping.Expansion {
	byDefault := exp.IsExpandedByDefault
	depth := exp.DefaultDepth
	exp.IsExpandedByDefault = func(n *tree.Node) bool {
		if v, ok := g.restoredExpansion[rows.IDString(n.ID)]; ok {
			return v
		}
		if byDefault != nil {
			return byDefault(n)
		}
		return depth == -1 || depth > n.Depth
	}
	return exp
}

// ID returns the instance id.
func (g *Grid) ID() string { return g.id }

func (g *Grid) lock() { g.mu.Lock() }

// unlock releases the lock, then publishes the queued notifications.
func (g *Grid) unlock() {
	out := g.outbox
	render := g.needsRender
	g.outbox = nil
	g.needsRender = false
	g.mu.Unlock()

	for _, fn := range out {
		fn()
	}
	if render {
		g.store.ForceUpdate()
	}
}

// await runs fn with the lock released.
func (g *Grid) await(fn func()) {
	g.unlock()
	defer g.lock()
	fn()
}

func (g *Grid) publish(ev event.TopicProvider) {
	g.outbox = append(g.outbox, func() {
		if err := g.bus.Publish(context.Background(), ev); err != nil {
			g.logger.Warn("notification dropped", "topic", ev.EventTopic(), "error", err)
		}
	})
}

// notify queues a host callback.
func (g *Grid) notify(fn func()) {
	g.outbox = append(g.outbox, fn)
}

func (g *Grid) render() { g.needsRender = true }

// Subscribe registers fn for the notifications matching pattern.
func (g *Grid) Subscribe(pattern event.Topic, fn func(ctx context.Context, ev any) error, opts ...event.SubscriptionOption) (*event.Subscription, error) {
	return g.bus.SubscribeFunc(pattern, fn, opts...)
}

// Bus returns the notification bus.
func (g *Grid) Bus() *event.Bus { return g.bus }

// OnRender registers fn to run every time the host should re-render.
// It returns the cancel func.
func (g *Grid) OnRender(fn func(*store.State)) func() {
	return g.store.Subscribe(fn)
}

// State returns the current state. It must not be modified.
func (g *Grid) State() *store.State {
	g.lock()
	defer g.unlock()
	return g.store.Get()
}

// Rebuilds returns how many times the row tree was regenerated.
func (g *Grid) Rebuilds() int {
	g.lock()
	defer g.unlock()
	return g.rebuilds
}

// Close cancels pending timers and detaches the features. Writes after
// Close return ErrClosed.
func (g *Grid) Close() {
	g.lock()
	defer g.unlock()
	if g.closed {
		return
	}
	g.closed = true
	g.registry.Stop()
	g.resize.Close()
	for _, fn := range g.unregister {
		fn()
	}
	g.unregister = nil
	g.logger.Debug("grid closed")
}
