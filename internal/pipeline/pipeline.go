package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/m4theushw/material-ui-x/internal/selector"
)

// Group names an ordered processor group.
type Group string

const (
	GroupHydrateColumns Group = "hydrateColumns"
	GroupColumnMenu     Group = "columnMenu"
	GroupRowHeight      Group = "rowHeight"
)

// StrategyProcessor names a processor that only the active strategy runs.
type StrategyProcessor string

const (
	ProcessorRowTreeCreation StrategyProcessor = "rowTreeCreation"
	ProcessorFiltering       StrategyProcessor = "filtering"
	ProcessorSorting         StrategyProcessor = "sorting"
)

// StrategyNone is the fallback strategy, always available.
const StrategyNone = "none"

type processor struct {
	name string
	fn   func(value, params any) any

	valid      bool
	lastValue  any
	lastParams any
	lastOut    any
}

func (p *processor) run(value, params any) any {
	if p.valid && selector.Identical(p.lastValue, value) && selector.Identical(p.lastParams, params) {
		return p.lastOut
	}
	out := p.fn(value, params)
	p.valid, p.lastValue, p.lastParams, p.lastOut = true, value, params, out
	return out
}

type strategy struct {
	name       string
	available  func() bool
	processors map[StrategyProcessor]any
}

// Pipeline holds processor groups and strategies. It is not safe for
// concurrent use; the grid serializes access.
type Pipeline struct {
	groups     map[Group][]*processor
	strategies []*strategy
	active     string
	versions   map[Group]uint64
	logger     *slog.Logger
}

// New creates an empty pipeline.
func New(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		groups:   map[Group][]*processor{},
		versions: map[Group]uint64{},
		active:   StrategyNone,
		logger:   logger,
	}
}

// Register adds fn to group under name. A processor with the same name is
// replaced in place. The returned func unregisters it.
func Register[T, P any](p *Pipeline, group Group, name string, fn func(value T, params P) T) func() {
	proc := &processor{
		name: name,
		fn: func(value, params any) any {
			v, _ := value.(T)
			pp, _ := params.(P)
			return fn(v, pp)
		},
	}
	procs := p.groups[group]
	replaced := false
	for i, existing := range procs {
		if existing.name == name {
			procs[i] = proc
			replaced = true
			break
		}
	}
	if !replaced {
		procs = append(procs, proc)
	}
	p.groups[group] = procs
	p.versions[group]++
	p.logger.Debug("processor registered", "group", group, "name", name, "replaced", replaced)

	return func() { p.unregister(group, proc) }
}

func (p *Pipeline) unregister(group Group, proc *processor) {
	procs := p.groups[group]
	for i, existing := range procs {
		if existing == proc {
			p.groups[group] = append(procs[:i:i], procs[i+1:]...)
			p.versions[group]++
			return
		}
	}
}

// Apply threads value through the processors of group in order.
func Apply[T, P any](p *Pipeline, group Group, value T, params P) T {
	var cur any = value
	for _, proc := range p.groups[group] {
		cur = proc.run(cur, params)
	}
	out, _ := cur.(T)
	return out
}

// Invalidate drops the memoized results of group. Features call it when
// state their processors read, other than the value and params, changed.
func (p *Pipeline) Invalidate(group Group) {
	for _, proc := range p.groups[group] {
		proc.valid, proc.lastValue, proc.lastParams, proc.lastOut = false, nil, nil, nil
	}
	p.versions[group]++
}

// Processors lists the processor names of group in order.
func (p *Pipeline) Processors(group Group) []string {
	names := make([]string, 0, len(p.groups[group]))
	for _, proc := range p.groups[group] {
		names = append(names, proc.name)
	}
	return names
}

// Version changes every time a processor of group is registered or removed.
func (p *Pipeline) Version(group Group) uint64 { return p.versions[group] }

func (p *Pipeline) strategy(name string) *strategy {
	for _, s := range p.strategies {
		if s.name == name {
			return s
		}
	}
	s := &strategy{name: name, processors: map[StrategyProcessor]any{}}
	p.strategies = append(p.strategies, s)
	return s
}

// RegisterStrategy registers fn as the proc processor of a strategy. fn must
// be a func(P) R matching the types ApplyStrategy is called with.
func (p *Pipeline) RegisterStrategy(name string, proc StrategyProcessor, fn any) func() {
	s := p.strategy(name)
	s.processors[proc] = fn
	return func() {
		if s.processors[proc] != nil {
			delete(s.processors, proc)
		}
	}
}

// SetStrategyAvailability sets the availability check of a strategy.
// "none" is always available.
func (p *Pipeline) SetStrategyAvailability(name string, available func() bool) {
	p.strategy(name).available = available
}

// UpdateActiveStrategy recomputes the active strategy and reports whether
// it changed.
func (p *Pipeline) UpdateActiveStrategy() (string, bool) {
	next := StrategyNone
	for _, s := range p.strategies {
		if s.name == StrategyNone {
			continue
		}
		if s.available != nil && s.available() {
			next = s.name
			break
		}
	}
	if next == p.active {
		return next, false
	}
	p.logger.Debug("active strategy changed", "from", p.active, "to", next)
	p.active = next
	return next, true
}

// ActiveStrategy returns the current strategy name.
func (p *Pipeline) ActiveStrategy() string { return p.active }

// ApplyStrategy runs the proc processor of the active strategy, falling back
// to "none" when the active strategy did not register it.
func ApplyStrategy[P, R any](p *Pipeline, proc StrategyProcessor, params P) (R, error) {
	var zero R
	fn := p.lookupStrategy(p.active, proc)
	if fn == nil {
		fn = p.lookupStrategy(StrategyNone, proc)
	}
	if fn == nil {
		return zero, fmt.Errorf("%w: %s", ErrNoStrategyProcessor, proc)
	}
	typed, ok := fn.(func(P) R)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrProcessorType, proc, fn)
	}
	return typed(params), nil
}

func (p *Pipeline) lookupStrategy(name string, proc StrategyProcessor) any {
	for _, s := range p.strategies {
		if s.name == name {
			return s.processors[proc]
		}
	}
	return nil
}
