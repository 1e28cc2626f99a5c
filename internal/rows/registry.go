package rows

import (
	"log/slog"
	"time"

	"github.com/m4theushw/material-ui-x/internal/clock"
)

// Signature identifies the host flavor. Only SignaturePro accepts
// multi-row partial updates.
type Signature int

const (
	SignatureDataGrid Signature = iota
	SignaturePro
)

// String returns the signature name.
func (s Signature) String() string {
	if s == SignaturePro {
		return "DataGridPro"
	}
	return "DataGrid"
}

// RegistryConfig configures a Registry.
type RegistryConfig struct {
	GetRowID  IDGetter
	Signature Signature

	// Throttle is the minimum delay between two recomputations.
	Throttle time.Duration

	Scheduler clock.Scheduler
	Logger    *slog.Logger

	// OnChange receives the cache each time a recomputation runs.
	OnChange func(*Cache)
}

// Registry owns the raw row cache and schedules recomputation.
//
// Writes update the cache synchronously. Throttled writes coalesce into one
// pending recomputation that reads the latest cache. Registry is not safe for
// concurrent use; the grid serializes calls and timer callbacks.
type Registry struct {
	cfg    RegistryConfig
	cache  *Cache
	timer  clock.Timer
	last   time.Time
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Scheduler == nil {
		cfg.Scheduler = clock.Real{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		cfg:    cfg,
		cache:  &Cache{IDToRow: map[ID]Row{}},
		last:   cfg.Scheduler.Now(),
		logger: logger,
	}
}

// Cache returns the latest raw cache, including writes whose recomputation
// is still pending.
func (r *Registry) Cache() *Cache { return r.cache }

// Pending reports whether a throttled recomputation is scheduled.
func (r *Registry) Pending() bool { return r.timer != nil }

// SetRows replaces every row.
func (r *Registry) SetRows(input []Row) error {
	c, err := ConvertRows(input, r.cfg.GetRowID)
	if err != nil {
		return err
	}
	r.logger.Debug("rows set", "count", c.Len())
	r.change(c, true)
	return nil
}

// UpdateRows merges partial updates into the current rows.
func (r *Registry) UpdateRows(updates []Row) error {
	if r.cfg.Signature == SignatureDataGrid && len(updates) > 1 {
		return ErrBatchUpdateNotAllowed
	}
	c, err := MergeUpdates(r.cache, updates, r.cfg.GetRowID)
	if err != nil {
		return err
	}
	r.logger.Debug("rows updated", "updates", len(updates), "count", c.Len())
	r.change(c, true)
	return nil
}

// Replace installs a cache and recomputes immediately.
func (r *Registry) Replace(c *Cache) {
	r.change(c, false)
}

// Flush cancels any pending timer and recomputes now.
// It is a no-op when nothing is pending.
func (r *Registry) Flush() {
	if r.timer == nil {
		return
	}
	r.change(r.cache, false)
}

// SetThrottle changes the throttle delay for subsequent writes.
func (r *Registry) SetThrottle(d time.Duration) { r.cfg.Throttle = d }

// SetGetRowID changes the id getter used by subsequent writes.
func (r *Registry) SetGetRowID(g IDGetter) { r.cfg.GetRowID = g }

// Stop cancels a pending recomputation without running it.
func (r *Registry) Stop() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Registry) change(c *Cache, throttle bool) {
	r.Stop()
	r.cache = c

	if !throttle {
		r.run()
		return
	}

	remaining := r.cfg.Throttle - r.cfg.Scheduler.Now().Sub(r.last)
	if remaining > 0 {
		var t clock.Timer
		t = r.cfg.Scheduler.AfterFunc(remaining, func() {
			// Superseded by a later write or a flush.
			if r.timer != t {
				return
			}
			r.run()
		})
		r.timer = t
		return
	}
	r.run()
}

func (r *Registry) run() {
	r.timer = nil
	r.last = r.cfg.Scheduler.Now()
	if r.cfg.OnChange != nil {
		r.cfg.OnChange(r.cache)
	}
}
