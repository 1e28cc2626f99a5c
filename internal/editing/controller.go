package editing

import (
	"context"
	"log/slog"
	"reflect"
	"time"

	"github.com/m4theushw/material-ui-x/internal/clock"
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// FocusMove is where focus goes after an edit stops.
type FocusMove int

const (
	FocusNone FocusMove = iota
	FocusBelow
	FocusRight
	FocusLeft
)

// Host is the grid as seen by the controller.
type Host interface {
	// State returns the current grid state.
	State() *store.State

	// SetEditing replaces the editing slice of the state.
	SetEditing(fn func(store.EditingState) store.EditingState)

	// IsCellEditable reports whether the cell accepts edits.
	IsCellEditable(id rows.ID, field string) bool

	// CellParams resolves a cell and its current value.
	CellParams(id rows.ID, field string) (columns.CellParams, *columns.ColDef, error)

	// UpdateRows applies partial row updates.
	UpdateRows(updates []rows.Row) error

	// Await runs fn with the grid lock released.
	Await(fn func())

	// Publish queues a notification.
	Publish(ev event.TopicProvider)

	// SetCellFocus focuses a cell.
	SetCellFocus(id rows.ID, field string)

	// MoveFocus focuses the cell next to (id, field).
	MoveFocus(id rows.ID, field string, move FocusMove)
}

// ProcessRowUpdate may transform or reject a row before it is committed.
// It may block; it is called without the grid lock.
type ProcessRowUpdate func(ctx context.Context, newRow, oldRow rows.Row) (rows.Row, error)

// Config configures a Controller.
type Config struct {
	ProcessRowUpdate        ProcessRowUpdate
	OnProcessRowUpdateError func(error)

	// Scheduler runs debounced value changes.
	Scheduler clock.Scheduler

	// Source is set on published events.
	Source string

	Logger *slog.Logger
}

type cellKey struct {
	id    rows.ID
	field string
}

type pendingChange struct {
	timer clock.Timer
	run   func()
}

// Controller drives the editing state of every cell.
type Controller struct {
	host     Host
	cfg      Config
	sessions map[cellKey]uint64
	next     uint64
	pending  map[cellKey]*pendingChange
	logger   *slog.Logger

	// committing holds the cells whose commit waits on ProcessRowUpdate.
	// They reject further stops and value changes until it returns.
	committing map[cellKey]bool
}

// New creates a controller.
func New(host Host, cfg Config) *Controller {
	if cfg.Scheduler == nil {
		cfg.Scheduler = clock.Real{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		host:       host,
		cfg:        cfg,
		sessions:   map[cellKey]uint64{},
		pending:    map[cellKey]*pendingChange{},
		logger:     logger.With("component", "editing"),
		committing: map[cellKey]bool{},
	}
}

// SetProcessRowUpdate replaces the row update hook.
func (c *Controller) SetProcessRowUpdate(fn ProcessRowUpdate, onError func(error)) {
	c.cfg.ProcessRowUpdate = fn
	c.cfg.OnProcessRowUpdateError = onError
}

// Mode returns the mode of a cell.
func (c *Controller) Mode(id rows.ID, field string) store.CellMode {
	return c.host.State().Editing.Mode(id, field)
}

func (c *Controller) requireEditable(id rows.ID, field string) error {
	if !c.host.IsCellEditable(id, field) {
		return &CellError{ID: id, Field: field, Err: ErrNotEditable}
	}
	return nil
}

func (c *Controller) requireMode(id rows.ID, field string, mode store.CellMode) error {
	if c.Mode(id, field) != mode {
		return &CellError{ID: id, Field: field, Mode: mode, Err: ErrNotInMode}
	}
	return nil
}

// requireEditing fails unless the cell is in edit mode and not already
// committing. A committing cell counts as having left edit mode.
func (c *Controller) requireEditing(id rows.ID, field string) error {
	if err := c.requireMode(id, field, store.CellModeEdit); err != nil {
		return err
	}
	if c.committing[cellKey{id, field}] {
		return &CellError{ID: id, Field: field, Mode: store.CellModeEdit, Err: ErrNotInMode}
	}
	return nil
}

// inSession reports whether the cell is still in edit mode in the session
// that was current when an await started.
func (c *Controller) inSession(k cellKey, session uint64) bool {
	if c.Mode(k.id, k.field) != store.CellModeEdit {
		return false
	}
	return c.sessions[k] == session
}

// Start puts a view cell in edit mode with its current value staged.
func (c *Controller) Start(id rows.ID, field string, reason events.CellEditStartReason) error {
	if err := c.requireEditable(id, field); err != nil {
		return err
	}
	if err := c.requireMode(id, field, store.CellModeView); err != nil {
		return err
	}
	p, _, err := c.host.CellParams(id, field)
	if err != nil {
		return err
	}

	c.next++
	c.sessions[cellKey{id, field}] = c.next
	c.host.SetEditing(func(e store.EditingState) store.EditingState {
		return e.With(id, field, columns.EditCellProps{Value: p.Value})
	})
	c.host.SetCellFocus(id, field)

	c.logger.Debug("cell edit started", "id", id, "field", field, "reason", reason)
	c.host.Publish(event.NewEvent(events.TopicCellEditStart, events.CellEditStart{
		ID: id, Field: field, Reason: reason,
	}, c.cfg.Source))
	return nil
}

// StopParams configures Stop.
type StopParams struct {
	ID                  rows.ID
	Field               string
	IgnoreModifications bool
	FocusAfter          FocusMove
	Reason              events.CellEditStopReason
}

// Stop leaves edit mode. Unless modifications are ignored the staged value
// is committed; committed reports whether that happened. A staged value
// with an error, or still being processed, keeps the cell in edit mode.
// A rejected row update keeps the cell in edit mode and returns the error.
// While the commit waits on ProcessRowUpdate, further stops and value
// changes on the cell fail with ErrNotInMode.
func (c *Controller) Stop(ctx context.Context, p StopParams) (committed bool, err error) {
	id, field := p.ID, p.Field
	if err := c.requireEditing(id, field); err != nil {
		return false, err
	}
	if p.Reason == "" {
		p.Reason = events.StopReasonAPI
	}
	k := cellKey{id, field}

	c.RunPending(id, field)
	session, ok := c.sessions[k]
	if !ok || c.Mode(id, field) != store.CellModeEdit {
		return false, nil
	}

	if p.IgnoreModifications {
		c.finish(k, p, false)
		return false, nil
	}

	props, _ := c.host.State().Editing.Props(id, field)
	if props.Error || props.IsProcessingProps {
		c.logger.Debug("cell edit kept open", "id", id, "field", field, "error", props.Error, "processing", props.IsProcessingProps)
		return false, nil
	}

	cp, col, err := c.host.CellParams(id, field)
	if err != nil {
		return false, err
	}
	row := cp.Row
	var update rows.Row
	if col.ValueSetter != nil {
		update, err = col.ValueSetter(props.Value, row)
		if err != nil {
			return false, err
		}
	} else {
		update = rows.Merge(row, rows.Row{field: props.Value})
	}

	if hook := c.cfg.ProcessRowUpdate; hook != nil {
		var processed rows.Row
		var hookErr error
		c.committing[k] = true
		c.host.Await(func() {
			processed, hookErr = hook(ctx, update, row)
		})
		delete(c.committing, k)
		if hookErr != nil {
			c.logger.Debug("row update rejected", "id", id, "field", field, "error", hookErr)
			if c.cfg.OnProcessRowUpdateError != nil {
				c.cfg.OnProcessRowUpdateError(hookErr)
			}
			if p.FocusAfter != FocusNone {
				c.host.MoveFocus(id, field, p.FocusAfter)
			}
			return false, hookErr
		}
		if !c.inSession(k, session) {
			c.logger.Debug("row update dropped, edit session ended", "id", id, "field", field)
			return false, nil
		}
		update = processed
	}

	if err := c.host.UpdateRows([]rows.Row{update}); err != nil {
		return false, err
	}
	if c.inSession(k, session) {
		c.finish(k, p, true)
	}
	return true, nil
}

func (c *Controller) finish(k cellKey, p StopParams, committed bool) {
	c.host.SetEditing(func(e store.EditingState) store.EditingState {
		return e.Without(k.id, k.field)
	})
	delete(c.sessions, k)
	if p.FocusAfter != FocusNone {
		c.host.MoveFocus(k.id, k.field, p.FocusAfter)
	}
	c.logger.Debug("cell edit stopped", "id", k.id, "field", k.field, "reason", p.Reason, "committed", committed)
	c.host.Publish(event.NewEvent(events.TopicCellEditStop, events.CellEditStop{
		ID: k.id, Field: k.field, Reason: p.Reason, Committed: committed,
	}, c.cfg.Source))
}

// SetEditCellValue stages a new value. The column parser runs first, then
// PreProcessEditCellProps, whose result is dropped if the cell left its
// edit session meanwhile. It reports whether the staged props are valid.
func (c *Controller) SetEditCellValue(ctx context.Context, id rows.ID, field string, value any) (bool, error) {
	if err := c.requireEditable(id, field); err != nil {
		return false, err
	}
	if err := c.requireEditing(id, field); err != nil {
		return false, err
	}
	cp, col, err := c.host.CellParams(id, field)
	if err != nil {
		return false, err
	}
	k := cellKey{id, field}
	session := c.sessions[k]

	parsed := value
	if col.ValueParser != nil {
		parsed = col.ValueParser(value, cp)
	}
	staged, _ := c.host.State().Editing.Props(id, field)
	props := staged
	props.Value = parsed

	pre := col.PreProcessEditCellProps
	if pre != nil {
		props.IsProcessingProps = true
		c.setProps(id, field, props)

		params := columns.PreProcessParams{
			ID:         id,
			Row:        cp.Row,
			Props:      props,
			HasChanged: !reflect.DeepEqual(value, staged.Value),
		}
		var out columns.EditCellProps
		var hookErr error
		c.host.Await(func() {
			out, hookErr = pre(ctx, params)
		})
		if !c.inSession(k, session) {
			c.logger.Debug("stale edit props dropped", "id", id, "field", field)
			return false, nil
		}
		if hookErr != nil {
			current, _ := c.host.State().Editing.Props(id, field)
			c.setProps(id, field, columns.EditCellProps{Value: current.Value, Error: true})
			return false, hookErr
		}
		props = out
	}

	if pre != nil {
		current, _ := c.host.State().Editing.Props(id, field)
		props.Value = current.Value
	} else {
		props.Value = parsed
	}
	props.IsProcessingProps = false
	c.setProps(id, field, props)
	return !props.Error, nil
}

func (c *Controller) setProps(id rows.ID, field string, props columns.EditCellProps) {
	c.host.SetEditing(func(e store.EditingState) store.EditingState {
		return e.With(id, field, props)
	})
}

// SetEditCellValueDebounced stages value after d. A newer call for the same
// cell replaces the pending one, and Stop runs a pending change first.
func (c *Controller) SetEditCellValueDebounced(ctx context.Context, id rows.ID, field string, value any, d time.Duration) error {
	if err := c.requireEditable(id, field); err != nil {
		return err
	}
	if err := c.requireEditing(id, field); err != nil {
		return err
	}
	k := cellKey{id, field}
	if old, ok := c.pending[k]; ok {
		old.timer.Stop()
	}
	change := &pendingChange{}
	change.run = func() {
		if c.pending[k] != change {
			return
		}
		delete(c.pending, k)
		if _, err := c.SetEditCellValue(ctx, id, field, value); err != nil {
			c.logger.Debug("debounced edit failed", "id", id, "field", field, "error", err)
		}
	}
	c.pending[k] = change
	change.timer = c.cfg.Scheduler.AfterFunc(d, change.run)
	return nil
}

// RunPending runs the pending debounced change of a cell now.
func (c *Controller) RunPending(id rows.ID, field string) {
	change, ok := c.pending[cellKey{id, field}]
	if !ok {
		return
	}
	change.timer.Stop()
	change.run()
}

// Pending reports whether a debounced change waits for the cell.
func (c *Controller) Pending(id rows.ID, field string) bool {
	_, ok := c.pending[cellKey{id, field}]
	return ok
}
