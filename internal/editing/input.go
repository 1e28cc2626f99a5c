package editing

import (
	"context"

	"github.com/m4theushw/material-ui-x/internal/event/events"
	"github.com/m4theushw/material-ui-x/internal/input/key"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/store"
)

// HandleKeyDown routes a key press on a cell. In edit mode Escape, Enter,
// Tab and Shift+Tab stop editing; in view mode an unmodified printable key,
// Enter or Delete starts it. handled is false when the key was ignored.
func (c *Controller) HandleKeyDown(ctx context.Context, id rows.ID, field string, ev key.Event) (handled bool, err error) {
	if c.Mode(id, field) == store.CellModeEdit {
		var reason events.CellEditStopReason
		switch {
		case ev.Key == key.KeyEscape:
			reason = events.StopReasonEscapeKeyDown
		case ev.Key == key.KeyEnter:
			reason = events.StopReasonEnterKeyDown
		case ev.Key == key.KeyTab && ev.Modifiers.HasShift():
			reason = events.StopReasonShiftTabKeyDown
		case ev.Key == key.KeyTab:
			reason = events.StopReasonTabKeyDown
		default:
			return false, nil
		}
		_, err := c.stopWithReason(ctx, id, field, reason)
		return true, err
	}

	if !c.host.IsCellEditable(id, field) {
		return false, nil
	}
	var reason events.CellEditStartReason
	switch {
	case ev.IsPrintable():
		if ev.HasModifiers() {
			return false, nil
		}
		reason = events.StartReasonPrintableKeyDown
	case ev.Key == key.KeyEnter:
		reason = events.StartReasonEnterKeyDown
	case ev.Key == key.KeyDelete:
		reason = events.StartReasonDeleteKeyDown
	default:
		return false, nil
	}
	return true, c.startWithReason(ctx, id, field, reason)
}

// HandleDoubleClick starts editing an editable view cell.
func (c *Controller) HandleDoubleClick(ctx context.Context, id rows.ID, field string) (bool, error) {
	if !c.host.IsCellEditable(id, field) || c.Mode(id, field) == store.CellModeEdit {
		return false, nil
	}
	return true, c.startWithReason(ctx, id, field, events.StartReasonCellDoubleClick)
}

// HandleFocusOut stops editing a cell that lost focus.
func (c *Controller) HandleFocusOut(ctx context.Context, id rows.ID, field string) (bool, error) {
	if c.Mode(id, field) != store.CellModeEdit {
		return false, nil
	}
	_, err := c.stopWithReason(ctx, id, field, events.StopReasonCellFocusOut)
	return true, err
}

func (c *Controller) startWithReason(ctx context.Context, id rows.ID, field string, reason events.CellEditStartReason) error {
	if err := c.Start(id, field, reason); err != nil {
		return err
	}
	if reason == events.StartReasonDeleteKeyDown || reason == events.StartReasonPrintableKeyDown {
		_, err := c.SetEditCellValue(ctx, id, field, "")
		return err
	}
	return nil
}

func (c *Controller) stopWithReason(ctx context.Context, id rows.ID, field string, reason events.CellEditStopReason) (bool, error) {
	p := StopParams{ID: id, Field: field, Reason: reason}
	switch reason {
	case events.StopReasonEnterKeyDown:
		p.FocusAfter = FocusBelow
	case events.StopReasonTabKeyDown:
		p.FocusAfter = FocusRight
	case events.StopReasonShiftTabKeyDown:
		p.FocusAfter = FocusLeft
	case events.StopReasonEscapeKeyDown:
		p.IgnoreModifications = true
	}
	// A stop cannot wait for props still being processed.
	if props, ok := c.host.State().Editing.Props(id, field); ok && props.IsProcessingProps {
		p.IgnoreModifications = true
	}
	return c.Stop(ctx, p)
}
