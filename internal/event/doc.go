// Package event provides the lifecycle notification bus of a grid.
//
// Features publish notifications (rows set, grouping model changed, cell edit
// start/stop, column resize start/move/stop, column width changed, row
// expansion changed, ...) and host-level listeners subscribe to them without
// the features knowing about each other. Payload types and topic constants
// live in the events subpackage.
//
// # Topics
//
// Topics are dot separated:
//
//	rows.set
//	cell.edit.start
//	column.resize.stop
//
// Subscriptions may use wildcards. "*" matches exactly one segment and "**"
// matches zero or more:
//
//	cell.edit.*   - cell.edit.start, cell.edit.stop
//	column.**     - column.resize.start, column.width.changed, ...
//
// # Delivery
//
// Delivery is synchronous, in priority order (lower values first), in the
// publisher's goroutine. The grid publishes only after releasing its lock,
// so handlers may call back into the grid. Handler errors and panics are
// recovered and logged; they never reach the publisher, since notifications
// are fire-only.
//
//	bus := event.NewBus()
//	sub, _ := bus.Subscribe("cell.edit.stop", event.HandlerFunc(func(ctx context.Context, e any) error {
//	    stop := e.(event.Event[events.CellEditStop])
//	    ...
//	    return nil
//	}))
//	defer sub.Cancel()
package event
