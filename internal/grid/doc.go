// Package grid is the data grid state engine.
//
// A Grid owns one state store, one pre-processing pipeline and the feature
// controllers that plug into it: the row registry, row grouping, cell
// editing and column resizing. Hosts feed it rows, columns, models and input
// events, and read back derived state through its selectors.
//
// # Data flow
//
// Rows go through the registry, which may throttle recomputation. A
// recomputation asks the active strategy to build the row tree, then runs
// the strategy's filtering and sorting methods:
//
//	rows -> registry -> tree creation -> filtering -> sorting -> selectors
//
// Columns go through the hydrateColumns processor group, where row grouping
// inserts its grouping columns, and then get their computed widths.
//
// # Concurrency
//
// Every exported method takes the grid lock. Notifications raised while the
// lock is held are queued and published once it is released, so listeners
// may call back into the grid. The processRowUpdate and
// preProcessEditCellProps hooks run with the lock released; timers re-enter
// through the lock.
//
// # Controlled models
//
// The filter, sort and grouping models are either owned by the grid or
// controlled by the host, as chosen at creation. For a controlled model the
// setters only report the requested model to the change callback; the host
// applies it with the matching Push method.
package grid
