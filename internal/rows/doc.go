// Package rows holds the row registry of a grid.
//
// External rows are opaque records keyed by an ID extracted with an IDGetter
// or from the default "id" field. The registry converts them into a Cache of
// idToRow plus ordered ids, merges partial updates, and throttles the
// downstream recomputation (tree building, filtering, sorting) through a
// clock.Scheduler.
package rows
