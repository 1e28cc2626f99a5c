// Package snapshot persists exported grid state.
//
// Snapshots are grid.InitialState values encoded as JSON documents and kept
// in a bbolt database under caller-chosen keys, typically one per grid
// document. Loading a snapshot and passing it to grid.WithInitialState or
// (*grid.Grid).RestoreState brings back column widths and visibility, the
// filter, sort and grouping models, group expansion and pagination.
package snapshot
