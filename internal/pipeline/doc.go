// Package pipeline is the pre-processing registry of a grid.
//
// Features never call each other. Instead they register named processors in
// ordered groups (hydrateColumns, columnMenu, rowHeight) and strategy
// processors (rowTreeCreation, filtering, sorting) under a strategy name.
// The grid applies a group by threading a value through its processors in
// registration order, and applies a strategy processor by dispatching to the
// active strategy: the first registered strategy that reports itself
// available, "none" otherwise.
//
// Each processor memoizes its last result: when it receives the same value
// and params by reference it returns its previous output without running.
package pipeline
