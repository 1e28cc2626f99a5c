// Package tree builds and walks the hierarchical row model.
//
// Build turns rows annotated with grouping criteria paths into a Tree of
// group and leaf nodes. Group nodes are synthesized once per distinct path
// prefix; their expansion is carried over from the previous tree by id and
// otherwise decided by a depth policy. Nodes that did not change keep their
// pointer identity across rebuilds.
//
// Sort and Filter walk a tree the way the grouping strategy needs: siblings
// are ordered independently, and a group is kept when it matches itself or
// any of its descendant leaves match.
package tree
