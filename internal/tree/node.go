package tree

import (
	"reflect"

	"github.com/m4theushw/material-ui-x/internal/rows"
)

// Kind distinguishes leaf rows from group rows.
type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "leaf"
}

// Node is a row tree node.
type Node struct {
	ID     rows.ID
	Kind   Kind
	Depth  int
	Parent rows.ID // nil for roots

	// Group only.
	Children         []rows.ID
	ChildrenExpanded bool

	// GroupingField is empty for leaves built from a leaf criterion.
	GroupingField string
	GroupingKey   any

	IsAutoGenerated bool
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// IsGroup reports whether n is a group node.
func (n *Node) IsGroup() bool { return n.Kind == KindGroup }

func (n *Node) equal(o *Node) bool {
	if n.ID != o.ID || n.Kind != o.Kind || n.Depth != o.Depth || n.Parent != o.Parent ||
		n.ChildrenExpanded != o.ChildrenExpanded || n.GroupingField != o.GroupingField ||
		!sameKey(n.GroupingKey, o.GroupingKey) || n.IsAutoGenerated != o.IsAutoGenerated ||
		len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if n.Children[i] != o.Children[i] {
			return false
		}
	}
	return true
}

func sameKey(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// Tree is an immutable row tree. Writers copy before changing it.
type Tree struct {
	Nodes map[rows.ID]*Node

	// Roots lists depth-0 nodes in creation order.
	Roots []rows.ID

	// IDs lists every node in creation order; a group precedes its first leaf.
	IDs []rows.ID

	// Depth is the number of levels, at least 1.
	Depth int

	// GroupingName names the strategy that built the tree.
	GroupingName string
}

// Node returns the node with the given id.
func (t *Tree) Node(id rows.ID) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	n, ok := t.Nodes[id]
	return n, ok
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Nodes)
}

// Flat builds a depth-1 tree holding one leaf per id.
func Flat(ids []rows.ID, previous *Tree) *Tree {
	t := &Tree{
		Nodes: make(map[rows.ID]*Node, len(ids)),
		Roots: ids,
		IDs:   ids,
		Depth: 1,
	}
	for _, id := range ids {
		t.Nodes[id] = &Node{ID: id, Kind: KindLeaf}
	}
	return t.reuse(previous)
}

// WithExpansion returns a copy of t where the group id has the given
// expansion. Only the changed node is replaced.
func (t *Tree) WithExpansion(id rows.ID, expanded bool) (*Tree, error) {
	n, ok := t.Node(id)
	if !ok {
		return nil, &rows.NotFoundError{ID: id}
	}
	if n.ChildrenExpanded == expanded {
		return t, nil
	}
	nodes := make(map[rows.ID]*Node, len(t.Nodes))
	for k, v := range t.Nodes {
		nodes[k] = v
	}
	cp := *n
	cp.ChildrenExpanded = expanded
	nodes[id] = &cp

	out := *t
	out.Nodes = nodes
	return &out, nil
}

// AncestorsExpanded reports whether every ancestor of id is expanded.
func (t *Tree) AncestorsExpanded(id rows.ID) bool {
	n, ok := t.Node(id)
	for ok && n.Parent != nil {
		n, ok = t.Node(n.Parent)
		if ok && !n.ChildrenExpanded {
			return false
		}
	}
	return true
}

// Path returns the ids from the root down to id, inclusive.
func (t *Tree) Path(id rows.ID) []rows.ID {
	var path []rows.ID
	for n, ok := t.Node(id); ok; n, ok = t.Node(n.Parent) {
		path = append(path, n.ID)
		if n.Parent == nil {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
