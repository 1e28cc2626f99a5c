package tree

import (
	"fmt"
	"strings"

	"github.com/m4theushw/material-ui-x/internal/rows"
)

// AutoGeneratedPrefix starts the id of every synthesized group node.
const AutoGeneratedPrefix = "auto-generated-row-"

// Criterion is one step of a grouping path. The last step of a path is the
// leaf criterion: an empty Field and the row id as Key.
type Criterion struct {
	Field string
	Key   any
}

// LeafCriterion returns the terminating criterion for a row.
func LeafCriterion(id rows.ID) Criterion {
	return Criterion{Key: rows.IDString(id)}
}

// PathRow is a row id with its grouping path.
type PathRow struct {
	ID   rows.ID
	Path []Criterion
}

// BuildParams configures Build.
type BuildParams struct {
	Rows         []PathRow
	PreviousTree *Tree

	// DefaultExpansionDepth expands groups above this depth; -1 expands all.
	DefaultExpansionDepth int

	// IsGroupExpandedByDefault, when set, overrides DefaultExpansionDepth for
	// groups the previous tree does not know.
	IsGroupExpandedByDefault func(*Node) bool

	GroupingName string
}

type keyNode struct {
	id       rows.ID
	children map[string]map[string]*keyNode
}

// Build creates a tree from grouping paths.
func Build(p BuildParams) *Tree {
	t := &Tree{
		Nodes:        make(map[rows.ID]*Node, len(p.Rows)),
		Depth:        1,
		GroupingName: p.GroupingName,
	}
	root := map[string]map[string]*keyNode{}

	for _, row := range p.Rows {
		level := root
		var parent *Node
		for depth, c := range row.Path {
			leaf := depth == len(row.Path)-1
			byKey := level[c.Field]
			if byKey == nil {
				byKey = map[string]*keyNode{}
				level[c.Field] = byKey
			}
			keyStr := fmt.Sprint(c.Key)
			kn := byKey[keyStr]
			if kn == nil {
				id := row.ID
				if !leaf {
					id = autoGeneratedID(row.Path[:depth+1])
				}
				kn = &keyNode{id: id, children: map[string]map[string]*keyNode{}}
				byKey[keyStr] = kn
			}
			level = kn.children

			var parentID rows.ID
			if parent != nil {
				parentID = parent.ID
			}

			if leaf {
				n := &Node{
					ID:            row.ID,
					Kind:          KindLeaf,
					Depth:         depth,
					Parent:        parentID,
					GroupingField: c.Field,
					GroupingKey:   c.Key,
				}
				t.add(n, parent)
			} else if existing, ok := t.Nodes[kn.id]; ok {
				parent = existing
			} else {
				n := &Node{
					ID:              kn.id,
					Kind:            KindGroup,
					Depth:           depth,
					Parent:          parentID,
					GroupingField:   c.Field,
					GroupingKey:     c.Key,
					IsAutoGenerated: true,
				}
				t.add(n, parent)
				parent = n
			}

			if depth+1 > t.Depth {
				t.Depth = depth + 1
			}
		}
	}

	for _, id := range t.IDs {
		n := t.Nodes[id]
		if n.Kind == KindGroup {
			n.ChildrenExpanded = expansionFor(n, p)
		}
	}

	return t.reuse(p.PreviousTree)
}

func (t *Tree) add(n *Node, parent *Node) {
	t.Nodes[n.ID] = n
	t.IDs = append(t.IDs, n.ID)
	if parent == nil {
		t.Roots = append(t.Roots, n.ID)
		return
	}
	parent.Children = append(parent.Children, n.ID)
}

func autoGeneratedID(path []Criterion) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("%s/%v", c.Field, c.Key)
	}
	return AutoGeneratedPrefix + strings.Join(parts, "-")
}

func expansionFor(n *Node, p BuildParams) bool {
	if prev, ok := p.PreviousTree.Node(n.ID); ok && prev.Kind == KindGroup {
		return prev.ChildrenExpanded
	}
	if p.IsGroupExpandedByDefault != nil {
		return p.IsGroupExpandedByDefault(n)
	}
	return p.DefaultExpansionDepth == -1 || p.DefaultExpansionDepth > n.Depth
}

// reuse swaps unchanged nodes for their previous pointers. When nothing
// changed at all the previous tree itself is returned.
func (t *Tree) reuse(prev *Tree) *Tree {
	if prev == nil {
		return t
	}
	all := true
	for id, n := range t.Nodes {
		if old, ok := prev.Nodes[id]; ok && old.equal(n) {
			t.Nodes[id] = old
			continue
		}
		all = false
	}
	if all && len(t.Nodes) == len(prev.Nodes) && t.Depth == prev.Depth &&
		t.GroupingName == prev.GroupingName && sameIDs(t.IDs, prev.IDs) && sameIDs(t.Roots, prev.Roots) {
		return prev
	}
	return t
}

func sameIDs(a, b []rows.ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
