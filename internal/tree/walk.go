package tree

import "github.com/m4theushw/material-ui-x/internal/rows"

// SortList orders one list of sibling nodes and returns their ids.
type SortList func(nodes []*Node) []rows.ID

// Sort returns every node id in depth-first order with siblings ordered by
// sortList. Children stay under their parent, so groups never interleave.
// A nil sortList keeps creation order.
func Sort(t *Tree, sortList SortList) []rows.ID {
	if t == nil {
		return nil
	}
	out := make([]rows.ID, 0, len(t.Nodes))
	var walk func(ids []rows.ID)
	walk = func(ids []rows.ID) {
		sorted := ids
		if sortList != nil && len(ids) > 1 {
			nodes := make([]*Node, 0, len(ids))
			for _, id := range ids {
				if n, ok := t.Nodes[id]; ok {
					nodes = append(nodes, n)
				}
			}
			sorted = sortList(nodes)
		}
		for _, id := range sorted {
			out = append(out, id)
			if n, ok := t.Nodes[id]; ok && n.Kind == KindGroup {
				walk(n.Children)
			}
		}
	}
	walk(t.Roots)
	return out
}

// Lookups is the outcome of a filter pass.
type Lookups struct {
	// Visible holds an entry for every node; absent ids count as visible.
	Visible map[rows.ID]bool

	// DescendantCount holds, per group, the number of passing leaves below
	// it. Intermediate groups are not counted.
	DescendantCount map[rows.ID]int
}

// Filter runs match over the tree, parents before their children.
// A leaf passes when it matches; a group passes when it matches or at least
// one descendant leaf passes.
func Filter(t *Tree, match func(*Node) bool) Lookups {
	l := Lookups{
		Visible:         make(map[rows.ID]bool, t.Len()),
		DescendantCount: make(map[rows.ID]int),
	}
	if t == nil {
		return l
	}
	var walk func(id rows.ID) int
	walk = func(id rows.ID) int {
		n, ok := t.Nodes[id]
		if !ok {
			return 0
		}
		m := match(n)
		if n.Kind == KindLeaf {
			l.Visible[id] = m
			if m {
				return 1
			}
			return 0
		}
		count := 0
		for _, child := range n.Children {
			count += walk(child)
		}
		l.Visible[id] = m || count > 0
		l.DescendantCount[id] = count
		return count
	}
	for _, id := range t.Roots {
		walk(id)
	}
	return l
}

// Expanded returns the ids of sorted whose row is visible and whose
// ancestors are all expanded. A nil visible map keeps every row.
func Expanded(t *Tree, sorted []rows.ID, visible map[rows.ID]bool) []rows.ID {
	out := make([]rows.ID, 0, len(sorted))
	for _, id := range sorted {
		if v, ok := visible[id]; ok && !v {
			continue
		}
		if t != nil && !t.AncestorsExpanded(id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
