package grouping

import (
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/tree"
)

type outcome int

const (
	outcomeNone outcome = iota // no item applied
	outcomePass
	outcomeFail
)

func combine(link filter.LinkOperator, parent, own outcome) outcome {
	if link == filter.LinkOr {
		if parent == outcomePass || own == outcomePass {
			return outcomePass
		}
	} else if parent == outcomeFail || own == outcomeFail {
		return outcomeFail
	}
	if parent == outcomeNone && own == outcomeNone {
		return outcomeNone
	}
	if link == filter.LinkOr {
		return outcomeFail
	}
	return outcomePass
}

// Filter returns the filtering processor of grouped rows.
//
// Items on a grouping column are tested on the groups that column shows;
// the other items are tested on leaves. Each node combines its own outcome
// with the one of its parent, so a leaf inherits the grouping filters of
// its ancestors. A group is visible when it passes or when one of its
// leaves is visible.
func Filter(mode ColumnMode) func(filter.Params) tree.Lookups {
	return func(p filter.Params) tree.Lookups {
		l := tree.Lookups{
			Visible:         make(map[rows.ID]bool, p.Tree.Len()),
			DescendantCount: make(map[rows.ID]int),
		}
		if p.Tree == nil {
			return l
		}
		link := filter.LinkAnd
		if p.Applier != nil {
			link = p.Applier.Link()
		}

		var walk func(id rows.ID, parent outcome) int
		walk = func(id rows.ID, parent outcome) int {
			n, ok := p.Tree.Node(id)
			if !ok {
				return 0
			}
			own := nodeOutcome(p.Applier, n, mode)
			combined := combine(link, parent, own)
			if !n.IsGroup() {
				pass := combined != outcomeFail
				l.Visible[id] = pass
				if pass {
					return 1
				}
				return 0
			}
			count := 0
			for _, child := range n.Children {
				count += walk(child, combined)
			}
			l.Visible[id] = combined == outcomePass || count > 0
			l.DescendantCount[id] = count
			return count
		}
		for _, id := range p.Tree.Roots {
			walk(id, outcomeNone)
		}
		return l
	}
}

func nodeOutcome(a *filter.Applier, n *tree.Node, mode ColumnMode) outcome {
	if a == nil || a.Empty() {
		return outcomeNone
	}
	var apply func(field string) bool
	if n.IsGroup() {
		own := GroupingColumnField(n.GroupingField)
		if mode == ColumnModeSingle {
			own = singleColumnField
		}
		apply = func(field string) bool { return field == own }
	} else {
		apply = func(field string) bool { return !IsGroupingColumn(field) }
	}
	ok, applied := a.MatchCount(n.ID, apply)
	switch {
	case applied == 0:
		return outcomeNone
	case ok:
		return outcomePass
	default:
		return outcomeFail
	}
}
