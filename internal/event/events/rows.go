package events

import (
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

// Row event topics.
const (
	// TopicRowsSet is published after the row model is recomputed.
	TopicRowsSet event.Topic = "rows.set"

	// TopicRowExpansionChanged is published when a group is expanded or collapsed.
	TopicRowExpansionChanged event.Topic = "row.expansion.changed"

	// TopicRowGroupingModelChanged is published when the grouping model changes.
	TopicRowGroupingModelChanged event.Topic = "row.grouping.model.changed"
)

// RowsSet is the payload of TopicRowsSet.
type RowsSet struct {
	// RowCount is the number of data rows, group rows excluded.
	RowCount int

	// TreeDepth is the number of levels of the new tree.
	TreeDepth int

	GroupingName string
}

// RowExpansionChanged is the payload of TopicRowExpansionChanged.
type RowExpansionChanged struct {
	ID       rows.ID
	Expanded bool
}

// RowGroupingModelChanged is the payload of TopicRowGroupingModelChanged.
type RowGroupingModelChanged struct {
	Model []string
}
