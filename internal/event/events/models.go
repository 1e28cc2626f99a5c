package events

import (
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/filter"
	"github.com/m4theushw/material-ui-x/internal/sorting"
)

// Model and strategy topics.
const (
	// TopicFilterModelChanged is published when the filter model changes.
	TopicFilterModelChanged event.Topic = "filter.model.changed"

	// TopicSortModelChanged is published when the sort model changes.
	TopicSortModelChanged event.Topic = "sort.model.changed"

	// TopicActiveStrategyChanged is published when the row organization
	// strategy switches, for example when grouping starts or stops.
	TopicActiveStrategyChanged event.Topic = "strategy.active.changed"

	// TopicPaginationChanged is published when the page or page size changes.
	TopicPaginationChanged event.Topic = "pagination.changed"
)

// FilterModelChanged is the payload of TopicFilterModelChanged.
type FilterModelChanged struct {
	Model filter.Model
}

// SortModelChanged is the payload of TopicSortModelChanged.
type SortModelChanged struct {
	Model sorting.Model
}

// ActiveStrategyChanged is the payload of TopicActiveStrategyChanged.
type ActiveStrategyChanged struct {
	Strategy string
}

// PaginationChanged is the payload of TopicPaginationChanged.
type PaginationChanged struct {
	Page     int
	PageSize int
}
