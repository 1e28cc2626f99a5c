package events

import (
	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/event"
)

// Column topics.
const (
	// TopicColumnsChanged is published after the column registry is rebuilt.
	TopicColumnsChanged event.Topic = "columns.changed"

	// TopicColumnVisibilityChanged is published when the visibility model changes.
	TopicColumnVisibilityChanged event.Topic = "column.visibility.changed"

	// TopicColumnResizeStart is published when a resize gesture begins.
	TopicColumnResizeStart event.Topic = "column.resize.start"

	// TopicColumnResize is published on every pointer move of a resize.
	TopicColumnResize event.Topic = "column.resize.move"

	// TopicColumnResizeStop is published, debounced, after a resize ends.
	TopicColumnResizeStop event.Topic = "column.resize.stop"

	// TopicColumnWidthChanged is published, debounced, after a resize ends.
	TopicColumnWidthChanged event.Topic = "column.width.changed"
)

// ColumnsChanged is the payload of TopicColumnsChanged.
type ColumnsChanged struct {
	Fields []string
}

// ColumnVisibilityChanged is the payload of TopicColumnVisibilityChanged.
type ColumnVisibilityChanged struct {
	Model columns.VisibilityModel
}

// ColumnResize is the payload of every resize topic.
type ColumnResize struct {
	Field string
	Width float64
}
