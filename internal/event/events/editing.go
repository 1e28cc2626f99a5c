package events

import (
	"github.com/m4theushw/material-ui-x/internal/event"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

// Cell editing topics.
const (
	// TopicCellEditStart is published when a cell enters edit mode.
	TopicCellEditStart event.Topic = "cell.edit.start"

	// TopicCellEditStop is published when a cell leaves edit mode.
	TopicCellEditStop event.Topic = "cell.edit.stop"

	// TopicCellFocusChanged is published when the focused cell changes.
	TopicCellFocusChanged event.Topic = "cell.focus.changed"
)

// CellEditStartReason explains why editing started.
type CellEditStartReason string

const (
	StartReasonEnterKeyDown     CellEditStartReason = "enterKeyDown"
	StartReasonCellDoubleClick  CellEditStartReason = "cellDoubleClick"
	StartReasonPrintableKeyDown CellEditStartReason = "printableKeyDown"
	StartReasonDeleteKeyDown    CellEditStartReason = "deleteKeyDown"
	StartReasonAPI              CellEditStartReason = "api"
)

// CellEditStopReason explains why editing stopped.
type CellEditStopReason string

const (
	StopReasonCellFocusOut    CellEditStopReason = "cellFocusOut"
	StopReasonEscapeKeyDown   CellEditStopReason = "escapeKeyDown"
	StopReasonEnterKeyDown    CellEditStopReason = "enterKeyDown"
	StopReasonTabKeyDown      CellEditStopReason = "tabKeyDown"
	StopReasonShiftTabKeyDown CellEditStopReason = "shiftTabKeyDown"
	StopReasonAPI             CellEditStopReason = "api"
)

// CellEditStart is the payload of TopicCellEditStart.
type CellEditStart struct {
	ID     rows.ID
	Field  string
	Reason CellEditStartReason

	// Key is the key that started editing, if any.
	Key string
}

// CellEditStop is the payload of TopicCellEditStop.
type CellEditStop struct {
	ID     rows.ID
	Field  string
	Reason CellEditStopReason

	// Committed is false when the edit was discarded or rejected.
	Committed bool
}

// CellFocusChanged is the payload of TopicCellFocusChanged.
// A nil ID means no cell has focus.
type CellFocusChanged struct {
	ID    rows.ID
	Field string
}
