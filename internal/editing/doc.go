// Package editing implements the cell editing state machine.
//
// A cell is in view mode unless the grid state holds staged props for it.
// Start stages the current value, SetEditCellValue parses and validates new
// values, and Stop either discards the staged value or commits it through
// the column value setter and the optional row update hook.
//
// Two hooks may block: the column PreProcessEditCellProps and the
// ProcessRowUpdate callback. The controller calls them through Host.Await,
// which releases the grid lock, and checks afterwards that the cell is
// still in the edit session the call started in. Results that arrive after
// the cell left that session are dropped.
//
// The controller is not safe for concurrent use; the grid serializes calls.
package editing
