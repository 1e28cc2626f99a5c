// Package terminal hosts a grid in a tcell screen.
//
// The host owns the mapping between terminal cells and grid coordinates.
// Row 0 is the column header and each following row shows one row of the
// current page. Horizontal positions are scaled by CellWidth so column
// widths keep their usual units: with the default of 8, a 100 wide column
// spans 12 terminal columns.
//
// Input is translated into the grid's key and pointer events. A press on
// the last cell of a header starts a column resize, body clicks focus a cell
// and double clicks start editing. Key presses go to the focused cell.
package terminal
