// Package pointer defines the pointer and touch events the grid reacts to.
//
// Coordinates are client coordinates in the same unit as column widths.
// Button follows the browser convention (0 primary, 1 auxiliary,
// 2 secondary) and Buttons is the bitmask of buttons currently held, so a
// move event whose Buttons is zero means the release was missed.
//
// ClickTracker turns a stream of presses into click counts for hosts that
// do not report double clicks themselves.
package pointer
