// Package key defines the keyboard events the grid reacts to.
//
// An Event is a key press with its modifiers. Character keys use KeyRune
// and carry the character in Rune; every other key has its own constant.
// Name returns the key the way browsers report it ("Enter", "Tab", "a",
// " "), which is what the cell editing and navigation rules are written
// against.
//
// Parse reads specifications like "Enter", "Shift+Tab" or "a", used by
// configuration files and tests.
package key
