package key

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key. Character keys use KeyRune.
type Key uint8

const (
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is any character key, including space.
	KeyRune
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "ArrowUp",
	KeyDown:      "ArrowDown",
	KeyLeft:      "ArrowLeft",
	KeyRight:     "ArrowRight",
	KeyRune:      "Rune",
}

// String returns the key name.
func (k Key) String() string {
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial reports whether k is a non-character key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsArrow reports whether k is an arrow key.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigation reports whether k moves the focus between cells.
func (k Key) IsNavigation() bool {
	return k.IsArrow() || k == KeyHome || k == KeyEnd || k == KeyPageUp || k == KeyPageDown
}

var nameToKey = map[string]Key{
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"insert":     KeyInsert,
	"home":       KeyHome,
	"end":        KeyEnd,
	"pageup":     KeyPageUp,
	"pagedown":   KeyPageDown,
	"up":         KeyUp,
	"arrowup":    KeyUp,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"right":      KeyRight,
	"arrowright": KeyRight,
}

// FromName returns the key with the given name, case-insensitively.
// It returns KeyNone for unknown names and for single characters.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameToKey[name]; ok {
		return k
	}
	var n int
	if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && n >= 1 && n <= 12 && name == fmt.Sprintf("f%d", n) {
		return KeyF1 + Key(n-1)
	}
	return KeyNone
}
