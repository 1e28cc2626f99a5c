package pointer

import (
	"time"

	"github.com/m4theushw/material-ui-x/internal/input/key"
)

// Button identifies the button that changed state.
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonAuxiliary Button = 1
	ButtonSecondary Button = 2
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonAuxiliary:
		return "auxiliary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "other"
	}
}

// Buttons is the set of held buttons.
type Buttons uint8

const (
	HeldPrimary   Buttons = 1
	HeldSecondary Buttons = 2
	HeldAuxiliary Buttons = 4
)

// Event is a mouse or pen event.
type Event struct {
	X, Y      float64
	Button    Button
	Buttons   Buttons
	Modifiers key.Modifier
	Timestamp time.Time
}

// Touch is one touch point.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent lists the touch points that changed.
type TouchEvent struct {
	Changed   []Touch
	Timestamp time.Time
}

// Find returns the changed touch with the given identifier.
func (e TouchEvent) Find(id int) (Touch, bool) {
	for _, t := range e.Changed {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
