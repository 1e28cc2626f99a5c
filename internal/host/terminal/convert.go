package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/m4theushw/material-ui-x/internal/input/key"
	"github.com/m4theushw/material-ui-x/internal/input/pointer"
)

var keyMap = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey translates a tcell key event. ok is false for keys the grid
// has no name for.
func convertKey(e *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(e.Modifiers())
	if e.Key() == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods), true
	}
	k, ok := keyMap[e.Key()]
	if !ok {
		return key.Event{}, false
	}
	if e.Key() == tcell.KeyBacktab {
		mods = mods.With(key.ModShift)
	}
	return key.NewSpecialEvent(k, mods), true
}

func convertMod(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModShift != 0 {
		out |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= key.ModMeta
	}
	return out
}

func convertButtons(b tcell.ButtonMask) pointer.Buttons {
	var out pointer.Buttons
	if b&tcell.ButtonPrimary != 0 {
		out |= pointer.HeldPrimary
	}
	if b&tcell.ButtonSecondary != 0 {
		out |= pointer.HeldSecondary
	}
	if b&tcell.ButtonMiddle != 0 {
		out |= pointer.HeldAuxiliary
	}
	return out
}
