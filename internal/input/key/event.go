package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent creates an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether e is a character key.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable reports whether the key types a character. Space counts.
func (e Event) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// HasModifiers reports whether any modifier is held, Shift included.
func (e Event) HasModifiers() bool {
	return e.Modifiers != ModNone
}

// Name returns the key as a browser reports it: the character for
// character keys, the key name otherwise.
func (e Event) Name() string {
	if e.IsRune() {
		return string(e.Rune)
	}
	return e.Key.String()
}

// String returns a specification Parse accepts, like "Shift+Tab".
func (e Event) String() string {
	name := e.Name()
	if e.IsRune() && e.Rune == ' ' {
		name = "Space"
	}
	if e.Modifiers == ModNone {
		return name
	}
	return e.Modifiers.String() + "+" + name
}

// Parse reads a specification like "a", "Enter", "Space" or "Shift+Tab".
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if spec == "+" {
		return NewRuneEvent('+', ModNone), nil
	}

	parts := strings.Split(spec, "+")
	name := parts[len(parts)-1]
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return NewRuneEvent(r, mods), nil
	}
	k := FromName(name)
	if k == KeyNone {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	return NewSpecialEvent(k, mods), nil
}

// MustParse is Parse that panics on error, for tests and static tables.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return e
}
