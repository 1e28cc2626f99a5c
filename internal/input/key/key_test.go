package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyDelete, "Delete"},
		{KeyUp, "ArrowUp"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{"esc", KeyEscape},
		{"ArrowLeft", KeyLeft},
		{"f10", KeyF10},
		{"f13", KeyNone},
		{"f1x", KeyNone},
		{"a", KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromName(tt.name); got != tt.want {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Event
	}{
		{"a", NewRuneEvent('a', ModNone)},
		{"Space", NewRuneEvent(' ', ModNone)},
		{"+", NewRuneEvent('+', ModNone)},
		{"Enter", NewSpecialEvent(KeyEnter, ModNone)},
		{"Shift+Tab", NewSpecialEvent(KeyTab, ModShift)},
		{"Ctrl+Shift+x", NewRuneEvent('x', ModCtrl|ModShift)},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
			again, err := Parse(got.String())
			if err != nil || again != got {
				t.Errorf("Parse(%q.String()) = %+v, %v", tt.spec, again, err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"Hyper+a", ErrInvalidSpec},
		{"Bogus", ErrInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			if _, err := Parse(tt.spec); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestEvent_IsPrintable(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"letter", NewRuneEvent('a', ModNone), true},
		{"space", NewRuneEvent(' ', ModNone), true},
		{"control rune", NewRuneEvent('\x01', ModNone), false},
		{"enter", NewSpecialEvent(KeyEnter, ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsPrintable(); got != tt.want {
				t.Errorf("IsPrintable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModifier_String(t *testing.T) {
	if got := (ModCtrl | ModShift).String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want Ctrl+Shift", got)
	}
	if got := ModNone.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
