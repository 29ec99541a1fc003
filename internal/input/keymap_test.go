package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/world"
)

func TestTranslateNormal(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		ks       Keystroke
		expected Event
		ok       bool
	}{
		{SpecialKey(tcell.KeyUp), Move(world.Up), true},
		{SpecialKey(tcell.KeyDown), Move(world.Down), true},
		{SpecialKey(tcell.KeyLeft), Move(world.Left), true},
		{SpecialKey(tcell.KeyRight), Move(world.Right), true},
		{RuneKey('e'), Interact(), true},
		{RuneKey('E'), Interact(), true},
		{RuneKey('t'), StartTyping(), true},
		{RuneKey('T'), StartTyping(), true},
		{RuneKey('q'), Quit(), true},
		{SpecialKey(tcell.KeyEscape), Quit(), true},
		{SpecialKey(tcell.KeyCtrlC), Quit(), true},
		{RuneKey('x'), Event{}, false},
		{SpecialKey(tcell.KeyEnter), Event{}, false},
		{SpecialKey(tcell.KeyBackspace2), Event{}, false},
	}

	for _, tt := range tests {
		got, ok := km.Translate(tt.ks, false)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("Translate(%+v, false) = %+v, %v, want %+v, %v", tt.ks, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestTranslateTyping(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		ks       Keystroke
		expected Event
		ok       bool
	}{
		{RuneKey('t'), Char('t'), true},
		{RuneKey('e'), Char('e'), true},
		{RuneKey('q'), Char('q'), true},
		{RuneKey(' '), Char(' '), true},
		{RuneKey('é'), Char('é'), true},
		{SpecialKey(tcell.KeyEnter), Confirm(), true},
		{SpecialKey(tcell.KeyBackspace), Backspace(), true},
		{SpecialKey(tcell.KeyBackspace2), Backspace(), true},
		{SpecialKey(tcell.KeyCtrlC), Quit(), true},
		{SpecialKey(tcell.KeyUp), Event{}, false},
		{SpecialKey(tcell.KeyEscape), Event{}, false},
		{RuneKey('\x07'), Event{}, false},
	}

	for _, tt := range tests {
		got, ok := km.Translate(tt.ks, true)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("Translate(%+v, true) = %+v, %v, want %+v, %v", tt.ks, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventMove, "move"},
		{EventStartTyping, "start_typing"},
		{EventKind(200), "none"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
