package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/world"
)

// Keymap maps keystrokes to events. Normal and text-entry bindings are kept
// apart so that letters bound in normal mode still type while composing a message.
type Keymap struct {
	normalKeys  map[tcell.Key]Event
	normalRunes map[rune]Event
	textKeys    map[tcell.Key]Event
}

// DefaultKeymap returns the standard bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		normalKeys: map[tcell.Key]Event{
			tcell.KeyUp:     Move(world.Up),
			tcell.KeyDown:   Move(world.Down),
			tcell.KeyLeft:   Move(world.Left),
			tcell.KeyRight:  Move(world.Right),
			tcell.KeyEscape: Quit(),
			tcell.KeyCtrlC:  Quit(),
		},
		normalRunes: map[rune]Event{
			'e': Interact(),
			'E': Interact(),
			't': StartTyping(),
			'T': StartTyping(),
			'q': Quit(),
			'Q': Quit(),
		},
		textKeys: map[tcell.Key]Event{
			tcell.KeyEnter:      Confirm(),
			tcell.KeyBackspace:  Backspace(),
			tcell.KeyBackspace2: Backspace(),
			tcell.KeyCtrlC:      Quit(),
		},
	}
}

// Translate returns the event for ks. typing selects the text-entry bindings.
// The second result is false for keys with no binding.
func (m *Keymap) Translate(ks Keystroke, typing bool) (Event, bool) {
	if typing {
		if ks.Key == tcell.KeyRune {
			if !unicode.IsPrint(ks.Rune) {
				return Event{}, false
			}
			return Char(ks.Rune), true
		}
		ev, ok := m.textKeys[ks.Key]
		return ev, ok
	}

	if ks.Key == tcell.KeyRune {
		ev, ok := m.normalRunes[ks.Rune]
		return ev, ok
	}
	ev, ok := m.normalKeys[ks.Key]
	return ev, ok
}
