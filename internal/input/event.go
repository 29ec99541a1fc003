// Package input turns raw keystrokes into game events.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/world"
)

// Keystroke is a single key press as delivered by the terminal.
type Keystroke struct {
	Key  tcell.Key
	Rune rune // Set when Key is tcell.KeyRune
}

// RuneKey builds the keystroke for a printable character.
func RuneKey(r rune) Keystroke {
	return Keystroke{Key: tcell.KeyRune, Rune: r}
}

// SpecialKey builds the keystroke for a non-printable key.
func SpecialKey(k tcell.Key) Keystroke {
	return Keystroke{Key: k}
}

// EventKind discriminates game events.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventQuit
	EventMove
	EventInteract
	EventStartTyping
	EventChar
	EventBackspace
	EventConfirm
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventMove:
		return "move"
	case EventInteract:
		return "interact"
	case EventStartTyping:
		return "start_typing"
	case EventChar:
		return "char"
	case EventBackspace:
		return "backspace"
	case EventConfirm:
		return "confirm"
	default:
		return "none"
	}
}

// Event is a game-level input event.
type Event struct {
	Kind EventKind
	Dir  world.Direction // EventMove only
	Char rune            // EventChar only
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Move returns a move event in the given direction.
func Move(dir world.Direction) Event { return Event{Kind: EventMove, Dir: dir} }

// Interact returns an interact event.
func Interact() Event { return Event{Kind: EventInteract} }

// StartTyping returns a start-typing event.
func StartTyping() Event { return Event{Kind: EventStartTyping} }

// Char returns a character event.
func Char(r rune) Event { return Event{Kind: EventChar, Char: r} }

// Backspace returns a backspace event.
func Backspace() Event { return Event{Kind: EventBackspace} }

// Confirm returns a confirm event.
func Confirm() Event { return Event{Kind: EventConfirm} }
