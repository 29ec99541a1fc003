// Package ui provides terminal rendering and keyboard input using tcell.
package ui

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/input"
)

// ErrClosed is returned by Drain once the terminal has stopped delivering events.
var ErrClosed = errors.New("screen closed")

// eventBuffer is how many terminal events may queue between ticks.
const eventBuffer = 256

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s and starts reading its events.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
	go scr.pump()
	return scr, nil
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.events <- ev
	}
}

// Drain returns the keystrokes queued since the last call without blocking.
// Resize events are handled here. Queued events are always delivered before ErrClosed.
func (s *Screen) Drain() ([]input.Keystroke, error) {
	var strokes []input.Keystroke
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				strokes = append(strokes, keystrokeOf(ev))
			case *tcell.EventResize:
				s.screen.Sync()
			}
			continue
		default:
		}
		break
	}

	if len(strokes) == 0 {
		select {
		case <-s.done:
			if len(s.events) == 0 {
				return nil, ErrClosed
			}
		default:
		}
	}
	return strokes, nil
}

func keystrokeOf(ev *tcell.EventKey) input.Keystroke {
	if ev.Key() == tcell.KeyRune {
		return input.RuneKey(ev.Rune())
	}
	return input.SpecialKey(ev.Key())
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}
