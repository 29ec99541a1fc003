package entity

import (
	"testing"

	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

func TestWhiteboardStartsDirty(t *testing.T) {
	w := NewWhiteboard(world.Position{X: 2, Y: 1})

	if w.IsClean() {
		t.Error("new whiteboard is clean")
	}
	if got := w.Describe(); got != "Dirty whiteboard" {
		t.Errorf("Describe() = %q", got)
	}
	if got := w.Interact(); got != "a permanent drawing on the whiteboard... oops! (type T to clean)" {
		t.Errorf("Interact() = %q", got)
	}
	if w.Color() != gamedata.MustColor("red") {
		t.Errorf("Color() = %v, want red", w.Color())
	}
}

func TestWhiteboardIgnoresOtherMessages(t *testing.T) {
	w := NewWhiteboard(world.Position{X: 2, Y: 1})

	reply := w.HandleMessage("please wipe this", nil)

	if w.IsClean() {
		t.Error("whiteboard cleaned without the keyword")
	}
	if reply != "Nothing happens. The drawing is still there." {
		t.Errorf("HandleMessage() = %q", reply)
	}
}

func TestWhiteboardCleansOnKeyword(t *testing.T) {
	tests := []string{
		"reinig",
		"please reinig this",
		"REINIG!",
		"ReInIgen graag",
	}

	for _, msg := range tests {
		w := NewWhiteboard(world.Position{X: 2, Y: 1})
		reply := w.HandleMessage(msg, nil)

		if !w.IsClean() {
			t.Errorf("HandleMessage(%q) left the board dirty", msg)
		}
		if reply != "You scrub as hard as you can... the whiteboard is clean!" {
			t.Errorf("HandleMessage(%q) = %q", msg, reply)
		}
		if got := w.Describe(); got != "Clean whiteboard" {
			t.Errorf("after %q Describe() = %q", msg, got)
		}
		if got := w.Interact(); got != "the whiteboard is clean again!" {
			t.Errorf("after %q Interact() = %q", msg, got)
		}
		if w.Color() != gamedata.MustColor("green") {
			t.Errorf("after %q Color() = %v, want green", msg, w.Color())
		}
	}
}

func TestWhiteboardStaysClean(t *testing.T) {
	w := NewWhiteboard(world.Position{X: 2, Y: 1})
	w.HandleMessage("reinig", nil)

	tests := []struct {
		msg      string
		expected string
	}{
		{"draw a cat", "The whiteboard is still spotless."},
		{"reinig again", "The whiteboard is already clean."},
	}

	for _, tt := range tests {
		if got := w.HandleMessage(tt.msg, nil); got != tt.expected {
			t.Errorf("HandleMessage(%q) = %q, want %q", tt.msg, got, tt.expected)
		}
		if !w.IsClean() || w.Describe() != "Clean whiteboard" {
			t.Errorf("after %q the board is no longer clean", tt.msg)
		}
	}
}
