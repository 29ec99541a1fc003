package entity

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

// CleanKeyword is the word that cleans the whiteboard when typed to it.
const CleanKeyword = "reinig"

// Whiteboard is an object that starts dirty and can be cleaned once.
type Whiteboard struct {
	Base
	clean bool
}

// NewWhiteboard creates a dirty whiteboard at the given position.
func NewWhiteboard(pos world.Position) *Whiteboard {
	return &Whiteboard{
		Base: NewBase("Whiteboard", 0, pos, gamedata.MustColor("red"), ""),
	}
}

// IsClean reports whether the whiteboard has been cleaned.
func (w *Whiteboard) IsClean() bool { return w.clean }

// Describe reports the dirty/clean state.
func (w *Whiteboard) Describe() string {
	if w.clean {
		return "Clean whiteboard"
	}
	return "Dirty whiteboard"
}

// Interact describes what is on the board.
func (w *Whiteboard) Interact() string {
	if w.clean {
		return "the whiteboard is clean again!"
	}
	return "a permanent drawing on the whiteboard... oops! (type T to clean)"
}

// HandleMessage cleans the board when the text contains CleanKeyword.
// Once clean it stays clean.
func (w *Whiteboard) HandleMessage(text string, _ []string) string {
	if !containsFold(text, CleanKeyword) {
		if w.clean {
			return "The whiteboard is still spotless."
		}
		return "Nothing happens. The drawing is still there."
	}
	if w.clean {
		return "The whiteboard is already clean."
	}
	w.Clean()
	return "You scrub as hard as you can... the whiteboard is clean!"
}

// Clean marks the board clean and turns it green.
func (w *Whiteboard) Clean() {
	w.clean = true
	w.SetColor(gamedata.MustColor("green"))
}

// containsFold reports whether substr occurs in s, ignoring case.
func containsFold(s, substr string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
