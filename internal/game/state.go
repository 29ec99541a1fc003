// Package game provides the interaction controller and the main game loop.
package game

// Mode is the input mode of the interaction controller.
type Mode int

const (
	// ModeNormal moves the player and triggers interactions.
	ModeNormal Mode = iota
	// ModeTextEntry composes a message to the character next to the player.
	ModeTextEntry
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTextEntry:
		return "text_entry"
	default:
		return "unknown"
	}
}
