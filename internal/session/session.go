// Package session owns the state of one play session: the grid, the characters
// on it, the player, and what the HUD currently shows.
package session

import (
	"errors"
	"fmt"

	"github.com/samdwyer/rpgschool/internal/entity"
	"github.com/samdwyer/rpgschool/internal/world"
)

// InitialStatus is the status message shown when a session opens.
const InitialStatus = "OH NO! Someone drew on the whiteboard with permanent marker!"

// NoTargetStatus is shown when the player interacts with nobody adjacent.
const NoTargetStatus = "nobody to talk to, stand next to someone."

var (
	// ErrOutOfBounds is returned when a character is placed outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrBlocked is returned when a character is placed on a wall.
	ErrBlocked = errors.New("position blocked")
	// ErrOccupied is returned when two characters share a cell.
	ErrOccupied = errors.New("position occupied")
)

// Session holds the grid, the NPCs and the player.
type Session struct {
	grid   *world.Grid
	npcs   []entity.Character // Insertion order is draw and scan order
	player *entity.Player

	status string
	target entity.Character // Bound while typing a message
	input  []rune
}

// New creates a session. Every character must stand on its own floor cell.
func New(grid *world.Grid, player *entity.Player, npcs []entity.Character) (*Session, error) {
	if grid == nil {
		return nil, errors.New("session: nil grid")
	}
	if player == nil {
		return nil, errors.New("session: nil player")
	}

	taken := make(map[world.Position]string, len(npcs)+1)
	place := func(c entity.Character) error {
		pos := c.Position()
		if !grid.InBounds(pos) {
			return fmt.Errorf("%s at (%d,%d): %w", c.Name(), pos.X, pos.Y, ErrOutOfBounds)
		}
		if grid.IsBlocked(pos) {
			return fmt.Errorf("%s at (%d,%d): %w", c.Name(), pos.X, pos.Y, ErrBlocked)
		}
		if other, ok := taken[pos]; ok {
			return fmt.Errorf("%s at (%d,%d) shares a cell with %s: %w", c.Name(), pos.X, pos.Y, other, ErrOccupied)
		}
		taken[pos] = c.Name()
		return nil
	}

	if err := place(player); err != nil {
		return nil, err
	}
	for _, npc := range npcs {
		if err := place(npc); err != nil {
			return nil, err
		}
	}

	return &Session{
		grid:   grid,
		npcs:   append([]entity.Character(nil), npcs...),
		player: player,
		status: InitialStatus,
	}, nil
}

// Grid returns the session's map.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player.
func (s *Session) Player() *entity.Player { return s.player }

// NPCs returns the characters in insertion order.
func (s *Session) NPCs() []entity.Character {
	return append([]entity.Character(nil), s.npcs...)
}

// Status returns the last status message.
func (s *Session) Status() string { return s.status }

// SetStatus replaces the status message.
func (s *Session) SetStatus(msg string) { s.status = msg }

// Occupied reports whether an NPC stands at p. The player is not counted.
func (s *Session) Occupied(p world.Position) bool {
	return s.npcAt(p) != nil
}

// FindAdjacent returns the first NPC next to p, scanning up, down, left, right
// and, per direction, NPCs in insertion order. It returns nil if none is adjacent.
func (s *Session) FindAdjacent(p world.Position) entity.Character {
	for _, dir := range world.Directions {
		if npc := s.npcAt(p.Add(dir.Delta())); npc != nil {
			return npc
		}
	}
	return nil
}

func (s *Session) npcAt(p world.Position) entity.Character {
	for _, npc := range s.npcs {
		if npc.Position() == p {
			return npc
		}
	}
	return nil
}

// releaseGatekeepers moves every beaten gatekeeper to its aside cell.
// A gatekeeper whose cell is taken waits until the cell frees up.
func (s *Session) releaseGatekeepers() {
	for _, npc := range s.npcs {
		gk, ok := npc.(entity.Gatekeeper)
		if !ok {
			continue
		}
		to, ok := gk.StepAside()
		if !ok || !s.free(to) {
			continue
		}
		gk.SetPosition(to)
	}
}

// free reports whether p is an open floor cell nobody stands on.
func (s *Session) free(p world.Position) bool {
	return !s.grid.IsBlocked(p) && !s.Occupied(p) && s.player.Position() != p
}
