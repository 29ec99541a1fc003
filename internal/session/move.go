package session

import "github.com/samdwyer/rpgschool/internal/world"

// MoveOutcome is the result of a movement attempt.
type MoveOutcome int

const (
	// Moved means the player now stands on the target cell.
	Moved MoveOutcome = iota
	// BlockedByWall means the target is a wall or off the map.
	BlockedByWall
	// BlockedByEntity means an NPC stands on the target.
	BlockedByEntity
)

// String returns a human-readable outcome name.
func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case BlockedByWall:
		return "blocked_wall"
	case BlockedByEntity:
		return "blocked_entity"
	default:
		return "unknown"
	}
}

// Blocked reports whether the move was refused.
func (o MoveOutcome) Blocked() bool {
	return o == BlockedByWall || o == BlockedByEntity
}

// Reason returns the status text for a refused move, or "" for Moved.
func (o MoveOutcome) Reason() string {
	switch o {
	case BlockedByWall:
		return "You can't walk through walls!"
	case BlockedByEntity:
		return "You can't walk through people!"
	default:
		return ""
	}
}

// TryMovePlayer moves the player by delta unless a wall or an NPC is in the way.
func (s *Session) TryMovePlayer(delta world.Position) MoveOutcome {
	target := s.player.Position().Add(delta)

	if s.grid.IsBlocked(target) {
		return BlockedByWall
	}
	if s.Occupied(target) {
		return BlockedByEntity
	}

	s.player.Move(delta)
	s.releaseGatekeepers()
	return Moved
}
