package session

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/entity"
	"github.com/samdwyer/rpgschool/internal/world"
)

// Sprite is one character as the renderer sees it.
type Sprite struct {
	ID     string
	Pos    world.Position
	Color  tcell.Color
	Label  string
	Symbol rune
}

// Snapshot is a read-only copy of everything the renderer draws.
type Snapshot struct {
	Width, Height int
	Cells         [][]world.Tile
	NPCs          []Sprite
	Player        Sprite
	Status        string
	Inventory     []string
	Location      string
	Typing        bool
	Input         string
}

// Snapshot copies the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	npcs := make([]Sprite, 0, len(s.npcs))
	for _, npc := range s.npcs {
		npcs = append(npcs, spriteOf(npc))
	}

	snap := Snapshot{
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Cells:     s.grid.Cells(),
		NPCs:      npcs,
		Player:    spriteOf(s.player),
		Status:    s.status,
		Inventory: s.player.Inventory(),
		Location:  s.grid.RoomAt(s.player.Position()),
		Typing:    s.Typing(),
	}
	if snap.Typing {
		snap.Input = s.Input()
	}
	return snap
}

func spriteOf(c entity.Character) Sprite {
	return Sprite{
		ID:     c.ID(),
		Pos:    c.Position(),
		Color:  c.Color(),
		Label:  c.Label(),
		Symbol: c.Symbol(),
	}
}
