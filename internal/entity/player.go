package entity

import (
	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

// Player is the avatar controlled from the keyboard.
type Player struct {
	Base
}

// NewPlayer creates the player at the given position.
func NewPlayer(pos world.Position) *Player {
	return &Player{
		Base: NewBase("You", 17, pos, gamedata.MustColor("yellow"), "That's you!"),
	}
}

// Symbol returns the player glyph.
func (p *Player) Symbol() rune { return '@' }

// Move updates the player position by the given delta.
func (p *Player) Move(delta world.Position) {
	p.pos = p.pos.Add(delta)
}
