// Package entity provides the player and the characters that share the map.
package entity

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/rpgschool/internal/world"
)

// labelLength is the number of name runes drawn on a character's tile.
const labelLength = 5

// Character is the capability set every map occupant shares.
// Variants embed Base and override what they do differently.
type Character interface {
	ID() string
	Name() string
	Position() world.Position
	Color() tcell.Color
	Label() string
	Symbol() rune

	// Describe returns a short description of the character.
	Describe() string
	// Interact returns what the character says when spoken to.
	Interact() string
	// HandleMessage answers a typed message. Variants may change state here.
	HandleMessage(text string, inventory []string) string
}

// Base holds the fields and default behavior shared by all characters.
type Base struct {
	id        string
	name      string
	age       int
	pos       world.Position
	color     tcell.Color
	dialogue  string
	inventory []string
}

// NewBase creates the shared character state.
func NewBase(name string, age int, pos world.Position, color tcell.Color, dialogue string) Base {
	return Base{
		id:        uuid.NewString(),
		name:      name,
		age:       age,
		pos:       pos,
		color:     color,
		dialogue:  dialogue,
		inventory: []string{},
	}
}

// ID returns the character's unique identifier.
func (b *Base) ID() string { return b.id }

// Name returns the character's name.
func (b *Base) Name() string { return b.name }

// Position returns the character's current cell.
func (b *Base) Position() world.Position { return b.pos }

// SetPosition places the character. Callers are responsible for bounds.
func (b *Base) SetPosition(p world.Position) { b.pos = p }

// Color returns the display color.
func (b *Base) Color() tcell.Color { return b.color }

// SetColor changes the display color.
func (b *Base) SetColor(c tcell.Color) { b.color = c }

// Label returns the first few runes of the name for drawing.
func (b *Base) Label() string {
	if utf8.RuneCountInString(b.name) <= labelLength {
		return b.name
	}
	return string([]rune(b.name)[:labelLength])
}

// Symbol returns the single glyph drawn for the character.
func (b *Base) Symbol() rune {
	r, _ := utf8.DecodeRuneInString(b.name)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Inventory returns a copy of the carried item identifiers, in pickup order.
func (b *Base) Inventory() []string {
	return append([]string(nil), b.inventory...)
}

// AddItem appends an item to the inventory.
func (b *Base) AddItem(item string) {
	b.inventory = append(b.inventory, item)
}

// Describe returns name and age.
func (b *Base) Describe() string {
	return fmt.Sprintf("%s (%d years)", b.name, b.age)
}

// Interact returns the static dialogue line.
func (b *Base) Interact() string {
	return b.dialogue
}

// HandleMessage echoes the text back.
func (b *Base) HandleMessage(text string, _ []string) string {
	return fmt.Sprintf("%s echoes: %s", b.name, text)
}

// Generic is a plain character with the default behavior.
type Generic struct {
	Base
}

// NewGeneric creates a plain character.
func NewGeneric(name string, age int, pos world.Position, color tcell.Color, dialogue string) *Generic {
	return &Generic{Base: NewBase(name, age, pos, color, dialogue)}
}

var (
	_ Character = (*Generic)(nil)
	_ Character = (*Whiteboard)(nil)
	_ Character = (*Teacher)(nil)
	_ Character = (*Student)(nil)
	_ Character = (*Player)(nil)

	_ Gatekeeper = (*Student)(nil)
)
