package entity

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

type colorSetter interface {
	SetColor(tcell.Color)
}

// NewFromDef creates a character from a data-driven definition.
func NewFromDef(def *gamedata.CharacterDef, rng *rand.Rand) (Character, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	pos := world.Position{X: def.X, Y: def.Y}

	var c Character
	switch def.Kind {
	case gamedata.KindWhiteboard:
		c = NewWhiteboard(pos)
	case gamedata.KindTeacher:
		c = NewTeacher(def.Name, def.Age, def.Subject, pos, def.Dialogue)
	case gamedata.KindStudent:
		st := NewStudent(def.Name, def.Age, def.Class, pos, def.Dialogue, def.Game, rng)
		if def.Aside != nil {
			st.Aside = &world.Position{X: def.Aside.X, Y: def.Aside.Y}
		}
		c = st
	case gamedata.KindCharacter:
		c = NewGeneric(def.Name, def.Age, pos, gamedata.MustColor("lightgray"), def.Dialogue)
	default:
		return nil, fmt.Errorf("%w: %q", gamedata.ErrUnknownKind, def.Kind)
	}

	if def.Color != "" {
		if cs, ok := c.(colorSetter); ok {
			cs.SetColor(gamedata.MustColor(def.Color))
		}
	}
	return c, nil
}

// NewRoster creates characters for every definition, keeping their order.
func NewRoster(defs []gamedata.CharacterDef, rng *rand.Rand) ([]Character, error) {
	chars := make([]Character, 0, len(defs))
	for i := range defs {
		c, err := NewFromDef(&defs[i], rng)
		if err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		chars = append(chars, c)
	}
	return chars, nil
}
