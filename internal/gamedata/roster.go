package gamedata

import (
	"errors"
	"fmt"
)

// Kind selects which character variant a roster entry builds.
type Kind string

const (
	KindCharacter  Kind = "character"
	KindWhiteboard Kind = "whiteboard"
	KindTeacher    Kind = "teacher"
	KindStudent    Kind = "student"
)

// ErrUnknownKind is returned for roster entries with an unsupported kind.
var ErrUnknownKind = errors.New("unknown character kind")

// Point is a map cell in roster data.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CharacterDef defines an NPC loaded from JSON.
type CharacterDef struct {
	Kind     Kind   `json:"kind"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Color    string `json:"color,omitempty"`    // Palette name or hex; empty uses the kind default
	Dialogue string `json:"dialogue,omitempty"` // Line returned by interact
	Subject  string `json:"subject,omitempty"`  // Teacher only
	Class    string `json:"class,omitempty"`    // Student only
	Game     string `json:"game,omitempty"`     // Student only, e.g. "rock-paper-scissors"
	Aside    *Point `json:"aside,omitempty"`    // Student only, cell to step to once beaten
}

// Validate checks the fields every kind needs.
func (d *CharacterDef) Validate() error {
	switch d.Kind {
	case KindCharacter, KindTeacher, KindStudent:
		if d.Name == "" {
			return fmt.Errorf("%s at (%d,%d) has no name", d.Kind, d.X, d.Y)
		}
	case KindWhiteboard:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
	if d.Aside != nil && d.Kind != KindStudent {
		return fmt.Errorf("%s: only students step aside", d.Name)
	}
	if d.Color != "" {
		if _, err := ParseColor(d.Color); err != nil {
			return fmt.Errorf("%s: %w", d.Name, err)
		}
	}
	return nil
}

// RosterFile represents the structure of roster.json.
type RosterFile struct {
	Characters []CharacterDef `json:"characters"`
}

// LoadRoster loads NPC definitions from the embedded roster.json file.
// Order is preserved; it is the draw and adjacency scan order.
func LoadRoster() ([]CharacterDef, error) {
	file, err := Load[RosterFile]("roster.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Characters {
		if err := file.Characters[i].Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
	}
	return file.Characters, nil
}
