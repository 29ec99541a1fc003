package entity

import (
	"math/rand"

	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/world"
)

// GameRockPaperScissors is the mini-game tag a student can carry.
const GameRockPaperScissors = "rock-paper-scissors"

// Gatekeeper is a character that blocks a cell until the player beats it.
type Gatekeeper interface {
	Character
	SetPosition(p world.Position)
	// StepAside returns the cell to move to once passage is earned.
	// It returns false while the character still blocks or has already moved.
	StepAside() (world.Position, bool)
}

// Student is a character in a class who may challenge the player to a game.
type Student struct {
	Base
	Class string
	Game  string          // Mini-game tag, empty for none
	Aside *world.Position // Cell to step to after losing a round, nil to stay put

	rng   *rand.Rand
	score Score
}

// NewStudent creates a student. rng drives the student's mini-game choices.
func NewStudent(name string, age int, class string, pos world.Position, dialogue, game string, rng *rand.Rand) *Student {
	return &Student{
		Base:  NewBase(name, age, pos, gamedata.MustColor("green"), dialogue),
		Class: class,
		Game:  game,
		rng:   rng,
	}
}

// Describe extends the base description with the class.
func (s *Student) Describe() string {
	return s.Base.Describe() + ", class " + s.Class
}

// Score returns the player's record against this student.
func (s *Student) Score() Score { return s.score }

// StepAside reports the Aside cell once the player has won a round.
func (s *Student) StepAside() (world.Position, bool) {
	if s.Aside == nil || s.score.Wins == 0 || s.pos == *s.Aside {
		return world.Position{}, false
	}
	return *s.Aside, true
}

// HandleMessage plays a round of the student's game, or echoes when they have none.
func (s *Student) HandleMessage(text string, inventory []string) string {
	if s.Game != GameRockPaperScissors {
		return s.Base.HandleMessage(text, inventory)
	}

	round, ok := PlayRound(text, s.rng)
	if !ok {
		return s.name + ": say rock, paper or scissors!"
	}
	s.score.record(round.Outcome)
	if round.Outcome == Win && s.Aside != nil {
		return round.Played(s.name) + " You win! " + s.name + " steps aside."
	}
	return round.Narrate(s.name)
}
