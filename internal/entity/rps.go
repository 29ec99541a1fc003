package entity

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
)

// Hand is a rock-paper-scissors choice.
type Hand int

const (
	Rock Hand = iota
	Paper
	Scissors
)

// String returns the hand name.
func (h Hand) String() string {
	switch h {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// beats reports whether h wins against other.
func (h Hand) beats(other Hand) bool {
	return (h == Rock && other == Scissors) ||
		(h == Paper && other == Rock) ||
		(h == Scissors && other == Paper)
}

// handWords maps accepted words to hands. Dutch words are accepted too.
var handWords = map[string]Hand{
	"rock":     Rock,
	"steen":    Rock,
	"paper":    Paper,
	"papier":   Paper,
	"scissors": Scissors,
	"schaar":   Scissors,
}

// ParseHand finds the first hand named in text, ignoring case.
func ParseHand(text string) (Hand, bool) {
	folded := cases.Fold().String(text)

	best, found := -1, Hand(0)
	for word, hand := range handWords {
		idx := strings.Index(folded, word)
		if idx < 0 {
			continue
		}
		// Earliest mention wins
		if best < 0 || idx < best {
			best, found = idx, hand
		}
	}
	return found, best >= 0
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Round is one played round.
type Round struct {
	Player   Hand
	Opponent Hand
	Outcome  Outcome
}

// PlayRound plays the hand named in text against a random hand.
// It returns false when text names no hand.
func PlayRound(text string, rng *rand.Rand) (Round, bool) {
	player, ok := ParseHand(text)
	if !ok {
		return Round{}, false
	}
	return Resolve(player, Hand(rng.Intn(3))), true
}

// Resolve decides a round between two hands.
func Resolve(player, opponent Hand) Round {
	round := Round{Player: player, Opponent: opponent, Outcome: Draw}
	switch {
	case player.beats(opponent):
		round.Outcome = Win
	case opponent.beats(player):
		round.Outcome = Lose
	}
	return round
}

// Played names both hands.
func (r Round) Played(opponent string) string {
	return fmt.Sprintf("You chose %s, %s chose %s.", r.Player, opponent, r.Opponent)
}

// Narrate tells the round from the opponent's point of view.
func (r Round) Narrate(opponent string) string {
	played := r.Played(opponent)
	switch r.Outcome {
	case Win:
		return played + " You win! " + opponent + " grumbles and asks for a rematch."
	case Lose:
		return played + " " + opponent + " wins! Type T to try again."
	default:
		return played + " Draw! Type T to go again."
	}
}

// Score tallies rounds against one opponent.
type Score struct {
	Wins, Losses, Draws int
}

func (s *Score) record(o Outcome) {
	switch o {
	case Win:
		s.Wins++
	case Lose:
		s.Losses++
	default:
		s.Draws++
	}
}
