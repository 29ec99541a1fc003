package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/rpgschool/internal/entity"
	"github.com/samdwyer/rpgschool/internal/gamedata"
	"github.com/samdwyer/rpgschool/internal/input"
	"github.com/samdwyer/rpgschool/internal/session"
	"github.com/samdwyer/rpgschool/internal/world"
)

func newTestController(t *testing.T, player world.Position, npcs ...entity.Character) (*Controller, *session.Session) {
	t.Helper()
	grid, err := world.NewGrid(world.DefaultWidth, world.DefaultHeight)
	if err != nil {
		t.Fatal(err)
	}
	s, err := session.New(grid, entity.NewPlayer(player), npcs)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(s, nil), s
}

func typeText(ctx context.Context, c *Controller, text string) {
	for _, r := range text {
		c.Handle(ctx, input.Char(r))
	}
}

func TestControllerStartsNormal(t *testing.T) {
	c, _ := newTestController(t, world.Position{X: 3, Y: 3})
	if c.Mode() != ModeNormal {
		t.Errorf("Mode() = %v, want ModeNormal", c.Mode())
	}
}

func TestControllerQuit(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 2, Y: 2}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))

	if !c.Handle(ctx, input.Quit()) {
		t.Error("Quit in normal mode did not quit")
	}

	c.Handle(ctx, input.StartTyping())
	if c.Mode() != ModeTextEntry {
		t.Fatalf("Mode() = %v, want ModeTextEntry", c.Mode())
	}
	if !c.Handle(ctx, input.Quit()) {
		t.Error("Quit in text entry did not quit")
	}
	if !s.Typing() {
		t.Error("quitting unbound the typing target")
	}
}

func TestControllerMoveStatus(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 1, Y: 1}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))

	// A successful move leaves the status alone
	tests := []struct {
		dir    world.Direction
		status string
		end    world.Position
	}{
		{world.Up, "You can't walk through walls!", world.Position{X: 1, Y: 1}},
		{world.Right, "You can't walk through people!", world.Position{X: 1, Y: 1}},
		{world.Down, "You can't walk through people!", world.Position{X: 1, Y: 2}},
	}

	for _, tt := range tests {
		c.Handle(ctx, input.Move(tt.dir))
		if s.Status() != tt.status {
			t.Errorf("after %v Status() = %q, want %q", tt.dir, s.Status(), tt.status)
		}
		if got := s.Player().Position(); got != tt.end {
			t.Errorf("after %v player at %v, want %v", tt.dir, got, tt.end)
		}
	}
	if c.Mode() != ModeNormal {
		t.Errorf("Mode() = %v, want ModeNormal", c.Mode())
	}
}

func TestControllerInteractNoTarget(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 3, Y: 3}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))

	c.Handle(ctx, input.Interact())

	if got := s.Status(); got != "nobody to talk to, stand next to someone." {
		t.Errorf("Status() = %q", got)
	}
	if c.Mode() != ModeNormal {
		t.Errorf("Mode() = %v, want ModeNormal", c.Mode())
	}
}

func TestControllerInteractWhiteboard(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 3, Y: 3}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))

	// Walk next to the board: (3,3) -> (3,2) -> (2,2)
	c.Handle(ctx, input.Move(world.Up))
	c.Handle(ctx, input.Move(world.Left))
	if got := s.Player().Position(); got != (world.Position{X: 2, Y: 2}) {
		t.Fatalf("player at %v, want {2 2}", got)
	}

	c.Handle(ctx, input.Interact())
	if got, want := s.Status(), "Dirty whiteboard: a permanent drawing on the whiteboard... oops! (type T to clean)"; got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}

func TestControllerStartTypingWithoutNeighbourIsNoop(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 3, Y: 3}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))
	s.SetStatus("previous")

	c.Handle(ctx, input.StartTyping())

	if c.Mode() != ModeNormal || s.Typing() {
		t.Errorf("Mode() = %v, Typing() = %v, want ModeNormal and not typing", c.Mode(), s.Typing())
	}
	if s.Status() != "previous" {
		t.Errorf("Status() = %q, want unchanged", s.Status())
	}
}

func TestControllerTypingRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 3, Y: 2},
		entity.NewGeneric("Bob", 40, world.Position{X: 3, Y: 1}, gamedata.MustColor("gray"), "hey"))

	c.Handle(ctx, input.StartTyping())
	if c.Mode() != ModeTextEntry {
		t.Fatalf("Mode() = %v, want ModeTextEntry", c.Mode())
	}

	typeText(ctx, c, "abc")
	c.Handle(ctx, input.Backspace())
	if s.Input() != "ab" {
		t.Errorf("Input() = %q, want %q", s.Input(), "ab")
	}

	c.Handle(ctx, input.Confirm())
	if c.Mode() != ModeNormal {
		t.Errorf("Mode() = %v after Confirm, want ModeNormal", c.Mode())
	}
	if s.Input() != "" || s.Typing() {
		t.Errorf("Input() = %q, Typing() = %v after Confirm", s.Input(), s.Typing())
	}
	if s.Status() != "Bob echoes: ab" {
		t.Errorf("Status() = %q, want %q", s.Status(), "Bob echoes: ab")
	}
}

func TestControllerIgnoresEventsOfOtherMode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		typing bool
		events []input.Event
		mode   Mode
	}{
		{"normal events while typing", true, []input.Event{input.Move(world.Down), input.Interact(), input.StartTyping()}, ModeTextEntry},
		{"text events while normal", false, []input.Event{input.Char('x'), input.Backspace(), input.Confirm()}, ModeNormal},
	}

	for _, tt := range tests {
		c, s := newTestController(t, world.Position{X: 2, Y: 2}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))
		if tt.typing {
			c.Handle(ctx, input.StartTyping())
		}
		for _, ev := range tt.events {
			c.Handle(ctx, ev)
		}

		if c.Mode() != tt.mode {
			t.Errorf("%s: Mode() = %v, want %v", tt.name, c.Mode(), tt.mode)
		}
		if got := s.Player().Position(); got != (world.Position{X: 2, Y: 2}) {
			t.Errorf("%s: player moved to %v", tt.name, got)
		}
		if s.Input() != "" || s.Status() != session.InitialStatus {
			t.Errorf("%s: Input() = %q, Status() = %q", tt.name, s.Input(), s.Status())
		}
	}
}

func TestControllerBackspaceOnEmptyBuffer(t *testing.T) {
	ctx := context.Background()
	c, s := newTestController(t, world.Position{X: 2, Y: 2}, entity.NewWhiteboard(world.Position{X: 2, Y: 1}))

	c.Handle(ctx, input.StartTyping())
	c.Handle(ctx, input.Backspace())

	if c.Mode() != ModeTextEntry || s.Input() != "" {
		t.Errorf("Mode() = %v, Input() = %q", c.Mode(), s.Input())
	}
}

func TestControllerCleansWhiteboard(t *testing.T) {
	ctx := context.Background()
	wb := entity.NewWhiteboard(world.Position{X: 2, Y: 1})
	c, s := newTestController(t, world.Position{X: 2, Y: 2}, wb)

	c.Handle(ctx, input.StartTyping())
	typeText(ctx, c, "please reinig this")
	c.Handle(ctx, input.Confirm())

	if !wb.IsClean() {
		t.Fatal("whiteboard not clean")
	}
	if got := s.Status(); got != "You scrub as hard as you can... the whiteboard is clean!" {
		t.Errorf("Status() = %q", got)
	}

	c.Handle(ctx, input.Interact())
	if got := s.Status(); got != "Clean whiteboard: the whiteboard is clean again!" {
		t.Errorf("Status() = %q", got)
	}
}

func TestControllerBeatGatekeeper(t *testing.T) {
	ctx := context.Background()
	aside := world.Position{X: 18, Y: 10}
	siebe := entity.NewStudent("Siebe", 16, "3B", world.Position{X: 17, Y: 10}, "", entity.GameRockPaperScissors, rand.New(rand.NewSource(3)))
	siebe.Aside = &aside
	c, s := newTestController(t, world.Position{X: 17, Y: 9}, siebe)

	for i := 0; i < 100 && siebe.Score().Wins == 0; i++ {
		c.Handle(ctx, input.StartTyping())
		typeText(ctx, c, "rock")
		c.Handle(ctx, input.Confirm())
	}
	if siebe.Score().Wins == 0 {
		t.Fatal("no win in 100 rounds")
	}
	if !strings.HasSuffix(s.Status(), "You win! Siebe steps aside.") {
		t.Errorf("Status() = %q", s.Status())
	}
	if siebe.Position() != aside {
		t.Errorf("Siebe at %v, want %v", siebe.Position(), aside)
	}

	// Through the door at (17,11) into the gym
	for i := 0; i < 3; i++ {
		c.Handle(ctx, input.Move(world.Down))
	}
	if got := s.Snapshot().Location; got != "Gym" {
		t.Errorf("player at %v in %q, want Gym", s.Player().Position(), got)
	}
}
