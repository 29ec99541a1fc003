package game

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rpgschool/internal/input"
	"github.com/samdwyer/rpgschool/internal/session"
	"github.com/samdwyer/rpgschool/internal/telemetry"
)

// Controller routes input events to the session according to the current mode.
type Controller struct {
	session *session.Session
	mode    Mode
	logger  *slog.Logger
}

// NewController creates a controller in ModeNormal.
func NewController(s *session.Session, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		session: s,
		mode:    ModeNormal,
		logger:  logger,
	}
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode { return c.mode }

// Handle applies one event. It returns true when the event asks to quit.
// Events with no meaning in the current mode are ignored.
func (c *Controller) Handle(ctx context.Context, ev input.Event) bool {
	if ev.Kind == input.EventQuit {
		return true
	}

	switch c.mode {
	case ModeNormal:
		c.handleNormal(ctx, ev)
	case ModeTextEntry:
		c.handleTextEntry(ctx, ev)
	}
	return false
}

// handleNormal processes events while moving around.
func (c *Controller) handleNormal(ctx context.Context, ev input.Event) {
	switch ev.Kind {
	case input.EventMove:
		c.move(ctx, ev)
	case input.EventInteract:
		c.interact(ctx)
	case input.EventStartTyping:
		c.startTyping()
	}
}

// handleTextEntry processes events while composing a message.
func (c *Controller) handleTextEntry(ctx context.Context, ev input.Event) {
	switch ev.Kind {
	case input.EventChar:
		c.session.AppendInput(ev.Char)
	case input.EventBackspace:
		c.session.Backspace()
	case input.EventConfirm:
		c.submit(ctx)
	}
}

// move attempts a one-cell step and reports a refused move on the status line.
func (c *Controller) move(ctx context.Context, ev input.Event) {
	_, span := telemetry.Tracer("session").Start(ctx, "session.move")
	defer span.End()

	outcome := c.session.TryMovePlayer(ev.Dir.Delta())
	pos := c.session.Player().Position()
	span.SetAttributes(
		attribute.String("direction", ev.Dir.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("player.x", pos.X),
		attribute.Int("player.y", pos.Y),
	)

	if outcome.Blocked() {
		c.session.SetStatus(outcome.Reason())
	}
}

// interact talks to the adjacent character.
func (c *Controller) interact(ctx context.Context) {
	_, span := telemetry.Tracer("session").Start(ctx, "session.interact")
	defer span.End()

	result := c.session.TriggerInteraction()
	span.SetAttributes(attribute.Bool("found", result.Found()))
	if result.Found() {
		span.SetAttributes(attribute.String("target", result.Target.Name()))
	}

	c.session.SetStatus(result.Status())
}

// startTyping enters text entry when someone is adjacent.
// With nobody adjacent it does nothing, status included.
func (c *Controller) startTyping() {
	target, ok := c.session.BeginTyping()
	if !ok {
		return
	}
	c.mode = ModeTextEntry
	c.logger.Debug("text entry started", "target", target.Name(), "target_id", target.ID())
}

// submit delivers the composed message and returns to normal mode.
func (c *Controller) submit(ctx context.Context) {
	_, span := telemetry.Tracer("session").Start(ctx, "session.message")
	defer span.End()

	text := c.session.Input()
	target := c.session.Target()
	reply := c.session.SubmitMessage(text)

	span.SetAttributes(
		attribute.String("target", target.Name()),
		attribute.Int("message.length", len(text)),
	)
	c.logger.Debug("message submitted", "target", target.Name(), "text", text, "reply", reply)

	c.session.SetStatus(reply)
	c.session.ClearInput()
	c.mode = ModeNormal
}
