package session

import "github.com/samdwyer/rpgschool/internal/entity"

// InteractionResult is what an interaction attempt produced.
type InteractionResult struct {
	Target      entity.Character // nil when nobody was adjacent
	Description string
	Text        string
}

// Found reports whether an adjacent character answered.
func (r InteractionResult) Found() bool {
	return r.Target != nil
}

// Status formats the result for the status line.
func (r InteractionResult) Status() string {
	if !r.Found() {
		return NoTargetStatus
	}
	return r.Description + ": " + r.Text
}

// TriggerInteraction asks the character next to the player to describe itself and talk.
func (s *Session) TriggerInteraction() InteractionResult {
	target := s.FindAdjacent(s.player.Position())
	if target == nil {
		return InteractionResult{}
	}
	return InteractionResult{
		Target:      target,
		Description: target.Describe(),
		Text:        target.Interact(),
	}
}

// BeginTyping binds the character next to the player as the message target
// and clears the input buffer. It returns false, changing nothing, when nobody is adjacent.
func (s *Session) BeginTyping() (entity.Character, bool) {
	target := s.FindAdjacent(s.player.Position())
	if target == nil {
		return nil, false
	}
	s.target = target
	s.input = s.input[:0]
	return target, true
}

// Typing reports whether a message target is bound.
func (s *Session) Typing() bool { return s.target != nil }

// Target returns the bound message target, or nil.
func (s *Session) Target() entity.Character { return s.target }

// Input returns the pending message text.
func (s *Session) Input() string { return string(s.input) }

// AppendInput adds a character to the pending message.
func (s *Session) AppendInput(r rune) {
	s.input = append(s.input, r)
}

// Backspace removes the last pending character, if any.
func (s *Session) Backspace() {
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// ClearInput empties the pending message.
func (s *Session) ClearInput() {
	s.input = s.input[:0]
}

// SubmitMessage delivers text to the bound target along with the player's
// inventory, unbinds the target and returns the reply.
// It panics when no target is bound: only text-entry mode may call it.
func (s *Session) SubmitMessage(text string) string {
	if s.target == nil {
		panic("session: SubmitMessage called without a typing target")
	}
	target := s.target
	s.target = nil
	reply := target.HandleMessage(text, s.player.Inventory())
	s.releaseGatekeepers()
	return reply
}
