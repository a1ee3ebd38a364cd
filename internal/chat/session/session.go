package session

import (
	"sync"

	"intent-chat-service/internal/chat"
)

// Session is the mutable per-conversation state: an append-only history and
// the tag of the last bot turn. The design allows concurrent requests on the
// same session id, so every state-machine step must run under the session's
// lock to keep history ordering intact.
type Session struct {
	mu      sync.Mutex
	history []chat.Turn
	lastTag string
}

// Lock serializes one dialogue step. Callers hold it across the whole
// read-decide-append sequence.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session.
func (s *Session) Unlock() { s.mu.Unlock() }

// State derives the dialogue state bucket from the last bot tag.
// Caller must hold the lock.
func (s *Session) State() chat.State {
	return chat.StateForTag(s.lastTag)
}

// LastTag returns the tag of the most recent bot turn, or "" before the
// first exchange. Caller must hold the lock.
func (s *Session) LastTag() string {
	return s.lastTag
}

// Append adds turns to the history. Bot turns advance lastTag.
// Caller must hold the lock.
func (s *Session) Append(turns ...chat.Turn) {
	for _, turn := range turns {
		s.history = append(s.history, turn)
		if turn.Role == chat.RoleBot {
			s.lastTag = turn.Tag
		}
	}
}

// History returns a copy of the conversation turns in call order.
// Caller must hold the lock.
func (s *Session) History() []chat.Turn {
	out := make([]chat.Turn, len(s.history))
	copy(out, s.history)
	return out
}
