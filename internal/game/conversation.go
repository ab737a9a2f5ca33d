// Package game implements the guess-the-number session driver: the
// conversation model, the two-token response protocol, and the state
// machine that runs a single game against a responder.
package game

import "context"

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is one message in a game conversation.
type Turn struct {
	Role    Role
	Content string
}

// Conversation is the ordered, append-only transcript of a single game.
// It is owned by the session that created it and discarded when the game
// ends; transcripts are never persisted.
type Conversation []Turn

// LastUser returns the content of the most recent user turn.
func (c Conversation) LastUser() (string, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Role == RoleUser {
			return c[i].Content, true
		}
	}
	return "", false
}

// Responder produces the next assistant message for a conversation.
// Implementations adapt one conversational backend each and hide its
// request/response shape; the session driver never branches on the
// backend. A returned error means the transport failed and the current
// game cannot continue.
type Responder interface {
	// Name returns the stable lowercase provider identifier.
	Name() string

	// Respond sends the full conversation and blocks until the backend's
	// next message text is available.
	Respond(ctx context.Context, conv Conversation) (string, error)
}
