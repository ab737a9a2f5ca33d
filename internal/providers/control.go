package providers

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

// ControlResponder is a deterministic stand-in for an external backend.
// It plays the responder side of the game honestly: it picks a secret
// number when it sees the setup turn, then answers every guess with the
// exact two-token protocol. Used for baseline runs (the measured optimum
// for a consistent responder) and in tests.
//
// The secret lives on the instance, never in package state, so
// independent games on separate instances can run in parallel.
type ControlResponder struct {
	mu          sync.Mutex
	rng         *rand.Rand
	numberRange int
	secret      int
}

// NewControlResponder creates a control responder picking from [1, n].
// Tests pass a fixed-seed rng for reproducibility; nil falls back to a
// time-seeded source.
func NewControlResponder(n int, rng *rand.Rand) *ControlResponder {
	if n < 1 {
		n = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ControlResponder{
		rng:         rng,
		numberRange: n,
	}
}

// Name returns "control".
func (c *ControlResponder) Name() string {
	return "control"
}

// Model returns "control"; no remote model is involved.
func (c *ControlResponder) Model() string {
	return "control"
}

// Respond inspects the most recent user turn. The setup sentinel starts a
// fresh game with a new secret; a numeric turn is a guess; anything else
// (including the correction prompt) gets a conforming negative so the
// session never stalls.
func (c *ControlResponder) Respond(_ context.Context, conv game.Conversation) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := conv.LastUser()
	if !ok {
		return "not correct", nil
	}

	if strings.Contains(last, game.SetupSentinel) {
		c.secret = c.rng.Intn(c.numberRange) + 1
		return "Okay, I have a number.", nil
	}

	guess, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return "not correct", nil
	}

	if guess == c.secret {
		return "correct", nil
	}
	return "not correct", nil
}
