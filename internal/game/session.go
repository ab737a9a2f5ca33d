package game

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/urban-eriksson/LLM-guessing-game/internal/observability"
)

// Status is the terminal state of a finished game.
type Status int

const (
	// StatusSuccess means an affirmative reply arrived; Attempts holds the
	// 1-based index of the winning guess.
	StatusSuccess Status = iota

	// StatusExhausted means the full permutation was played without an
	// affirmative reply. The responder answered inconsistently; the game
	// is recorded as failed, not treated as a crash.
	StatusExhausted

	// StatusProtocolFailure means a single guess burned through the repair
	// budget without producing a conforming reply.
	StatusProtocolFailure
)

// String returns a human-readable name for logging.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusExhausted:
		return "exhausted"
	default:
		return "protocol_failure"
	}
}

// Outcome is the terminal result of one game.
type Outcome struct {
	Status Status

	// Attempts is the 1-based attempt index of the first affirmative
	// reply. Zero unless Status is StatusSuccess.
	Attempts int

	// Repairs counts correction turns issued across the whole game.
	Repairs int
}

// SessionConfig configures a single game session.
type SessionConfig struct {
	// NumberRange is N: the responder picks from [1, N] and the session
	// guesses every value exactly once.
	NumberRange int

	// MaxRepairs bounds consecutive correction turns per guess. Zero
	// means unbounded, reproducing the original experiment's accepted
	// risk of stalling on a persistently non-conforming responder.
	MaxRepairs int

	// Rand supplies the guess permutation. Defaults to a time-seeded
	// source; tests inject a fixed seed.
	Rand *rand.Rand

	// Logger defaults to a text logger on stderr.
	Logger *observability.Logger
}

// Session drives exactly one game against a responder: setup turn, a
// shuffled guess sequence, per-guess conformance repair, and a terminal
// outcome.
type Session struct {
	responder   Responder
	numberRange int
	maxRepairs  int
	rng         *rand.Rand
	logger      *observability.Logger
}

// NewSession creates a session for one game.
func NewSession(responder Responder, cfg SessionConfig) *Session {
	if cfg.NumberRange < 1 {
		cfg.NumberRange = 1
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = observability.NewLogger(observability.LogConfig{})
	}
	return &Session{
		responder:   responder,
		numberRange: cfg.NumberRange,
		maxRepairs:  cfg.MaxRepairs,
		rng:         cfg.Rand,
		logger:      cfg.Logger,
	}
}

// newGuessSequence returns a fresh uniform permutation of [1, N]. Guessing
// in random order keeps the measured attempt distribution about response
// consistency rather than guess ordering.
func newGuessSequence(rng *rand.Rand, n int) []int {
	seq := rng.Perm(n)
	for i := range seq {
		seq[i]++
	}
	return seq
}

// Play runs the game to a terminal state. Transport failures abort the
// game and propagate; a malformed reply is repaired in place and never
// consumes a guess from the sequence.
func (s *Session) Play(ctx context.Context) (Outcome, error) {
	conv := Conversation{{Role: RoleUser, Content: setupPrompt(s.numberRange)}}

	// The setup reply is not parsed; its presence continues the game.
	reply, err := s.responder.Respond(ctx, conv)
	if err != nil {
		return Outcome{}, fmt.Errorf("game setup: %w", err)
	}
	conv = append(conv, Turn{Role: RoleAssistant, Content: reply})
	s.logger.Debug(ctx, "responder ready", "reply", reply)

	attempts := 0
	totalRepairs := 0
	for _, guess := range newGuessSequence(s.rng, s.numberRange) {
		attempts++
		conv = append(conv, Turn{Role: RoleUser, Content: strconv.Itoa(guess)})

		reply, err = s.responder.Respond(ctx, conv)
		if err != nil {
			return Outcome{}, fmt.Errorf("attempt %d: %w", attempts, err)
		}
		conv = append(conv, Turn{Role: RoleAssistant, Content: reply})

		class := Classify(reply)
		repairs := 0
		for class == Malformed {
			repairs++
			if s.maxRepairs > 0 && repairs > s.maxRepairs {
				s.logger.Warn(ctx, "repair budget exhausted",
					"attempt", attempts, "guess", guess, "repairs", totalRepairs, "reply", reply)
				return Outcome{Status: StatusProtocolFailure, Repairs: totalRepairs}, nil
			}
			totalRepairs++
			s.logger.Debug(ctx, "correction needed", "attempt", attempts, "reply", reply)

			conv = append(conv, Turn{Role: RoleUser, Content: correctionPrompt})
			reply, err = s.responder.Respond(ctx, conv)
			if err != nil {
				return Outcome{}, fmt.Errorf("attempt %d correction: %w", attempts, err)
			}
			conv = append(conv, Turn{Role: RoleAssistant, Content: reply})
			class = Classify(reply)
		}

		s.logger.Info(ctx, "attempt",
			"n", attempts, "guess", guess, "reply", reply, "class", class.String())

		if class == Affirmative {
			return Outcome{Status: StatusSuccess, Attempts: attempts, Repairs: totalRepairs}, nil
		}
	}

	s.logger.Warn(ctx, "all numbers tried, no correct answer found")
	return Outcome{Status: StatusExhausted, Repairs: totalRepairs}, nil
}
