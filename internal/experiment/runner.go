// Package experiment runs repeated game sessions against one responder
// and aggregates the per-attempt outcome histogram.
package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
	"github.com/urban-eriksson/LLM-guessing-game/internal/observability"
	"github.com/urban-eriksson/LLM-guessing-game/internal/results"
)

// Config sizes one experiment run.
type Config struct {
	// Provider and Model identify the responder in the stored record.
	Provider string
	Model    string

	// NumberRange is N; every game guesses a fresh permutation of [1, N].
	NumberRange int

	// NumGames is the number of independent, strictly sequential games.
	NumGames int

	// MaxRepairs is the per-guess correction budget (0 = unbounded).
	MaxRepairs int

	// Rand seeds the guess permutations. Defaults to a time-seeded
	// source.
	Rand *rand.Rand

	// Now stamps the result record. Defaults to time.Now; tests pin it.
	Now func() time.Time
}

// Runner executes games one at a time and owns the attempt histogram.
// Nothing mutates the histogram during a game; buckets change only
// between games, so no locking is needed.
type Runner struct {
	responder game.Responder
	logger    *observability.Logger
	cfg       Config
}

// New creates a runner for one experiment.
func New(responder game.Responder, logger *observability.Logger, cfg Config) *Runner {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = observability.NewLogger(observability.LogConfig{})
	}
	return &Runner{
		responder: responder,
		logger:    logger,
		cfg:       cfg,
	}
}

// Run plays every configured game and returns the aggregate snapshot.
// A game that exhausts its permutation or its repair budget counts as
// failed and the run continues; a transport failure aborts the run.
func (r *Runner) Run(ctx context.Context) (*results.Result, error) {
	counts := make([]int, r.cfg.NumberRange)
	failed := 0

	r.logger.Info(ctx, "starting experiment",
		"provider", r.cfg.Provider, "model", r.cfg.Model,
		"number_range", r.cfg.NumberRange, "num_games", r.cfg.NumGames)

	for i := 1; i <= r.cfg.NumGames; i++ {
		gameCtx := observability.AddGameID(ctx, uuid.NewString())
		r.logger.Info(gameCtx, "game starting", "game", i)

		session := game.NewSession(r.responder, game.SessionConfig{
			NumberRange: r.cfg.NumberRange,
			MaxRepairs:  r.cfg.MaxRepairs,
			Rand:        r.cfg.Rand,
			Logger:      r.logger,
		})

		outcome, err := session.Play(gameCtx)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i, err)
		}

		switch outcome.Status {
		case game.StatusSuccess:
			counts[outcome.Attempts-1]++
			r.logger.Info(gameCtx, "game completed",
				"game", i, "attempts", outcome.Attempts, "repairs", outcome.Repairs)
		default:
			failed++
			r.logger.Warn(gameCtx, "game failed",
				"game", i, "status", outcome.Status.String(), "repairs", outcome.Repairs)
		}
	}

	res := NewResult(r.cfg, r.cfg.Now(), counts, failed)
	r.logger.Info(ctx, "experiment finished",
		"completed", res.GamesCompleted, "failed", res.GamesFailed)
	return res, nil
}
