// Package providers implements responder adapters for the guessing-game
// experiment: one per conversational backend, plus a deterministic control
// responder. Adapters hide backend request/response shapes behind the
// game.Responder interface so the session driver never branches on the
// provider.
package providers

import (
	"context"
	"time"
)

// defaultMaxRetries and defaultRetryDelay apply when the config leaves
// retry settings unset.
const (
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// maxReplyTokens caps each completion. The protocol needs two words; the
// cap only keeps a rambling responder from burning budget.
const maxReplyTokens = 1000

// baseResponder holds shared retry configuration for responder adapters.
type baseResponder struct {
	name       string
	maxRetries int
	retryDelay time.Duration
}

func newBaseResponder(name string, maxRetries int, retryDelay time.Duration) baseResponder {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	return baseResponder{
		name:       name,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// retry executes op with linear backoff while IsRetryable says the failure
// is transient. Retries happen before any reply exists, so the
// conversation transcript is never touched by a retried call; once the
// budget is spent the last error propagates and ends the game.
func (b *baseResponder) retry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 1; attempt <= b.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := op()
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsRetryable(err) || attempt >= b.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(b.retryDelay * time.Duration(attempt)):
		}
	}
	return lastErr
}
