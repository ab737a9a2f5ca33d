package providers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/urban-eriksson/LLM-guessing-game/internal/config"
	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

// New builds the responder named by cfg.Provider. An unknown identifier
// or a missing credential fails here, at startup, before any game runs.
func New(cfg *config.Config) (game.Responder, error) {
	switch cfg.Provider {
	case "anthropic":
		pc := cfg.ProviderConfig("anthropic")
		return NewAnthropicResponder(AnthropicConfig{
			APIKey:     pc.APIKey,
			BaseURL:    pc.BaseURL,
			Model:      cfg.ResolvedModel(),
			MaxRetries: cfg.Retry.MaxRetries,
			RetryDelay: cfg.Retry.Delay,
		})

	case "openai":
		pc := cfg.ProviderConfig("openai")
		return NewOpenAIResponder(OpenAIConfig{
			APIKey:     pc.APIKey,
			BaseURL:    pc.BaseURL,
			Model:      cfg.ResolvedModel(),
			MaxRetries: cfg.Retry.MaxRetries,
			RetryDelay: cfg.Retry.Delay,
		})

	case "google":
		pc := cfg.ProviderConfig("google")
		return NewGoogleResponder(GoogleConfig{
			APIKey:     pc.APIKey,
			Model:      cfg.ResolvedModel(),
			MaxRetries: cfg.Retry.MaxRetries,
			RetryDelay: cfg.Retry.Delay,
		})

	case "control":
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return NewControlResponder(cfg.NumberRange, rng), nil

	default:
		return nil, fmt.Errorf("unknown provider %q (want anthropic, openai, google, or control)", cfg.Provider)
	}
}

// ModelName reports the model identifier a responder runs, falling back
// to its provider name when the adapter exposes none.
func ModelName(r game.Responder) string {
	if m, ok := r.(interface{ Model() string }); ok {
		return m.Model()
	}
	return r.Name()
}
