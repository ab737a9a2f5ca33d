package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

const defaultGoogleModel = "gemini-2.5-flash"

// GoogleResponder adapts Google's Gemini API to the game.Responder
// interface with blocking, non-streaming calls. Gemini has no assistant
// role; assistant turns map to the "model" role.
type GoogleResponder struct {
	client *genai.Client
	model  string
	base   baseResponder
}

// GoogleConfig holds configuration for creating a GoogleResponder.
type GoogleConfig struct {
	// APIKey is the Google AI Studio API key (required).
	APIKey string

	// Model is the model identifier. Defaults to defaultGoogleModel.
	Model string

	// MaxRetries bounds transport retries for transient failures.
	MaxRetries int

	// RetryDelay is the base delay between retries (linear backoff).
	RetryDelay time.Duration
}

// NewGoogleResponder creates a Gemini-backed responder.
func NewGoogleResponder(cfg GoogleConfig) (*GoogleResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("google: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultGoogleModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("google: failed to create client: %w", err)
	}

	return &GoogleResponder{
		client: client,
		model:  cfg.Model,
		base:   newBaseResponder("google", cfg.MaxRetries, cfg.RetryDelay),
	}, nil
}

// Name returns "google".
func (p *GoogleResponder) Name() string {
	return "google"
}

// Model returns the configured model identifier.
func (p *GoogleResponder) Model() string {
	return p.model
}

// Respond sends the conversation and returns the next message text.
// System turns become the system instruction; the contents array carries
// user and model turns.
func (p *GoogleResponder) Respond(ctx context.Context, conv game.Conversation) (string, error) {
	var contents []*genai.Content
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: maxReplyTokens,
	}

	for _, turn := range conv {
		switch turn.Role {
		case game.RoleSystem:
			config.SystemInstruction = &genai.Content{
				Parts: []*genai.Part{{Text: turn.Content}},
			}
		case game.RoleAssistant:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: turn.Content}},
			})
		default:
			contents = append(contents, &genai.Content{
				Role:  genai.RoleUser,
				Parts: []*genai.Part{{Text: turn.Content}},
			})
		}
	}

	var resp *genai.GenerateContentResponse
	err := p.base.retry(ctx, func() error {
		r, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
		if err != nil {
			return NewProviderError("google", p.model, err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
