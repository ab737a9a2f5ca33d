package providers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

const defaultAnthropicModel = "claude-sonnet-4-20250514"

// AnthropicResponder adapts Anthropic's Messages API to the
// game.Responder interface. Calls are blocking, non-streaming round trips:
// the session driver suspends at Respond and resumes with the full reply.
type AnthropicResponder struct {
	client anthropic.Client
	model  string
	base   baseResponder
}

// AnthropicConfig holds configuration for creating an AnthropicResponder.
type AnthropicConfig struct {
	// APIKey is the Anthropic API authentication key (required).
	APIKey string

	// BaseURL overrides the default Anthropic API base URL.
	BaseURL string

	// Model is the model identifier. Defaults to defaultAnthropicModel.
	Model string

	// MaxRetries bounds transport retries for transient failures.
	MaxRetries int

	// RetryDelay is the base delay between retries (linear backoff).
	RetryDelay time.Duration
}

// NewAnthropicResponder creates an Anthropic-backed responder.
func NewAnthropicResponder(cfg AnthropicConfig) (*AnthropicResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultAnthropicModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &AnthropicResponder{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
		base:   newBaseResponder("anthropic", cfg.MaxRetries, cfg.RetryDelay),
	}, nil
}

// Name returns "anthropic".
func (p *AnthropicResponder) Name() string {
	return "anthropic"
}

// Model returns the configured model identifier.
func (p *AnthropicResponder) Model() string {
	return p.model
}

// Respond sends the conversation and returns the next message text.
// System turns are lifted into the request's system field; the Anthropic
// messages array carries user and assistant turns only.
func (p *AnthropicResponder) Respond(ctx context.Context, conv game.Conversation) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxReplyTokens,
	}

	for _, turn := range conv {
		switch turn.Role {
		case game.RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{
				Type: "text",
				Text: turn.Content,
			})
		case game.RoleAssistant:
			params.Messages = append(params.Messages,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(turn.Content)))
		default:
			params.Messages = append(params.Messages,
				anthropic.NewUserMessage(anthropic.NewTextBlock(turn.Content)))
		}
	}

	var message *anthropic.Message
	err := p.base.retry(ctx, func() error {
		m, err := p.client.Messages.New(ctx, params)
		if err != nil {
			return p.wrapError(err)
		}
		message = m
		return nil
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	// An empty reply is a protocol matter, not a transport failure; the
	// session's repair loop deals with it.
	return sb.String(), nil
}

func (p *AnthropicResponder) wrapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		providerErr := NewProviderError("anthropic", p.model, err).
			WithStatus(apiErr.StatusCode)
		if apiErr.RequestID != "" {
			providerErr = providerErr.WithRequestID(apiErr.RequestID)
		}
		return providerErr
	}
	return NewProviderError("anthropic", p.model, err)
}
