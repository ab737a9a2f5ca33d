package providers

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/urban-eriksson/LLM-guessing-game/internal/game"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIResponder adapts OpenAI's chat completions API to the
// game.Responder interface with blocking, non-streaming calls.
type OpenAIResponder struct {
	client *openai.Client
	model  string
	base   baseResponder
}

// OpenAIConfig holds configuration for creating an OpenAIResponder.
type OpenAIConfig struct {
	// APIKey is the OpenAI API authentication key (required).
	APIKey string

	// BaseURL overrides the default API base URL (proxies, Azure-style
	// gateways).
	BaseURL string

	// Model is the model identifier. Defaults to defaultOpenAIModel.
	Model string

	// MaxRetries bounds transport retries for transient failures.
	MaxRetries int

	// RetryDelay is the base delay between retries (linear backoff).
	RetryDelay time.Duration
}

// NewOpenAIResponder creates an OpenAI-backed responder.
func NewOpenAIResponder(cfg OpenAIConfig) (*OpenAIResponder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIResponder{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
		base:   newBaseResponder("openai", cfg.MaxRetries, cfg.RetryDelay),
	}, nil
}

// Name returns "openai".
func (p *OpenAIResponder) Name() string {
	return "openai"
}

// Model returns the configured model identifier.
func (p *OpenAIResponder) Model() string {
	return p.model
}

// Respond sends the conversation and returns the next message text.
// OpenAI keeps system turns in the messages array, so conversion is a
// straight role mapping.
func (p *OpenAIResponder) Respond(ctx context.Context, conv game.Conversation) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conv))
	for _, turn := range conv {
		role := openai.ChatMessageRoleUser
		switch turn.Role {
		case game.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		case game.RoleSystem:
			role = openai.ChatMessageRoleSystem
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: turn.Content,
		})
	}

	var resp openai.ChatCompletionResponse
	err := p.base.retry(ctx, func() error {
		r, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     p.model,
			Messages:  messages,
			MaxTokens: maxReplyTokens,
		})
		if err != nil {
			return p.wrapError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", NewProviderError("openai", p.model, errors.New("completion returned no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIResponder) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		providerErr := NewProviderError("openai", p.model, err).
			WithStatus(apiErr.HTTPStatusCode).
			WithMessage(apiErr.Message)
		if apiErr.Type != "" {
			providerErr = providerErr.WithCode(apiErr.Type)
		}
		return providerErr
	}
	return NewProviderError("openai", p.model, err)
}
