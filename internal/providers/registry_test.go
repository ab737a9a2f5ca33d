package providers

import (
	"strings"
	"testing"

	"github.com/urban-eriksson/LLM-guessing-game/internal/config"
)

func TestNewUnknownProvider(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "carrier-pigeon"

	_, err := New(cfg)
	if err == nil {
		t.Fatal("New() with unknown provider succeeded")
	}
	if !strings.Contains(err.Error(), "carrier-pigeon") {
		t.Errorf("error = %v, want the offending provider named", err)
	}
}

func TestNewControl(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "control"

	responder, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if responder.Name() != "control" {
		t.Errorf("Name() = %q, want control", responder.Name())
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "google"} {
		t.Run(provider, func(t *testing.T) {
			t.Setenv("ANTHROPIC_API_KEY", "")
			t.Setenv("OPENAI_API_KEY", "")
			t.Setenv("GOOGLE_API_KEY", "")

			cfg := config.Default()
			cfg.Provider = provider
			if _, err := New(cfg); err == nil {
				t.Errorf("New(%s) without credentials succeeded", provider)
			}
		})
	}
}

func TestNewResolvesModelOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "anthropic"
	cfg.Model = "claude-opus-4-1"
	cfg.Providers = map[string]config.ProviderConfig{
		"anthropic": {APIKey: "test-key"},
	}

	responder, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := ModelName(responder); got != "claude-opus-4-1" {
		t.Errorf("ModelName() = %q, want the override", got)
	}
}

func TestNewDefaultModels(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = "openai"
	cfg.Providers = map[string]config.ProviderConfig{
		"openai": {APIKey: "test-key"},
	}

	responder, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := ModelName(responder); got != defaultOpenAIModel {
		t.Errorf("ModelName() = %q, want %q", got, defaultOpenAIModel)
	}
}
