// Package config loads and validates experiment configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the main configuration structure for an experiment run.
type Config struct {
	// Provider selects the responder backend: "anthropic", "openai",
	// "google", or "control".
	Provider string `yaml:"provider"`

	// Model overrides the per-provider model setting when non-empty.
	Model string `yaml:"model"`

	// NumberRange is N: the responder picks from [1, N].
	NumberRange int `yaml:"number_range"`

	// NumGames is the number of independent games per experiment run.
	NumGames int `yaml:"num_games"`

	// ResultsDir is where result records are written.
	ResultsDir string `yaml:"results_dir"`

	Repair    RepairConfig              `yaml:"repair"`
	Retry     RetryConfig               `yaml:"retry"`
	Providers map[string]ProviderConfig `yaml:"providers"`
	Logging   LoggingConfig             `yaml:"logging"`
}

// RepairConfig bounds the per-guess correction sub-loop.
type RepairConfig struct {
	// MaxAttempts is the correction budget per guess. Zero disables the
	// cap, reproducing the original unbounded behavior.
	MaxAttempts int `yaml:"max_attempts"`
}

// RetryConfig tunes adapter-level transport retries.
type RetryConfig struct {
	MaxRetries int           `yaml:"max_retries"`
	Delay      time.Duration `yaml:"delay"`
}

// ProviderConfig holds per-backend credentials and model selection.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file or flag overrides
// a setting.
func Default() *Config {
	return &Config{
		Provider:    "control",
		NumberRange: 10,
		NumGames:    100,
		ResultsDir:  "results",
		Repair:      RepairConfig{MaxAttempts: 5},
		Retry:       RetryConfig{MaxRetries: 3, Delay: time.Second},
		Providers:   map[string]ProviderConfig{},
		Logging:     LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file over the defaults. Environment
// references like ${ANTHROPIC_API_KEY} are expanded before parsing so
// credentials can stay out of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants the rest of the program relies on. It runs
// at startup, before any game.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if c.NumberRange < 1 {
		return fmt.Errorf("number_range must be at least 1, got %d", c.NumberRange)
	}
	if c.NumGames < 1 {
		return fmt.Errorf("num_games must be at least 1, got %d", c.NumGames)
	}
	if c.Repair.MaxAttempts < 0 {
		return fmt.Errorf("repair.max_attempts must not be negative, got %d", c.Repair.MaxAttempts)
	}
	return nil
}

// envKeys maps provider identifiers to their conventional credential
// environment variables.
var envKeys = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"google":    "GOOGLE_API_KEY",
}

// ProviderConfig returns the per-backend settings for name, falling back
// to the conventional environment variable when the file carries no key.
func (c *Config) ProviderConfig(name string) ProviderConfig {
	pc := c.Providers[name]
	if pc.APIKey == "" {
		if env, ok := envKeys[name]; ok {
			pc.APIKey = os.Getenv(env)
		}
	}
	return pc
}

// ResolvedModel returns the model for the active provider: the top-level
// override wins, then the per-provider setting, then the adapter default
// (empty string).
func (c *Config) ResolvedModel() string {
	if c.Model != "" {
		return c.Model
	}
	return c.Providers[c.Provider].Model
}
