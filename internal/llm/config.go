package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and parameterizes the generation backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter",
	// "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including transport retries.
	// Full-length passages take a while to write, hence the large default.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string // friendly name or literal model ID
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string // OpenRouter form, e.g. "google/gemini-2.0-flash-exp"
	BaseURL string
}

// RetryConfig parameterizes the transport-retry decorator.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks models strong enough to hold a 3500-word document
// together; a weaker model saves pennies and then burns them on retries.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-sonnet"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv reads READINGEN_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.Provider = envOr("READINGEN_LLM_PROVIDER", cfg.Provider)

	cfg.Anthropic.APIKey = envOr("READINGEN_ANTHROPIC_API_KEY", cfg.Anthropic.APIKey)
	cfg.Anthropic.Model = envOr("READINGEN_ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.OpenAI.APIKey = envOr("READINGEN_OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.Model = envOr("READINGEN_OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = envOr("READINGEN_OPENAI_BASE_URL", cfg.OpenAI.BaseURL)

	cfg.Gemini.APIKey = envOr("READINGEN_GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.Model = envOr("READINGEN_GEMINI_MODEL", cfg.Gemini.Model)

	cfg.OpenRouter.APIKey = envOr("READINGEN_OPENROUTER_API_KEY", cfg.OpenRouter.APIKey)
	cfg.OpenRouter.Model = envOr("READINGEN_OPENROUTER_MODEL", cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig checks the standard API key variables when READINGEN_*
// configuration is absent, so the tool works out of the box on a machine
// that already has a key exported. Priority: Gemini, OpenAI, Anthropic,
// OpenRouter.
func DiscoverConfig() (Config, bool) {
	candidates := []struct {
		envKey   string
		provider string
		set      func(*Config, string)
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config, k string) { c.Gemini.APIKey = k }},
		{"OPENAI_API_KEY", "openai", func(c *Config, k string) { c.OpenAI.APIKey = k }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config, k string) { c.Anthropic.APIKey = k }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config, k string) { c.OpenRouter.APIKey = k }},
	}

	for _, p := range candidates {
		if k := os.Getenv(p.envKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = p.provider
			p.set(&cfg, k)
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	if c.Provider == "mock" {
		return nil
	}
	key, known := keys[c.Provider]
	if !known {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("READINGEN_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
