package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

const fakePassage = "The Physics of Glass\n\n(1) Glass is neither a true solid nor a liquid.\n\nQuestions\n\n1. What is glass?\n\nAnswer Key\n\n1. An amorphous solid."

func TestMockProvider_ReplaysInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(quoteJSON(fakePassage)),
			Usage:   Usage{InputTokens: 900, OutputTokens: 4200, TotalTokens: 5100},
		},
		MockResponse{Content: json.RawMessage(`{"meaning":"her yerde bulunan","example":"Smartphones are ubiquitous."}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		System:   "You generate academic reading passages.",
		Messages: []Message{{Role: RoleUser, Content: "Topic: The Physics of Glass"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var text string
	if err := json.Unmarshal(first.Content, &text); err != nil || text != fakePassage {
		t.Fatalf("first response = %s", first.Content)
	}
	if first.Usage.OutputTokens != 4200 {
		t.Fatalf("output tokens = %d, want 4200", first.Usage.OutputTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: `Define "ubiquitous"`}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var entry struct{ Meaning string }
	if err := json.Unmarshal(second.Content, &entry); err != nil || entry.Meaning == "" {
		t.Fatalf("second response = %s", second.Content)
	}
}

// quoteJSON quotes a string the way a schemaless backend would return it.
func quoteJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestMockProvider_RecordsRequestShape(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`""`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:      "You generate academic reading passages.",
		Messages:    []Message{{Role: RoleUser, Content: "Topic: Urban Heat Islands\nDomain: Climate Science"}},
		MaxTokens:   8192,
		Temperature: 0.7,
	})

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	got := mock.Calls[0]
	if got.MaxTokens != 8192 || got.Temperature != 0.7 {
		t.Errorf("recorded request lost its knobs: %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != RoleUser {
		t.Errorf("messages = %+v, want one user turn", got.Messages)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("model = %q, want mock", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged context purpose = %q, want unknown", p)
	}

	ctx = WithPurpose(ctx, "passage-gen")
	if p := PurposeFrom(ctx); p != "passage-gen" {
		t.Fatalf("purpose = %q, want passage-gen", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamafile"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("READINGEN_LLM_PROVIDER", "gemini")
	t.Setenv("READINGEN_GEMINI_API_KEY", "g-key")
	t.Setenv("READINGEN_GEMINI_MODEL", "gemini-2.5-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Fatalf("provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Fatalf("gemini config = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.Anthropic.Model == "" {
		t.Error("expected default anthropic model to survive")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
