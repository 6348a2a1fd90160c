package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   bool
	}{
		{
			name:      "gemini through openrouter",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name: "namespaced model bypasses friendly names",
			cfg:  OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-sonnet-4"},
			// "claude-sonnet" would be rewritten by the Anthropic map;
			// the OpenRouter form must survive untouched.
			wantModel: "anthropic/claude-sonnet-4",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "google/gemini-2.0-flash-exp",
				BaseURL: "https://proxy.example/v1",
			},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name:    "missing API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.wantModel {
				t.Fatalf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
