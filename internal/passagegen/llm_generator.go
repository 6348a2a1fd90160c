package passagegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/keremugurlu/readingen/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate sends one passage request and returns the raw text. No schema
// is set: the passage format is plain text, enforced downstream by the
// structural validator.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "passage-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(input)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM generation failed: %w", err)
	}

	// Schemaless responses arrive as a JSON-encoded string.
	var raw string
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		raw = string(resp.Content)
	}
	return raw, nil
}
