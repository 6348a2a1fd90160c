package passagegen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/keremugurlu/readingen/internal/llm"
)

func TestLLMGenerator_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Title\n\n(1) Text."`),
	})
	g := NewLLMGenerator(mock, BatchConfig())

	raw, err := g.Generate(context.Background(), GenerateInput{Topic: "T", Domain: "D"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "Title\n\n(1) Text." {
		t.Errorf("raw = %q, want unquoted text", raw)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System != systemPrompt {
		t.Error("expected the passage system prompt")
	}
	if req.Schema != nil {
		t.Error("passage generation must not set a schema")
	}
	if req.MaxTokens != BatchConfig().MaxTokens {
		t.Errorf("maxTokens = %d", req.MaxTokens)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("messages = %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[0].Content, "Topic: T") {
		t.Error("user message missing topic")
	}
}

func TestLLMGenerator_NonJSONContentPassedThrough(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("plain text, not a JSON string"),
	})
	g := NewLLMGenerator(mock, BatchConfig())

	raw, err := g.Generate(context.Background(), GenerateInput{Topic: "T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != "plain text, not a JSON string" {
		t.Errorf("raw = %q", raw)
	}
}

func TestLLMGenerator_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> ErrProviderUnavailable
	g := NewLLMGenerator(mock, BatchConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "T"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("error = %v", err)
	}
}
