package dictionary

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/keremugurlu/readingen/internal/llm"
)

func TestLookup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"meaning": "Bir şeyin doygunluk noktasına ulaşması demektir. Kimyada sıkça kullanılır.", "example": "The solution reached saturation after an hour."}`),
	})
	c := NewClient(mock)

	entry, err := c.Lookup(context.Background(), "  saturation ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Word != "saturation" {
		t.Errorf("word = %q, want trimmed input", entry.Word)
	}
	if entry.Meaning == "" || !strings.Contains(entry.Example, "saturation") {
		t.Errorf("entry = %+v", entry)
	}

	req := mock.Calls[0]
	if req.Schema != EntrySchema {
		t.Error("expected the dictionary entry schema")
	}
	if !strings.Contains(req.Messages[0].Content, `"saturation"`) {
		t.Errorf("user message = %q", req.Messages[0].Content)
	}
}

func TestLookup_RejectsBadInput(t *testing.T) {
	c := NewClient(llm.NewMockProvider())

	if _, err := c.Lookup(context.Background(), "   "); err == nil {
		t.Error("expected error for blank word")
	}
	if _, err := c.Lookup(context.Background(), strings.Repeat("a", 65)); err == nil {
		t.Error("expected error for overlong word")
	}
}

func TestLookup_ProviderError(t *testing.T) {
	c := NewClient(llm.NewMockProvider()) // empty queue

	_, err := c.Lookup(context.Background(), "ephemeral")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "dictionary lookup failed") {
		t.Errorf("error = %v", err)
	}
}
