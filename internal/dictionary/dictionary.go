// Package dictionary looks up English vocabulary with Turkish explanations,
// for words encountered in generated passages.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/keremugurlu/readingen/internal/llm"
)

const maxWordLen = 64

const systemPrompt = `Sen sıcak tonlarda konuşan, Türkçe'yi kusursuz kullanan bir sözlük asistanısın.
Kullanıcının verdiği İngilizce kelime için iki bilgi sağlayacaksın:
1) "meaning": Kelimenin Türkçe açıklaması. En az 2 cümle, en fazla 4 cümle olmalı. Gündelik ama öğretici bir tonda yaz.
2) "example": Kelimenin doğal bir İngilizce örnek cümlesi. Cümlede kelimenin kendisi mutlaka geçsin.`

// EntrySchema defines the JSON schema for dictionary lookups.
var EntrySchema = &llm.Schema{
	Name:        "dictionary-entry",
	Description: "A Turkish explanation and English example sentence for one English word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meaning": map[string]any{
				"type":        "string",
				"description": "Turkish explanation of the word, 2-4 sentences",
			},
			"example": map[string]any{
				"type":        "string",
				"description": "A natural English sentence that uses the word itself",
			},
		},
		"required":             []any{"meaning", "example"},
		"additionalProperties": false,
	},
}

// Entry is a dictionary lookup result.
type Entry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
}

// Client performs dictionary lookups through an LLM provider.
type Client struct {
	provider llm.Provider
}

// NewClient creates a dictionary client backed by the given provider.
func NewClient(provider llm.Provider) *Client {
	return &Client{provider: provider}
}

// Lookup fetches the meaning and example sentence for one word.
func (c *Client) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("word is required")
	}
	if len(word) > maxWordLen {
		return nil, fmt.Errorf("word too long: %d characters (max %d)", len(word), maxWordLen)
	}

	ctx = llm.WithPurpose(ctx, "dictionary")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Kelime: %q", word)},
		},
		Schema:      EntrySchema,
		MaxTokens:   512,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup failed: %w", err)
	}

	var out struct {
		Meaning string `json:"meaning"`
		Example string `json:"example"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse dictionary response: %w", err)
	}

	return &Entry{Word: word, Meaning: out.Meaning, Example: out.Example}, nil
}
