// Package llm abstracts the text-generation backends behind one Provider
// interface. Passage generation sends schemaless requests and reads the
// completion as raw text; dictionary lookups attach a Schema and get
// validated JSON back. Decorators add transport retry (WithRetry) and
// event logging (WithLogging) around any provider.
package llm

import (
	"context"
	"encoding/json"
)

// Request is a single generation call. Passage prompts are single-turn:
// one user message carrying the topic and requirements, plus the system
// prompt that fixes the document format.
type Request struct {
	// System sets the model's role and the output contract.
	System string

	// Messages is the turn history. This repo always sends exactly one
	// user message; the slice exists so corrective retries could carry
	// prior turns if that ever becomes useful.
	Messages []Message

	// Schema, when set, switches the provider to its structured-output
	// mode and the response Content to schema-validated JSON. Nil means
	// free-form text (the passage path).
	Schema *Schema

	// MaxTokens caps the completion length. Full-length passages run to
	// several thousand tokens, so callers size this generously.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the completion must satisfy. The Name doubles
// as the provider-side identifier (tool name for Anthropic, schema name
// for OpenAI) and as the compile-cache key; kebab-case, e.g.
// "dictionary-entry".
type Schema struct {
	Name        string
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is a completed generation.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw completion text. Schemaless text may arrive as a
	// JSON-quoted string depending on the backend; callers unquote it.
	Content json.RawMessage

	// Usage is the token accounting the provider reported.
	Usage Usage

	// Model is the concrete model that served the request, which can be
	// more specific than the configured one.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Provider is implemented by each backend and by the decorators.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the resolved model identifier, for logging and
	// cost attribution.
	ModelID() string
}
