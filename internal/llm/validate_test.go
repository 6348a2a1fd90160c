package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func entrySchema() *Schema {
	return &Schema{
		Name:        "word-entry",
		Description: "A dictionary entry for an academic word",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word":      map[string]any{"type": "string"},
				"frequency": map[string]any{"type": "integer", "minimum": 0},
				"level":     map[string]any{"type": "string", "enum": []any{"B2", "C1", "C2"}},
			},
			"required": []any{"word", "frequency"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "complete entry",
			raw:  `{"word":"ubiquitous","frequency":12,"level":"C1"}`,
		},
		{
			name: "optional level omitted",
			raw:  `{"word":"mitigate","frequency":8}`,
		},
		{
			name:    "required frequency missing",
			raw:     `{"word":"salient"}`,
			wantErr: true,
		},
		{
			name:    "frequency has wrong type",
			raw:     `{"word":"tenuous","frequency":"often"}`,
			wantErr: true,
		},
		{
			name:    "level outside the CEFR enum",
			raw:     `{"word":"cat","frequency":99,"level":"A1"}`,
			wantErr: true,
		},
		{
			name:    "malformed JSON",
			raw:     `{not json}`,
			wantErr: true,
		},
		{
			name:    "empty response",
			raw:     ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(entrySchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaPassesAnything(t *testing.T) {
	// Passage generation sends no schema; free text must flow through.
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NestedDefinition(t *testing.T) {
	schema := &Schema{
		Name:        "word-senses",
		Description: "A word with its list of senses",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"entry": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{"type": "string"},
					},
					"required": []any{"word"},
				},
				"senses": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"entry", "senses"},
		},
	}

	ok := json.RawMessage(`{"entry":{"word":"bank"},"senses":["riverbank","financial institution"]}`)
	if err := validateResponse(schema, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := json.RawMessage(`{"entry":{"word":"bank"},"senses":[1,2]}`)
	if err := validateResponse(schema, bad); err == nil {
		t.Fatal("expected error for non-string senses")
	}
}
