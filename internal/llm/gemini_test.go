package llm

import "testing"

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // literal ID
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	s := geminiSchema(entrySchema().Definition)

	if s.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 3 {
		t.Fatalf("properties = %d, want 3", len(s.Properties))
	}
	if s.Properties["word"].Type != "STRING" {
		t.Errorf("word type = %s, want STRING", s.Properties["word"].Type)
	}
	if s.Properties["frequency"].Type != "INTEGER" {
		t.Errorf("frequency type = %s, want INTEGER", s.Properties["frequency"].Type)
	}
	if got := s.Properties["level"].Enum; len(got) != 3 {
		t.Errorf("level enum = %v, want the three CEFR levels", got)
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v, want word and frequency", s.Required)
	}
}

func TestGeminiSchemaArrayItems(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	})
	if s.Type != "ARRAY" {
		t.Fatalf("type = %s, want ARRAY", s.Type)
	}
	if s.Items == nil || s.Items.Type != "STRING" {
		t.Fatalf("items = %+v, want STRING items", s.Items)
	}
}
