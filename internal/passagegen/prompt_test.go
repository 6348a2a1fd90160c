package passagegen

import (
	"strings"
	"testing"
)

func TestBuildUserPrompt_Defaults(t *testing.T) {
	msg := buildUserPrompt(GenerateInput{
		Topic:  "AI and Cultural Memory",
		Domain: "science/philosophy",
	})

	if !strings.Contains(msg, "Create a C1-level academic reading passage") {
		t.Error("expected C1 default level")
	}
	if !strings.Contains(msg, "Topic: AI and Cultural Memory") {
		t.Error("missing topic")
	}
	if !strings.Contains(msg, "Domain: science/philosophy") {
		t.Error("missing domain")
	}
	if !strings.Contains(msg, "Target: ~3500 words") {
		t.Error("expected long-tier default word count")
	}
	if strings.Contains(msg, "RETRY") {
		t.Error("first attempt must not carry the corrective addendum")
	}
	if strings.Contains(msg, "Box A:") {
		t.Error("side box requirement should be absent by default")
	}
}

func TestBuildUserPrompt_WordCounts(t *testing.T) {
	tests := []struct {
		length Length
		words  int
		want   string
	}{
		{LengthShort, 0, "~2000 words"},
		{LengthMedium, 0, "~2800 words"},
		{LengthLong, 0, "~3500 words"},
		{"", 0, "~3500 words"},
		{LengthShort, 1234, "~1234 words"},
	}
	for _, tt := range tests {
		msg := buildUserPrompt(GenerateInput{Topic: "T", Domain: "D", Length: tt.length, Words: tt.words})
		if !strings.Contains(msg, tt.want) {
			t.Errorf("length=%q words=%d: expected %q in prompt", tt.length, tt.words, tt.want)
		}
	}
}

func TestBuildUserPrompt_Knobs(t *testing.T) {
	msg := buildUserPrompt(GenerateInput{
		Topic:         "T",
		Domain:        "D",
		Level:         LevelB2,
		SideBox:       true,
		QuestionTypes: []string{"Short Answer", "Main Idea"},
	})

	if !strings.Contains(msg, "Create a B2-level academic reading passage") {
		t.Error("expected B2 level")
	}
	if !strings.Contains(msg, "Box A:") {
		t.Error("expected side box requirement")
	}
	if !strings.Contains(msg, "Question categories: Short Answer, Main Idea") {
		t.Error("expected question categories")
	}
}

func TestBuildUserPrompt_CorrectiveAddendum(t *testing.T) {
	msg := buildUserPrompt(GenerateInput{
		Topic:       "T",
		Domain:      "D",
		Attempt:     1,
		Corrections: []string{"multiple choice options found (A), B), C), D) pattern)"},
	})

	if !strings.Contains(msg, "RETRY 2") {
		t.Error("expected retry banner with 1-based attempt number")
	}
	if !strings.Contains(msg, "multiple choice options found") {
		t.Error("expected the previous attempt's issue to be restated")
	}
	if !strings.Contains(msg, "NO A/B/C/D OPTIONS! ONLY QUESTIONS!") {
		t.Error("expected the hard-rule reminder")
	}
}

func TestSystemPrompt_ForbidsMultipleChoice(t *testing.T) {
	if !strings.Contains(systemPrompt, "NO multiple choice") {
		t.Error("system prompt must forbid multiple choice")
	}
	if !strings.Contains(systemPrompt, "(1) through (15)") {
		t.Error("system prompt must pin the paragraph numbering")
	}
}

func TestRandomTopic_DrawsFromPool(t *testing.T) {
	if len(SampleTopics) != 20 {
		t.Fatalf("pool size = %d, want 20", len(SampleTopics))
	}
	for i := 0; i < 50; i++ {
		got := RandomTopic()
		found := false
		for _, s := range SampleTopics {
			if s == got {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomTopic returned %v, not in pool", got)
		}
		if got.Topic == "" || got.Domain == "" {
			t.Fatalf("pool entry has empty fields: %v", got)
		}
	}
}
