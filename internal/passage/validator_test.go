package passage

import (
	"fmt"
	"strings"
	"testing"
)

// validDoc builds the minimal document the simple policy accepts: a title,
// 15 distinct (n) paragraphs, 20 open-ended questions, 20 answers.
func validDoc() string {
	var b strings.Builder
	b.WriteString("The Hidden Language of Mycelial Networks\n\n")
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "(%d) Paragraph %d discusses fungal communication in detail.\n\n", i, i)
	}
	b.WriteString("Questions\n\n")
	b.WriteString("A) Short Answer Questions\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. What does paragraph %d explain?\n\n", i, i)
	}
	b.WriteString("Answer Key\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. It explains point %d.\n", i, i)
	}
	return b.String()
}

func TestSimple_MinimalValidDocument(t *testing.T) {
	r := NewValidator(SimplePolicy()).Validate(validDoc())

	if !r.IsValid {
		t.Fatalf("expected valid, got issues: %v", r.Issues)
	}
	if len(r.Issues) != 0 {
		t.Errorf("expected no issues, got %v", r.Issues)
	}
	if r.Stats.Paragraphs != 15 {
		t.Errorf("paragraphs = %d, want 15", r.Stats.Paragraphs)
	}
	if r.Stats.TotalQuestions != 20 {
		t.Errorf("totalQuestions = %d, want 20", r.Stats.TotalQuestions)
	}
	if r.Stats.TotalAnswers != 20 {
		t.Errorf("totalAnswers = %d, want 20", r.Stats.TotalAnswers)
	}
	if r.Score != 100 {
		t.Errorf("score = %d, want 100", r.Score)
	}
}

func TestSimple_ForbiddenMultipleChoice(t *testing.T) {
	doc := strings.Replace(validDoc(),
		"5. What does paragraph 5 explain?\n",
		"5. What does paragraph 5 explain?\nA) the soil\nB) the roots\nC) the spores\nD) the canopy\n",
		1)

	r := NewValidator(SimplePolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid: document contains a four-option run")
	}
	if !hasIssue(r, "multiple choice options found") {
		t.Errorf("expected multiple-choice issue, got %v", r.Issues)
	}
}

func TestSimple_ParagraphShortfall(t *testing.T) {
	var b strings.Builder
	b.WriteString("Title\n\n")
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&b, "(%d) Text.\n\n", i)
	}
	b.WriteString("Questions\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. Q?\n", i)
	}
	b.WriteString("Answer Key\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. A.\n", i)
	}

	r := NewValidator(SimplePolicy()).Validate(b.String())
	if r.IsValid {
		t.Fatal("expected invalid with 10 paragraphs")
	}
	if !hasIssue(r, "need 15 paragraphs (found 10)") {
		t.Errorf("expected paragraph shortfall issue, got %v", r.Issues)
	}
}

func TestSimple_DuplicateMarkersCollapse(t *testing.T) {
	doc := strings.Replace(validDoc(), "(15)", "(14)", 1)

	r := NewValidator(SimplePolicy()).Validate(doc)
	if r.Stats.Paragraphs != 14 {
		t.Errorf("paragraphs = %d, want 14 (duplicates collapse)", r.Stats.Paragraphs)
	}
	if r.IsValid {
		t.Error("expected invalid: only 14 distinct markers")
	}
}

func TestSimple_MissingBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		remove  string
		message string
	}{
		{"no questions", "Questions\n\n", "Questions section missing"},
		{"no answer key", "Answer Key\n\n", "Answer Key section missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(validDoc(), tt.remove, "", 1)
			r := NewValidator(SimplePolicy()).Validate(doc)
			if r.IsValid {
				t.Fatal("expected invalid")
			}
			if !hasIssue(r, tt.message) {
				t.Errorf("expected issue %q, got %v", tt.message, r.Issues)
			}
		})
	}
}

func TestSimple_MismatchedCounts(t *testing.T) {
	// 20 questions but only 16 answers: difference of 4 exceeds tolerance 2.
	doc := validDoc()
	for i := 17; i <= 20; i++ {
		doc = strings.Replace(doc, fmt.Sprintf("%d. It explains point %d.\n", i, i), "", 1)
	}

	r := NewValidator(SimplePolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid")
	}
	if !hasIssue(r, "question count (20) doesn't match answer count (16)") {
		t.Errorf("expected count mismatch issue, got %v", r.Issues)
	}
}

func TestScore_ClampedToRange(t *testing.T) {
	docs := map[string]string{
		"empty":   "",
		"garbage": "no structure here at all",
		"valid":   validDoc(),
	}
	for _, cfg := range []PolicyConfig{SimplePolicy(), DetailedPolicy()} {
		v := NewValidator(cfg)
		for name, doc := range docs {
			r := v.Validate(doc)
			if r.Score < 0 || r.Score > 100 {
				t.Errorf("%s: score %d out of range", name, r.Score)
			}
		}
	}
}

func TestValidate_FreshReportPerCall(t *testing.T) {
	v := NewValidator(SimplePolicy())
	a := v.Validate(validDoc())
	b := v.Validate("")
	if a == b {
		t.Fatal("expected distinct reports")
	}
	if !a.IsValid || b.IsValid {
		t.Error("reports should not share state")
	}
}

func hasIssue(r *Report, substr string) bool {
	for _, issue := range r.Issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}
