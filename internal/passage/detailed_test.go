package passage

import (
	"fmt"
	"strings"
	"testing"
)

// detailedDoc builds a document shaped for the detailed policy: 14
// paragraphs, a short-answer group, and a multiple-choice group whose
// items carry four options each.
func detailedDoc() string {
	var b strings.Builder
	b.WriteString("Ocean Acidification and Marine Ecosystems\n\n")
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&b, "(%d) Paragraph %d covers carbonate chemistry.\n\n", i, i)
	}
	b.WriteString("Questions\n\n")
	b.WriteString("A) Short Answer Questions\n\n")
	for i := 1; i <= 16; i++ {
		fmt.Fprintf(&b, "%d. What does paragraph %d argue?\n\n", i, i)
	}
	b.WriteString("B) Multiple Choice Questions\n\n")
	for i := 17; i <= 22; i++ {
		fmt.Fprintf(&b, "%d. Which factor matters most?\n", i)
		b.WriteString("A) temperature\nB) salinity\nC) acidity\nD) depth\n\n")
	}
	b.WriteString("Answer Key\n\n")
	for i := 1; i <= 22; i++ {
		fmt.Fprintf(&b, "%d. Answer %d.\n", i, i)
	}
	return b.String()
}

func TestDetailed_WellFormedChoicesAccepted(t *testing.T) {
	r := NewValidator(DetailedPolicy()).Validate(detailedDoc())

	if !r.IsValid {
		t.Fatalf("expected valid, got issues: %v", r.Issues)
	}
	if r.Stats.WithoutOptions != 0 {
		t.Errorf("withoutOptions = %d, want 0", r.Stats.WithoutOptions)
	}
	if r.Stats.MultipleChoice != 6 {
		t.Errorf("multipleChoice = %d, want 6", r.Stats.MultipleChoice)
	}
	if r.Stats.ShortAnswer != 16 {
		t.Errorf("shortAnswer = %d, want 16", r.Stats.ShortAnswer)
	}
}

func TestDetailed_MissingOptions(t *testing.T) {
	doc := strings.Replace(detailedDoc(),
		"21. Which factor matters most?\nA) temperature\nB) salinity\nC) acidity\nD) depth\n\n",
		"21. Which factor matters most?\n\n",
		1)

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid: one choice item lost its options")
	}
	if r.Stats.WithoutOptions != 1 {
		t.Errorf("withoutOptions = %d, want 1", r.Stats.WithoutOptions)
	}
	if !hasIssue(r, "missing or malformed options") {
		t.Errorf("expected malformed-options issue, got %v", r.Issues)
	}
}

func TestDetailed_OptionsBeforeQuestion(t *testing.T) {
	doc := strings.Replace(detailedDoc(),
		"22. Which factor matters most?\nA) temperature\nB) salinity\nC) acidity\nD) depth\n\n",
		"A) temperature\nB) salinity\nC) acidity\nD) depth\n22. Which factor matters most?\n\n",
		1)

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid: reversed option order")
	}
	if !hasIssue(r, "before the question") {
		t.Errorf("expected reversed-order issue, got %v", r.Issues)
	}
	if r.Stats.WithoutOptions < 1 {
		t.Errorf("withoutOptions = %d, want >= 1", r.Stats.WithoutOptions)
	}
}

func TestDetailed_OptionsOnQuestionLine(t *testing.T) {
	doc := strings.Replace(detailedDoc(),
		"22. Which factor matters most?\nA) temperature\nB) salinity\nC) acidity\nD) depth\n\n",
		"22. Which factor matters most? A) temperature B) salinity C) acidity D) depth\n\n",
		1)

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid: options crammed onto the question line")
	}
	if !hasIssue(r, "same line as the question") {
		t.Errorf("expected same-line issue, got %v", r.Issues)
	}
}

func TestDetailed_VocabularyMissingOptions(t *testing.T) {
	doc := strings.Replace(detailedDoc(),
		"Answer Key\n\n",
		"C) Vocabulary in Context\n\n23. What does the word \"saturation\" mean here?\n\nAnswer Key\n\n",
		1)
	doc += "23. It means the limit of dissolution.\n"

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid: vocabulary item without options")
	}
	if !hasIssue(r, "vocabulary questions missing A/B/C/D options") {
		t.Errorf("expected vocabulary issue, got %v", r.Issues)
	}
}

func TestDetailed_MissingAnswerKeySuppressesCountChecks(t *testing.T) {
	doc := detailedDoc()
	doc = doc[:strings.Index(doc, "Answer Key")]

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.IsValid {
		t.Fatal("expected invalid without an Answer Key section")
	}
	if !hasIssue(r, "Answer Key section missing") {
		t.Fatalf("expected missing-section issue, got %v", r.Issues)
	}
	// The answer floor and count-match checks stay quiet: the missing
	// section is the one actionable problem.
	if len(r.Issues) != 1 {
		t.Errorf("issues = %v, want only the missing section", r.Issues)
	}

	// The simple policy counts unconditionally.
	sr := NewValidator(SimplePolicy()).Validate(doc)
	if !hasIssue(sr, "answers") {
		t.Errorf("simple policy should still report the answer floor, got %v", sr.Issues)
	}
}

func TestDetailed_ParagraphBand(t *testing.T) {
	// 17 distinct markers: above the 16 ceiling is a warning, not critical.
	doc := strings.Replace(detailedDoc(),
		"Questions\n\n",
		"(15) Extra.\n\n(16) Extra.\n\n(17) Extra.\n\nQuestions\n\n",
		1)

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if !r.IsValid {
		t.Fatalf("ceiling overflow should only warn, got issues: %v", r.Issues)
	}
	if len(r.Warnings) == 0 {
		t.Error("expected a too-many-paragraphs warning")
	}
}

func TestDetailed_AnswerKeyBeforeQuestions(t *testing.T) {
	var b strings.Builder
	b.WriteString("Title\n\nAnswer Key\n\n1. Early answer.\n\nQuestions\n\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "%d. Q?\n", i)
	}

	r := NewValidator(DetailedPolicy()).Validate(b.String())
	if r.IsValid {
		t.Fatal("expected invalid")
	}
	if !hasIssue(r, "Answer Key appears before Questions") {
		t.Errorf("expected ordering issue, got %v", r.Issues)
	}
}

func TestDetailed_ReferenceAndInsertionHeuristics(t *testing.T) {
	doc := strings.Replace(detailedDoc(),
		"16. What does paragraph 16 argue?\n",
		"16. What does \"they\" refer to in paragraph 3? Insert the sentence at [A], [B], [C] or [D].\n",
		1)

	r := NewValidator(DetailedPolicy()).Validate(doc)
	if r.Stats.Reference != 1 {
		t.Errorf("reference = %d, want 1", r.Stats.Reference)
	}
	if r.Stats.SentenceInsertion != 1 {
		t.Errorf("sentenceInsertion = %d, want 1", r.Stats.SentenceInsertion)
	}
	// Heuristics are informational: absence elsewhere never gates validity.
	base := NewValidator(DetailedPolicy()).Validate(detailedDoc())
	if !base.IsValid {
		t.Errorf("document without heuristic markers should stay valid: %v", base.Issues)
	}
}
