package passage

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParse_OutOfOrderParagraphs(t *testing.T) {
	raw := "Title\n\n(3) third paragraph.\n\n(1) first paragraph.\n\n(2) second paragraph.\n\nQuestions\n\n1. Q?\n\nAnswer Key\n\n1. A.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"(1) first paragraph.",
		"(2) second paragraph.",
		"(3) third paragraph.",
	}
	if !reflect.DeepEqual(p.Paragraphs, want) {
		t.Errorf("paragraphs = %v, want %v", p.Paragraphs, want)
	}
}

func TestParse_RenumbersGapsAndDuplicates(t *testing.T) {
	raw := "Title\n\n(2) alpha.\n\n(2) beta.\n\n(5) gamma.\n\nQuestions\n\n1. Q?\n\nAnswer Key\n\n1. A.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every matched span survives; output indices are contiguous from 1.
	want := []string{"(1) alpha.", "(2) beta.", "(3) gamma."}
	if !reflect.DeepEqual(p.Paragraphs, want) {
		t.Errorf("paragraphs = %v, want %v", p.Paragraphs, want)
	}
}

func TestParse_TitleStripsHeadingMarkup(t *testing.T) {
	tests := []struct {
		raw   string
		title string
	}{
		{"## The Microbiome and Human Health\n\n(1) Text.\n", "The Microbiome and Human Health"},
		{"Plain Title\n\n(1) Text.\n", "Plain Title"},
		{"no paragraph markers anywhere", "Untitled"},
		{"(1) Starts immediately.\n", "Untitled"},
	}

	for _, tt := range tests {
		p, err := Parse(tt.raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.raw, err)
		}
		if p.Title != tt.title {
			t.Errorf("title = %q, want %q", p.Title, tt.title)
		}
	}
}

func TestParse_SideBox(t *testing.T) {
	raw := "Title\n\n(1) Text.\n\nBox A: Supplementary details about the topic.\n\nQuestions\n\n1. Q?\n\nAnswer Key\n\n1. A.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SideBox != "Supplementary details about the topic." {
		t.Errorf("sideBox = %q", p.SideBox)
	}

	p2, _ := Parse("Title\n\n(1) Text.\n\nQuestions\n\n1. Q?\n\nAnswer Key\n\n1. A.\n")
	if p2.SideBox != "" {
		t.Errorf("expected empty sideBox, got %q", p2.SideBox)
	}
}

func TestParse_QuestionGroups(t *testing.T) {
	raw := "Title\n\n(1) Text.\n\nQuestions\n\n" +
		"A) Short Answer Questions\n\n1. First question?\n\n2. Second question?\n\n" +
		"B) Main Idea Questions\n\n3. Third question?\n\n" +
		"Answer Key\n\n1. A.\n2. B.\n3. C.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Questions) != 2 {
		t.Fatalf("groups = %d, want 2", len(p.Questions))
	}
	if p.Questions[0].Label != "A)" || p.Questions[1].Label != "B)" {
		t.Errorf("labels = %q, %q", p.Questions[0].Label, p.Questions[1].Label)
	}

	a := p.Group("A)")
	wantA := []string{"Short Answer Questions", "1. First question?", "2. Second question?"}
	if !reflect.DeepEqual(a, wantA) {
		t.Errorf("group A items = %v, want %v", a, wantA)
	}

	b := p.Group("B)")
	wantB := []string{"Main Idea Questions", "3. Third question?"}
	if !reflect.DeepEqual(b, wantB) {
		t.Errorf("group B items = %v, want %v", b, wantB)
	}

	if p.Group("C)") != nil {
		t.Error("expected nil for absent label")
	}
}

func TestParse_NoGroupLabels(t *testing.T) {
	raw := "Title\n\n(1) Text.\n\nQuestions\n\n1. Bare question?\n\nAnswer Key\n\n1. Answer.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Questions) != 0 {
		t.Errorf("expected no groups, got %v", p.Questions)
	}
}

func TestParse_AnswerKey(t *testing.T) {
	raw := "Title\n\n(1) Text.\n\nQuestions\n\n1. Q?\n\nAnswer Key\n\n" +
		"----\n1. First answer.\n\n### ignored heading\n2. Second answer.\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1. First answer.", "2. Second answer."}
	if !reflect.DeepEqual(p.AnswerKey, want) {
		t.Errorf("answerKey = %v, want %v", p.AnswerKey, want)
	}
}

func TestParse_AnswerKeyFallback(t *testing.T) {
	// No standalone heading line: the fallback scans for numbered lines after
	// any "answer key" mention.
	raw := "Title\n\n(1) Text.\n\nThe answer key follows below.\n1. alpha\n2. beta\n"

	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1. alpha", "2. beta"}
	if !reflect.DeepEqual(p.AnswerKey, want) {
		t.Errorf("answerKey = %v, want %v", p.AnswerKey, want)
	}
}

func TestParse_Idempotent(t *testing.T) {
	raw := validDoc()

	first, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("parsing the same text twice should be identical")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := Parse("   \n\t\n")
	if err == nil {
		t.Fatal("expected error for empty document")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestParseLenient_SentinelOnFailure(t *testing.T) {
	p := ParseLenient("")
	if p.Title != "Parse Error" {
		t.Errorf("title = %q, want sentinel", p.Title)
	}
	if len(p.Paragraphs) != 0 || len(p.Questions) != 0 || len(p.AnswerKey) != 0 {
		t.Error("sentinel record should be empty")
	}

	if got := ParseLenient(validDoc()); got.Title == "Parse Error" {
		t.Error("valid document should not produce the sentinel")
	}
}

func TestParse_ParagraphCountMatchesSpans(t *testing.T) {
	raw := validDoc()
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	section := raw[:strings.Index(raw, "Questions")]
	spans := paraSpanMarkerRE.FindAllString(section, -1)
	if len(p.Paragraphs) != len(spans) {
		t.Errorf("paragraphs = %d, spans = %d", len(p.Paragraphs), len(spans))
	}
	for i, para := range p.Paragraphs {
		wantPrefix := fmt.Sprintf("(%d) ", i+1)
		if !strings.HasPrefix(para, wantPrefix) {
			t.Errorf("paragraph %d = %q, want prefix %q", i, para, wantPrefix)
		}
	}
}
