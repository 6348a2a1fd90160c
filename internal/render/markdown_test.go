package render

import (
	"strings"
	"testing"

	"github.com/keremugurlu/readingen/internal/passage"
)

func samplePassage() *passage.ParsedPassage {
	return &passage.ParsedPassage{
		Title:      "Ocean Acidification",
		Paragraphs: []string{"(1) First paragraph.", "(2) Second paragraph."},
		SideBox:    "Carbonate chemistry basics.",
		Questions: []passage.QuestionGroup{
			{Label: "A)", Items: []string{"Short Answer Questions", "1. What changes?", "2. Why does it matter?"}},
			{Label: "B)", Items: []string{"3. What is the main idea?"}},
		},
		AnswerKey: []string{"1. The pH drops.", "2. Shell formation suffers.", "3. Acidification reshapes ecosystems."},
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(samplePassage())

	for _, want := range []string{
		"# Ocean Acidification\n",
		"## Reading Text",
		"(1) First paragraph.",
		"> **Box A:** Carbonate chemistry basics.",
		"### A) Short Answer Questions",
		"1. What changes?",
		"### B)\n",
		"## Answer Key",
		"3. Acidification reshapes ecosystems.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}

	if strings.Contains(out, "# Passage 1") {
		t.Error("single render should not number the passage")
	}
}

func TestMarkdownSet(t *testing.T) {
	out := MarkdownSet([]*passage.ParsedPassage{samplePassage(), samplePassage()})

	if !strings.Contains(out, "# Passage 1: Ocean Acidification") ||
		!strings.Contains(out, "# Passage 2: Ocean Acidification") {
		t.Error("expected numbered passage headings")
	}
	if strings.Count(out, "\n---\n") != 1 {
		t.Error("expected one separator between two passages")
	}
}

func TestMarkdown_SentinelStillRenders(t *testing.T) {
	out := Markdown(passage.ParseLenient(""))
	if !strings.Contains(out, "# Parse Error") {
		t.Errorf("sentinel title missing:\n%s", out)
	}
}
