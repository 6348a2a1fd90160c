package passage

import (
	"fmt"
	"strings"
)

// Summary renders a human-readable diagnostic view of a report, suitable for
// terminal output.
func Summary(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validation Score: %d%%\n", r.Score)
	if r.IsValid {
		b.WriteString("Status: VALID - ready to use\n")
	} else {
		b.WriteString("Status: INVALID - will be regenerated\n")
	}

	if len(r.Issues) > 0 {
		b.WriteString("\nCritical issues (triggering retry):\n")
		for _, issue := range r.Issues {
			fmt.Fprintf(&b, "  ✗ %s\n", issue)
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}

	b.WriteString("\nContent analysis:\n")
	fmt.Fprintf(&b, "  Paragraphs:       %d %s\n", r.Stats.Paragraphs, mark(r.Stats.Paragraphs >= 12))
	fmt.Fprintf(&b, "  Total questions:  %d %s\n", r.Stats.TotalQuestions, mark(r.Stats.TotalQuestions >= 20))
	fmt.Fprintf(&b, "  Multiple choice:  %d\n", r.Stats.MultipleChoice)
	fmt.Fprintf(&b, "  Format errors:    %d %s\n", r.Stats.WithoutOptions, mark(r.Stats.WithoutOptions == 0))
	fmt.Fprintf(&b, "  Vocabulary:       %d\n", r.Stats.Vocabulary)
	fmt.Fprintf(&b, "  Reference:        %d\n", r.Stats.Reference)
	fmt.Fprintf(&b, "  Total answers:    %d\n", r.Stats.TotalAnswers)

	return b.String()
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
