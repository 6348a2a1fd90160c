// Package render turns parsed passages into export-ready markdown.
package render

import (
	"fmt"
	"strings"

	"github.com/keremugurlu/readingen/internal/passage"
)

// Markdown renders one parsed passage as a markdown document.
func Markdown(p *passage.ParsedPassage) string {
	var b strings.Builder
	writePassage(&b, p, 0, false)
	return b.String()
}

// MarkdownSet renders multiple passages into one document, numbering each
// and separating them with horizontal rules.
func MarkdownSet(passages []*passage.ParsedPassage) string {
	var b strings.Builder
	for i, p := range passages {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		writePassage(&b, p, i+1, len(passages) > 1)
	}
	return b.String()
}

func writePassage(b *strings.Builder, p *passage.ParsedPassage, num int, numbered bool) {
	if numbered {
		fmt.Fprintf(b, "# Passage %d: %s\n\n", num, p.Title)
	} else {
		fmt.Fprintf(b, "# %s\n\n", p.Title)
	}

	b.WriteString("## Reading Text\n\n")
	for _, para := range p.Paragraphs {
		b.WriteString(para)
		b.WriteString("\n\n")
	}

	if p.SideBox != "" {
		b.WriteString("> **Box A:** ")
		b.WriteString(p.SideBox)
		b.WriteString("\n\n")
	}

	b.WriteString("## Questions\n\n")
	for _, g := range p.Questions {
		if len(g.Items) == 0 {
			continue
		}
		// The head item names the group when present.
		items := g.Items
		if !startsNumbered(items[0]) {
			fmt.Fprintf(b, "### %s %s\n\n", g.Label, items[0])
			items = items[1:]
		} else {
			fmt.Fprintf(b, "### %s\n\n", g.Label)
		}
		for _, item := range items {
			b.WriteString(item)
			b.WriteString("\n\n")
		}
	}

	b.WriteString("## Answer Key\n\n")
	for _, a := range p.AnswerKey {
		b.WriteString(a)
		b.WriteString("\n")
	}
}

func startsNumbered(s string) bool {
	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		return i > 0 && (r == '.' || r == ')')
	}
	return false
}
