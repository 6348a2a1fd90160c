package passage

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ParseError reports that a document could not be parsed at all, as opposed
// to parsing into an empty record.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse passage: " + e.Reason
}

var (
	titleRE       = regexp.MustCompile(`(?s)^(.*?)\(\s*1\s*\)`)
	headingMarkRE = regexp.MustCompile(`^#+[ \t]*`)

	paraSpanMarkerRE = regexp.MustCompile(`\(\s*(\d+)\s*\)`)
	sideBoxRE        = regexp.MustCompile(`(?is)Box A:[ \t]*(.+?)\n[ \t]*\n(?:##[ \t]*)?Questions`)
	groupLabelRE     = regexp.MustCompile(`[A-Z]\)`)
	itemStartRE      = regexp.MustCompile(`^[ \t]*\d+\.`)
	markdownHeaderRE = regexp.MustCompile(`^#{1,6}[ \t]`)
	separatorLineRE  = regexp.MustCompile(`^[=\-*_]{3,}$`)
	numberedAnswerRE = regexp.MustCompile(`(?m)^\d+[.)][ \t]+.+`)
	anyAnswerKeyRE   = regexp.MustCompile(`(?i)answer[ \t]*key`)
)

// Parse extracts a ParsedPassage from raw text that has already passed (or
// best-effort failed) structural validation. It never panics past this
// boundary: internal failures come back as a *ParseError.
func Parse(raw string) (p *ParsedPassage, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			p, err = nil, &ParseError{Reason: fmt.Sprintf("internal: %v", rec)}
		}
	}()

	if strings.TrimSpace(raw) == "" {
		return nil, &ParseError{Reason: "empty document"}
	}

	p = &ParsedPassage{
		Title:      parseTitle(raw),
		Paragraphs: parseParagraphs(raw),
		SideBox:    parseSideBox(raw),
		AnswerKey:  parseAnswerKey(raw),
	}
	if block, ok := questionBlock(raw); ok {
		p.Questions = parseGroups(block)
	}
	return p, nil
}

// ParseLenient preserves the always-return-a-record contract for renderers:
// any parse failure yields the sentinel record instead of an error.
func ParseLenient(raw string) *ParsedPassage {
	p, err := Parse(raw)
	if err != nil {
		return &ParsedPassage{
			Title:      "Parse Error",
			Paragraphs: []string{},
			Questions:  []QuestionGroup{},
			AnswerKey:  []string{},
		}
	}
	return p
}

// parseTitle takes everything before the (1) marker, stripping markdown
// heading punctuation.
func parseTitle(raw string) string {
	m := titleRE.FindStringSubmatch(raw)
	if m == nil {
		return "Untitled"
	}
	title := strings.TrimSpace(m[1])
	title = headingMarkRE.ReplaceAllString(title, "")
	if title == "" {
		return "Untitled"
	}
	return title
}

// parseParagraphs extracts every (n) span before the Questions boundary,
// sorts by the original numeric marker (stable, so duplicates keep source
// order), and renumbers sequentially from 1. Duplicate marker values are
// kept: the validator's distinct-count check answers "enough paragraphs?",
// the parser must not drop generated text.
func parseParagraphs(raw string) []string {
	section := raw
	if q := questionsHeadingRE.FindStringIndex(raw); q != nil {
		section = raw[:q[0]]
	}

	locs := paraSpanMarkerRE.FindAllStringSubmatchIndex(section, -1)
	type span struct {
		num  int
		text string
	}
	spans := make([]span, 0, len(locs))
	for i, loc := range locs {
		num, err := strconv.Atoi(section[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		spans = append(spans, span{num: num, text: strings.TrimSpace(section[loc[1]:end])})
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].num < spans[j].num })

	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = fmt.Sprintf("(%d) %s", i+1, s.text)
	}
	return out
}

func parseSideBox(raw string) string {
	m := sideBoxRE.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseGroups splits the question block into labeled groups ("A)", "B)", ...)
// in first-appearance order. A label that reappears replaces its items, so
// labels stay unique.
func parseGroups(block string) []QuestionGroup {
	locs := groupLabelRE.FindAllStringIndex(block, -1)
	var groups []QuestionGroup
	for i, loc := range locs {
		label := block[loc[0]:loc[1]]
		end := len(block)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		items := splitItems(block[loc[1]:end])
		if idx := groupIndex(groups, label); idx >= 0 {
			groups[idx].Items = items
		} else {
			groups = append(groups, QuestionGroup{Label: label, Items: items})
		}
	}
	return groups
}

func groupIndex(groups []QuestionGroup, label string) int {
	for i, g := range groups {
		if g.Label == label {
			return i
		}
	}
	return -1
}

// splitItems breaks group content on lines that begin a new numbered item.
// The unnumbered head chunk (typically the group's name) is kept when
// non-empty; blank chunks are dropped.
func splitItems(content string) []string {
	var items []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			items = append(items, s)
		}
		current.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if itemStartRE.MatchString(line) {
			flush()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()
	return items
}

// parseAnswerKey takes everything after the Answer Key heading, dropping
// blanks, markdown headers, and separator lines. When that yields nothing it
// falls back to scanning for numbered lines after any "answer key" mention.
func parseAnswerKey(raw string) []string {
	var answers []string

	if loc := answerKeyHeadingRE.FindStringIndex(raw); loc != nil {
		for _, line := range strings.Split(raw[loc[1]:], "\n") {
			line = strings.TrimSpace(line)
			if line == "" || markdownHeaderRE.MatchString(line) || separatorLineRE.MatchString(line) {
				continue
			}
			answers = append(answers, line)
		}
	}

	if len(answers) == 0 {
		if locs := anyAnswerKeyRE.FindAllStringIndex(raw, -1); len(locs) > 0 {
			tail := raw[locs[len(locs)-1][1]:]
			for _, m := range numberedAnswerRE.FindAllString(tail, -1) {
				answers = append(answers, strings.TrimSpace(m))
			}
		}
	}

	return answers
}
