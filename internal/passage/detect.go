package passage

import "regexp"

// Detection primitives shared by the validator policies and the parser.
// The document grammar is flat text: a title, (n)-numbered paragraphs, a
// "Questions" heading, labeled question groups, and an "Answer Key" heading
// followed by numbered answers. Headings may carry markdown # / ## prefixes.
var (
	paraMarkerRE = regexp.MustCompile(`\(\d+\)`)

	questionsHeadingRE = regexp.MustCompile(`(?im)(?:^|\n)(?:##?[ \t]*)?Questions[ \t]*\r?$`)
	answerKeyHeadingRE = regexp.MustCompile(`(?im)(?:^|\n)(?:##?[ \t]*)?Answer[ \t]*Keys?(?:[ \t]*:)?[ \t]*\r?$`)

	nonEmptyLineRE = regexp.MustCompile(`(?m)^[^\n]+$`)
	questionLineRE = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]`)
	answerLineRE   = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]`)

	// A full A) B) C) D) run, each option on its own line.
	choiceRunRE = regexp.MustCompile(`(?i)A\)[ \t]+[^\n]+\n[ \t]*B\)[ \t]+[^\n]+\n[ \t]*C\)[ \t]+[^\n]+\n[ \t]*D\)[ \t]+`)

	// A numbered question immediately followed by four well-formed options.
	wellFormedChoiceRE = regexp.MustCompile(`\d+\.[ \t]+[^\n]+\n[ \t]*A\)[ \t]+[^\n]+\n[ \t]*B\)[ \t]+[^\n]+\n[ \t]*C\)[ \t]+[^\n]+\n[ \t]*D\)[ \t]+[^\n]+`)

	// Options appearing before their question line (reversed order).
	reversedChoiceRE = regexp.MustCompile(`A\)[ \t]+[^\n]+\n[ \t]*B\)[ \t]+[^\n]+\n[ \t]*C\)[ \t]+[^\n]+\n[ \t]*D\)[ \t]+[^\n]+\n[ \t]*\d+\.`)

	// All four options crammed onto the question line.
	inlineChoiceRE = regexp.MustCompile(`\d+\.[ \t]+[^\n]*A\)[^\n]*B\)[^\n]*C\)[^\n]*D\)`)

	// A vocabulary item ("word"/"phrase" in the stem) with its four options.
	vocabChoiceRE = regexp.MustCompile(`(?i)\d+\.[ \t]+[^\n]*(?:word|phrase)[^\n]*\n[ \t]*A\)[ \t]+[^\n]+\n[ \t]*B\)[ \t]+[^\n]+\n[ \t]*C\)[ \t]+[^\n]+\n[ \t]*D\)[ \t]+[^\n]+`)

	pronounRE   = regexp.MustCompile(`(?i)"(?:these|they|it|their|this|those|which)"`)
	insertionRE = regexp.MustCompile(`\[[A-D]\]`)

	mcSectionHeadingRE    = regexp.MustCompile(`(?i)Multiple[ \t]*Choice`)
	vocabSectionHeadingRE = regexp.MustCompile(`(?i)Vocabulary(?:[ \t]+in[ \t]+Context)?`)
	shortAnswerHeadingRE  = regexp.MustCompile(`(?i)Short[ \t]*Answer`)

	// A group label line like "B) Main Idea Questions" that ends a subsection.
	groupBoundaryRE = regexp.MustCompile(`\n[A-Z]\)[ \t]+[A-Z][a-z]`)
)

// distinctParagraphMarkers counts unique (n) markers; duplicate marker values
// collapse to one.
func distinctParagraphMarkers(raw string) int {
	seen := make(map[string]struct{})
	for _, m := range paraMarkerRE.FindAllString(raw, -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}

// questionBlock returns the text strictly between the first Questions heading
// and the Answer Key heading that follows it. ok is false when either
// boundary is missing or the Answer Key comes first.
func questionBlock(raw string) (string, bool) {
	q := questionsHeadingRE.FindStringIndex(raw)
	if q == nil {
		return "", false
	}
	rest := raw[q[1]:]
	a := answerKeyHeadingRE.FindStringIndex(rest)
	if a == nil {
		return "", false
	}
	return rest[:a[0]], true
}

// afterAnswerKey returns the text after the last Answer Key heading.
func afterAnswerKey(raw string) (string, bool) {
	locs := answerKeyHeadingRE.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return "", false
	}
	return raw[locs[len(locs)-1][1]:], true
}

// subsection locates a heading inside the question block and returns the text
// from the heading to the next group-label line (or the end of the block).
func subsection(block string, heading *regexp.Regexp) (string, bool) {
	h := heading.FindStringIndex(block)
	if h == nil {
		return "", false
	}
	rest := block[h[1]:]
	if b := groupBoundaryRE.FindStringIndex(rest); b != nil {
		rest = rest[:b[0]]
	}
	return rest, true
}

func countMatches(re *regexp.Regexp, s string) int {
	return len(re.FindAllString(s, -1))
}
