package passage

// Stats holds the raw counts collected while validating a document.
// Reference and SentenceInsertion are informational heuristics; they are
// reported but never gate validity.
type Stats struct {
	// Paragraphs is the number of distinct (n) markers found in the text.
	Paragraphs int

	// TotalQuestions is the number of numbered lines inside the question block.
	TotalQuestions int

	// MultipleChoice counts well-formed four-option questions (detailed policy).
	MultipleChoice int

	// WithoutOptions counts multiple-choice or vocabulary items whose A)-D)
	// options are missing, misordered, or crammed onto the question line.
	WithoutOptions int

	// Vocabulary counts well-formed vocabulary questions with options.
	Vocabulary int

	// Reference counts quoted-pronoun occurrences inside the question block.
	Reference int

	// SentenceInsertion is 1 when [A]-[D] insertion markers are present.
	SentenceInsertion int

	// ShortAnswer approximates the number of items in the short-answer group.
	ShortAnswer int

	// TotalAnswers is the number of numbered lines after the Answer Key boundary.
	TotalAnswers int
}

// Report is the outcome of a structural validation pass.
//
// Score and IsValid are independent signals: Score is a diagnostic aid,
// IsValid is the retry gate. A document with a high score but any critical
// issue still reports IsValid=false.
type Report struct {
	// IsValid is true only when every critical check passed.
	IsValid bool

	// Score is a heuristic quality score in [0,100].
	Score int

	// Issues lists critical failures. Empty iff IsValid.
	Issues []string

	// Warnings lists non-critical findings (detailed policy only).
	Warnings []string

	Stats Stats

	HasTitle     bool
	HasQuestions bool
	HasAnswerKey bool
}

// QuestionGroup is one labeled cluster of questions, e.g. "A)" with its items.
type QuestionGroup struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// ParsedPassage is the structured record extracted from an accepted document.
type ParsedPassage struct {
	Title string `json:"title"`

	// Paragraphs are renumbered (1)..(N) in ascending original-marker order,
	// regardless of gaps or duplicates in the source numbering.
	Paragraphs []string `json:"paragraphs"`

	// SideBox is the optional "Box A:" span, empty when absent.
	SideBox string `json:"sideBox,omitempty"`

	// Questions preserves group labels in first-appearance order.
	// Labels are unique.
	Questions []QuestionGroup `json:"questions"`

	// AnswerKey holds one entry per detected answer line, in order.
	AnswerKey []string `json:"answerKey"`
}

// Group returns the items for a label, or nil if the label is absent.
func (p *ParsedPassage) Group(label string) []string {
	for _, g := range p.Questions {
		if g.Label == label {
			return g.Items
		}
	}
	return nil
}
