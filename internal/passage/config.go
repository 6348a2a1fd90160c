package passage

// PolicyConfig holds every threshold and penalty a validation policy uses.
// Both named policies share the same detection primitives; the config decides
// which checks run and how findings are scored.
type PolicyConfig struct {
	// MinParagraphs is the floor on distinct (n) markers. Below it is critical.
	MinParagraphs int

	// MaxParagraphs, when > 0, turns counts above it into a warning.
	MaxParagraphs int

	// MinQuestions is the floor on numbered questions inside the block.
	MinQuestions int

	// MinAnswers is the floor on numbered answer lines.
	MinAnswers int

	// AnswerTolerance is the allowed |questions - answers| difference.
	AnswerTolerance int

	// ForbidChoiceRuns treats any A)-D) option run inside the question block
	// as critical: the policy permits open-ended questions only.
	ForbidChoiceRuns bool

	// CheckOptionFormat enables the inverse rule: multiple-choice and
	// vocabulary items must carry four well-formed options on their own lines.
	CheckOptionFormat bool

	// RequireOrdering demands the Answer Key boundary appear strictly after
	// the Questions boundary.
	RequireOrdering bool

	// AnswersRequireKey skips the answer floor and question/answer count
	// checks when the Answer Key section is absent; the missing-section
	// issue already covers that failure.
	AnswersRequireKey bool

	// IssuePenalty is subtracted from the score per critical issue.
	IssuePenalty int

	// WarningPenalty is subtracted per warning.
	WarningPenalty int

	// OptionPenalty is subtracted per malformed-option item.
	OptionPenalty int
}

// SimplePolicy is the strict open-ended-only policy used by the interactive
// retry loop: 15 paragraphs, 20 questions, 20 answers, no choice runs.
func SimplePolicy() PolicyConfig {
	return PolicyConfig{
		MinParagraphs:    15,
		MinQuestions:     20,
		MinAnswers:       20,
		AnswerTolerance:  2,
		ForbidChoiceRuns: true,
		IssuePenalty:     20,
	}
}

// DetailedPolicy is the diagnostic policy: a 12-16 paragraph band, boundary
// ordering, and well-formedness checks on multiple-choice options.
func DetailedPolicy() PolicyConfig {
	return PolicyConfig{
		MinParagraphs:     12,
		MaxParagraphs:     16,
		MinQuestions:      20,
		MinAnswers:        15,
		AnswerTolerance:   2,
		CheckOptionFormat: true,
		RequireOrdering:   true,
		AnswersRequireKey: true,
		IssuePenalty:      25,
		WarningPenalty:    5,
		OptionPenalty:     15,
	}
}
