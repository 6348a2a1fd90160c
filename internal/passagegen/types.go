package passagegen

import (
	"github.com/google/uuid"

	"github.com/keremugurlu/readingen/internal/passage"
)

// Level is the target proficiency band for the passage.
type Level string

const (
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
)

// Length selects the target word count tier.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Topic pairs a passage subject with its academic domain.
type Topic struct {
	Topic  string
	Domain string
}

// GenerateInput holds all context needed to generate one passage.
type GenerateInput struct {
	// Topic is the passage subject, e.g. "AI and Cultural Memory".
	Topic string

	// Domain is the academic field, e.g. "science/philosophy".
	Domain string

	// Level is the proficiency band. Defaults to C1 when empty.
	Level Level

	// Length selects the word count tier. Defaults to long when empty.
	Length Length

	// Words overrides the tier-derived word count when non-zero.
	Words int

	// SideBox requests a supplementary "Box A" section.
	SideBox bool

	// QuestionTypes lists the requested question categories,
	// e.g. ["Short Answer", "Main Idea"].
	QuestionTypes []string

	// Attempt is the zero-based retry counter. Attempts after the first
	// carry a corrective addendum in the prompt.
	Attempt int

	// Corrections holds the critical issues from the previous attempt's
	// validation report. Empty on the first attempt.
	Corrections []string
}

// GeneratedPassage is the orchestrator's output: raw text plus its
// validation report and parsed form.
type GeneratedPassage struct {
	ID     uuid.UUID
	Topic  string
	Domain string

	// Raw is the full generated text as returned by the model.
	Raw string

	// Parsed is the structured form. On unparseable text this holds the
	// lenient sentinel record, never nil.
	Parsed *passage.ParsedPassage

	// Report is the structural validation result for Raw.
	Report *passage.Report

	// Retries is how many extra attempts were spent beyond the first.
	Retries int

	// NeedsRegeneration marks a passage that never validated within the
	// retry budget and was delivered as-is.
	NeedsRegeneration bool
}
