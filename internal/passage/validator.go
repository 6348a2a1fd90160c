package passage

import "fmt"

// Score bonuses. Thresholds that gate validity live in PolicyConfig; these
// only nudge the diagnostic score.
const (
	simpleParagraphBonus = 15
	simpleQuestionBonus  = 15

	detailedRichQuestionFloor = 25
	detailedRichQuestionBonus = 5
	detailedChoiceFloor       = 5
	detailedChoiceBonus       = 10
	detailedMatchBonus        = 10
)

// Validator classifies a raw generated document against a policy, producing
// a Report from pattern matching alone. It holds no mutable state and is safe
// for concurrent use.
type Validator struct {
	cfg PolicyConfig
}

func NewValidator(cfg PolicyConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs every check the policy enables and returns a fresh Report.
func (v *Validator) Validate(raw string) *Report {
	cfg := v.cfg
	r := &Report{}

	// A deliberately weak check: any non-empty line counts as a title. The
	// parser extracts the real title later.
	r.HasTitle = nonEmptyLineRE.MatchString(raw)
	if !r.HasTitle {
		r.Issues = append(r.Issues, "missing title")
	}

	r.Stats.Paragraphs = distinctParagraphMarkers(raw)
	if r.Stats.Paragraphs < cfg.MinParagraphs {
		r.Issues = append(r.Issues, fmt.Sprintf("need %d paragraphs (found %d)", cfg.MinParagraphs, r.Stats.Paragraphs))
	} else if cfg.MaxParagraphs > 0 && r.Stats.Paragraphs > cfg.MaxParagraphs {
		r.Warnings = append(r.Warnings, fmt.Sprintf("too many paragraphs: %d", r.Stats.Paragraphs))
	}

	qLoc := questionsHeadingRE.FindStringIndex(raw)
	aLoc := answerKeyHeadingRE.FindStringIndex(raw)
	r.HasQuestions = qLoc != nil
	r.HasAnswerKey = aLoc != nil
	if !r.HasQuestions {
		r.Issues = append(r.Issues, "Questions section missing")
	}
	if !r.HasAnswerKey {
		r.Issues = append(r.Issues, "Answer Key section missing")
	}
	if cfg.RequireOrdering && r.HasQuestions && r.HasAnswerKey && aLoc[0] < qLoc[0] {
		r.Issues = append(r.Issues, "Answer Key appears before Questions")
	}

	if block, ok := questionBlock(raw); ok {
		r.Stats.TotalQuestions = countMatches(questionLineRE, block)

		if cfg.ForbidChoiceRuns && choiceRunRE.MatchString(block) {
			r.Issues = append(r.Issues, "multiple choice options found: only open-ended question types are allowed")
		}
		if cfg.CheckOptionFormat {
			v.checkOptionFormat(block, r)
		}

		r.Stats.Reference = countMatches(pronounRE, block)
		if insertionRE.MatchString(block) {
			r.Stats.SentenceInsertion = 1
		}
		r.Stats.ShortAnswer = countShortAnswer(block)
	}

	if r.Stats.TotalQuestions < cfg.MinQuestions {
		r.Issues = append(r.Issues, fmt.Sprintf("need %d+ questions (found %d)", cfg.MinQuestions, r.Stats.TotalQuestions))
	}

	if tail, ok := afterAnswerKey(raw); ok {
		r.Stats.TotalAnswers = countMatches(answerLineRE, tail)
	}
	if !cfg.AnswersRequireKey || r.HasAnswerKey {
		if r.Stats.TotalAnswers < cfg.MinAnswers {
			r.Issues = append(r.Issues, fmt.Sprintf("need %d+ answers (found %d)", cfg.MinAnswers, r.Stats.TotalAnswers))
		}
		if diff := abs(r.Stats.TotalQuestions - r.Stats.TotalAnswers); diff > cfg.AnswerTolerance {
			r.Issues = append(r.Issues, fmt.Sprintf("question count (%d) doesn't match answer count (%d)", r.Stats.TotalQuestions, r.Stats.TotalAnswers))
		}
	}

	r.Score = v.score(r)
	r.IsValid = len(r.Issues) == 0 &&
		r.HasTitle && r.HasQuestions && r.HasAnswerKey &&
		r.Stats.TotalQuestions >= cfg.MinQuestions &&
		r.Stats.WithoutOptions == 0 &&
		r.Stats.TotalAnswers >= cfg.MinAnswers

	return r
}

// checkOptionFormat enforces the detailed policy's inverse rule: expected
// multiple-choice items must carry four options, each on its own line,
// immediately after the question.
func (v *Validator) checkOptionFormat(block string, r *Report) {
	r.Stats.MultipleChoice = countMatches(wellFormedChoiceRE, block)

	if sec, ok := subsection(block, mcSectionHeadingRE); ok {
		expected := countMatches(questionLineRE, sec)
		proper := countMatches(wellFormedChoiceRE, sec)
		if missing := expected - proper; missing > 0 {
			r.Stats.WithoutOptions = missing
			r.Issues = append(r.Issues, fmt.Sprintf("%d multiple choice questions have missing or malformed options", missing))
		}
		if reversedChoiceRE.MatchString(sec) {
			r.Issues = append(r.Issues, "multiple choice options appear before the question text")
			if r.Stats.WithoutOptions < 1 {
				r.Stats.WithoutOptions = 1
			}
		}
		if inlineChoiceRE.MatchString(sec) {
			r.Issues = append(r.Issues, "multiple choice options on the same line as the question")
			if r.Stats.WithoutOptions < 1 {
				r.Stats.WithoutOptions = 1
			}
		}
	}

	if sec, ok := subsection(block, vocabSectionHeadingRE); ok {
		withOptions := countMatches(vocabChoiceRE, sec)
		r.Stats.Vocabulary = withOptions
		total := countMatches(questionLineRE, sec)
		if missing := total - withOptions; missing > 0 {
			r.Issues = append(r.Issues, fmt.Sprintf("%d vocabulary questions missing A/B/C/D options", missing))
			r.Stats.WithoutOptions += missing
		}
	}
}

// countShortAnswer approximates the short-answer item count: the span from a
// "Short Answer" heading (or the first group label) to the next group.
func countShortAnswer(block string) int {
	sec, ok := subsection(block, shortAnswerHeadingRE)
	if !ok {
		return 0
	}
	return countMatches(questionLineRE, sec)
}

func (v *Validator) score(r *Report) int {
	cfg := v.cfg

	score := 100
	score -= len(r.Issues) * cfg.IssuePenalty
	score -= len(r.Warnings) * cfg.WarningPenalty
	score -= r.Stats.WithoutOptions * cfg.OptionPenalty

	if cfg.ForbidChoiceRuns {
		if r.Stats.Paragraphs >= cfg.MinParagraphs {
			score += simpleParagraphBonus
		}
		if r.Stats.TotalQuestions >= cfg.MinQuestions {
			score += simpleQuestionBonus
		}
	}
	if cfg.CheckOptionFormat {
		if r.Stats.TotalQuestions >= detailedRichQuestionFloor {
			score += detailedRichQuestionBonus
		}
		if r.Stats.MultipleChoice >= detailedChoiceFloor && r.Stats.WithoutOptions == 0 {
			score += detailedChoiceBonus
		}
		if r.HasAnswerKey && abs(r.Stats.TotalQuestions-r.Stats.TotalAnswers) <= cfg.AnswerTolerance {
			score += detailedMatchBonus
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
