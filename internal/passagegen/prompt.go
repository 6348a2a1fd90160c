package passagegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are creating a C1-level academic reading passage with SHORT ANSWER and MAIN IDEA questions ONLY.

NO multiple choice questions. NO A/B/C/D options. ONLY questions that require written answers.

STRUCTURE YOU MUST CREATE:

Title: [Your title here]

(1) First paragraph with 8-12 sentences about the topic...

(2) Second paragraph with 8-12 sentences continuing the discussion...

... and so on through paragraph (15), each 8-12 sentences long.

Questions

A) Short Answer Questions

1. What is the main focus of this passage?

2. What key development is discussed in the beginning?

... 18 short answer questions in total.

B) Main Idea Questions

1. What is the central theme of the entire passage?

... 4 main idea questions in total.

Answer Key

1. [Complete answer based on passage]
2. [Complete answer based on paragraph 1]
... one complete answer for each of the 22 questions.

RULES:
1. Write 15 paragraphs numbered (1) through (15)
2. Each paragraph 8-12 sentences, detailed and academic
3. Write 18 Short Answer questions + 4 Main Idea questions = 22 total
4. NO multiple choice. NO A/B/C/D options. ONLY open-ended questions.
5. Include Answer Key with 22 answers
6. Use academic vocabulary and complex ideas`

// wordCount maps a length tier to its target word count.
func wordCount(l Length) int {
	switch l {
	case LengthShort:
		return 2000
	case LengthMedium:
		return 2800
	case LengthLong:
		return 3500
	default:
		return 3500
	}
}

// buildUserPrompt constructs the per-request prompt. Attempts after the
// first get a corrective addendum reiterating what went wrong.
func buildUserPrompt(input GenerateInput) string {
	level := input.Level
	if level == "" {
		level = LevelC1
	}
	words := input.Words
	if words == 0 {
		words = wordCount(input.Length)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a %s-level academic reading passage:\n\n", level)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Domain: %s\n", input.Domain)
	fmt.Fprintf(&b, "Target: ~%d words total\n\n", words)

	b.WriteString("Requirements:\n")
	b.WriteString("- Title\n")
	b.WriteString("- 15 paragraphs numbered (1) to (15), each 8-12 sentences long\n")
	b.WriteString("- 18 Short Answer questions + 4 Main Idea questions\n")
	b.WriteString("- Answer Key with all 22 answers\n")
	b.WriteString("- NO multiple choice options - only open-ended questions\n")
	if input.SideBox {
		b.WriteString("- Include a \"Box A:\" side box with supplementary context, placed after the paragraphs and before the Questions section\n")
	}
	if len(input.QuestionTypes) > 0 {
		fmt.Fprintf(&b, "- Question categories: %s\n", strings.Join(input.QuestionTypes, ", "))
	}

	b.WriteString("\nWrite detailed, substantive academic content.")

	if input.Attempt > 0 {
		b.WriteString(correctiveAddendum(input.Attempt, input.Corrections))
	}

	return b.String()
}

// correctiveAddendum is appended on retries. It names the previous
// attempt's failures and restates the hard structural rules.
func correctiveAddendum(attempt int, corrections []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n\nRETRY %d\n\n", attempt+1)
	b.WriteString("THE PREVIOUS ATTEMPT FAILED VALIDATION.\n")

	if len(corrections) > 0 {
		b.WriteString("\nProblems found:\n")
		for _, c := range corrections {
			fmt.Fprintf(&b, "- %s\n", c)
		}
	}

	b.WriteString(`
DO NOT WRITE:
- A) Option
- B) Option
- C) Option
- D) Option

ONLY WRITE SHORT ANSWER QUESTIONS LIKE:
1. What is the main focus?
2. What does paragraph 3 discuss?
3. How is X defined?

NO A/B/C/D OPTIONS! ONLY QUESTIONS!`)

	return b.String()
}
