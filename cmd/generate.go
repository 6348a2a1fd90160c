package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/llm"
	"github.com/keremugurlu/readingen/internal/passage"
	"github.com/keremugurlu/readingen/internal/passagegen"
	"github.com/keremugurlu/readingen/internal/render"
	"github.com/keremugurlu/readingen/internal/store"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more reading passages",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Passage topic (random when omitted)")
	generateCmd.Flags().String("domain", "", "Academic domain for the topic")
	generateCmd.Flags().String("level", "C1", "Proficiency level: B2 or C1")
	generateCmd.Flags().String("length", "long", "Length tier: short, medium, long")
	generateCmd.Flags().Int("words", 0, "Override the target word count")
	generateCmd.Flags().Bool("sidebox", false, "Request a Box A side box")
	generateCmd.Flags().IntP("count", "n", 1, "Number of passages to generate")
	generateCmd.Flags().Bool("regenerate", false, "Use the tighter regeneration retry budget")
	generateCmd.Flags().Bool("markdown", false, "Print the rendered markdown for each passage")
	generateCmd.Flags().Bool("no-save", false, "Skip persisting results to the database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	domain, _ := cmd.Flags().GetString("domain")
	level, _ := cmd.Flags().GetString("level")
	length, _ := cmd.Flags().GetString("length")
	words, _ := cmd.Flags().GetInt("words")
	sidebox, _ := cmd.Flags().GetBool("sidebox")
	count, _ := cmd.Flags().GetInt("count")
	regenerate, _ := cmd.Flags().GetBool("regenerate")
	markdown, _ := cmd.Flags().GetBool("markdown")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if level != "B2" && level != "C1" {
		return fmt.Errorf("invalid level %q: must be B2 or C1", level)
	}
	switch length {
	case "short", "medium", "long":
	default:
		return fmt.Errorf("invalid length %q: must be short, medium, or long", length)
	}

	ctx := context.Background()

	var passageRepo store.PassageRepo
	var eventRepo store.EventRepo
	if !noSave {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()
		passageRepo = st.PassageRepo()
		eventRepo = st.EventRepo()
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	cfg := passagegen.BatchConfig()
	if regenerate {
		cfg = passagegen.RegenerateConfig()
	}

	input := passagegen.GenerateInput{
		Topic:         topic,
		Domain:        domain,
		Level:         passagegen.Level(level),
		Length:        passagegen.Length(length),
		Words:         words,
		SideBox:       sidebox,
		QuestionTypes: []string{"Short Answer", "Main Idea"},
	}
	if input.Topic == "" {
		t := passagegen.RandomTopic()
		input.Topic, input.Domain = t.Topic, t.Domain
	}

	orch := passagegen.NewOrchestrator(passagegen.NewLLMGenerator(provider, cfg), cfg)

	passages, genErr := orch.GenerateBatch(ctx, count, input)

	for i, p := range passages {
		printGenerated(i+1, len(passages), p)

		if markdown {
			fmt.Println()
			fmt.Println(render.Markdown(p.Parsed))
		}

		if passageRepo != nil {
			id, err := passageRepo.SavePassage(ctx, store.PassageRecordData{
				PassageID:         p.ID,
				Topic:             p.Topic,
				Domain:            p.Domain,
				Title:             p.Parsed.Title,
				Raw:               p.Raw,
				Level:             level,
				Length:            length,
				Score:             p.Report.Score,
				Valid:             p.Report.IsValid,
				Retries:           p.Retries,
				NeedsRegeneration: p.NeedsRegeneration,
			})
			if err != nil {
				return fmt.Errorf("save passage: %w", err)
			}
			fmt.Println(theme.Dim.Render(fmt.Sprintf("Saved as #%d", id)))
		}
		fmt.Println()
	}

	if genErr != nil {
		return fmt.Errorf("batch aborted after %d passage(s): %w", len(passages), genErr)
	}
	return nil
}

func printGenerated(n, total int, p *passagegen.GeneratedPassage) {
	header := p.Parsed.Title
	if total > 1 {
		header = fmt.Sprintf("[%d/%d] %s", n, total, header)
	}
	fmt.Println(theme.Title.Render(header))
	fmt.Println(theme.Dim.Render(fmt.Sprintf("Topic: %s (%s)", p.Topic, p.Domain)))

	score := theme.ScoreStyle(p.Report.Score).Render(fmt.Sprintf("%d%%", p.Report.Score))
	status := theme.Valid.Render("VALID")
	if !p.Report.IsValid {
		status = theme.Invalid.Render("INVALID")
	}
	fmt.Printf("Score: %s  Status: %s  Retries: %d\n", score, status, p.Retries)

	if p.NeedsRegeneration {
		fmt.Println(theme.Warn.Render("Never passed validation — run again with --regenerate"))
	}
	if len(p.Report.Issues) > 0 {
		fmt.Println(passage.Summary(p.Report))
	}
}
