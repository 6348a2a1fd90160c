package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/store"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored passages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		showRaw, _ := cmd.Flags().GetBool("raw")
		id, _ := cmd.Flags().GetInt("id")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.PassageRepo()

		if id > 0 {
			p, err := repo.GetPassage(ctx, id)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("passage %d not found", id)
			}
			printStoredPassage(p, showRaw)
			return nil
		}

		rows, err := repo.ListPassages(ctx, limit)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No passages stored yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-36s  %-5s  %-7s  %s\n",
			"ID", "Created", "Topic", "Score", "Valid", "Retries")
		fmt.Println(strings.Repeat("─", 90))
		for _, p := range rows {
			valid := "✓"
			if !p.Valid {
				valid = "✗"
			}
			topic := p.Topic
			if len(topic) > 36 {
				topic = topic[:36]
			}
			fmt.Printf("%-5d  %-19s  %-36s  %-5d  %-7s  %d\n",
				p.ID,
				p.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				topic,
				p.Score,
				valid,
				p.Retries,
			)
		}
		return nil
	},
}

func printStoredPassage(p *store.StoredPassage, showRaw bool) {
	fmt.Println(theme.Title.Render(p.Title))
	fmt.Println(theme.Dim.Render(fmt.Sprintf("Topic: %s (%s)", p.Topic, p.Domain)))
	fmt.Printf("Level: %s  Length: %s  Score: %s  Retries: %d\n",
		p.Level, p.Length,
		theme.ScoreStyle(p.Score).Render(fmt.Sprintf("%d%%", p.Score)),
		p.Retries)
	if p.NeedsRegeneration {
		fmt.Println(theme.Warn.Render("Needs regeneration"))
	}
	if showRaw {
		fmt.Println()
		fmt.Println(p.Raw)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of passages to show")
	historyCmd.Flags().Int("id", 0, "Show a single passage by ID")
	historyCmd.Flags().Bool("raw", false, "Include the raw text when showing a single passage")
}
