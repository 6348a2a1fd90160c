package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/dictionary"
	"github.com/keremugurlu/readingen/internal/llm"
	"github.com/keremugurlu/readingen/internal/store"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var defineCmd = &cobra.Command{
	Use:   "define <word>",
	Short: "Look up an English word (Turkish meaning + example sentence)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var eventRepo store.EventRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				eventRepo = st.EventRepo()
			}
		}

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		entry, err := dictionary.NewClient(provider).Lookup(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(entry.Word))
		fmt.Println()
		fmt.Println(theme.Body.Render(entry.Meaning))
		fmt.Println()
		fmt.Println(theme.Dim.Render("Example: " + entry.Example))
		return nil
	},
}
