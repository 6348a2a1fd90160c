package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/passagegen"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the built-in topic pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		random, _ := cmd.Flags().GetBool("random")

		if random {
			t := passagegen.RandomTopic()
			fmt.Printf("%s  %s\n", theme.Body.Render(t.Topic), theme.Dim.Render("("+t.Domain+")"))
			return nil
		}

		for i, t := range passagegen.SampleTopics {
			fmt.Printf("%2d. %s  %s\n", i+1, theme.Body.Render(t.Topic), theme.Dim.Render("("+t.Domain+")"))
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().BoolP("random", "r", false, "Print one random topic")
}
