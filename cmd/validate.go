package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/passage"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Run structural validation over a raw passage file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, _ := cmd.Flags().GetString("policy")

		cfg, err := policyByName(policy)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		report := passage.NewValidator(cfg).Validate(string(raw))

		score := theme.ScoreStyle(report.Score).Render(fmt.Sprintf("%d%%", report.Score))
		fmt.Printf("%s %s\n\n", theme.Title.Render("Validation score:"), score)
		fmt.Println(passage.Summary(report))

		if !report.IsValid {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("policy", "p", "simple", "Validation policy: simple or detailed")
}

func policyByName(name string) (passage.PolicyConfig, error) {
	switch name {
	case "simple":
		return passage.SimplePolicy(), nil
	case "detailed":
		return passage.DetailedPolicy(), nil
	default:
		return passage.PolicyConfig{}, fmt.Errorf("unknown policy %q: must be simple or detailed", name)
	}
}
