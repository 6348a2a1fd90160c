package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/passage"
	"github.com/keremugurlu/readingen/internal/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a raw passage file into structured form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		p, err := passage.Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		if asJSON {
			out, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Print(render.Markdown(p))
		return nil
	},
}

func init() {
	parseCmd.Flags().Bool("json", false, "Emit JSON instead of markdown")
}
