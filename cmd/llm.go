package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keremugurlu/readingen/internal/llm"
	"github.com/keremugurlu/readingen/internal/store"
	"github.com/keremugurlu/readingen/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls behind generated passages",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		repo, closeStore, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events recorded yet. Run `readingen generate` first.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-28s  %7s  %7s  %7s  %s\n",
			"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(theme.Dim.Render(strings.Repeat("─", 100)))

		for _, e := range events {
			mark := theme.Valid.Render("✓")
			if !e.Success {
				mark = theme.Invalid.Render("✗")
			}
			fmt.Printf("%-5d  %-19s  %-12s  %-28s  %7d  %7d  %7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				clip(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				mark,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and completion for one event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		repo, closeStore, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		e, err := repo.GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Event #%d — %s", e.ID, e.Purpose)))
		fmt.Println(theme.Dim.Render(e.Timestamp.Local().Format("2006-01-02 15:04:05")))
		fmt.Printf("Model:    %s (%s)\n", e.Model, e.Provider)
		fmt.Printf("Tokens:   %d in / %d out\n", e.InputTokens, e.OutputTokens)
		if cost := llm.LookupCost(e.Model); cost != nil {
			fmt.Printf("Cost:     %s\n", formatUSD(cost.Cost(e.InputTokens, e.OutputTokens)))
		}
		fmt.Printf("Latency:  %dms\n", e.LatencyMs)
		if e.Success {
			fmt.Printf("Status:   %s\n", theme.Valid.Render("ok"))
		} else {
			fmt.Printf("Status:   %s\n", theme.Invalid.Render("failed"))
			if e.ErrorMessage != "" {
				fmt.Printf("Error:    %s\n", e.ErrorMessage)
			}
		}

		printSection("REQUEST", e.RequestBody)
		printSection("RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, closeStore, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		ctx := context.Background()
		byPurpose, err := repo.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		fmt.Println(theme.Title.Render("Usage by Purpose"))
		fmt.Printf("%-14s  %6s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Input", "Output", "Avg Ms")
		fmt.Println(theme.Dim.Render(strings.Repeat("─", 56)))

		var totalCalls, totalIn, totalOut int
		for _, u := range byPurpose {
			fmt.Printf("%-14s  %6d  %10d  %10d  %8d\n",
				u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
			totalCalls += u.Calls
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}
		fmt.Println(theme.Dim.Render(strings.Repeat("─", 56)))
		fmt.Printf("%-14s  %6d  %10d  %10d\n", "TOTAL", totalCalls, totalIn, totalOut)

		byModel, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println(theme.Title.Render("Estimated Cost"))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "USD")
		fmt.Println(theme.Dim.Render(strings.Repeat("─", 76)))

		var total float64
		var unpriced []string
		for _, u := range byModel {
			cost := llm.LookupCost(u.Model)
			if cost == nil {
				unpriced = append(unpriced, u.Model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					clip(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, "?")
				continue
			}
			c := cost.Cost(u.InputTokens, u.OutputTokens)
			total += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
				clip(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, formatUSD(c))
		}

		fmt.Println(theme.Dim.Render(strings.Repeat("─", 76)))
		label := "TOTAL"
		if len(unpriced) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatUSD(total))
		if len(unpriced) > 0 {
			fmt.Println(theme.Dim.Render("No pricing for: " + strings.Join(unpriced, ", ")))
		}
		return nil
	},
}

// openEventRepo opens the store and hands back the event repo with a
// cleanup func, shared by the llm subcommands.
func openEventRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return s.EventRepo(), func() { s.Close() }, nil
}

func printSection(heading, body string) {
	fmt.Println()
	fmt.Println(theme.Dim.Render(strings.Repeat("─", 60)))
	fmt.Println(theme.Title.Render(heading))
	fmt.Println(theme.Dim.Render(strings.Repeat("─", 60)))
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatUSD(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (passage-gen, dictionary)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
