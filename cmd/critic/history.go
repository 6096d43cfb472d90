package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"perlhq/critic/pkg/history"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded lint runs",
	Long: `Inspect the lint run history database.

Runs are recorded when history is enabled in the configuration. Each run
stores its violations, so past results can be queried without re-linting.`,
}

var historyRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent lint runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.RecentRuns(context.Background(), historyFlags.limit)
		if err != nil {
			return err
		}

		if historyFlags.format == "json" {
			return printJSON(runs)
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %d file(s)  %d violation(s)  %s\n",
				r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Files, r.Violations, r.Duration)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the violations of one run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		violations, err := store.RunViolations(context.Background(), args[0])
		if err != nil {
			return err
		}

		if historyFlags.format == "json" {
			return printJSON(violations)
		}
		for _, v := range violations {
			fmt.Printf("%s:%d:%d: %s [%s, severity %d]\n",
				v.File, v.Line, v.Column, v.Message, v.Policy, v.Severity)
		}
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Prune old runs per the retention configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.Prune(context.Background(), cfg.History.RetentionDays, cfg.History.MaxRuns)
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d run(s)\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyRunsCmd, historyShowCmd, historyPruneCmd)

	historyCmd.PersistentFlags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to list")
	historyCmd.PersistentFlags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func openHistory() (*history.Store, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.Open(cfg.History, logger)
}

func printJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
