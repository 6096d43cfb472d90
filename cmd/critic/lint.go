package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"perlhq/critic/pkg/cli"
	"perlhq/critic/pkg/config"
	"perlhq/critic/pkg/critic"
	"perlhq/critic/pkg/history"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint Perl source files",
	Long: `Lint Perl source files with the enabled policies.

Each file is parsed into a token tree and every statement is handed to every
enabled policy. Violations are reported with file, line, and column.

Examples:
  # Lint a single file
  critic lint --file script.pl

  # Lint a directory tree
  critic lint --dir lib/

  # Strict mode (every violation is fatal, regardless of severity)
  critic lint --file script.pl --strict

  # JSON output for CI/CD
  critic lint --file script.pl --format json`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "source file to lint")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of source files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat every violation as fatal")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "", "output format: text, json (overrides config)")
}

func runLint(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" && len(args) == 0 {
		return fmt.Errorf("either --file, --dir, or file arguments must be specified")
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if lintFlags.format != "" {
		cfg.Output.Format = lintFlags.format
	}

	files, err := collectFiles(cfg, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files found")
	}

	c := critic.New(enabledPolicies(cfg), logger,
		critic.WithSeverityOverrides(cfg.SeverityOverrides()))

	start := time.Now()
	report := lintFiles(c, files)

	if cfg.History.Enabled {
		recordRun(cfg, logger, report, start, time.Since(start), len(files))
	}

	switch cfg.Output.Format {
	case "json":
		if err := cli.RenderJSON(os.Stdout, report); err != nil {
			return err
		}
	default:
		if err := cli.RenderText(os.Stdout, report, cfg.Output.Verbose); err != nil {
			return err
		}
	}

	return lintExitError(cfg, report)
}

// collectFiles resolves --file, --dir, and positional arguments into the
// list of files to lint, sorted for stable output.
func collectFiles(cfg *config.Config, args []string) ([]string, error) {
	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}
	files = append(files, args...)

	if lintFlags.dir != "" {
		found, err := sourceFilesUnder(cfg, lintFlags.dir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	sort.Strings(files)
	return files, nil
}

// sourceFilesUnder walks dir and returns every file with a configured
// source extension, skipping hidden directories.
func sourceFilesUnder(cfg *config.Config, dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, want := range cfg.Watch.Extensions {
			if ext == strings.ToLower(want) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list source files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// lintFiles critiques every file, turning parse failures into per-file
// results rather than aborting the run.
func lintFiles(c *critic.Critic, files []string) *cli.Report {
	report := &cli.Report{Results: make([]cli.FileResult, 0, len(files))}
	for _, file := range files {
		result := cli.FileResult{File: file}
		violations, err := c.CritiqueFile(file)
		if err != nil {
			result.ParseError = err.Error()
		} else {
			result.Violations = violations
		}
		report.Results = append(report.Results, result)
	}
	return report
}

func recordRun(cfg *config.Config, logger *slog.Logger, report *cli.Report, start time.Time, duration time.Duration, files int) {
	store, err := history.Open(cfg.History, logger)
	if err != nil {
		logger.Warn("history store unavailable", "error", err)
		return
	}
	defer store.Close()

	var all []critic.Violation
	for _, fr := range report.Results {
		all = append(all, fr.Violations...)
	}
	if _, err := store.RecordRun(context.Background(), start, duration, files, all); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}

// lintExitError decides the process outcome: parse errors always fail; in
// strict mode any violation fails; otherwise only violations at or above
// the configured severity threshold fail.
func lintExitError(cfg *config.Config, report *cli.Report) error {
	if report.ParseErrorCount() > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d file(s) failed to parse", report.ParseErrorCount()))
	}
	if lintFlags.strict && report.ViolationCount() > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d violation(s)", report.ViolationCount()))
	}
	if n := report.CountAtOrAbove(cfg.SeverityThreshold()); n > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("%d violation(s) at or above severity %s", n, cfg.SeverityThreshold()))
	}
	return nil
}
