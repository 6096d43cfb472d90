package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"perlhq/critic/pkg/config"
	"perlhq/critic/pkg/critic"
	"perlhq/critic/pkg/telemetry/logging"

	// Register the shipped policies.
	_ "perlhq/critic/pkg/critic/policy/controlstructures"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "critic",
	Short: "Critic - static analysis for Perl source code",
	Long: `Critic lints Perl source files with statement-level policies.

It parses each file into a token tree and applies every enabled policy to
every statement, reporting violations with precise source locations:
  - for/foreach loops that slurp a file handle instead of reading line by line

Violations carry a severity from 1 (gentle) to 5 (brutal); the configured
threshold decides which of them fail the run.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "critic.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the tool configuration and builds the logger.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
		cfg.Output.Verbose = true
	}

	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// enabledPolicies resolves the registered policies against the config.
func enabledPolicies(cfg *config.Config) []critic.Policy {
	var out []critic.Policy
	for _, p := range critic.DefaultRegistry.All() {
		if cfg.PolicyEnabled(p.Name()) {
			out = append(out, p)
		}
	}
	return out
}
