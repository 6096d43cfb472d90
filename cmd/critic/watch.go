package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"perlhq/critic/pkg/cli"
	"perlhq/critic/pkg/critic"
	"perlhq/critic/pkg/history"
	"perlhq/critic/pkg/telemetry/metrics"
	"perlhq/critic/pkg/watch"
)

var watchFlags struct {
	dir string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-lint sources whenever they change",
	Long: `Watch a directory tree and re-lint changed Perl sources.

Changes are debounced so editor write bursts trigger a single re-lint.
When metrics are enabled in the configuration, a Prometheus /metrics
endpoint reports run counts, violation counts per policy, and check
durations. When history is enabled, every re-lint is recorded and the
retention pruner runs on its cron schedule.

Example:
  critic watch --dir lib/`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.dir, "dir", "d", ".", "directory to watch")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []critic.Option{critic.WithSeverityOverrides(cfg.SeverityOverrides())}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Metrics)
		opts = append(opts, critic.WithObserver(collector))

		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server := &http.Server{Addr: cfg.Metrics.ListenAddress, Handler: mux}
		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Metrics.ListenAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer server.Shutdown(context.Background())
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History, logger)
		if err != nil {
			return err
		}
		defer store.Close()

		scheduler := history.NewScheduler(store, cfg.History, logger)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	c := critic.New(enabledPolicies(cfg), logger, opts...)

	relint := func() error {
		start := time.Now()
		files, err := sourceFilesUnder(cfg, watchFlags.dir)
		if err != nil {
			return err
		}
		report := lintFiles(c, files)
		if collector != nil {
			collector.RunCompleted(len(files))
		}
		if store != nil {
			var all []critic.Violation
			for _, fr := range report.Results {
				all = append(all, fr.Violations...)
			}
			if _, err := store.RecordRun(ctx, start, time.Since(start), len(files), all); err != nil {
				logger.Warn("failed to record run", "error", err)
			}
		}
		return cli.RenderText(os.Stdout, report, cfg.Output.Verbose)
	}

	// Initial pass before waiting for changes.
	if err := relint(); err != nil {
		return err
	}

	w, err := watch.New(watchFlags.dir, cfg.Watch, logger)
	if err != nil {
		return err
	}
	if err := w.Watch(ctx, relint); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}
