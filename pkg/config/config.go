package config

import "time"

// Config is the root configuration for the critic tool.
type Config struct {
	// Severity is the reporting threshold: violations below it do not
	// affect the exit status. Accepts a name ("gentle".."brutal") or a
	// digit ("1".."5").
	Severity string `yaml:"severity"`

	// Policies holds per-policy overrides keyed by policy name.
	Policies map[string]PolicyConfig `yaml:"policies"`

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// PolicyConfig overrides a single policy.
type PolicyConfig struct {
	// Enabled disables the policy when explicitly false. Unset means
	// enabled.
	Enabled *bool `yaml:"enabled"`

	// Severity overrides the policy's default severity. Accepts a name
	// or a digit; empty means no override.
	Severity string `yaml:"severity"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`

	// Verbose adds the policy explanation paragraph to text output.
	Verbose bool `yaml:"verbose"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `yaml:"level"`

	// Format is "json" or "text".
	Format string `yaml:"format"`
}

// HistoryConfig controls the lint run history store.
type HistoryConfig struct {
	// Enabled turns run recording on.
	Enabled bool `yaml:"enabled"`

	// Path is the SQLite database file path.
	Path string `yaml:"path"`

	// RetentionDays is how long runs are kept before pruning.
	// Zero disables age-based pruning.
	RetentionDays int `yaml:"retention_days"`

	// MaxRuns caps the number of stored runs. Zero means no cap.
	MaxRuns int `yaml:"max_runs"`

	// PruneSchedule is a cron expression for automatic pruning in watch
	// mode, e.g. "0 3 * * *". Empty disables scheduled pruning.
	PruneSchedule string `yaml:"prune_schedule"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// Debounce is the quiet period after a file change before re-linting.
	Debounce time.Duration `yaml:"debounce"`

	// Extensions is the list of file extensions to watch.
	Extensions []string `yaml:"extensions"`
}

// MetricsConfig controls the Prometheus metrics endpoint in watch mode.
type MetricsConfig struct {
	// Enabled starts the metrics listener in watch mode.
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address for the /metrics endpoint.
	ListenAddress string `yaml:"listen_address"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}
