package config

import "time"

// Default values applied to any field left unset in the config file.
const (
	DefaultSeverity      = "gentle"
	DefaultOutputFormat  = "text"
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultHistoryPath   = "critic-history.db"
	DefaultRetentionDays = 90
	DefaultWatchDebounce = 200 * time.Millisecond
	DefaultMetricsListen = "127.0.0.1:9090"
	DefaultMetricsNS     = "critic"
)

// DefaultWatchExtensions are the file extensions linted in watch mode.
var DefaultWatchExtensions = []string{".pl", ".pm", ".t"}

// Default returns a configuration populated entirely with defaults.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset field.
func ApplyDefaults(cfg *Config) {
	if cfg.Severity == "" {
		cfg.Severity = DefaultSeverity
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = DefaultRetentionDays
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultWatchDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string(nil), DefaultWatchExtensions...)
	}
	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListen
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNS
	}
}
