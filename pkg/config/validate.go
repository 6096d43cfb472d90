package config

import (
	"fmt"

	"perlhq/critic/pkg/critic"
)

var (
	validOutputFormats = map[string]bool{"text": true, "json": true}
	validLogLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats    = map[string]bool{"text": true, "json": true}
)

// Validate checks the configuration for invalid values. It is called after
// defaults and environment overrides have been applied.
func Validate(cfg *Config) error {
	if _, err := critic.ParseSeverity(cfg.Severity); err != nil {
		return fmt.Errorf("severity: %w", err)
	}

	if !validOutputFormats[cfg.Output.Format] {
		return fmt.Errorf("output.format: unknown format %q (expected text or json)", cfg.Output.Format)
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}
	if !validLogFormats[cfg.Logging.Format] {
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}

	for name, pc := range cfg.Policies {
		if pc.Severity != "" {
			if _, err := critic.ParseSeverity(pc.Severity); err != nil {
				return fmt.Errorf("policies[%s].severity: %w", name, err)
			}
		}
	}

	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days: must not be negative")
	}
	if cfg.History.MaxRuns < 0 {
		return fmt.Errorf("history.max_runs: must not be negative")
	}
	if cfg.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative")
	}
	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddress == "" {
		return fmt.Errorf("metrics.listen_address: required when metrics are enabled")
	}

	return nil
}

// SeverityThreshold returns the parsed reporting threshold.
func (c *Config) SeverityThreshold() critic.Severity {
	sev, err := critic.ParseSeverity(c.Severity)
	if err != nil {
		return critic.SeverityGentle
	}
	return sev
}

// PolicyEnabled reports whether the named policy is enabled.
func (c *Config) PolicyEnabled(name string) bool {
	pc, ok := c.Policies[name]
	if !ok || pc.Enabled == nil {
		return true
	}
	return *pc.Enabled
}

// SeverityOverrides returns the per-policy severity overrides, parsed.
func (c *Config) SeverityOverrides() map[string]critic.Severity {
	out := make(map[string]critic.Severity)
	for name, pc := range c.Policies {
		if pc.Severity == "" {
			continue
		}
		if sev, err := critic.ParseSeverity(pc.Severity); err == nil {
			out[name] = sev
		}
	}
	return out
}
