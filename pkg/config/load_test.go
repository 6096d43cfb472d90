package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"perlhq/critic/pkg/critic"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "critic.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file failed: %v", err)
	}
	if cfg.Severity != DefaultSeverity {
		t.Errorf("severity = %q, want default %q", cfg.Severity, DefaultSeverity)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("logging.level = %q, want default %q", cfg.Logging.Level, DefaultLogLevel)
	}
	if cfg.Watch.Debounce != DefaultWatchDebounce {
		t.Errorf("watch.debounce = %v, want default %v", cfg.Watch.Debounce, DefaultWatchDebounce)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
severity: harsh
output:
  format: json
policies:
  ControlStructures::ProhibitForeachHandle:
    enabled: false
    severity: brutal
history:
  enabled: true
  retention_days: 30
watch:
  debounce: 500ms
  extensions: [".pl"]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Severity != "harsh" {
		t.Errorf("severity = %q, want harsh", cfg.Severity)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("output.format = %q, want json", cfg.Output.Format)
	}
	if cfg.PolicyEnabled("ControlStructures::ProhibitForeachHandle") {
		t.Error("policy must be disabled by the file")
	}
	if !cfg.PolicyEnabled("Some::Other") {
		t.Error("unconfigured policy must default to enabled")
	}
	overrides := cfg.SeverityOverrides()
	if overrides["ControlStructures::ProhibitForeachHandle"] != critic.SeverityBrutal {
		t.Errorf("severity override = %v, want brutal", overrides["ControlStructures::ProhibitForeachHandle"])
	}
	if !cfg.History.Enabled || cfg.History.RetentionDays != 30 {
		t.Errorf("history = %+v, want enabled with 30 day retention", cfg.History)
	}
	if cfg.History.Path != DefaultHistoryPath {
		t.Errorf("history.path = %q, want default %q", cfg.History.Path, DefaultHistoryPath)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("watch.debounce = %v, want 500ms", cfg.Watch.Debounce)
	}
	if len(cfg.Watch.Extensions) != 1 || cfg.Watch.Extensions[0] != ".pl" {
		t.Errorf("watch.extensions = %v, want [.pl]", cfg.Watch.Extensions)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "severity: gentle\n")

	t.Setenv("CRITIC_SEVERITY", "brutal")
	t.Setenv("CRITIC_LOG_LEVEL", "debug")
	t.Setenv("CRITIC_WATCH_DEBOUNCE", "1s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Severity != "brutal" {
		t.Errorf("severity = %q, env override must win over the file", cfg.Severity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("watch.debounce = %v, want 1s", cfg.Watch.Debounce)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "severity: [unclosed\n"},
		{"unknown severity", "severity: extreme\n"},
		{"unknown output format", "output:\n  format: xml\n"},
		{"unknown log level", "logging:\n  level: trace\n"},
		{"negative retention", "history:\n  retention_days: -1\n"},
		{"bad policy severity", "policies:\n  Some::Policy:\n    severity: nope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Errorf("LoadConfig accepted invalid configuration:\n%s", tt.content)
			}
		})
	}
}

func TestConfig_SeverityThreshold(t *testing.T) {
	cfg := Default()
	if got := cfg.SeverityThreshold(); got != critic.SeverityGentle {
		t.Errorf("default threshold = %v, want gentle", got)
	}
	cfg.Severity = "4"
	if got := cfg.SeverityThreshold(); got != critic.SeverityHarsh {
		t.Errorf("threshold = %v, want harsh", got)
	}
}
