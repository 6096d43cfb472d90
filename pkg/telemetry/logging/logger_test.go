package logging

import (
	"strings"
	"testing"

	"perlhq/critic/pkg/config"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		wantErr bool
	}{
		{"text", config.LoggingConfig{Level: "info", Format: "text"}, false},
		{"json", config.LoggingConfig{Level: "debug", Format: "json"}, false},
		{"empty defaults", config.LoggingConfig{}, false},
		{"unknown format", config.LoggingConfig{Level: "info", Format: "xml"}, true},
		{"unknown level", config.LoggingConfig{Level: "trace", Format: "text"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger, err := New(tt.cfg, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			logger.Info("hello", "key", "value")
			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("log output missing message: %q", buf.String())
			}
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf strings.Builder
	logger, err := New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Debug("quiet")
	logger.Info("quiet too")
	logger.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("below-threshold records must be dropped: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("at-threshold records must pass: %q", out)
	}
}
