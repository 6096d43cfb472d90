// Package logging builds the structured logger used across the critic tool.
//
// It is a thin constructor over log/slog: configuration selects the minimum
// level and the output format (text for humans, JSON for machines). The CLI
// logs to stderr so reports on stdout stay clean.
package logging
