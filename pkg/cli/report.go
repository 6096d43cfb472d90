package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"perlhq/critic/pkg/critic"
)

// FileResult holds the lint outcome for a single source file.
type FileResult struct {
	File       string             `json:"file"`
	Violations []critic.Violation `json:"violations,omitempty"`
	ParseError string             `json:"parse_error,omitempty"`
}

// Report aggregates the outcome of one lint run.
type Report struct {
	Results []FileResult `json:"results"`
}

// ViolationCount returns the total number of violations in the report.
func (r *Report) ViolationCount() int {
	n := 0
	for _, fr := range r.Results {
		n += len(fr.Violations)
	}
	return n
}

// ParseErrorCount returns the number of files that failed to parse.
func (r *Report) ParseErrorCount() int {
	n := 0
	for _, fr := range r.Results {
		if fr.ParseError != "" {
			n++
		}
	}
	return n
}

// CountAtOrAbove returns the number of violations at or above the severity
// threshold.
func (r *Report) CountAtOrAbove(threshold critic.Severity) int {
	n := 0
	for _, fr := range r.Results {
		for _, v := range fr.Violations {
			if v.Severity >= threshold {
				n++
			}
		}
	}
	return n
}

// RenderText writes the report in the classic one-line-per-violation shape.
// With verbose set, each violation is followed by its explanation paragraph.
func RenderText(w io.Writer, report *Report, verbose bool) error {
	for _, fr := range report.Results {
		if fr.ParseError != "" {
			if _, err := fmt.Fprintf(w, "%s: parse error: %s\n", fr.File, fr.ParseError); err != nil {
				return err
			}
			continue
		}
		for _, v := range fr.Violations {
			if _, err := fmt.Fprintln(w, v.String()); err != nil {
				return err
			}
			if verbose && v.Explanation != "" {
				if _, err := fmt.Fprintf(w, "    %s\n", v.Explanation); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintf(w, "Summary: %d file(s), %d violation(s), %d parse error(s)\n",
		len(report.Results), report.ViolationCount(), report.ParseErrorCount())
	return err
}

// RenderJSON writes the report as indented JSON, for CI consumption.
func RenderJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
