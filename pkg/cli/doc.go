// Package cli provides shared helpers for the critic command line:
// error types that carry exit context, and text/JSON rendering of lint
// reports.
package cli
