// Critic is a static analyzer for Perl source code.
//
// It parses Perl files into a token tree and applies statement-level
// policies, reporting each violation with its source location.
//
// Usage:
//
//	# Lint a single file
//	critic lint --file script.pl
//
//	# Lint a directory tree
//	critic lint --dir lib/
//
//	# JSON output for CI/CD
//	critic lint --file script.pl --format json
//
//	# Re-lint on change, with optional Prometheus metrics
//	critic watch --dir lib/
//
//	# List registered policies
//	critic policies
//
//	# Inspect past lint runs
//	critic history runs
package main

func main() {
	Execute()
}
