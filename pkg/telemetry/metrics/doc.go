// Package metrics exposes Prometheus metrics for long-running critic
// sessions (watch mode).
//
// Metrics:
//   - critic_runs_total: lint runs completed
//   - critic_files_checked_total: files parsed and checked
//   - critic_violations_total: violations found, by policy
//   - critic_policy_check_duration_seconds: per-policy check duration
package metrics
