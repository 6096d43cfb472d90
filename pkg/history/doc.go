// Package history records lint runs in an embedded SQLite database.
//
// Each run gets a UUID, a timestamp, and its violation rows, so a team can
// track how a codebase trends over time and query past results without
// re-linting. Retention is enforced by age and by run count, either on
// demand or on a cron schedule in watch mode.
//
// The store uses the pure-Go modernc.org/sqlite driver, keeping the critic
// binary free of cgo.
package history
