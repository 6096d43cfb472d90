package history

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"perlhq/critic/pkg/config"
	"perlhq/critic/pkg/critic"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TIMESTAMP NOT NULL,
	duration_ms INTEGER NOT NULL,
	files       INTEGER NOT NULL,
	violations  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS violations (
	run_id   TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	policy   TEXT NOT NULL,
	severity INTEGER NOT NULL,
	file     TEXT NOT NULL,
	line     INTEGER NOT NULL,
	col      INTEGER NOT NULL,
	message  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
CREATE INDEX IF NOT EXISTS idx_violations_run_id ON violations(run_id);
`

// Store is the SQLite-backed lint run history.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if necessary) the history database at the configured
// path and ensures the schema exists.
func Open(cfg config.HistoryConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history")

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	s := &Store{db: db, logger: logger}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("history store opened", "path", cfg.Path)
	return s, nil
}

func (s *Store) initialize() error {
	if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return &StorageError{Op: "enable_wal", Err: err}
	}
	if _, err := s.db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return &StorageError{Op: "enable_foreign_keys", Err: err}
	}
	if _, err := s.db.Exec(schema); err != nil {
		return &StorageError{Op: "create_schema", Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores one lint run and its violations, returning the run ID.
func (s *Store) RecordRun(ctx context.Context, startedAt time.Time, duration time.Duration, files int, violations []critic.Violation) (string, error) {
	id := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", &StorageError{Op: "begin", Err: err}
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, duration_ms, files, violations) VALUES (?, ?, ?, ?, ?)`,
		id, startedAt.UTC(), duration.Milliseconds(), files, len(violations),
	)
	if err != nil {
		return "", &StorageError{Op: "insert_run", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO violations (run_id, policy, severity, file, line, col, message) VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", &StorageError{Op: "prepare_violation", Err: err}
	}
	defer stmt.Close()

	for _, v := range violations {
		_, err = stmt.ExecContext(ctx,
			id, v.Policy, int(v.Severity), v.Location.File, v.Location.Line, v.Location.Column, v.Message,
		)
		if err != nil {
			return "", &StorageError{Op: "insert_violation", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", &StorageError{Op: "commit", Err: err}
	}

	s.logger.Debug("run recorded",
		"run_id", id,
		"files", files,
		"violations", len(violations),
	)
	return id, nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, files, violations FROM runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, &StorageError{Op: "query_runs", Err: err}
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		if err := rows.Scan(&r.ID, &r.StartedAt, &durationMs, &r.Files, &r.Violations); err != nil {
			return nil, &StorageError{Op: "scan_run", Err: err}
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query_runs", Err: err}
	}
	return runs, nil
}

// RunViolations returns the violation rows of one run, in insertion order.
func (s *Store) RunViolations(ctx context.Context, runID string) ([]StoredViolation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, policy, severity, file, line, col, message FROM violations WHERE run_id = ?`,
		runID,
	)
	if err != nil {
		return nil, &StorageError{Op: "query_violations", Err: err}
	}
	defer rows.Close()

	var out []StoredViolation
	for rows.Next() {
		var v StoredViolation
		if err := rows.Scan(&v.RunID, &v.Policy, &v.Severity, &v.File, &v.Line, &v.Column, &v.Message); err != nil {
			return nil, &StorageError{Op: "scan_violation", Err: err}
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query_violations", Err: err}
	}
	return out, nil
}

// Prune deletes runs older than retentionDays and, when maxRuns > 0, any
// runs beyond the newest maxRuns. It returns the number of runs deleted.
func (s *Store) Prune(ctx context.Context, retentionDays, maxRuns int) (int64, error) {
	var deleted int64

	if retentionDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
		res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, cutoff)
		if err != nil {
			return deleted, &StorageError{Op: "prune_age", Err: err}
		}
		n, _ := res.RowsAffected()
		deleted += n
	}

	if maxRuns > 0 {
		res, err := s.db.ExecContext(ctx,
			`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY started_at DESC LIMIT ?)`,
			maxRuns,
		)
		if err != nil {
			return deleted, &StorageError{Op: "prune_count", Err: err}
		}
		n, _ := res.RowsAffected()
		deleted += n
	}

	// Violations of deleted runs go with them via ON DELETE CASCADE.
	if deleted > 0 {
		s.logger.Info("history pruned", "deleted_runs", deleted)
	}
	return deleted, nil
}
