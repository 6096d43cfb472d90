package history

import (
	"fmt"
	"time"
)

// Run summarizes one recorded lint run.
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration"`
	Files      int           `json:"files"`
	Violations int           `json:"violations"`
}

// StoredViolation is one violation row of a recorded run.
type StoredViolation struct {
	RunID    string `json:"run_id"`
	Policy   string `json:"policy"`
	Severity int    `json:"severity"`
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Message  string `json:"message"`
}

// StorageError wraps a failure of the underlying database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("history storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
