package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"perlhq/critic/pkg/config"
	"perlhq/critic/pkg/critic"
	"perlhq/critic/pkg/ptree"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(config.HistoryConfig{Path: filepath.Join(t.TempDir(), "history.db")}, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleViolations() []critic.Violation {
	return []critic.Violation{
		{
			Policy:   "ControlStructures::ProhibitForeachHandle",
			Severity: critic.SeverityHarsh,
			Message:  `Readline inside "foreach" loop`,
			Location: ptree.Location{File: "lib/Bad.pm", Line: 12, Column: 10},
		},
		{
			Policy:   "ControlStructures::ProhibitForeachHandle",
			Severity: critic.SeverityHarsh,
			Message:  `Readline inside "for" loop`,
			Location: ptree.Location{File: "lib/Worse.pm", Line: 3, Column: 6},
		},
	}
}

func TestStore_RecordAndQuery(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Now().Add(-time.Minute)
	id, err := store.RecordRun(ctx, started, 250*time.Millisecond, 7, sampleViolations())
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if id == "" {
		t.Fatal("RecordRun returned an empty run ID")
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Files != 7 || run.Violations != 2 {
		t.Errorf("run = %+v, want id %s with 7 files and 2 violations", run, id)
	}
	if run.Duration != 250*time.Millisecond {
		t.Errorf("duration = %v, want 250ms", run.Duration)
	}

	stored, err := store.RunViolations(ctx, id)
	if err != nil {
		t.Fatalf("RunViolations failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("got %d stored violations, want 2", len(stored))
	}
	if stored[0].File != "lib/Bad.pm" || stored[0].Line != 12 || stored[0].Column != 10 {
		t.Errorf("stored[0] = %+v, want lib/Bad.pm:12:10", stored[0])
	}
	if stored[0].Severity != int(critic.SeverityHarsh) {
		t.Errorf("stored severity = %d, want %d", stored[0].Severity, critic.SeverityHarsh)
	}
}

func TestStore_RecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	var ids []string
	for i := 0; i < 3; i++ {
		id, err := store.RecordRun(ctx, base.Add(time.Duration(i)*time.Minute), time.Second, 1, nil)
		if err != nil {
			t.Fatalf("RecordRun %d failed: %v", i, err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(ctx, 2)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs with limit 2, want 2", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Errorf("runs ordered %s, %s; want newest first", runs[0].ID, runs[1].ID)
	}
}

func TestStore_PruneByAge(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.RecordRun(ctx, time.Now().AddDate(0, 0, -40), time.Second, 1, sampleViolations()); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	keep, err := store.RecordRun(ctx, time.Now(), time.Second, 1, nil)
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	deleted, err := store.Prune(ctx, 30, 0)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune deleted %d run(s), want 1", deleted)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != keep {
		t.Errorf("surviving runs = %v, want only the recent one", runs)
	}
}

func TestStore_PruneByCount(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		if _, err := store.RecordRun(ctx, base.Add(time.Duration(i)*time.Minute), time.Second, 1, nil); err != nil {
			t.Fatalf("RecordRun %d failed: %v", i, err)
		}
	}

	deleted, err := store.Prune(ctx, 0, 2)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("Prune deleted %d run(s), want 3", deleted)
	}
	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d surviving runs, want 2", len(runs))
	}
}

func TestStore_PruneCascadesViolations(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	id, err := store.RecordRun(ctx, time.Now().AddDate(0, 0, -40), time.Second, 1, sampleViolations())
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if _, err := store.Prune(ctx, 30, 0); err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	stored, err := store.RunViolations(ctx, id)
	if err != nil {
		t.Fatalf("RunViolations failed: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("pruned run still has %d violation row(s)", len(stored))
	}
}
