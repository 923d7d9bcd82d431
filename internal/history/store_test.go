package history_test

import (
	"context"
	"testing"

	"ordo/internal/history"
	"ordo/internal/testsupport"
)

func TestStoreJournalsRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	runID, err := store.BeginRun(ctx, cfg.Archive.Destination)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	records := []history.GroupRecord{
		{RunID: runID, Title: "Oldboy 2003", Tag: "Korean", Status: "copied", FilesCopied: 3},
		{RunID: runID, Title: "Lost Film", Tag: "Korean", Status: "orphaned"},
		{RunID: runID, Title: "Broken", Tag: "Korean", Status: "failed", Detail: "disk full"},
	}
	for _, record := range records {
		if err := store.RecordGroup(ctx, record); err != nil {
			t.Fatalf("RecordGroup: %v", err)
		}
	}

	if err := store.FinishRun(ctx, runID, 1, 0, 1, 1); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d", len(runs))
	}
	run := runs[0]
	if run.ID != runID || run.Copied != 1 || run.Failed != 1 || run.Orphaned != 1 {
		t.Fatalf("run = %+v", run)
	}
	if !run.Finished() {
		t.Fatal("expected finished run")
	}

	groups, err := store.GroupsForRun(ctx, runID)
	if err != nil {
		t.Fatalf("GroupsForRun: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("groups = %d", len(groups))
	}
	if groups[0].Title != "Oldboy 2003" || groups[2].Detail != "disk full" {
		t.Fatalf("groups = %+v", groups)
	}
}

func TestStoreUnfinishedRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	if _, err := store.BeginRun(ctx, cfg.Archive.Destination); err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	runs, err := store.RecentRuns(ctx, 1)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Finished() {
		t.Fatalf("expected one unfinished run, got %+v", runs)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	runID, err := store.BeginRun(context.Background(), cfg.Archive.Destination)
	if err != nil {
		t.Fatalf("BeginRun: %v", err)
	}
	if err := store.FinishRun(context.Background(), runID, 0, 0, 0, 0); err != nil {
		t.Fatalf("FinishRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	runs, err := reopened.RecentRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("runs after reopen = %+v", runs)
	}
}

func TestFinishUnknownRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.FinishRun(context.Background(), "nope", 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for unknown run id")
	}
}
