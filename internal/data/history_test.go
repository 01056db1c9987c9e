package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestHistory(t *testing.T) *historyRepo {
	t.Helper()
	repo, err := NewHistoryRepo(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to create history repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo.(*historyRepo)
}

func TestHistoryRepo_RecordAndCount(t *testing.T) {
	repo := newTestHistory(t)
	ctx := context.Background()

	count, err := repo.CountByUser(ctx, "U1")
	if err != nil {
		t.Fatalf("CountByUser failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 records initially, got %d", count)
	}

	if err := repo.Record(ctx, "U1", "ja", 12); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := repo.Record(ctx, "U1", "en", 5); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := repo.Record(ctx, "U2", "ko", 3); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	count, err = repo.CountByUser(ctx, "U1")
	if err != nil {
		t.Fatalf("CountByUser failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 records for U1, got %d", count)
	}
}

func TestHistoryRepo_CleanupStale(t *testing.T) {
	repo := newTestHistory(t)
	ctx := context.Background()

	if err := repo.Record(ctx, "U1", "ja", 12); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Nothing older than an hour ago
	removed, err := repo.CleanupStale(ctx, time.Now().Add(-1*time.Hour))
	if err != nil {
		t.Fatalf("CleanupStale failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("Expected no stale records, got %d", removed)
	}

	// Everything older than a future cutoff
	removed, err = repo.CleanupStale(ctx, time.Now().Add(1*time.Hour))
	if err != nil {
		t.Fatalf("CleanupStale failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 stale record, got %d", removed)
	}

	count, _ := repo.CountByUser(ctx, "U1")
	if count != 0 {
		t.Errorf("Expected no records after cleanup, got %d", count)
	}
}
