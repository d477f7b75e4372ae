package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/okotila/liftsight/internal/testhelpers"
)

func TestNewDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})

	// Writes go through the read-write pool and must be visible on the
	// read-only pool.
	startedAt := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	if _, err := db.ReadWrite.ExecContext(ctx, `
		INSERT INTO sessions (id, workout_type, started_at, completed_at, duration_seconds)
		VALUES (?, ?, ?, ?, ?)`,
		"s1", "strength", startedAt, startedAt.Add(time.Hour), 3600); err != nil {
		t.Fatalf("insert session: %v", err)
	}

	var count int
	if err := db.ReadOnly.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 1 {
		t.Errorf("session count = %d, want 1", count)
	}

	// The read-only pool must reject writes.
	if _, err := db.ReadOnly.ExecContext(ctx, "DELETE FROM sessions"); err == nil {
		t.Error("read-only pool accepted a write")
	}
}

func TestNewDatabaseSchemaIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Re-applying the embedded schema on an initialized database must be a
	// no-op.
	if _, err := db.ReadWrite.ExecContext(ctx, schemaDefinition); err != nil {
		t.Fatalf("re-apply schema: %v", err)
	}
}
