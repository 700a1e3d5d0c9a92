package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteStore(db)
}

func TestSQLiteSaveReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	first := ZeroRecord("2024-05-01")
	first.XP = 5
	if err := s.SaveLedger(ctx, map[string]DayRecord{"2024-05-01": first}); err != nil {
		t.Fatalf("save 1: %v", err)
	}

	// The second snapshot no longer contains the first day.
	second := ZeroRecord("2024-05-02")
	second.XP = 30
	if err := s.SaveLedger(ctx, map[string]DayRecord{"2024-05-02": second}); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	records, warn := s.LoadLedger(ctx)
	if warn != nil {
		t.Fatalf("warn: %v", warn)
	}
	if len(records) != 1 {
		t.Fatalf("snapshot not replaced: %v", records)
	}
	if records["2024-05-02"].XP != 30 {
		t.Fatalf("record: %+v", records["2024-05-02"])
	}
}

func TestSQLiteMalformedPayloadDegradesToZero(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO day_log (date, xp, done) VALUES ('2024-05-01', 5, 'kein json')
	`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	records, warn := s.LoadLedger(ctx)
	if warn == nil {
		t.Fatalf("malformed payload should produce a notice")
	}
	rec, ok := records["2024-05-01"]
	if !ok {
		t.Fatalf("day must survive with a zero record")
	}
	if !rec.IsZero() {
		t.Fatalf("record should be zero: %+v", rec)
	}
}

func TestSQLiteMissionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	if err := s.SaveMissions(ctx, []string{"T", "T", "A"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	names, warn := s.LoadMissions(ctx)
	if warn != nil {
		t.Fatalf("warn: %v", warn)
	}
	if len(names) != 2 || names[0] != "A" || names[1] != "T" {
		t.Fatalf("missions=%v, want deduplicated sorted [A T]", names)
	}
}
