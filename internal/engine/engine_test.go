package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glied2m/xp-tracker/internal/storage"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("parse day %q: %v", s, err)
	}
	return d
}

func testCatalog() *Catalog {
	return NewCatalog(storage.CatalogDoc{
		Morgenroutine: []storage.TaskEntry{
			{Task: "Aufstehen", XP: 5},
			{Task: "Zähneputzen", XP: 5},
		},
		Wochenplan: map[string][]storage.TaskEntry{
			"Mittwoch": {{Task: "Sport", XP: 20}},
		},
		Abendroutine: []storage.TaskEntry{
			{Task: "Lesen", XP: 10},
		},
		Nebenmissionen: []storage.TaskEntry{
			{Task: "T", XP: 10},
		},
	})
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(storage.NewSQLiteStore(db), testCatalog())
	svc.Load(ctx)
	if notices := svc.Notices(); len(notices) != 0 {
		t.Fatalf("unexpected load notices: %v", notices)
	}
	return svc
}

func TestUpsertIdempotentAndLastWriteWins(t *testing.T) {
	l := NewLedger(nil)
	day := mustDay(t, "2024-05-01")

	r1 := storage.ZeroRecord("2024-05-01")
	r1.XP = 5
	r1.Done = []string{"Aufstehen"}

	l.Upsert(day, r1)
	l.Upsert(day, r1)
	if got := l.Get(day); got.XP != 5 || len(got.Done) != 1 {
		t.Fatalf("after double upsert: got %+v, want r1", got)
	}
	if l.Len() != 1 {
		t.Fatalf("ledger len=%d, want 1", l.Len())
	}

	r2 := storage.ZeroRecord("2024-05-01")
	r2.XP = 30
	l.Upsert(day, r2)
	got := l.Get(day)
	if got.XP != 30 {
		t.Fatalf("last write should win: got XP=%d, want 30", got.XP)
	}
	if len(got.Done) != 0 {
		t.Fatalf("replace must not merge fields: got Done=%v", got.Done)
	}
}

func TestRangeGapFill(t *testing.T) {
	l := NewLedger(nil)
	day := mustDay(t, "2024-05-03")
	rec := storage.ZeroRecord("2024-05-03")
	rec.XP = 15
	l.Upsert(day, rec)

	start := mustDay(t, "2024-05-01")
	out := l.Range(start, start.AddDate(0, 0, 6))
	if len(out) != 7 {
		t.Fatalf("range len=%d, want 7", len(out))
	}
	for i, r := range out {
		want := DayKey(start.AddDate(0, 0, i))
		if r.Date != want {
			t.Fatalf("entry %d date=%s, want %s", i, r.Date, want)
		}
	}
	if out[2].XP != 15 {
		t.Fatalf("stored day XP=%d, want 15", out[2].XP)
	}
	if out[0].XP != 0 || out[6].XP != 0 {
		t.Fatalf("gap days must be zero records: %+v", out)
	}
}

func TestMissionMonotonicityAndReset(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day1 := mustDay(t, "2024-05-01")
	sess := NewSession()
	sess.Toggle(day1, "T", true)
	res, err := svc.SaveDay(ctx, day1, sess)
	if err != nil {
		t.Fatalf("save day 1: %v", err)
	}
	if res.XP != 10 {
		t.Fatalf("day 1 XP=%d, want 10", res.XP)
	}
	if len(res.NewMissions) != 1 || res.NewMissions[0] != "T" {
		t.Fatalf("new missions=%v, want [T]", res.NewMissions)
	}

	// Day 2: the mission is retired without being checked again; a stale
	// checkbox contributes nothing.
	day2 := mustDay(t, "2024-05-02")
	task, _ := svc.Catalog().Lookup(day2, "T")
	if svc.Missions().Eligible(task) {
		t.Fatalf("mission T should be ineligible after save")
	}
	sess2 := NewSession()
	sess2.Toggle(day2, "T", true)
	if xp := sess2.XP(day2, svc.Catalog(), svc.Missions()); xp != 0 {
		t.Fatalf("retired mission counted: XP=%d, want 0", xp)
	}

	// Historical total stays frozen.
	if got := svc.DailyTotal(day1); got != 10 {
		t.Fatalf("day 1 total after retirement=%d, want 10", got)
	}

	if err := svc.ResetMissions(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	day3 := mustDay(t, "2024-05-03")
	task, _ = svc.Catalog().Lookup(day3, "T")
	if !svc.Missions().Eligible(task) {
		t.Fatalf("mission T should be eligible again after reset")
	}
	if got := svc.DailyTotal(day1); got != 10 {
		t.Fatalf("reset must not change history: day 1 total=%d, want 10", got)
	}
}

func TestUncheckBeforeSaveIsNotCommitted(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := mustDay(t, "2024-05-01")
	sess := NewSession()
	sess.Toggle(day, "T", true)
	sess.Toggle(day, "T", false)

	if _, err := svc.SaveDay(ctx, day, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if svc.Missions().Has("T") {
		t.Fatalf("unchecked-before-save mission must not be committed")
	}
}

func TestRepeatedSaveIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := mustDay(t, "2024-05-01")
	sess := NewSession()
	sess.Toggle(day, "Aufstehen", true)
	sess.Toggle(day, "T", true)

	first, err := svc.SaveDay(ctx, day, sess)
	if err != nil {
		t.Fatalf("save 1: %v", err)
	}
	second, err := svc.SaveDay(ctx, day, sess)
	if err != nil {
		t.Fatalf("save 2: %v", err)
	}
	// The mission was already retired by the first save, so the second
	// save resolves a lower total and reports no new retirements.
	if first.XP != 15 || second.XP != 5 {
		t.Fatalf("XP first=%d second=%d, want 15 then 5", first.XP, second.XP)
	}
	if len(second.NewMissions) != 0 {
		t.Fatalf("second save retired again: %v", second.NewMissions)
	}
	if svc.Missions().Len() != 1 {
		t.Fatalf("mission set len=%d, want 1", svc.Missions().Len())
	}
}

func TestEndToEndMorgenroutine(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := mustDay(t, "2024-05-01")
	sess := NewSession()
	sess.Toggle(day, "Aufstehen", true)
	if _, err := svc.SaveDay(ctx, day, sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := svc.DailyTotal(day); got != 5 {
		t.Fatalf("daily total=%d, want 5", got)
	}

	records := svc.Rollup(day, Last7Days)
	if len(records) != 7 {
		t.Fatalf("rollup len=%d, want 7", len(records))
	}
	series := XPSeries(records)
	for i := 0; i < 6; i++ {
		if series[i] != 0 {
			t.Fatalf("entry %d=%v, want 0", i, series[i])
		}
	}
	if series[6] != 5 {
		t.Fatalf("entry 6=%v, want 5", series[6])
	}
}

func TestPersistenceAcrossReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	svc := NewService(storage.NewSQLiteStore(db), testCatalog())
	svc.Load(ctx)

	day := mustDay(t, "2024-05-01")
	sess := NewSession()
	sess.Toggle(day, "T", true)
	if _, err := svc.SaveDay(ctx, day, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	db2, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer db2.Close()
	svc2 := NewService(storage.NewSQLiteStore(db2), testCatalog())
	svc2.Load(ctx)

	if got := svc2.DailyTotal(day); got != 10 {
		t.Fatalf("reloaded total=%d, want 10", got)
	}
	if !svc2.Missions().Has("T") {
		t.Fatalf("mission set not persisted")
	}
}

func TestMeanEmptyInput(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Mean(nil) err=%v, want ErrEmptyInput", err)
	}
	mean, err := Mean([]float64{2, 4})
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if mean != 3 {
		t.Fatalf("mean=%v, want 3", mean)
	}
}
