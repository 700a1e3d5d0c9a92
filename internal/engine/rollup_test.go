package engine

import (
	"testing"

	"github.com/glied2m/xp-tracker/internal/storage"
)

func TestRollupWindows(t *testing.T) {
	l := NewLedger(nil)
	for _, day := range []string{"2024-04-20", "2024-05-03", "2024-05-10"} {
		rec := storage.ZeroRecord(day)
		rec.XP = 10
		l.Upsert(mustDay(t, day), rec)
	}
	ref := mustDay(t, "2024-05-15")

	week := Rollup(l, ref, Last7Days)
	if len(week) != 7 {
		t.Fatalf("Last7Days len=%d, want 7", len(week))
	}
	if week[0].Date != "2024-05-09" || week[6].Date != "2024-05-15" {
		t.Fatalf("Last7Days bounds %s..%s, want 2024-05-09..2024-05-15", week[0].Date, week[6].Date)
	}

	month := Rollup(l, ref, MonthToDate)
	if len(month) != 15 {
		t.Fatalf("MonthToDate len=%d, want 15", len(month))
	}
	if month[0].Date != "2024-05-01" {
		t.Fatalf("MonthToDate start=%s, want 2024-05-01", month[0].Date)
	}

	all := Rollup(l, ref, AllTime)
	if all[0].Date != "2024-04-20" || all[len(all)-1].Date != "2024-05-15" {
		t.Fatalf("AllTime bounds %s..%s", all[0].Date, all[len(all)-1].Date)
	}
	if len(all) != 26 {
		t.Fatalf("AllTime len=%d, want 26", len(all))
	}
}

func TestRollupAllTimeEmptyLedger(t *testing.T) {
	l := NewLedger(nil)
	ref := mustDay(t, "2024-05-15")
	all := Rollup(l, ref, AllTime)
	if len(all) != 1 || all[0].Date != "2024-05-15" {
		t.Fatalf("empty AllTime=%v, want single zero record for ref", all)
	}
}

func TestCost(t *testing.T) {
	joint := storage.ZeroRecord("2024-05-01")
	joint.Quantities[MetricWeedGrams] = 1.0
	joint.Forms = []string{"Joint"}

	bong := storage.ZeroRecord("2024-05-02")
	bong.Quantities[MetricWeedGrams] = 0.5
	bong.Forms = []string{"Bong"}

	got := Cost([]storage.DayRecord{joint, bong}, 7.0)
	if got != 10.5 {
		t.Fatalf("cost=%v, want 10.5", got)
	}

	// Cost never mutates the records.
	if joint.Quantities[MetricWeedGrams] != 1.0 || bong.Quantities[MetricWeedGrams] != 0.5 {
		t.Fatalf("records mutated by Cost")
	}
}

func TestRewardEligibility(t *testing.T) {
	table := []Reward{
		{Label: "A", Cost: 30},
		{Label: "B", Cost: 50},
		{Label: "C", Cost: 60},
	}
	got := Evaluate(45, table)
	want := []bool{true, false, false}
	for i, a := range got {
		if a.Affordable != want[i] {
			t.Fatalf("reward %d affordable=%v, want %v", i, a.Affordable, want[i])
		}
	}
	if got[0].Reward.Label != "A" || got[2].Reward.Label != "C" {
		t.Fatalf("table order not preserved: %+v", got)
	}
}

func TestWeekdaySectionResolution(t *testing.T) {
	c := testCatalog()

	// 2024-05-01 is a Wednesday; the Mittwoch sub-list applies.
	wed := mustDay(t, "2024-05-01")
	if _, ok := c.Lookup(wed, "Sport"); !ok {
		t.Fatalf("Sport missing on Mittwoch")
	}

	thu := mustDay(t, "2024-05-02")
	if _, ok := c.Lookup(thu, "Sport"); ok {
		t.Fatalf("Sport must not appear on Donnerstag")
	}

	task, ok := c.Lookup(wed, "T")
	if !ok || task.Recurring {
		t.Fatalf("Nebenmission T should resolve as non-recurring, got %+v ok=%v", task, ok)
	}
}
