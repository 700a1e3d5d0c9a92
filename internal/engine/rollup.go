package engine

import (
	"fmt"
	"time"

	"github.com/glied2m/xp-tracker/internal/storage"
)

// Window selects a fixed rollup range relative to a reference date.
type Window int

const (
	Last7Days Window = iota
	MonthToDate
	AllTime
)

func (w Window) String() string {
	switch w {
	case Last7Days:
		return "last 7 days"
	case MonthToDate:
		return "month to date"
	case AllTime:
		return "all time"
	default:
		return fmt.Sprintf("window(%d)", int(w))
	}
}

// Rollup returns one record per calendar day in the window, ascending and
// gap-filled with zero records. Last7Days covers [ref-6, ref]; MonthToDate
// covers [first of ref's month, ref]; AllTime covers [earliest stored day,
// ref] and collapses to ref alone on an empty ledger.
func Rollup(l *Ledger, ref time.Time, w Window) []storage.DayRecord {
	start := ref
	switch w {
	case Last7Days:
		start = ref.AddDate(0, 0, -6)
	case MonthToDate:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	case AllTime:
		if earliest, ok := l.Earliest(); ok && earliest.Before(ref) {
			start = earliest
		}
	}
	return l.Range(start, ref)
}

// XPSeries extracts the per-day XP totals from a rollup.
func XPSeries(records []storage.DayRecord) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = float64(rec.XP)
	}
	return out
}

// QuantitySeries extracts one metric's per-day amounts from a rollup.
// Missing metrics read as zero.
func QuantitySeries(records []storage.DayRecord, metric string) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = rec.Quantities[metric]
	}
	return out
}

// Sum reduces a series. An empty series sums to zero.
func Sum(series []float64) float64 {
	total := 0.0
	for _, v := range series {
		total += v
	}
	return total
}

// Mean reduces a series to its average. Undefined over an empty series:
// returns ErrEmptyInput rather than dividing by zero.
func Mean(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrEmptyInput
	}
	return Sum(series) / float64(len(series)), nil
}
