package engine

import (
	"sort"
	"time"

	"github.com/glied2m/xp-tracker/internal/storage"
)

// Ledger is the date-keyed store of day records. At most one record exists
// per date; a later upsert replaces the whole record (last writer wins).
type Ledger struct {
	records map[string]storage.DayRecord
}

// NewLedger wraps a loaded snapshot. A nil map yields an empty ledger.
func NewLedger(records map[string]storage.DayRecord) *Ledger {
	if records == nil {
		records = map[string]storage.DayRecord{}
	}
	return &Ledger{records: records}
}

// Get returns the stored record for the date, or a zero record. It never
// fails and never creates a persisted entry.
func (l *Ledger) Get(date time.Time) storage.DayRecord {
	key := DayKey(date)
	if rec, ok := l.records[key]; ok {
		return rec
	}
	return storage.ZeroRecord(key)
}

// Upsert replaces any existing record for the date. Idempotent under
// identical input.
func (l *Ledger) Upsert(date time.Time, rec storage.DayRecord) {
	rec.Date = DayKey(date)
	if rec.Quantities == nil {
		rec.Quantities = map[string]float64{}
	}
	l.records[rec.Date] = rec
}

// Range returns one record per calendar day in [start, end] inclusive,
// ascending, with zero records filling the gaps.
func (l *Ledger) Range(start, end time.Time) []storage.DayRecord {
	var out []storage.DayRecord
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		out = append(out, l.Get(day))
	}
	return out
}

// Earliest returns the earliest stored date, or false for an empty ledger.
func (l *Ledger) Earliest() (time.Time, bool) {
	if len(l.records) == 0 {
		return time.Time{}, false
	}
	keys := make([]string, 0, len(l.records))
	for key := range l.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	t, err := ParseDay(keys[0])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Len returns the number of stored records.
func (l *Ledger) Len() int { return len(l.records) }

// Snapshot returns the backing map for persistence.
func (l *Ledger) Snapshot() map[string]storage.DayRecord { return l.records }
