package storage

import "context"

// Store abstracts the ledger and mission-set persistence behind one
// canonical in-memory shape, so the serialization format (sqlite, JSON,
// CSV) stays a swappable adapter.
//
// Load methods never fail hard: a missing or corrupt file degrades to the
// empty value, and the returned warning (if any) is a non-blocking notice
// for the caller to display. Save methods must replace the previous
// snapshot atomically.
type Store interface {
	// LoadLedger returns all persisted day records keyed by ISO date.
	LoadLedger(ctx context.Context) (map[string]DayRecord, Warning)
	// SaveLedger replaces the persisted ledger with the given snapshot.
	SaveLedger(ctx context.Context, records map[string]DayRecord) error

	// LoadMissions returns the names of permanently completed one-time tasks.
	LoadMissions(ctx context.Context) ([]string, Warning)
	// SaveMissions replaces the persisted mission set.
	SaveMissions(ctx context.Context, names []string) error

	Close() error
}

// Warning is a non-fatal load notice (storage missing, corrupt, partially
// unreadable). A nil Warning means the load was clean.
type Warning error
