package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/glied2m/xp-tracker/internal/storage"
)

// Service wires the catalog, ledger and mission set over a storage
// backend. Single logical writer: every save recomputes the snapshot in
// memory and write-replaces it.
type Service struct {
	store    storage.Store
	catalog  *Catalog
	ledger   *Ledger
	missions *MissionSet
	notices  []string
}

func NewService(store storage.Store, catalog *Catalog) *Service {
	return &Service{
		store:    store,
		catalog:  catalog,
		ledger:   NewLedger(nil),
		missions: NewMissionSet(nil),
	}
}

// Load reads the ledger and mission snapshots. Storage problems degrade to
// empty state and are collected as notices, never returned as errors.
func (s *Service) Load(ctx context.Context) {
	s.notices = nil

	records, warn := s.store.LoadLedger(ctx)
	if warn != nil {
		s.notices = append(s.notices, warn.Error())
	}
	s.ledger = NewLedger(records)

	names, warn := s.store.LoadMissions(ctx)
	if warn != nil {
		s.notices = append(s.notices, warn.Error())
	}
	s.missions = NewMissionSet(names)
}

// Notices returns the non-blocking load warnings from the last Load.
func (s *Service) Notices() []string { return s.notices }

func (s *Service) Catalog() *Catalog     { return s.catalog }
func (s *Service) Ledger() *Ledger       { return s.ledger }
func (s *Service) Missions() *MissionSet { return s.missions }

// SaveResult reports what a day save did.
type SaveResult struct {
	Date        string
	XP          int
	Done        []string
	NewMissions []string
}

// SaveDay resolves the session's checked tasks for the day into a frozen
// XP total, replaces the day's record, retires checked one-time tasks, and
// persists both snapshots. Repeating the same save is a no-op.
func (s *Service) SaveDay(ctx context.Context, date time.Time, sess *Session) (*SaveResult, error) {
	xp := sess.XP(date, s.catalog, s.missions)
	done := sess.CheckedNames(date)

	rec := storage.ZeroRecord(DayKey(date))
	rec.XP = xp
	rec.Done = done
	s.ledger.Upsert(date, rec)

	added := sess.Commit(date, s.catalog, s.missions)

	if err := s.store.SaveLedger(ctx, s.ledger.Snapshot()); err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}
	if err := s.store.SaveMissions(ctx, s.missions.Names()); err != nil {
		return nil, fmt.Errorf("save missions: %w", err)
	}

	return &SaveResult{Date: rec.Date, XP: xp, Done: done, NewMissions: added}, nil
}

// SaveConsumption replaces the day's record with a consumption payload.
func (s *Service) SaveConsumption(ctx context.Context, date time.Time, quantities map[string]float64, forms []string) error {
	rec := storage.ZeroRecord(DayKey(date))
	for name, amount := range quantities {
		rec.Quantities[name] = amount
	}
	rec.Forms = forms
	s.ledger.Upsert(date, rec)

	if err := s.store.SaveLedger(ctx, s.ledger.Snapshot()); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// DailyTotal returns the frozen XP total stored for the day; zero for
// unsaved days. Eligibility was resolved at save time, so a later mission
// retirement or reset never changes history.
func (s *Service) DailyTotal(date time.Time) int {
	return s.ledger.Get(date).XP
}

// Rollup materializes a gap-filled window ending at ref.
func (s *Service) Rollup(ref time.Time, w Window) []storage.DayRecord {
	return Rollup(s.ledger, ref, w)
}

// RewardEligibility evaluates the reward table against the day's total.
func (s *Service) RewardEligibility(date time.Time, table []Reward) []Affordability {
	return Evaluate(s.DailyTotal(date), table)
}

// ResetMissions clears the mission set and persists the empty snapshot.
// Day records and their totals stay as they were.
func (s *Service) ResetMissions(ctx context.Context) error {
	s.missions.Reset()
	if err := s.store.SaveMissions(ctx, s.missions.Names()); err != nil {
		return fmt.Errorf("save missions: %w", err)
	}
	return nil
}
