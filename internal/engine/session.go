package engine

import (
	"sort"
	"time"
)

// MissionSet is the process-wide set of one-time task names that have ever
// been completed and saved. It only grows, except for an explicit Reset.
type MissionSet struct {
	done map[string]struct{}
}

func NewMissionSet(names []string) *MissionSet {
	m := &MissionSet{done: map[string]struct{}{}}
	for _, n := range names {
		m.done[n] = struct{}{}
	}
	return m
}

func (m *MissionSet) Has(name string) bool {
	_, ok := m.done[name]
	return ok
}

// Add inserts a name; re-insertion is a no-op.
func (m *MissionSet) Add(name string) {
	m.done[name] = struct{}{}
}

// Reset clears the whole set, making every one-time task eligible again.
// Historical day records are untouched.
func (m *MissionSet) Reset() {
	m.done = map[string]struct{}{}
}

func (m *MissionSet) Len() int { return len(m.done) }

// Names returns the set contents sorted, for persistence and display.
func (m *MissionSet) Names() []string {
	out := make([]string, 0, len(m.done))
	for n := range m.done {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Eligible reports whether a task counts on any day: recurring tasks
// always do, one-time tasks only until they appear in the mission set.
func (m *MissionSet) Eligible(task TaskDef) bool {
	if task.Recurring {
		return true
	}
	return !m.Has(task.Name)
}

// Session is the ephemeral pre-save checkbox state, a map of day key to
// the set of pending task names. It is owned by the caller and never
// conflated with persisted day records.
type Session struct {
	pending map[string]map[string]struct{}
}

func NewSession() *Session {
	return &Session{pending: map[string]map[string]struct{}{}}
}

// Toggle checks or unchecks a task for the day. Unchecking before save
// removes it entirely, so it will not be committed.
func (s *Session) Toggle(date time.Time, name string, checked bool) {
	key := DayKey(date)
	if checked {
		if s.pending[key] == nil {
			s.pending[key] = map[string]struct{}{}
		}
		s.pending[key][name] = struct{}{}
		return
	}
	delete(s.pending[key], name)
}

// Checked reports whether a task is currently checked for the day.
func (s *Session) Checked(date time.Time, name string) bool {
	_, ok := s.pending[DayKey(date)][name]
	return ok
}

// CheckedNames returns the day's checked task names, sorted.
func (s *Session) CheckedNames(date time.Time) []string {
	day := s.pending[DayKey(date)]
	out := make([]string, 0, len(day))
	for n := range day {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// XP computes the day's total over checked, eligible catalog tasks.
// One-time tasks already in the mission set contribute nothing even if a
// stale checkbox claims them.
func (s *Session) XP(date time.Time, catalog *Catalog, missions *MissionSet) int {
	xp := 0
	for _, task := range catalog.TasksFor(date) {
		if !s.Checked(date, task.Name) {
			continue
		}
		if !missions.Eligible(task) {
			continue
		}
		xp += task.XP
	}
	return xp
}

// Commit moves every checked non-recurring task of the day into the
// mission set and returns the names newly added. Session state is
// authoritative: tasks unchecked before the save are not committed.
// Set insertion makes repeated commits a no-op.
func (s *Session) Commit(date time.Time, catalog *Catalog, missions *MissionSet) []string {
	var added []string
	for _, task := range catalog.TasksFor(date) {
		if task.Recurring || !s.Checked(date, task.Name) {
			continue
		}
		if !missions.Has(task.Name) {
			added = append(added, task.Name)
		}
		missions.Add(task.Name)
	}
	sort.Strings(added)
	return added
}
