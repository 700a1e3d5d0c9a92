package engine

import (
	"time"

	"github.com/glied2m/xp-tracker/internal/storage"
)

// TaskDef is one catalog task resolved for display and scoring. Recurring
// is derived from the section: everything recurs except side missions.
type TaskDef struct {
	Section   string
	Name      string
	XP        int
	Recurring bool
}

// Catalog holds the task definitions for a run. Immutable once loaded;
// edits go through the external tasks file and show up on the next load.
type Catalog struct {
	doc storage.CatalogDoc
}

func NewCatalog(doc storage.CatalogDoc) *Catalog {
	return &Catalog{doc: doc}
}

// TasksFor resolves the task list for a given day: both fixed sections,
// the weekday sub-list matching the day, and the one-time missions.
func (c *Catalog) TasksFor(date time.Time) []TaskDef {
	var out []TaskDef
	out = appendSection(out, storage.SectionMorning, c.doc.Morgenroutine, true)
	out = appendSection(out, storage.SectionWeekly, c.doc.Wochenplan[GermanWeekday(date)], true)
	out = appendSection(out, storage.SectionEvening, c.doc.Abendroutine, true)
	out = appendSection(out, storage.SectionMissions, c.doc.Nebenmissionen, false)
	return out
}

// Missions returns the one-time task definitions.
func (c *Catalog) Missions() []TaskDef {
	return appendSection(nil, storage.SectionMissions, c.doc.Nebenmissionen, false)
}

// Lookup finds a task by name among the tasks valid on the given day.
func (c *Catalog) Lookup(date time.Time, name string) (TaskDef, bool) {
	for _, t := range c.TasksFor(date) {
		if t.Name == name {
			return t, true
		}
	}
	return TaskDef{}, false
}

func appendSection(dst []TaskDef, section string, entries []storage.TaskEntry, recurring bool) []TaskDef {
	for _, e := range entries {
		dst = append(dst, TaskDef{
			Section:   section,
			Name:      e.Task,
			XP:        e.XP,
			Recurring: recurring,
		})
	}
	return dst
}
