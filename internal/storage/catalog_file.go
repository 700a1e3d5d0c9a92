package storage

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	SectionMorning  = "Morgenroutine"
	SectionWeekly   = "Wochenplan"
	SectionEvening  = "Abendroutine"
	SectionMissions = "Nebenmissionen"
)

// LoadCatalogDoc reads the tasks file. A missing file yields an empty
// catalog; a corrupt file is an error, because silently dropping the task
// definitions would make every day look empty.
func LoadCatalogDoc(path string) (CatalogDoc, error) {
	var doc CatalogDoc
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("catalog read: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("catalog parse %s: %w", path, err)
	}
	return doc, nil
}

// AppendTask adds a task to the named section and rewrites the tasks file.
// This is the insertion interface for external tools; the new task becomes
// visible on the next catalog load. For the weekday section, weekday names
// the sub-list (Montag..Sonntag).
func AppendTask(path, section, weekday, name string, xp int) error {
	doc, err := LoadCatalogDoc(path)
	if err != nil {
		return err
	}

	entry := TaskEntry{Task: name, XP: xp}
	switch section {
	case SectionMorning:
		doc.Morgenroutine = append(doc.Morgenroutine, entry)
	case SectionEvening:
		doc.Abendroutine = append(doc.Abendroutine, entry)
	case SectionMissions:
		doc.Nebenmissionen = append(doc.Nebenmissionen, entry)
	case SectionWeekly:
		if weekday == "" {
			return fmt.Errorf("catalog append: weekday required for %s", SectionWeekly)
		}
		if doc.Wochenplan == nil {
			doc.Wochenplan = map[string][]TaskEntry{}
		}
		doc.Wochenplan[weekday] = append(doc.Wochenplan[weekday], entry)
	default:
		return fmt.Errorf("catalog append: unknown section %q", section)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("catalog encode: %w", err)
	}
	return WriteFileAtomic(path, data, 0o644)
}
