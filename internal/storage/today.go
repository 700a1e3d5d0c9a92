package storage

import (
	"encoding/json"
	"fmt"
)

// WriteTodayStatus writes the {date, xp} sidecar other tools poll after a
// save. Best-effort from the caller's perspective; failures here never
// block the save itself.
func WriteTodayStatus(path, date string, xp int) error {
	data, err := json.MarshalIndent(struct {
		Date string `json:"date"`
		XP   int    `json:"xp"`
	}{Date: date, XP: xp}, "", "  ")
	if err != nil {
		return fmt.Errorf("today status encode: %w", err)
	}
	return WriteFileAtomic(path, data, 0o644)
}
