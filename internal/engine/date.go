package engine

import (
	"fmt"
	"time"
)

// DayLayout is the ISO day key used everywhere a date is persisted or
// compared. Lexicographic order on keys equals chronological order.
const DayLayout = "2006-01-02"

// DayKey normalizes a time to its ISO day key.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// ParseDay parses an ISO day key into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

var germanWeekdays = [7]string{
	"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
}

// GermanWeekday returns the weekday name used as key into the weekday
// section of the catalog.
func GermanWeekday(t time.Time) string {
	return germanWeekdays[int(t.Weekday())]
}
