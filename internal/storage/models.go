package storage

// DayRecord is the canonical per-day shape shared by the habit and the
// consumption variant. Date is an ISO day key ("2006-01-02"). XP holds the
// resolved total frozen at save time; Done holds the task names that were
// checked when the day was saved. Quantities and Forms carry the
// consumption payload (tablets, cigarettes, grams, consumption forms).
type DayRecord struct {
	Date       string
	XP         int
	Done       []string
	Quantities map[string]float64
	Forms      []string
}

// ZeroRecord returns a structurally valid empty record for the given day.
func ZeroRecord(date string) DayRecord {
	return DayRecord{Date: date, Quantities: map[string]float64{}}
}

// IsZero reports whether the record carries no payload beyond its date.
func (r DayRecord) IsZero() bool {
	if r.XP != 0 || len(r.Done) > 0 || len(r.Forms) > 0 {
		return false
	}
	for _, v := range r.Quantities {
		if v != 0 {
			return false
		}
	}
	return true
}

// TaskEntry is one catalog entry as stored in the tasks file.
type TaskEntry struct {
	Task string `json:"task"`
	XP   int    `json:"xp"`
}

// CatalogDoc mirrors the on-disk tasks file: fixed sections as arrays,
// the weekday section as a sub-map keyed by German weekday name, and the
// one-time missions section.
type CatalogDoc struct {
	Morgenroutine  []TaskEntry            `json:"Morgenroutine"`
	Abendroutine   []TaskEntry            `json:"Abendroutine"`
	Wochenplan     map[string][]TaskEntry `json:"Wochenplan"`
	Nebenmissionen []TaskEntry            `json:"Nebenmissionen"`
}
