package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// JSONStore persists the ledger and mission set as JSON files. Two ledger
// shapes are accepted on read, because older trackers wrote either one:
//
//   - array of records: [{"Datum": "2024-05-01", "XP": 5, ...}, ...]
//   - object keyed by date: {"2024-05-01": {"denicit": 0, ...}, ...}
//
// Writes always produce the array shape, sorted by date.
type JSONStore struct {
	LedgerPath   string
	MissionsPath string
}

func NewJSONStore(ledgerPath, missionsPath string) *JSONStore {
	return &JSONStore{LedgerPath: ledgerPath, MissionsPath: missionsPath}
}

func (s *JSONStore) Close() error { return nil }

// jsonDayRecord is the array-shape wire format. Field names match the
// original log files (German column headers).
type jsonDayRecord struct {
	Datum    string             `json:"Datum"`
	XP       int                `json:"XP"`
	Erledigt []string           `json:"Erledigt,omitempty"`
	Mengen   map[string]float64 `json:"Mengen,omitempty"`
	Formen   []string           `json:"Formen,omitempty"`
}

// jsonQuantityDay is the object-shape wire format of the consumption log.
type jsonQuantityDay struct {
	Denicit  float64  `json:"denicit"`
	Cigs     float64  `json:"cigs"`
	WeedG    float64  `json:"weed_g"`
	WeedForm []string `json:"weed_form"`
}

func (s *JSONStore) LoadLedger(ctx context.Context) (map[string]DayRecord, Warning) {
	records := map[string]DayRecord{}

	data, err := os.ReadFile(s.LedgerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return records, fmt.Errorf("ledger read: %w", err)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err == nil {
		return decodeRecordArray(raw)
	}

	var byDate map[string]jsonQuantityDay
	if err := json.Unmarshal(data, &byDate); err == nil {
		for date, day := range byDate {
			if !validDayKey(date) {
				continue
			}
			rec := ZeroRecord(date)
			rec.Quantities["denicit"] = day.Denicit
			rec.Quantities["cigs"] = day.Cigs
			rec.Quantities["weed_g"] = day.WeedG
			rec.Forms = day.WeedForm
			records[date] = rec
		}
		return records, nil
	}

	return map[string]DayRecord{}, fmt.Errorf("ledger: unrecognized format in %s", s.LedgerPath)
}

// decodeRecordArray resolves duplicate dates by keeping the later-declared
// entry, and degrades malformed entries to zero records for their date.
func decodeRecordArray(raw []json.RawMessage) (map[string]DayRecord, Warning) {
	records := map[string]DayRecord{}
	var warn Warning

	for _, msg := range raw {
		var entry jsonDayRecord
		if err := json.Unmarshal(msg, &entry); err != nil {
			// Try to at least salvage the date so the day stays visible.
			var probe struct {
				Datum string `json:"Datum"`
			}
			if json.Unmarshal(msg, &probe) == nil && validDayKey(probe.Datum) {
				records[probe.Datum] = ZeroRecord(probe.Datum)
			}
			warn = fmt.Errorf("ledger: malformed record skipped: %w", err)
			continue
		}
		if !validDayKey(entry.Datum) {
			continue
		}
		rec := DayRecord{
			Date:       entry.Datum,
			XP:         entry.XP,
			Done:       entry.Erledigt,
			Quantities: entry.Mengen,
			Forms:      entry.Formen,
		}
		if rec.Quantities == nil {
			rec.Quantities = map[string]float64{}
		}
		records[entry.Datum] = rec
	}
	return records, warn
}

func (s *JSONStore) SaveLedger(ctx context.Context, records map[string]DayRecord) error {
	out := make([]jsonDayRecord, 0, len(records))
	for date, rec := range records {
		out = append(out, jsonDayRecord{
			Datum:    date,
			XP:       rec.XP,
			Erledigt: rec.Done,
			Mengen:   rec.Quantities,
			Formen:   rec.Forms,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datum < out[j].Datum })

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("ledger encode: %w", err)
	}
	return WriteFileAtomic(s.LedgerPath, data, 0o644)
}

func (s *JSONStore) LoadMissions(ctx context.Context) ([]string, Warning) {
	data, err := os.ReadFile(s.MissionsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("missions read: %w", err)
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("missions: unrecognized format in %s", s.MissionsPath)
	}
	return names, nil
}

func (s *JSONStore) SaveMissions(ctx context.Context, names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	data, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("missions encode: %w", err)
	}
	return WriteFileAtomic(s.MissionsPath, data, 0o644)
}

func validDayKey(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
