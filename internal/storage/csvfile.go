package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// CSVStore persists the ledger as a semicolon-separated file, one row per
// day: Datum;XP;Erledigt;Mengen;Formen. List cells are comma-joined,
// quantity cells are comma-joined name=value pairs. The mission set is one
// task name per row.
type CSVStore struct {
	LedgerPath   string
	MissionsPath string
}

func NewCSVStore(ledgerPath, missionsPath string) *CSVStore {
	return &CSVStore{LedgerPath: ledgerPath, MissionsPath: missionsPath}
}

func (s *CSVStore) Close() error { return nil }

var csvHeader = []string{"Datum", "XP", "Erledigt", "Mengen", "Formen"}

func (s *CSVStore) LoadLedger(ctx context.Context) (map[string]DayRecord, Warning) {
	records := map[string]DayRecord{}

	data, err := os.ReadFile(s.LedgerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return records, nil
		}
		return records, fmt.Errorf("ledger read: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = ';'
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return map[string]DayRecord{}, fmt.Errorf("ledger: unrecognized format in %s", s.LedgerPath)
	}

	var warn Warning
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == csvHeader[0] {
			continue
		}
		if len(row) == 0 || !validDayKey(row[0]) {
			continue
		}
		date := row[0]

		rec, ok := parseCSVRow(row)
		if !ok {
			records[date] = ZeroRecord(date)
			warn = fmt.Errorf("ledger: malformed row for %s", date)
			continue
		}
		// Later-declared rows win on duplicate dates.
		records[date] = rec
	}
	return records, warn
}

func parseCSVRow(row []string) (DayRecord, bool) {
	if len(row) < 5 {
		return DayRecord{}, false
	}
	rec := ZeroRecord(row[0])

	xp, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return DayRecord{}, false
	}
	rec.XP = xp
	rec.Done = splitCell(row[2])
	rec.Forms = splitCell(row[4])

	for _, pair := range splitCell(row[3]) {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			return DayRecord{}, false
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return DayRecord{}, false
		}
		rec.Quantities[strings.TrimSpace(name)] = amount
	}
	return rec, true
}

func (s *CSVStore) SaveLedger(ctx context.Context, records map[string]DayRecord) error {
	dates := make([]string, 0, len(records))
	for date := range records {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("ledger encode: %w", err)
	}
	for _, date := range dates {
		rec := records[date]
		pairs := make([]string, 0, len(rec.Quantities))
		for name, amount := range rec.Quantities {
			pairs = append(pairs, name+"="+strconv.FormatFloat(amount, 'f', -1, 64))
		}
		sort.Strings(pairs)
		row := []string{
			date,
			strconv.Itoa(rec.XP),
			strings.Join(rec.Done, ","),
			strings.Join(pairs, ","),
			strings.Join(rec.Forms, ","),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("ledger encode: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("ledger encode: %w", err)
	}
	return WriteFileAtomic(s.LedgerPath, buf.Bytes(), 0o644)
}

func (s *CSVStore) LoadMissions(ctx context.Context) ([]string, Warning) {
	data, err := os.ReadFile(s.MissionsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("missions read: %w", err)
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

func (s *CSVStore) SaveMissions(ctx context.Context, names []string) error {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	var buf bytes.Buffer
	for _, name := range sorted {
		buf.WriteString(name)
		buf.WriteByte('\n')
	}
	return WriteFileAtomic(s.MissionsPath, buf.Bytes(), 0o644)
}

func splitCell(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
