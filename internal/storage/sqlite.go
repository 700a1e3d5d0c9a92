package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// SQLiteStore is the default Store backend. The full snapshot is replaced
// inside one transaction on save, matching the read-snapshot /
// write-replace contract of the file backends.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) LoadLedger(ctx context.Context) (map[string]DayRecord, Warning) {
	records := map[string]DayRecord{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, xp, done, quantities, forms
		FROM day_log
		ORDER BY date ASC
	`)
	if err != nil {
		return records, fmt.Errorf("ledger load: %w", err)
	}
	defer rows.Close()

	var warn Warning
	for rows.Next() {
		var (
			date       string
			xp         int
			done       sql.NullString
			quantities sql.NullString
			forms      sql.NullString
		)
		if err := rows.Scan(&date, &xp, &done, &quantities, &forms); err != nil {
			warn = fmt.Errorf("ledger scan: %w", err)
			continue
		}

		rec := ZeroRecord(date)
		rec.XP = xp
		if !decodeJSONColumn(done, &rec.Done) ||
			!decodeJSONColumn(quantities, &rec.Quantities) ||
			!decodeJSONColumn(forms, &rec.Forms) {
			// Malformed payload: keep the day, drop the payload.
			records[date] = ZeroRecord(date)
			warn = fmt.Errorf("ledger: malformed payload for %s", date)
			continue
		}
		if rec.Quantities == nil {
			rec.Quantities = map[string]float64{}
		}
		records[date] = rec
	}
	if err := rows.Err(); err != nil {
		return records, fmt.Errorf("ledger rows: %w", err)
	}
	return records, warn
}

func (s *SQLiteStore) SaveLedger(ctx context.Context, records map[string]DayRecord) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM day_log`); err != nil {
			return fmt.Errorf("ledger clear: %w", err)
		}
		for date, rec := range records {
			done, err := encodeJSONColumn(rec.Done)
			if err != nil {
				return fmt.Errorf("encode done for %s: %w", date, err)
			}
			quantities, err := encodeJSONColumn(rec.Quantities)
			if err != nil {
				return fmt.Errorf("encode quantities for %s: %w", date, err)
			}
			forms, err := encodeJSONColumn(rec.Forms)
			if err != nil {
				return fmt.Errorf("encode forms for %s: %w", date, err)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO day_log (date, xp, done, quantities, forms)
				VALUES (?, ?, ?, ?, ?)
			`, date, rec.XP, done, quantities, forms); err != nil {
				return fmt.Errorf("ledger insert %s: %w", date, err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadMissions(ctx context.Context) ([]string, Warning) {
	rows, err := s.db.QueryContext(ctx, `SELECT task FROM missions_done ORDER BY task ASC`)
	if err != nil {
		return nil, fmt.Errorf("missions load: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return names, fmt.Errorf("missions scan: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return names, fmt.Errorf("missions rows: %w", err)
	}
	return names, nil
}

func (s *SQLiteStore) SaveMissions(ctx context.Context, names []string) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM missions_done`); err != nil {
			return fmt.Errorf("missions clear: %w", err)
		}
		for _, name := range names {
			if _, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO missions_done (task) VALUES (?)
			`, name); err != nil {
				return fmt.Errorf("missions insert %q: %w", name, err)
			}
		}
		return nil
	})
}

func encodeJSONColumn(v any) (*string, error) {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return nil, nil
		}
	case map[string]float64:
		if len(val) == 0 {
			return nil, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}

func decodeJSONColumn[T any](col sql.NullString, dst *T) bool {
	if !col.Valid || col.String == "" {
		return true
	}
	return json.Unmarshal([]byte(col.String), dst) == nil
}
