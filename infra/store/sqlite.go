package store

import (
	"database/sql"
	"encoding/json"

	"github.com/kilianp07/macc/core/measure"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists measures in a SQLite database. The per-year
// detail is stored as a JSON document alongside the headline columns.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS measures (
        id TEXT PRIMARY KEY,
        name TEXT,
        sector TEXT,
        abatement_tco2 REAL,
        cost_per_tco2 REAL,
        selected INTEGER,
        details TEXT,
        seq INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Save inserts or replaces the measure by id.
func (s *SQLiteStore) Save(m measure.Measure) error {
	details, err := json.Marshal(m.Details)
	if err != nil {
		return err
	}
	sel := 0
	if m.Selected {
		sel = 1
	}
	_, err = s.db.Exec(`INSERT INTO measures (id, name, sector, abatement_tco2, cost_per_tco2, selected, details, seq)
        VALUES (?, ?, ?, ?, ?, ?, ?, COALESCE((SELECT seq FROM measures WHERE id = ?), (SELECT COALESCE(MAX(seq), 0) + 1 FROM measures)))
        ON CONFLICT(id) DO UPDATE SET
            name = excluded.name,
            sector = excluded.sector,
            abatement_tco2 = excluded.abatement_tco2,
            cost_per_tco2 = excluded.cost_per_tco2,
            selected = excluded.selected,
            details = excluded.details`,
		m.ID, m.Name, m.Sector, m.AbatementTCO2, m.CostPerTCO2, sel, string(details), m.ID)
	return err
}

// Get returns the measure with the given id.
func (s *SQLiteStore) Get(id string) (measure.Measure, bool, error) {
	row := s.db.QueryRow(`SELECT id, name, sector, abatement_tco2, cost_per_tco2, selected, details
        FROM measures WHERE id = ?`, id)
	m, err := scanMeasure(row.Scan)
	if err == sql.ErrNoRows {
		return measure.Measure{}, false, nil
	}
	if err != nil {
		return measure.Measure{}, false, err
	}
	return m, true, nil
}

// List returns all measures in insertion order.
func (s *SQLiteStore) List() ([]measure.Measure, error) {
	rows, err := s.db.Query(`SELECT id, name, sector, abatement_tco2, cost_per_tco2, selected, details
        FROM measures ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []measure.Measure
	for rows.Next() {
		m, err := scanMeasure(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the measure with the given id.
func (s *SQLiteStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM measures WHERE id = ?`, id)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func scanMeasure(scan func(dest ...any) error) (measure.Measure, error) {
	var m measure.Measure
	var sel int
	var details string
	if err := scan(&m.ID, &m.Name, &m.Sector, &m.AbatementTCO2, &m.CostPerTCO2, &sel, &details); err != nil {
		return measure.Measure{}, err
	}
	m.Selected = sel != 0
	if err := json.Unmarshal([]byte(details), &m.Details); err != nil {
		return measure.Measure{}, err
	}
	return m, nil
}
