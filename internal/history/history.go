// Package history records ecosim runs in a SQLite database.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ecosim/internal/sims/ecosim"
)

// DefaultLimit caps Totals when no limit is given.
const DefaultLimit = 1000

// DB wraps a SQLite connection holding one run's history.
type DB struct {
	conn *sqlx.DB
}

// StepRow is the stored summary of one step.
type StepRow struct {
	Step              int `db:"step" json:"step"`
	Plants            int `db:"plants" json:"plants"`
	Herbivores        int `db:"herbivores" json:"herbivores"`
	Predators         int `db:"predators" json:"predators"`
	PlantsGrown       int `db:"plants_grown" json:"plantsGrown"`
	PlantsEaten       int `db:"plants_eaten" json:"plantsEaten"`
	HerbivoresStarved int `db:"herbivores_starved" json:"herbivoresStarved"`
	HerbivoresBorn    int `db:"herbivores_born" json:"herbivoresBorn"`
	HerbivoresEaten   int `db:"herbivores_eaten" json:"herbivoresEaten"`
	PredatorsStarved  int `db:"predators_starved" json:"predatorsStarved"`
	PredatorsBorn     int `db:"predators_born" json:"predatorsBorn"`
}

// Totals returns the row's population totals.
func (r StepRow) Totals() ecosim.Counts {
	return ecosim.Counts{Plants: r.Plants, Herbivores: r.Herbivores, Predators: r.Predators}
}

// CellRow is the stored population of one cell after one step.
type CellRow struct {
	Step       int `db:"step"`
	Row        int `db:"cell_row"`
	Col        int `db:"cell_col"`
	Plants     int `db:"plants"`
	Herbivores int `db:"herbivores"`
	Predators  int `db:"predators"`
}

// Open opens or creates a history database at path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS steps (
		step INTEGER PRIMARY KEY,
		plants INTEGER NOT NULL,
		herbivores INTEGER NOT NULL,
		predators INTEGER NOT NULL,
		plants_grown INTEGER NOT NULL,
		plants_eaten INTEGER NOT NULL,
		herbivores_starved INTEGER NOT NULL,
		herbivores_born INTEGER NOT NULL,
		herbivores_eaten INTEGER NOT NULL,
		predators_starved INTEGER NOT NULL,
		predators_born INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS cells (
		step INTEGER NOT NULL,
		cell_row INTEGER NOT NULL,
		cell_col INTEGER NOT NULL,
		plants INTEGER NOT NULL,
		herbivores INTEGER NOT NULL,
		predators INTEGER NOT NULL,
		PRIMARY KEY (step, cell_row, cell_col)
	);

	CREATE TABLE IF NOT EXISTS run_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveConfig stores the run configuration.
func (db *DB) SaveConfig(cfg ecosim.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = db.conn.Exec("INSERT OR REPLACE INTO run_meta (key, value) VALUES (?, ?)", "config", string(data))
	return err
}

// Config loads the stored run configuration.
func (db *DB) Config() (ecosim.Config, error) {
	var value string
	if err := db.conn.Get(&value, "SELECT value FROM run_meta WHERE key = ?", "config"); err != nil {
		return ecosim.Config{}, err
	}
	var cfg ecosim.Config
	if err := json.Unmarshal([]byte(value), &cfg); err != nil {
		return ecosim.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Record stores the summary of one step, replacing any earlier row for it.
func (db *DB) Record(st ecosim.StepStats) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO steps
		(step, plants, herbivores, predators, plants_grown, plants_eaten,
		 herbivores_starved, herbivores_born, herbivores_eaten, predators_starved, predators_born)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.Step, st.Totals.Plants, st.Totals.Herbivores, st.Totals.Predators,
		st.PlantsGrown, st.PlantsEaten, st.HerbivoresStarved, st.HerbivoresBorn,
		st.HerbivoresEaten, st.PredatorsStarved, st.PredatorsBorn,
	)
	return err
}

// RecordCells stores every populated cell of v for the given step.
func (db *DB) RecordCells(step int, v ecosim.View) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cells WHERE step = ?", step); err != nil {
		return err
	}
	stmt, err := tx.Preparex("INSERT INTO cells (step, cell_row, cell_col, plants, herbivores, predators) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range v.Coords() {
		n := v.Counts(c)
		if _, err := stmt.Exec(step, c.Row, c.Col, n.Plants, n.Herbivores, n.Predators); err != nil {
			return fmt.Errorf("insert cell %s: %w", c, err)
		}
	}
	return tx.Commit()
}

// Totals returns step rows with from <= step <= to in ascending order. A
// non-positive limit uses DefaultLimit.
func (db *DB) Totals(from, to, limit int) ([]StepRow, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var rows []StepRow
	err := db.conn.Select(&rows,
		`SELECT step, plants, herbivores, predators, plants_grown, plants_eaten,
		        herbivores_starved, herbivores_born, herbivores_eaten, predators_starved, predators_born
		 FROM steps WHERE step >= ? AND step <= ?
		 ORDER BY step ASC LIMIT ?`,
		from, to, limit,
	)
	return rows, err
}

// Cells returns the stored cells of one step in row-major order.
func (db *DB) Cells(step int) ([]CellRow, error) {
	var rows []CellRow
	err := db.conn.Select(&rows,
		"SELECT step, cell_row, cell_col, plants, herbivores, predators FROM cells WHERE step = ? ORDER BY cell_row, cell_col",
		step,
	)
	return rows, err
}

// LastStep reports the highest recorded step, or 0 for an empty history.
func (db *DB) LastStep() (int, error) {
	var step int
	err := db.conn.Get(&step, "SELECT COALESCE(MAX(step), 0) FROM steps")
	return step, err
}
