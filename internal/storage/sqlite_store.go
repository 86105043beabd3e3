package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ewanmak/junket/internal/logger"
	"github.com/ewanmak/junket/internal/models"
)

// schemaVersion is recorded in PRAGMA user_version.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS plan (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	attendees INTEGER NOT NULL,
	currency TEXT NOT NULL,
	next_event_id INTEGER NOT NULL,
	next_day_id INTEGER NOT NULL,
	saved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	duration TEXT NOT NULL,
	per_person_cost REAL NOT NULL,
	minimum_cost REAL NOT NULL,
	category TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS days (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	label TEXT NOT NULL,
	notes TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS schedule_items (
	day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	event_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	duration TEXT NOT NULL,
	per_person_cost REAL NOT NULL,
	minimum_cost REAL NOT NULL,
	category TEXT NOT NULL,
	PRIMARY KEY (day_id, position)
);
`

// SQLiteStore persists the plan in a SQLite database. The write model
// is the same as the JSON store: Save rewrites the whole document in
// one transaction. Scheduled items carry their own copies of the event
// fields, so catalog edits never touch rows already on a day.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.Save(models.DefaultPlan())
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		db.Close()
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version == 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			db.Close()
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	} else if version > schemaVersion {
		db.Close()
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}

	s.db = db
	return nil
}

// Load restores the plan from the database. A missing file or an
// unreadable document falls back to the seed dataset, matching the
// JSON store's contract.
func (s *SQLiteStore) Load() (*models.Plan, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		logger.Info("no persisted plan, using seed dataset", "path", s.path)
		return models.DefaultPlan(), nil
	}

	if err := s.open(); err != nil {
		logger.Warn("persisted plan is unreadable, using seed dataset", "path", s.path, "error", err)
		return models.DefaultPlan(), nil
	}

	p, err := s.load()
	if err != nil {
		logger.Warn("persisted plan is malformed, using seed dataset", "path", s.path, "error", err)
		return models.DefaultPlan(), nil
	}

	normalize(p)
	return p, nil
}

func (s *SQLiteStore) load() (*models.Plan, error) {
	p := &models.Plan{Schedule: make(map[string][]models.Event)}

	var savedAt string
	row := s.db.QueryRow(`SELECT title, description, attendees, currency, next_event_id, next_day_id, saved_at FROM plan WHERE id = 1`)
	if err := row.Scan(&p.Title, &p.Description, &p.Attendees, &p.Currency, &p.NextEventID, &p.NextDayID, &savedAt); err != nil {
		return nil, fmt.Errorf("failed to load plan row: %w", err)
	}
	if savedAt != "" {
		t, err := time.Parse(time.RFC3339, savedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse saved_at: %w", err)
		}
		p.SavedAt = t
	}

	rows, err := s.db.Query(`SELECT id, name, description, duration, per_person_cost, minimum_cost, category FROM events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Duration, &e.PerPersonCost, &e.MinimumCost, &e.Category); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		p.Events = append(p.Events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	dayRows, err := s.db.Query(`SELECT id, label, notes FROM days ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load days: %w", err)
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d models.Day
		if err := dayRows.Scan(&d.ID, &d.Label, &d.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		p.Days = append(p.Days, d)
		p.Schedule[d.ID] = []models.Event{}
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.db.Query(`SELECT day_id, event_id, name, description, duration, per_person_cost, minimum_cost, category FROM schedule_items ORDER BY day_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var dayID string
		var e models.Event
		if err := itemRows.Scan(&dayID, &e.ID, &e.Name, &e.Description, &e.Duration, &e.PerPersonCost, &e.MinimumCost, &e.Category); err != nil {
			return nil, fmt.Errorf("failed to scan schedule item: %w", err)
		}
		p.Schedule[dayID] = append(p.Schedule[dayID], e)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	return p, nil
}

// Save rewrites the whole document in one transaction.
func (s *SQLiteStore) Save(p *models.Plan) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"schedule_items", "days", "events", "plan"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	savedAt := ""
	if !p.SavedAt.IsZero() {
		savedAt = p.SavedAt.UTC().Format(time.RFC3339)
	}
	if _, err := tx.Exec(
		`INSERT INTO plan (id, title, description, attendees, currency, next_event_id, next_day_id, saved_at) VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Attendees, string(p.Currency), p.NextEventID, p.NextDayID, savedAt,
	); err != nil {
		return fmt.Errorf("failed to save plan row: %w", err)
	}

	for i, e := range p.Events {
		if _, err := tx.Exec(
			`INSERT INTO events (id, position, name, description, duration, per_person_cost, minimum_cost, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Name, e.Description, e.Duration, e.PerPersonCost, e.MinimumCost, string(e.Category),
		); err != nil {
			return fmt.Errorf("failed to save event %d: %w", e.ID, err)
		}
	}

	for i, d := range p.Days {
		if _, err := tx.Exec(
			`INSERT INTO days (id, position, label, notes) VALUES (?, ?, ?, ?)`,
			d.ID, i, d.Label, d.Notes,
		); err != nil {
			return fmt.Errorf("failed to save day %s: %w", d.ID, err)
		}
		for j, e := range p.Schedule[d.ID] {
			if _, err := tx.Exec(
				`INSERT INTO schedule_items (day_id, position, event_id, name, description, duration, per_person_cost, minimum_cost, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				d.ID, j, e.ID, e.Name, e.Description, e.Duration, e.PerPersonCost, e.MinimumCost, string(e.Category),
			); err != nil {
				return fmt.Errorf("failed to save schedule item: %w", err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) DataPath() string {
	return s.path
}

// DB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
