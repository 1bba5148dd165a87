package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// ErrNotFound is returned when no exercise has the requested id.
var ErrNotFound = errors.New("exercise not found")

// ErrInvalid is returned when an exercise carries a value outside the catalogs.
var ErrInvalid = errors.New("invalid exercise")

// Store holds the exercises of one session in an in-memory SQLite database.
// Nothing is written to disk; the data is gone once the store is closed.
type Store struct {
	db *sql.DB
}

// New opens an empty in-memory store and creates its schema.
func New() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every connection to :memory: gets its own database, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec pragma: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS exercises (
		position             INTEGER PRIMARY KEY AUTOINCREMENT,
		id                   TEXT NOT NULL UNIQUE,
		name                 TEXT NOT NULL,
		primary_movement     TEXT NOT NULL,
		custom_movement_name TEXT NOT NULL DEFAULT '',
		rep_type             TEXT NOT NULL,
		rep_config           TEXT NOT NULL,
		notes                TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS resistances (
		exercise_id  TEXT NOT NULL REFERENCES exercises(id) ON DELETE CASCADE,
		ord          INTEGER NOT NULL,
		id           TEXT NOT NULL,
		type         TEXT NOT NULL,
		weight       REAL,
		is_dual      INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (exercise_id, ord),
		UNIQUE (exercise_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_exercises_movement ON exercises(primary_movement);
	CREATE INDEX IF NOT EXISTS idx_resistances_type   ON resistances(type);
	`
	_, err := s.db.Exec(ddl)
	return err
}
