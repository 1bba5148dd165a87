package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/exlog/internal/exercise"
)

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Add appends e to the end of the collection.
func (s *Store) Add(e exercise.Exercise) error {
	if err := checkCatalogs(e); err != nil {
		return fmt.Errorf("add exercise %s: %w", e.ID, err)
	}
	repConfig, err := exercise.MarshalRepConfiguration(e.RepConfiguration)
	if err != nil {
		return fmt.Errorf("add exercise %s: %w", e.ID, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO exercises (id, name, primary_movement, custom_movement_name, rep_type, rep_config, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, string(e.PrimaryMovement), e.CustomMovementName,
		string(e.RepConfiguration.Type()), string(repConfig), e.Notes,
		formatTime(e.CreatedAt), formatTime(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert exercise %s: %w", e.ID, err)
	}
	if err := insertResistances(tx, e.ID, e.Resistances); err != nil {
		return err
	}
	return tx.Commit()
}

// Replace swaps the stored exercise with the given id for e, keeping its
// position in the collection and its original creation time.
func (s *Store) Replace(id string, e exercise.Exercise) error {
	if e.ID != id {
		return fmt.Errorf("replace exercise %s: id changed to %s", id, e.ID)
	}
	if err := checkCatalogs(e); err != nil {
		return fmt.Errorf("replace exercise %s: %w", id, err)
	}
	repConfig, err := exercise.MarshalRepConfiguration(e.RepConfiguration)
	if err != nil {
		return fmt.Errorf("replace exercise %s: %w", id, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE exercises
		 SET name = ?, primary_movement = ?, custom_movement_name = ?, rep_type = ?, rep_config = ?,
		     notes = ?, updated_at = ?
		 WHERE id = ?`,
		e.Name, string(e.PrimaryMovement), e.CustomMovementName,
		string(e.RepConfiguration.Type()), string(repConfig), e.Notes,
		formatTime(e.UpdatedAt), id,
	)
	if err != nil {
		return fmt.Errorf("update exercise %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("replace exercise %s: %w", id, ErrNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM resistances WHERE exercise_id = ?`, id); err != nil {
		return fmt.Errorf("clear resistances of %s: %w", id, err)
	}
	if err := insertResistances(tx, id, e.Resistances); err != nil {
		return err
	}
	return tx.Commit()
}

// checkCatalogs rejects values the read path could not parse back.
func checkCatalogs(e exercise.Exercise) error {
	if !e.PrimaryMovement.Valid() {
		return fmt.Errorf("%w: unknown movement %q", ErrInvalid, e.PrimaryMovement)
	}
	for _, r := range e.Resistances {
		if !r.Type.Valid() {
			return fmt.Errorf("%w: resistance %s has unknown type %q", ErrInvalid, r.ID, r.Type)
		}
	}
	return nil
}

// Remove deletes the exercise with the given id and its resistances.
func (s *Store) Remove(id string) error {
	res, err := s.db.Exec(`DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("remove exercise %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) Get(id string) (*exercise.Exercise, error) {
	row := s.db.QueryRow(
		`SELECT id, name, primary_movement, custom_movement_name, rep_config, notes, created_at, updated_at
		 FROM exercises WHERE id = ?`, id,
	)
	e, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get exercise %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise %s: %w", id, err)
	}

	byExercise, err := loadResistances(s.db, `WHERE exercise_id = ?`, id)
	if err != nil {
		return nil, err
	}
	e.Resistances = byExercise[id]
	return &e, nil
}

// List returns every exercise in insertion order.
func (s *Store) List() ([]exercise.Exercise, error) {
	rows, err := s.db.Query(
		`SELECT id, name, primary_movement, custom_movement_name, rep_config, notes, created_at, updated_at
		 FROM exercises ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []exercise.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, nil
	}

	byExercise, err := loadResistances(s.db, "")
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		exercises[i].Resistances = byExercise[exercises[i].ID]
	}
	return exercises, nil
}

func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExercise(row scanner) (exercise.Exercise, error) {
	var e exercise.Exercise
	var movement, repConfig, createdAt, updatedAt string
	if err := row.Scan(&e.ID, &e.Name, &movement, &e.CustomMovementName, &repConfig, &e.Notes, &createdAt, &updatedAt); err != nil {
		return e, err
	}

	var err error
	if e.PrimaryMovement, err = exercise.ParseMovement(movement); err != nil {
		return e, fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	if e.RepConfiguration, err = exercise.UnmarshalRepConfiguration([]byte(repConfig)); err != nil {
		return e, fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	e.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return e, nil
}

func insertResistances(q queryer, exerciseID string, entries []exercise.ResistanceEntry) error {
	for i, r := range entries {
		var weight sql.NullFloat64
		if r.Weight != nil {
			weight = sql.NullFloat64{Float64: *r.Weight, Valid: true}
		}
		dual := 0
		if r.IsDual {
			dual = 1
		}
		_, err := q.Exec(
			`INSERT INTO resistances (exercise_id, ord, id, type, weight, is_dual) VALUES (?, ?, ?, ?, ?, ?)`,
			exerciseID, i, r.ID, string(r.Type), weight, dual,
		)
		if err != nil {
			return fmt.Errorf("insert resistance %s of %s: %w", r.ID, exerciseID, err)
		}
	}
	return nil
}

// loadResistances groups resistance rows by exercise id, each group in entry
// order. where is an optional filter clause.
func loadResistances(q queryer, where string, args ...any) (map[string][]exercise.ResistanceEntry, error) {
	rows, err := q.Query(
		`SELECT exercise_id, id, type, weight, is_dual FROM resistances `+where+` ORDER BY exercise_id, ord`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("list resistances: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]exercise.ResistanceEntry)
	for rows.Next() {
		var exerciseID, typ string
		var r exercise.ResistanceEntry
		var weight sql.NullFloat64
		var dual int
		if err := rows.Scan(&exerciseID, &r.ID, &typ, &weight, &dual); err != nil {
			return nil, err
		}
		r.IsDual = dual == 1
		if r.Type, err = exercise.ParseResistanceType(typ); err != nil {
			return nil, fmt.Errorf("resistance %s: %w", r.ID, err)
		}
		if weight.Valid {
			w := weight.Float64
			r.Weight = &w
		}
		out[exerciseID] = append(out[exerciseID], r)
	}
	return out, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
