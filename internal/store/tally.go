package store

import (
	"fmt"

	"github.com/sadopc/exlog/internal/exercise"
)

// CountBy tallies exercises along d, most frequent first. Resistance tallies
// count exercises, so an exercise with two dumbbell entries counts once.
func (s *Store) CountBy(d Dimension) ([]Tally, error) {
	var query string
	switch d {
	case ByMovement:
		query = `SELECT primary_movement, COUNT(*) FROM exercises GROUP BY primary_movement`
	case ByRepType:
		query = `SELECT rep_type, COUNT(*) FROM exercises GROUP BY rep_type`
	case ByResistanceType:
		query = `SELECT type, COUNT(DISTINCT exercise_id) FROM resistances GROUP BY type`
	default:
		return nil, fmt.Errorf("count by: unknown dimension %d", d)
	}
	query += ` ORDER BY 2 DESC, 1`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", d, err)
	}
	defer rows.Close()

	var tallies []Tally
	for rows.Next() {
		var t Tally
		if err := rows.Scan(&t.Key, &t.Count); err != nil {
			return nil, err
		}
		label, err := tallyLabel(d, t.Key)
		if err != nil {
			return nil, err
		}
		t.Label = label
		tallies = append(tallies, t)
	}
	return tallies, rows.Err()
}

func (s *Store) CountByMovement() ([]Tally, error)       { return s.CountBy(ByMovement) }
func (s *Store) CountByRepType() ([]Tally, error)        { return s.CountBy(ByRepType) }
func (s *Store) CountByResistanceType() ([]Tally, error) { return s.CountBy(ByResistanceType) }

func tallyLabel(d Dimension, key string) (string, error) {
	switch d {
	case ByMovement:
		m, err := exercise.ParseMovement(key)
		if err != nil {
			return "", err
		}
		return m.Label(), nil
	case ByRepType:
		t, err := exercise.ParseRepType(key)
		if err != nil {
			return "", err
		}
		return t.Label(), nil
	default:
		r, err := exercise.ParseResistanceType(key)
		if err != nil {
			return "", err
		}
		return r.Label(), nil
	}
}
