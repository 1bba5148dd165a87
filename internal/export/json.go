package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sadopc/exlog/internal/exercise"
)

type jsonExport struct {
	ExportedAt string         `json:"exported_at"`
	Count      int            `json:"count"`
	Exercises  []jsonExercise `json:"exercises"`
}

type jsonExercise struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	PrimaryMovement    string           `json:"primary_movement"`
	CustomMovementName string           `json:"custom_movement_name,omitempty"`
	Resistances        []jsonResistance `json:"resistances"`
	RepConfiguration   json.RawMessage  `json:"rep_configuration"`
	Notes              string           `json:"notes,omitempty"`
	CreatedAt          string           `json:"created_at"`
	UpdatedAt          string           `json:"updated_at"`
}

type jsonResistance struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Weight *float64 `json:"weight,omitempty"`
	IsDual bool     `json:"is_dual"`
}

// ToJSON writes the exercises as one indented document.
func ToJSON(w io.Writer, exercises []exercise.Exercise) error {
	return toJSON(w, exercises, time.Now())
}

func toJSON(w io.Writer, exercises []exercise.Exercise, now time.Time) error {
	export := jsonExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(exercises),
		Exercises:  make([]jsonExercise, 0, len(exercises)),
	}

	for _, e := range exercises {
		rc, err := exercise.MarshalRepConfiguration(e.RepConfiguration)
		if err != nil {
			return fmt.Errorf("exercise %s: %w", e.ID, err)
		}

		resistances := make([]jsonResistance, 0, len(e.Resistances))
		for _, r := range e.Resistances {
			resistances = append(resistances, jsonResistance{
				ID:     r.ID,
				Type:   string(r.Type),
				Weight: r.Weight,
				IsDual: r.IsDual,
			})
		}

		export.Exercises = append(export.Exercises, jsonExercise{
			ID:                 e.ID,
			Name:               e.Name,
			PrimaryMovement:    string(e.PrimaryMovement),
			CustomMovementName: e.CustomMovementName,
			Resistances:        resistances,
			RepConfiguration:   rc,
			Notes:              e.Notes,
			CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:          e.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
