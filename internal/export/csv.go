package export

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/sadopc/exlog/internal/exercise"
)

var csvHeader = []string{"ID", "Name", "Movement", "Resistances", "Rep Type", "Reps", "Notes", "Created", "Updated"}

// ToCSV writes one row per exercise. Resistances are joined with "; ".
func ToCSV(w io.Writer, exercises []exercise.Exercise) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range exercises {
		resistances := make([]string, 0, len(e.Resistances))
		for _, r := range e.Resistances {
			resistances = append(resistances, exercise.DescribeResistance(r))
		}

		row := []string{
			e.ID,
			e.Name,
			e.MovementName(),
			strings.Join(resistances, "; "),
			e.RepConfiguration.Type().Label(),
			exercise.DescribeReps(e.RepConfiguration),
			e.Notes,
			e.CreatedAt.Local().Format(time.RFC3339),
			e.UpdatedAt.Local().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
