package exercise

import (
	"fmt"
	"strings"
)

// DescribeReps renders a rep configuration for list display.
func DescribeReps(rc RepConfiguration) string {
	switch rc := rc.(type) {
	case SimpleReps:
		return fmt.Sprintf("%d reps", rc.Count)
	case HoldReps:
		return fmt.Sprintf("Hold for %ds", rc.DurationSeconds)
	case TempoReps:
		return fmt.Sprintf("%d reps @ %s tempo", rc.Count, rc.Notation())
	case ConcentricOnlyReps:
		return fmt.Sprintf("%d reps (concentric only)", rc.Count)
	case EccentricOnlyReps:
		return fmt.Sprintf("%d reps (eccentric only)", rc.Count)
	case ExplosiveReps:
		return fmt.Sprintf("%d reps (explosive)", rc.Count)
	}
	panic(unknownRepConfiguration(rc))
}

// DescribeResistance renders an entry as "Label - 135 lbs - (Dual)", leaving
// out the parts that do not apply.
func DescribeResistance(r ResistanceEntry) string {
	parts := []string{r.Type.Label()}
	if r.Weight != nil {
		parts = append(parts, FormatWeight(r.Weight)+" lbs")
	}
	if r.IsDual {
		parts = append(parts, "(Dual)")
	}
	return strings.Join(parts, " - ")
}
