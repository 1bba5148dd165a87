package exercise

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// customExerciseName names an "other" movement whose custom name is blank.
const customExerciseName = "Custom Exercise"

// ResistanceFormEntry is a resistance entry as edited in a form. Weight is
// kept as typed so partial input survives.
type ResistanceFormEntry struct {
	ID     string
	Type   ResistanceType
	Weight string
	IsDual bool
}

// FormState is the editable projection of an Exercise. The rep configuration
// is flattened into one field per parameter so values typed for one rep type
// are kept while another is selected. SimpleRepCount also backs the
// concentric-only, eccentric-only and explosive variants.
type FormState struct {
	Name               string
	PrimaryMovement    Movement
	CustomMovementName string
	Resistances        []ResistanceFormEntry
	RepType            RepType
	SimpleRepCount     int
	HoldDuration       int
	TempoRepCount      int
	TempoEccentric     int
	TempoPauseBottom   int
	TempoConcentric    int
	TempoPauseTop      int
	Notes              string
}

// DefaultFormState is the state of a blank form.
func DefaultFormState() FormState {
	return FormState{
		PrimaryMovement:  MovementSquat,
		RepType:          RepSimple,
		SimpleRepCount:   10,
		HoldDuration:     30,
		TempoRepCount:    8,
		TempoEccentric:   3,
		TempoPauseBottom: 1,
		TempoConcentric:  1,
		TempoPauseTop:    1,
	}
}

// Clone returns a copy that shares no resistance slice with f.
func (f FormState) Clone() FormState {
	if f.Resistances != nil {
		f.Resistances = append([]ResistanceFormEntry(nil), f.Resistances...)
	}
	return f
}

// AddResistance appends a blank entry of type t and returns its id.
func (f *FormState) AddResistance(t ResistanceType) string {
	id := uuid.NewString()
	f.Resistances = append(f.Resistances, ResistanceFormEntry{ID: id, Type: t})
	return id
}

// RemoveResistance drops the entry with the given id, reporting whether one
// was found.
func (f *FormState) RemoveResistance(id string) bool {
	for i, r := range f.Resistances {
		if r.ID == id {
			f.Resistances = append(f.Resistances[:i:i], f.Resistances[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateResistance replaces the entry whose id matches entry.ID.
func (f *FormState) UpdateResistance(entry ResistanceFormEntry) bool {
	for i := range f.Resistances {
		if f.Resistances[i].ID == entry.ID {
			f.Resistances[i] = entry
			return true
		}
	}
	return false
}

// DeriveDefaultName builds the name used when the form name is left blank:
// the first resistance label followed by the movement label.
func DeriveDefaultName(f FormState) string {
	var parts []string
	if len(f.Resistances) > 0 {
		parts = append(parts, f.Resistances[0].Type.Label())
	}

	movement := customExerciseName
	if f.PrimaryMovement != MovementOther {
		movement = f.PrimaryMovement.Label()
	} else if name := strings.TrimSpace(f.CustomMovementName); name != "" {
		movement = name
	}
	parts = append(parts, movement)

	return strings.Join(parts, " ")
}

// ToRepConfiguration picks the active variant out of the flattened fields.
func ToRepConfiguration(f FormState) RepConfiguration {
	switch f.RepType {
	case RepSimple:
		return SimpleReps{Count: f.SimpleRepCount}
	case RepHold:
		return HoldReps{DurationSeconds: f.HoldDuration}
	case RepTempo:
		return TempoReps{
			Count:              f.TempoRepCount,
			EccentricSeconds:   f.TempoEccentric,
			PauseBottomSeconds: f.TempoPauseBottom,
			ConcentricSeconds:  f.TempoConcentric,
			PauseTopSeconds:    f.TempoPauseTop,
		}
	case RepConcentricOnly:
		return ConcentricOnlyReps{Count: f.SimpleRepCount}
	case RepEccentricOnly:
		return EccentricOnlyReps{Count: f.SimpleRepCount}
	case RepExplosive:
		return ExplosiveReps{Count: f.SimpleRepCount}
	}
	panic(fmt.Sprintf("exercise: unknown rep type %q", string(f.RepType)))
}

// ToFormState opens e for editing. Flattened fields of inactive rep variants
// hold their defaults.
func ToFormState(e Exercise) FormState {
	f := DefaultFormState()
	f.Name = e.Name
	f.PrimaryMovement = e.PrimaryMovement
	f.CustomMovementName = e.CustomMovementName
	f.Notes = e.Notes

	if len(e.Resistances) > 0 {
		f.Resistances = make([]ResistanceFormEntry, len(e.Resistances))
		for i, r := range e.Resistances {
			f.Resistances[i] = ResistanceFormEntry{
				ID:     r.ID,
				Type:   r.Type,
				Weight: FormatWeight(r.Weight),
				IsDual: r.IsDual,
			}
		}
	}

	switch rc := e.RepConfiguration.(type) {
	case SimpleReps:
		f.RepType = RepSimple
		f.SimpleRepCount = rc.Count
	case HoldReps:
		f.RepType = RepHold
		f.HoldDuration = rc.DurationSeconds
	case TempoReps:
		f.RepType = RepTempo
		f.TempoRepCount = rc.Count
		f.TempoEccentric = rc.EccentricSeconds
		f.TempoPauseBottom = rc.PauseBottomSeconds
		f.TempoConcentric = rc.ConcentricSeconds
		f.TempoPauseTop = rc.PauseTopSeconds
	case ConcentricOnlyReps:
		f.RepType = RepConcentricOnly
		f.SimpleRepCount = rc.Count
	case EccentricOnlyReps:
		f.RepType = RepEccentricOnly
		f.SimpleRepCount = rc.Count
	case ExplosiveReps:
		f.RepType = RepExplosive
		f.SimpleRepCount = rc.Count
	default:
		panic(unknownRepConfiguration(rc))
	}
	return f
}

// ParseWeight reads a weight typed into a form. Blank, unparsable, negative
// and non-finite input all mean no weight.
func ParseWeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil
	}
	return &w
}

// FormatWeight is the inverse of ParseWeight: "" for nil, shortest decimal
// otherwise.
func FormatWeight(w *float64) string {
	if w == nil {
		return ""
	}
	return strconv.FormatFloat(*w, 'f', -1, 64)
}

// Builder turns form state into Exercise values. Zero fields fall back to
// time.Now and random UUIDs.
type Builder struct {
	Now   func() time.Time
	NewID func() string
}

// BuildExercise builds an exercise from f. When prev is non-nil the result
// keeps prev's id and creation time.
func BuildExercise(f FormState, prev *Exercise) Exercise {
	return Builder{}.Build(f, prev)
}

func (b Builder) Build(f FormState, prev *Exercise) Exercise {
	now := b.now()

	e := Exercise{
		PrimaryMovement:  f.PrimaryMovement,
		RepConfiguration: ToRepConfiguration(f),
		UpdatedAt:        now,
	}
	if prev != nil {
		e.ID = prev.ID
		e.CreatedAt = prev.CreatedAt
	} else {
		e.ID = b.newID()
		e.CreatedAt = now
	}

	if name := strings.TrimSpace(f.Name); name != "" {
		e.Name = name
	} else {
		e.Name = DeriveDefaultName(f)
	}
	if f.PrimaryMovement == MovementOther {
		e.CustomMovementName = f.CustomMovementName
	}
	if strings.TrimSpace(f.Notes) != "" {
		e.Notes = f.Notes
	}

	if len(f.Resistances) > 0 {
		e.Resistances = make([]ResistanceEntry, len(f.Resistances))
		for i, r := range f.Resistances {
			id := r.ID
			if id == "" {
				id = b.newID()
			}
			e.Resistances[i] = ResistanceEntry{
				ID:     id,
				Type:   r.Type,
				Weight: ParseWeight(r.Weight),
				IsDual: r.IsDual,
			}
		}
	}
	return e
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b Builder) newID() string {
	if b.NewID != nil {
		return b.NewID()
	}
	return uuid.NewString()
}
