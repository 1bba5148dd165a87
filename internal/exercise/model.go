// Package exercise holds the exercise data model, its option catalogs and the
// pure functions that map between editable form state and stored exercises.
package exercise

import (
	"fmt"
	"time"
)

// Exercise is a logged exercise definition.
type Exercise struct {
	ID                 string
	Name               string
	PrimaryMovement    Movement
	CustomMovementName string // set only when PrimaryMovement is MovementOther
	Resistances        []ResistanceEntry
	RepConfiguration   RepConfiguration
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ResistanceEntry is one resistance source applied to an exercise. Several
// entries may share a Type; ID tells them apart.
type ResistanceEntry struct {
	ID     string
	Type   ResistanceType
	Weight *float64 // lbs, nil when not given
	IsDual bool
}

// MovementName is the custom movement name for MovementOther and the catalog
// label otherwise.
func (e Exercise) MovementName() string {
	if e.PrimaryMovement == MovementOther {
		return e.CustomMovementName
	}
	return e.PrimaryMovement.Label()
}

// RepConfiguration describes how an exercise is performed. It is a closed set
// of variants: SimpleReps, HoldReps, TempoReps, ConcentricOnlyReps,
// EccentricOnlyReps and ExplosiveReps.
type RepConfiguration interface {
	Type() RepType
	repConfiguration()
}

type SimpleReps struct {
	Count int `json:"count"`
}

// HoldReps is an isometric hold.
type HoldReps struct {
	DurationSeconds int `json:"durationSeconds"`
}

// TempoReps times each phase of the rep in seconds.
type TempoReps struct {
	Count              int `json:"count"`
	EccentricSeconds   int `json:"eccentricSeconds"`
	PauseBottomSeconds int `json:"pauseBottomSeconds"`
	ConcentricSeconds  int `json:"concentricSeconds"`
	PauseTopSeconds    int `json:"pauseTopSeconds"`
}

type ConcentricOnlyReps struct {
	Count int `json:"count"`
}

type EccentricOnlyReps struct {
	Count int `json:"count"`
}

type ExplosiveReps struct {
	Count int `json:"count"`
}

func (SimpleReps) Type() RepType         { return RepSimple }
func (HoldReps) Type() RepType           { return RepHold }
func (TempoReps) Type() RepType          { return RepTempo }
func (ConcentricOnlyReps) Type() RepType { return RepConcentricOnly }
func (EccentricOnlyReps) Type() RepType  { return RepEccentricOnly }
func (ExplosiveReps) Type() RepType      { return RepExplosive }

func (SimpleReps) repConfiguration()         {}
func (HoldReps) repConfiguration()           {}
func (TempoReps) repConfiguration()          {}
func (ConcentricOnlyReps) repConfiguration() {}
func (EccentricOnlyReps) repConfiguration()  {}
func (ExplosiveReps) repConfiguration()      {}

// Notation renders the tempo as eccentric-pause-concentric-pause, e.g. 3-1-1-1.
func (t TempoReps) Notation() string {
	return fmt.Sprintf("%d-%d-%d-%d", t.EccentricSeconds, t.PauseBottomSeconds, t.ConcentricSeconds, t.PauseTopSeconds)
}

func unknownRepConfiguration(rc RepConfiguration) string {
	return fmt.Sprintf("exercise: unknown rep configuration %T", rc)
}
