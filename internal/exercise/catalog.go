package exercise

import "fmt"

// Movement is the primary movement pattern of an exercise.
type Movement string

const (
	MovementSquat           Movement = "squat"
	MovementDeadlift        Movement = "deadlift"
	MovementBenchPress      Movement = "bench_press"
	MovementOverheadPress   Movement = "overhead_press"
	MovementRow             Movement = "row"
	MovementPullUp          Movement = "pull_up"
	MovementLunge           Movement = "lunge"
	MovementHipThrust       Movement = "hip_thrust"
	MovementCurl            Movement = "curl"
	MovementTricepExtension Movement = "tricep_extension"
	MovementLateralRaise    Movement = "lateral_raise"
	MovementFly             Movement = "fly"
	MovementLegPress        Movement = "leg_press"
	MovementLegCurl         Movement = "leg_curl"
	MovementLegExtension    Movement = "leg_extension"
	MovementCalfRaise       Movement = "calf_raise"
	MovementNordicCurl      Movement = "nordic_curl"
	MovementPlank           Movement = "plank"
	MovementCrunch          Movement = "crunch"
	MovementRussianTwist    Movement = "russian_twist"
	MovementOther           Movement = "other"
)

// ResistanceType is a source of resistance such as a barbell or a band.
type ResistanceType string

const (
	ResistanceBarbell           ResistanceType = "barbell"
	ResistanceDumbbell          ResistanceType = "dumbbell"
	ResistanceKettlebell        ResistanceType = "kettlebell"
	ResistanceCableMachine      ResistanceType = "cable_machine"
	ResistanceSmithMachine      ResistanceType = "smith_machine"
	ResistanceResistanceMachine ResistanceType = "resistance_machine"
	ResistanceBodyweight        ResistanceType = "bodyweight"
	ResistanceEZBar             ResistanceType = "ez_bar"
	ResistanceTrapBar           ResistanceType = "trap_bar"
	ResistanceLandmine          ResistanceType = "landmine"
	ResistanceMedicineBall      ResistanceType = "medicine_ball"
	ResistanceWeightPlate       ResistanceType = "weight_plate"
	ResistanceBandAdd           ResistanceType = "resistance_band_add"
	ResistanceBandReduce        ResistanceType = "resistance_band_reduce"
	ResistanceChains            ResistanceType = "chains"
	ResistanceWeightVest        ResistanceType = "weight_vest"
	ResistanceAnkleWeights      ResistanceType = "ankle_weights"
	ResistanceAssistedMachine   ResistanceType = "assisted_machine"
)

// RepType discriminates the variants of RepConfiguration.
type RepType string

const (
	RepSimple         RepType = "simple"
	RepHold           RepType = "hold"
	RepTempo          RepType = "tempo"
	RepConcentricOnly RepType = "concentric_only"
	RepEccentricOnly  RepType = "eccentric_only"
	RepExplosive      RepType = "explosive"
)

type MovementOption struct {
	Value Movement
	Label string
}

type ResistanceOption struct {
	Value       ResistanceType
	Label       string
	Description string // optional
}

type RepTypeOption struct {
	Value       RepType
	Label       string
	Description string
}

// Catalog order is display order.
var movements = []MovementOption{
	{MovementSquat, "Squat"},
	{MovementDeadlift, "Deadlift"},
	{MovementBenchPress, "Bench Press"},
	{MovementOverheadPress, "Overhead Press"},
	{MovementRow, "Row"},
	{MovementPullUp, "Pull Up"},
	{MovementLunge, "Lunge"},
	{MovementHipThrust, "Hip Thrust"},
	{MovementCurl, "Curl"},
	{MovementTricepExtension, "Tricep Extension"},
	{MovementLateralRaise, "Lateral Raise"},
	{MovementFly, "Fly"},
	{MovementLegPress, "Leg Press"},
	{MovementLegCurl, "Leg Curl"},
	{MovementLegExtension, "Leg Extension"},
	{MovementCalfRaise, "Calf Raise"},
	{MovementNordicCurl, "Nordic Curl"},
	{MovementPlank, "Plank"},
	{MovementCrunch, "Crunch"},
	{MovementRussianTwist, "Russian Twist"},
	{MovementOther, "Other"},
}

var resistanceTypes = []ResistanceOption{
	{Value: ResistanceBarbell, Label: "Barbell"},
	{Value: ResistanceDumbbell, Label: "Dumbbell"},
	{Value: ResistanceKettlebell, Label: "Kettlebell"},
	{Value: ResistanceCableMachine, Label: "Cable Machine"},
	{Value: ResistanceSmithMachine, Label: "Smith Machine"},
	{Value: ResistanceResistanceMachine, Label: "Resistance Machine"},
	{Value: ResistanceBodyweight, Label: "Bodyweight"},
	{Value: ResistanceEZBar, Label: "EZ Bar"},
	{Value: ResistanceTrapBar, Label: "Trap Bar"},
	{Value: ResistanceLandmine, Label: "Landmine"},
	{Value: ResistanceMedicineBall, Label: "Medicine Ball"},
	{Value: ResistanceWeightPlate, Label: "Weight Plate"},
	{Value: ResistanceBandAdd, Label: "Resistance Band (Add)", Description: "Adds resistance at end of movement"},
	{Value: ResistanceBandReduce, Label: "Resistance Band (Reduce)", Description: "Assists/reduces resistance"},
	{Value: ResistanceChains, Label: "Chains", Description: "Progressive resistance increase"},
	{Value: ResistanceWeightVest, Label: "Weight Vest", Description: "Additional body weight"},
	{Value: ResistanceAnkleWeights, Label: "Ankle Weights", Description: "Leg-focused resistance"},
	{Value: ResistanceAssistedMachine, Label: "Assisted Machine", Description: "Machine-assisted reduction"},
}

var repTypes = []RepTypeOption{
	{RepSimple, "Simple Reps", "Standard repetitions"},
	{RepHold, "Hold", "Isometric hold for duration"},
	{RepTempo, "Tempo Reps", "Reps with specific timing"},
	{RepConcentricOnly, "Concentric Only", "Lifting phase only"},
	{RepEccentricOnly, "Eccentric Only", "Lowering phase only"},
	{RepExplosive, "Explosive", "Maximum speed/power"},
}

var (
	movementIndex   = make(map[Movement]int, len(movements))
	resistanceIndex = make(map[ResistanceType]int, len(resistanceTypes))
	repTypeIndex    = make(map[RepType]int, len(repTypes))
)

func init() {
	for i, m := range movements {
		movementIndex[m.Value] = i
	}
	for i, r := range resistanceTypes {
		resistanceIndex[r.Value] = i
	}
	for i, r := range repTypes {
		repTypeIndex[r.Value] = i
	}
}

// Movements returns the movement catalog in display order.
func Movements() []MovementOption {
	return append([]MovementOption(nil), movements...)
}

// ResistanceTypes returns the resistance catalog in display order.
func ResistanceTypes() []ResistanceOption {
	return append([]ResistanceOption(nil), resistanceTypes...)
}

// RepTypes returns the rep type catalog in display order.
func RepTypes() []RepTypeOption {
	return append([]RepTypeOption(nil), repTypes...)
}

func (m Movement) Valid() bool {
	_, ok := movementIndex[m]
	return ok
}

// Label returns the display label. It panics for values outside the catalog.
func (m Movement) Label() string {
	i, ok := movementIndex[m]
	if !ok {
		panic(fmt.Sprintf("exercise: unknown movement %q", string(m)))
	}
	return movements[i].Label
}

func (r ResistanceType) Valid() bool {
	_, ok := resistanceIndex[r]
	return ok
}

// Label returns the display label. It panics for values outside the catalog.
func (r ResistanceType) Label() string {
	return r.option().Label
}

// Description is empty for most resistance types.
func (r ResistanceType) Description() string {
	return r.option().Description
}

func (r ResistanceType) option() ResistanceOption {
	i, ok := resistanceIndex[r]
	if !ok {
		panic(fmt.Sprintf("exercise: unknown resistance type %q", string(r)))
	}
	return resistanceTypes[i]
}

func (t RepType) Valid() bool {
	_, ok := repTypeIndex[t]
	return ok
}

func (t RepType) Label() string {
	return t.option().Label
}

func (t RepType) Description() string {
	return t.option().Description
}

func (t RepType) option() RepTypeOption {
	i, ok := repTypeIndex[t]
	if !ok {
		panic(fmt.Sprintf("exercise: unknown rep type %q", string(t)))
	}
	return repTypes[i]
}

func ParseMovement(s string) (Movement, error) {
	m := Movement(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown movement %q", s)
	}
	return m, nil
}

func ParseResistanceType(s string) (ResistanceType, error) {
	r := ResistanceType(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown resistance type %q", s)
	}
	return r, nil
}

func ParseRepType(s string) (RepType, error) {
	t := RepType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown rep type %q", s)
	}
	return t, nil
}
