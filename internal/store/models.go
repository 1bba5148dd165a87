package store

// Tally is the number of exercises sharing one catalog value.
type Tally struct {
	Key   string
	Label string
	Count int
}

// Dimension selects what CountBy groups on.
type Dimension int

const (
	ByMovement Dimension = iota
	ByRepType
	ByResistanceType
)

var dimensionNames = map[Dimension]string{
	ByMovement:       "Movement",
	ByRepType:        "Rep Type",
	ByResistanceType: "Resistance",
}

func (d Dimension) String() string {
	return dimensionNames[d]
}
