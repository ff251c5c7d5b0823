package gate

// Kind names one of the fixed vocabulary of gate types the mapper
// understands. Unlike the teacher's drawing-oriented Gate.Name(),
// Kind is a typed enum used for commutation and zone-membership
// lookups, not for display.
type Kind string

const (
	H       Kind = "H"
	X       Kind = "X"
	Y       Kind = "Y"
	S       Kind = "S"
	Sdg     Kind = "Sdg"
	T       Kind = "T"
	Tdg     Kind = "Tdg"
	Z       Kind = "Z"
	I       Kind = "I"
	P       Kind = "P"
	RZ      Kind = "RZ"
	RZZ     Kind = "RZZ"
	CZKind  Kind = "CZ"
	Barrier Kind = "Barrier"
	Measure Kind = "Measure"
)
