package gate

// diagonalKinds is the fixed set of gate kinds that are diagonal in
// the computational basis, matching na/Layer.hpp's DIAGONAL_GATES
// table: Barrier, I, Z, S, Sdg, T, Tdg, P, RZ, RZZ.
var diagonalKinds = map[Kind]bool{
	Barrier: true,
	I:       true,
	Z:       true,
	S:       true,
	Sdg:     true,
	T:       true,
	Tdg:     true,
	P:       true,
	RZ:      true,
	RZZ:     true,
}

// IsDiagonal reports whether k is a member of the fixed diagonal-gate
// vocabulary. Two diagonal gates sharing a qubit always commute on
// that qubit, since diagonal matrices commute.
func IsDiagonal(k Kind) bool { return diagonalKinds[k] }
