package gate

// selfInverse is the set of kinds that are their own inverse: applying
// the same gate twice in a row on the same qubits is the identity.
var selfInverse = map[Kind]bool{
	H:       true,
	X:       true,
	Y:       true,
	Z:       true,
	I:       true,
	CZKind:  true,
	Barrier: true,
}

// inversePairs maps a kind to the distinct kind that undoes it.
var inversePairs = map[Kind]Kind{
	S:   Sdg,
	Sdg: S,
	T:   Tdg,
	Tdg: T,
}

// CommutesAtQubit reports whether gates a and b commute on a qubit
// they share: true when both are members of the fixed diagonal-gate
// set (diagonal matrices always commute), per na/Layer.hpp.
func CommutesAtQubit(a, b Gate) bool {
	return IsDiagonal(a.Kind()) && IsDiagonal(b.Kind())
}

// IsInverse reports whether b undoes a at the gate-kind level: either
// both are the same self-inverse kind, or they form a known inverse
// pair (S/Sdg, T/Tdg). Parameterised gates (P, RZ, RZZ) are compared
// by kind and angle: applying RZ(theta) then RZ(-theta) is the
// identity, and so is the reverse order since both are diagonal.
func IsInverse(a, b Gate) bool {
	if a.Kind() == b.Kind() {
		if selfInverse[a.Kind()] {
			return true
		}
		switch a.Kind() {
		case P, RZ, RZZ:
			return a.Param() == -b.Param()
		}
		return false
	}
	return inversePairs[a.Kind()] == b.Kind()
}
