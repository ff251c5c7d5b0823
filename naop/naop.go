// Package naop is the value-typed operation stream the placer emits
// and the postprocessor rewrites: global pulses, local pulses, and
// shuttling moves over physical trap coordinates, mirroring
// na::NAQuantumComputation's operation hierarchy as a small closed Go
// sum type instead of a clone()-based class tree.
package naop

import (
	"fmt"
	"strings"

	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
)

// Kind discriminates the three operation shapes an Operation can take.
type Kind int

const (
	GlobalKind Kind = iota
	LocalKind
	ShuttlingKind
)

func (k Kind) String() string {
	switch k {
	case GlobalKind:
		return "global"
	case LocalKind:
		return "local"
	case ShuttlingKind:
		return "shuttling"
	default:
		return "unknown"
	}
}

// ShuttlingKindValue is the three AOD primitives a ShuttlingOperation
// can represent.
type ShuttlingKindValue int

const (
	Load ShuttlingKindValue = iota
	Store
	Move
)

func (k ShuttlingKindValue) String() string {
	switch k {
	case Load:
		return "LOAD"
	case Store:
		return "STORE"
	case Move:
		return "MOVE"
	default:
		return "UNKNOWN"
	}
}

// Operation is any of GlobalOperation, LocalOperation, or
// ShuttlingOperation. Each is a value type: no shared mutable state is
// reachable through an already-emitted Operation, since positions are
// copied in at construction time rather than referenced from live
// placement state.
type Operation interface {
	Kind() Kind
	String() string
}

// GlobalOperation is a pulse of gate.Kind applied to every atom
// currently in the zone that permits it globally. It carries no
// positions: "globally" is implicit in the machine state at the time
// it is emitted.
type GlobalOperation struct {
	GateKind gate.Kind
	Param    float64
}

func (GlobalOperation) Kind() Kind { return GlobalKind }

func (g GlobalOperation) String() string {
	if g.Param != 0 {
		return fmt.Sprintf("global %s(%g)", g.GateKind, g.Param)
	}
	return fmt.Sprintf("global %s", g.GateKind)
}

// LocalOperation is a pulse of gate.Kind applied only at the listed
// positions, a value-typed snapshot taken at emit time.
type LocalOperation struct {
	GateKind  gate.Kind
	Param     float64
	Positions []geometry.Point
}

func (LocalOperation) Kind() Kind { return LocalKind }

func (l LocalOperation) String() string {
	parts := make([]string, len(l.Positions))
	for i, p := range l.Positions {
		parts[i] = fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	if l.Param != 0 {
		return fmt.Sprintf("local %s(%g) @ [%s]", l.GateKind, l.Param, strings.Join(parts, " "))
	}
	return fmt.Sprintf("local %s @ [%s]", l.GateKind, strings.Join(parts, " "))
}

// ShuttlingOperation moves |Start| = |End| atoms simultaneously on the
// AOD grid. LOAD requires every Start[i] be a currently-occupied
// static site; STORE requires every End[i] be free; MOVE requires no
// collision with static atoms once the postprocessor decomposes it.
type ShuttlingOperation struct {
	ShuttlingKind ShuttlingKindValue
	Start, End    []geometry.Point
}

func (ShuttlingOperation) Kind() Kind { return ShuttlingKind }

func (s ShuttlingOperation) String() string {
	parts := make([]string, len(s.Start))
	for i := range s.Start {
		parts[i] = fmt.Sprintf("(%d,%d)->(%d,%d)", s.Start[i].X, s.Start[i].Y, s.End[i].X, s.End[i].Y)
	}
	return fmt.Sprintf("%s [%s]", s.ShuttlingKind, strings.Join(parts, " "))
}
