// Package hwqubit tracks the live mapping between hardware qubits and
// the trap coordinates they currently occupy, together with the
// derived bookkeeping the placer needs to move atoms around: cached
// swap distances over the nearest-neighbour graph, and each qubit's
// fixed set of interaction-radius neighbours.
package hwqubit

import (
	"fmt"
	"math/rand"

	"github.com/kegliz/naqmap/geometry"
)

// HwQubit is a dense index into the hardware's qubit register.
type HwQubit uint32

// InitialLayout selects how hardware qubits are seeded onto coordinates
// when a HardwareQubits is constructed.
type InitialLayout int

const (
	// Trivial maps hw qubit i to coordinate i.
	Trivial InitialLayout = iota
	// Random maps hw qubits to a uniformly shuffled subset of coordinates.
	Random
)

// HardwareQubits is the live hw-qubit <-> coordinate bijection plus its
// derived caches. It is mutated only through move; every other method
// is either a pure query or a cache-filling side effect of a query.
type HardwareQubits struct {
	geo *geometry.Geometry

	hwToCoord map[HwQubit]geometry.CoordIndex
	coordToHw map[geometry.CoordIndex]HwQubit

	// swapDistances is a flattened symmetric matrix of size nqubits^2.
	// -1 means "not yet computed". It is a plain slice rather than a
	// map because it is dense over [0, nqubits) x [0, nqubits).
	swapDistances []int

	nearbyQubits map[HwQubit][]HwQubit

	initialHwToCoord map[HwQubit]geometry.CoordIndex

	nqubits int
}

// New builds a HardwareQubits over geo with nqubits hardware qubits,
// seeded according to layout.
func New(geo *geometry.Geometry, nqubits int, layout InitialLayout) (*HardwareQubits, error) {
	if nqubits > geo.NSites() {
		return nil, fmt.Errorf("hwqubit: %d qubits requested but geometry has only %d sites", nqubits, geo.NSites())
	}

	hq := &HardwareQubits{
		geo:           geo,
		hwToCoord:     make(map[HwQubit]geometry.CoordIndex, nqubits),
		coordToHw:     make(map[geometry.CoordIndex]HwQubit, nqubits),
		swapDistances: make([]int, nqubits*nqubits),
		nearbyQubits:  make(map[HwQubit][]HwQubit, nqubits),
		nqubits:       nqubits,
	}
	for i := range hq.swapDistances {
		hq.swapDistances[i] = -1
	}

	switch layout {
	case Trivial:
		for i := 0; i < nqubits; i++ {
			hq.set(HwQubit(i), geometry.CoordIndex(i))
		}
	case Random:
		perm := rand.Perm(geo.NSites())
		for i := 0; i < nqubits; i++ {
			hq.set(HwQubit(i), geometry.CoordIndex(perm[i]))
		}
	default:
		return nil, fmt.Errorf("hwqubit: unknown initial layout %d", layout)
	}

	hq.initNearbyQubits()

	hq.initialHwToCoord = make(map[HwQubit]geometry.CoordIndex, nqubits)
	for k, v := range hq.hwToCoord {
		hq.initialHwToCoord[k] = v
	}

	return hq, nil
}

func (hq *HardwareQubits) set(q HwQubit, idx geometry.CoordIndex) {
	hq.hwToCoord[q] = idx
	hq.coordToHw[idx] = q
}

// NQubits returns the number of hardware qubits tracked.
func (hq *HardwareQubits) NQubits() int { return hq.nqubits }

// IsMapped reports whether some hw qubit currently sits at coordinate idx.
func (hq *HardwareQubits) IsMapped(idx geometry.CoordIndex) bool {
	_, ok := hq.coordToHw[idx]
	return ok
}

// CoordIndex returns the coordinate hw qubit q currently occupies.
func (hq *HardwareQubits) CoordIndex(q HwQubit) geometry.CoordIndex {
	return hq.hwToCoord[q]
}

// HwQubitAt returns the hw qubit occupying coordinate idx, or
// ErrCoordinateEmpty if none does.
func (hq *HardwareQubits) HwQubitAt(idx geometry.CoordIndex) (HwQubit, error) {
	q, ok := hq.coordToHw[idx]
	if !ok {
		return 0, fmt.Errorf("hwqubit: %w: coordinate %d", ErrCoordinateEmpty, idx)
	}
	return q, nil
}

// Move relocates hw qubit q to newCoord. newCoord must be a real site
// and must currently be free; any cached swap distance is invalidated
// since the nearest-neighbour graph distances are no longer valid.
func (hq *HardwareQubits) Move(q HwQubit, newCoord geometry.CoordIndex) error {
	if int(newCoord) >= hq.geo.NSites() {
		return fmt.Errorf("hwqubit: %w: no site %d", ErrInvalidCoordinate, newCoord)
	}
	if hq.IsMapped(newCoord) {
		return fmt.Errorf("hwqubit: %w: coordinate %d", ErrCoordinateOccupied, newCoord)
	}
	old := hq.hwToCoord[q]
	delete(hq.coordToHw, old)
	hq.set(q, newCoord)
	hq.resetSwapDistances()
	return nil
}

// InitialHwToCoord returns the layout HardwareQubits was constructed
// with, for reporting purposes. The returned map is a copy.
func (hq *HardwareQubits) InitialHwToCoord() map[HwQubit]geometry.CoordIndex {
	out := make(map[HwQubit]geometry.CoordIndex, len(hq.initialHwToCoord))
	for k, v := range hq.initialHwToCoord {
		out[k] = v
	}
	return out
}

// NearbyCoordinates forwards to the underlying Geometry for the
// coordinate q currently occupies.
func (hq *HardwareQubits) NearbyCoordinates(q HwQubit) []geometry.CoordIndex {
	return hq.geo.NearbyCoordinates(hq.CoordIndex(q))
}

func (hq *HardwareQubits) resetSwapDistances() {
	for i := range hq.swapDistances {
		hq.swapDistances[i] = -1
	}
}

func (hq *HardwareQubits) distIndex(a, b HwQubit) int {
	return int(a)*hq.nqubits + int(b)
}
