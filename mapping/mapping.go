// Package mapping tracks the bijection between circuit qubits (the
// logical qubits an input circuit is written against) and hardware
// qubits (the physical atoms a HardwareQubits tracks).
package mapping

import (
	"fmt"

	"github.com/kegliz/naqmap/hwqubit"
)

// CircQubit is a dense index into the input circuit's qubit register.
type CircQubit uint32

// Mapping is the live circToHw bijection. It is built once with every
// circuit qubit mapped to a distinct hw qubit, then mutated only
// through Swap and SetCircuitQubit.
type Mapping struct {
	circToHw map[CircQubit]hwqubit.HwQubit
	hwToCirc map[hwqubit.HwQubit]CircQubit
}

// New builds the identity mapping: circuit qubit i maps to hw qubit i.
func New(n int) *Mapping {
	m := &Mapping{
		circToHw: make(map[CircQubit]hwqubit.HwQubit, n),
		hwToCirc: make(map[hwqubit.HwQubit]CircQubit, n),
	}
	for i := 0; i < n; i++ {
		m.circToHw[CircQubit(i)] = hwqubit.HwQubit(i)
		m.hwToCirc[hwqubit.HwQubit(i)] = CircQubit(i)
	}
	return m
}

// IsMapped reports whether circuit qubit q has an hw qubit assigned.
func (m *Mapping) IsMapped(q CircQubit) bool {
	_, ok := m.circToHw[q]
	return ok
}

// GetHwQubit returns the hw qubit circuit qubit q is mapped to.
func (m *Mapping) GetHwQubit(q CircQubit) (hwqubit.HwQubit, error) {
	hw, ok := m.circToHw[q]
	if !ok {
		return 0, fmt.Errorf("mapping: %w: circuit qubit %d", ErrNotMapped, q)
	}
	return hw, nil
}

// GetCircQubit returns the circuit qubit currently mapped to hw qubit q.
func (m *Mapping) GetCircQubit(q hwqubit.HwQubit) (CircQubit, error) {
	circ, ok := m.hwToCirc[q]
	if !ok {
		return 0, fmt.Errorf("mapping: %w: hw qubit %d", ErrNotMapped, q)
	}
	return circ, nil
}

// SetCircuitQubit assigns circuit qubit c to hw qubit h, overwriting
// any previous assignment for either side.
func (m *Mapping) SetCircuitQubit(c CircQubit, h hwqubit.HwQubit) {
	if oldHw, ok := m.circToHw[c]; ok {
		delete(m.hwToCirc, oldHw)
	}
	if oldCirc, ok := m.hwToCirc[h]; ok {
		delete(m.circToHw, oldCirc)
	}
	m.circToHw[c] = h
	m.hwToCirc[h] = c
}

// Swap exchanges the hw qubits assigned to a and b. At least one side
// must already be mapped.
func (m *Mapping) Swap(a, b hwqubit.HwQubit) error {
	circA, aOk := m.hwToCirc[a]
	circB, bOk := m.hwToCirc[b]
	if !aOk && !bOk {
		return fmt.Errorf("mapping: %w: neither %d nor %d is mapped", ErrSwapRequiresMappedEndpoint, a, b)
	}

	switch {
	case aOk && bOk:
		m.circToHw[circA], m.circToHw[circB] = b, a
		m.hwToCirc[a], m.hwToCirc[b] = circB, circA
	case aOk:
		delete(m.hwToCirc, a)
		m.circToHw[circA] = b
		m.hwToCirc[b] = circA
	case bOk:
		delete(m.hwToCirc, b)
		m.circToHw[circB] = a
		m.hwToCirc[a] = circB
	}
	return nil
}

// Size returns the number of circuit qubits currently mapped.
func (m *Mapping) Size() int { return len(m.circToHw) }
