package circuit

import (
	"fmt"

	"github.com/kegliz/naqmap/gate"
)

// Builder implements a fluent declarative DSL for building circuits.
// Every method validates its qubit indices against the register size
// and records the first error encountered, returning itself so calls
// chain; Build surfaces that error.
type Builder interface {
	H(q int) Builder
	X(q int) Builder
	Y(q int) Builder
	S(q int) Builder
	Sdg(q int) Builder
	T(q int) Builder
	Tdg(q int) Builder
	Z(q int) Builder
	I(q int) Builder
	P(theta float64, q int) Builder
	RZ(theta float64, q int) Builder
	RZZ(theta float64, q1, q2 int) Builder
	CZ(ctrl, tgt int) Builder
	Barrier(qubits ...int) Builder
	Measure(q, cbit int) Builder

	Build() (*Circuit, error)
}

// New returns a fresh Builder over a register of nqubits qubits and
// nclbits classical bits.
func New(nqubits, nclbits int) Builder {
	return &builder{nqubits: nqubits, nclbits: nclbits}
}

type builder struct {
	nqubits, nclbits int
	ops              []Operation
	err              error
	built            bool
}

func (b *builder) bail(err error) Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *builder) ready() bool { return b.built || b.err != nil }

func (b *builder) checkQubit(q int) error {
	if q < 0 || q >= b.nqubits {
		return fmt.Errorf("circuit: %w: qubit %d, register size %d", ErrQubitOutOfRange, q, b.nqubits)
	}
	return nil
}

func (b *builder) add(g gate.Gate, cbit int, qubits ...int) Builder {
	if b.ready() {
		return b
	}
	for _, q := range qubits {
		if err := b.checkQubit(q); err != nil {
			return b.bail(err)
		}
	}
	b.ops = append(b.ops, Operation{Gate: g, Qubits: qubits, Cbit: cbit})
	return b
}

func (b *builder) H(q int) Builder   { return b.add(gate.HGate(), -1, q) }
func (b *builder) X(q int) Builder   { return b.add(gate.XGate(), -1, q) }
func (b *builder) Y(q int) Builder   { return b.add(gate.YGate(), -1, q) }
func (b *builder) S(q int) Builder   { return b.add(gate.SGate(), -1, q) }
func (b *builder) Sdg(q int) Builder { return b.add(gate.SdgGate(), -1, q) }
func (b *builder) T(q int) Builder   { return b.add(gate.TGate(), -1, q) }
func (b *builder) Tdg(q int) Builder { return b.add(gate.TdgGate(), -1, q) }
func (b *builder) Z(q int) Builder   { return b.add(gate.ZGate(), -1, q) }
func (b *builder) I(q int) Builder   { return b.add(gate.IGate(), -1, q) }

func (b *builder) P(theta float64, q int) Builder  { return b.add(gate.PGate(theta), -1, q) }
func (b *builder) RZ(theta float64, q int) Builder { return b.add(gate.RZGate(theta), -1, q) }
func (b *builder) RZZ(theta float64, q1, q2 int) Builder {
	return b.add(gate.RZZGate(theta), -1, q1, q2)
}
func (b *builder) CZ(ctrl, tgt int) Builder { return b.add(gate.CZGate(), -1, ctrl, tgt) }

func (b *builder) Barrier(qubits ...int) Builder {
	return b.add(gate.BarrierGate(len(qubits)), -1, qubits...)
}

func (b *builder) Measure(q, cbit int) Builder {
	if b.ready() {
		return b
	}
	if cbit < 0 || cbit >= b.nclbits {
		return b.bail(fmt.Errorf("circuit: %w: cbit %d, register size %d", ErrClbitOutOfRange, cbit, b.nclbits))
	}
	return b.add(gate.MeasureGate(), cbit, q)
}

// Build validates nothing beyond what was already checked inline and
// returns the finished Circuit. The builder becomes invalid after
// this call.
func (b *builder) Build() (*Circuit, error) {
	if b.built {
		return nil, ErrAlreadyBuilt
	}
	if b.err != nil {
		return nil, b.err
	}
	b.built = true
	return &Circuit{nqubits: b.nqubits, nclbits: b.nclbits, ops: b.ops}, nil
}
