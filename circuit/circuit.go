// Package circuit is a minimal in-module stand-in for an external
// OpenQASM (or similar) front end: an ordered list of gate operations
// over a fixed qubit register, plus a small fluent Builder so tests
// and the HTTP demo endpoint can construct circuits without a parser
// dependency.
package circuit

import "github.com/kegliz/naqmap/gate"

// Operation is one gate application: a Gate plus the absolute qubit
// indices it acts on, in the same order as the gate's own relative
// Targets/Controls. Cbit is the classical bit index a Measure writes
// to, or -1 for every other gate.
type Operation struct {
	Gate   gate.Gate
	Qubits []int
	Cbit   int
}

// Circuit is an ordered sequence of operations over a fixed qubit
// register. Unlike the teacher's DAG-backed circuit.Circuit, this
// package makes no commutation or dependency claims of its own — the
// dag package builds those from the operation sequence.
type Circuit struct {
	nqubits int
	nclbits int
	ops     []Operation
}

// NQubits returns the size of the circuit's qubit register.
func (c *Circuit) NQubits() int { return c.nqubits }

// NClbits returns the size of the circuit's classical register.
func (c *Circuit) NClbits() int { return c.nclbits }

// Operations returns the circuit's operations in program order.
func (c *Circuit) Operations() []Operation { return c.ops }

// Depth returns the number of operations in the circuit.
func (c *Circuit) Depth() int { return len(c.ops) }
