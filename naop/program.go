package naop

import (
	"fmt"
	"strings"

	"github.com/kegliz/naqmap/geometry"
)

// Program is the full emitted artifact: the physical site each
// logical atom occupies at t=0, followed by the ordered operation
// stream, mirroring na::NAQuantumComputation.
type Program struct {
	InitialPositions []geometry.Point
	ops              []Operation
}

// Append adds op to the end of the operation stream.
func (p *Program) Append(op Operation) {
	p.ops = append(p.ops, op)
}

// Operations returns the operation stream in emission order.
func (p *Program) Operations() []Operation { return p.ops }

// Clear empties the operation stream and initial positions, for reuse
// across postprocessing passes that rebuild the stream from scratch.
func (p *Program) Clear() {
	p.InitialPositions = nil
	p.ops = nil
}

// SetOperations replaces the operation stream wholesale, used by the
// postprocessor after patch expansion and MOVE decomposition.
func (p *Program) SetOperations(ops []Operation) {
	p.ops = ops
}

func (p *Program) String() string {
	var b strings.Builder
	b.WriteString("initialPositions: [")
	for i, pt := range p.InitialPositions {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%d,%d)", pt.X, pt.Y)
	}
	b.WriteString("]\n")
	for _, op := range p.ops {
		b.WriteString(op.String())
		b.WriteString("\n")
	}
	return b.String()
}
