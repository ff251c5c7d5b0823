package dag

import "github.com/kegliz/naqmap/circuit"

// VertexID is a dense index into the DAG's vertex arena.
type VertexID int

// Vertex is one DAG node: the operation it carries plus the
// executable-threshold/counter bookkeeping from na/Layer.hpp's
// DAGVertex. A vertex is executable iff it has not executed and its
// counter equals its threshold.
type Vertex struct {
	Op circuit.Operation

	executableThreshold int
	executableCounter   int
	enabledSuccessors   []VertexID
	disabledSuccessors  []VertexID
	executed            bool
}

// IsExecutable reports whether v may be executed right now.
func (v *Vertex) IsExecutable() bool {
	return !v.executed && v.executableCounter == v.executableThreshold
}

// IsExecuted reports whether v has already been executed.
func (v *Vertex) IsExecuted() bool { return v.executed }
