package dag

import (
	"sort"

	"github.com/kegliz/naqmap/gate"
)

// Edge is one currently-executable two-qubit gate, viewed as an
// undirected edge between the circuit qubits it acts on. Execute
// marks the underlying DAG vertex done, which is how the Placer
// reports a completed interaction back to the DAG.
type Edge struct {
	P, Q     int
	vertexID VertexID
	dag      *DAG
}

// Execute marks the gate this edge represents as executed.
func (e *Edge) Execute() error { return e.dag.Execute(e.vertexID) }

// InteractionGraph is an undirected graph over circuit qubits whose
// edges are the currently-executable two-qubit gates of one kind.
// Because non-diagonal two-qubit gates sharing a qubit are DAG-ordered
// unless they are exact inverses on the same qubits, the executable set
// contains at most one edge per qubit at a time and the graph is a
// matching, with one exception: a repeated self-inverse gate on one
// pair (CZ(0,1) twice in a row) leaves both copies executable, as two
// edges between the same two qubits.
type InteractionGraph struct {
	dag   *DAG
	edges []*Edge
}

// ConstructInteractionGraph builds the interaction graph for every
// currently-executable vertex whose operation is kind with exactly
// one control (i.e. CZ).
func (d *DAG) ConstructInteractionGraph(kind gate.Kind) *InteractionGraph {
	g := &InteractionGraph{dag: d}
	for _, id := range d.GetExecutablesOfType(kind, 1) {
		op := d.vertices[id].Op
		if len(op.Qubits) != 2 {
			continue
		}
		g.edges = append(g.edges, &Edge{P: op.Qubits[0], Q: op.Qubits[1], vertexID: id, dag: d})
	}
	sort.Slice(g.edges, func(i, j int) bool {
		return min2(g.edges[i].P, g.edges[i].Q) < min2(g.edges[j].P, g.edges[j].Q)
	})
	return g
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Empty reports whether the graph has no edges.
func (g *InteractionGraph) Empty() bool { return len(g.edges) == 0 }

// Edges returns every edge in the graph.
func (g *InteractionGraph) Edges() []*Edge { return g.edges }

// GetEdge returns the edge between circuit qubits p and q, if any.
func (g *InteractionGraph) GetEdge(p, q int) *Edge {
	for _, e := range g.edges {
		if (e.P == p && e.Q == q) || (e.P == q && e.Q == p) {
			return e
		}
	}
	return nil
}

// Sequence is the (moveable, fixed) assignment the Placer consumes:
// Fixed maps a fixed-side circuit qubit to its target column in the
// interaction zone; Moveable is an ordered list of timeframes, each a
// partial map from a moveable-side circuit qubit to a signed column
// offset relative to its partner's fixed column.
type Sequence struct {
	Fixed    map[int]int
	Moveable []map[int]int
}

// ComputeSequence partitions each matched pair into a fixed side (the
// qubit with the lower circuit index, assigned sequential interaction
// columns in pair order) and a moveable side (the other qubit, aligned
// to its partner's column with offset 0). The minimal core's hot path
// never needs more than one timeframe: every pair can interact in a
// single global pulse once placed, since each fixed column is
// distinct. A lookahead scheduler producing multiple timeframes to
// balance shuttling cost is explicitly out of scope for the core
// (spec's lookaheadWeight* configuration fields are consumed only by
// that external heuristic).
func (g *InteractionGraph) ComputeSequence() Sequence {
	fixed := make(map[int]int, len(g.edges))
	moveFrame := make(map[int]int, len(g.edges))

	for i, e := range g.edges {
		lo, hi := e.P, e.Q
		if hi < lo {
			lo, hi = hi, lo
		}
		fixed[lo] = i
		moveFrame[hi] = 0
	}

	seq := Sequence{Fixed: fixed}
	if len(moveFrame) > 0 {
		seq.Moveable = []map[int]int{moveFrame}
	}
	return seq
}
