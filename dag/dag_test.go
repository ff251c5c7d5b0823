package dag

import (
	"testing"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCircuit(t *testing.T, build func(circuit.Builder) circuit.Builder, nqubits, nclbits int) *circuit.Circuit {
	t.Helper()
	c, err := build(circuit.New(nqubits, nclbits)).Build()
	require.NoError(t, err)
	return c
}

func TestIndependentGatesAreBothExecutable(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).X(1)
	}, 2, 0)

	d := New(c)
	assert.ElementsMatch(t, []VertexID{0, 1}, d.ExecutableSet())
}

func TestChainOnSameQubitOrdersVertices(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).X(0)
	}, 1, 0)

	d := New(c)
	assert.Equal(t, []VertexID{0}, d.ExecutableSet())

	require.NoError(t, d.Execute(0))
	assert.Equal(t, []VertexID{1}, d.ExecutableSet())
}

func TestCommutingDiagonalChainAllExecutableAtOnce(t *testing.T) {
	// RZ(a) q0; Z q0; RZ(b) q0 -- all diagonal, all should be
	// simultaneously executable (scenario S6).
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.RZ(0.1, 0).Z(0).RZ(0.2, 0)
	}, 1, 0)

	d := New(c)
	assert.Len(t, d.ExecutableSet(), 3)
}

func TestExactInverseChainIsNonOrdering(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).H(0)
	}, 1, 0)

	d := New(c)
	assert.Len(t, d.ExecutableSet(), 2)
}

func TestTwoCZsSharingQubitAreOrdered(t *testing.T) {
	// Scenario S4: CZ(0,1); CZ(0,2) -- second must wait for first.
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.CZ(0, 1).CZ(0, 2)
	}, 3, 0)

	d := New(c)
	require.Len(t, d.ExecutableSet(), 1)
	first := d.ExecutableSet()[0]
	assert.Equal(t, VertexID(0), first)

	require.NoError(t, d.Execute(first))
	assert.Equal(t, []VertexID{1}, d.ExecutableSet())
}

func TestExecuteRejectsNonExecutableVertex(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).X(0)
	}, 1, 0)

	d := New(c)
	err := d.Execute(1)
	assert.ErrorIs(t, err, ErrNotExecutable)
}

func TestDisabledSuccessorDecrementsCounter(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).H(1).X(2)
	}, 3, 0)
	d := New(c)

	// Manually wire a disabled edge from vertex 0 to vertex 2 to
	// exercise the primitive directly: vertex 2's threshold drops to -1
	// while its counter is still 0, so it is held back; executing 0
	// decrements its counter to -1 and makes it executable.
	d.addDisabledSuccessor(0, 2)
	assert.NotContains(t, d.ExecutableSet(), VertexID(2))

	require.NoError(t, d.Execute(0))
	assert.Contains(t, d.ExecutableSet(), VertexID(2))
}

func TestIsEmpty(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0)
	}, 1, 0)
	d := New(c)
	assert.False(t, d.IsEmpty())
	require.NoError(t, d.Execute(0))
	assert.True(t, d.IsEmpty())
}

func TestGetExecutablesOfType(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0).CZ(1, 2)
	}, 3, 0)
	d := New(c)

	hs := d.GetExecutablesOfType(gate.H, 0)
	require.Len(t, hs, 1)

	czs := d.GetExecutablesOfType(gate.CZKind, 1)
	require.Len(t, czs, 1)
}

func TestConstructInteractionGraphAndSequence(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.CZ(0, 1).CZ(2, 3)
	}, 4, 0)
	d := New(c)

	g := d.ConstructInteractionGraph(gate.CZKind)
	require.False(t, g.Empty())
	require.Len(t, g.Edges(), 2)

	seq := g.ComputeSequence()
	assert.Equal(t, 0, seq.Fixed[0])
	assert.Equal(t, 1, seq.Fixed[2])
	require.Len(t, seq.Moveable, 1)
	assert.Equal(t, 0, seq.Moveable[0][1])
	assert.Equal(t, 0, seq.Moveable[0][3])
}

func TestInteractionGraphEdgeExecuteMarksVertexDone(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.CZ(0, 1)
	}, 2, 0)
	d := New(c)

	g := d.ConstructInteractionGraph(gate.CZKind)
	e := g.GetEdge(0, 1)
	require.NotNil(t, e)
	require.NoError(t, e.Execute())
	assert.True(t, d.IsEmpty())
}

func TestEmptyInteractionGraphWhenNoMatchingKind(t *testing.T) {
	c := buildCircuit(t, func(b circuit.Builder) circuit.Builder {
		return b.H(0)
	}, 1, 0)
	d := New(c)

	g := d.ConstructInteractionGraph(gate.CZKind)
	assert.True(t, g.Empty())
}
