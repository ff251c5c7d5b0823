package placer

import (
	"strings"
	"testing"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/dag"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/hwqubit"
	"github.com/kegliz/naqmap/naop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyMachineJSON() string {
	return `{
		"name": "toy-placer",
		"nqubits": 2,
		"interactionRadius": 2,
		"noInteractionRadius": 5,
		"minAtomDistance": 1,
		"zones": [
			{
				"name": "storage",
				"kind": "storage",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 0},
					{"row": 0, "col": 1, "x": 5, "y": 0},
					{"row": 0, "col": 2, "x": 10, "y": 0},
					{"row": 1, "col": 0, "x": 0, "y": 5},
					{"row": 1, "col": 1, "x": 5, "y": 5},
					{"row": 1, "col": 2, "x": 10, "y": 5}
				],
				"localGates": [{"kind": "H", "nControls": 0}],
				"globalGates": [{"kind": "RZ", "nControls": 0}]
			},
			{
				"name": "entangling",
				"kind": "interaction",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 20},
					{"row": 0, "col": 1, "x": 5, "y": 20}
				],
				"localGates": [],
				"globalGates": [{"kind": "CZ", "nControls": 1}]
			}
		]
	}`
}

func loadToyMachine(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.Load(strings.NewReader(toyMachineJSON()))
	require.NoError(t, err)
	return g
}

func TestUndefinedAtomPanicsOnSetCurrent(t *testing.T) {
	a := NewUndefinedAtom([]geometry.Zone{0})
	assert.False(t, a.IsDefined())
	assert.Panics(t, func() { a.SetCurrent(geometry.Point{X: 1, Y: 1}) })
}

func TestAtomDefineThenNarrowZonesIsNoop(t *testing.T) {
	a := NewUndefinedAtom([]geometry.Zone{0, 1})
	a.Define(geometry.Point{X: 3, Y: 4})
	require.True(t, a.IsDefined())
	assert.Equal(t, geometry.Point{X: 3, Y: 4}, a.Initial())
	assert.Equal(t, geometry.Point{X: 3, Y: 4}, a.Current())

	a.NarrowZones(func(z geometry.Zone) bool { return z == 0 })
	assert.Len(t, a.Zones(), 2, "narrowing a defined atom must be a no-op")
}

func TestAtomNarrowZonesFiltersUndefined(t *testing.T) {
	a := NewUndefinedAtom([]geometry.Zone{0, 1, 2})
	a.NarrowZones(func(z geometry.Zone) bool { return z != 1 })
	assert.Equal(t, []geometry.Zone{0, 2}, a.Zones())
}

func TestRunDrainsSingleQubitThenShuttlesCZPair(t *testing.T) {
	geo := loadToyMachine(t)
	hq, err := hwqubit.New(geo, 2, hwqubit.Trivial)
	require.NoError(t, err)

	c, err := circuit.New(2, 0).H(0).CZ(0, 1).Build()
	require.NoError(t, err)

	d := dag.New(c)
	pl, err := New(geo, 2, d, hq)
	require.NoError(t, err)

	prog, err := pl.Run()
	require.NoError(t, err)
	require.NotNil(t, prog)

	assert.Len(t, prog.InitialPositions, 2)

	var sawLocalH, sawLoad, sawStore bool
	for _, op := range prog.Operations() {
		switch v := op.(type) {
		case naop.LocalOperation:
			if v.GateKind == gate.H {
				sawLocalH = true
			}
		case naop.ShuttlingOperation:
			switch v.ShuttlingKind {
			case naop.Load:
				sawLoad = true
			case naop.Store:
				sawStore = true
			}
		}
	}
	assert.True(t, sawLocalH, "expected H to drain as a local operation")
	assert.True(t, sawLoad, "expected at least one LOAD batch while shuttling the CZ pair")
	assert.True(t, sawStore, "expected the CZ pair to be returned to storage")
	assert.True(t, d.IsEmpty(), "every vertex must have executed by the time Run returns")
}

func wideMachineJSON() string {
	return `{
		"name": "wide-placer",
		"nqubits": 4,
		"interactionRadius": 5,
		"noInteractionRadius": 5,
		"minAtomDistance": 5,
		"zones": [
			{
				"name": "storage",
				"kind": "storage",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 0},
					{"row": 0, "col": 1, "x": 5, "y": 0},
					{"row": 0, "col": 2, "x": 10, "y": 0},
					{"row": 0, "col": 3, "x": 15, "y": 0}
				],
				"localGates": [{"kind": "H", "nControls": 0}],
				"globalGates": [{"kind": "RZ", "nControls": 0}]
			},
			{
				"name": "entangling",
				"kind": "interaction",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 30},
					{"row": 0, "col": 1, "x": 5, "y": 30}
				],
				"localGates": [],
				"globalGates": [{"kind": "CZ", "nControls": 1}]
			}
		]
	}`
}

func loadWideMachine(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.Load(strings.NewReader(wideMachineJSON()))
	require.NoError(t, err)
	return g
}

// TestReturnToStorageRespectsMinimumSpacing exercises P3: two disjoint
// CZ pairs interact in the same timeframe (ComputeSequence's matching
// puts both moveable-side qubits into seq.Moveable[0]), so
// returnToStorage packs both into one STORE batch. Any two endpoints
// sharing a row must be at least MinAtomDistance apart.
func TestReturnToStorageRespectsMinimumSpacing(t *testing.T) {
	geo := loadWideMachine(t)
	hq, err := hwqubit.New(geo, 4, hwqubit.Trivial)
	require.NoError(t, err)

	c, err := circuit.New(4, 0).CZ(0, 1).CZ(2, 3).Build()
	require.NoError(t, err)

	d := dag.New(c)
	pl, err := New(geo, 4, d, hq)
	require.NoError(t, err)

	prog, err := pl.Run()
	require.NoError(t, err)

	minDist := geo.MinAtomDistance()
	var sawMultiEndpointStore bool
	for _, op := range prog.Operations() {
		s, ok := op.(naop.ShuttlingOperation)
		if !ok || s.ShuttlingKind != naop.Store {
			continue
		}
		if len(s.Start) >= 2 {
			sawMultiEndpointStore = true
		}
		assertMinSpacing(t, s.Start, minDist)
		assertMinSpacing(t, s.End, minDist)
	}
	assert.True(t, sawMultiEndpointStore, "expected at least one STORE batch returning more than one atom at once")
}

// assertMinSpacing checks property P3: any two points in pts sharing a
// y-coordinate must differ in x by at least minDist (and symmetrically
// for points sharing an x-coordinate), since same-row/same-column
// endpoints land on distinct trap sites.
func assertMinSpacing(t *testing.T, pts []geometry.Point, minDist int64) {
	t.Helper()
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			a, b := pts[i], pts[j]
			if a.Y == b.Y && a.X != b.X {
				diff := a.X - b.X
				if diff < 0 {
					diff = -diff
				}
				assert.GreaterOrEqual(t, diff, minDist, "same-row endpoints %v and %v are closer than MinAtomDistance", a, b)
			}
			if a.X == b.X && a.Y != b.Y {
				diff := a.Y - b.Y
				if diff < 0 {
					diff = -diff
				}
				assert.GreaterOrEqual(t, diff, minDist, "same-column endpoints %v and %v are closer than MinAtomDistance", a, b)
			}
		}
	}
}
