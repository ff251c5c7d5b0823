package mapper

import (
	"strings"
	"testing"

	"github.com/kegliz/naqmap/circuit"
	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/kegliz/naqmap/mapping"
	"github.com/kegliz/naqmap/naop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyGeoJSON() string {
	return `{
		"name": "toy-mapper",
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

func loadToyGeo(t *testing.T) *geometry.Geometry {
	t.Helper()
	g, err := geometry.Load(strings.NewReader(toyGeoJSON()))
	require.NoError(t, err)
	return g
}

func TestMapRunsSmallCircuitEndToEnd(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).H(0).CZ(0, 1).Build()
	require.NoError(t, err)

	prog, m, stats, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, prog)
	require.NotNil(t, m)

	assert.Equal(t, 2, stats.NumInitialGates)
	assert.Greater(t, stats.NumMappedGates, 0)
	assert.True(t, m.IsMapped(mapping.CircQubit(0)))
	assert.True(t, m.IsMapped(mapping.CircQubit(1)))
}

func TestMapRejectsUnsupportedTwoQubitGate(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).RZZ(0.3, 0, 1).Build()
	require.NoError(t, err)

	_, _, _, err = Map(c, geo, DefaultConfig())
	assert.ErrorIs(t, err, ErrUnsupportedGate)
}

func TestMapRejectsGateNotPermittedByArchitecture(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).X(0).Build()
	require.NoError(t, err)

	_, _, _, err = Map(c, geo, DefaultConfig())
	assert.ErrorIs(t, err, ErrArchitectureMismatch)
}

// TestMapEmptyCircuitYieldsIdentityLayoutAndNoOperations is scenario
// S1: an empty circuit produces no operations at all, and its initial
// positions are exactly the Trivial layout's identity site assignment
// (hardware qubit i sits on the i-th declared site).
func TestMapEmptyCircuitYieldsIdentityLayoutAndNoOperations(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).Build()
	require.NoError(t, err)

	prog, _, stats, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.NumInitialGates)
	assert.Empty(t, prog.Operations())
	require.Len(t, prog.InitialPositions, 2)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, prog.InitialPositions[0])
	assert.Equal(t, geometry.Point{X: 5, Y: 0}, prog.InitialPositions[1])
}

// TestMapIndependentGlobalGatesMergeIntoOnePulse is scenario S2: two
// single-qubit gates of the same kind and parameter on independent
// qubits, both realisable as a global pulse, merge into exactly one
// GlobalOperation and never touch the shuttling substrate.
func TestMapIndependentGlobalGatesMergeIntoOnePulse(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).RZ(0.3, 0).RZ(0.3, 1).Build()
	require.NoError(t, err)

	prog, _, _, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)

	var globals, shuttles int
	for _, op := range prog.Operations() {
		switch v := op.(type) {
		case naop.GlobalOperation:
			globals++
			assert.Equal(t, gate.RZ, v.GateKind)
			assert.InDelta(t, 0.3, v.Param, 0)
		case naop.ShuttlingOperation:
			shuttles++
		}
	}
	assert.Equal(t, 1, globals, "both RZ(0.3) gates should merge into a single global pulse")
	assert.Equal(t, 0, shuttles, "a global-gate-only circuit should never shuttle")
}

// TestMapSequentialCZPairsOnSharedQubit is scenario S4: two CZs sharing
// qubit 0 are DAG-ordered (CZ is not diagonal), so the mapper must
// apply them as two separate global CZ pulses rather than batching
// them together.
func TestMapSequentialCZPairsOnSharedQubit(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(3, 0).CZ(0, 1).CZ(0, 2).Build()
	require.NoError(t, err)

	prog, _, _, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)

	var czIdx []int
	for i, op := range prog.Operations() {
		if g, ok := op.(naop.GlobalOperation); ok && g.GateKind == gate.CZKind {
			czIdx = append(czIdx, i)
		}
	}
	require.Len(t, czIdx, 2, "expected exactly two CZ pulses, one per pair")
	assert.Less(t, czIdx[0], czIdx[1], "the second CZ must be emitted strictly after the first")
}

// TestMapPatchReplicationScalesEveryPositionVector is scenario S5: the
// same small circuit, mapped with a 2x1 patch, must come back with
// every position-bearing vector scaled by R*C (P8) while gate order
// and kinds are unchanged.
func TestMapPatchReplicationScalesEveryPositionVector(t *testing.T) {
	geo := loadToyGeo(t)
	c, err := circuit.New(2, 0).H(0).CZ(0, 1).Build()
	require.NoError(t, err)

	base, _, _, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.PatchRows, cfg.PatchCols = 2, 1
	scaled, _, _, err := Map(c, geo, cfg)
	require.NoError(t, err)

	const factor = 2 * 1
	assert.Len(t, scaled.InitialPositions, factor*len(base.InitialPositions))

	// GlobalOperations carry no positions to scale and MOVE decomposition
	// can re-shape a shuttling batch independently at patch-replicated
	// coordinates, so only the kind/param sequence of every
	// non-shuttling pulse is compared directly; every LocalOperation's
	// own position count must still scale by exactly R*C.
	baseGlobals := filterKind[naop.GlobalOperation](base.Operations())
	scaledGlobals := filterKind[naop.GlobalOperation](scaled.Operations())
	require.Equal(t, len(baseGlobals), len(scaledGlobals))
	for i := range baseGlobals {
		assert.Equal(t, baseGlobals[i].GateKind, scaledGlobals[i].GateKind)
		assert.InDelta(t, baseGlobals[i].Param, scaledGlobals[i].Param, 0)
	}

	baseLocals := filterKind[naop.LocalOperation](base.Operations())
	scaledLocals := filterKind[naop.LocalOperation](scaled.Operations())
	require.Equal(t, len(baseLocals), len(scaledLocals))
	for i := range baseLocals {
		assert.Equal(t, baseLocals[i].GateKind, scaledLocals[i].GateKind)
		assert.Len(t, scaledLocals[i].Positions, factor*len(baseLocals[i].Positions))
	}
}

func filterKind[T naop.Operation](ops []naop.Operation) []T {
	var out []T
	for _, op := range ops {
		if v, ok := op.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func storageOnlyGeoJSON() string {
	return `{
		"name": "storage-only",
		"nqubits": 1,
		"interactionRadius": 2,
		"noInteractionRadius": 5,
		"minAtomDistance": 1,
		"zones": [
			{
				"name": "storage",
				"kind": "storage",
				"sites": [
					{"row": 0, "col": 0, "x": 0, "y": 0}
				],
				"localGates": [],
				"globalGates": [
					{"kind": "RZ", "nControls": 0},
					{"kind": "Z", "nControls": 0}
				]
			}
		]
	}`
}

// TestMapCommutingDiagonalGatesMergePerParameter is scenario S6: three
// diagonal single-qubit gates on the same qubit commute with each
// other, so all three are simultaneously executable; the placer
// groups them into one pulse per distinct (kind, param) pair rather
// than serialising them, and none of it touches the shuttling
// substrate.
func TestMapCommutingDiagonalGatesMergePerParameter(t *testing.T) {
	geo, err := geometry.Load(strings.NewReader(storageOnlyGeoJSON()))
	require.NoError(t, err)

	c, err := circuit.New(1, 0).RZ(0.1, 0).Z(0).RZ(0.7, 0).Build()
	require.NoError(t, err)

	prog, _, _, err := Map(c, geo, DefaultConfig())
	require.NoError(t, err)

	require.Len(t, prog.Operations(), 3, "three distinct (kind, param) pairs should yield three separate pulses")
	for _, op := range prog.Operations() {
		_, isShuttle := op.(naop.ShuttlingOperation)
		assert.False(t, isShuttle, "an all-diagonal, single-qubit circuit should never shuttle")
	}
}
