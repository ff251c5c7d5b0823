package naop

import (
	"testing"

	"github.com/kegliz/naqmap/gate"
	"github.com/kegliz/naqmap/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalOperationKindAndString(t *testing.T) {
	op := GlobalOperation{GateKind: gate.H}
	assert.Equal(t, GlobalKind, op.Kind())
	assert.Contains(t, op.String(), "global")
	assert.Contains(t, op.String(), "H")
}

func TestLocalOperationCarriesPositions(t *testing.T) {
	op := LocalOperation{
		GateKind:  gate.RZ,
		Param:     1.5,
		Positions: []geometry.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
	}
	assert.Equal(t, LocalKind, op.Kind())
	s := op.String()
	assert.Contains(t, s, "(1,2)")
	assert.Contains(t, s, "(3,4)")
}

func TestShuttlingOperationString(t *testing.T) {
	op := ShuttlingOperation{
		ShuttlingKind: Move,
		Start:         []geometry.Point{{X: 0, Y: 0}},
		End:           []geometry.Point{{X: 5, Y: 0}},
	}
	assert.Equal(t, ShuttlingKind, op.Kind())
	assert.Contains(t, op.String(), "MOVE")
	assert.Contains(t, op.String(), "(0,0)->(5,0)")
}

func TestProgramAppendAndClear(t *testing.T) {
	p := &Program{InitialPositions: []geometry.Point{{X: 0, Y: 0}}}
	p.Append(GlobalOperation{GateKind: gate.X})
	p.Append(ShuttlingOperation{ShuttlingKind: Load, Start: []geometry.Point{{X: 0, Y: 0}}, End: []geometry.Point{{X: 0, Y: 0}}})

	require.Len(t, p.Operations(), 2)
	assert.Contains(t, p.String(), "initialPositions")

	p.Clear()
	assert.Empty(t, p.Operations())
	assert.Empty(t, p.InitialPositions)
}

func TestProgramSetOperationsReplacesStream(t *testing.T) {
	p := &Program{}
	p.Append(GlobalOperation{GateKind: gate.X})
	p.SetOperations([]Operation{GlobalOperation{GateKind: gate.Y}})
	require.Len(t, p.Operations(), 1)
	assert.Equal(t, gate.Y, p.Operations()[0].(GlobalOperation).GateKind)
}
