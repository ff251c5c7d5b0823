package mapping

import (
	"testing"

	"github.com/kegliz/naqmap/hwqubit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsIdentity(t *testing.T) {
	m := New(4)
	for i := 0; i < 4; i++ {
		hw, err := m.GetHwQubit(CircQubit(i))
		require.NoError(t, err)
		assert.Equal(t, hwqubit.HwQubit(i), hw)

		circ, err := m.GetCircQubit(hwqubit.HwQubit(i))
		require.NoError(t, err)
		assert.Equal(t, CircQubit(i), circ)
	}
	assert.Equal(t, 4, m.Size())
}

func TestGetHwQubitUnmapped(t *testing.T) {
	m := New(2)
	_, err := m.GetHwQubit(CircQubit(99))
	assert.ErrorIs(t, err, ErrNotMapped)
}

func TestSwapBothMapped(t *testing.T) {
	m := New(4)
	err := m.Swap(hwqubit.HwQubit(1), hwqubit.HwQubit(2))
	require.NoError(t, err)

	hw1, err := m.GetHwQubit(CircQubit(1))
	require.NoError(t, err)
	assert.Equal(t, hwqubit.HwQubit(2), hw1)

	hw2, err := m.GetHwQubit(CircQubit(2))
	require.NoError(t, err)
	assert.Equal(t, hwqubit.HwQubit(1), hw2)
}

func TestSwapOneUnmappedEndpoint(t *testing.T) {
	m := New(2) // circuit qubits 0,1 mapped to hw 0,1; hw 5 is unmapped
	err := m.Swap(hwqubit.HwQubit(0), hwqubit.HwQubit(5))
	require.NoError(t, err)

	_, err = m.GetCircQubit(hwqubit.HwQubit(0))
	assert.ErrorIs(t, err, ErrNotMapped)

	circ, err := m.GetCircQubit(hwqubit.HwQubit(5))
	require.NoError(t, err)
	assert.Equal(t, CircQubit(0), circ)
}

func TestSwapRejectsBothUnmapped(t *testing.T) {
	m := New(1)
	err := m.Swap(hwqubit.HwQubit(10), hwqubit.HwQubit(11))
	assert.ErrorIs(t, err, ErrSwapRequiresMappedEndpoint)
}

func TestSetCircuitQubitOverwritesBothSides(t *testing.T) {
	m := New(3)
	m.SetCircuitQubit(CircQubit(0), hwqubit.HwQubit(2))

	hw0, err := m.GetHwQubit(CircQubit(0))
	require.NoError(t, err)
	assert.Equal(t, hwqubit.HwQubit(2), hw0)

	_, err = m.GetCircQubit(hwqubit.HwQubit(0))
	assert.ErrorIs(t, err, ErrNotMapped)

	_, err = m.GetHwQubit(CircQubit(2))
	assert.ErrorIs(t, err, ErrNotMapped)
}
