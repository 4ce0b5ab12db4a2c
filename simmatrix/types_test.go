package simmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslevel/xalign/simmatrix"
)

func TestEdgeSimMatrixSetIsSymmetric(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 0.5))

	v, ok := m.At(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = m.At(1, 0)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
}

func TestEdgeSimMatrixAtUnsetIsNotOK(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(3)
	require.NoError(t, err)

	_, ok := m.At(0, 2)
	assert.False(t, ok)
}

func TestEdgeSimMatrixSetRejectsOutOfRange(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Set(2, 0, 1), simmatrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), simmatrix.ErrOutOfRange)
}

func TestNewEdgeSimMatrixRejectsNegativeSize(t *testing.T) {
	_, err := simmatrix.NewEdgeSimMatrix(-1)
	assert.ErrorIs(t, err, simmatrix.ErrNegativeSize)
}

func TestEdgeSimMatrixRowIsDefensiveCopy(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 0.9))

	row := m.Row(0)
	row[1] = 42

	fresh := m.Row(0)
	assert.Equal(t, 0.9, fresh[1])
}

func TestEdgeSimMatrixHasRowAndRowIndices(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 0.1))
	require.NoError(t, m.Set(2, 3, 0.2))

	assert.True(t, m.HasRow(0))
	assert.True(t, m.HasRow(1))
	assert.True(t, m.HasRow(2))
	assert.True(t, m.HasRow(3))

	assert.ElementsMatch(t, []int{0, 1, 2, 3}, m.RowIndices())
}

func TestEdgeSimMatrixCloneIsDeepCopy(t *testing.T) {
	m, err := simmatrix.NewEdgeSimMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 0.3))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 1, 0.9))

	v, ok := m.At(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0.3, v)

	v, ok = clone.At(0, 1)
	require.True(t, ok)
	assert.Equal(t, 0.9, v)
}
