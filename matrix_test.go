package geministore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sketch "github.com/kestrel-data/geministore"
)

func TestNewMatrixWithDim(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 10, m.Dim())
	assert.Equal(t, sketch.DefaultChainWindow, m.ChainWindow())

	_, err = sketch.NewMatrixWithDim(0)
	assert.ErrorIs(t, err, sketch.ErrInvalidDimension)

	_, err = sketch.NewMatrixWithDim(-3)
	assert.ErrorIs(t, err, sketch.ErrInvalidDimension)
}

func TestNewMatrixFromBudget(t *testing.T) {
	m, err := sketch.NewMatrix(1 << 20)
	require.NoError(t, err)
	assert.Greater(t, m.Dim(), 0)
}

func TestWithChainWindowClampsNegative(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(5, sketch.WithChainWindow(-4))
	require.NoError(t, err)
	assert.Equal(t, 0, m.ChainWindow())
}

func TestInsertRejectsZeroIdentifier(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10)
	require.NoError(t, err)

	err = m.Insert(sketch.Edge{Source: 0, Destination: 2, Weight: 1, Time: 1})
	assert.ErrorIs(t, err, sketch.ErrInvalidIdentifier)

	err = m.Insert(sketch.Edge{Source: 1, Destination: 0, Weight: 1, Time: 1})
	assert.ErrorIs(t, err, sketch.ErrInvalidIdentifier)
}

func TestInsertOnNilMatrix(t *testing.T) {
	var m *sketch.Matrix
	err := m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1})
	assert.ErrorIs(t, err, sketch.ErrNilMatrix)
}
