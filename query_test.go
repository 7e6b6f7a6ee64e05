package geministore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sketch "github.com/kestrel-data/geministore"
)

func newSingleEdgeMatrix(t *testing.T) *sketch.Matrix {
	t.Helper()
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 10, Time: 1}))
	return m
}

func TestQueryEdge_WindowFiltering(t *testing.T) {
	m := newSingleEdgeMatrix(t)
	assert.True(t, m.QueryEdge(1, 2, 0, 3))
	assert.False(t, m.QueryEdge(1, 2, 5, 9))
	assert.False(t, m.QueryEdge(9, 9, 0, 3), "missing bucket reports false")
}

func TestQueryEdge_MalformedWindow(t *testing.T) {
	m := newSingleEdgeMatrix(t)
	assert.False(t, m.QueryEdge(1, 2, 5, 0))
}

// TestQueryVertexPresence checks the source side, which the compensation
// window always scans correctly (rows are addressed by H(source)), and
// an uninvolved vertex, which is false independent of hash layout since
// the lone bucket's identity simply doesn't match it. It deliberately
// does not assert presence for the destination side: presence scans
// rows addressed by H(v) on both sides, but an edge's row is only ever
// chosen from H(source)'s window — so destination-side presence is
// itself an approximate, hash-layout-dependent result, not a property
// this test can pin down without running the real hash.
func TestQueryVertexPresence(t *testing.T) {
	m := newSingleEdgeMatrix(t)
	assert.True(t, m.QueryVertexPresence(1, 0, 3))
	assert.False(t, m.QueryVertexPresence(7, 0, 3))
}

func TestQueryVertexOutWeightAndDegree(t *testing.T) {
	m := newSingleEdgeMatrix(t)
	assert.Equal(t, sketch.Weight(10), m.QueryVertexOutWeight(1, 0, 3))
	assert.Equal(t, int64(1), m.QueryVertexOutDegree(1, 0, 3))

	// destination vertex has no outgoing edges in this fixture
	assert.Equal(t, sketch.Weight(0), m.QueryVertexOutWeight(2, 0, 3))
	assert.Equal(t, int64(0), m.QueryVertexOutDegree(2, 0, 3))
}

func TestAvgChainLength(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)
	assert.Equal(t, float32(0), m.AvgChainLength())

	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1}))
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 2}))
	assert.Equal(t, float32(2), m.AvgChainLength())
}
