package geministore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sketch "github.com/kestrel-data/geministore"
)

// Subgraph tests with more than one identity use a large dimension so
// the distinct identities involved don't share a compensated cell; see the comment
// on ExampleMatrix_querySubgraph for why this departs from the spec's
// illustrative N=10.

func TestQuerySubgraph_FullMatch(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(9973, sketch.WithChainWindow(1))
	require.NoError(t, err)
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 4, Time: 1}))
	require.NoError(t, m.Insert(sketch.Edge{Source: 2, Destination: 3, Weight: 6, Time: 2}))

	s := []sketch.SubgraphPair{{Source: 1, Destination: 2}, {Source: 2, Destination: 3}}
	assert.Equal(t, sketch.Weight(10), m.QuerySubgraph(s, 0, 5))
}

func TestQuerySubgraph_MissingElement(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(9973, sketch.WithChainWindow(1))
	require.NoError(t, err)
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 4, Time: 1}))

	s := []sketch.SubgraphPair{{Source: 1, Destination: 2}, {Source: 2, Destination: 3}}
	assert.Equal(t, sketch.NoMatch, m.QuerySubgraph(s, 0, 5))
}

func TestQuerySubgraph_MalformedWindow(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 4, Time: 1}))

	s := []sketch.SubgraphPair{{Source: 1, Destination: 2}}
	assert.Equal(t, sketch.NoMatch, m.QuerySubgraph(s, 5, 0))
}

func TestQuerySubgraph_OutOfWindow(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)
	require.NoError(t, m.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 4, Time: 100}))

	s := []sketch.SubgraphPair{{Source: 1, Destination: 2}}
	assert.Equal(t, sketch.NoMatch, m.QuerySubgraph(s, 0, 5))
}
