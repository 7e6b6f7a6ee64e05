package ground_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/internal/ground"
)

func chain(t *testing.T) *ground.Graph {
	t.Helper()
	g := ground.New()
	g.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1})
	g.Insert(sketch.Edge{Source: 2, Destination: 3, Weight: 1, Time: 2})
	g.Insert(sketch.Edge{Source: 3, Destination: 4, Weight: 1, Time: 3})
	return g
}

func TestGraph_QueryEdge(t *testing.T) {
	g := chain(t)
	assert.True(t, g.QueryEdge(1, 2, 0, 5))
	assert.False(t, g.QueryEdge(1, 2, 5, 9))
	assert.False(t, g.QueryEdge(9, 9, 0, 5))
}

func TestGraph_VertexQueries(t *testing.T) {
	g := chain(t)
	assert.True(t, g.QueryVertexPresence(2, 0, 5))
	assert.Equal(t, sketch.Weight(1), g.QueryVertexOutWeight(2, 0, 5))
	assert.Equal(t, int64(1), g.QueryVertexOutDegree(2, 0, 5))
	assert.Equal(t, int64(0), g.QueryVertexOutDegree(4, 0, 5))
}

func TestGraph_QuerySubgraph(t *testing.T) {
	g := chain(t)
	full := []sketch.SubgraphPair{{Source: 1, Destination: 2}, {Source: 2, Destination: 3}}
	assert.Equal(t, sketch.Weight(2), g.QuerySubgraph(full, 0, 5))

	missing := []sketch.SubgraphPair{{Source: 1, Destination: 2}, {Source: 9, Destination: 9}}
	assert.Equal(t, sketch.NoMatch, g.QuerySubgraph(missing, 0, 5))
}

func TestGraph_Reachable(t *testing.T) {
	g := chain(t)
	assert.True(t, g.Reachable(1, 4, 0, 5))
	assert.False(t, g.Reachable(4, 1, 0, 5))
	assert.False(t, g.Reachable(1, 4, 5, 0), "malformed window")
	assert.True(t, g.Reachable(1, 1, 0, 5), "1 has an outgoing edge")
	assert.False(t, g.Reachable(4, 4, 0, 5), "4 has no outgoing edge")
}

func TestGraph_Len(t *testing.T) {
	g := chain(t)
	assert.Equal(t, 3, g.Len())
}
