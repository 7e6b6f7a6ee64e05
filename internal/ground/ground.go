// Package ground implements a deliberately naive, exact temporal
// multigraph: every edge is kept forever in one flat slice, scanned
// linearly, with no hashing or eviction. It exists only as a test
// oracle for measuring sketch.Matrix's under/over-counting rate — never
// a production path.
package ground

import sketch "github.com/kestrel-data/geministore"

// Graph is an exact, unbounded record of every inserted edge.
type Graph struct {
	edges []sketch.Edge
}

// New returns an empty reference graph.
func New() *Graph {
	return &Graph{}
}

// Insert records e permanently; unlike sketch.Matrix, Graph never
// drops or evicts.
func (g *Graph) Insert(e sketch.Edge) {
	g.edges = append(g.edges, e)
}

func inWindow(t, tb, te sketch.Time) bool {
	return tb <= te && t >= tb && t <= te
}

// QueryEdge reports whether any (s, d) edge falls within [tb, te].
func (g *Graph) QueryEdge(s, d sketch.VID, tb, te sketch.Time) bool {
	for _, e := range g.edges {
		if e.Source == s && e.Destination == d && inWindow(e.Time, tb, te) {
			return true
		}
	}
	return false
}

// QueryVertexPresence reports whether v appears as either endpoint of
// any edge within [tb, te].
func (g *Graph) QueryVertexPresence(v sketch.VID, tb, te sketch.Time) bool {
	for _, e := range g.edges {
		if (e.Source == v || e.Destination == v) && inWindow(e.Time, tb, te) {
			return true
		}
	}
	return false
}

// QueryVertexOutWeight sums the weight of every edge leaving v within
// [tb, te].
func (g *Graph) QueryVertexOutWeight(v sketch.VID, tb, te sketch.Time) sketch.Weight {
	var total sketch.Weight
	for _, e := range g.edges {
		if e.Source == v && inWindow(e.Time, tb, te) {
			total += e.Weight
		}
	}
	return total
}

// QueryVertexOutDegree counts edges leaving v within [tb, te].
func (g *Graph) QueryVertexOutDegree(v sketch.VID, tb, te sketch.Time) int64 {
	var n int64
	for _, e := range g.edges {
		if e.Source == v && inWindow(e.Time, tb, te) {
			n++
		}
	}
	return n
}

// QuerySubgraph mirrors sketch.Matrix.QuerySubgraph's first-match-wins
// semantics exactly, scanning the full edge list instead of a bounded
// matrix.
func (g *Graph) QuerySubgraph(pairs []sketch.SubgraphPair, tb, te sketch.Time) sketch.Weight {
	var total sketch.Weight
	for _, p := range pairs {
		found := false
		for _, e := range g.edges {
			if e.Source == p.Source && e.Destination == p.Destination && inWindow(e.Time, tb, te) {
				total += e.Weight
				found = true
				break
			}
		}
		if !found {
			return sketch.NoMatch
		}
	}
	return total
}

// Reachable runs an exact BFS over the edges active within [tb, te],
// with no step budget, matching the original reachabilityQuery's
// unbounded queue/visited-set walk.
func (g *Graph) Reachable(s, t sketch.VID, tb, te sketch.Time) bool {
	if tb > te {
		return false
	}
	if s == t {
		return g.QueryVertexOutDegree(s, tb, te) > 0
	}

	adj := make(map[sketch.VID][]sketch.VID)
	for _, e := range g.edges {
		if inWindow(e.Time, tb, te) {
			adj[e.Source] = append(adj[e.Source], e.Destination)
		}
	}

	visited := map[sketch.VID]bool{s: true}
	queue := []sketch.VID{s}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if next == t {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// Len reports how many edges Graph has ever recorded.
func (g *Graph) Len() int {
	return len(g.edges)
}
