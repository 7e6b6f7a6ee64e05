package reach

import (
	"github.com/kestrel-data/geministore"
)

// walker encapsulates mutable BFS state over the sketch's active-edge
// adjacency for a single Query call.
type walker struct {
	adj     map[geministore.VID][]geministore.VID
	visited map[geministore.VID]bool
	queue   []geministore.VID
	budget  int
	steps   int
}

// Query reports whether a directed path s = v0 -> v1 -> ... -> vk = t
// exists using only edges with Time in [tb, te].
//
// Tie-break: if s == t, Query returns true iff s has at least one
// outgoing edge in the window, else false — it does not trivially
// return true for a zero-length path.
//
// If a step budget is configured (WithStepBudget) and exhausted before
// the search concludes, Query returns false rather than an error.
func Query(m *geministore.Matrix, s, t geministore.VID, tb, te geministore.Time, opts ...Option) (bool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return false, cfg.err
	}
	if m == nil || geministore.MalformedWindow(tb, te) {
		return false, nil
	}

	if s == t {
		return m.QueryVertexOutDegree(s, tb, te) > 0, nil
	}

	w := &walker{
		adj:     make(map[geministore.VID][]geministore.VID),
		visited: map[geministore.VID]bool{s: true},
		queue:   []geministore.VID{s},
		budget:  cfg.stepBudget,
	}
	m.VisitActiveEdges(tb, te, func(e geministore.Edge) {
		w.adj[e.Source] = append(w.adj[e.Source], e.Destination)
	})

	for len(w.queue) > 0 {
		select {
		case <-cfg.ctx.Done():
			return false, cfg.ctx.Err()
		default:
		}

		if w.budget > 0 && w.steps >= w.budget {
			return false, nil
		}
		w.steps++

		cur := w.queue[0]
		w.queue = w.queue[1:]

		for _, nbr := range w.adj[cur] {
			if nbr == t {
				return true, nil
			}
			if !w.visited[nbr] {
				w.visited[nbr] = true
				w.queue = append(w.queue, nbr)
			}
		}
	}
	return false, nil
}
