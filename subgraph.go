package geministore

// SubgraphPair is one (source, destination) element of a subgraph query
// multiset.
type SubgraphPair struct {
	Source      VID
	Destination VID
}

// NoMatch is the sentinel QuerySubgraph returns when any element of S
// has no matching edge in the window.
const NoMatch Weight = -1

// QuerySubgraph sums the weight of the first matching edge (by Time
// order within the window) for each element of s, or returns NoMatch if
// any element has no bucket, or no edge in [tb, te].
func (m *Matrix) QuerySubgraph(s []SubgraphPair, tb, te Time) Weight {
	if m == nil || MalformedWindow(tb, te) {
		return NoMatch
	}

	var total Weight
	for _, pair := range s {
		b, ok := m.bucketFor(pair.Source, pair.Destination)
		if !ok {
			return NoMatch
		}
		matched := false
		forEachActiveEdge(b, tb, te, func(e Edge) {
			if matched {
				return
			}
			matched = true
			total += e.Weight
		})
		if !matched {
			return NoMatch
		}
	}
	return total
}
