package geministore

import "github.com/kestrel-data/geministore/internal/vhash"

// inWindow reports whether t lies in [tb, te].
func inWindow(t, tb, te Time) bool { return t >= tb && t <= te }

// forEachActiveEdge iterates the live edges of a Bucket whose Time falls
// in [tb, te], calling visit for each. It is the single shared primitive
// behind QueryEdge, vertex queries, and QuerySubgraph.
func forEachActiveEdge(b *Bucket, tb, te Time, visit func(Edge)) {
	for _, e := range b.list.All() {
		if inWindow(e.Time, tb, te) {
			visit(e)
		}
	}
}

// bucketFor locates the Bucket currently owning (s, d) under the
// compensation window, if any.
func (m *Matrix) bucketFor(s, d VID) (*Bucket, bool) {
	id := identity{s: s, d: d}
	i := vhash.H(s, m.dim)
	j := vhash.H(d, m.dim)
	for _, row := range m.probeRows(i) {
		b := m.cell(row, j)
		if b.vx == id {
			return b, true
		}
	}
	return nil, false
}

// QueryEdge reports whether an edge (s, d) with Time in [tb, te] exists.
// A malformed window or a missing bucket both report false.
func (m *Matrix) QueryEdge(s, d VID, tb, te Time) bool {
	if m == nil || MalformedWindow(tb, te) {
		return false
	}
	b, ok := m.bucketFor(s, d)
	if !ok {
		return false
	}
	found := false
	forEachActiveEdge(b, tb, te, func(Edge) { found = true })
	return found
}

// QueryVertexPresence reports whether v appears as either endpoint of
// any edge with Time in [tb, te], scanning every compensated row.
func (m *Matrix) QueryVertexPresence(v VID, tb, te Time) bool {
	if m == nil || MalformedWindow(tb, te) {
		return false
	}
	found := false
	m.scanVertexRows(v, func(b *Bucket) bool {
		if b.vx.s != v && b.vx.d != v {
			return true
		}
		forEachActiveEdge(b, tb, te, func(Edge) { found = true })
		return !found
	})
	return found
}

// QueryVertexOutWeight sums the weight of v's outgoing edges with Time
// in [tb, te].
func (m *Matrix) QueryVertexOutWeight(v VID, tb, te Time) Weight {
	if m == nil || MalformedWindow(tb, te) {
		return 0
	}
	var total Weight
	m.scanVertexRows(v, func(b *Bucket) bool {
		if b.vx.s == v {
			forEachActiveEdge(b, tb, te, func(e Edge) { total += e.Weight })
		}
		return true
	})
	return total
}

// QueryVertexOutDegree counts v's outgoing edges with Time in [tb, te].
func (m *Matrix) QueryVertexOutDegree(v VID, tb, te Time) int64 {
	if m == nil || MalformedWindow(tb, te) {
		return 0
	}
	var count int64
	m.scanVertexRows(v, func(b *Bucket) bool {
		if b.vx.s == v {
			forEachActiveEdge(b, tb, te, func(Edge) { count++ })
		}
		return true
	})
	return count
}

// scanVertexRows visits every Bucket in every compensated row for v
// (i.e. all N columns of each of the g+1 candidate rows), calling visit
// for each occupied one. visit returns false to stop early.
func (m *Matrix) scanVertexRows(v VID, visit func(*Bucket) bool) {
	i := vhash.H(v, m.dim)
	for _, row := range m.probeRows(i) {
		base := row * m.dim
		for col := 0; col < m.dim; col++ {
			b := &m.cells[base+col]
			if !b.Occupied() {
				continue
			}
			if !visit(b) {
				return
			}
		}
	}
}

// AvgChainLength returns the average number of live edges per occupied
// bucket, or 0 if no bucket is occupied.
//
// Complexity: O(N²).
func (m *Matrix) AvgChainLength() float32 {
	var chains, total int
	for i := range m.cells {
		if n := m.cells[i].Len(); n > 0 {
			chains++
			total += n
		}
	}
	if chains == 0 {
		return 0
	}
	return float32(total) / float32(chains)
}
