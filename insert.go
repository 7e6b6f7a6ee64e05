package geministore

import "github.com/kestrel-data/geministore/internal/vhash"

// Insert places e into the matrix using chain-hashing compensation.
//
// Steps:
//  1. Validate e's endpoints are non-zero.
//  2. Compute i = H(source), j = H(destination).
//  3. Probe rows (i+k) mod N for k = 0..g in order:
//     - vx already equals (s,d): reuse.
//     - vx is free: claim.
//     - otherwise: mark CF=0 and keep probing.
//  4. No candidate accepted ⇒ the insert is dropped and Overflows is
//     incremented rather than returning an error: overflow is the
//     sketch's lossy regime, not a failure.
//
// Complexity: O(g).
func (m *Matrix) Insert(e Edge) error {
	if m == nil {
		return ErrNilMatrix
	}
	if e.Source == 0 || e.Destination == 0 {
		return ErrInvalidIdentifier
	}

	id := identity{s: e.Source, d: e.Destination}
	i := vhash.H(e.Source, m.dim)
	j := vhash.H(e.Destination, m.dim)

	for _, row := range m.probeRows(i) {
		idx := m.idx(row, j)
		b := &m.cells[idx]

		switch {
		case b.vx == id:
			m.reuse(b, e)
			return nil
		case b.vx.empty():
			m.claim(idx, b, e, id)
			return nil
		default:
			b.cf = 0
		}
	}

	m.overflows++
	return nil
}

func (m *Matrix) claim(idx int, b *Bucket, e Edge, id identity) {
	b.vx = id
	b.cf = 1
	b.ec = 1
	b.list.PushBack(e)
	b.gt = e.Time
	m.spliceTail(idx)
}

func (m *Matrix) reuse(b *Bucket, e Edge) {
	b.ec++
	b.list.PushBack(e)
	b.gt = e.Time
}
