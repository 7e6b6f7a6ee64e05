package geministore

import "github.com/kestrel-data/geministore/internal/vhash"

// ExpiryKind selects one of the three expiry strategies. It is carried
// as a field of ExpiryStrategy so a single Expire entry point can
// dispatch on it, rather than exposing three unrelated functions.
type ExpiryKind int

const (
	// KindRolling walks the virtual queue from HP toward MP, draining
	// leading expired edges and advancing MP to the new oldest-still-live
	// bucket. O(expired edges + emptied buckets).
	KindRolling ExpiryKind = iota
	// KindFullScan iterates every cell, drops expired edges everywhere,
	// and rebuilds the virtual queue from scratch. O(N²), but always
	// correct regardless of queue state.
	KindFullScan
	// KindLazy drains only the one bucket a read or write just touched.
	// Never advances MP.
	KindLazy
)

// ExpiryStrategy parametrizes Expire. Build one with Rolling, FullScan,
// or LazyFor.
type ExpiryStrategy struct {
	Kind   ExpiryKind
	source VID // only meaningful when Kind == KindLazy
	dest   VID
}

// Rolling selects the rolling-out strategy.
func Rolling() ExpiryStrategy { return ExpiryStrategy{Kind: KindRolling} }

// FullScan selects the full-scan strategy.
func FullScan() ExpiryStrategy { return ExpiryStrategy{Kind: KindFullScan} }

// LazyFor selects the lazy strategy targeting the bucket owning (s, d).
func LazyFor(s, d VID) ExpiryStrategy { return ExpiryStrategy{Kind: KindLazy, source: s, dest: d} }

// Expire drops edges with Time <= te from the buckets the given strategy
// visits. FullScan visits every cell, so afterwards no reachable Edge
// satisfies time <= te; Rolling stops at the first bucket from MP onward
// that survives draining, and Lazy touches a single bucket, so either may
// leave expired edges in buckets it did not visit. Under every strategy,
// a Bucket that reaches ec=0 is reset to vx=(0,0) and unlinked from the
// virtual queue.
func (m *Matrix) Expire(te Time, strategy ExpiryStrategy) {
	if m == nil {
		return
	}
	switch strategy.Kind {
	case KindRolling:
		m.expireRolling(te)
	case KindFullScan:
		m.expireFull(te)
	case KindLazy:
		m.expireLazy(strategy.source, strategy.dest, te)
	}
}

// ExpireRolling is a thin wrapper over Expire(te, Rolling()).
func (m *Matrix) ExpireRolling(te Time) { m.Expire(te, Rolling()) }

// ExpireFull is a thin wrapper over Expire(te, FullScan()).
func (m *Matrix) ExpireFull(te Time) { m.Expire(te, FullScan()) }

// ExpireLazy is a thin wrapper over Expire(te, LazyFor(s, d)).
func (m *Matrix) ExpireLazy(s, d VID, te Time) { m.Expire(te, LazyFor(s, d)) }

// drainLeading pops every leading edge with Time <= te from b's list,
// decrementing ec as it goes. Returns true once b.ec reaches 0.
func drainLeading(b *Bucket, te Time) (emptied bool) {
	for {
		front, ok := b.list.Front()
		if !ok || front.Time > te {
			break
		}
		b.list.PopFront()
		b.ec--
		if b.ec == 0 {
			return true
		}
	}
	return false
}

func (b *Bucket) free() {
	b.vx = identity{}
	b.ec = 0
	b.cf = 0
	b.gt = 0
	b.list.reset()
}

// expireRolling walks HP..MP draining expired leading edges, unlinking
// any bucket that empties, then advances MP to the first bucket from the
// old MP onward that is still occupied after draining — the new
// oldest-still-live bucket. Buckets after that new MP, up to TP, are
// presumed live and are not touched by this pass.
//
// Implementation: a single forward walk threads one prev pointer through
// two phases so every unlink is O(1): phase one (HP..MP) drains
// unconditionally; phase two (MP onward) stops at the first bucket that
// survives draining, which becomes the new MP. MP's own leading edges are
// drained too in phase two, since it may itself have expired since the
// last pass.
func (m *Matrix) expireRolling(te Time) {
	if m.hp == noLink {
		return
	}
	oldMP := m.mp
	cur := m.hp
	prev := noLink

	// Phase one: HP..MP, unconditional drain.
	for cur != oldMP && cur != noLink {
		b := &m.cells[cur]
		next := b.bqp
		if drainLeading(b, te) {
			b.free()
			m.unlink(prev, cur)
		} else {
			prev = cur
		}
		cur = next
	}

	// Phase two: starting at MP, drain and stop at the first survivor.
	for cur != noLink {
		b := &m.cells[cur]
		next := b.bqp
		if drainLeading(b, te) {
			b.free()
			m.unlink(prev, cur)
			cur = next
			continue
		}
		m.mp = cur
		return
	}
	m.mp = noLink
}

// expireFull iterates every cell, drops every leading expired edge,
// frees emptied buckets, and rebuilds the virtual queue from scratch in
// scan order. O(N²); the safe fallback when the queue's incremental
// invariants are in doubt.
func (m *Matrix) expireFull(te Time) {
	m.hp, m.mp, m.tp = noLink, noLink, noLink

	for i := range m.cells {
		b := &m.cells[i]
		if !b.Occupied() {
			b.bqp = noLink
			continue
		}
		if drainLeading(b, te) {
			b.free()
			b.bqp = noLink
			continue
		}
		b.bqp = noLink
		m.spliceTail(i)
	}
	m.mp = m.hp
}

// expireLazy drains leading expired edges from only the bucket owning
// (s, d), unlinking it if it becomes empty. Never advances MP. If no
// bucket currently owns (s, d), this is a no-op.
func (m *Matrix) expireLazy(s, d VID, te Time) {
	id := identity{s: s, d: d}
	i := vhash.H(s, m.dim)
	j := vhash.H(d, m.dim)

	for _, row := range m.probeRows(i) {
		idx := m.idx(row, j)
		b := &m.cells[idx]
		if b.vx != id {
			continue
		}
		if drainLeading(b, te) {
			b.free()
			m.unlinkByIndex(idx)
		}
		return
	}
}

// unlinkByIndex locates idx's predecessor in the virtual queue by
// walking from HP, then unlinks it. Lazy expiry is the only strategy
// that needs to unlink an arbitrary, possibly-interior bucket without
// already having walked the queue to find it.
func (m *Matrix) unlinkByIndex(idx int) {
	if m.hp == idx {
		m.unlink(noLink, idx)
		return
	}
	prev := m.hp
	for prev != noLink && m.cells[prev].bqp != idx {
		prev = m.cells[prev].bqp
	}
	if prev == noLink {
		return // idx was not in the queue (already free)
	}
	m.unlink(prev, idx)
}
