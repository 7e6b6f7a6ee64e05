package geministore

import (
	"time"

	"github.com/kestrel-data/geministore/internal/vhash"
)

// VID is a vertex identifier. Zero is reserved as the "empty" sentinel;
// callers must never pass 0 to Insert or any query.
type VID = vhash.VID

// Weight is an edge weight.
type Weight = int64

// Time is a logical timestamp, monotonically non-decreasing across the
// insertion sequence presented to a single Matrix.
type Time = int64

// Edge is an immutable directed, timestamped, weighted observation.
type Edge struct {
	Source      VID
	Destination VID
	Weight      Weight
	Time        Time
}

// identity is the (source, destination) pair a Bucket is currently
// assigned to. The zero value, identity{}, is the free sentinel.
type identity struct {
	s VID
	d VID
}

func (id identity) empty() bool { return id.s == 0 && id.d == 0 }

// noLink marks the absence of a virtual-queue neighbor. Bucket.bqp and
// Matrix's HP/MP/TP cursors use flat cell indices rather than pointers:
// the arena is the Matrix's own cell slice, so a raw pointer would
// entangle Bucket lifetime with slice reallocation for no benefit, since
// the slice never grows after construction.
const noLink = -1

// Bucket is one cell of the matrix. It owns every Edge currently
// assigned to a single (source, destination) identity.
type Bucket struct {
	vx   identity  // (source, destination); zero value means free
	ec   int       // count of live edges currently stored
	list edgeDeque // chronological edge list, O(1) front-pop
	cf   int       // collision flag, written during probing, never read for control flow
	gt   Time      // timestamp of the most recently accepted edge
	bqp  int       // flat index of the next bucket in the virtual queue, or noLink
}

// Occupied reports whether the Bucket currently owns an identity.
func (b *Bucket) Occupied() bool { return !b.vx.empty() }

// Len returns the number of live edges currently stored in the Bucket.
func (b *Bucket) Len() int { return b.ec }

// Matrix is the N×N bucket array that is the entire sketch, plus the
// virtual queue cursors threading its occupied cells in first-occupation
// order.
type Matrix struct {
	dim   int      // N
	g     int      // chain-hashing compensation window
	cells []Bucket // flat, row-major, length dim*dim

	hp int // head: oldest occupied bucket, or noLink
	mp int // middle: rolling-expiry frontier, or noLink
	tp int // tail: most recently occupied bucket, or noLink

	overflows int64 // diagnostic counter of dropped insertions

	expirationThreshold time.Duration // pass-through default for harness-computed Te
}

// Dim returns the matrix's side length N.
func (m *Matrix) Dim() int { return m.dim }

// ChainWindow returns the configured compensation window g.
func (m *Matrix) ChainWindow() int { return m.g }

// Overflows returns the number of insertions dropped because every
// candidate cell in the compensation window was occupied by an unrelated
// identity.
func (m *Matrix) Overflows() int64 { return m.overflows }

// ExpirationThreshold returns the default duration supplied via
// WithExpirationThreshold at construction, for harnesses that want to
// derive Te from their own clock without threading the value separately.
func (m *Matrix) ExpirationThreshold() time.Duration { return m.expirationThreshold }

func (m *Matrix) idx(row, col int) int { return row*m.dim + col }

func (m *Matrix) cell(row, col int) *Bucket { return &m.cells[m.idx(row, col)] }
