package geministore

import (
	"math"
	"unsafe"
)

// bucketSize approximates sizeof(Bucket) for the memory-budget
// derivation in NewMatrix. It is computed once from unsafe.Sizeof of the
// zero Bucket rather than hardcoded, so it tracks the struct if it
// changes.
var bucketSize = int(unsafe.Sizeof(Bucket{}))

// NewMatrix creates a Matrix sized from a memory budget in bytes:
// N = floor(sqrt(budget / sizeof(Bucket))), clamped to at least 1.
//
// Complexity: O(N²) to zero-initialize the cell array.
func NewMatrix(budgetBytes int, opts ...Option) (*Matrix, error) {
	opts = append([]Option{WithMemoryBudget(budgetBytes)}, opts...)
	cfg := newConfig(opts...)
	n := dimFromBudget(cfg.memoryBudgetBytes)
	if cfg.dim != 0 {
		n = cfg.dim
	}
	return newMatrix(n, cfg)
}

// NewMatrixWithDim creates a Matrix with an explicit side length N,
// overriding any memory-budget derivation.
//
// Complexity: O(N²) to zero-initialize the cell array.
func NewMatrixWithDim(n int, opts ...Option) (*Matrix, error) {
	opts = append([]Option{WithDim(n)}, opts...)
	cfg := newConfig(opts...)
	return newMatrix(cfg.dim, cfg)
}

func dimFromBudget(budgetBytes int) int {
	if bucketSize <= 0 {
		return 1
	}
	n := int(math.Sqrt(float64(budgetBytes) / float64(bucketSize)))
	if n < 1 {
		n = 1
	}
	return n
}

func newMatrix(n int, cfg *config) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimension
	}
	cells := make([]Bucket, n*n)
	for i := range cells {
		cells[i].bqp = noLink
	}
	return &Matrix{
		dim:                 n,
		g:                   cfg.chainWindow,
		cells:               cells,
		hp:                  noLink,
		mp:                  noLink,
		tp:                  noLink,
		expirationThreshold: cfg.expirationThreshold,
	}, nil
}

// probeRows yields the candidate row sequence (i+k) mod N for k=0..g, in
// order. Both Insert and every read path call this single helper, so the
// probe order can never drift between the write path and the query
// paths.
func (m *Matrix) probeRows(i int) []int {
	rows := make([]int, m.g+1)
	for k := 0; k <= m.g; k++ {
		rows[k] = (i + k) % m.dim
	}
	return rows
}

// spliceTail appends the bucket at flat index idx to the tail of the
// virtual queue. Called only on first occupation (Insert's claim case).
func (m *Matrix) spliceTail(idx int) {
	if m.tp == noLink {
		m.hp = idx
		m.mp = idx
		m.tp = idx
		return
	}
	m.cells[m.tp].bqp = idx
	m.tp = idx
}

// unlink removes the bucket at flat index idx from the virtual queue.
// idx may be anywhere in the queue; prev is the bucket immediately
// before idx in the queue, or noLink if idx is HP.
func (m *Matrix) unlink(prev, idx int) {
	next := m.cells[idx].bqp
	m.cells[idx].bqp = noLink

	if prev == noLink {
		m.hp = next
	} else {
		m.cells[prev].bqp = next
	}
	if m.mp == idx {
		m.mp = next
	}
	if m.tp == idx {
		m.tp = prev
	}
	if m.hp == noLink {
		m.mp = noLink
		m.tp = noLink
	}
}

// QueueLen walks the virtual queue and counts occupied buckets. Intended
// for tests and diagnostics, not the hot path.
//
// Complexity: O(occupied buckets).
func (m *Matrix) QueueLen() int {
	n := 0
	for i := m.hp; i != noLink; i = m.cells[i].bqp {
		n++
	}
	return n
}
