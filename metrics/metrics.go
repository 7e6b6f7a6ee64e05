// Package metrics wraps a sketch.Matrix with Prometheus collectors. The
// collector holds the matrix it decorates plus a nil-checked set of
// collector fields, and every method forwards to the inner matrix
// before or after touching its metrics.
//
// Collector adds no synchronization of its own: it is exactly as unsafe
// for concurrent use as the bare Matrix it wraps. Callers sharing a
// Collector across goroutines must supply their own locking.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	sketch "github.com/kestrel-data/geministore"
)

// Collector decorates a *sketch.Matrix with Prometheus instrumentation.
// It does not own the matrix's lifecycle; callers keep using the
// wrapped *sketch.Matrix directly for anything this type doesn't
// forward.
type Collector struct {
	m *sketch.Matrix

	overflowTotal prometheus.Counter
	chainLength   prometheus.Gauge
	occupied      prometheus.Gauge
	expiredTotal  *prometheus.CounterVec
}

// NewCollector builds a Collector for m and registers its collectors
// against reg immediately, so the returned Collector is scrape-ready
// without a separate activation step.
func NewCollector(m *sketch.Matrix, reg prometheus.Registerer) *Collector {
	c := &Collector{
		m: m,
		overflowTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "geministore_insertion_overflow_total",
			Help: "Edges dropped because no chain-hashing candidate was free or matching.",
		}),
		chainLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geministore_bucket_chain_length",
			Help: "Average number of live edges per occupied bucket.",
		}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "geministore_occupied_buckets",
			Help: "Number of buckets currently linked into the virtual queue.",
		}),
		expiredTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "geministore_expired_edges_total",
			Help: "Buckets emptied by expiry, labeled by strategy; edges drained from buckets that stay occupied are not counted.",
		}, []string{"strategy"}),
	}
	reg.MustRegister(c.overflowTotal, c.chainLength, c.occupied, c.expiredTotal)
	return c
}

// Insert forwards to the wrapped matrix, incrementing the overflow
// counter when the edge is silently dropped.
func (c *Collector) Insert(e sketch.Edge) error {
	before := c.m.Overflows()
	err := c.m.Insert(e)
	if err == nil && c.m.Overflows() > before && c.overflowTotal != nil {
		c.overflowTotal.Inc()
	}
	return err
}

// ExpireRolling forwards to the wrapped matrix and accounts the buckets
// it emptied under the "rolling" label.
func (c *Collector) ExpireRolling(te sketch.Time) {
	c.countExpired("rolling", func() { c.m.ExpireRolling(te) })
}

// ExpireFull forwards to the wrapped matrix and accounts the buckets it
// emptied under the "full" label.
func (c *Collector) ExpireFull(te sketch.Time) {
	c.countExpired("full", func() { c.m.ExpireFull(te) })
}

// ExpireLazy forwards to the wrapped matrix and accounts the buckets it
// emptied under the "lazy" label.
func (c *Collector) ExpireLazy(s, d sketch.VID, te sketch.Time) {
	c.countExpired("lazy", func() { c.m.ExpireLazy(s, d, te) })
}

func (c *Collector) countExpired(strategy string, run func()) {
	before := c.m.QueueLen()
	run()
	// QueueLen only tracks occupied buckets, not edge counts, so a
	// partial drain that leaves a bucket occupied is not counted here.
	// This is the cheapest signal available without threading a
	// per-edge callback into the core's expiry loop.
	after := c.m.QueueLen()
	if n := before - after; n > 0 && c.expiredTotal != nil {
		c.expiredTotal.WithLabelValues(strategy).Add(float64(n))
	}
}

// Observe refreshes the chain-length and occupied-bucket gauges from
// the wrapped matrix's current state. Callers poll this periodically
// (e.g. on a /metrics scrape) rather than updating it inline on every
// write.
func (c *Collector) Observe() {
	if c.chainLength != nil {
		c.chainLength.Set(float64(c.m.AvgChainLength()))
	}
	if c.occupied != nil {
		c.occupied.Set(float64(c.m.QueueLen()))
	}
}

// Matrix returns the wrapped matrix for operations Collector does not
// forward (queries, subgraph matching, reachability).
func (c *Collector) Matrix() *sketch.Matrix {
	return c.m
}
