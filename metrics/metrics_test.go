package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/metrics"
)

func TestCollector_ObserveReflectsMatrixState(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(m, reg)

	require.NoError(t, c.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1}))
	c.Observe()

	families, err := reg.Gather()
	require.NoError(t, err)

	var occupied float64
	for _, f := range families {
		if f.GetName() == "geministore_occupied_buckets" {
			occupied = f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(1), occupied)
}

func TestCollector_OverflowCounter(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(1, sketch.WithChainWindow(0))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(m, reg)

	require.NoError(t, c.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1}))
	require.NoError(t, c.Insert(sketch.Edge{Source: 3, Destination: 4, Weight: 1, Time: 2}))

	families, err := reg.Gather()
	require.NoError(t, err)

	var overflows float64
	for _, f := range families {
		if f.GetName() == "geministore_insertion_overflow_total" {
			overflows = f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(1), overflows)
}

func TestCollector_ExpiredCounterLabeledByStrategy(t *testing.T) {
	m, err := sketch.NewMatrixWithDim(10, sketch.WithChainWindow(1))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(m, reg)
	require.NoError(t, c.Insert(sketch.Edge{Source: 1, Destination: 2, Weight: 1, Time: 1}))

	c.ExpireRolling(2)

	count, err := testutil.GatherAndCount(reg, "geministore_expired_edges_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
