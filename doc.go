// Package geministore is a compact, approximate summary of a temporal
// directed graph, sized to a fixed memory budget, for sliding-window
// analytics over a high-velocity edge stream.
//
// The sketch trades exactness for bounded memory: an N×N matrix of
// Buckets absorbs edges under a bounded chain-hashing compensation
// window, a virtual queue threads occupied Buckets in arrival order for
// expiry, and queries (edge existence, vertex weight/degree, subgraph
// match, reachability) all read through the same compensation rule that
// Insert used to place the edge.
//
// The package is a single-threaded, cooperative-scheduling core: no
// operation here takes a lock or suspends. A Matrix is not safe for
// concurrent use, including through the metrics package's Collector,
// which only forwards calls and records counters/gauges; callers
// sharing a Matrix across goroutines must supply their own reader/writer
// discipline.
//
// Quick example:
//
//	m, _ := geministore.NewMatrixWithDim(9973, geministore.WithChainWindow(2))
//	_ = m.Insert(geministore.Edge{Source: 1, Destination: 2, Weight: 10, Time: 1})
//	m.ExpireRolling(5)
//	ok := m.QueryEdge(1, 2, 0, 10)
//
// Subpackages:
//
//	reach/          — BFS reachability over the matrix's active edges
//	internal/vhash  — the hash mapper H
//	internal/ingest — CSV/JSONL dataset parsing
//	internal/ground — an exact, unbounded reference graph for testing
//	internal/bench  — replays a dataset through both side by side
//	metrics/        — Prometheus instrumentation
//	cmd/geministore — a CLI for ingesting, querying, and benchmarking
package geministore
