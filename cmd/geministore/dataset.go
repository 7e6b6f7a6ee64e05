package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/internal/ingest"
)

// loadDataset reads every edge out of path, dispatching on its
// extension (.jsonl/.ndjson for newline-delimited JSON, anything else
// as CSV), and returns them as a slice ready for replay or insertion.
func loadDataset(path string) ([]sketch.Edge, ingest.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ingest.Stats{}, fmt.Errorf("geministore: open dataset: %w", err)
	}
	defer f.Close()

	var edges []sketch.Edge
	visit := func(e sketch.Edge) { edges = append(edges, e) }

	ext := strings.ToLower(filepath.Ext(path))
	var stats ingest.Stats
	switch ext {
	case ".jsonl", ".ndjson":
		stats, err = ingest.JSONL(f, visit)
	default:
		stats, err = ingest.CSV(f, visit)
	}
	if err != nil {
		return nil, stats, fmt.Errorf("geministore: parse dataset: %w", err)
	}
	return edges, stats, nil
}

// buildMatrix ingests every edge in path into a freshly built matrix
// sized per the root --dim/--chain-window flags.
func buildMatrix(path string) (*sketch.Matrix, ingest.Stats, error) {
	edges, stats, err := loadDataset(path)
	if err != nil {
		return nil, stats, err
	}

	m, err := sketch.NewMatrixWithDim(flagDim, sketch.WithChainWindow(flagChainWindow))
	if err != nil {
		return nil, stats, fmt.Errorf("geministore: build matrix: %w", err)
	}
	for _, e := range edges {
		if err := m.Insert(e); err != nil {
			return nil, stats, fmt.Errorf("geministore: insert edge: %w", err)
		}
	}
	return m, stats, nil
}
