// Package bench replays a dataset through sketch.Matrix and
// internal/ground's exact reference engine side by side, reporting the
// sketch's accuracy and internal-state figures of merit. Grounded on
// goarista's gnmireverse client.go streamResponses, which runs a
// publisher and a subscriber concurrently via
// errgroup.WithContext/eg.Go and reports whichever one errors first.
package bench

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/internal/ground"
)

// Sample is one query to cross-check between the sketch and the
// reference engine during a replay.
type Sample struct {
	Source, Destination sketch.VID
	WindowBegin, WindowEnd sketch.Time
}

// Report tallies a replay's accuracy and internal-state figures of
// merit.
type Report struct {
	EdgesReplayed      int
	FalsePositives     int // sketch says present, ground truth says absent
	FalseNegatives     int // sketch says absent, ground truth says present
	SamplesCompared    int
	FinalOverflows     int64
	FinalAvgChainLen   float32
	FinalOccupiedCount int
}

// Options configures a Replay call.
type Options struct {
	// RateLimit caps edge-insertion throughput when non-nil, mirroring
	// a production ingest path that shouldn't starve its own metrics
	// scrape loop.
	RateLimit *rate.Limiter
	// Samples are queried against both engines after the full dataset
	// has been replayed.
	Samples []Sample
}

// Replay inserts every edge in edges into both m and the ground-truth
// graph concurrently, then cross-checks Options.Samples against both
// once both legs have finished. Returns whichever error either
// leg first encountered, per errgroup.Group.Wait's contract.
func Replay(ctx context.Context, m *sketch.Matrix, edges []sketch.Edge, opts Options) (Report, error) {
	g := ground.New()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		for _, e := range edges {
			if opts.RateLimit != nil {
				if err := opts.RateLimit.Wait(ctx); err != nil {
					return err
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := m.Insert(e); err != nil {
				return err
			}
		}
		return nil
	})

	eg.Go(func() error {
		for _, e := range edges {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.Insert(e)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		EdgesReplayed:      len(edges),
		FinalOverflows:     m.Overflows(),
		FinalAvgChainLen:   m.AvgChainLength(),
		FinalOccupiedCount: m.QueueLen(),
	}

	for _, s := range opts.Samples {
		sketchSays := m.QueryEdge(s.Source, s.Destination, s.WindowBegin, s.WindowEnd)
		groundSays := g.QueryEdge(s.Source, s.Destination, s.WindowBegin, s.WindowEnd)
		report.SamplesCompared++
		switch {
		case sketchSays && !groundSays:
			report.FalsePositives++
		case !sketchSays && groundSays:
			report.FalseNegatives++
		}
	}

	return report, nil
}
