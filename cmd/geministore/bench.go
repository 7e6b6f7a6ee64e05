package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/internal/bench"
)

var (
	benchDataset      string
	benchRate         float64
	benchCompareExact []string
)

func init() {
	benchCmd.Flags().StringVar(&benchDataset, "dataset", "", "dataset file to replay (required)")
	benchCmd.Flags().Float64Var(&benchRate, "rate", 0, "cap replay throughput in edges/sec (0 = unlimited)")
	benchCmd.Flags().StringSliceVar(&benchCompareExact, "compare-exact", nil, "source:destination:tb:te samples to cross-check against the ground-truth engine")
	_ = benchCmd.MarkFlagRequired("dataset")
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Replay a dataset through the sketch and report accuracy/space figures",
	Long: `bench replays --dataset through a freshly built matrix and, concurrently,
through an exact reference engine, then reports the sketch's current
overflow count and average chain length. Pass --compare-exact with one
or more source:destination:tb:te samples to also report how many
samples were compared and how many were false positives and false
negatives, the sketch's figure of merit.`,
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	edges, stats, err := loadDataset(benchDataset)
	if err != nil {
		return err
	}

	m, err := sketch.NewMatrixWithDim(flagDim, sketch.WithChainWindow(flagChainWindow))
	if err != nil {
		return fmt.Errorf("geministore: build matrix: %w", err)
	}

	var limiter *rate.Limiter
	if benchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(benchRate), 1)
	}

	samples, err := parseSamples(benchCompareExact)
	if err != nil {
		return err
	}

	report, err := bench.Replay(context.Background(), m, edges, bench.Options{
		RateLimit: limiter,
		Samples:   samples,
	})
	if err != nil {
		return err
	}

	logger.Infow("bench complete",
		"dataset", benchDataset,
		"records_skipped", stats.Skipped,
		"edges_replayed", report.EdgesReplayed,
		"overflows", report.FinalOverflows,
		"avg_chain_length", report.FinalAvgChainLen,
		"occupied_buckets", report.FinalOccupiedCount,
		"samples_compared", report.SamplesCompared,
		"false_positives", report.FalsePositives,
		"false_negatives", report.FalseNegatives,
	)
	return nil
}

func parseSamples(raw []string) ([]bench.Sample, error) {
	samples := make([]bench.Sample, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) != 4 {
			return nil, fmt.Errorf("geministore: malformed --compare-exact sample %q, want source:destination:tb:te", r)
		}
		s, d, err := parseVIDPair(parts[0], parts[1])
		if err != nil {
			return nil, err
		}
		tb, err := parseVID(parts[2])
		if err != nil {
			return nil, err
		}
		te, err := parseVID(parts[3])
		if err != nil {
			return nil, err
		}
		samples = append(samples, bench.Sample{
			Source: s, Destination: d,
			WindowBegin: sketch.Time(tb), WindowEnd: sketch.Time(te),
		})
	}
	return samples, nil
}
