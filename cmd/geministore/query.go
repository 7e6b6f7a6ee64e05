package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	sketch "github.com/kestrel-data/geministore"
	"github.com/kestrel-data/geministore/reach"
)

var (
	queryDataset string
	queryBegin   int64
	queryEnd     int64
)

func init() {
	queryCmd.PersistentFlags().StringVar(&queryDataset, "dataset", "", "dataset file to ingest before querying (required)")
	queryCmd.PersistentFlags().Int64Var(&queryBegin, "tb", 0, "window begin (inclusive)")
	queryCmd.PersistentFlags().Int64Var(&queryEnd, "te", 0, "window end (inclusive)")
	_ = queryCmd.MarkPersistentFlagRequired("dataset")

	queryCmd.AddCommand(queryEdgeCmd, queryVertexCmd, querySubgraphCmd, queryReachCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run ad-hoc queries against a freshly ingested matrix",
	Long: `query builds a matrix from --dataset per --dim/--chain-window and answers
one ad-hoc query against it. Each invocation re-ingests the dataset from
scratch; the core keeps no on-disk state between runs.`,
}

var queryEdgeCmd = &cobra.Command{
	Use:   "edge <source> <destination>",
	Short: "Report whether an edge exists within [--tb, --te]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, d, err := parseVIDPair(args[0], args[1])
		if err != nil {
			return err
		}
		m, _, err := buildMatrix(queryDataset)
		if err != nil {
			return err
		}
		fmt.Println(m.QueryEdge(s, d, sketch.Time(queryBegin), sketch.Time(queryEnd)))
		return nil
	},
}

var queryVertexCmd = &cobra.Command{
	Use:   "vertex <id>",
	Short: "Report a vertex's presence, out-weight, and out-degree within [--tb, --te]",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseVID(args[0])
		if err != nil {
			return err
		}
		m, _, err := buildMatrix(queryDataset)
		if err != nil {
			return err
		}
		tb, te := sketch.Time(queryBegin), sketch.Time(queryEnd)
		fmt.Printf("present=%v out_weight=%d out_degree=%d\n",
			m.QueryVertexPresence(v, tb, te),
			m.QueryVertexOutWeight(v, tb, te),
			m.QueryVertexOutDegree(v, tb, te),
		)
		return nil
	},
}

var querySubgraphCmd = &cobra.Command{
	Use:   "subgraph <s1:d1> [s2:d2 ...]",
	Short: "Match a multiset of (source:destination) pairs within [--tb, --te]",
	Long: `subgraph reports the summed weight of the first in-window edge
matching each requested pair, or -1 if any pair has no match.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pairs := make([]sketch.SubgraphPair, 0, len(args))
		for _, a := range args {
			parts := strings.SplitN(a, ":", 2)
			if len(parts) != 2 {
				return fmt.Errorf("geministore: malformed pair %q, want source:destination", a)
			}
			s, d, err := parseVIDPair(parts[0], parts[1])
			if err != nil {
				return err
			}
			pairs = append(pairs, sketch.SubgraphPair{Source: s, Destination: d})
		}
		m, _, err := buildMatrix(queryDataset)
		if err != nil {
			return err
		}
		fmt.Println(m.QuerySubgraph(pairs, sketch.Time(queryBegin), sketch.Time(queryEnd)))
		return nil
	},
}

var queryStepBudget int

var queryReachCmd = &cobra.Command{
	Use:   "reach <source> <target>",
	Short: "Report whether target is reachable from source within [--tb, --te]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, t, err := parseVIDPair(args[0], args[1])
		if err != nil {
			return err
		}
		m, _, err := buildMatrix(queryDataset)
		if err != nil {
			return err
		}
		var opts []reach.Option
		if queryStepBudget > 0 {
			opts = append(opts, reach.WithStepBudget(queryStepBudget))
		}
		ok, err := reach.Query(m, s, t, sketch.Time(queryBegin), sketch.Time(queryEnd), opts...)
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	queryReachCmd.Flags().IntVar(&queryStepBudget, "step-budget", 0, "maximum BFS steps (0 = unbounded)")
}

func parseVID(s string) (sketch.VID, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("geministore: invalid vertex id %q: %w", s, err)
	}
	return sketch.VID(n), nil
}

func parseVIDPair(a, b string) (sketch.VID, sketch.VID, error) {
	s, err := parseVID(a)
	if err != nil {
		return 0, 0, err
	}
	d, err := parseVID(b)
	if err != nil {
		return 0, 0, err
	}
	return s, d, nil
}
