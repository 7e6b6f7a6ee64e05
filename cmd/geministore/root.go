package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDim         int
	flagChainWindow int
	flagVerbose     bool

	logger *zap.SugaredLogger
)

func init() {
	rootCmd.PersistentFlags().IntVar(&flagDim, "dim", 9973, "bucket matrix dimension N")
	rootCmd.PersistentFlags().IntVar(&flagChainWindow, "chain-window", 1, "chain-hashing compensation window g")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug-level logging")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(benchCmd)
}

var rootCmd = &cobra.Command{
	Use:   "geministore",
	Short: "Inspect and benchmark a bounded temporal-graph sketch",
	Long: `geministore drives a sketch.Matrix from the command line.

It streams an edge dataset into a live matrix (ingest), answers ad-hoc
edge/vertex/subgraph/reachability queries against one built on the fly
from a dataset (query), and replays a dataset through the sketch and an
exact reference engine side by side to report the sketch's accuracy
(bench).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewDevelopmentConfig()
		if !flagVerbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
		z, err := cfg.Build()
		if err != nil {
			return err
		}
		logger = z.Sugar()
		return nil
	},
}

// expirationThresholdFlag holds an expiration threshold for the CLI. No
// command-line flag is bound to it and no subcommand reads it.
var expirationThresholdFlag time.Duration
