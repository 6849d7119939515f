package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "hnswbench",
		Short: "Build, query, and compare hnsw indexes over fvecs datasets",
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level logging")

	logger := func() *zap.Logger {
		cfg := zap.NewDevelopmentConfig()
		if !verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		}
		log, err := cfg.Build()
		if err != nil {
			return zap.NewNop()
		}
		return log
	}

	root.AddCommand(newBuildCmd(logger))
	root.AddCommand(newBenchCmd(logger))
	root.AddCommand(newCompareCmd(logger))
	return root
}
