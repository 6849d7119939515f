package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/internal/report"
)

func newCompareCmd(logger func() *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <before.json> <after.json>",
		Short: "Diff two JSON benchmark reports",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := readReport(args[0])
			if err != nil {
				return fmt.Errorf("read before report: %w", err)
			}
			after, err := readReport(args[1])
			if err != nil {
				return fmt.Errorf("read after report: %w", err)
			}

			diffs := report.Compare(before, after)
			for _, d := range diffs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %12.3f -> %12.3f  (%+.1f%%)\n",
					d.Metric, d.Before, d.After, d.DeltaP)
			}
			return nil
		},
	}
	return cmd
}

func readReport(path string) (report.Report, error) {
	var rep report.Report
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, err
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		return rep, err
	}
	return rep, nil
}
