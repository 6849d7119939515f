package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/hnsw"
	"github.com/nearbyte/hnsw/internal/dataset"
	"github.com/nearbyte/hnsw/internal/report"
)

func newBenchCmd(logger func() *zap.Logger) *cobra.Command {
	var configPath string
	var queryPath string
	var groundTruthPath string
	var k int
	var outPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Load or build an index and report query latency and recall@k",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger()
			defer log.Sync()

			g, err := loadOrBuildIndex(cfg, log)
			if err != nil {
				return err
			}

			qf, err := os.Open(queryPath)
			if err != nil {
				return fmt.Errorf("open queries: %w", err)
			}
			defer qf.Close()
			queries, err := dataset.ReadFvecs(qf)
			if err != nil {
				return fmt.Errorf("read queries: %w", err)
			}

			var groundTruth [][]int32
			if groundTruthPath != "" {
				gf, err := os.Open(groundTruthPath)
				if err != nil {
					return fmt.Errorf("open ground truth: %w", err)
				}
				defer gf.Close()
				groundTruth, err = dataset.ReadIvecs(gf)
				if err != nil {
					return fmt.Errorf("read ground truth: %w", err)
				}
			}

			rep := report.Report{
				NumVectors: g.Len(),
				Dimension:  g.Dimension(),
			}

			for _, ef := range cfg.EfSearch {
				samples := make([]time.Duration, 0, len(queries))
				recallSum := 0.0
				for qi, q := range queries {
					start := time.Now()
					results, err := g.SearchKNN(q, k, hnsw.WithEfSearch(ef))
					if err != nil {
						return fmt.Errorf("search query %d: %w", qi, err)
					}
					samples = append(samples, time.Since(start))

					if qi < len(groundTruth) {
						got := make([]int, len(results))
						for i, r := range results {
							got[i] = r.ID
						}
						want := make([]int, len(groundTruth[qi]))
						for i, id := range groundTruth[qi] {
							want[i] = int(id)
						}
						recallSum += report.Recall(got, want)
					}
				}

				p50, p90, p99 := report.LatencyPercentiles(samples)
				rep.LatencyP50MS, rep.LatencyP90MS, rep.LatencyP99MS = p50, p90, p99
				rep.EfSearchUsed = append(rep.EfSearchUsed, ef)
				if len(groundTruth) > 0 {
					if rep.RecallAtK == nil {
						rep.RecallAtK = make(map[int]float64)
					}
					rep.RecallAtK[k] = recallSum / float64(len(queries))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "efSearch=%d p50=%.3fms p90=%.3fms p99=%.3fms\n", ef, p50, p90, p99)
			}

			if outPath == "" {
				return nil
			}
			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return err
			}
			return os.WriteFile(outPath, data, 0o644)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "hnswbench.yaml", "path to the bench-run config file")
	cmd.Flags().StringVar(&queryPath, "queries", "", "path to an fvecs query file")
	cmd.Flags().StringVar(&groundTruthPath, "ground-truth", "", "path to an ivecs ground-truth file")
	cmd.Flags().IntVar(&k, "k", 10, "number of neighbors to request per query")
	cmd.Flags().StringVar(&outPath, "out", "", "write the JSON report to this path")
	return cmd
}

func loadOrBuildIndex(cfg runConfig, log *zap.Logger) (*hnsw.Graph, error) {
	if cfg.Store != "" {
		s, err := openStore(cfg)
		if err == nil {
			defer s.Close()
			if data, err := s.LoadIndex(); err == nil && data != nil {
				return snapshotFromJSON(data)
			}
		}
	}

	metric, err := hnsw.ParseMetric(cfg.Metric)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cfg.Dataset)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	vectors, err := dataset.ReadFvecs(f)
	if err != nil {
		return nil, fmt.Errorf("read fvecs: %w", err)
	}

	g, err := hnsw.New(hnsw.Config{
		M:              cfg.M,
		EfConstruction: cfg.EfConstruction,
		EfSearch:       hnsw.DefaultConfig().EfSearch,
		Metric:         metric,
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}

	points := make([]hnsw.Point, len(vectors))
	for i, v := range vectors {
		points[i] = hnsw.Point{ID: i, Vector: v}
	}
	if err := g.BuildIndex(points, hnsw.BuildOptions{}); err != nil {
		return nil, err
	}
	return g, nil
}
