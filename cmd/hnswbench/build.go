package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/hnsw"
	"github.com/nearbyte/hnsw/internal/dataset"
	"github.com/nearbyte/hnsw/internal/store"
)

func newBuildCmd(logger func() *zap.Logger) *cobra.Command {
	var configPath string
	var storeKind string
	var storePath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an index from an fvecs dataset and report build time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if storeKind != "" {
				cfg.Store = storeKind
			}
			if storePath != "" {
				cfg.StorePath = storePath
			}

			log := logger()
			defer log.Sync()

			metric, err := hnsw.ParseMetric(cfg.Metric)
			if err != nil {
				return err
			}

			f, err := os.Open(cfg.Dataset)
			if err != nil {
				return fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()

			vectors, err := dataset.ReadFvecs(f)
			if err != nil {
				return fmt.Errorf("read fvecs: %w", err)
			}

			g, err := hnsw.New(hnsw.Config{
				M:              cfg.M,
				EfConstruction: cfg.EfConstruction,
				EfSearch:       hnsw.DefaultConfig().EfSearch,
				Metric:         metric,
				Logger:         log,
			})
			if err != nil {
				return err
			}

			points := make([]hnsw.Point, len(vectors))
			for i, v := range vectors {
				points[i] = hnsw.Point{ID: i, Vector: v}
			}

			start := time.Now()
			if err := g.BuildIndex(points, hnsw.BuildOptions{
				ProgressInterval: 1000,
				OnProgress: func(current, total int) {
					fmt.Fprintf(cmd.OutOrStdout(), "\rindexed %d/%d", current, total)
				},
			}); err != nil {
				return fmt.Errorf("build index: %w", err)
			}
			elapsed := time.Since(start)
			fmt.Fprintf(cmd.OutOrStdout(), "\nbuilt %d vectors in %s (%.0f vectors/sec)\n",
				len(points), elapsed.Round(time.Millisecond), float64(len(points))/elapsed.Seconds())

			if cfg.Store == "" {
				return nil
			}
			return persistIndex(g, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "hnswbench.yaml", "path to the bench-run config file")
	cmd.Flags().StringVar(&storeKind, "store", "", "override config: leveldb|file")
	cmd.Flags().StringVar(&storePath, "store-path", "", "override config: backing store path")
	return cmd
}

func persistIndex(g *hnsw.Graph, cfg runConfig) error {
	snap, err := g.Snapshot()
	if err != nil {
		return err
	}
	data, err := snapshotToJSON(snap)
	if err != nil {
		return err
	}

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.SaveIndex(data)
}

func openStore(cfg runConfig) (store.Store, error) {
	switch cfg.Store {
	case "leveldb":
		return store.OpenLevelDBStore(cfg.StorePath)
	case "file", "":
		return store.NewFileStore(cfg.StorePath), nil
	default:
		return nil, fmt.Errorf("hnswbench: unknown store kind %q", cfg.Store)
	}
}
