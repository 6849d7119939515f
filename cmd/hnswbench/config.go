package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nearbyte/hnsw/hnsw"
)

// runConfig is the bench-run configuration file shape, e.g.:
//
//	dataset: ./data/sift_base.fvecs
//	m: 16
//	ef_construction: 200
//	ef_search: [50, 100, 200]
//	metric: euclidean
//	store: file
//	store_path: ./index.json
type runConfig struct {
	Dataset        string `yaml:"dataset"`
	M              int    `yaml:"m"`
	EfConstruction int    `yaml:"ef_construction"`
	EfSearch       []int  `yaml:"ef_search"`
	Metric         string `yaml:"metric"`
	Store          string `yaml:"store"`
	StorePath      string `yaml:"store_path"`
}

func loadRunConfig(path string) (runConfig, error) {
	cfg := runConfig{
		M:              hnsw.DefaultConfig().M,
		EfConstruction: hnsw.DefaultConfig().EfConstruction,
		EfSearch:       []int{hnsw.DefaultConfig().EfSearch},
		Metric:         hnsw.MetricCosine.String(),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
