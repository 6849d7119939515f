package hnsw

import (
	"errors"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/structs"
)

// Graph is an in-memory HNSW index: a layered proximity graph over dense
// float32 vectors supporting sub-linear approximate k-nearest-neighbor
// queries. It owns every inserted node; nodes are never removed or mutated
// externally once added (spec.md §3's lifecycle rule) — the only way to
// clear it is BuildIndex, which rebuilds from scratch.
type Graph struct {
	// nodes is the arena: every node keyed by its caller-chosen id.
	nodes map[int]*structs.Node

	m              int
	efConstruction int
	efSearch       int
	metric         Metric
	score          scoreFunc

	// dimension is 0 until the first point fixes it.
	dimension int

	hasEntry     bool
	entryPointID int
	levelMax     int

	sampler *structs.LevelSampler

	heapPool *structs.HeapPoolManager

	log *zap.Logger

	mutex sync.RWMutex
}

// Config holds the parameters used to construct a Graph.
type Config struct {
	// M is the max neighbors per node per layer. Must be positive.
	M int

	// EfConstruction is the beam width used during insertion. Must be positive.
	EfConstruction int

	// EfSearch is the default beam width used during query. Must be positive.
	EfSearch int

	// Dimension fixes the vector length up front. Zero leaves it unset;
	// it is then fixed by the first inserted vector.
	Dimension int

	// Metric selects the similarity function. Zero value is MetricCosine.
	Metric Metric

	// Rand returns a value uniformly distributed in [0, 1), used by the
	// level sampler. Defaults to math/rand/v2's global source. Tests may
	// inject a fixed sequence for determinism (spec.md §4.D).
	Rand func() float64

	// Logger receives structured diagnostics (graph creation, entry-point
	// promotion, prune events, BuildIndex completion). Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// DefaultConfig returns the recommended defaults: M=16, EfConstruction=200,
// Dimension unset, Metric=cosine, EfSearch=50.
func DefaultConfig() Config {
	return Config{
		M:              16,
		EfConstruction: 200,
		EfSearch:       50,
		Dimension:      0,
		Metric:         MetricCosine,
		Rand:           rand.Float64,
		Logger:         zap.NewNop(),
	}
}

// New creates a Graph from cfg, validating every parameter up front.
func New(cfg Config) (*Graph, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	score, err := scoreFuncFor(cfg.Metric)
	if err != nil {
		return nil, err
	}

	randFunc := cfg.Rand
	if randFunc == nil {
		randFunc = rand.Float64
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Graph{
		nodes:          make(map[int]*structs.Node),
		m:              cfg.M,
		efConstruction: cfg.EfConstruction,
		efSearch:       cfg.EfSearch,
		metric:         cfg.Metric,
		score:          score,
		dimension:      cfg.Dimension,
		levelMax:       -1,
		sampler:        structs.NewLevelSampler(cfg.M, randFunc),
		heapPool:       structs.NewHeapPoolManager(),
		log:            logger,
	}

	logger.Info("hnsw graph created",
		zap.Int("m", cfg.M),
		zap.Int("ef_construction", cfg.EfConstruction),
		zap.Int("ef_search", cfg.EfSearch),
		zap.String("metric", cfg.Metric.String()),
	)

	return g, nil
}

func validateConfig(cfg Config) error {
	if cfg.M <= 0 {
		return errors.New("hnsw: M must be positive")
	}
	if cfg.EfConstruction <= 0 {
		return errors.New("hnsw: EfConstruction must be positive")
	}
	if cfg.EfSearch <= 0 {
		return errors.New("hnsw: EfSearch must be positive")
	}
	if cfg.Dimension < 0 {
		return errors.New("hnsw: Dimension must not be negative")
	}
	return nil
}

// Len returns the number of points currently in the graph.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// Dimension returns the graph's fixed vector dimension, or 0 if no point
// has been inserted yet.
func (g *Graph) Dimension() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.dimension
}
