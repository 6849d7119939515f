package hnsw

import (
	"testing"

	"github.com/nearbyte/hnsw/structs"
)

func buildScenario1Graph(t *testing.T) *Graph {
	t.Helper()
	g, err := New(Config{M: 16, EfConstruction: 200, EfSearch: 200, Metric: MetricCosine})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.sampler = &structs.LevelSampler{Probs: []float64{1}, Rand: fixedRand([]float64{0})}

	points := []Point{
		{ID: 1, Vector: []float32{1, 2, 3, 4, 5}},
		{ID: 2, Vector: []float32{2, 3, 4, 5, 6}},
		{ID: 3, Vector: []float32{3, 4, 5, 6, 7}},
		{ID: 4, Vector: []float32{4, 5, 6, 7, 8}},
		{ID: 5, Vector: []float32{5, 6, 7, 8, 9}},
	}
	for _, p := range points {
		if err := g.AddPoint(p.ID, p.Vector); err != nil {
			t.Fatalf("AddPoint(%d) error = %v", p.ID, err)
		}
	}
	return g
}

func TestSearchKNNEmptyGraph(t *testing.T) {
	g, _ := New(DefaultConfig())
	results, err := g.SearchKNN([]float32{1, 2, 3}, 3)
	if err != nil {
		t.Fatalf("SearchKNN() error = %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestSearchKNNNonPositiveK(t *testing.T) {
	g := buildScenario1Graph(t)
	results, err := g.SearchKNN([]float32{1, 2, 3, 4, 5}, 0)
	if err != nil {
		t.Fatalf("SearchKNN() error = %v", err)
	}
	if results != nil {
		t.Errorf("results = %v, want nil", results)
	}
}

func TestSearchKNNDimensionMismatch(t *testing.T) {
	g := buildScenario1Graph(t)
	if _, err := g.SearchKNN([]float32{1, 2}, 3); err != ErrDimensionMismatch {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestSearchKNNResultsAreDistinctAndSortedDescending(t *testing.T) {
	g := buildScenario1Graph(t)
	results, err := g.SearchKNN([]float32{6, 7, 8, 9, 10}, 5)
	if err != nil {
		t.Fatalf("SearchKNN() error = %v", err)
	}
	if len(results) > 5 {
		t.Fatalf("len(results) = %d, want <= 5", len(results))
	}

	seen := make(map[int]bool, len(results))
	for i, r := range results {
		if seen[r.ID] {
			t.Errorf("duplicate id %d in results", r.ID)
		}
		seen[r.ID] = true
		if i > 0 && results[i-1].Score < r.Score {
			t.Errorf("results not sorted descending: %v then %v", results[i-1], r)
		}
	}
}

func TestSearchKNNTruncatesToK(t *testing.T) {
	g := buildScenario1Graph(t)
	results, err := g.SearchKNN([]float32{3, 4, 5, 6, 7}, 2)
	if err != nil {
		t.Fatalf("SearchKNN() error = %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestSearchKNNSingleNodeGraph(t *testing.T) {
	g, _ := New(DefaultConfig())
	if err := g.AddPoint(1, []float32{1, 2, 3}); err != nil {
		t.Fatalf("AddPoint() error = %v", err)
	}
	results, err := g.SearchKNN([]float32{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("SearchKNN() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != 1 {
		t.Errorf("results = %v, want single result with id 1", results)
	}
}

// TestSearchKNNMonotoneRecall encodes the informal recall property of
// spec.md §8: widening efSearch never shrinks the overlap with the
// brute-force top-k on a graph large enough for the beam to matter.
func TestSearchKNNMonotoneRecall(t *testing.T) {
	g, err := New(Config{M: 8, EfConstruction: 64, EfSearch: 64, Metric: MetricEuclidean})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	draws := make([]float64, 200)
	for i := range draws {
		draws[i] = 0.01
	}
	g.sampler = &structs.LevelSampler{Probs: []float64{0.9, 0.1}, Rand: fixedRand(draws)}

	for i := 0; i < 200; i++ {
		v := []float32{float32(i % 7), float32(i % 13), float32(i % 3)}
		if err := g.AddPoint(i, v); err != nil {
			t.Fatalf("AddPoint(%d) error = %v", i, err)
		}
	}

	query := []float32{3, 5, 1}
	small, err := g.SearchKNN(query, 10, WithEfSearch(1))
	if err != nil {
		t.Fatalf("SearchKNN(ef=1) error = %v", err)
	}
	large, err := g.SearchKNN(query, 10, WithEfSearch(100))
	if err != nil {
		t.Fatalf("SearchKNN(ef=100) error = %v", err)
	}

	bruteIDs := bruteForceTopK(g, query, 10)
	overlapSmall := overlapCount(small, bruteIDs)
	overlapLarge := overlapCount(large, bruteIDs)

	if overlapLarge < overlapSmall {
		t.Errorf("overlap with larger efSearch (%d) is less than with smaller efSearch (%d)", overlapLarge, overlapSmall)
	}
}

func bruteForceTopK(g *Graph, query []float32, k int) map[int]bool {
	type scored struct {
		id    int
		score float32
	}
	all := make([]scored, 0, len(g.nodes))
	for id, n := range g.nodes {
		all = append(all, scored{id: id, score: g.score(query, n.Vector)})
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].score > all[j-1].score; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	if k > len(all) {
		k = len(all)
	}
	out := make(map[int]bool, k)
	for i := 0; i < k; i++ {
		out[all[i].id] = true
	}
	return out
}

func overlapCount(results []Result, want map[int]bool) int {
	n := 0
	for _, r := range results {
		if want[r.ID] {
			n++
		}
	}
	return n
}
