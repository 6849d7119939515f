package dataset

// ScoreFunc computes a similarity score between two vectors of equal length
// (higher is more similar), matching hnsw's internal score function shape.
type ScoreFunc func(a, b []float32) float32

// BruteForceKNN scans every vector in corpus and returns the ids of the k
// highest-scoring entries against query, sorted by descending score. This
// is the harness's ground truth for recall@k (spec.md §6) — exact search is
// explicitly excluded from the core itself (spec.md §1 Non-goals).
func BruteForceKNN(query []float32, corpus map[int][]float32, k int, score ScoreFunc) []int {
	type scored struct {
		id    int
		score float32
	}
	all := make([]scored, 0, len(corpus))
	for id, v := range corpus {
		all = append(all, scored{id: id, score: score(query, v)})
	}

	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].score > all[j-1].score; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}

	if k > len(all) {
		k = len(all)
	}
	ids := make([]int, k)
	for i := 0; i < k; i++ {
		ids[i] = all[i].id
	}
	return ids
}
