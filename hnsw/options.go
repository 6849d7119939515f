package hnsw

// Point is a single (id, vector) insertion for BuildIndex.
type Point struct {
	ID     int
	Vector []float32
}

// Result is a single search hit: an id and its score against the query
// (higher is closer), per spec.md §6.
type Result struct {
	ID    int
	Score float32
}

// ProgressFunc is invoked by BuildIndex after every ProgressInterval
// insertions and once more at completion, with current/total counts. It is
// the cooperative yielding hook of spec.md §5: BuildIndex never suspends
// mid-insertion, only between insertions.
type ProgressFunc func(current, total int)

// BuildOptions configures BuildIndex.
type BuildOptions struct {
	// OnProgress, if set, is called after every ProgressInterval
	// insertions and once at completion.
	OnProgress ProgressFunc

	// ProgressInterval is the insertion count between OnProgress calls.
	// Defaults to 1000 if zero or negative.
	ProgressInterval int
}

// SearchOption customizes a single SearchKNN call.
type SearchOption func(*searchConfig)

type searchConfig struct {
	efSearch int
}

// WithEfSearch overrides the graph's default EfSearch for one query, the
// `efSearch_override` of spec.md §4.E.5.
func WithEfSearch(ef int) SearchOption {
	return func(c *searchConfig) {
		c.efSearch = ef
	}
}
