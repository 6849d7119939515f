package hnsw

import "errors"

// Sentinel errors surfaced by the core, per spec.md §7. Internal lookup
// failures (a neighbor id absent from the node arena) are not in this list:
// they indicate graph corruption and are unrecoverable, so they panic
// instead of returning an error, matching the teacher's own use of panic
// for invariant violations on bad input.
var (
	// ErrInvalidMetric is returned by New when Config.Metric names an
	// unsupported similarity function.
	ErrInvalidMetric = errors.New("hnsw: invalid metric")

	// ErrDimensionMismatch is returned when a vector's length disagrees
	// with the graph's fixed dimension.
	ErrDimensionMismatch = errors.New("hnsw: dimension mismatch")

	// ErrDuplicateID is returned by AddPoint when id is already present.
	ErrDuplicateID = errors.New("hnsw: duplicate id")

	// ErrZeroVector is returned by AddPoint under MetricCosine for a
	// zero-magnitude vector, whose cosine similarity is undefined. This
	// resolves the ambiguity spec.md §9 flags rather than letting the
	// score silently come out NaN.
	ErrZeroVector = errors.New("hnsw: zero vector is undefined under cosine metric")
)
