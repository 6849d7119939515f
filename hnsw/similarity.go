package hnsw

import "github.com/chewxy/math32"

// Metric selects which similarity function a Graph uses. It is fixed at
// construction (spec.md §4.A) and dispatched once into a function value
// rather than re-branched on every scoring call, per the Design Notes.
type Metric int

const (
	// MetricCosine scores vectors by cosine similarity: higher for vectors
	// pointing the same direction regardless of magnitude. Undefined (and
	// rejected, see ErrZeroVector) for zero-magnitude vectors.
	MetricCosine Metric = iota
	// MetricEuclidean scores vectors by 1/(1+L2 distance), bounded in (0,1].
	MetricEuclidean
)

// String renders the metric name used in Snapshot.
func (m Metric) String() string {
	switch m {
	case MetricCosine:
		return "cosine"
	case MetricEuclidean:
		return "euclidean"
	default:
		return "unknown"
	}
}

// ParseMetric maps a snapshot's metric name back to a Metric, defaulting to
// MetricCosine for an empty string per the backward-compatibility seam in
// spec.md §4.F.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "", "cosine":
		return MetricCosine, nil
	case "euclidean":
		return MetricEuclidean, nil
	default:
		return 0, ErrInvalidMetric
	}
}

// scoreFunc is higher-is-closer, matching spec.md §4.A: both CosineScore
// and EuclideanScore return larger values for nearer vectors.
type scoreFunc func(a, b []float32) float32

func scoreFuncFor(m Metric) (scoreFunc, error) {
	switch m {
	case MetricCosine:
		return CosineScore, nil
	case MetricEuclidean:
		return EuclideanScore, nil
	default:
		return nil, ErrInvalidMetric
	}
}

// CosineScore returns ⟨a,b⟩ / (‖a‖·‖b‖). The caller must not pass a
// zero-magnitude vector; Graph.AddPoint enforces this under MetricCosine.
func CosineScore(a, b []float32) float32 {
	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	return dot / (math32.Sqrt(normA) * math32.Sqrt(normB))
}

// EuclideanScore returns 1 / (1 + ‖a−b‖₂), bounded in (0, 1].
func EuclideanScore(a, b []float32) float32 {
	var sumSq float32
	for i := range a {
		diff := a[i] - b[i]
		sumSq += diff * diff
	}
	return 1 / (1 + math32.Sqrt(sumSq))
}

// isZeroVector reports whether v has zero magnitude, the one case cosine
// similarity leaves undefined.
func isZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
