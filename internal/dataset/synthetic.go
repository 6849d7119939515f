package dataset

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// GenerateRandomVectors produces count vectors of dim dimensions, each
// coordinate drawn uniformly from rng. Generalizes the teacher's
// benchmarks/insert_test.go helper (generateRandomVectorsWithRNG) to accept
// an injected *rand.Rand for reproducibility across runs.
func GenerateRandomVectors(count, dim int, rng *rand.Rand) [][]float32 {
	vectors := make([][]float32, count)
	for i := range vectors {
		vectors[i] = make([]float32, dim)
		for j := range vectors[i] {
			vectors[i][j] = rng.Float32()
		}
	}
	return vectors
}

// GenerateNormalizedVectors is like GenerateRandomVectors but scales every
// vector to unit length, suitable for exercising the cosine metric without
// degenerate zero vectors.
func GenerateNormalizedVectors(count, dim int, rng *rand.Rand) [][]float32 {
	vectors := GenerateRandomVectors(count, dim, rng)
	for _, v := range vectors {
		normalize(v)
	}
	return vectors
}

func normalize(v []float32) {
	var sumSq float32
	for _, x := range v {
		sumSq += x * x
	}
	if sumSq == 0 {
		v[0] = 1
		sumSq = 1
	}
	norm := math32.Sqrt(sumSq)
	for i := range v {
		v[i] /= norm
	}
}
