package structs

import "math"

// truncationThreshold is the point below which the level-selection
// distribution is no longer worth keeping a row for.
const truncationThreshold = 1e-9

// LevelSampler draws a node's top layer from the exponential-decay
// distribution the HNSW paper uses to keep the hierarchy's expected height
// logarithmic in the number of points. Probs and Rand are exported so tests
// can substitute a fixed distribution and a fixed draw sequence (spec.md
// §4.D's determinism seam).
type LevelSampler struct {
	// Probs[l] is the probability mass assigned to level l, descending and
	// truncated once a row would fall below truncationThreshold.
	Probs []float64

	// Rand returns a value uniformly distributed in [0, 1), following the
	// teacher's RandFunc seam. It must be set; hnsw.New passes math/rand/v2's
	// global source when Config.Rand is nil.
	Rand func() float64
}

// NewLevelSampler precomputes the level distribution for the given M:
// mL = 1/ln(M), probs[l] = exp(-l/mL) * (1 - exp(-1/mL)).
func NewLevelSampler(m int, rand func() float64) *LevelSampler {
	mL := 1 / math.Log(float64(m))
	decay := 1 - math.Exp(-1/mL)

	var probs []float64
	for l := 0; ; l++ {
		p := math.Exp(-float64(l)/mL) * decay
		if p < truncationThreshold && l > 0 {
			break
		}
		probs = append(probs, p)
	}

	return &LevelSampler{Probs: probs, Rand: rand}
}

// SelectLevel draws a level: sample r in [0,1) uniformly and return the
// smallest l such that r falls under the cumulative mass of Probs[0..l], or
// the last level if r exceeds the total mass (guards against floating-point
// shortfall in the truncated tail).
func (s *LevelSampler) SelectLevel() int {
	r := s.Rand()
	var cum float64
	for l, p := range s.Probs {
		cum += p
		if r < cum {
			return l
		}
	}
	return len(s.Probs) - 1
}
