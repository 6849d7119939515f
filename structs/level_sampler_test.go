package structs

import "testing"

// TestSelectLevelOverriddenDistribution matches the worked example in
// spec.md §8 scenario 2: probs overridden to [0.5, 0.3, 0.2] with draws
// {0.2, 0.6, 0.95} must select levels [0, 1, 2].
func TestSelectLevelOverriddenDistribution(t *testing.T) {
	draws := []float64{0.2, 0.6, 0.95}
	i := 0
	s := &LevelSampler{
		Probs: []float64{0.5, 0.3, 0.2},
		Rand: func() float64 {
			r := draws[i]
			i++
			return r
		},
	}

	want := []int{0, 1, 2}
	for _, w := range want {
		if got := s.SelectLevel(); got != w {
			t.Errorf("SelectLevel() = %d, want %d", got, w)
		}
	}
}

func TestNewLevelSamplerTruncatesTail(t *testing.T) {
	s := NewLevelSampler(16, func() float64 { return 0 })

	if len(s.Probs) == 0 {
		t.Fatal("expected a non-empty probability table")
	}
	for i, p := range s.Probs {
		if i > 0 && p >= s.Probs[i-1] {
			t.Errorf("Probs must be strictly descending: Probs[%d]=%v >= Probs[%d]=%v", i, p, i-1, s.Probs[i-1])
		}
		if p < 0 {
			t.Errorf("Probs[%d] = %v, want >= 0", i, p)
		}
	}
	// Each row is 1/M of the one before it; the table keeps the last row at
	// or above the threshold and stops before the first row below it.
	last := s.Probs[len(s.Probs)-1]
	if len(s.Probs) > 1 && (last < truncationThreshold || last/16 >= truncationThreshold) {
		t.Errorf("last row %v should be the final row at or above the truncation threshold %v", last, truncationThreshold)
	}
}

func TestSelectLevelWithZeroDraw(t *testing.T) {
	s := NewLevelSampler(16, func() float64 { return 0 })
	if got := s.SelectLevel(); got != 0 {
		t.Errorf("SelectLevel() with r=0 = %d, want 0", got)
	}
}
