package report

import "fmt"

// Diff is one named metric's values across two reports and their delta.
type Diff struct {
	Metric string  `json:"metric"`
	Before float64 `json:"before"`
	After  float64 `json:"after"`
	DeltaP float64 `json:"delta_pct"`
}

// Compare diffs before and after across build time, latency percentiles,
// and recall at every k present in both reports — the "git-checkout-driven
// comparison" of spec.md §1, applied to two already-produced reports
// (one per checkout) rather than orchestrating the checkouts itself.
func Compare(before, after Report) []Diff {
	diffs := []Diff{
		diff("build_time_ms", before.BuildTimeMS, after.BuildTimeMS),
		diff("latency_p50_ms", before.LatencyP50MS, after.LatencyP50MS),
		diff("latency_p90_ms", before.LatencyP90MS, after.LatencyP90MS),
		diff("latency_p99_ms", before.LatencyP99MS, after.LatencyP99MS),
	}

	for k, b := range before.RecallAtK {
		if a, ok := after.RecallAtK[k]; ok {
			diffs = append(diffs, diff(fmt.Sprintf("recall_at_%d", k), b, a))
		}
	}
	return diffs
}

func diff(metric string, before, after float64) Diff {
	var deltaP float64
	if before != 0 {
		deltaP = (after - before) / before * 100
	}
	return Diff{Metric: metric, Before: before, After: after, DeltaP: deltaP}
}
