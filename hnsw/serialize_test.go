package hnsw

import (
	"encoding/json"
	"testing"
)

// TestSnapshotRoundTripScenario6 encodes spec.md §8 scenario 6: restoring a
// snapshot of the scenario-1 graph must answer the same query identically.
func TestSnapshotRoundTripScenario6(t *testing.T) {
	g := buildScenario1Graph(t)

	snap, err := g.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	encoded, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	restored, err := Restore(&decoded)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	query := []float32{6, 7, 8, 9, 10}
	want, err := g.SearchKNN(query, 2)
	if err != nil {
		t.Fatalf("SearchKNN() on original error = %v", err)
	}
	got, err := restored.SearchKNN(query, 2)
	if err != nil {
		t.Fatalf("SearchKNN() on restored error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len(got) = %d, len(want) = %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Errorf("result[%d].ID = %d, want %d", i, got[i].ID, want[i].ID)
		}
		if got[i].Score != want[i].Score {
			t.Errorf("result[%d].Score = %v, want %v", i, got[i].Score, want[i].Score)
		}
	}
}

func TestSnapshotPreservesTopology(t *testing.T) {
	g := buildScenario1Graph(t)
	snap, err := g.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if restored.Len() != g.Len() {
		t.Errorf("restored.Len() = %d, want %d", restored.Len(), g.Len())
	}
	if restored.levelMax != g.levelMax || restored.entryPointID != g.entryPointID {
		t.Errorf("restored levelMax/entryPointID = %d/%d, want %d/%d",
			restored.levelMax, restored.entryPointID, g.levelMax, g.entryPointID)
	}
	for id, n := range g.nodes {
		rn, ok := restored.nodes[id]
		if !ok {
			t.Fatalf("restored graph missing node %d", id)
		}
		if len(rn.Neighbors) != len(n.Neighbors) {
			t.Errorf("node %d: restored has %d neighbor layers, want %d", id, len(rn.Neighbors), len(n.Neighbors))
			continue
		}
		for lvl := range n.Neighbors {
			if len(rn.Neighbors[lvl]) != len(n.Neighbors[lvl]) {
				t.Errorf("node %d level %d: restored has %d neighbors, want %d",
					id, lvl, len(rn.Neighbors[lvl]), len(n.Neighbors[lvl]))
			}
		}
	}
}

// TestRestoreDefaultsMissingFields encodes the backward-compatibility seam of
// spec.md §4.F: a snapshot missing EfSearch/Metric/Dimension falls back to
// constructor defaults instead of failing.
func TestRestoreDefaultsMissingFields(t *testing.T) {
	snap := &Snapshot{
		M:              16,
		EfConstruction: 200,
		LevelMax:       -1,
		EntryPointID:   0,
		HasEntry:       false,
		Nodes:          nil,
	}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.metric != MetricCosine {
		t.Errorf("metric = %v, want MetricCosine default", restored.metric)
	}
	if restored.efSearch != DefaultConfig().EfSearch {
		t.Errorf("efSearch = %d, want default %d", restored.efSearch, DefaultConfig().EfSearch)
	}
	if restored.dimension != 0 {
		t.Errorf("dimension = %d, want 0", restored.dimension)
	}
}

func TestRestoreRejectsInvalidMetricName(t *testing.T) {
	badMetric := "manhattan"
	snap := &Snapshot{
		M:              16,
		EfConstruction: 200,
		Metric:         &badMetric,
		LevelMax:       -1,
	}
	if _, err := Restore(snap); err == nil {
		t.Error("expected an error for an unrecognized metric name, got nil")
	}
}
