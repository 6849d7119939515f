package hnsw

import (
	"sort"

	"github.com/nearbyte/hnsw/structs"
)

// Snapshot is the stable, JSON-serializable capture of a Graph's state
// (spec.md §4.F). EfSearch, Metric, and Dimension are pointers so Restore
// can tell a genuinely missing field (an older snapshot) apart from an
// explicit zero value, and fall back to the constructor defaults only in
// the missing case — the backward-compatibility seam spec.md §4.F requires.
type Snapshot struct {
	M              int            `json:"m"`
	EfConstruction int            `json:"ef_construction"`
	EfSearch       *int           `json:"ef_search,omitempty"`
	Metric         *string        `json:"metric,omitempty"`
	Dimension      *int           `json:"dimension,omitempty"`
	LevelMax       int            `json:"level_max"`
	EntryPointID   int            `json:"entry_point_id"`
	HasEntry       bool           `json:"has_entry"`
	Nodes          []SnapshotNode `json:"nodes"`
}

// SnapshotNode is one node's on-disk representation. Neighbors[l] is the
// exact, order-preserved list of ids at layer l.
type SnapshotNode struct {
	ID        int       `json:"id"`
	Level     int       `json:"level"`
	Vector    []float32 `json:"vector"`
	Neighbors [][]int   `json:"neighbors"`
}

// Snapshot captures the graph's full state: parameters, entry point, and
// every node with its neighbor lists in their exact stored order. Node ids
// are emitted in ascending order for a stable, diffable encoding; map
// iteration order is not otherwise meaningful to the format.
func (g *Graph) Snapshot() (*Snapshot, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	nodes := make([]SnapshotNode, 0, len(ids))
	for _, id := range ids {
		n := g.nodes[id]
		neighbors := make([][]int, len(n.Neighbors))
		for lvl, nbs := range n.Neighbors {
			neighbors[lvl] = append([]int(nil), nbs...)
		}
		nodes = append(nodes, SnapshotNode{
			ID:        n.ID,
			Level:     n.Level,
			Vector:    append([]float32(nil), n.Vector...),
			Neighbors: neighbors,
		})
	}

	efSearch := g.efSearch
	metricName := g.metric.String()
	dimension := g.dimension

	return &Snapshot{
		M:              g.m,
		EfConstruction: g.efConstruction,
		EfSearch:       &efSearch,
		Metric:         &metricName,
		Dimension:      &dimension,
		LevelMax:       g.levelMax,
		EntryPointID:   g.entryPointID,
		HasEntry:       g.hasEntry,
		Nodes:          nodes,
	}, nil
}

// Restore rebuilds a Graph from a Snapshot with all invariants immediately
// satisfied — no re-indexing is performed, the adjacency lists are trusted
// as-is (spec.md §4.F).
func Restore(snapshot *Snapshot) (*Graph, error) {
	defaults := DefaultConfig()

	metricName := defaults.Metric.String()
	if snapshot.Metric != nil {
		metricName = *snapshot.Metric
	}
	metric, err := ParseMetric(metricName)
	if err != nil {
		return nil, err
	}

	efSearch := defaults.EfSearch
	if snapshot.EfSearch != nil {
		efSearch = *snapshot.EfSearch
	}

	dimension := defaults.Dimension
	if snapshot.Dimension != nil {
		dimension = *snapshot.Dimension
	}

	g, err := New(Config{
		M:              snapshot.M,
		EfConstruction: snapshot.EfConstruction,
		EfSearch:       efSearch,
		Dimension:      dimension,
		Metric:         metric,
	})
	if err != nil {
		return nil, err
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.levelMax = snapshot.LevelMax
	g.hasEntry = snapshot.HasEntry
	g.entryPointID = snapshot.EntryPointID

	for _, sn := range snapshot.Nodes {
		node := structs.NewNode(sn.ID, sn.Vector, sn.Level, g.m)
		for lvl := range sn.Neighbors {
			if lvl >= len(node.Neighbors) {
				continue
			}
			node.Neighbors[lvl] = append([]int(nil), sn.Neighbors[lvl]...)
		}
		g.nodes[sn.ID] = node
	}

	return g, nil
}
