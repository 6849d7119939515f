package hnsw

import (
	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/structs"
)

// AddPoint inserts a new (id, vector) pair, implementing spec.md §4.E.1:
// draw a level, descend greedily through the upper layers to find a good
// entry point, then beam-search and link at every layer from
// min(nodeLevel, levelMax) down to 0, promoting the entry point if the new
// node's level exceeds the current maximum.
//
// An insertion is an atomic unit with respect to the graph's invariants:
// AddPoint holds the write lock for its entire duration and never
// suspends mid-insertion (spec.md §5).
func (g *Graph) AddPoint(id int, vector []float32) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.addPointLocked(id, vector)
}

func (g *Graph) addPointLocked(id int, vector []float32) error {
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateID
	}

	if g.dimension == 0 {
		g.dimension = len(vector)
	} else if len(vector) != g.dimension {
		return ErrDimensionMismatch
	}

	if g.metric == MetricCosine && isZeroVector(vector) {
		return ErrZeroVector
	}

	level := g.sampler.SelectLevel()
	node := structs.NewNode(id, vector, level, g.m)
	g.nodes[id] = node

	if !g.hasEntry {
		g.hasEntry = true
		g.entryPointID = id
		g.levelMax = level
		return nil
	}

	ep := g.nodes[g.entryPointID]

	// Phase 1: greedy descent from the top layer down to level+1, looking
	// for a good starting point for the construction search below.
	for lc := g.levelMax; lc > level; lc-- {
		ep = g.greedyDescend(vector, ep, lc)
	}

	// Phase 2: beam search and link at every layer from min(level, levelMax)
	// down to 0.
	top := level
	if g.levelMax < top {
		top = g.levelMax
	}
	for lc := top; lc >= 0; lc-- {
		candidates := g.searchLayer(vector, ep, g.efConstruction, lc)
		selected := g.selectNeighborsHeuristic(vector, candidates, g.m)
		g.installBidirectional(node, selected, lc)

		if len(candidates) > 0 {
			ep = g.nodes[candidates[0].ID]
		}
	}

	if level > g.levelMax {
		g.entryPointID = id
		g.levelMax = level
		g.log.Debug("entry point promoted", zap.Int("id", id), zap.Int("level", level))
	}

	return nil
}

// selectNeighborsHeuristic implements spec.md §4.E.3: process candidates in
// descending score order (the order searchLayer already returns), admitting
// a candidate c iff every already-selected neighbor s scores no higher
// against c than the pivot v does — i.e. score(c, s) <= score(v, c). This
// prefers neighbors that are not already well covered by closer picks,
// producing a diverse neighborhood instead of a naive top-m closest list.
func (g *Graph) selectNeighborsHeuristic(pivot []float32, candidates []structs.Item, m int) []structs.Item {
	selected := make([]structs.Item, 0, m)
	for _, c := range candidates {
		if len(selected) >= m {
			break
		}
		cNode := g.nodes[c.ID]
		admit := true
		for _, s := range selected {
			sNode := g.nodes[s.ID]
			if g.score(cNode.Vector, sNode.Vector) > c.Score {
				admit = false
				break
			}
		}
		if admit {
			selected = append(selected, c)
		}
	}
	return selected
}

// installBidirectional links node to each of neighbors at level in both
// directions, pruning either side's list back down to m when it overflows
// (spec.md §4.E.4). It is the only code path that ever removes an edge.
func (g *Graph) installBidirectional(node *structs.Node, neighbors []structs.Item, level int) {
	for _, nb := range neighbors {
		g.linkAndPrune(node.ID, nb.ID, level)
		g.linkAndPrune(nb.ID, node.ID, level)
	}
}

// linkAndPrune inserts toID into fromID's layer-level neighbor list. If that
// overflows m, it re-runs the neighbor-selection heuristic over the
// expanded set to shrink back to m, and for every id dropped, removes that
// id's reciprocal back-pointer to fromID — restoring invariant 3
// (symmetric adjacency) in the same step that broke it.
func (g *Graph) linkAndPrune(fromID, toID, level int) {
	if fromID == toID {
		return
	}

	from := g.nodes[fromID]
	if from.HasNeighbor(level, toID) {
		return
	}
	from.Neighbors[level] = append(from.Neighbors[level], toID)

	if len(from.Neighbors[level]) <= g.m {
		g.sortNeighborsDescending(from, level)
		return
	}

	candidates := make([]structs.Item, 0, len(from.Neighbors[level]))
	for _, id := range from.Neighbors[level] {
		other := g.nodes[id]
		candidates = append(candidates, structs.Item{ID: id, Score: g.score(from.Vector, other.Vector)})
	}
	sortItemsDescending(candidates)

	selected := g.selectNeighborsHeuristic(from.Vector, candidates, g.m)
	keep := make(map[int]bool, len(selected))
	newList := make([]int, 0, len(selected))
	for _, s := range selected {
		keep[s.ID] = true
		newList = append(newList, s.ID)
	}

	for _, id := range from.Neighbors[level] {
		if !keep[id] {
			g.nodes[id].RemoveNeighbor(level, fromID)
			g.log.Debug("pruned edge", zap.Int("from", fromID), zap.Int("dropped", id), zap.Int("level", level))
		}
	}
	from.Neighbors[level] = newList
}

// sortItemsDescending insertion-sorts items by descending score. Neighbor
// lists are bounded by m (typically tens of elements), so an O(n^2) sort is
// not on a hot path measured in practice.
func sortItemsDescending(items []structs.Item) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].Score > items[j-1].Score; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// sortNeighborsDescending insertion-sorts n's layer-level neighbor list by
// descending score against n, maintaining the order documented on
// structs.Node.Neighbors after a plain append (the non-overflow path of
// linkAndPrune, which otherwise only ever appends).
func (g *Graph) sortNeighborsDescending(n *structs.Node, level int) {
	nbs := n.Neighbors[level]
	for i := 1; i < len(nbs); i++ {
		si := g.score(n.Vector, g.nodes[nbs[i]].Vector)
		j := i
		for j > 0 && g.score(n.Vector, g.nodes[nbs[j-1]].Vector) < si {
			nbs[j], nbs[j-1] = nbs[j-1], nbs[j]
			j--
		}
	}
}
