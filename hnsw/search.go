package hnsw

import "github.com/nearbyte/hnsw/structs"

// searchLayer performs the layer beam search of spec.md §4.E.2: a max-heap
// of candidates (popped best-score-first) drives exploration, bounded by a
// "worst-kept" heap of at most ef results. A node whose score can no longer
// beat the worst kept result terminates the search — no further expansion
// can improve the result set once that holds, because scores only get
// worse as the search moves away from the query in a well-formed graph.
//
// Returns up to ef items sorted by descending score.
func (g *Graph) searchLayer(query []float32, entry *structs.Node, ef, level int) []structs.Item {
	visited := g.heapPool.GetVisited()
	defer g.heapPool.PutVisited(visited)

	candidates := g.heapPool.GetMaxHeap() // pops highest score first
	defer g.heapPool.PutMaxHeap(candidates)
	best := g.heapPool.GetMinHeap() // root is the worst (lowest) score kept
	defer g.heapPool.PutMinHeap(best)

	initScore := g.score(query, entry.Vector)
	candidates.Push(entry.ID, initScore)
	best.Push(entry.ID, initScore)
	visited[entry.ID] = struct{}{}

	for candidates.Len() > 0 {
		c, _ := candidates.Pop()

		if best.Len() >= ef {
			worst, _ := best.Peek()
			if c.Score < worst.Score {
				break
			}
		}

		cNode := g.nodes[c.ID]
		if level >= len(cNode.Neighbors) {
			continue
		}

		for _, nbID := range cNode.Neighbors[level] {
			if _, seen := visited[nbID]; seen {
				continue
			}
			visited[nbID] = struct{}{}

			nbNode := g.nodes[nbID]
			s := g.score(query, nbNode.Vector)

			admit := best.Len() < ef
			if !admit {
				worst, _ := best.Peek()
				admit = s > worst.Score
			}
			if !admit {
				continue
			}

			candidates.Push(nbID, s)
			best.Push(nbID, s)
			if best.Len() > ef {
				best.Pop()
			}
		}
	}

	items := make([]structs.Item, best.Len())
	for i := len(items) - 1; i >= 0; i-- {
		item, _ := best.Pop()
		items[i] = item
	}
	return items
}

// greedyDescend performs the ef=1 greedy descent used in the upper layers
// during both construction and query: repeatedly move to the
// highest-scoring neighbor on level as long as it strictly improves on the
// current node, terminating at a local maximum (spec.md §4.E.1 phase 1 and
// §4.E.5 step 2).
func (g *Graph) greedyDescend(query []float32, entry *structs.Node, level int) *structs.Node {
	current := entry
	currentScore := g.score(query, current.Vector)

	for {
		var best *structs.Node
		bestScore := currentScore

		if level < len(current.Neighbors) {
			for _, nbID := range current.Neighbors[level] {
				nbNode := g.nodes[nbID]
				s := g.score(query, nbNode.Vector)
				if s > bestScore {
					bestScore = s
					best = nbNode
				}
			}
		}

		if best == nil {
			return current
		}
		current = best
		currentScore = bestScore
	}
}

// SearchKNN returns up to k results sorted by descending score, implementing
// spec.md §4.E.5. An empty graph or a non-positive k returns an empty
// result, not an error.
func (g *Graph) SearchKNN(query []float32, k int, opts ...SearchOption) ([]Result, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if k <= 0 || len(g.nodes) == 0 {
		return nil, nil
	}
	if g.dimension != 0 && len(query) != g.dimension {
		return nil, ErrDimensionMismatch
	}

	cfg := searchConfig{efSearch: g.efSearch}
	for _, opt := range opts {
		opt(&cfg)
	}
	ef := cfg.efSearch
	if ef < k {
		ef = k
	}

	if len(g.nodes) == 1 {
		entry := g.nodes[g.entryPointID]
		return []Result{{ID: entry.ID, Score: g.score(entry.Vector, query)}}, nil
	}

	entry := g.nodes[g.entryPointID]
	for lc := g.levelMax; lc > 0; lc-- {
		entry = g.greedyDescend(query, entry, lc)
	}

	items := g.searchLayer(query, entry, ef, 0)

	seen := make(map[int]bool, len(items))
	results := make([]Result, 0, k)
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		results = append(results, Result{ID: it.ID, Score: it.Score})
		if len(results) == k {
			break
		}
	}
	return results, nil
}
