package hnsw

import (
	"go.uber.org/zap"

	"github.com/nearbyte/hnsw/structs"
)

// BuildIndex implements spec.md §4.E.6: it clears all existing state, then
// inserts every point in data in order via AddPoint. OnProgress, if set, is
// invoked after every ProgressInterval insertions and once more at
// completion — the only "async" surface the core offers, a synchronous
// yielding hook a caller can use to interleave persistence or UI updates
// between insertions.
func (g *Graph) BuildIndex(data []Point, opts BuildOptions) error {
	g.mutex.Lock()
	g.nodes = make(map[int]*structs.Node)
	g.hasEntry = false
	g.entryPointID = 0
	g.levelMax = -1
	g.dimension = 0
	g.mutex.Unlock()

	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = 1000
	}

	total := len(data)
	for i, pt := range data {
		if err := g.AddPoint(pt.ID, pt.Vector); err != nil {
			return err
		}
		if opts.OnProgress != nil && (i+1)%interval == 0 {
			opts.OnProgress(i+1, total)
		}
	}
	if opts.OnProgress != nil {
		opts.OnProgress(total, total)
	}

	g.log.Info("build index complete", zap.Int("count", total))
	return nil
}
