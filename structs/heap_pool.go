package structs

import "sync"

// HeapPoolManager recycles every per-search scratch allocation a layer beam
// search needs: the two Heap frontiers plus the id-keyed visited set used to
// stop a node from being expanded twice in the same call. Pooling all three
// together means searchLayer has a single collaborator to borrow from and
// return to, instead of juggling a heap pool and a separate map pool.
type HeapPoolManager struct {
	minHeapPool sync.Pool
	maxHeapPool sync.Pool
	visitedPool sync.Pool
}

// NewHeapPoolManager creates a new pool manager.
func NewHeapPoolManager() *HeapPoolManager {
	return &HeapPoolManager{
		minHeapPool: sync.Pool{
			New: func() interface{} { return NewMinHeap() },
		},
		maxHeapPool: sync.Pool{
			New: func() interface{} { return NewMaxHeap() },
		},
		visitedPool: sync.Pool{
			New: func() interface{} { return make(map[int]struct{}) },
		},
	}
}

// GetMinHeap retrieves a reset min-ordered Heap from the pool.
func (p *HeapPoolManager) GetMinHeap() *Heap {
	h := p.minHeapPool.Get().(*Heap)
	h.Reset()
	return h
}

// PutMinHeap returns a min-ordered Heap to the pool.
func (p *HeapPoolManager) PutMinHeap(h *Heap) {
	p.minHeapPool.Put(h)
}

// GetMaxHeap retrieves a reset max-ordered Heap from the pool.
func (p *HeapPoolManager) GetMaxHeap() *Heap {
	h := p.maxHeapPool.Get().(*Heap)
	h.Reset()
	return h
}

// PutMaxHeap returns a max-ordered Heap to the pool.
func (p *HeapPoolManager) PutMaxHeap(h *Heap) {
	p.maxHeapPool.Put(h)
}

// GetVisited retrieves an empty id set from the pool, marking nodes already
// expanded during a single searchLayer call.
func (p *HeapPoolManager) GetVisited() map[int]struct{} {
	return p.visitedPool.Get().(map[int]struct{})
}

// PutVisited clears m and returns it to the pool.
func (p *HeapPoolManager) PutVisited(m map[int]struct{}) {
	for k := range m {
		delete(m, k)
	}
	p.visitedPool.Put(m)
}
