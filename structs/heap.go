package structs

import "container/heap"

// Item is a single entry in a score-ordered heap: a node id paired with its
// score against whatever query vector produced it. Higher score means
// closer, per the similarity functions in package hnsw.
type Item struct {
	ID    int
	Score float32
}

// scoreHeap is the single heap implementation shared by both frontier roles
// used during layer beam search (see Design Notes in SPEC_FULL.md): a
// max-heap of candidates ordered so Pop yields the best (highest) score
// first, and a "worst-kept" heap of current results ordered so Pop/root
// yields the worst (lowest) score first. Both are the same type, only the
// comparator differs.
type scoreHeap struct {
	items []Item
	less  func(a, b float32) bool
}

func (h scoreHeap) Len() int            { return len(h.items) }
func (h scoreHeap) Less(i, j int) bool  { return h.less(h.items[i].Score, h.items[j].Score) }
func (h scoreHeap) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *scoreHeap) Push(x interface{}) { h.items = append(h.items, x.(Item)) }
func (h *scoreHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// Heap is a binary heap of (id, score) pairs ordered by a fixed comparator.
// It is not safe for concurrent use; callers serialize access (the graph
// core holds its write or read lock for the duration of a beam search).
type Heap struct {
	h scoreHeap
}

// NewMinHeap returns a heap whose root and Pop order is ascending by score
// (the lowest score comes out first). Used as the "worst-kept" side of a
// beam search's result set.
func NewMinHeap() *Heap {
	return &Heap{h: scoreHeap{less: func(a, b float32) bool { return a < b }}}
}

// NewMaxHeap returns a heap whose root and Pop order is descending by score
// (the highest score comes out first). Used as the candidate frontier of a
// beam search.
func NewMaxHeap() *Heap {
	return &Heap{h: scoreHeap{less: func(a, b float32) bool { return a > b }}}
}

// Len returns the number of items currently in the heap.
func (h *Heap) Len() int { return h.h.Len() }

// Push inserts (id, score) and restores the heap property.
func (h *Heap) Push(id int, score float32) {
	heap.Push(&h.h, Item{ID: id, Score: score})
}

// Pop removes and returns the item at the root. ok is false on an empty heap.
func (h *Heap) Pop() (item Item, ok bool) {
	if h.h.Len() == 0 {
		return Item{}, false
	}
	return heap.Pop(&h.h).(Item), true
}

// Peek returns the item at the root without removing it.
func (h *Heap) Peek() (item Item, ok bool) {
	if h.h.Len() == 0 {
		return Item{}, false
	}
	return h.h.items[0], true
}

// Reset empties the heap while keeping the underlying array's capacity.
func (h *Heap) Reset() {
	h.h.items = h.h.items[:0]
}
