package structs

import "testing"

func TestMaxHeapOrdering(t *testing.T) {
	h := NewMaxHeap()
	h.Push(1, 0.2)
	h.Push(2, 0.9)
	h.Push(3, 0.5)

	want := []int{2, 3, 1}
	for _, id := range want {
		item, ok := h.Pop()
		if !ok {
			t.Fatalf("expected an item, heap emptied early")
		}
		if item.ID != id {
			t.Errorf("Pop() ID = %d, want %d", item.ID, id)
		}
	}
	if h.Len() != 0 {
		t.Errorf("expected empty heap, got Len() = %d", h.Len())
	}
	if _, ok := h.Pop(); ok {
		t.Error("expected Pop() on empty heap to return ok=false")
	}
}

func TestMinHeapOrdering(t *testing.T) {
	h := NewMinHeap()
	h.Push(1, 0.2)
	h.Push(2, 0.9)
	h.Push(3, 0.5)

	want := []int{1, 3, 2}
	for _, id := range want {
		item, ok := h.Pop()
		if !ok {
			t.Fatalf("expected an item, heap emptied early")
		}
		if item.ID != id {
			t.Errorf("Pop() ID = %d, want %d", item.ID, id)
		}
	}
}

func TestHeapPeekDoesNotRemove(t *testing.T) {
	h := NewMinHeap()
	h.Push(1, 0.7)
	h.Push(2, 0.1)

	peeked, ok := h.Peek()
	if !ok || peeked.ID != 2 {
		t.Fatalf("Peek() = %+v, ok=%v, want id 2", peeked, ok)
	}
	if h.Len() != 2 {
		t.Errorf("Peek() must not remove, Len() = %d", h.Len())
	}
}

func TestHeapReset(t *testing.T) {
	h := NewMaxHeap()
	h.Push(1, 1.0)
	h.Push(2, 2.0)
	h.Reset()
	if h.Len() != 0 {
		t.Errorf("expected Len() == 0 after Reset, got %d", h.Len())
	}
	h.Push(3, 3.0)
	item, ok := h.Pop()
	if !ok || item.ID != 3 {
		t.Errorf("heap unusable after Reset: item=%+v ok=%v", item, ok)
	}
}
