package primitives

import "container/heap"

// Item is a single priority-queue entry: a vertex with its priority.
// Smaller priorities are served first.
type Item struct {
	Vertex   int   // vertex identifier
	Priority int64 // ordering key, ascending
}

// MinPQ is a binary min-heap of Items ordered by Priority.
// The zero value is an empty queue ready for use.
//
// MinPQ deliberately has no decrease-key operation: when a priority
// improves, callers push a fresh Item and discard the stale one when it
// eventually pops (they can tell it is stale from their own visited
// bookkeeping). Duplicate vertices in the heap are therefore expected.
type MinPQ struct {
	entries itemHeap
}

// Push inserts vertex with the given priority.
func (pq *MinPQ) Push(vertex int, priority int64) {
	heap.Push(&pq.entries, Item{Vertex: vertex, Priority: priority})
}

// Pop removes and returns the entry with the smallest priority.
// The second return value is false when the queue is empty.
func (pq *MinPQ) Pop() (Item, bool) {
	if pq.entries.Len() == 0 {
		return Item{}, false
	}

	return heap.Pop(&pq.entries).(Item), true
}

// Len reports the number of entries, stale duplicates included.
func (pq *MinPQ) Len() int { return pq.entries.Len() }

// Clear removes all entries, leaving an empty queue.
func (pq *MinPQ) Clear() { pq.entries = nil }

// itemHeap implements heap.Interface over Items, ordered by Priority ascending.
type itemHeap []Item

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h) }

// Less defines the comparison: smaller Priority → higher priority.
func (h itemHeap) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Item.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to Item.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
