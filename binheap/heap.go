// Package binheap implements an array-backed binary heap of ints that can
// run as a min-heap or a max-heap and switch between the two in place.
//
// The heap lives in a single slice: the element at index i has its parent at
// (i-1)/2 and its children at 2i+1 and 2i+2. Every mutation repairs the heap
// property locally: Insert bubbles the new element up, ExtractTop moves the
// last element into the root and sifts it down, and SetMode rebuilds the
// whole array bottom-up under the new ordering.
//
// Complexity:
//
//   - Insert:     O(log n) (one leaf-to-root path)
//   - ExtractTop: O(log n) (one root-to-leaf path)
//   - Peek:       O(1)
//   - SetMode:    O(n) because bottom-up heapify touches every internal node once
//
// Notes on implementation choices:
//
//   - The heap grows on demand. An explicit bound is opt-in via WithCapacity,
//     in which case Insert reports ErrCapacityExceeded instead of growing.
//   - OnCompare and OnSwap observers receive raw array indices, so a caller
//     can mirror the exact sequence of steps the heap performs. Observers
//     must not mutate the heap; they have no influence on the outcome.
//   - Not safe for concurrent use. A Heap expects a single goroutine.
package binheap

import (
	"fmt"
	"strconv"
	"strings"
)

// Heap is a binary min- or max-heap of ints.
// Create one with New; the zero value has no observers wired and is not usable.
type Heap struct {
	mode      Mode           // ordering relation, Min or Max
	capacity  int            // maximum element count; 0 = unbounded
	data      []int          // slice-encoded complete binary tree, data[0] is the root
	onCompare func(i, j int) // observer for comparisons
	onSwap    func(i, j int) // observer for swaps
}

// New constructs an empty Heap with the given mode.
// Panics on a Mode other than Min or Max (ErrBadMode); mode constants are
// compile-time choices, not runtime input.
func New(mode Mode, opts ...Option) *Heap {
	if mode != Min && mode != Max {
		panic(ErrBadMode.Error())
	}

	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Materialize the heap.
	return &Heap{
		mode:      mode,
		capacity:  cfg.Capacity,
		onCompare: cfg.OnCompare,
		onSwap:    cfg.OnSwap,
	}
}

// Insert adds v to the heap and restores the heap property.
// When a WithCapacity bound is full, it returns ErrCapacityExceeded and the
// heap is left exactly as it was.
func (h *Heap) Insert(v int) error {
	// 1) Enforce the optional capacity bound before touching state.
	if h.capacity > 0 && len(h.data) == h.capacity {
		return fmt.Errorf("%w: insert %d into full heap of %d", ErrCapacityExceeded, v, h.capacity)
	}

	// 2) Place v in the first free slot and bubble it up to its level.
	h.data = append(h.data, v)
	h.bubbleUp(len(h.data) - 1)

	return nil
}

// ExtractTop removes and returns the root element (the minimum in Min mode,
// the maximum in Max mode). Returns ErrEmptyHeap when there is nothing to
// extract.
func (h *Heap) ExtractTop() (int, error) {
	// 1) An empty heap has no top.
	if len(h.data) == 0 {
		return 0, ErrEmptyHeap
	}

	// 2) Capture the root, move the last element into its slot, shrink.
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]

	// 3) Sift the relocated element down to where it belongs.
	if len(h.data) > 0 {
		h.bubbleDown(0)
	}

	return top, nil
}

// Peek returns the root element without removing it.
// Returns ErrEmptyHeap when the heap holds no elements.
func (h *Heap) Peek() (int, error) {
	if len(h.data) == 0 {
		return 0, ErrEmptyHeap
	}

	return h.data[0], nil
}

// SetMode switches the ordering relation and rebuilds the heap in place.
// The rebuild walks internal nodes bottom-up, so every subtree is already a
// valid heap when its root is repaired; one pass suffices.
// Panics on a Mode other than Min or Max (ErrBadMode).
func (h *Heap) SetMode(m Mode) {
	if m != Min && m != Max {
		panic(ErrBadMode.Error())
	}

	// 1) Flip the ordering relation.
	h.mode = m

	// 2) Heapify bottom-up from the last internal node to the root.
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.bubbleDown(i)
	}
}

// Len reports the number of stored elements.
func (h *Heap) Len() int { return len(h.data) }

// Cap reports the configured capacity bound; 0 means unbounded.
func (h *Heap) Cap() int { return h.capacity }

// Mode reports the current ordering relation.
func (h *Heap) Mode() Mode { return h.mode }

// Clear removes all elements. Mode, capacity and observers are kept.
func (h *Heap) Clear() { h.data = nil }

// Snapshot returns a copy of the backing array in heap order
// (index 0 is the root). Mutating the copy does not affect the heap.
func (h *Heap) Snapshot() []int {
	out := make([]int, len(h.data))
	copy(out, h.data)

	return out
}

// String renders the backing array as a compact single line, e.g. "[1,3,8,5]".
func (h *Heap) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range h.data {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')

	return sb.String()
}

// bubbleUp moves the element at index i toward the root until its parent
// dominates it.
func (h *Heap) bubbleUp(i int) {
	var parent int
	for i > 0 {
		parent = (i - 1) / 2
		h.onCompare(i, parent)
		if !h.dominates(i, parent) {
			break
		}
		h.onSwap(i, parent)
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

// bubbleDown moves the element at index i toward the leaves, swapping it
// with the dominating child until both children yield.
func (h *Heap) bubbleDown(i int) {
	n := len(h.data)
	var left, right, best int
	for {
		left, right, best = 2*i+1, 2*i+2, i
		if left < n {
			h.onCompare(left, best)
			if h.dominates(left, best) {
				best = left
			}
		}
		if right < n {
			h.onCompare(right, best)
			if h.dominates(right, best) {
				best = right
			}
		}
		if best == i {
			return
		}
		h.onSwap(i, best)
		h.data[i], h.data[best] = h.data[best], h.data[i]
		i = best
	}
}

// dominates reports whether the element at index i must sit above the
// element at index j under the current mode.
func (h *Heap) dominates(i, j int) bool {
	if h.mode == Max {
		return h.data[i] > h.data[j]
	}

	return h.data[i] < h.data[j]
}
