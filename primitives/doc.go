// Package primitives provides the small building blocks the rest of the
// library leans on: a FIFO Queue, a LIFO Stack, and a binary min-priority
// queue (MinPQ) with lazy-deletion semantics.
//
// All three containers hold plain ints (MinPQ pairs a vertex with an int64
// priority), carry no locks, and report "empty" through comma-ok returns
// instead of magic sentinel values.
//
// Complexity:
//
//   - Queue:  Enqueue O(1) amortized, Dequeue O(1), Front O(1)
//   - Stack:  Push O(1) amortized, Pop O(1), Top O(1)
//   - MinPQ:  Push O(log n), Pop O(log n), Len O(1)
//
// Notes on implementation choices:
//
//   - MinPQ never removes or reorders existing entries when a priority
//     improves; callers push a duplicate and discard stale pops themselves
//     (the “lazy-decrease-key” pattern used by the graph algorithms).
//   - Zero values of all three types are ready to use.
package primitives
