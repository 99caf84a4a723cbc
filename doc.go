// Package lvlstruct is your in-memory playground for the classic data
// structures — self-balancing trees, heaps, hash tables and matrix graphs —
// implemented once, cleanly, with optional step observers.
//
// 🚀 What is lvlstruct?
//
//	A small, single-goroutine library that brings together:
//		• AVL tree: insert/remove with all four rebalancing cases
//		• Binary heap: min/max mode, in-place mode switch, capacity guard
//		• Hash table: chained buckets, |key| mod n addressing
//		• Graph: weighted adjacency matrix + BFS, DFS, Dijkstra, Prim, Kruskal
//		• Primitives: queue, stack and a lazy-deletion min-priority queue
//
// ✨ Why choose lvlstruct?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Observable – attach hooks (OnSwap, OnRotate, OnVisit…) and watch every step
//   - Deterministic – identical inputs always produce identical outputs
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under five subpackages:
//
//	avltree/    — ordered set with automatic height rebalancing
//	binheap/    — array-backed binary heap, Min or Max, switchable in place
//	graph/      — fixed-size weighted adjacency matrix + the classic algorithms
//	hashtable/  — separate-chaining hash table with per-instance bucket count
//	primitives/ — Queue, Stack and MinPQ used by the graph algorithms
//
// Quick ASCII example:
//
//	      20
//	     /  \
//	   10    30
//
//	an AVL tree after Insert(10), Insert(20), Insert(30) — one left
//	rotation keeps it balanced.
//
// Every structure also knows how to serialize itself into a compact
// single-line form (fmt.Stringer), so state can be asserted or diffed
// at any step.
//
//	go get github.com/katalvlaran/lvlstruct
package lvlstruct
