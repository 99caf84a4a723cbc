// Package graph implements a fixed-size weighted graph over an adjacency
// matrix, together with the classic algorithms on top of it: breadth-first
// and depth-first traversal, Dijkstra shortest paths, and minimum spanning
// trees via Prim and Kruskal.
//
// A graph is created with a fixed vertex count n; vertices are dense ints
// 0..n-1 and edges live in an n×n int64 weight matrix. A weight of 0 means
// "no edge", so a genuine zero-weight edge cannot be represented; store
// weight 1 for unweighted edges. Undirected graphs keep the matrix
// symmetric by construction (every write mirrors).
//
// Algorithms report their work through per-call observer options
// (WithOnEnqueue, WithOnSettle, WithOnSelect, …). Observers see every
// discrete step in the exact order the algorithm performs it, must not
// mutate the graph, and have no influence on the result.
//
// Complexity, with V vertices:
//
//   - AddEdge/RemoveEdge: O(1)
//   - SetDirected to undirected: O(V²) symmetrization
//   - RemoveVertex: O(V²) copy into a fresh graph
//   - BFS/DFS: O(V²) (the matrix row scan dominates)
//   - Dijkstra: O(V² log V) with the lazy-deletion priority queue
//   - PrimMST:  O(V² log V)
//   - Kruskal:  O(V² + E log E)
//
// Notes on implementation choices:
//
//   - The priority-queue algorithms tolerate stale entries and discard them
//     at pop time instead of decreasing keys in place (lazy deletion).
//   - Dijkstra does not guard against negative weights; feeding them
//     produces undefined distances (they still terminate, since settled
//     vertices are never revisited).
//   - RemoveVertex never mutates the receiver: it returns a new graph with
//     the surviving vertices renumbered contiguously.
//   - Not safe for concurrent use. A Graph expects a single goroutine.
package graph
