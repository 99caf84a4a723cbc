package graph

import "sort"

// Kruskal computes a minimum spanning forest by scanning edges in ascending
// weight order and joining components through a disjoint-set structure with
// path compression and union by rank.
//
// Edges are collected from the upper triangle of the matrix, so each
// undirected edge is considered once with From < To; sorting is stable, so
// equal weights keep their id order and the result is deterministic. Like
// PrimMST, a disconnected graph yields a partial forest without error, and
// a directed graph yields ErrDirectedGraph and no edges.
func (g *Graph) Kruskal() ([]Edge, int64, error) {
	// 1) Reject directed graphs; spanning trees need symmetric reachability.
	if g.directed {
		return nil, 0, ErrDirectedGraph
	}

	n := len(g.weights)
	if n == 0 {
		return nil, 0, nil
	}

	// 2) Collect the upper triangle; each undirected edge appears once.
	edges := make([]Edge, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if g.weights[i][j] != 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: g.weights[i][j]})
			}
		}
	}

	// 3) Ascending weight; stable, so ties keep their upper-triangle order.
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Weight < edges[b].Weight
	})

	// 4) Disjoint-set over the dense vertex ids.
	parent := make([]int, n)
	rank := make([]int, n)
	for i = range parent {
		parent[i] = i
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 5) Greedy scan: adopt every edge that bridges two components.
	tree := make([]Edge, 0, n-1)
	var total int64
	var e Edge
	for _, e = range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			tree = append(tree, e)
			total += e.Weight
		}
	}

	return tree, total, nil
}
