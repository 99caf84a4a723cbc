package graph

import "github.com/katalvlaran/lvlstruct/primitives"

// PrimOption configures one PrimMST invocation via functional arguments.
type PrimOption func(*PrimOptions)

// PrimOptions holds the observer callbacks of a Prim run.
// Hooks default to nil and are simply skipped when unset.
type PrimOptions struct {
	// OnSelect is called when an edge is adopted into the spanning tree.
	OnSelect func(e Edge)

	// OnUpdate is called when the cheapest known connection of an outside
	// vertex improves.
	OnUpdate func(v int, key int64)
}

// WithOnSelect registers a callback observing adopted tree edges.
func WithOnSelect(fn func(e Edge)) PrimOption {
	return func(o *PrimOptions) { o.OnSelect = fn }
}

// WithOnUpdate registers a callback observing candidate-key improvements.
func WithOnUpdate(fn func(v int, key int64)) PrimOption {
	return func(o *PrimOptions) { o.OnUpdate = fn }
}

// PrimMST grows a minimum spanning tree from vertex 0 and returns the
// adopted edges in selection order together with their total weight.
//
// The frontier lives in the same lazy-deletion priority queue Dijkstra
// uses: each improvement of an outside vertex's cheapest connection pushes
// a fresh entry, and stale entries are discarded at pop time. An edge is
// recorded the moment its outside endpoint joins the tree. On a
// disconnected graph the result is the partial tree of vertex 0's
// component, without error. Defined for undirected graphs only: a directed
// graph yields ErrDirectedGraph and no edges.
func (g *Graph) PrimMST(opts ...PrimOption) ([]Edge, int64, error) {
	// 1) Reject directed graphs; spanning trees need symmetric reachability.
	if g.directed {
		return nil, 0, ErrDirectedGraph
	}

	var cfg PrimOptions
	var opt PrimOption
	for _, opt = range opts {
		opt(&cfg)
	}

	n := len(g.weights)
	if n == 0 {
		return nil, 0, nil
	}

	// 2) key[v] is the cheapest known weight connecting v to the tree;
	//    parent[v] remembers which tree vertex offers it.
	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	var i int
	for i = range key {
		key[i] = Inf
		parent[i] = -1
	}
	key[0] = 0

	var pq primitives.MinPQ
	pq.Push(0, 0)

	edges := make([]Edge, 0, n-1)
	var total int64

	// 3) Repeatedly adopt the cheapest frontier vertex.
	var item primitives.Item
	var u, v int
	var w int64
	for pq.Len() > 0 {
		item, _ = pq.Pop()
		u = item.Vertex

		// Stale entry: u already joined through a cheaper push. Discard.
		if inTree[u] {
			continue
		}
		inTree[u] = true

		// 4) Record the edge that attached u; the seed vertex has none.
		if parent[u] != -1 {
			e := Edge{From: parent[u], To: u, Weight: g.weights[parent[u]][u]}
			edges = append(edges, e)
			total += e.Weight
			if cfg.OnSelect != nil {
				cfg.OnSelect(e)
			}
		}

		// 5) Offer u's edges to every outside neighbor, ascending.
		for v = 0; v < n; v++ {
			w = g.weights[u][v]
			if w == 0 || inTree[v] || w >= key[v] {
				continue
			}
			key[v] = w
			parent[v] = u
			pq.Push(v, w)
			if cfg.OnUpdate != nil {
				cfg.OnUpdate(v, w)
			}
		}
	}

	return edges, total, nil
}
