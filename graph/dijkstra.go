package graph

import "github.com/katalvlaran/lvlstruct/primitives"

// DijkstraOption configures one Dijkstra invocation via functional arguments.
type DijkstraOption func(*DijkstraOptions)

// DijkstraOptions holds the observer callbacks of a shortest-path run.
// Hooks default to nil and are simply skipped when unset.
type DijkstraOptions struct {
	// OnSettle is called when a vertex's distance becomes final.
	OnSettle func(v int, dist int64)

	// OnRelax is called when the tentative distance of v improves through
	// its settled neighbor u.
	OnRelax func(u, v int, dist int64)
}

// WithOnSettle registers a callback observing finalized distances.
func WithOnSettle(fn func(v int, dist int64)) DijkstraOption {
	return func(o *DijkstraOptions) { o.OnSettle = fn }
}

// WithOnRelax registers a callback observing successful edge relaxations.
func WithOnRelax(fn func(u, v int, dist int64)) DijkstraOption {
	return func(o *DijkstraOptions) { o.OnRelax = fn }
}

// Dijkstra computes shortest distances from start to every vertex and
// returns them as a length-n slice; unreachable vertices hold Inf.
//
// The run keeps a min-priority queue of (vertex, tentative distance)
// entries under the lazy-decrease-key discipline: an improvement pushes a
// fresh entry instead of rewriting the old one, and a popped entry whose
// vertex is already settled is discarded as stale. Edge weights must be
// non-negative; negative weights are not guarded and produce undefined
// distances. Returns ErrVertexOutOfRange when start is invalid.
func (g *Graph) Dijkstra(start int, opts ...DijkstraOption) ([]int64, error) {
	// 1) Validate the start vertex.
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}

	var cfg DijkstraOptions
	var opt DijkstraOption
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) All distances start infinite; only start is known.
	n := len(g.weights)
	dist := make([]int64, n)
	var i int
	for i = range dist {
		dist[i] = Inf
	}
	dist[start] = 0
	visited := make([]bool, n)

	var pq primitives.MinPQ
	pq.Push(start, 0)

	// 3) Settle vertices in ascending distance order.
	var item primitives.Item
	var u, v int
	var w, next int64
	for pq.Len() > 0 {
		item, _ = pq.Pop()
		u = item.Vertex

		// Stale entry: u was settled through a cheaper push. Discard.
		if visited[u] {
			continue
		}
		visited[u] = true
		if cfg.OnSettle != nil {
			cfg.OnSettle(u, dist[u])
		}

		// 4) Relax the edges to every unsettled neighbor, ascending.
		for v = 0; v < n; v++ {
			w = g.weights[u][v]
			if w == 0 || visited[v] {
				continue
			}
			next = dist[u] + w
			if next >= dist[v] {
				continue
			}
			dist[v] = next
			pq.Push(v, next)
			if cfg.OnRelax != nil {
				cfg.OnRelax(u, v, next)
			}
		}
	}

	return dist, nil
}
