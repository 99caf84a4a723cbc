package graph

import "github.com/katalvlaran/lvlstruct/primitives"

// BFSOption configures one BFS invocation via functional arguments.
type BFSOption func(*BFSOptions)

// BFSOptions holds the observer callbacks of a breadth-first traversal.
// Hooks default to nil and are simply skipped when unset.
type BFSOptions struct {
	// OnEnqueue is called when a vertex is discovered and queued.
	OnEnqueue func(v int)

	// OnDequeue is called when a vertex leaves the queue, before it is
	// recorded in the result.
	OnDequeue func(v int)

	// OnVisit is called when a vertex is recorded in the result order.
	OnVisit func(v int)
}

// WithOnEnqueue registers a callback observing queue insertions.
func WithOnEnqueue(fn func(v int)) BFSOption {
	return func(o *BFSOptions) { o.OnEnqueue = fn }
}

// WithOnDequeue registers a callback observing queue removals.
func WithOnDequeue(fn func(v int)) BFSOption {
	return func(o *BFSOptions) { o.OnDequeue = fn }
}

// WithOnVisit registers a callback observing visit order.
func WithOnVisit(fn func(v int)) BFSOption {
	return func(o *BFSOptions) { o.OnVisit = fn }
}

// BFS walks the graph breadth-first from start and returns the vertices in
// discovery order. Neighbors are scanned in ascending id order, and each
// vertex is marked at first discovery, so it enters the queue exactly once.
// Vertices unreachable from start are absent from the result.
// Returns ErrVertexOutOfRange when start is invalid.
func (g *Graph) BFS(start int, opts ...BFSOption) ([]int, error) {
	// 1) Validate the start vertex.
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}

	var cfg BFSOptions
	var opt BFSOption
	for _, opt = range opts {
		opt(&cfg)
	}

	n := len(g.weights)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	// 2) Seed the queue with the start vertex.
	var queue primitives.Queue
	visited[start] = true
	queue.Enqueue(start)
	if cfg.OnEnqueue != nil {
		cfg.OnEnqueue(start)
	}

	// 3) Drain the queue, recording each vertex as it comes off the front.
	var u, v int
	for queue.Len() > 0 {
		u, _ = queue.Dequeue()
		if cfg.OnDequeue != nil {
			cfg.OnDequeue(u)
		}

		order = append(order, u)
		if cfg.OnVisit != nil {
			cfg.OnVisit(u)
		}

		// 4) Discover neighbors in ascending id order.
		for v = 0; v < n; v++ {
			if g.weights[u][v] == 0 || visited[v] {
				continue
			}
			visited[v] = true
			queue.Enqueue(v)
			if cfg.OnEnqueue != nil {
				cfg.OnEnqueue(v)
			}
		}
	}

	return order, nil
}
