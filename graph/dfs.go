package graph

import "github.com/katalvlaran/lvlstruct/primitives"

// DFSOption configures one DFS invocation via functional arguments.
type DFSOption func(*DFSOptions)

// DFSOptions holds the observer callbacks of a depth-first traversal.
// Hooks default to nil and are simply skipped when unset.
type DFSOptions struct {
	// OnPush is called when a vertex is pushed onto the stack.
	OnPush func(v int)

	// OnPop is called for every pop, before the visited check, so stale
	// duplicates are observed too.
	OnPop func(v int)

	// OnSkip is called when a popped vertex turns out to be already
	// visited and is discarded.
	OnSkip func(v int)
}

// WithOnPush registers a callback observing stack pushes.
func WithOnPush(fn func(v int)) DFSOption {
	return func(o *DFSOptions) { o.OnPush = fn }
}

// WithOnPop registers a callback observing stack pops.
func WithOnPop(fn func(v int)) DFSOption {
	return func(o *DFSOptions) { o.OnPop = fn }
}

// WithOnSkip registers a callback observing discarded duplicate pops.
func WithOnSkip(fn func(v int)) DFSOption {
	return func(o *DFSOptions) { o.OnSkip = fn }
}

// DFS walks the graph depth-first from start and returns the vertices in
// visit order. Neighbors are pushed in descending id order so the smallest
// unvisited neighbor pops first, yielding the conventional ascending-first
// order despite the stack reversal. A vertex is marked visited and recorded
// only at pop time; the stack may therefore hold duplicates, which are
// skipped when they surface. Returns ErrVertexOutOfRange when start is
// invalid.
func (g *Graph) DFS(start int, opts ...DFSOption) ([]int, error) {
	// 1) Validate the start vertex.
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}

	var cfg DFSOptions
	var opt DFSOption
	for _, opt = range opts {
		opt(&cfg)
	}

	n := len(g.weights)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	// 2) Seed the stack with the start vertex.
	var stack primitives.Stack
	stack.Push(start)
	if cfg.OnPush != nil {
		cfg.OnPush(start)
	}

	// 3) Pop until exhausted, discarding vertices visited since their push.
	var u, v int
	for stack.Len() > 0 {
		u, _ = stack.Pop()
		if cfg.OnPop != nil {
			cfg.OnPop(u)
		}
		if visited[u] {
			if cfg.OnSkip != nil {
				cfg.OnSkip(u)
			}
			continue
		}

		visited[u] = true
		order = append(order, u)

		// 4) Push unvisited neighbors in descending id order.
		for v = n - 1; v >= 0; v-- {
			if g.weights[u][v] == 0 || visited[v] {
				continue
			}
			stack.Push(v)
			if cfg.OnPush != nil {
				cfg.OnPush(v)
			}
		}
	}

	return order, nil
}
