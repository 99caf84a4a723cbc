package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// Graph is a weighted graph over a fixed vertex set 0..n-1, stored as an
// n×n adjacency matrix of int64 weights. A weight of 0 encodes "no edge".
// Create one with New.
type Graph struct {
	directed bool      // one-way edges when true
	weights  [][]int64 // n×n matrix, symmetric while undirected
}

// New constructs a Graph with n isolated vertices.
// Returns ErrInvalidVertexCount when n is negative.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexCount, n)
	}

	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Allocate the zeroed weight matrix.
	weights := make([][]int64, n)
	var i int
	for i = range weights {
		weights[i] = make([]int64, n)
	}

	return &Graph{directed: cfg.Directed, weights: weights}, nil
}

// AddEdge sets the weight of the edge u→v (and v→u when undirected).
// A weight of 0 erases the edge, since 0 encodes absence; use weight 1 for
// plain unweighted connectivity. Returns ErrVertexOutOfRange and changes
// nothing when an endpoint is invalid.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}

	g.weights[u][v] = w
	if !g.directed {
		g.weights[v][u] = w
	}

	return nil
}

// RemoveEdge erases the edge u→v (and v→u when undirected).
// Returns ErrVertexOutOfRange and changes nothing when an endpoint is invalid.
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}

	g.weights[u][v] = 0
	if !g.directed {
		g.weights[v][u] = 0
	}

	return nil
}

// Weight returns the weight of the edge u→v; 0 means the edge is absent.
// Returns ErrVertexOutOfRange when an endpoint is invalid.
func (g *Graph) Weight(u, v int) (int64, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.weights[u][v], nil
}

// SetDirected switches edge semantics. Turning a directed graph undirected
// symmetrizes the matrix: for every pair the one-way weight survives, and
// when both directions carry distinct weights the lower-triangle one is
// overwritten by the upper-triangle one.
func (g *Graph) SetDirected(directed bool) {
	if g.directed && !directed {
		n := len(g.weights)
		var i, j int
		var w int64
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				w = g.weights[i][j]
				if w == 0 {
					w = g.weights[j][i]
				}
				g.weights[i][j] = w
				g.weights[j][i] = w
			}
		}
	}
	g.directed = directed
}

// RemoveVertex returns a new graph without vertex v: all ids above v shift
// down by one and every surviving edge is copied. The receiver is not
// modified. Returns ErrVertexOutOfRange when v is invalid.
func (g *Graph) RemoveVertex(v int) (*Graph, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	n := len(g.weights)
	weights := make([][]int64, 0, n-1)
	var i, j int
	for i = 0; i < n; i++ {
		if i == v {
			continue
		}
		row := make([]int64, 0, n-1)
		for j = 0; j < n; j++ {
			if j == v {
				continue
			}
			row = append(row, g.weights[i][j])
		}
		weights = append(weights, row)
	}

	return &Graph{directed: g.directed, weights: weights}, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount reports the fixed number of vertices.
func (g *Graph) VertexCount() int { return len(g.weights) }

// Clear erases every edge. The vertex count and edge semantics are kept.
func (g *Graph) Clear() {
	var i, j int
	for i = range g.weights {
		for j = range g.weights[i] {
			g.weights[i][j] = 0
		}
	}
}

// Snapshot returns a deep copy of the weight matrix.
// Mutating the copy does not affect the graph.
func (g *Graph) Snapshot() [][]int64 {
	out := make([][]int64, len(g.weights))
	var i int
	for i = range g.weights {
		out[i] = make([]int64, len(g.weights[i]))
		copy(out[i], g.weights[i])
	}

	return out
}

// String renders the weight matrix as a compact single line, e.g.
// "[[0,1,0],[1,0,2],[0,2,0]]".
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range g.weights {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, w := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatInt(w, 10))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// checkVertex validates that v is a usable vertex id.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.weights) {
		return fmt.Errorf("%w: vertex %d of %d", ErrVertexOutOfRange, v, len(g.weights))
	}

	return nil
}
