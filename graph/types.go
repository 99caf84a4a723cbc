package graph

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the distance reported by Dijkstra for unreachable vertices.
const Inf int64 = math.MaxInt64

// Sentinel errors for graph construction, mutation and algorithms.
var (
	// ErrInvalidVertexCount is returned by New for a negative vertex count.
	ErrInvalidVertexCount = errors.New("graph: invalid vertex count")

	// ErrVertexOutOfRange is returned when a vertex id is not in [0, n).
	// The failing operation is a no-op.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrDirectedGraph is returned by the MST algorithms, which are defined
	// for undirected graphs only.
	ErrDirectedGraph = errors.New("graph: operation requires an undirected graph")
)

// Edge is one weighted connection, as reported by PrimMST and Kruskal.
type Edge struct {
	From   int   // tree-side endpoint (Prim) or smaller id (Kruskal)
	To     int   // newly attached endpoint (Prim) or larger id (Kruskal)
	Weight int64 // matrix weight of the edge
}

// String renders the edge as "from-to:weight", e.g. "0-1:4".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d:%d", e.From, e.To, e.Weight)
}

// Option configures Graph construction via functional arguments.
type Option func(*Options)

// Options holds construction parameters of a Graph.
type Options struct {
	// Directed selects one-way edges; the default is an undirected graph
	// with a symmetric weight matrix.
	Directed bool
}

// DefaultOptions returns an Options describing an undirected graph.
func DefaultOptions() Options {
	return Options{Directed: false}
}

// WithDirected selects between directed and undirected edge semantics.
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}
