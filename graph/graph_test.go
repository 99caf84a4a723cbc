package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstruct/graph"
)

func TestNew(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.False(t, g.Directed())
	assert.Equal(t, "[[0,0,0],[0,0,0],[0,0,0]]", g.String())

	empty, err := graph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.VertexCount())
	assert.Equal(t, "[]", empty.String())

	directed, err := graph.New(2, graph.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, directed.Directed())

	_, err = graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrInvalidVertexCount)
}

func TestGraph_AddEdgeUndirected(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	assert.Equal(t, "[[0,1,0],[1,0,2],[0,2,0]]", g.String(), "undirected writes must mirror")

	w, err := g.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)
}

func TestGraph_AddEdgeDirected(t *testing.T) {
	g, err := graph.New(2, graph.WithDirected(true))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 7))

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)

	w, err = g.Weight(1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), w, "directed write must not mirror")
}

func TestGraph_EdgeOutOfRange(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	before := g.String()

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 0, 1), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.RemoveEdge(5, 0), graph.ErrVertexOutOfRange)
	_, err = g.Weight(0, 9)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	assert.Equal(t, before, g.String(), "failed edge operations must not modify the matrix")
}

func TestGraph_RemoveEdge(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 6))

	require.NoError(t, g.RemoveEdge(1, 0))

	assert.Equal(t, "[[0,0,0],[0,0,6],[0,6,0]]", g.String(), "both mirrored cells must clear")
}

func TestGraph_SetDirectedSymmetrize(t *testing.T) {
	g, err := graph.New(3, graph.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 9)) // conflicting reverse weight
	require.NoError(t, g.AddEdge(2, 1, 3)) // only the lower triangle set

	g.SetDirected(false)

	assert.False(t, g.Directed())
	// The upper-triangle weight wins a conflict; a one-way weight survives.
	assert.Equal(t, "[[0,5,0],[5,0,3],[0,3,0]]", g.String())
}

func TestGraph_SetDirectedKeepsMatrix(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))

	g.SetDirected(true)

	assert.True(t, g.Directed())
	assert.Equal(t, "[[0,4],[4,0]]", g.String(), "switching to directed must not rewrite edges")

	require.NoError(t, g.AddEdge(1, 0, 8))
	assert.Equal(t, "[[0,4],[8,0]]", g.String(), "edges are one-way from now on")
}

func TestGraph_RemoveVertex(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 7))
	require.NoError(t, g.AddEdge(1, 3, 9))
	original := g.String()

	smaller, err := g.RemoveVertex(1)
	require.NoError(t, err)

	// Ids above 1 shift down: old 2 → 1, old 3 → 2.
	assert.Equal(t, 3, smaller.VertexCount())
	assert.Equal(t, "[[0,5,0],[5,0,7],[0,7,0]]", smaller.String())
	assert.Equal(t, original, g.String(), "the source graph must stay untouched")

	_, err = g.RemoveVertex(4)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestGraph_Clear(t *testing.T) {
	g, err := graph.New(2, graph.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))

	g.Clear()

	assert.Equal(t, "[[0,0],[0,0]]", g.String())
	assert.Equal(t, 2, g.VertexCount(), "Clear keeps the vertex count")
	assert.True(t, g.Directed(), "Clear keeps the edge semantics")
}

func TestGraph_SnapshotIsolation(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))

	snap := g.Snapshot()
	require.Equal(t, [][]int64{{0, 4}, {4, 0}}, snap)

	snap[0][1] = 99

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), w, "mutating a snapshot must not leak into the graph")
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "0-1:4", graph.Edge{From: 0, To: 1, Weight: 4}.String())
	assert.Equal(t, "3-10:-2", graph.Edge{From: 3, To: 10, Weight: -2}.String())
}
