package graph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlstruct/graph"
)

// ExampleGraph builds a small undirected graph and reads it back.
func ExampleGraph() {
	// 1. Three vertices, undirected by default.
	g, _ := graph.New(3)

	// 2. Wire 0—1 and 1—2; both cells of each pair are written.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)

	fmt.Println(g)
	w, _ := g.Weight(2, 1)
	fmt.Println(w)
	// Output:
	// [[0,1,0],[1,0,2],[0,2,0]]
	// 2
}

// ExampleGraph_BFS walks a 5-ring breadth-first: both ring neighbors of the
// start land in the first layer.
func ExampleGraph_BFS() {
	g, _ := graph.New(5)
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5, 1)
	}

	order, _ := g.BFS(0)
	fmt.Println(order)
	// Output: [0 1 4 2 3]
}

// ExampleGraph_DFS walks the same ring depth-first: pushing neighbors in
// descending id order makes the walk follow ascending ids.
func ExampleGraph_DFS() {
	g, _ := graph.New(5)
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5, 1)
	}

	order, _ := g.DFS(0)
	fmt.Println(order)
	// Output: [0 1 2 3 4]
}

// ExampleGraph_Dijkstra computes shortest distances around the unit ring.
func ExampleGraph_Dijkstra() {
	g, _ := graph.New(5)
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(i, (i+1)%5, 1)
	}

	dist, _ := g.Dijkstra(0)
	fmt.Println(dist)
	// Output: [0 1 2 2 1]
}

// ExampleGraph_PrimMST grows the tree from vertex 0 on a weighted ring; the
// heaviest ring edge 3—4 never joins.
func ExampleGraph_PrimMST() {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 8)
	_ = g.AddEdge(2, 3, 7)
	_ = g.AddEdge(3, 4, 9)
	_ = g.AddEdge(4, 0, 2)

	edges, total, _ := g.PrimMST()
	for _, e := range edges {
		fmt.Println(e)
	}
	fmt.Println("total:", total)
	// Output:
	// 0-4:2
	// 0-1:4
	// 1-2:8
	// 2-3:7
	// total: 21
}

// ExampleGraph_Kruskal picks the same tree in ascending weight order.
func ExampleGraph_Kruskal() {
	g, _ := graph.New(5)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 8)
	_ = g.AddEdge(2, 3, 7)
	_ = g.AddEdge(3, 4, 9)
	_ = g.AddEdge(4, 0, 2)

	edges, total, _ := g.Kruskal()
	for _, e := range edges {
		fmt.Println(e)
	}
	fmt.Println("total:", total)
	// Output:
	// 0-4:2
	// 0-1:4
	// 2-3:7
	// 1-2:8
	// total: 21
}

// ExampleGraph_RemoveVertex shows the contraction: surviving vertices are
// renumbered downward and the source graph stays intact.
func ExampleGraph_RemoveVertex() {
	g, _ := graph.New(3)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 2)

	smaller, _ := g.RemoveVertex(0)
	fmt.Println(smaller)
	fmt.Println(g)
	// Output:
	// [[0,2],[2,0]]
	// [[0,1,0],[1,0,2],[0,2,0]]
}
