package graph_test

import (
	"fmt"

	"github.com/TiagoCavalcante/const-graphs/graph"
)

// breadthFirst returns a fewest-hop path from start to goal, or nil when
// goal is unreachable. It is written entirely against the public API to
// show how a traversal builds on Edges without the package shipping one.
func breadthFirst(g *graph.Graph, start, goal int) []int {
	// parent doubles as the visited set: -1 marks unseen.
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := []int{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == goal {
			return walkBack(parent, start, goal)
		}

		row, err := g.Edges(curr)
		if err != nil {
			return nil
		}
		row.Do(func(target int, present bool) bool {
			if present && parent[target] < 0 {
				parent[target] = curr
				queue = append(queue, target)
			}

			return true
		})
	}

	return nil
}

// breadthFirstWeighted is the WeightedGraph twin of breadthFirst; hop
// counts decide the path, weights ride along unread.
func breadthFirstWeighted(g *graph.WeightedGraph, start, goal int) []int {
	parent := make([]int, g.Size())
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	queue := []int{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == goal {
			return walkBack(parent, start, goal)
		}

		row, err := g.Edges(curr)
		if err != nil {
			return nil
		}
		for target, cell := range row {
			if cell.Present && parent[target] < 0 {
				parent[target] = curr
				queue = append(queue, target)
			}
		}
	}

	return nil
}

// walkBack rebuilds start..goal from parent links.
func walkBack(parent []int, start, goal int) []int {
	path := []int{goal}
	for v := goal; v != start; v = parent[v] {
		path = append(path, parent[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// ExampleGraph wires a 4-vertex chain 0→1→2→3 and walks it: first through
// Neighbors, then with the breadth-first helper above.
func ExampleGraph() {
	g, _ := graph.New(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	n0, _ := g.Neighbors(0)
	n1, _ := g.Neighbors(1)
	fmt.Println(n0, n1)
	fmt.Println(breadthFirst(g, 0, 3))
	// Output:
	// [1] [2]
	// [0 1 2 3]
}

// ExampleGraph_Edges demonstrates the copy-free row view: the Row obtained
// before any mutation tracks every later edit.
func ExampleGraph_Edges() {
	g, _ := graph.New(8)
	row, _ := g.Edges(2)

	_ = g.AddEdge(2, 5)
	fmt.Println(row.At(5))

	_ = g.RemoveEdge(2, 5)
	fmt.Println(row.At(5))
	// Output:
	// true
	// false
}

// ExampleGraph_Density fills a 4-cycle both ways and reads the aggregates.
func ExampleGraph_Density() {
	g, _ := graph.New(4)
	_ = g.AddEdgeUndirected(0, 1)
	_ = g.AddEdgeUndirected(1, 2)
	_ = g.AddEdgeUndirected(2, 3)

	fmt.Println(g.EdgeCount(), "of", g.MaxEdgeCount(), "edges, density", g.Density())
	// Output:
	// 6 of 12 edges, density 0.5
}

// ExampleWeightedGraph stores one directed weighted edge and reads both
// directions through the comma-ok Weight query.
func ExampleWeightedGraph() {
	g, _ := graph.NewWeighted(3)
	_ = g.AddEdge(0, 1, 7)

	if w, ok, _ := g.Weight(0, 1); ok {
		fmt.Println("0->1 weighs", w)
	}
	_, ok, _ := g.Weight(1, 0)
	fmt.Println("1->0 present:", ok)
	// Output:
	// 0->1 weighs 7
	// 1->0 present: false
}

// ExampleWeightedGraph_breadthFirst runs the weighted traversal twin over a
// small undirected network.
func ExampleWeightedGraph_breadthFirst() {
	g, _ := graph.NewWeighted(5)
	_ = g.AddEdgeUndirected(0, 1, 4)
	_ = g.AddEdgeUndirected(1, 2, 1)
	_ = g.AddEdgeUndirected(2, 4, 2.5)
	_ = g.AddEdgeUndirected(0, 3, 8)

	fmt.Println(breadthFirstWeighted(g, 0, 4))
	// Output:
	// [0 1 2 4]
}
