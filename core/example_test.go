package core_test

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/core"
)

// ExampleGraph_RemoveNode shows that removing a node drops its edges on both ends.
func ExampleGraph_RemoveNode() {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		g.AddNode(id)
	}
	g.SetEdge("a", "b", 3)
	g.SetEdge("a", "c", 1)

	fmt.Println(g.RemoveNode("a"), g.HasEdge("b", "a"), g.IsolatedNodes())
	// Output: true false [b c]
}

// ExampleGraph_Distance shows the -1 sentinel for missing edges.
func ExampleGraph_Distance() {
	g := core.NewGraph()
	g.AddNode("a")
	g.AddNode("b")
	fmt.Println(g.Distance("a", "b"))
	g.SetEdge("a", "b", 7)
	fmt.Println(g.Distance("b", "a"))
	// Output:
	// -1
	// 7
}
