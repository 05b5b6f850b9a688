package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/grafsm/core"
	"github.com/katalvlaran/grafsm/traverse"
)

// ExampleBFS walks a diamond graph and reports discovery order.
func ExampleBFS() {
	g := core.NewDirected()
	a, b, c, d := g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()
	for _, uv := range [][2]core.Vertex{{a, b}, {a, c}, {b, d}, {c, d}} {
		if _, err := g.AddEdge(uv[0], uv[1]); err != nil {
			fmt.Println(err)

			return
		}
	}

	vis := traverse.VisitorFuncs{
		Discover: func(v core.Vertex) error {
			fmt.Print(v, " ")

			return nil
		},
	}
	if err := traverse.BFS(g, a, vis); err != nil {
		fmt.Println(err)

		return
	}
	// Output: 0 1 2 3
}
