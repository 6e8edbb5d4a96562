package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lsaroute/builder"
)

// ExampleBuildGraph builds a four-node ring with letter ids and weight 3.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithExcelColumnIDs(), builder.WithConstantWeight(3)},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s:%d\n", e.A, e.B, e.Weight)
	}
	// Output:
	// A-B:3
	// A-D:3
	// B-C:3
	// C-D:3
}
