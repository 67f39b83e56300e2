package pathsearch_test

import (
	"fmt"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/pathsearch"
)

// ExampleConstrained routes along a sidewalk strip that bends around a road.
// Scenario:
//
//   - 0 = sidewalk, 255 = road
//   - Constrained to label 0, the walk must go round the road block.
//   - Unconstrained simply walks across it.
func ExampleConstrained() {
	g, _ := gridgraph.FromInts([][]int{
		{0, 0, 0, 0, 0},
		{0, 255, 255, 255, 0},
		{0, 255, 255, 255, 0},
	})

	side, _ := pathsearch.Constrained(g, gridgraph.Pt(2, 0), gridgraph.Pt(2, 4), 0)
	direct, _ := pathsearch.Unconstrained(g, gridgraph.Pt(2, 0), gridgraph.Pt(2, 4))
	fmt.Println("sidewalk:", side)
	fmt.Println("direct:  ", direct)
	// Output:
	// sidewalk: [(2,0) (1,0) (0,1) (0,2) (0,3) (1,4) (2,4)]
	// direct:   [(2,0) (2,1) (2,2) (2,3) (2,4)]
}
