package pathsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/pathsearch"
)

// BenchmarkConstrained_Random measures a corner-to-corner search on a
// 300×300 grid that is 80% road.
func BenchmarkConstrained_Random(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g := randomGrid(b, rng, 300, 300, 0.8)
	from, to := gridgraph.Pt(0, 0), gridgraph.Pt(299, 299)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathsearch.Constrained(g, from, to, road)
	}
}

// BenchmarkUnconstrained_Open measures the unconstrained search on an open grid.
func BenchmarkUnconstrained_Open(b *testing.B) {
	g, err := gridgraph.Filled(300, 300, walk)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathsearch.Unconstrained(g, gridgraph.Pt(0, 0), gridgraph.Pt(299, 150))
	}
}
