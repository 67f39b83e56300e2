package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// BenchmarkComponents measures Components on a random 1000×1000 two-label grid.
// Complexity: O(W×H×d)
func BenchmarkComponents(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for r := 0; r < n; r++ {
		row := make([]int, n)
		for c := 0; c < n; c++ {
			if rng.Intn(4) == 0 {
				row[c] = 255
			}
		}
		values[r] = row
	}
	g, err := gridgraph.FromInts(values)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}
	match := gridgraph.LabelIs(255)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components(match)
	}
}
