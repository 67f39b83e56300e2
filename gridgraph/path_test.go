package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

func TestPath_Valid(t *testing.T) {
	cases := []struct {
		name string
		path gridgraph.Path
		want bool
	}{
		{"Empty", nil, true},
		{"Single", gridgraph.Path{{0, 0}}, true},
		{"Diagonal", gridgraph.Path{{0, 0}, {1, 1}, {2, 2}}, true},
		{"Jump", gridgraph.Path{{0, 0}, {0, 2}}, false},
		{"Repeat", gridgraph.Path{{0, 0}, {0, 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.path.Valid())
		})
	}
}

func TestPath_Accessors(t *testing.T) {
	p := gridgraph.Path{{0, 0}, {0, 1}, {1, 2}}
	assert.Equal(t, gridgraph.Pt(0, 0), p.First())
	assert.Equal(t, gridgraph.Pt(1, 2), p.Last())
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Contains(gridgraph.Pt(0, 1)))
	assert.False(t, p.Contains(gridgraph.Pt(1, 1)))
}

// TestDedup keeps the first occurrence of each point in order.
func TestDedup(t *testing.T) {
	in := []gridgraph.Point{{1, 1}, {0, 0}, {1, 1}, {2, 2}, {0, 0}}
	got := gridgraph.Dedup(in)
	assert.Equal(t, []gridgraph.Point{{1, 1}, {0, 0}, {2, 2}}, got)
	assert.Len(t, in, 5, "input must not be modified")
}
