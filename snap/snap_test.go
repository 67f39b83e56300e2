package snap_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/snap"
)

const (
	road gridgraph.Label = 255
	walk gridgraph.Label = 0
)

// lonelyRoad builds a 5×5 background grid with a single road cell at (2,2).
func lonelyRoad(t *testing.T) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.FromInts([][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 255, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSnap_NilGrid(t *testing.T) {
	_, err := snap.ToSurface(nil, gridgraph.Pt(0, 0), road)
	assert.ErrorIs(t, err, snap.ErrNilGrid)
	_, err = snap.ToBoundary(nil, gridgraph.Pt(0, 0))
	assert.ErrorIs(t, err, snap.ErrNilGrid)
}

func TestSnap_InvalidStart(t *testing.T) {
	g := lonelyRoad(t)
	_, err := snap.ToSurface(g, gridgraph.Pt(5, 0), road)
	assert.ErrorIs(t, err, snap.ErrInvalidStart)
	_, err = snap.ToBoundary(g, gridgraph.Pt(-1, 2))
	assert.ErrorIs(t, err, snap.ErrInvalidStart)
}

func TestSnap_NegativeMaxSteps(t *testing.T) {
	g := lonelyRoad(t)
	_, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road, snap.WithMaxSteps(-1))
	assert.ErrorIs(t, err, snap.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Snap-to-surface
// ------------------------------------------------------------------------

// TestToSurface_DiagonalApproach: the lone road cell is reached in two diagonal steps.
func TestToSurface_DiagonalApproach(t *testing.T) {
	g := lonelyRoad(t)
	path, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road)
	require.NoError(t, err)

	want := gridgraph.Path{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("ToSurface mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, path.Valid())
}

// TestToSurface_Idempotent: a point already on the surface snaps to itself.
func TestToSurface_Idempotent(t *testing.T) {
	g := lonelyRoad(t)
	path, err := snap.ToSurface(g, gridgraph.Pt(2, 2), road)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 2, Col: 2}}, path)
}

// TestToSurface_NoSurface: a single background cell can never reach the road.
func TestToSurface_NoSurface(t *testing.T) {
	g, err := gridgraph.Filled(1, 1, walk)
	require.NoError(t, err)

	path, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road)
	assert.ErrorIs(t, err, snap.ErrNoPath)
	assert.NotErrorIs(t, err, snap.ErrStepLimit)
	assert.Nil(t, path)
}

// TestToSurface_MinimumSteps checks every snap result is a shortest 8-connected walk.
func TestToSurface_MinimumSteps(t *testing.T) {
	g := lonelyRoad(t)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			start := gridgraph.Pt(r, c)
			path, err := snap.ToSurface(g, start, road)
			require.NoError(t, err)
			assert.Equal(t, gridgraph.Pt(2, 2), path.Last())
			assert.Equal(t, start, path.First())
			assert.True(t, path.Valid(), "path %v not connected", path)

			// Chebyshev distance to (2,2) is the step count on an open 8-grid.
			want := max(abs(r-2), abs(c-2)) + 1
			assert.Equal(t, want, path.Len(), "from %v", start)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Snap-to-boundary
// ------------------------------------------------------------------------

func TestToBoundary_Row(t *testing.T) {
	g, err := gridgraph.FromInts([][]int{{0, 0, 0, 0, 255}})
	require.NoError(t, err)

	path, err := snap.ToBoundary(g, gridgraph.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}, path)
}

// TestToBoundary_FromSurface: starting on road, the first non-road cell is the target.
func TestToBoundary_FromSurface(t *testing.T) {
	g, err := gridgraph.FromInts([][]int{
		{255, 255, 255},
		{255, 255, 255},
		{255, 255, 0},
	})
	require.NoError(t, err)

	path, err := snap.ToBoundary(g, gridgraph.Pt(0, 0))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}, path)
}

func TestToBoundary_Uniform(t *testing.T) {
	g, err := gridgraph.Filled(3, 3, road)
	require.NoError(t, err)

	_, err = snap.ToBoundary(g, gridgraph.Pt(1, 1))
	assert.ErrorIs(t, err, snap.ErrNoPath)
}

// ------------------------------------------------------------------------
// 4. Tie-breaking between equally near cells
// ------------------------------------------------------------------------

// TestToSurface_TieLeftBeatsUpRight: road straight left and diagonally up-right
// are both one step away; the left cell is discovered first.
func TestToSurface_TieLeftBeatsUpRight(t *testing.T) {
	g, err := gridgraph.FromInts([][]int{
		{0, 0, 255},
		{255, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	path, err := snap.ToSurface(g, gridgraph.Pt(1, 1), road)
	require.NoError(t, err)
	want := gridgraph.Path{{Row: 1, Col: 1}, {Row: 1, Col: 0}}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("ToSurface mismatch (-want +got):\n%s", diff)
	}
}

// TestToBoundary_TieDownRightBeatsRight: both kerb cells touch the start; the
// down-right diagonal precedes the right-hand cell.
func TestToBoundary_TieDownRightBeatsRight(t *testing.T) {
	g, err := gridgraph.FromInts([][]int{
		{255, 255, 255},
		{255, 255, 0},
		{255, 255, 0},
	})
	require.NoError(t, err)

	path, err := snap.ToBoundary(g, gridgraph.Pt(1, 1))
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 1, Col: 1}, {Row: 2, Col: 2}}, path)
}

// TestToSurface_TieConn4DownBeatsRight: with orthogonal moves only, down is
// tried before right.
func TestToSurface_TieConn4DownBeatsRight(t *testing.T) {
	g, err := gridgraph.FromInts([][]int{
		{0, 0, 0},
		{0, 0, 255},
		{0, 255, 0},
	}, gridgraph.WithConnectivity(gridgraph.Conn4))
	require.NoError(t, err)

	path, err := snap.ToSurface(g, gridgraph.Pt(1, 1), road)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Path{{Row: 1, Col: 1}, {Row: 2, Col: 1}}, path)
}

// ------------------------------------------------------------------------
// 5. Options
// ------------------------------------------------------------------------

func TestSnap_MaxSteps(t *testing.T) {
	g := lonelyRoad(t)
	_, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road, snap.WithMaxSteps(2))
	assert.ErrorIs(t, err, snap.ErrNoPath)
	assert.ErrorIs(t, err, snap.ErrStepLimit)

	path, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road, snap.WithMaxSteps(1000))
	require.NoError(t, err)
	assert.Equal(t, 3, path.Len())
}

func TestSnap_ContextCancelled(t *testing.T) {
	g := lonelyRoad(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road, snap.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnap_OnVisitDepths(t *testing.T) {
	g := lonelyRoad(t)
	depths := map[gridgraph.Point]int{}
	_, err := snap.ToSurface(g, gridgraph.Pt(0, 0), road, snap.WithOnVisit(func(p gridgraph.Point, d int) {
		depths[p] = d
	}))
	require.NoError(t, err)

	assert.Equal(t, 0, depths[gridgraph.Pt(0, 0)])
	assert.Equal(t, 1, depths[gridgraph.Pt(1, 1)])
	assert.Equal(t, 2, depths[gridgraph.Pt(2, 2)])
}

// TestSnap_CustomPredicate stops on a coordinate rather than a label.
func TestSnap_CustomPredicate(t *testing.T) {
	g, err := gridgraph.Filled(4, 4, walk)
	require.NoError(t, err)

	path, err := snap.Snap(g, gridgraph.Pt(0, 0), func(p gridgraph.Point, _ gridgraph.Label) bool {
		return p.Row == 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, path.Last().Row)
	assert.Equal(t, 4, path.Len())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
