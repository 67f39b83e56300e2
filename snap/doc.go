// Package snap moves an arbitrary point onto the nearest grid cell that
// satisfies a class predicate, using breadth-first search.
//
// Two variants share one walker and differ only in the stop predicate:
//
//   - ToSurface stops at the first cell whose label equals the surface label.
//   - ToBoundary stops at the first cell whose label differs from the start's.
//
// The predicate is checked when a cell is dequeued, starting with the start
// cell itself, so a point that already qualifies snaps to a one-element Path.
// Among equal-length paths the first discovered wins. Discovery uses the
// snap order (-1,-1), (-1,0), (0,-1), (1,1), (1,0), (0,1), (1,-1), (-1,1),
// not the grid's row-major Neighbors order, so a cell straight to the left
// beats one diagonally up-right at the same distance.
//
// Complexity:
//
//   - Time:   O(W×H×d) worst case, d = 4 or 8.
//   - Memory: O(W×H) for the visited flags and the parent arena.
//
// Errors:
//
//   - ErrNilGrid       if the grid pointer is nil.
//   - ErrInvalidStart  if the start point is out of bounds.
//   - ErrNoPath        if the frontier empties before the predicate holds.
//     This is an expected outcome, not a failure of the search.
//   - ErrStepLimit     (wrapped together with ErrNoPath) when WithMaxSteps is exceeded.
package snap
