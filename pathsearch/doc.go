// Package pathsearch finds walking paths between two grid cells with a
// best-first priority search.
//
// Every discovered cell is scored as
//
//	cost(n) = ‖n − target‖₂ + LengthWeight × len(path to the cell n was reached from)
//
// With the default LengthWeight of 1000 the step count dominates: a path one
// step longer always loses, and the euclidean term only orders candidates of
// equal length by how close their frontier sits to the target. The search
// therefore returns a minimum-step path biased toward the straight line,
// not a geometrically shortest one.
//
// Two entry points share one runner:
//
//   - Constrained only steps onto cells carrying a given label. The target
//     cell is exempt from the label check.
//   - Unconstrained steps onto any in-bounds cell.
//
// Cells are reserved when pushed, not when popped, so each cell enters the
// queue at most once. Entries with equal cost pop in discovery order, which
// makes results deterministic for a given grid and neighbour order.
//
// Complexity:
//
//   - Time:  O(W·H·log(W·H))
//   - Space: O(W·H) for the reservation flags, the parent arena and the heap.
//
// Errors (sentinel):
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrInvalidEndpoint  if from or to is out of bounds.
//   - ErrNoPath           if the queue empties before the target is popped.
//   - ErrStepLimit        (with ErrNoPath) if WithMaxExpansions is exceeded.
//   - ErrOptionViolation  for negative weights or caps.
package pathsearch
