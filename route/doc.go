// Package route plans a walking route between two raw markers on a
// road/sidewalk label grid and counts how often the walk must cross the road.
//
// A Planner runs four phases per request:
//
//  1. Snap:      both markers are pulled onto the nearest road cell.
//  2. Trunk:     a road-constrained search joins the snapped endpoints.
//                This is the route that is returned and rendered.
//  3. Waypoints: every trunk step is re-searched and each resulting point is
//                pushed to the nearest cell of the other class (the kerb),
//                then duplicates are dropped keeping first occurrences.
//  4. Crossings: consecutive waypoints are joined by a sidewalk-only search
//                and an unconstrained one. A missing sidewalk path counts as a
//                crossing; so does a sidewalk path more than CrossingSlack
//                points longer than the direct one. Both may fire at once.
//
// Only a failure in phases 1–2 is fatal (ErrNoRoute). Failures inside
// phases 3–4 are absorbed per segment.
package route
