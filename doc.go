// Package sidewalk plans walking routes over a two-class terrain raster
// (road vs. sidewalk) and counts how often the walk must cross the road.
//
// 🚀 What is sidewalk?
//
//	A small grid-routing engine plus the tooling around it:
//		• Grid primitives: labels, points, 8-connected adjacency, components
//		• Snapping: move a marker onto the road, or onto the nearest kerb
//		• Path search: class-constrained and unconstrained weighted search
//		• Route planning: trunk on the road, kerb waypoints, crossing count
//		• Raster I/O: threshold mask images, extract marker blobs
//		• Rendering: plot overlays, JSON/YAML reports
//
// Under the hood the packages stack leaves first:
//
//	gridgraph/    Grid, Point, Label, Path, connected components
//	snap/         breadth-first snapping (surface, boundary, custom predicate)
//	pathsearch/   Constrained / Unconstrained priority search
//	route/        Planner: snap → trunk → waypoints → crossings
//	raster/       mask image → Grid, marker image → endpoints
//	render/       gonum/plot overlay, report encoding
//	config/       viper-backed settings (file, SIDEWALK_* env)
//	logutil/      log/slog construction
//	cmd/sidewalk/ CLI: route, snap, batch, version
//
// Quick ASCII example (# road, . sidewalk, S/E markers):
//
//	S . . . . . . . . .
//	# # # # # # # # # #
//	# # # # # # # # # #
//	. . . . . . . . . E
//
//	Markers on opposite kerbs of a full-width road: one forced crossing.
//
//	go install github.com/katalvlaran/sidewalk/cmd/sidewalk@latest
package sidewalk
