// Package gridgraph treats a 2D raster of class labels as a graph of cells.
//
// What:
//
//   - Grid wraps a rectangular [][]Label raster, deep-copied on construction;
//     callers must not modify Cells once built.
//   - Point is a (Row, Col) coordinate; Path is an ordered run of 8-connected Points.
//   - Neighbors enumerates in-bounds adjacent cells in a fixed order shared by
//     every search built on top of this package.
//   - Components collects contiguous regions of cells matching a label predicate.
//
// Why:
//
//   - Walking routes over segmented map imagery: road vs. sidewalk masks.
//   - Marker detection: small blobs in a marker mask and their centroids.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy).
//   - Neighbors:  O(d), d = 4 or 8.
//   - Components: O(W×H×d) time, O(W×H) memory.
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): neighbour set, Conn8 by default.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrLabelRange: FromInts saw a value outside [0,255].
package gridgraph
