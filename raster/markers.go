package raster

import (
	"fmt"
	"image"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

const markerLabel gridgraph.Label = 1

// LoadMarkers decodes the marker mask at path and returns the start and
// end markers.
func LoadMarkers(path string, opts Options) (start, end gridgraph.Point, err error) {
	img, err := Decode(path)
	if err != nil {
		return start, end, err
	}

	return MarkersFromImage(img, opts)
}

// MarkersFromImage finds the 8-connected blobs of bright pixels, keeps
// those smaller than MaxArea, and returns their centroids. Blobs are taken
// in row-major order of their first pixel: the upper one is the start.
// Anything other than exactly two qualifying blobs yields ErrMarkerCount.
func MarkersFromImage(img image.Image, opts Options) (start, end gridgraph.Point, err error) {
	pts, err := Blobs(img, opts)
	if err != nil {
		return start, end, err
	}
	if len(pts) != 2 {
		return start, end, fmt.Errorf("%w: found %d", ErrMarkerCount, len(pts))
	}

	return pts[0], pts[1], nil
}

// Blobs returns the centroid of every marker-sized blob in img.
func Blobs(img image.Image, opts Options) ([]gridgraph.Point, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	lum, err := luminance(img, opts.CropBottom)
	if err != nil {
		return nil, err
	}

	cells := make([][]gridgraph.Label, len(lum))
	for r, row := range lum {
		cells[r] = make([]gridgraph.Label, len(row))
		for c, y := range row {
			if y >= opts.MarkerThreshold {
				cells[r][c] = markerLabel
			}
		}
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		return nil, err
	}

	var pts []gridgraph.Point
	for _, comp := range g.Components(gridgraph.LabelIs(markerLabel)) {
		if comp.Area() < opts.MaxArea {
			pts = append(pts, comp.Centroid())
		}
	}

	return pts, nil
}
