// Package raster turns pre-segmented mask images into routing inputs.
//
// LoadGrid and GridFromImage threshold an image's luminance into a
// two-class gridgraph.Grid: bright pixels become the surface label, the
// rest background. LoadMarkers and MarkersFromImage find the small bright
// blobs of a marker mask and return their centroids as the two route
// endpoints.
//
// PNG, JPEG and GIF are decoded by the standard library; BMP, TIFF and
// WebP by golang.org/x/image.
package raster
