package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Sentinel errors.
var (
	// ErrDecode indicates the file is not a decodable image.
	ErrDecode = errors.New("raster: cannot decode image")

	// ErrMarkerCount indicates the marker mask did not hold exactly two markers.
	ErrMarkerCount = errors.New("raster: expected exactly two markers")

	// ErrCrop indicates CropBottom leaves no rows.
	ErrCrop = errors.New("raster: crop removes the whole image")

	// ErrOptions indicates invalid Options.
	ErrOptions = errors.New("raster: invalid options")
)

// Defaults.
const (
	DefaultThreshold       uint8 = 128
	DefaultMarkerThreshold uint8 = 128
	DefaultMaxArea               = 500
)

// Options controls how images become grids and markers.
type Options struct {
	// Threshold: pixels with luminance >= Threshold become SurfaceLabel.
	Threshold uint8 `mapstructure:"threshold" json:"threshold" yaml:"threshold"`
	// CropBottom drops this many rows off the bottom before thresholding.
	CropBottom int `mapstructure:"crop_bottom" json:"crop_bottom" yaml:"crop_bottom"`

	SurfaceLabel    gridgraph.Label `mapstructure:"surface_label" json:"surface_label" yaml:"surface_label"`
	BackgroundLabel gridgraph.Label `mapstructure:"background_label" json:"background_label" yaml:"background_label"`

	// MarkerThreshold is the luminance cut for marker masks.
	MarkerThreshold uint8 `mapstructure:"marker_threshold" json:"marker_threshold" yaml:"marker_threshold"`
	// MaxArea: blobs with MaxArea pixels or more are not markers.
	MaxArea int `mapstructure:"max_area" json:"max_area" yaml:"max_area"`
}

// DefaultOptions returns the options matching a 0/255 segmentation mask.
func DefaultOptions() Options {
	return Options{
		Threshold:       DefaultThreshold,
		SurfaceLabel:    255,
		BackgroundLabel: 0,
		MarkerThreshold: DefaultMarkerThreshold,
		MaxArea:         DefaultMaxArea,
	}
}

// Validate checks the options for internal consistency.
func (o Options) Validate() error {
	if o.CropBottom < 0 {
		return fmt.Errorf("%w: crop_bottom %d < 0", ErrOptions, o.CropBottom)
	}
	if o.MaxArea <= 0 {
		return fmt.Errorf("%w: max_area %d <= 0", ErrOptions, o.MaxArea)
	}
	if o.SurfaceLabel == o.BackgroundLabel {
		return fmt.Errorf("%w: surface and background labels are both %d", ErrOptions, o.SurfaceLabel)
	}

	return nil
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return img, nil
}

// LoadGrid decodes the mask at path and thresholds it into a Grid.
func LoadGrid(path string, opts Options, gopts ...gridgraph.Option) (*gridgraph.Grid, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	return GridFromImage(img, opts, gopts...)
}

// GridFromImage thresholds img into a two-class Grid.
func GridFromImage(img image.Image, opts Options, gopts ...gridgraph.Option) (*gridgraph.Grid, error) {
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
			if y >= opts.Threshold {
				cells[r][c] = opts.SurfaceLabel
			} else {
				cells[r][c] = opts.BackgroundLabel
			}
		}
	}

	return gridgraph.NewGrid(cells, gopts...)
}

// luminance converts img to rows of 8-bit gray values, dropping the
// bottom crop rows.
func luminance(img image.Image, crop int) ([][]uint8, error) {
	b := img.Bounds()
	h, w := b.Dy()-crop, b.Dx()
	if h <= 0 || w <= 0 {
		return nil, fmt.Errorf("%w: %dx%d image, crop %d", ErrCrop, b.Dy(), b.Dx(), crop)
	}

	out := make([][]uint8, h)
	for r := 0; r < h; r++ {
		out[r] = make([]uint8, w)
		for c := 0; c < w; c++ {
			out[r][c] = color.GrayModel.Convert(img.At(b.Min.X+c, b.Min.Y+r)).(color.Gray).Y
		}
	}

	return out, nil
}
