package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/route"
)

// ErrFormat indicates an output format the renderer does not produce.
var ErrFormat = errors.New("render: unsupported format")

// ErrNilInput indicates a nil grid or route.
var ErrNilInput = errors.New("render: nil grid or route")

// Image formats accepted by SaveOverlay and WriteOverlay.
var imageFormats = map[string]bool{"png": true, "svg": true, "pdf": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true}

// Options controls the overlay drawing.
type Options struct {
	// Width of the output in inches; the height follows the grid aspect.
	Width float64 `mapstructure:"width" json:"width" yaml:"width"`
	// LineWidth of the trunk in points.
	LineWidth float64 `mapstructure:"line_width" json:"line_width" yaml:"line_width"`
	// Waypoints adds the kerb waypoints as small dots.
	Waypoints bool   `mapstructure:"waypoints" json:"waypoints" yaml:"waypoints"`
	Title     string `mapstructure:"title" json:"title" yaml:"title"`
}

// DefaultOptions returns an 8-inch wide overlay with a 2pt trunk.
func DefaultOptions() Options {
	return Options{Width: 8, LineWidth: 2}
}

var (
	trunkColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	startColor = color.RGBA{G: 160, B: 60, A: 255}
	endColor   = color.RGBA{R: 30, G: 80, B: 220, A: 255}
	kerbColor  = color.RGBA{R: 250, G: 180, A: 255}
)

// Overlay builds a plot of g as a gray heat map with the trunk of r drawn
// on top and the snapped endpoints marked.
func Overlay(g *gridgraph.Grid, r *route.Route, opts Options) (*plot.Plot, error) {
	if g == nil || r == nil {
		return nil, ErrNilInput
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()

	hm := plotter.NewHeatMap(gridXYZ{g}, grayRamp{})
	hm.Min, hm.Max = 0, 255
	hm.Rasterized = true
	p.Add(hm)

	if r.Trunk.Len() > 0 {
		line, err := plotter.NewLine(toXYs(g, r.Trunk))
		if err != nil {
			return nil, fmt.Errorf("render: trunk: %w", err)
		}
		line.Color = trunkColor
		line.Width = vg.Points(opts.LineWidth)
		p.Add(line)
		p.Legend.Add("route", line)
	}

	if opts.Waypoints && len(r.Waypoints) > 0 {
		kerb, err := plotter.NewScatter(toXYs(g, r.Waypoints))
		if err != nil {
			return nil, fmt.Errorf("render: waypoints: %w", err)
		}
		kerb.GlyphStyle = draw.GlyphStyle{Color: kerbColor, Radius: vg.Points(1.5), Shape: draw.CircleGlyph{}}
		p.Add(kerb)
	}

	for _, m := range []struct {
		name  string
		at    gridgraph.Point
		color color.Color
		shape draw.GlyphDrawer
	}{
		{"start", r.Start, startColor, draw.PyramidGlyph{}},
		{"end", r.End, endColor, draw.BoxGlyph{}},
	} {
		sc, err := plotter.NewScatter(toXYs(g, []gridgraph.Point{m.at}))
		if err != nil {
			return nil, fmt.Errorf("render: %s marker: %w", m.name, err)
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: m.color, Radius: vg.Points(4), Shape: m.shape}
		p.Add(sc)
		p.Legend.Add(m.name, sc)
	}
	p.Legend.Top = true

	return p, nil
}

// SaveOverlay draws the overlay to path; the extension picks the format.
func SaveOverlay(path string, g *gridgraph.Grid, r *route.Route, opts Options) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !imageFormats[format] {
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
	p, err := Overlay(g, r, opts)
	if err != nil {
		return err
	}
	w, h := size(g, opts)
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// WriteOverlay draws the overlay to w in the given image format.
func WriteOverlay(w io.Writer, format string, g *gridgraph.Grid, r *route.Route, opts Options) error {
	format = strings.ToLower(format)
	if !imageFormats[format] {
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
	p, err := Overlay(g, r, opts)
	if err != nil {
		return err
	}
	width, height := size(g, opts)
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

func size(g *gridgraph.Grid, opts Options) (vg.Length, vg.Length) {
	width := opts.Width
	if width <= 0 {
		width = DefaultOptions().Width
	}
	w := vg.Length(width) * vg.Inch

	return w, w * vg.Length(g.Height) / vg.Length(g.Width)
}

// toXYs maps grid points to plot space: column on X, row flipped on Y so
// row 0 sits at the top.
func toXYs(g *gridgraph.Grid, pts []gridgraph.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: float64(pt.Col), Y: float64(g.Height - 1 - pt.Row)}
	}

	return xys
}

// gridXYZ adapts a Grid to plotter.GridXYZ.
type gridXYZ struct{ g *gridgraph.Grid }

func (x gridXYZ) Dims() (c, r int) { return x.g.Width, x.g.Height }

func (x gridXYZ) Z(c, r int) float64 {
	return float64(x.g.Cells[x.g.Height-1-r][c])
}

func (x gridXYZ) X(c int) float64 { return float64(c) }

func (x gridXYZ) Y(r int) float64 { return float64(r) }

// grayRamp maps label 0 to dark gray and 255 to near white.
type grayRamp struct{}

func (grayRamp) Colors() []color.Color {
	cs := make([]color.Color, 256)
	for i := range cs {
		y := uint8(60 + i*180/255)
		cs[i] = color.Gray{Y: y}
	}

	return cs
}
