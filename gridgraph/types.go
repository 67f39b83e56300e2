package gridgraph

import "fmt"

// Label is the class value stored in a grid cell.
// Segmented masks use 255 for the primary surface and 0 for background,
// but nothing in this package depends on those values.
type Label uint8

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity. It is the default.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Point is an integer (row, col) coordinate into a Grid.
type Point struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point { return Point{Row: row, Col: col} }

// Add returns p translated by the offset d.
func (p Point) Add(d Point) Point { return Point{Row: p.Row + d.Row, Col: p.Col + d.Col} }

// String renders the point as "(row,col)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Options holds construction parameters for a Grid.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option configures Grid construction.
type Option func(*Options)

// DefaultOptions returns Options with Conn8.
func DefaultOptions() Options {
	return Options{Conn: Conn8}
}

// WithConnectivity sets the neighbour set used by Neighbors and Components.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// Grid is a 2D raster of labels.
// Cells[row][col] holds the label of the cell at Point{row, col}.
// NewGrid copies its input; callers must not modify Cells afterwards.
// Grid values are safe for concurrent reads.
type Grid struct {
	Height, Width int
	Cells         [][]Label
	Conn          Connectivity
	offsets       []Point
}
