package gridgraph

var (
	offsets8 = []Point{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	offsets4 = []Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of labels.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(cells [][]Label, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// One backing array keeps rows contiguous.
	backing := make([]Label, h*w)
	copied := make([][]Label, h)
	for r := 0; r < h; r++ {
		copied[r] = backing[r*w : (r+1)*w : (r+1)*w]
		copy(copied[r], cells[r])
	}

	return newGrid(copied, o), nil
}

// FromInts builds a Grid from plain ints, the shape most test fixtures and
// decoded masks arrive in. Values must lie in [0,255].
func FromInts(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Label, len(values))
	for r, row := range values {
		cells[r] = make([]Label, len(row))
		for c, v := range row {
			if v < 0 || v > 255 {
				return nil, ErrLabelRange
			}
			cells[r][c] = Label(v)
		}
	}

	return NewGrid(cells, opts...)
}

// Filled returns a height×width Grid with every cell set to label.
// Non-positive dimensions yield ErrEmptyGrid.
func Filled(height, width int, label Label, opts ...Option) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrEmptyGrid
	}
	backing := make([]Label, height*width)
	for i := range backing {
		backing[i] = label
	}
	cells := make([][]Label, height)
	for r := range cells {
		cells[r] = backing[r*width : (r+1)*width : (r+1)*width]
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newGrid(cells, o), nil
}

func newGrid(cells [][]Label, o Options) *Grid {
	offs := offsets8
	if o.Conn == Conn4 {
		offs = offsets4
	}

	return &Grid{
		Height:  len(cells),
		Width:   len(cells[0]),
		Cells:   cells,
		Conn:    o.Conn,
		offsets: offs,
	}
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the label at p. The caller must ensure InBounds(p).
func (g *Grid) At(p Point) Label {
	return g.Cells[p.Row][p.Col]
}

// Offsets returns the neighbour offsets in enumeration order.
// The slice is shared; callers must not modify it.
func (g *Grid) Offsets() []Point {
	return g.offsets
}

// Neighbors appends the in-bounds neighbours of p to buf and returns it.
// Order follows Offsets; out-of-range neighbours are dropped silently.
// Passing buf[:0] from a previous call avoids allocation in tight loops.
func (g *Grid) Neighbors(p Point, buf []Point) []Point {
	for _, d := range g.offsets {
		q := p.Add(d)
		if g.InBounds(q) {
			buf = append(buf, q)
		}
	}

	return buf
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.Height * g.Width
}

// Count returns how many cells carry label.
func (g *Grid) Count(label Label) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == label {
				n++
			}
		}
	}

	return n
}
