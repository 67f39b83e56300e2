package gridgraph

// Component is a contiguous region of cells that matched a predicate.
// Cells are listed in BFS discovery order starting from the region's
// top-left-most cell.
type Component struct {
	Cells []Point
}

// Area returns the number of cells in the component.
func (c Component) Area() int { return len(c.Cells) }

// Centroid returns the mean cell position, truncated toward zero.
// An empty component yields the zero Point.
func (c Component) Centroid() Point {
	if len(c.Cells) == 0 {
		return Point{}
	}
	var sr, sc int
	for _, p := range c.Cells {
		sr += p.Row
		sc += p.Col
	}
	n := len(c.Cells)

	return Point{Row: sr / n, Col: sc / n}
}

// Components finds all contiguous regions of cells whose label satisfies
// match, according to g.Conn connectivity.
// Components are returned in row-major order of their first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(match func(Label) bool) []Component {
	seen := make([]bool, g.Size())
	var comps []Component

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if !match(g.Cells[r][c]) {
				continue
			}
			p0 := Point{Row: r, Col: c}
			i0 := g.Index(p0)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []Point{p0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range g.offsets {
					v := u.Add(d)
					if !g.InBounds(v) || !match(g.At(v)) {
						continue
					}
					vi := g.Index(v)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, Component{Cells: queue})
		}
	}

	return comps
}

// LabelIs returns a predicate matching exactly label.
func LabelIs(label Label) func(Label) bool {
	return func(v Label) bool { return v == label }
}
