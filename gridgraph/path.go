package gridgraph

// Path is an ordered run of Points from a start to an end, both inclusive.
// A well-formed Path has no repeated consecutive points and every step
// moves at most one cell along each axis.
type Path []Point

// First returns the first point. It panics on an empty path.
func (p Path) First() Point { return p[0] }

// Last returns the final point. It panics on an empty path.
func (p Path) Last() Point { return p[len(p)-1] }

// Len returns the number of points.
func (p Path) Len() int { return len(p) }

// Valid reports whether every consecutive pair is a single 8-connected step.
// Empty and single-point paths are valid.
func (p Path) Valid() bool {
	for i := 1; i < len(p); i++ {
		if !Adjacent(p[i-1], p[i]) {
			return false
		}
	}

	return true
}

// Contains reports whether q appears anywhere on the path.
func (p Path) Contains(q Point) bool {
	for _, v := range p {
		if v == q {
			return true
		}
	}

	return false
}

// Adjacent reports whether a and b are distinct and differ by at most one
// along each axis.
func Adjacent(a, b Point) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr == 0 && dc == 0 {
		return false
	}

	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Dedup returns the points of pts with later repeats removed, keeping the
// order of first occurrence. The input is not modified.
func Dedup(pts []Point) []Point {
	seen := make(map[Point]struct{}, len(pts))
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
