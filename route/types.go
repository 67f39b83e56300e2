package route

import (
	"errors"
	"time"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Sentinel errors returned by Plan.
var (
	// ErrNoRoute indicates that no walking route joins the two markers.
	ErrNoRoute = errors.New("route: no route exists between the given points")

	// ErrInvalidEndpoint indicates that a raw marker lies outside the grid.
	ErrInvalidEndpoint = errors.New("route: marker out of grid bounds")

	// ErrEmptyGrid indicates a nil or zero-sized grid.
	ErrEmptyGrid = errors.New("route: grid is empty")
)

// Segment is the crossing analysis between two consecutive waypoints.
type Segment struct {
	From gridgraph.Point `json:"from" yaml:"from"`
	To   gridgraph.Point `json:"to" yaml:"to"`
	// Sidewalk is the background-only path, or Direct when none exists.
	Sidewalk gridgraph.Path `json:"sidewalk,omitempty" yaml:"sidewalk,omitempty"`
	// Direct is the unconstrained path.
	Direct gridgraph.Path `json:"direct,omitempty" yaml:"direct,omitempty"`
	// Forced is set when no sidewalk-only path exists.
	Forced bool `json:"forced" yaml:"forced"`
	// Detour is set when the sidewalk path exceeds the direct path by more than the slack.
	Detour bool `json:"detour" yaml:"detour"`
}

// Crossings returns how many crossing events this segment contributes (0–2).
func (s Segment) Crossings() int {
	n := 0
	if s.Forced {
		n++
	}
	if s.Detour {
		n++
	}

	return n
}

// Route is the outcome of one planning request.
type Route struct {
	// ID correlates log lines and reports for this request.
	ID string `json:"id" yaml:"id"`

	RawStart gridgraph.Point `json:"raw_start" yaml:"raw_start"`
	RawEnd   gridgraph.Point `json:"raw_end" yaml:"raw_end"`
	Start    gridgraph.Point `json:"start" yaml:"start"`
	End      gridgraph.Point `json:"end" yaml:"end"`

	// Trunk is the rendered route on the surface class.
	Trunk gridgraph.Path `json:"trunk" yaml:"trunk"`
	// Waypoints are the kerb points derived from the trunk, deduplicated.
	Waypoints []gridgraph.Point `json:"waypoints" yaml:"waypoints"`
	Segments  []Segment         `json:"segments" yaml:"segments"`
	// Crossings is the number of crossing events over all segments.
	Crossings int `json:"crossings" yaml:"crossings"`

	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed"`
}

// Points returns the trunk path, the geometry a consumer should draw.
func (r *Route) Points() gridgraph.Path {
	return r.Trunk
}
