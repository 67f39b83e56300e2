package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/pathsearch"
)

// Default labels as produced by the mask segmentation.
const (
	DefaultSurfaceLabel    gridgraph.Label = 255
	DefaultBackgroundLabel gridgraph.Label = 0

	// DefaultCrossingSlack is how many points longer a sidewalk-only segment
	// may be than the direct segment before it counts as a crossing.
	DefaultCrossingSlack = 100
)

// ErrBadConfig wraps every Config validation failure.
var ErrBadConfig = errors.New("route: invalid configuration")

// Config tunes a Planner.
type Config struct {
	// SurfaceLabel marks road cells; the trunk route stays on them.
	SurfaceLabel gridgraph.Label `mapstructure:"surface_label" json:"surface_label" yaml:"surface_label"`
	// BackgroundLabel marks sidewalk cells used by the crossing phase.
	BackgroundLabel gridgraph.Label `mapstructure:"background_label" json:"background_label" yaml:"background_label"`
	// LengthWeight is the per-step multiplier in the search cost.
	LengthWeight float64 `mapstructure:"length_weight" json:"length_weight" yaml:"length_weight"`
	// CrossingSlack is the length-disparity threshold of the crossing phase.
	// TODO: decide whether this should scale with raster resolution (zoom level).
	CrossingSlack int `mapstructure:"crossing_slack" json:"crossing_slack" yaml:"crossing_slack"`
	// MaxExpansions caps every path search; 0 means unbounded.
	MaxExpansions int `mapstructure:"max_expansions" json:"max_expansions" yaml:"max_expansions"`
	// SnapMaxSteps caps every snap search; 0 means unbounded.
	SnapMaxSteps int `mapstructure:"snap_max_steps" json:"snap_max_steps" yaml:"snap_max_steps"`
}

// DefaultConfig returns the configuration matching the segmentation defaults.
func DefaultConfig() Config {
	return Config{
		SurfaceLabel:    DefaultSurfaceLabel,
		BackgroundLabel: DefaultBackgroundLabel,
		LengthWeight:    pathsearch.DefaultLengthWeight,
		CrossingSlack:   DefaultCrossingSlack,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.SurfaceLabel == c.BackgroundLabel:
		return fmt.Errorf("%w: surface and background labels must differ (both %d)", ErrBadConfig, c.SurfaceLabel)
	case c.LengthWeight < 0 || math.IsNaN(c.LengthWeight) || math.IsInf(c.LengthWeight, 0):
		return fmt.Errorf("%w: length_weight must be finite and non-negative (%v)", ErrBadConfig, c.LengthWeight)
	case c.CrossingSlack < 0:
		return fmt.Errorf("%w: crossing_slack must be non-negative (%d)", ErrBadConfig, c.CrossingSlack)
	case c.MaxExpansions < 0:
		return fmt.Errorf("%w: max_expansions must be non-negative (%d)", ErrBadConfig, c.MaxExpansions)
	case c.SnapMaxSteps < 0:
		return fmt.Errorf("%w: snap_max_steps must be non-negative (%d)", ErrBadConfig, c.SnapMaxSteps)
	}

	return nil
}
