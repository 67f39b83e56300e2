package pathsearch

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrInvalidEndpoint indicates that from or to lies outside the grid.
	ErrInvalidEndpoint = errors.New("pathsearch: endpoint out of bounds")

	// ErrNoPath indicates that the target is unreachable under the filter.
	ErrNoPath = errors.New("pathsearch: no path found")

	// ErrStepLimit marks an ErrNoPath caused by WithMaxExpansions.
	ErrStepLimit = errors.New("pathsearch: expansion limit reached")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("pathsearch: invalid option supplied")
)

// DefaultLengthWeight is the multiplier on path length in the cost formula.
const DefaultLengthWeight = 1000.0

// Options configures the behavior of a search.
//
// LengthWeight  – multiplier on the current path length. Must be ≥ 0.
// MaxExpansions – if > 0, the number of popped cells after which the search gives up.
type Options struct {
	Ctx           context.Context
	LengthWeight  float64
	MaxExpansions int

	// OnExpand is called for each popped cell with its cost.
	OnExpand func(p gridgraph.Point, cost float64)

	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options initialized with sensible defaults.
//
// Defaults:
//   - Ctx:           context.Background().
//   - LengthWeight:  DefaultLengthWeight (1000).
//   - MaxExpansions: 0 (no cap).
//   - OnExpand:      no-op.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		LengthWeight:  DefaultLengthWeight,
		MaxExpansions: 0,
		OnExpand:      func(gridgraph.Point, float64) {},
	}
}

// WithContext sets a context checked once per expansion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLengthWeight overrides the path-length multiplier.
// Negative, NaN or infinite values are recorded as ErrOptionViolation.
func WithLengthWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			o.err = fmt.Errorf("%w: LengthWeight must be a finite non-negative number (%v)", ErrOptionViolation, w)
			return
		}
		o.LengthWeight = w
	}
}

// WithMaxExpansions caps the number of cells popped from the queue.
// Zero disables the cap; negative values are recorded as ErrOptionViolation.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every popped cell.
func WithOnExpand(fn func(p gridgraph.Point, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
