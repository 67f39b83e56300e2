package snap

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sidewalk/gridgraph"
)

// Sentinel errors for snap execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("snap: grid is nil")

	// ErrInvalidStart is returned when the start point lies outside the grid.
	ErrInvalidStart = errors.New("snap: start point out of bounds")

	// ErrNoPath is returned when no reachable cell satisfies the predicate.
	ErrNoPath = errors.New("snap: no cell satisfies the predicate")

	// ErrStepLimit marks an ErrNoPath caused by WithMaxSteps rather than exhaustion.
	ErrStepLimit = errors.New("snap: step limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("snap: invalid option supplied")
)

// Predicate decides whether the walker may stop at a cell.
// It receives the candidate point and its label.
type Predicate func(p gridgraph.Point, label gridgraph.Label) bool

// Option configures snap behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize a snap search.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued cell.
	Ctx context.Context

	// MaxSteps, if > 0, caps the number of dequeued cells.
	// Exceeding it reports ErrNoPath wrapped with ErrStepLimit.
	MaxSteps int

	// OnVisit is called for each dequeued cell with its BFS depth.
	OnVisit func(p gridgraph.Point, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no step cap
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnVisit:  func(gridgraph.Point, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps caps the number of cells the walker dequeues.
//
//	n > 0: limit to n cells
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(p gridgraph.Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
