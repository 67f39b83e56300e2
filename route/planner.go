package route

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/pathsearch"
	"github.com/katalvlaran/sidewalk/snap"
)

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithIDGenerator replaces the uuid request-ID source, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(p *Planner) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// Planner turns raw markers into a Route. It holds no per-request state and
// is safe for concurrent use.
type Planner struct {
	cfg   Config
	log   *slog.Logger
	newID func() string
}

// NewPlanner validates cfg and returns a Planner.
func NewPlanner(cfg Config, opts ...Option) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Planner{
		cfg:   cfg,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Config returns the planner's configuration.
func (p *Planner) Config() Config {
	return p.cfg
}

// Plan computes the route between rawStart and rawEnd on g.
// Returns ErrEmptyGrid, ErrInvalidEndpoint for bad input, ErrNoRoute
// (wrapping the underlying search error) when either endpoint cannot reach
// the surface or the trunk search fails, or ctx.Err() on cancellation.
func (p *Planner) Plan(ctx context.Context, g *gridgraph.Grid, rawStart, rawEnd gridgraph.Point) (*Route, error) {
	if g == nil || g.Height == 0 || g.Width == 0 {
		return nil, ErrEmptyGrid
	}
	for _, m := range []gridgraph.Point{rawStart, rawEnd} {
		if !g.InBounds(m) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrInvalidEndpoint, m, g.Height, g.Width)
		}
	}

	began := time.Now()
	r := &Route{ID: p.newID(), RawStart: rawStart, RawEnd: rawEnd}
	log := p.log.With(slog.String("request_id", r.ID))
	log.Info("planning route",
		slog.Any("raw_start", rawStart), slog.Any("raw_end", rawEnd),
		slog.Int("height", g.Height), slog.Int("width", g.Width))

	var err error
	if r.Start, err = p.snapEndpoint(ctx, g, rawStart); err != nil {
		return nil, p.fail(ctx, log, "snap start", err)
	}
	if r.End, err = p.snapEndpoint(ctx, g, rawEnd); err != nil {
		return nil, p.fail(ctx, log, "snap end", err)
	}
	log.Debug("snapped endpoints", slog.Any("start", r.Start), slog.Any("end", r.End))

	r.Trunk, err = pathsearch.Constrained(g, r.Start, r.End, p.cfg.SurfaceLabel, p.searchOpts(ctx)...)
	if err != nil {
		return nil, p.fail(ctx, log, "trunk", err)
	}
	log.Debug("trunk found", slog.Int("points", r.Trunk.Len()))

	if r.Waypoints, err = p.waypoints(ctx, log, g, r.Trunk); err != nil {
		return nil, err
	}
	log.Debug("waypoints refined", slog.Int("waypoints", len(r.Waypoints)))

	if r.Segments, r.Crossings, err = p.crossings(ctx, log, g, r.Waypoints); err != nil {
		return nil, err
	}

	r.Elapsed = time.Since(began)
	log.Info("route planned",
		slog.Int("trunk_points", r.Trunk.Len()),
		slog.Int("segments", len(r.Segments)),
		slog.Int("crossings", r.Crossings),
		slog.Duration("elapsed", r.Elapsed))

	return r, nil
}

// snapEndpoint moves a raw marker onto the surface.
func (p *Planner) snapEndpoint(ctx context.Context, g *gridgraph.Grid, m gridgraph.Point) (gridgraph.Point, error) {
	path, err := snap.ToSurface(g, m, p.cfg.SurfaceLabel, p.snapOpts(ctx)...)
	if err != nil {
		return gridgraph.Point{}, err
	}

	return path.Last(), nil
}

// waypoints re-searches every trunk step and maps each point to the
// nearest cell of the other class. Failed sub-searches are skipped.
func (p *Planner) waypoints(ctx context.Context, log *slog.Logger, g *gridgraph.Grid, trunk gridgraph.Path) ([]gridgraph.Point, error) {
	var mapped []gridgraph.Point
	for i := 1; i < trunk.Len(); i++ {
		seg, err := pathsearch.Constrained(g, trunk[i-1], trunk[i], p.cfg.SurfaceLabel, p.searchOpts(ctx)...)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.Debug("waypoint segment skipped", slog.Int("step", i), slog.Any("error", err))
			continue
		}
		for _, pt := range seg {
			kerb, err := snap.ToBoundary(g, pt, p.snapOpts(ctx)...)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				log.Debug("boundary snap skipped", slog.Any("point", pt), slog.Any("error", err))
				continue
			}
			mapped = append(mapped, kerb.Last())
		}
	}

	return gridgraph.Dedup(mapped), nil
}

// crossings joins consecutive waypoints and counts crossing events.
func (p *Planner) crossings(ctx context.Context, log *slog.Logger, g *gridgraph.Grid, wps []gridgraph.Point) ([]Segment, int, error) {
	segs := make([]Segment, 0, max(len(wps)-1, 0))
	total := 0
	for i := 1; i < len(wps); i++ {
		s := Segment{From: wps[i-1], To: wps[i]}

		sidewalk, errSide := pathsearch.Constrained(g, s.From, s.To, p.cfg.BackgroundLabel, p.searchOpts(ctx)...)
		direct, errDirect := pathsearch.Unconstrained(g, s.From, s.To, p.searchOpts(ctx)...)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, ctxErr
		}

		if errSide != nil {
			sidewalk = direct
			s.Forced = true
		}
		// Without a direct path there is nothing to compare against.
		if errDirect == nil && direct.Len() < sidewalk.Len()-p.cfg.CrossingSlack {
			s.Detour = true
		}
		s.Sidewalk, s.Direct = sidewalk, direct

		if n := s.Crossings(); n > 0 {
			log.Debug("crossing detected",
				slog.Any("from", s.From), slog.Any("to", s.To),
				slog.Bool("forced", s.Forced), slog.Bool("detour", s.Detour),
				slog.Int("sidewalk_len", sidewalk.Len()), slog.Int("direct_len", direct.Len()))
			total += n
		}
		segs = append(segs, s)
	}

	return segs, total, nil
}

// fail converts a phase 1–2 error into the caller-facing error.
func (p *Planner) fail(ctx context.Context, log *slog.Logger, phase string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		log.Warn("planning cancelled", slog.String("phase", phase))
		return ctxErr
	}
	log.Warn("no route", slog.String("phase", phase), slog.Any("error", err))

	return fmt.Errorf("%w: %s: %w", ErrNoRoute, phase, err)
}

func (p *Planner) searchOpts(ctx context.Context) []pathsearch.Option {
	return []pathsearch.Option{
		pathsearch.WithContext(ctx),
		pathsearch.WithLengthWeight(p.cfg.LengthWeight),
		pathsearch.WithMaxExpansions(p.cfg.MaxExpansions),
	}
}

func (p *Planner) snapOpts(ctx context.Context) []snap.Option {
	return []snap.Option{
		snap.WithContext(ctx),
		snap.WithMaxSteps(p.cfg.SnapMaxSteps),
	}
}
