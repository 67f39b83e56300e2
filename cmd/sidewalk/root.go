package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sidewalk/config"
	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/raster"
	"github.com/katalvlaran/sidewalk/route"
)

// app is the state shared by every subcommand after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sidewalk",
		Short: "Plan sidewalk routes over a segmented road mask",
		Long: `sidewalk snaps two markers onto a road mask, finds a route along the road,
shifts it onto the neighbouring sidewalk and reports how many times the
walk has to cross the road.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate("sidewalk version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (default: ./sidewalk.{yaml,toml,json} if present)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error, silent")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newRouteCmd(a),
		newSnapCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads the config and applies flag overrides before building the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.log, err = cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.File != "" {
		a.log.Debug("config loaded", slog.String("file", cfg.File))
	}

	return nil
}

func (a *app) planner() (*route.Planner, error) {
	return route.NewPlanner(a.cfg.Route, route.WithLogger(a.log))
}

func (a *app) loadGrid(path string) (*gridgraph.Grid, error) {
	g, err := raster.LoadGrid(path, a.cfg.Raster)
	if err != nil {
		return nil, err
	}
	a.log.Debug("grid loaded", slog.String("file", path),
		slog.Int("height", g.Height), slog.Int("width", g.Width),
		slog.Int("surface_cells", g.Count(a.cfg.Route.SurfaceLabel)))

	return g, nil
}

// endpoints resolves the route endpoints from either a marker image or
// explicit row,col flags.
func (a *app) endpoints(markers, start, end string) (gridgraph.Point, gridgraph.Point, error) {
	var zero gridgraph.Point
	switch {
	case markers != "" && (start != "" || end != ""):
		return zero, zero, errors.New("use either --markers or --start/--end, not both")
	case markers != "":
		return raster.LoadMarkers(markers, a.cfg.Raster)
	case start == "" || end == "":
		return zero, zero, errors.New("need --markers or both --start and --end")
	}
	s, err := parsePoint(start)
	if err != nil {
		return zero, zero, fmt.Errorf("--start: %w", err)
	}
	e, err := parsePoint(end)
	if err != nil {
		return zero, zero, fmt.Errorf("--end: %w", err)
	}

	return s, e, nil
}

// parsePoint reads "row,col".
func parsePoint(s string) (gridgraph.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return gridgraph.Point{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("col: %w", err)
	}

	return gridgraph.Pt(row, col), nil
}

// userMessage maps domain errors onto the text printed by main.
func userMessage(err error) string {
	if errors.Is(err, route.ErrNoRoute) {
		return "no route exists between the given points"
	}

	return err.Error()
}
