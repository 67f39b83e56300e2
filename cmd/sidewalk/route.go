package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sidewalk/render"
	"github.com/katalvlaran/sidewalk/route"
)

type routeFlags struct {
	grid    string
	markers string
	start   string
	end     string
	overlay string
	report  string
	format  string
	full    bool
}

func newRouteCmd(a *app) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan one route and count its road crossings",
		Long: `Plan a route between two markers on a road mask.

Examples:
  sidewalk route --grid road.png --markers target.png
  sidewalk route --grid road.png --start 120,40 --end 300,410 --overlay out.png
  sidewalk route --grid road.png --markers target.png --report - --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runRoute(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.grid, "grid", "", "Road mask image (required)")
	fl.StringVar(&f.markers, "markers", "", "Marker mask image holding exactly two markers")
	fl.StringVar(&f.start, "start", "", "Start marker as row,col")
	fl.StringVar(&f.end, "end", "", "End marker as row,col")
	fl.StringVar(&f.overlay, "overlay", "", "Write a route overlay (.png, .svg, .pdf)")
	fl.StringVar(&f.report, "report", "", "Write a report file (.json, .yaml), or - for stdout")
	fl.StringVar(&f.format, "format", render.FormatJSON, "Report format when --report is -")
	fl.BoolVar(&f.full, "full", false, "Include trunk, waypoints and every segment in the report")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, f *routeFlags) error {
	g, err := a.loadGrid(f.grid)
	if err != nil {
		return err
	}
	start, end, err := a.endpoints(f.markers, f.start, f.end)
	if err != nil {
		return err
	}
	p, err := a.planner()
	if err != nil {
		return err
	}

	r, err := p.Plan(cmd.Context(), g, start, end)
	if err != nil {
		return err
	}

	if f.overlay != "" {
		if err := render.SaveOverlay(f.overlay, g, r, a.cfg.Render); err != nil {
			return err
		}
		a.log.Info("overlay written", slog.String("file", f.overlay))
	}

	out := cmd.OutOrStdout()
	switch f.report {
	case "":
		return printSummary(out, r)
	case "-":
		return render.WriteReport(out, f.format, render.NewReport(r, f.full))
	default:
		return writeReportFile(f.report, render.NewReport(r, f.full))
	}
}

func printSummary(w io.Writer, r *route.Route) error {
	_, err := fmt.Fprintf(w, `request:   %s
start:     %v -> %v
end:       %v -> %v
trunk:     %d points
waypoints: %d
Number of road crossings: %d
`, r.ID, r.RawStart, r.Start, r.RawEnd, r.End, r.Trunk.Len(), len(r.Waypoints), r.Crossings)

	return err
}

func writeReportFile(path string, v any) error {
	format, err := render.FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteReport(fh, format, v); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
