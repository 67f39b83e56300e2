package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/snap"
)

func newSnapCmd(a *app) *cobra.Command {
	var (
		grid     string
		at       string
		boundary bool
	)
	cmd := &cobra.Command{
		Use:   "snap",
		Short: "Snap a point onto the road, or onto the nearest kerb",
		Long: `Move a point to the nearest road cell, or with --boundary to the nearest
cell whose class differs from the point's own.

Examples:
  sidewalk snap --grid road.png --at 10,200
  sidewalk snap --grid road.png --at 55,80 --boundary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGrid(grid)
			if err != nil {
				return err
			}
			p, err := parsePoint(at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}

			opts := []snap.Option{
				snap.WithContext(cmd.Context()),
				snap.WithMaxSteps(a.cfg.Route.SnapMaxSteps),
			}
			var path gridgraph.Path
			if boundary {
				path, err = snap.ToBoundary(g, p, opts...)
			} else {
				path, err = snap.ToSurface(g, p, a.cfg.Route.SurfaceLabel, opts...)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v (%d steps, label %d)\n",
				p, path.Last(), path.Len()-1, g.At(path.Last()))
			return err
		},
	}
	cmd.Flags().StringVar(&grid, "grid", "", "Road mask image (required)")
	cmd.Flags().StringVar(&at, "at", "", "Point as row,col (required)")
	cmd.Flags().BoolVar(&boundary, "boundary", false, "Snap to the nearest cell of the other class")
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
