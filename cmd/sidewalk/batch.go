package main

import (
	"errors"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/render"
)

// batchFile is the TOML request list:
//
//	[[request]]
//	name  = "school"
//	start = [12, 40]
//	end   = [300, 410]
type batchFile struct {
	Requests []batchRequest `toml:"request"`
}

type batchRequest struct {
	Name  string `toml:"name"`
	Start []int  `toml:"start"`
	End   []int  `toml:"end"`
}

func (r batchRequest) points() (gridgraph.Point, gridgraph.Point, error) {
	if len(r.Start) != 2 || len(r.End) != 2 {
		return gridgraph.Point{}, gridgraph.Point{}, errors.New("start and end must be [row, col]")
	}

	return gridgraph.Pt(r.Start[0], r.Start[1]), gridgraph.Pt(r.End[0], r.End[1]), nil
}

// loadBatch decodes a request file and rejects unknown keys.
func loadBatch(path string) ([]batchRequest, error) {
	var bf batchFile
	md, err := toml.DecodeFile(path, &bf)
	if err != nil {
		return nil, fmt.Errorf("batch file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("batch file: unknown keys %v", undecoded)
	}
	if len(bf.Requests) == 0 {
		return nil, errors.New("batch file: no [[request]] entries")
	}

	return bf.Requests, nil
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		grid    string
		workers int
		report  string
		format  string
		full    bool
	)
	cmd := &cobra.Command{
		Use:   "batch <requests.toml>",
		Short: "Plan many routes on one grid concurrently",
		Long: `Plan every [[request]] of a TOML file against one road mask.
Failed requests are reported, not fatal; results keep the file order.

Example requests.toml:
  [[request]]
  name  = "school"
  start = [12, 40]
  end   = [300, 410]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := loadBatch(args[0])
			if err != nil {
				return err
			}
			g, err := a.loadGrid(grid)
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			reports, err := a.runBatch(cmd, g, reqs, workers, full)
			if err != nil {
				return err
			}

			switch report {
			case "":
				return printBatch(cmd, reports)
			case "-":
				return render.WriteReport(cmd.OutOrStdout(), format, reports)
			default:
				return writeReportFile(report, reports)
			}
		},
	}
	cmd.Flags().StringVar(&grid, "grid", "", "Road mask image (required)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent planners (default from config)")
	cmd.Flags().StringVar(&report, "report", "", "Write a report file (.json, .yaml), or - for stdout")
	cmd.Flags().StringVar(&format, "format", render.FormatYAML, "Report format when --report is -")
	cmd.Flags().BoolVar(&full, "full", false, "Include trunk, waypoints and every segment")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

// runBatch plans every request with at most workers in flight. A failed
// request fills its Report.Error; only cancellation aborts the batch.
func (a *app) runBatch(cmd *cobra.Command, g *gridgraph.Grid, reqs []batchRequest, workers int, full bool) ([]render.Report, error) {
	p, err := a.planner()
	if err != nil {
		return nil, err
	}

	reports := make([]render.Report, len(reqs))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(workers)

	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			rep := render.Report{Name: req.Name}
			start, end, err := req.points()
			if err == nil {
				r, perr := p.Plan(ctx, g, start, end)
				if perr == nil {
					rep = render.NewReport(r, full)
					rep.Name = req.Name
				}
				err = perr
			}
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				rep.Error = userMessage(err)
				a.log.Warn("request failed", slog.String("name", req.Name), slog.Any("error", err))
			}
			reports[i] = rep

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func printBatch(cmd *cobra.Command, reports []render.Report) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTART\tEND\tTRUNK\tCROSSINGS\tERROR")
	for _, r := range reports {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", r.Name, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%d\t%d\t\n", r.Name, r.Start, r.End, r.TrunkLen, r.Crossings)
	}

	return tw.Flush()
}
