package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/viz"
)

type plotFlags struct {
	plot   bool
	width  int
	height int
}

func addPlotFlags(cmd *cobra.Command, p *plotFlags) {
	cmd.Flags().BoolVar(&p.plot, "plot", true, "draw a terminal plot")
	cmd.Flags().IntVar(&p.width, "width", 80, "plot width")
	cmd.Flags().IntVar(&p.height, "height", 15, "plot height")
}

func (a *app) runCmd() *cobra.Command {
	var (
		s  scenario
		pf plotFlags
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "integrate the model with one scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}

			out, err := experiment.New(cfg, experiment.WithLogger(a.logger)).Run()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			tr := out.Trajectory
			t, p, d := tr.Final()
			fmt.Fprintf(w, "scheme %s, h=%g, %d samples in %v\n\n", tr.Scheme, tr.H, tr.Len(), out.Elapsed)

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "QUANTITY\tVALUE")
			fmt.Fprintf(tw, "final t\t%.4f\n", t)
			fmt.Fprintf(tw, "final P\t%.4f\n", p)
			fmt.Fprintf(tw, "final D\t%.4f\n", d)
			fmt.Fprintf(tw, "equilibrium\t(%.4f, %.4f)\n", out.Equilibrium.P, out.Equilibrium.D)
			tw.Flush()
			fmt.Fprintln(w)
			printMetrics(w, out.Metrics)

			if pf.plot {
				fmt.Fprintln(w)
				fmt.Fprintln(w, viz.PlotTrajectory(tr, pf.width, pf.height))
			}
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	addPlotFlags(cmd, &pf)
	return cmd
}

func printMetrics(w io.Writer, metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%.6g\n", name, metrics[name])
	}
	tw.Flush()
}
