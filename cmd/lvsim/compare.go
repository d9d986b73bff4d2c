package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/metrics"
	"github.com/san-kum/lvsim/internal/viz"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		s    scenario
		pf   plotFlags
		rows int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "run euler and rk4 side by side on the same grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}

			c, err := experiment.New(cfg, experiment.WithLogger(a.logger)).Compare()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, viz.ComparisonTable(c, rows))
			fmt.Fprintf(w, "invariant drift  euler %.3g  rk4 %.3g\n",
				c.Euler.Metrics[metrics.InvariantDriftName], c.RK4.Metrics[metrics.InvariantDriftName])

			if pf.plot {
				fmt.Fprintln(w)
				fmt.Fprintln(w, viz.PlotDiff(c, pf.width, pf.height))
			}
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	addPlotFlags(cmd, &pf)
	cmd.Flags().IntVar(&rows, "rows", 25, "maximum table rows (0 for all)")
	return cmd
}
