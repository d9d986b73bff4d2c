package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/viz"
)

func (a *app) convergeCmd() *cobra.Command {
	var (
		s        scenario
		pf       plotFlags
		halvings int
		refH     float64
	)
	cmd := &cobra.Command{
		Use:   "converge",
		Short: "measure the observed order of accuracy by halving h",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}
			exp := experiment.New(cfg, experiment.WithLogger(a.logger))
			if err := exp.Validate(); err != nil {
				return err
			}
			scheme, err := lotka.ParseScheme(cfg.Scheme)
			if err != nil {
				return err
			}

			in := cfg.Input()
			hs := analysis.HalvingSequence(cfg.H, halvings)
			if err := cfg.Limits.CheckStep(hs[len(hs)-1], in.TMax); err != nil {
				return fmt.Errorf("finest step: %w", err)
			}

			a.logger.Info("convergence study", "scheme", scheme, "h", hs, "ref_h", refH)
			rep, err := analysis.Convergence(scheme, cfg.Params, cfg.Initial.P0, cfg.Initial.D0, in.TMax, hs, refH)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s vs rk4 reference (h=%g) at t=%g: P=%.6f D=%.6f\n\n", rep.Scheme, rep.RefH, rep.TMax, rep.RefP, rep.RefD)
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "H\tSTEPS\tERR P\tERR D\tORDER")
			for _, pt := range rep.Points {
				order := "-"
				if !math.IsNaN(pt.Order) {
					order = fmt.Sprintf("%.2f", pt.Order)
				}
				fmt.Fprintf(tw, "%g\t%d\t%.3e\t%.3e\t%s\n", pt.H, pt.Steps, pt.ErrP, pt.ErrD, order)
			}
			tw.Flush()
			fmt.Fprintf(w, "\nexpected order %d\n", scheme.Order())

			if pf.plot && len(rep.Points) > 1 {
				fmt.Fprintln(w)
				fmt.Fprintln(w, viz.PlotConvergence(rep, pf.width, pf.height))
			}
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	addPlotFlags(cmd, &pf)
	cmd.Flags().IntVar(&halvings, "halvings", 4, "number of step sizes, each half the previous")
	cmd.Flags().Float64Var(&refH, "ref-h", 0.001, "rk4 reference step size")
	return cmd
}

func (a *app) phaseCmd() *cobra.Command {
	var (
		s       scenario
		pf      plotFlags
		braille bool
	)
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "phase-plane portrait with nullclines and period estimate",
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

			tr := out.Trajectory
			portrait := analysis.NewPhasePortrait(cfg.Params, tr)

			w := cmd.OutOrStdout()
			if braille {
				fmt.Fprint(w, viz.PlotPhase(portrait, pf.width, pf.height))
			} else {
				fmt.Fprint(w, analysis.PhasePortraitToASCII(portrait, pf.width, pf.height))
			}
			fmt.Fprintln(w)

			nc, err := analysis.Nullclines(cfg.Params)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "prey nullclines\tP = 0, D = %.4f\n", nc.PreyD)
			fmt.Fprintf(tw, "predator nullclines\tD = 0, P = %.4f\n", nc.PredatorP)
			fmt.Fprintf(tw, "equilibrium (*)\t(%.4f, %.4f)\n", nc.PredatorP, nc.PreyD)
			if period := analysis.DominantPeriod(tr.P, tr.H); period > 0 {
				fmt.Fprintf(tw, "prey period\t%.3f\n", period)
			}
			fmt.Fprintf(tw, "linearized period\t%.3f\n", analysis.LinearPeriod(cfg.Params.Alpha, cfg.Params.Gamma))
			tw.Flush()
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	addPlotFlags(cmd, &pf)
	cmd.Flags().BoolVar(&braille, "braille", false, "draw with braille dots")
	return cmd
}

func (a *app) orbitsCmd() *cobra.Command {
	var (
		s      scenario
		pf     plotFlags
		scales []float64
	)
	cmd := &cobra.Command{
		Use:   "orbits",
		Short: "orbit family from scaled initial conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}
			if err := experiment.New(cfg, experiment.WithLogger(a.logger)).Validate(); err != nil {
				return err
			}
			scheme, err := lotka.ParseScheme(cfg.Scheme)
			if err != nil {
				return err
			}

			in := cfg.Input()
			orbits, err := analysis.Orbits(scheme, cfg.Params, cfg.Initial.P0, cfg.Initial.D0, in.TMax, cfg.H, scales)
			if err != nil {
				return err
			}

			trs := make([]*lotka.Trajectory, len(orbits))
			for i, o := range orbits {
				trs[i] = o.Trajectory
			}
			portrait := analysis.NewPhasePortrait(cfg.Params, trs...)

			w := cmd.OutOrStdout()
			if pf.plot {
				fmt.Fprint(w, analysis.PhasePortraitToASCII(portrait, pf.width, pf.height))
				fmt.Fprintln(w)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCALE\tP0\tD0\tMIN P\tMAX P\tMIN D\tMAX D\tV DRIFT")
			for _, o := range orbits {
				tr := o.Trajectory
				minP, maxP := span(tr.P)
				minD, maxD := span(tr.D)
				_, pEnd, dEnd := tr.Final()
				drift := math.Abs(cfg.Params.FirstIntegral(pEnd, dEnd) - cfg.Params.FirstIntegral(tr.P[0], tr.D[0]))
				fmt.Fprintf(tw, "%g\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.3g\n",
					o.Scale, tr.P[0], tr.D[0], minP, maxP, minD, maxD, drift)
			}
			return tw.Flush()
		},
	}
	addScenarioFlags(cmd, &s)
	addPlotFlags(cmd, &pf)
	cmd.Flags().Float64SliceVar(&scales, "scales", analysis.DefaultOrbitScales, "initial-condition multipliers")
	return cmd
}

func span(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs {
		lo, hi = min(lo, x), max(hi, x)
	}
	return lo, hi
}
