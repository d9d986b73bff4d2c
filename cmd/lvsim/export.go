package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/lvsim/internal/analysis"
	"github.com/san-kum/lvsim/internal/experiment"
	"github.com/san-kum/lvsim/internal/export"
)

func (a *app) exportCmd() *cobra.Command {
	var (
		s       scenario
		format  string
		output  string
		both    bool
		phase   bool
		svgSize int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "write a run or comparison as csv, json or svg",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "csv", "json", "svg":
			default:
				return fmt.Errorf("unknown format %q (want csv, json or svg)", format)
			}

			cfg, err := a.scenarioSetup(cmd, &s)
			if err != nil {
				return err
			}
			exp := experiment.New(cfg, experiment.WithLogger(a.logger))

			w := cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}

			var write func(io.Writer) error
			if both {
				c, err := exp.Compare()
				if err != nil {
					return err
				}
				switch format {
				case "csv":
					write = func(w io.Writer) error { return export.WriteComparisonCSV(w, c) }
				case "json":
					write = func(w io.Writer) error { return export.WriteComparisonJSON(w, c) }
				case "svg":
					series := append(export.TimeSeries(c.Euler), export.TimeSeries(c.RK4)...)
					if phase {
						portrait := analysis.NewPhasePortrait(cfg.Params, c.Euler, c.RK4)
						write = func(w io.Writer) error {
							return export.WriteSVG(w, export.PhaseSeries(portrait), portrait.Marker, svgSize, svgSize)
						}
					} else {
						write = func(w io.Writer) error { return export.WriteSVG(w, series, nil, 2*svgSize, svgSize) }
					}
				}
			} else {
				out, err := exp.Run()
				if err != nil {
					return err
				}
				tr := out.Trajectory
				switch format {
				case "csv":
					write = func(w io.Writer) error { return export.WriteTrajectoryCSV(w, tr) }
				case "json":
					write = func(w io.Writer) error { return export.WriteTrajectoryJSON(w, cfg.Params, tr) }
				case "svg":
					if phase {
						portrait := analysis.NewPhasePortrait(cfg.Params, tr)
						write = func(w io.Writer) error {
							return export.WriteSVG(w, export.PhaseSeries(portrait), portrait.Marker, svgSize, svgSize)
						}
					} else {
						write = func(w io.Writer) error { return export.WriteSVG(w, export.TimeSeries(tr), nil, 2*svgSize, svgSize) }
					}
				}
			}
			if err := write(w); err != nil {
				return err
			}
			if output != "" && output != "-" {
				a.logger.Info("exported", "format", format, "path", output)
			}
			return nil
		},
	}
	addScenarioFlags(cmd, &s)
	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv, json, svg)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&both, "compare", false, "export the euler/rk4 comparison instead of one run")
	cmd.Flags().BoolVar(&phase, "phase", false, "svg: plot the (P, D) plane instead of time series")
	cmd.Flags().IntVar(&svgSize, "svg-size", 400, "svg height in pixels")
	return cmd
}
