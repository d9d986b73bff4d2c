package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/lvsim/internal/compare"
	"github.com/san-kum/lvsim/internal/lotka"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteTrajectoryCSV writes a time,P,D table.
func WriteTrajectoryCSV(w io.Writer, tr *lotka.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "P", "D"}); err != nil {
		return err
	}
	for k := range tr.T {
		rec := []string{formatFloat(tr.T[k]), formatFloat(tr.P[k]), formatFloat(tr.D[k])}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComparisonCSV writes the iteration table of a comparison.
func WriteComparisonCSV(w io.Writer, c *compare.Comparison) error {
	cw := csv.NewWriter(w)
	header := []string{"step", "time", "euler_P", "euler_D", "rk4_P", "rk4_D", "diff_P", "diff_D", "band"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range c.Rows() {
		rec := []string{
			strconv.Itoa(r.Step),
			formatFloat(r.T),
			formatFloat(r.EulerP),
			formatFloat(r.EulerD),
			formatFloat(r.RK4P),
			formatFloat(r.RK4D),
			formatFloat(r.DiffP),
			formatFloat(r.DiffD),
			r.Band.String(),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
