package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/lvsim/internal/compare"
	"github.com/san-kum/lvsim/internal/lotka"
)

type TrajectoryData struct {
	Params    lotka.Params       `json:"params"`
	Scheme    lotka.Scheme       `json:"scheme"`
	H         float64            `json:"h"`
	Steps     int                `json:"steps"`
	Times     []float64          `json:"times"`
	Prey      []float64          `json:"P"`
	Predators []float64          `json:"D"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

type ComparisonData struct {
	Params       lotka.Params       `json:"params"`
	H            float64            `json:"h"`
	Rows         []ComparisonRow    `json:"rows"`
	Final        ComparisonRow      `json:"final"`
	EulerMetrics map[string]float64 `json:"euler_metrics,omitempty"`
	RK4Metrics   map[string]float64 `json:"rk4_metrics,omitempty"`
}

type ComparisonRow struct {
	Step   int     `json:"step"`
	T      float64 `json:"t"`
	EulerP float64 `json:"euler_P"`
	EulerD float64 `json:"euler_D"`
	RK4P   float64 `json:"rk4_P"`
	RK4D   float64 `json:"rk4_D"`
	DiffP  float64 `json:"diff_P"`
	DiffD  float64 `json:"diff_D"`
	Band   string  `json:"band"`
}

func toRow(r compare.Row) ComparisonRow {
	return ComparisonRow{
		Step:   r.Step,
		T:      r.T,
		EulerP: r.EulerP,
		EulerD: r.EulerD,
		RK4P:   r.RK4P,
		RK4D:   r.RK4D,
		DiffP:  r.DiffP,
		DiffD:  r.DiffD,
		Band:   r.Band.String(),
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func WriteTrajectoryJSON(w io.Writer, prm lotka.Params, tr *lotka.Trajectory) error {
	return WriteJSON(w, TrajectoryData{
		Params:    prm,
		Scheme:    tr.Scheme,
		H:         tr.H,
		Steps:     tr.Len() - 1,
		Times:     tr.T,
		Prey:      tr.P,
		Predators: tr.D,
		Metrics:   tr.Metrics,
	})
}

func WriteComparisonJSON(w io.Writer, c *compare.Comparison) error {
	rows := c.Rows()
	data := ComparisonData{
		Params:       c.Params,
		H:            c.Euler.H,
		Rows:         make([]ComparisonRow, len(rows)),
		Final:        toRow(c.Final()),
		EulerMetrics: c.Euler.Metrics,
		RK4Metrics:   c.RK4.Metrics,
	}
	for i, r := range rows {
		data.Rows[i] = toRow(r)
	}
	return WriteJSON(w, data)
}
