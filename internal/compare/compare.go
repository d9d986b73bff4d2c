// Package compare runs the Euler and RK4 schemes side by side on one grid
// and reports how far apart they drift.
package compare

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/metrics"
)

// Comparison pairs an Euler and an RK4 trajectory sampled on the same grid.
// DiffP[k] and DiffD[k] are the absolute gaps at sample k.
type Comparison struct {
	Params lotka.Params      `json:"params"`
	T      []float64         `json:"t"`
	Euler  *lotka.Trajectory `json:"euler"`
	RK4    *lotka.Trajectory `json:"rk4"`
	DiffP  []float64         `json:"diff_P"`
	DiffD  []float64         `json:"diff_D"`
}

// Row is one line of the iteration table.
type Row struct {
	Step   int
	T      float64
	EulerP float64
	EulerD float64
	RK4P   float64
	RK4D   float64
	DiffP  float64
	DiffD  float64
	Band   Band
}

// Options tune both runs of a comparison.
type Options struct {
	// MaxSteps caps each run; zero means lotka.DefaultMaxSteps.
	MaxSteps int
	// WithMetrics attaches a fresh metrics.Default set to each run.
	WithMetrics bool
}

func (o Options) forRun(prm lotka.Params) lotka.Options {
	opts := lotka.Options{MaxSteps: o.MaxSteps}
	if o.WithMetrics {
		opts.Metrics = metrics.Default(prm)
	}
	return opts
}

// Run integrates both schemes over [0, tmax] with step h.
func Run(prm lotka.Params, p0, d0, tmax, h float64) (*Comparison, error) {
	return RunWith(prm, p0, d0, tmax, h, Options{})
}

func RunWith(prm lotka.Params, p0, d0, tmax, h float64, opts Options) (*Comparison, error) {
	return run(prm, func(s lotka.Scheme) (*lotka.Trajectory, error) {
		return lotka.IntegrateWith(s, prm, p0, d0, tmax, h, opts.forRun(prm))
	})
}

// RunSteps integrates both schemes for exactly steps steps of size h.
func RunSteps(prm lotka.Params, p0, d0, h float64, steps int) (*Comparison, error) {
	return RunStepsWith(prm, p0, d0, h, steps, Options{})
}

func RunStepsWith(prm lotka.Params, p0, d0, h float64, steps int, opts Options) (*Comparison, error) {
	return run(prm, func(s lotka.Scheme) (*lotka.Trajectory, error) {
		return lotka.IntegrateStepsWith(s, prm, p0, d0, h, steps, opts.forRun(prm))
	})
}

func run(prm lotka.Params, integrate func(lotka.Scheme) (*lotka.Trajectory, error)) (*Comparison, error) {
	schemes := lotka.Schemes()
	out := make([]*lotka.Trajectory, len(schemes))

	err := dynamo.Parallel(len(schemes), func(i int) error {
		tr, err := integrate(schemes[i])
		if err != nil {
			return err
		}
		out[i] = tr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return New(prm, out[0], out[1]), nil
}

// New builds a comparison from two trajectories on the same grid. The
// shorter of the two bounds the sample count.
func New(prm lotka.Params, euler, rk4 *lotka.Trajectory) *Comparison {
	n := min(euler.Len(), rk4.Len())
	c := &Comparison{
		Params: prm,
		T:      euler.T[:n],
		Euler:  euler,
		RK4:    rk4,
		DiffP:  make([]float64, n),
		DiffD:  make([]float64, n),
	}
	for k := 0; k < n; k++ {
		c.DiffP[k] = AbsDiff(euler.P[k], rk4.P[k])
		c.DiffD[k] = AbsDiff(euler.D[k], rk4.D[k])
	}
	return c
}

// AbsDiff is |a - b|.
func AbsDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func (c *Comparison) Len() int { return len(c.T) }

// Row returns sample k as a table row.
func (c *Comparison) Row(k int) Row {
	return Row{
		Step:   k,
		T:      c.T[k],
		EulerP: c.Euler.P[k],
		EulerD: c.Euler.D[k],
		RK4P:   c.RK4.P[k],
		RK4D:   c.RK4.D[k],
		DiffP:  c.DiffP[k],
		DiffD:  c.DiffD[k],
		Band:   Classify(c.DiffP[k], c.DiffD[k]),
	}
}

// Rows returns the full iteration table.
func (c *Comparison) Rows() []Row {
	rows := make([]Row, c.Len())
	for k := range rows {
		rows[k] = c.Row(k)
	}
	return rows
}

// Final returns the last row.
func (c *Comparison) Final() Row {
	return c.Row(c.Len() - 1)
}

// MaxDiff returns the largest gap seen for each population.
func (c *Comparison) MaxDiff() (dp, dd float64) {
	for k := range c.DiffP {
		dp = max(dp, c.DiffP[k])
		dd = max(dd, c.DiffD[k])
	}
	return dp, dd
}
