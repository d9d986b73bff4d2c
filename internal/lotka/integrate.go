package lotka

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
)

// DefaultMaxSteps bounds a single run: the longest accepted horizon (300)
// divided by the smallest accepted step (1e-3).
const DefaultMaxSteps = 300000

var ErrInvalidHorizon = errors.New("lotka: time horizon must be finite and non-negative")

// Trajectory is the sampled solution of one integration call. T, P and D
// are aligned: sample k is (T[k], P[k], D[k]) with T[k] = k*H.
type Trajectory struct {
	Scheme  Scheme             `json:"scheme"`
	H       float64            `json:"h"`
	T       []float64          `json:"t"`
	P       []float64          `json:"P"`
	D       []float64          `json:"D"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func (tr *Trajectory) Len() int { return len(tr.T) }

// Final returns the last sample.
func (tr *Trajectory) Final() (t, prey, predators float64) {
	n := len(tr.T) - 1
	return tr.T[n], tr.P[n], tr.D[n]
}

// Options tune a run beyond the model inputs.
type Options struct {
	// MaxSteps caps the step count; zero means DefaultMaxSteps.
	MaxSteps int
	Metrics  []dynamo.Metric
}

func (o Options) maxSteps() int {
	if o.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return o.MaxSteps
}

// SampleCount is floor(tmax/h) + 1. A quotient within 1e-9 below an integer
// counts as that integer, so 50/0.05 yields 1001 samples even if the
// division rounds down. Callers bound tmax/h before calling it, since a
// quotient beyond the int range does not convert.
func SampleCount(tmax, h float64) int {
	return int(math.Floor(tmax/h+1e-9)) + 1
}

// Integrate samples the model on [0, tmax] with step h using the given
// scheme, starting from (p0, d0). The result has SampleCount(tmax, h)
// samples.
func Integrate(scheme Scheme, prm Params, p0, d0, tmax, h float64) (*Trajectory, error) {
	return IntegrateWith(scheme, prm, p0, d0, tmax, h, Options{})
}

func IntegrateWith(scheme Scheme, prm Params, p0, d0, tmax, h float64, opts Options) (*Trajectory, error) {
	if math.IsNaN(tmax) || math.IsInf(tmax, 0) || tmax < 0 {
		return nil, fmt.Errorf("%w, got %v", ErrInvalidHorizon, tmax)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return nil, fmt.Errorf("%w, got %v", dynamo.ErrInvalidStep, h)
	}
	if q, limit := tmax/h, opts.maxSteps(); limit > 0 && q > float64(limit)+1 {
		return nil, fmt.Errorf("%s: %w: %.6g > %d", scheme, dynamo.ErrTooManySteps, q, limit)
	}
	steps := SampleCount(tmax, h) - 1
	return IntegrateStepsWith(scheme, prm, p0, d0, h, steps, opts)
}

// IntegrateSteps applies the scheme exactly steps times, yielding steps+1
// samples at t = k*h.
func IntegrateSteps(scheme Scheme, prm Params, p0, d0, h float64, steps int) (*Trajectory, error) {
	return IntegrateStepsWith(scheme, prm, p0, d0, h, steps, Options{})
}

func IntegrateStepsWith(scheme Scheme, prm Params, p0, d0, h float64, steps int, opts Options) (*Trajectory, error) {
	integ, err := scheme.Integrator()
	if err != nil {
		return nil, err
	}

	sim := dynamo.New(NewSystem(prm), integ)
	for _, m := range opts.Metrics {
		sim.AddMetric(m)
	}

	result, err := sim.Run(dynamo.State{p0, d0}, dynamo.Config{
		Dt:            h,
		Steps:         steps,
		MaxSteps:      opts.maxSteps(),
		ValidateState: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", scheme, err)
	}

	tr := &Trajectory{
		Scheme:  scheme,
		H:       h,
		T:       result.Times,
		P:       make([]float64, len(result.States)),
		D:       make([]float64, len(result.States)),
		Metrics: result.Metrics,
	}
	for k, x := range result.States {
		tr.P[k] = x[0]
		tr.D[k] = x[1]
	}
	return tr, nil
}
