package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

var ErrGrid = errors.New("analysis: step size does not divide the horizon")

// ConvergencePoint is the final-time error of one step size. Order compares
// this point with the previous (coarser) one and is NaN for the first.
type ConvergencePoint struct {
	H     float64 `json:"h"`
	Steps int     `json:"steps"`
	ErrP  float64 `json:"err_P"`
	ErrD  float64 `json:"err_D"`
	Err   float64 `json:"err"`
	Order float64 `json:"order"`
}

type ConvergenceReport struct {
	Scheme lotka.Scheme       `json:"scheme"`
	TMax   float64            `json:"t_max"`
	RefH   float64            `json:"ref_h"`
	RefP   float64            `json:"ref_P"`
	RefD   float64            `json:"ref_D"`
	Points []ConvergencePoint `json:"points"`
}

// Convergence integrates the scheme once per step size in hs and measures
// the final-state error against an RK4 reference run with step refH. Every
// step size must divide tmax. Runs execute concurrently.
func Convergence(scheme lotka.Scheme, prm lotka.Params, p0, d0, tmax float64, hs []float64, refH float64) (*ConvergenceReport, error) {
	if _, err := scheme.Integrator(); err != nil {
		return nil, err
	}

	all := append([]float64{refH}, hs...)
	steps := make([]int, len(all))
	for i, h := range all {
		n, err := gridSteps(tmax, h)
		if err != nil {
			return nil, err
		}
		steps[i] = n
	}

	finals := make([][2]float64, len(all))
	err := dynamo.Parallel(len(all), func(i int) error {
		s := scheme
		if i == 0 {
			s = lotka.RK4
		}
		tr, err := lotka.IntegrateSteps(s, prm, p0, d0, all[i], steps[i])
		if err != nil {
			return fmt.Errorf("h=%g: %w", all[i], err)
		}
		_, p, d := tr.Final()
		finals[i] = [2]float64{p, d}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rep := &ConvergenceReport{
		Scheme: scheme,
		TMax:   tmax,
		RefH:   refH,
		RefP:   finals[0][0],
		RefD:   finals[0][1],
		Points: make([]ConvergencePoint, len(hs)),
	}
	for i, h := range hs {
		ep := math.Abs(finals[i+1][0] - rep.RefP)
		ed := math.Abs(finals[i+1][1] - rep.RefD)
		pt := ConvergencePoint{
			H:     h,
			Steps: steps[i+1],
			ErrP:  ep,
			ErrD:  ed,
			Err:   max(ep, ed),
			Order: math.NaN(),
		}
		if i > 0 {
			prev := rep.Points[i-1]
			pt.Order = ObservedOrder(prev.H, prev.Err, h, pt.Err)
		}
		rep.Points[i] = pt
	}
	return rep, nil
}

// ObservedOrder is log(e1/e2) / log(h1/h2); for a halving it is log2(e1/e2).
func ObservedOrder(h1, e1, h2, e2 float64) float64 {
	if e1 <= 0 || e2 <= 0 || h1 == h2 {
		return math.NaN()
	}
	return math.Log(e1/e2) / math.Log(h1/h2)
}

// HalvingSequence returns n step sizes starting at h, each half the last.
func HalvingSequence(h float64, n int) []float64 {
	hs := make([]float64, n)
	for i := range hs {
		hs[i] = h
		h /= 2
	}
	return hs
}

func gridSteps(tmax, h float64) (int, error) {
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return 0, fmt.Errorf("%w, got %v", dynamo.ErrInvalidStep, h)
	}
	n := math.Round(tmax / h)
	if n < 1 || math.Abs(n*h-tmax) > 1e-9*math.Max(1, tmax) {
		return 0, fmt.Errorf("%w: h=%g, t_max=%g", ErrGrid, h, tmax)
	}
	return int(n), nil
}
