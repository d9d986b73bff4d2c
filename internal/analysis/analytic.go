package analysis

import "math"

// NoPredatorGrowth is the exact prey curve p0*e^(alpha*t) when D = 0.
func NoPredatorGrowth(alpha, p0 float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = p0 * math.Exp(alpha*t)
	}
	return out
}

// NoPreyDecay is the exact predator curve d0*e^(-gamma*t) when P = 0.
func NoPreyDecay(gamma, d0 float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = d0 * math.Exp(-gamma*t)
	}
	return out
}

// MaxRelativeError is max |got-want| / max(|want|, 1) over aligned slices.
func MaxRelativeError(got, want []float64) float64 {
	worst := 0.0
	for i := range min(len(got), len(want)) {
		worst = max(worst, math.Abs(got[i]-want[i])/math.Max(math.Abs(want[i]), 1))
	}
	return worst
}
