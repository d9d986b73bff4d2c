package analysis

import (
	"math"
	"math/cmplx"
)

// fft is a radix-2 transform; len(data) must be a power of two.
func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// the mean-removed series, zero-padded to a power of two.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	n := 1
	for n < len(series) {
		n <<= 1
	}
	padded := make([]float64, n)
	for i, v := range series {
		padded[i] = v - mean
	}

	spec := fft(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

// DominantPeriod estimates the oscillation period of a series sampled
// every dt from its strongest non-zero frequency bin. It returns 0 when
// the series has no oscillation.
func DominantPeriod(series []float64, dt float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] < 1e-12 {
		return 0
	}
	n := 2 * len(ps)
	return float64(n) * dt / float64(peak)
}

// LinearPeriod is the small-oscillation period 2*pi/sqrt(alpha*gamma)
// around the coexistence equilibrium.
func LinearPeriod(alpha, gamma float64) float64 {
	if alpha <= 0 || gamma <= 0 {
		return 0
	}
	return 2 * math.Pi / math.Sqrt(alpha*gamma)
}
