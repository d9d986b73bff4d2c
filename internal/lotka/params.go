package lotka

import (
	"errors"
	"math"
)

const (
	DefaultAlpha = 0.8
	DefaultBeta  = 0.05
	DefaultDelta = 0.02
	DefaultGamma = 0.6
	DefaultP0    = 80.0
	DefaultD0    = 20.0
)

var ErrNoEquilibrium = errors.New("lotka: beta and delta must be non-zero for an equilibrium")

// Params are the four rate constants of the model.
type Params struct {
	Alpha float64 `yaml:"alpha" json:"alpha"` // prey growth rate
	Beta  float64 `yaml:"beta" json:"beta"`   // predation rate
	Delta float64 `yaml:"delta" json:"delta"` // predator reproduction per prey eaten
	Gamma float64 `yaml:"gamma" json:"gamma"` // predator mortality
}

func DefaultParams() Params {
	return Params{Alpha: DefaultAlpha, Beta: DefaultBeta, Delta: DefaultDelta, Gamma: DefaultGamma}
}

// Equilibrium returns the coexistence fixed point (gamma/delta, alpha/beta).
func (p Params) Equilibrium() (prey, predators float64, err error) {
	if p.Beta == 0 || p.Delta == 0 {
		return 0, 0, ErrNoEquilibrium
	}
	return p.Gamma / p.Delta, p.Alpha / p.Beta, nil
}

// FirstIntegral evaluates V = delta P - gamma ln P + beta D - alpha ln D,
// which the exact flow conserves. It is undefined (NaN) unless both
// populations are positive.
func (p Params) FirstIntegral(prey, predators float64) float64 {
	if prey <= 0 || predators <= 0 {
		return math.NaN()
	}
	return p.Delta*prey - p.Gamma*math.Log(prey) + p.Beta*predators - p.Alpha*math.Log(predators)
}
