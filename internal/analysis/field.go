package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/lvsim/internal/lotka"
)

var ErrGridSize = errors.New("analysis: direction field needs at least 2 points per axis")

// Vector is the RHS evaluated at one phase-plane point.
type Vector struct {
	P  float64 `json:"P"`
	D  float64 `json:"D"`
	DP float64 `json:"dP"`
	DD float64 `json:"dD"`
}

// DirectionField samples the RHS on an nx by ny grid spanning
// [pMin, pMax] x [dMin, dMax], row by row from dMin.
func DirectionField(prm lotka.Params, pMin, pMax, dMin, dMax float64, nx, ny int) ([]Vector, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("%w, got %dx%d", ErrGridSize, nx, ny)
	}

	field := make([]Vector, 0, nx*ny)
	for j := 0; j < ny; j++ {
		d := dMin + (dMax-dMin)*float64(j)/float64(ny-1)
		for i := 0; i < nx; i++ {
			p := pMin + (pMax-pMin)*float64(i)/float64(nx-1)
			dp, dd := lotka.RHS(p, d, prm)
			field = append(field, Vector{P: p, D: d, DP: dp, DD: dd})
		}
	}
	return field, nil
}

// NullclineSet holds the lines where one rate vanishes. Prey growth stops
// on D = alpha/beta and on P = 0; predator growth stops on P = gamma/delta
// and on D = 0. They cross at the coexistence equilibrium.
type NullclineSet struct {
	PreyD     float64 `json:"prey_D"`
	PredatorP float64 `json:"predator_P"`
}

func Nullclines(prm lotka.Params) (NullclineSet, error) {
	p, d, err := prm.Equilibrium()
	if err != nil {
		return NullclineSet{}, err
	}
	return NullclineSet{PreyD: d, PredatorP: p}, nil
}
