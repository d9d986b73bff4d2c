package analysis

import (
	"fmt"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

// DefaultOrbitScales are the initial-condition multipliers of the standard
// orbit family.
var DefaultOrbitScales = []float64{1.0, 1.5, 0.5, 0.2}

type Orbit struct {
	Scale      float64           `json:"scale"`
	Trajectory *lotka.Trajectory `json:"trajectory"`
}

// Orbits integrates one trajectory per scale starting from
// (scale*p0, scale*d0). Results keep the order of scales.
func Orbits(scheme lotka.Scheme, prm lotka.Params, p0, d0, tmax, h float64, scales []float64) ([]Orbit, error) {
	if len(scales) == 0 {
		scales = DefaultOrbitScales
	}

	out := make([]Orbit, len(scales))
	err := dynamo.Parallel(len(scales), func(i int) error {
		s := scales[i]
		tr, err := lotka.Integrate(scheme, prm, s*p0, s*d0, tmax, h)
		if err != nil {
			return fmt.Errorf("orbit x%g: %w", s, err)
		}
		out[i] = Orbit{Scale: s, Trajectory: tr}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
