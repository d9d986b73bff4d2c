package integrators

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
)

// NonNegative floors every component of the inner scheme's result at zero.
// Only the combined step result is floored; the inner scheme's intermediate
// stages see unmodified values. NaN and -Inf pass through untouched so
// overflow detection downstream still sees them.
type NonNegative struct {
	Inner dynamo.Integrator
}

func NewNonNegative(inner dynamo.Integrator) *NonNegative {
	return &NonNegative{Inner: inner}
}

func (n *NonNegative) Step(sys dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	result := n.Inner.Step(sys, x, t, dt)
	for i, v := range result {
		if v < 0 && !math.IsInf(v, -1) {
			result[i] = 0
		}
	}
	return result
}
