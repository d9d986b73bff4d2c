package integrators

import "github.com/san-kum/lvsim/internal/dynamo"

// Euler is the explicit first-order scheme: one derivative evaluation per
// step, global error O(dt).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
