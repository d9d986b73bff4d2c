package lotka

import (
	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/integrators"
)

// EulerStep advances (prey, predators) by one Euler step of size h:
// P' = max(P + h dP, 0), D' = max(D + h dD, 0).
func EulerStep(prey, predators, h float64, prm Params) (float64, float64) {
	return step(integrators.NewEuler(), prey, predators, h, prm)
}

// RK4Step advances (prey, predators) by one classical Runge-Kutta step.
// The zero floor applies to the combined result only.
func RK4Step(prey, predators, h float64, prm Params) (float64, float64) {
	return step(integrators.NewRK4(), prey, predators, h, prm)
}

func step(inner dynamo.Integrator, prey, predators, h float64, prm Params) (float64, float64) {
	x := integrators.NewNonNegative(inner).Step(NewSystem(prm), dynamo.State{prey, predators}, 0, h)
	return x[0], x[1]
}
