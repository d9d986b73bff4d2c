// Package lotka models the two-species Lotka-Volterra predator-prey system
//
//	dP/dt = alpha P - beta P D
//	dD/dt = delta P D - gamma D
//
// where P is the prey population and D the predator population.
//
// [RHS] is the single definition of the vector field. The steppers
// ([EulerStep], [RK4Step]), the [System] adapter handed to the generic
// integrators, and every caller drawing direction vectors go through it.
//
// Populations are floored at zero after every step: extinction is an
// absorbing floor, not a sign flip. A collapsed system keeps being stepped to
// the full horizon.
package lotka
