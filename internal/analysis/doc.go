// Package analysis provides tools for studying the predator-prey model
// beyond a single trajectory.
//
//   - [Convergence]: final-state error against a fine RK4 reference and the
//     observed order of accuracy per step size
//   - [DirectionField] and [Nullclines]: the phase-plane geometry of the RHS
//   - [NoPredatorGrowth] and [NoPreyDecay]: closed-form single-species limits
//   - [Orbits]: a family of orbits from scaled initial conditions
//   - [DominantPeriod]: oscillation period from the power spectrum
//   - [PhasePortraitToASCII]: terminal phase plot with the equilibrium marked
//
// # Order of accuracy
//
// Halving h should cut the Euler error by about 2 and the RK4 error by
// about 16:
//
//	rep, err := analysis.Convergence(lotka.RK4, prm, 80, 20, 10,
//	    []float64{0.1, 0.05, 0.025}, 0.001)
//	// rep.Points[i].Order is close to 4
package analysis
