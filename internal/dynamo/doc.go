// Package dynamo provides the simulation primitives the integrators and the
// population model are built on.
//
// The package defines the fundamental interfaces and types for fixed-step
// numerical integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous or time-dependent ODEs (dX/dt = f(X, t))
//   - [Integrator]: single-step numerical scheme
//   - [Metric]: per-step observer reduced to a scalar
//   - [Simulator]: drives an integrator over a uniform time grid
//
// # Example
//
//	sys := lotka.NewSystem(lotka.DefaultParams())
//	s := dynamo.New(sys, integrators.NewRK4())
//	result, err := s.Run(dynamo.State{80, 20}, dynamo.Config{Dt: 0.05, Steps: 1000, ValidateState: true})
//
// # Thread Safety
//
// A Simulator holds its integrator, and integrators such as RK4 keep scratch
// buffers. Use one Simulator per goroutine; [Parallel] runs independent
// jobs that each build their own.
package dynamo
