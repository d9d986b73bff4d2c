// Package validate guards the parameter space of the predator-prey model.
//
// Checks run in a fixed order and the first failure decides the reason:
//
//  1. every value present
//  2. no value negative
//  3. beta and delta non-zero (they divide in the equilibrium point)
//  4. horizon not above MaxTime
//  5. horizon not below MinTime
//  6. initial populations not above MaxPopulation
//
// Rejections are ordinary return values, never panics: [Validate] returns
// (ok, reason) for display and [Limits.Check] returns an error wrapping one
// of the sentinel errors below for errors.Is.
package validate
