// Package integrators implements fixed-step explicit schemes for
// [dynamo.System]:
//
//   - [Euler]: first order, one derivative evaluation per step
//   - [RK4]: classical fourth order, four evaluations per step
//   - [NonNegative]: wraps a scheme and floors its result at zero
package integrators
