// Package metrics provides [dynamo.Metric] observers for population runs:
// first-integral drift, per-species extrema, and extinction times.
package metrics
