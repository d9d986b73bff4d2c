// Package export serializes trajectories and comparisons as CSV, JSON, or
// SVG to any io.Writer.
package export
