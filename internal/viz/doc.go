// Package viz renders simulation results in the terminal.
//
//   - [PlotTrajectory], [PlotDiff], [PlotConvergence]: asciigraph line plots
//   - [ComparisonTable]: the Euler/RK4 iteration table, rows colored by band
//   - [Canvas]: Braille pixel canvas used for phase-plane plots
//   - [Explorer]: interactive comparison built on Bubble Tea
//
// # Explorer keys
//
//	j/k      - Scroll the iteration table
//	[ / ]    - Halve / double the step size
//	- / +    - Fewer / more steps
//	p        - Toggle table and phase-plane views
//	q        - Quit
package viz
