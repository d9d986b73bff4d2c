package dynamo

import "golang.org/x/sync/errgroup"

// Parallel runs fn(0) .. fn(n-1) concurrently and returns the first error.
// Each job must build its own Simulator and Integrator.
func Parallel(n int, fn func(i int) error) error {
	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
