package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrOverflow indicates the state left the representable floating-point
	// range (NaN or Inf detected).
	ErrOverflow = errors.New("dynamo: numeric overflow (NaN or Inf in state)")

	// ErrInvalidStep indicates a non-positive or non-finite timestep.
	ErrInvalidStep = errors.New("dynamo: timestep must be positive and finite")

	// ErrTooManySteps indicates a run larger than the configured step bound.
	ErrTooManySteps = errors.New("dynamo: step count exceeds limit")

	// ErrDimensionMismatch indicates mismatched state dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// SimulationError wraps an error with simulation context.
type SimulationError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
