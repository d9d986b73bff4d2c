package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/lvsim/internal/dynamo"
)

type oscillator struct{}

func (oscillator) Derive(x dynamo.State, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (oscillator) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(oscillator{}, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-8 {
		t.Errorf("position error too large: got %.10f, expected %.10f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-8 {
		t.Errorf("velocity error too large: got %.10f, expected %.10f", x[1], expectedV)
	}
}

func TestEulerStep(t *testing.T) {
	x := NewEuler().Step(oscillator{}, dynamo.State{1.0, 0.5}, 0, 0.1)

	if x[0] != 1.0+0.1*0.5 {
		t.Errorf("x0: got %v, want %v", x[0], 1.0+0.1*0.5)
	}
	if x[1] != 0.5-0.1*1.0 {
		t.Errorf("x1: got %v, want %v", x[1], 0.5-0.1*1.0)
	}
}

func TestEulerIsFirstOrder(t *testing.T) {
	finalErr := func(dt float64) float64 {
		integ := NewEuler()
		x := dynamo.State{1.0, 0.0}
		steps := int(math.Round(1.0 / dt))
		for i := 0; i < steps; i++ {
			x = integ.Step(oscillator{}, x, float64(i)*dt, dt)
		}
		return math.Abs(x[0] - math.Cos(1.0))
	}

	ratio := finalErr(0.01) / finalErr(0.005)
	if ratio < 1.8 || ratio > 2.2 {
		t.Errorf("halving dt should halve the error, ratio = %.3f", ratio)
	}
}

type sink struct {
	rate     float64
	minInput float64
}

func (s *sink) Derive(x dynamo.State, t float64) dynamo.State {
	if x[0] < s.minInput {
		s.minInput = x[0]
	}
	return dynamo.State{s.rate}
}

func (s *sink) StateDim() int { return 1 }

func TestNonNegativeFloorsOnlyFinalResult(t *testing.T) {
	sys := &sink{rate: -10}
	x := NewNonNegative(NewRK4()).Step(sys, dynamo.State{1.0}, 0, 0.5)

	if x[0] != 0 {
		t.Errorf("expected result floored to 0, got %v", x[0])
	}
	if sys.minInput >= 0 {
		t.Errorf("intermediate stages must not be floored, smallest stage input was %v", sys.minInput)
	}
}

func TestNonNegativeKeepsPositiveAndNaN(t *testing.T) {
	sys := &sink{rate: 1}
	x := NewNonNegative(NewEuler()).Step(sys, dynamo.State{2.0}, 0, 0.5)
	if x[0] != 2.5 {
		t.Errorf("expected 2.5, got %v", x[0])
	}

	nan := &sink{rate: math.NaN()}
	x = NewNonNegative(NewEuler()).Step(nan, dynamo.State{2.0}, 0, 0.5)
	if !math.IsNaN(x[0]) {
		t.Errorf("expected NaN to pass through, got %v", x[0])
	}
}

func TestNonNegativeKeepsNegativeInfinity(t *testing.T) {
	sys := &sink{rate: math.Inf(-1)}
	x := NewNonNegative(NewEuler()).Step(sys, dynamo.State{2.0}, 0, 0.5)
	if !math.IsInf(x[0], -1) {
		t.Errorf("expected -Inf to pass through, got %v", x[0])
	}
	if x.IsValid() {
		t.Error("state with -Inf must not be valid")
	}
}
