package dynamo

import (
	"fmt"
	"math"
)

type Simulator struct {
	sys        System
	integrator Integrator
	metrics    []Metric
}

func New(sys System, integrator Integrator) *Simulator {
	return &Simulator{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

// Run applies the integrator cfg.Steps times starting from x0 and records
// every state, including x0. Sample k sits at t = k*cfg.Dt exactly, so the
// grid does not accumulate rounding from repeated addition.
//
// With cfg.ValidateState set, a non-finite state aborts the run with a
// *SimulationError wrapping ErrOverflow and no partial result.
func (s *Simulator) Run(x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(x0, cfg); err != nil {
		return nil, err
	}

	result := &Result{
		States:  make([]State, 0, cfg.Steps+1),
		Times:   make([]float64, 0, cfg.Steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	s.record(result, x, 0)

	for i := 0; i < cfg.Steps; i++ {
		t := float64(i) * cfg.Dt
		newX := s.integrator.Step(s.sys, x, t, cfg.Dt)

		next := float64(i+1) * cfg.Dt
		if cfg.ValidateState && !newX.IsValid() {
			return nil, &SimulationError{Step: i + 1, Time: next, State: newX, Wrapped: ErrOverflow}
		}

		x = newX
		result.StepsTaken++
		s.record(result, x, next)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) record(result *Result, x State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)
}

func (s *Simulator) validateConfig(x0 State, cfg Config) error {
	if cfg.Dt <= 0 || math.IsNaN(cfg.Dt) || math.IsInf(cfg.Dt, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidStep, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", cfg.Steps)
	}
	if cfg.MaxSteps > 0 && cfg.Steps > cfg.MaxSteps {
		return fmt.Errorf("%w: %d > %d", ErrTooManySteps, cfg.Steps, cfg.MaxSteps)
	}
	if len(x0) != s.sys.StateDim() {
		return fmt.Errorf("%w: state has %d components, system expects %d", ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}
	return nil
}
