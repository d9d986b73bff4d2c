package validate

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMaxTime       = 300.0
	DefaultMinTime       = 5.0
	DefaultMaxPopulation = 5000.0
	DefaultMinStep       = 1e-3
)

var (
	ErrMissing            = errors.New("all fields required")
	ErrUnknownField       = errors.New("unrecognized field")
	ErrNegative           = errors.New("negative values not biologically valid")
	ErrZeroDivisor        = errors.New("division by zero in equilibrium computation")
	ErrTimeTooLong        = errors.New("time horizon exceeds safety limit")
	ErrTimeTooShort       = errors.New("time horizon too short to be meaningful")
	ErrPopulationTooLarge = errors.New("initial population exceeds safety limit")
	ErrStep               = errors.New("step size must be positive and finite")
	ErrTooManySteps       = errors.New("step size too small for time horizon")
)

// Limits are the safety bounds applied on top of the biological checks.
type Limits struct {
	MaxTime       float64 `yaml:"max_time" json:"max_time"`
	MinTime       float64 `yaml:"min_time" json:"min_time"`
	MaxPopulation float64 `yaml:"max_population" json:"max_population"`
	MinStep       float64 `yaml:"min_step" json:"min_step"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxTime:       DefaultMaxTime,
		MinTime:       DefaultMinTime,
		MaxPopulation: DefaultMaxPopulation,
		MinStep:       DefaultMinStep,
	}
}

// MaxSteps is the largest step count any accepted run can need.
func (l Limits) MaxSteps() int {
	if l.MinStep <= 0 {
		return 0
	}
	return int(math.Ceil(l.MaxTime/l.MinStep - 1e-9))
}

// Input is the explicit form of a parameter bundle. H and Steps are optional;
// [Limits.CheckRun] checks them when present.
type Input struct {
	Alpha float64 `yaml:"alpha" json:"alpha"`
	Beta  float64 `yaml:"beta" json:"beta"`
	Delta float64 `yaml:"delta" json:"delta"`
	Gamma float64 `yaml:"gamma" json:"gamma"`
	P0    float64 `yaml:"P0" json:"P0"`
	D0    float64 `yaml:"D0" json:"D0"`
	TMax  float64 `yaml:"t_max" json:"t_max"`
	H     float64 `yaml:"h,omitempty" json:"h,omitempty"`
	Steps int     `yaml:"n_steps,omitempty" json:"n_steps,omitempty"`
}

// Horizon is the run length: h*n_steps when a step count is given,
// otherwise TMax.
func (in Input) Horizon() float64 {
	if in.Steps > 0 {
		return in.H * float64(in.Steps)
	}
	return in.TMax
}

// Validate checks positional values against DefaultLimits. A NaN argument
// stands for a value that was never supplied.
func Validate(alpha, beta, delta, gamma, p0, d0, tmax float64) (bool, string) {
	return DefaultLimits().Validate(alpha, beta, delta, gamma, p0, d0, tmax)
}

func (l Limits) Validate(alpha, beta, delta, gamma, p0, d0, tmax float64) (bool, string) {
	return verdict(l.Check(Input{
		Alpha: alpha, Beta: beta, Delta: delta, Gamma: gamma,
		P0: p0, D0: d0, TMax: tmax,
	}))
}

// ValidateMap decodes a loosely typed bundle and checks it against l.
func (l Limits) ValidateMap(bundle map[string]any) (bool, string) {
	in, err := Decode(bundle)
	if err != nil {
		return verdict(err)
	}
	return verdict(l.CheckRun(in))
}

func ValidateMap(bundle map[string]any) (bool, string) {
	return DefaultLimits().ValidateMap(bundle)
}

func verdict(err error) (bool, string) {
	if err != nil {
		return false, err.Error()
	}
	return true, ""
}

// Check returns nil for an acceptable input, or an error wrapping exactly
// one sentinel: the first failing check in precedence order. The time
// bounds apply to [Input.Horizon].
func (l Limits) Check(in Input) error {
	values := []float64{in.Alpha, in.Beta, in.Delta, in.Gamma, in.P0, in.D0, in.TMax}

	for _, v := range values {
		if math.IsNaN(v) {
			return ErrMissing
		}
	}
	for _, v := range values {
		if v < 0 {
			return ErrNegative
		}
	}
	if in.Beta == 0 || in.Delta == 0 {
		return ErrZeroDivisor
	}
	horizon := in.Horizon()
	if horizon > l.MaxTime {
		return fmt.Errorf("%w (max %g)", ErrTimeTooLong, l.MaxTime)
	}
	if horizon < l.MinTime {
		return fmt.Errorf("%w (min %g)", ErrTimeTooShort, l.MinTime)
	}
	if in.P0 > l.MaxPopulation || in.D0 > l.MaxPopulation {
		return fmt.Errorf("%w (max %g)", ErrPopulationTooLarge, l.MaxPopulation)
	}
	return nil
}

// CheckRun runs Check and then the step checks: CheckSteps when a step
// count is given, CheckStep when only h is.
func (l Limits) CheckRun(in Input) error {
	if err := l.Check(in); err != nil {
		return err
	}
	switch {
	case in.Steps != 0:
		return l.CheckSteps(in.H, in.Steps)
	case in.H != 0:
		return l.CheckStep(in.H, in.TMax)
	}
	return nil
}

// CheckStep validates a step size for a horizon: h must be finite and
// positive, and the resulting step count must stay under MaxSteps.
func (l Limits) CheckStep(h, tmax float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("%w, got %v", ErrStep, h)
	}
	if limit := l.MaxSteps(); limit > 0 && tmax/h > float64(limit) {
		return fmt.Errorf("%w (h=%g, t_max=%g, max %d steps)", ErrTooManySteps, h, tmax, limit)
	}
	return nil
}

// CheckSteps validates an explicit step count (the n_steps form).
func (l Limits) CheckSteps(h float64, steps int) error {
	if steps < 1 {
		return fmt.Errorf("%w: n_steps must be at least 1, got %d", ErrStep, steps)
	}
	return l.CheckStep(h, h*float64(steps))
}
