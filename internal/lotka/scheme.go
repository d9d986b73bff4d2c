package lotka

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/integrators"
)

type Scheme string

const (
	Euler Scheme = "euler"
	RK4   Scheme = "rk4"
)

var ErrUnknownScheme = errors.New("lotka: unknown integration scheme")

// Schemes lists the supported schemes in display order.
func Schemes() []Scheme {
	return []Scheme{Euler, RK4}
}

func ParseScheme(name string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(name))) {
	case Euler:
		return Euler, nil
	case RK4:
		return RK4, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Integrator returns a fresh, population-floored integrator for the scheme.
func (s Scheme) Integrator() (dynamo.Integrator, error) {
	switch s {
	case Euler:
		return integrators.NewNonNegative(integrators.NewEuler()), nil
	case RK4:
		return integrators.NewNonNegative(integrators.NewRK4()), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, string(s))
}

// Order is the global order of accuracy of the scheme.
func (s Scheme) Order() int {
	switch s {
	case Euler:
		return 1
	case RK4:
		return 4
	}
	return 0
}

// Evaluations is the number of RHS evaluations per step.
func (s Scheme) Evaluations() int {
	switch s {
	case Euler:
		return 1
	case RK4:
		return 4
	}
	return 0
}

func (s Scheme) String() string { return string(s) }
