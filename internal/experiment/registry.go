package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
	"github.com/san-kum/lvsim/internal/metrics"
)

// SchemeInfo describes a registered integration scheme.
type SchemeInfo struct {
	Scheme      lotka.Scheme
	Order       int
	Evaluations int
	Description string
}

type Registry struct {
	schemes map[string]SchemeInfo
}

func NewRegistry() *Registry {
	r := &Registry{schemes: make(map[string]SchemeInfo)}

	r.register(lotka.Euler, "explicit Euler, x + h f(x)")
	r.register(lotka.RK4, "classical fourth-order Runge-Kutta")

	return r
}

func (r *Registry) register(s lotka.Scheme, desc string) {
	r.schemes[s.String()] = SchemeInfo{
		Scheme:      s,
		Order:       s.Order(),
		Evaluations: s.Evaluations(),
		Description: desc,
	}
}

func (r *Registry) GetScheme(name string) (SchemeInfo, error) {
	s, err := lotka.ParseScheme(name)
	if err != nil {
		return SchemeInfo{}, err
	}
	info, ok := r.schemes[s.String()]
	if !ok {
		return SchemeInfo{}, fmt.Errorf("%w: %q", lotka.ErrUnknownScheme, name)
	}
	return info, nil
}

// GetIntegrator returns a fresh floored integrator for the named scheme.
func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	info, err := r.GetScheme(name)
	if err != nil {
		return nil, err
	}
	return info.Scheme.Integrator()
}

func (r *Registry) ListSchemes() []SchemeInfo {
	out := make([]SchemeInfo, 0, len(r.schemes))
	for _, info := range r.schemes {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// DefaultMetrics returns a fresh metric set for one run.
func (r *Registry) DefaultMetrics(prm lotka.Params) []dynamo.Metric {
	return metrics.Default(prm)
}
