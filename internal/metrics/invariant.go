package metrics

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

// InvariantDrift tracks the largest relative change of the Lotka-Volterra
// first integral V over a run. The exact flow keeps V constant, so the drift
// measures how far a scheme wanders off the true orbit. Samples where either
// population is zero have no V and are skipped.
type InvariantDrift struct {
	name     string
	params   lotka.Params
	initial  float64
	maxDrift float64
	started  bool
}

func NewInvariantDrift(prm lotka.Params) *InvariantDrift {
	return &InvariantDrift{name: InvariantDriftName, params: prm}
}

func (m *InvariantDrift) Name() string { return m.name }

func (m *InvariantDrift) Observe(x dynamo.State, t float64) {
	v := m.params.FirstIntegral(x[0], x[1])
	if math.IsNaN(v) {
		return
	}
	if !m.started {
		m.initial = v
		m.started = true
		return
	}
	drift := math.Abs(v - m.initial)
	if m.initial != 0 {
		drift /= math.Abs(m.initial)
	}
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *InvariantDrift) Value() float64 { return m.maxDrift }

func (m *InvariantDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.started = false
}
