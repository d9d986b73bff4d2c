package metrics

import "github.com/san-kum/lvsim/internal/dynamo"

// Extinction records the first time a population component reaches zero,
// or -1 if it never does. The integrator keeps stepping after a collapse;
// this only marks when it happened.
type Extinction struct {
	name  string
	index int
	at    float64
}

func NewExtinction(name string, index int) *Extinction {
	return &Extinction{name: name, index: index, at: -1}
}

func (e *Extinction) Name() string { return e.name }

func (e *Extinction) Observe(x dynamo.State, t float64) {
	if e.at >= 0 || e.index >= len(x) {
		return
	}
	if x[e.index] <= 0 {
		e.at = t
	}
}

func (e *Extinction) Value() float64 { return e.at }

func (e *Extinction) Reset() { e.at = -1 }
