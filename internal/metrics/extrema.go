package metrics

import (
	"math"

	"github.com/san-kum/lvsim/internal/dynamo"
)

// Extremum records the minimum or maximum of one state component.
type Extremum struct {
	name    string
	index   int
	max     bool
	value   float64
	samples int
}

func NewMin(name string, index int) *Extremum {
	return &Extremum{name: name, index: index}
}

func NewMax(name string, index int) *Extremum {
	return &Extremum{name: name, index: index, max: true}
}

func (e *Extremum) Name() string { return e.name }

func (e *Extremum) Observe(x dynamo.State, t float64) {
	if e.index >= len(x) {
		return
	}
	v := x[e.index]
	if e.samples == 0 || (e.max && v > e.value) || (!e.max && v < e.value) {
		e.value = v
	}
	e.samples++
}

func (e *Extremum) Value() float64 {
	if e.samples == 0 {
		return math.NaN()
	}
	return e.value
}

func (e *Extremum) Reset() {
	e.value = 0
	e.samples = 0
}
