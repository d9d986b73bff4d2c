package metrics

import (
	"github.com/san-kum/lvsim/internal/dynamo"
	"github.com/san-kum/lvsim/internal/lotka"
)

const (
	MinPrey            = "min_prey"
	MaxPrey            = "max_prey"
	MinPredators       = "min_predators"
	MaxPredators       = "max_predators"
	PreyExtinction     = "prey_extinct_at"
	PredatorExtinction = "predators_extinct_at"
	InvariantDriftName = "invariant_drift"
)

// Default returns a fresh set of population metrics for one run. Metrics
// hold state, so every run needs its own set.
func Default(prm lotka.Params) []dynamo.Metric {
	return []dynamo.Metric{
		NewInvariantDrift(prm),
		NewMin(MinPrey, 0),
		NewMax(MaxPrey, 0),
		NewMin(MinPredators, 1),
		NewMax(MaxPredators, 1),
		NewExtinction(PreyExtinction, 0),
		NewExtinction(PredatorExtinction, 1),
	}
}
