package lotka

import "github.com/san-kum/lvsim/internal/dynamo"

// RHS returns the instantaneous rates (dP/dt, dD/dt) at (prey, predators).
func RHS(prey, predators float64, prm Params) (dp, dd float64) {
	dp = prm.Alpha*prey - prm.Beta*prey*predators
	dd = prm.Delta*prey*predators - prm.Gamma*predators
	return dp, dd
}

// System adapts RHS to dynamo.System. State layout is {P, D}.
type System struct {
	Params Params
}

func NewSystem(prm Params) *System {
	return &System{Params: prm}
}

func (s *System) Derive(x dynamo.State, t float64) dynamo.State {
	dp, dd := RHS(x[0], x[1], s.Params)
	return dynamo.State{dp, dd}
}

func (s *System) StateDim() int { return 2 }
