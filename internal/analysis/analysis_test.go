package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/lvsim/internal/lotka"
)

func TestConvergenceOrder(t *testing.T) {
	prm := lotka.DefaultParams()

	tests := []struct {
		name     string
		scheme   lotka.Scheme
		hs       []float64
		min, max float64
	}{
		{"euler", lotka.Euler, []float64{0.005, 0.0025}, 0.7, 1.3},
		{"rk4", lotka.RK4, []float64{0.05, 0.025}, 3.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := Convergence(tt.scheme, prm, 80, 20, 10, tt.hs, 0.001)
			if err != nil {
				t.Fatalf("convergence: %v", err)
			}
			if len(rep.Points) != len(tt.hs) {
				t.Fatalf("expected %d points, got %d", len(tt.hs), len(rep.Points))
			}
			if !math.IsNaN(rep.Points[0].Order) {
				t.Errorf("first point should have no order, got %g", rep.Points[0].Order)
			}
			for i, pt := range rep.Points[1:] {
				if pt.Order < tt.min || pt.Order > tt.max {
					t.Errorf("point %d: order %g outside [%g, %g]", i+1, pt.Order, tt.min, tt.max)
				}
				if pt.Err >= rep.Points[i].Err {
					t.Errorf("point %d: error did not shrink (%g >= %g)", i+1, pt.Err, rep.Points[i].Err)
				}
			}
		})
	}
}

func TestConvergenceRejectsGrid(t *testing.T) {
	prm := lotka.DefaultParams()

	_, err := Convergence(lotka.RK4, prm, 80, 20, 10, []float64{0.3}, 0.001)
	if !errors.Is(err, ErrGrid) {
		t.Errorf("expected ErrGrid, got %v", err)
	}

	_, err = Convergence(lotka.Scheme("midpoint"), prm, 80, 20, 10, []float64{0.1}, 0.001)
	if !errors.Is(err, lotka.ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestObservedOrder(t *testing.T) {
	if got := ObservedOrder(0.1, 16e-4, 0.05, 1e-4); math.Abs(got-4) > 1e-12 {
		t.Errorf("expected order 4, got %g", got)
	}
	if !math.IsNaN(ObservedOrder(0.1, 0, 0.05, 1)) {
		t.Error("expected NaN for zero error")
	}

	hs := HalvingSequence(0.4, 3)
	if len(hs) != 3 || hs[0] != 0.4 || hs[1] != 0.2 || hs[2] != 0.1 {
		t.Errorf("unexpected halving sequence %v", hs)
	}
}

func TestDirectionField(t *testing.T) {
	prm := lotka.DefaultParams()

	field, err := DirectionField(prm, 0, 60, 0, 32, 3, 3)
	if err != nil {
		t.Fatalf("direction field: %v", err)
	}
	if len(field) != 9 {
		t.Fatalf("expected 9 vectors, got %d", len(field))
	}

	// The grid centre is the equilibrium (30, 16).
	centre := field[4]
	if centre.P != 30 || centre.D != 16 {
		t.Fatalf("unexpected centre (%g, %g)", centre.P, centre.D)
	}
	if math.Abs(centre.DP) > 1e-12 || math.Abs(centre.DD) > 1e-12 {
		t.Errorf("expected zero flow at equilibrium, got (%g, %g)", centre.DP, centre.DD)
	}

	for _, v := range field {
		dp, dd := lotka.RHS(v.P, v.D, prm)
		if v.DP != dp || v.DD != dd {
			t.Errorf("vector at (%g, %g) does not match RHS", v.P, v.D)
		}
	}

	if _, err := DirectionField(prm, 0, 1, 0, 1, 1, 5); !errors.Is(err, ErrGridSize) {
		t.Errorf("expected ErrGridSize, got %v", err)
	}
}

func TestNullclines(t *testing.T) {
	nc, err := Nullclines(lotka.DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(nc.PredatorP-30) > 1e-12 || math.Abs(nc.PreyD-16) > 1e-12 {
		t.Errorf("unexpected nullclines %+v", nc)
	}

	_, err = Nullclines(lotka.Params{Alpha: 1, Beta: 0, Delta: 1, Gamma: 1})
	if !errors.Is(err, lotka.ErrNoEquilibrium) {
		t.Errorf("expected ErrNoEquilibrium, got %v", err)
	}
}

func TestSingleSpeciesLimits(t *testing.T) {
	prm := lotka.DefaultParams()

	t.Run("no predators", func(t *testing.T) {
		tr, err := lotka.Integrate(lotka.RK4, prm, 80, 0, 10, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		want := NoPredatorGrowth(prm.Alpha, 80, tr.T)
		if e := MaxRelativeError(tr.P, want); e > 1e-6 {
			t.Errorf("rk4 prey growth off by %g", e)
		}
	})

	t.Run("no prey", func(t *testing.T) {
		tr, err := lotka.Integrate(lotka.Euler, prm, 0, 20, 10, 0.001)
		if err != nil {
			t.Fatal(err)
		}
		want := NoPreyDecay(prm.Gamma, 20, tr.T)
		if e := MaxRelativeError(tr.D, want); e > 5e-3 {
			t.Errorf("euler predator decay off by %g", e)
		}
	})
}

func TestOrbits(t *testing.T) {
	prm := lotka.DefaultParams()

	orbits, err := Orbits(lotka.RK4, prm, 30, 16, 20, 0.05, nil)
	if err != nil {
		t.Fatalf("orbits: %v", err)
	}
	if len(orbits) != len(DefaultOrbitScales) {
		t.Fatalf("expected %d orbits, got %d", len(DefaultOrbitScales), len(orbits))
	}
	for i, o := range orbits {
		if o.Scale != DefaultOrbitScales[i] {
			t.Errorf("orbit %d has scale %g", i, o.Scale)
		}
		if o.Trajectory.P[0] != o.Scale*30 || o.Trajectory.D[0] != o.Scale*16 {
			t.Errorf("orbit %d starts at (%g, %g)", i, o.Trajectory.P[0], o.Trajectory.D[0])
		}
	}

	_, err = Orbits(lotka.RK4, prm, 30, 16, 20, -1, []float64{1})
	if err == nil {
		t.Error("expected error for negative step")
	}
}

func TestDominantPeriod(t *testing.T) {
	dt := 0.05
	series := make([]float64, 1001)
	for i := range series {
		series[i] = 10 + 3*math.Sin(2*math.Pi*float64(i)*dt/5)
	}

	if got := DominantPeriod(series, dt); math.Abs(got-5) > 0.3 {
		t.Errorf("expected period near 5, got %g", got)
	}

	flat := make([]float64, 64)
	for i := range flat {
		flat[i] = 7
	}
	if got := DominantPeriod(flat, dt); got != 0 {
		t.Errorf("expected 0 for a constant series, got %g", got)
	}

	if got := LinearPeriod(0.8, 0.6); math.Abs(got-2*math.Pi/math.Sqrt(0.48)) > 1e-12 {
		t.Errorf("unexpected linear period %g", got)
	}
}

func TestPhasePortraitToASCII(t *testing.T) {
	prm := lotka.DefaultParams()
	tr, err := lotka.Integrate(lotka.RK4, prm, 80, 20, 30, 0.05)
	if err != nil {
		t.Fatal(err)
	}

	portrait := NewPhasePortrait(prm, tr)
	if portrait.Marker == nil || math.Abs(portrait.Marker.X-30) > 1e-9 || math.Abs(portrait.Marker.Y-16) > 1e-9 {
		t.Fatalf("unexpected marker %+v", portrait.Marker)
	}

	out := PhasePortraitToASCII(portrait, 40, 12)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d", len(lines))
	}
	if !strings.ContainsRune(out, '*') {
		t.Error("expected equilibrium marker")
	}
	if !strings.ContainsRune(out, '•') {
		t.Error("expected orbit points")
	}

	if PhasePortraitToASCII(nil, 10, 10) != "" {
		t.Error("expected empty output for nil portrait")
	}
	if PhasePortraitToASCII(&PhasePortrait{}, 10, 10) != "" {
		t.Error("expected empty output for empty portrait")
	}
}
