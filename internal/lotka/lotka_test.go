package lotka

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lvsim/internal/dynamo"
)

func TestRHS(t *testing.T) {
	dp, dd := RHS(80, 20, DefaultParams())

	if math.Abs(dp-(-16)) > 1e-12 {
		t.Errorf("dP: got %v, want -16", dp)
	}
	if math.Abs(dd-20) > 1e-12 {
		t.Errorf("dD: got %v, want 20", dd)
	}
}

func TestSystemMatchesRHS(t *testing.T) {
	prm := Params{Alpha: 1.1, Beta: 0.4, Delta: 0.1, Gamma: 0.4}
	sys := NewSystem(prm)

	dx := sys.Derive(dynamo.State{12.5, 3.25}, 0)
	dp, dd := RHS(12.5, 3.25, prm)
	if dx[0] != dp || dx[1] != dd {
		t.Errorf("System.Derive = %v, RHS = (%v, %v)", dx, dp, dd)
	}
	if sys.StateDim() != 2 {
		t.Errorf("expected state dim 2, got %d", sys.StateDim())
	}
}

func TestEulerStep(t *testing.T) {
	p, d := EulerStep(80, 20, 0.1, DefaultParams())

	if math.Abs(p-78.4) > 1e-12 {
		t.Errorf("P: got %v, want 78.4", p)
	}
	if math.Abs(d-22) > 1e-12 {
		t.Errorf("D: got %v, want 22", d)
	}
}

func TestEulerStepFloorsAtZero(t *testing.T) {
	// dP = 0.8*80 - 0.05*80*20 = -16, so a step of 10 overshoots below zero.
	p, d := EulerStep(80, 20, 10, DefaultParams())
	if p != 0 {
		t.Errorf("expected prey floored to 0, got %v", p)
	}
	if d <= 0 {
		t.Errorf("expected predators positive, got %v", d)
	}
}

func TestRK4StepMatchesClassicalTableau(t *testing.T) {
	prm := DefaultParams()
	P, D, h := 80.0, 20.0, 0.1

	k1p, k1d := RHS(P, D, prm)
	k2p, k2d := RHS(P+h/2*k1p, D+h/2*k1d, prm)
	k3p, k3d := RHS(P+h/2*k2p, D+h/2*k2d, prm)
	k4p, k4d := RHS(P+h*k3p, D+h*k3d, prm)
	wantP := P + h/6*(k1p+2*k2p+2*k3p+k4p)
	wantD := D + h/6*(k1d+2*k2d+2*k3d+k4d)

	p, d := RK4Step(P, D, h, prm)
	if math.Abs(p-wantP) > 1e-12 || math.Abs(d-wantD) > 1e-12 {
		t.Errorf("RK4Step = (%v, %v), want (%v, %v)", p, d, wantP, wantD)
	}
}

func TestEquilibrium(t *testing.T) {
	p, d, err := DefaultParams().Equilibrium()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p-30) > 1e-12 || math.Abs(d-16) > 1e-12 {
		t.Errorf("equilibrium = (%v, %v), want (30, 16)", p, d)
	}

	dp, dd := RHS(p, d, DefaultParams())
	if math.Abs(dp) > 1e-12 || math.Abs(dd) > 1e-12 {
		t.Errorf("rates at equilibrium should vanish, got (%v, %v)", dp, dd)
	}

	if _, _, err := (Params{Alpha: 1, Gamma: 1, Delta: 0.1}).Equilibrium(); !errors.Is(err, ErrNoEquilibrium) {
		t.Errorf("expected ErrNoEquilibrium, got %v", err)
	}
}

func TestFirstIntegral(t *testing.T) {
	prm := DefaultParams()
	if !math.IsNaN(prm.FirstIntegral(0, 20)) {
		t.Error("expected NaN with zero prey")
	}

	v := prm.FirstIntegral(80, 20)
	want := 0.02*80 - 0.6*math.Log(80) + 0.05*20 - 0.8*math.Log(20)
	if math.Abs(v-want) > 1e-12 {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in   string
		want Scheme
		err  bool
	}{
		{"euler", Euler, false},
		{"RK4", RK4, false},
		{" rk4 ", RK4, false},
		{"rk45", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseScheme(tt.in)
		if tt.err {
			if !errors.Is(err, ErrUnknownScheme) {
				t.Errorf("ParseScheme(%q): expected ErrUnknownScheme, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseScheme(%q) = %q, %v", tt.in, got, err)
		}
	}

	if Euler.Order() != 1 || RK4.Order() != 4 {
		t.Error("unexpected scheme order")
	}
	if Euler.Evaluations() != 1 || RK4.Evaluations() != 4 {
		t.Error("unexpected evaluations per step")
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		tmax, h float64
		want    int
	}{
		{50, 0.05, 1001},
		{10, 0.1, 101},
		{10, 0.3, 34},
		{5, 2, 3},
		{0, 0.1, 1},
	}

	for _, tt := range tests {
		if got := SampleCount(tt.tmax, tt.h); got != tt.want {
			t.Errorf("SampleCount(%v, %v) = %d, want %d", tt.tmax, tt.h, got, tt.want)
		}
	}
}

func TestIntegrateShape(t *testing.T) {
	tr, err := Integrate(RK4, DefaultParams(), 80, 20, 50, 0.05)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	if tr.Len() != 1001 || len(tr.P) != 1001 || len(tr.D) != 1001 {
		t.Fatalf("expected 1001 aligned samples, got T=%d P=%d D=%d", len(tr.T), len(tr.P), len(tr.D))
	}
	if tr.P[0] != 80 || tr.D[0] != 20 || tr.T[0] != 0 {
		t.Errorf("first sample should be the initial state, got (%v, %v, %v)", tr.T[0], tr.P[0], tr.D[0])
	}

	tf, _, _ := tr.Final()
	if math.Abs(tf-50) > 1e-9 {
		t.Errorf("final time %v, want 50", tf)
	}
	if tr.Scheme != RK4 || tr.H != 0.05 {
		t.Errorf("unexpected metadata %s %v", tr.Scheme, tr.H)
	}
}

func TestIntegrateSteps(t *testing.T) {
	tr, err := IntegrateSteps(Euler, DefaultParams(), 80, 20, 0.5, 10)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if tr.Len() != 11 {
		t.Errorf("expected 11 samples, got %d", tr.Len())
	}
	if tr.T[10] != 5 {
		t.Errorf("expected last time 5, got %v", tr.T[10])
	}

	p, d := EulerStep(80, 20, 0.5, DefaultParams())
	if tr.P[1] != p || tr.D[1] != d {
		t.Errorf("driver and EulerStep disagree: (%v, %v) vs (%v, %v)", tr.P[1], tr.D[1], p, d)
	}
}

func TestIntegrateErrors(t *testing.T) {
	prm := DefaultParams()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"zero step", func() error { _, err := Integrate(RK4, prm, 80, 20, 50, 0); return err }, dynamo.ErrInvalidStep},
		{"nan step", func() error { _, err := Integrate(RK4, prm, 80, 20, 50, math.NaN()); return err }, dynamo.ErrInvalidStep},
		{"nan horizon", func() error { _, err := Integrate(RK4, prm, 80, 20, math.NaN(), 0.1); return err }, ErrInvalidHorizon},
		{"unknown scheme", func() error { _, err := Integrate("midpoint", prm, 80, 20, 50, 0.1); return err }, ErrUnknownScheme},
		{"too many steps", func() error {
			_, err := IntegrateWith(RK4, prm, 80, 20, 50, 0.1, Options{MaxSteps: 100})
			return err
		}, dynamo.ErrTooManySteps},
		{"step far below the limit", func() error { _, err := Integrate(RK4, prm, 80, 20, 300, 1e-300); return err }, dynamo.ErrTooManySteps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestIntegrateOverflow(t *testing.T) {
	tests := []struct {
		name   string
		scheme Scheme
		prm    Params
		h      float64
	}{
		{"prey growth", Euler, Params{Alpha: 1e308, Beta: 1, Delta: 1, Gamma: 1}, 1},
		{"predation euler", Euler, Params{Alpha: 0.8, Beta: 1e308, Delta: 0.02, Gamma: 0.6}, 0.05},
		{"predation rk4", RK4, Params{Alpha: 0.8, Beta: 1e308, Delta: 0.02, Gamma: 0.6}, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Integrate(tt.scheme, tt.prm, 80, 20, 10, tt.h)
			if tr != nil {
				t.Error("expected no trajectory on overflow")
			}
			if !errors.Is(err, dynamo.ErrOverflow) {
				t.Fatalf("expected ErrOverflow, got %v", err)
			}

			var simErr *dynamo.SimulationError
			if !errors.As(err, &simErr) || simErr.Step != 1 {
				t.Errorf("expected SimulationError at step 1, got %v", err)
			}
		})
	}
}

func TestCollapsedSystemKeepsStepping(t *testing.T) {
	tr, err := Integrate(RK4, DefaultParams(), 0, 0, 20, 0.5)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}
	if tr.Len() != 41 {
		t.Errorf("expected full horizon of 41 samples, got %d", tr.Len())
	}
	for k := range tr.T {
		if tr.P[k] != 0 || tr.D[k] != 0 {
			t.Fatalf("sample %d left the origin: (%v, %v)", k, tr.P[k], tr.D[k])
		}
	}
}
