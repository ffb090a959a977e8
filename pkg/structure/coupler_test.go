package structure

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

func TestCouplerUnitarity(t *testing.T) {
	alloc := NewPinAllocator()
	for i := 0; i <= 20; i++ {
		kappa := float64(i) / 20
		dc, err := NewDirectionalCoupler("dc", CouplerConfig{
			CrossCoupling: kappa,
			SelfPhase:     0.3,
			CrossPhase:    math.Pi / 2,
		}, alloc.AllocateN(4))
		if err != nil {
			t.Fatalf("kappa=%g: %v", kappa, err)
		}
		sum := math.Pow(cmplx.Abs(dc.Sigma()), 2) + math.Pow(cmplx.Abs(dc.Kappa()), 2)
		if math.Abs(sum-1) > 1e-12 {
			t.Errorf("kappa=%g: |sigma|^2 + |kappa|^2 = %g", kappa, sum)
		}
	}
}

func TestCouplerEquations(t *testing.T) {
	alloc := NewPinAllocator()
	pins := alloc.AllocateN(4)
	dc, err := NewDirectionalCoupler("dc", DefaultCouplerConfig(), pins)
	if err != nil {
		t.Fatal(err)
	}

	eqs := dc.FieldEquations()
	if len(eqs) != 2 {
		t.Fatalf("got %d equations, want 2", len(eqs))
	}
	if dc.NumEquations() != 2 {
		t.Errorf("NumEquations: got %d", dc.NumEquations())
	}

	coeff := func(eq Equation, p *Pin) complex128 {
		for _, term := range eq.Terms {
			if term.Pin == p {
				return term.Coeff.At(0)
			}
		}
		t.Fatalf("pin %d missing from equation", p.ID())
		return 0
	}

	if got := coeff(eqs[0], pins[0]); got != dc.Sigma() {
		t.Errorf("eq0 coeff(in0) = %v, want sigma %v", got, dc.Sigma())
	}
	if got := coeff(eqs[0], pins[1]); got != dc.Kappa() {
		t.Errorf("eq0 coeff(in1) = %v, want kappa %v", got, dc.Kappa())
	}
	if got := coeff(eqs[0], pins[2]); got != -1 {
		t.Errorf("eq0 coeff(out0) = %v, want -1", got)
	}

	// Conjugate symmetry between the two scattering rows.
	if got := coeff(eqs[1], pins[0]); got != -cmplx.Conj(dc.Kappa()) {
		t.Errorf("eq1 coeff(in0) = %v, want -conj(kappa)", got)
	}
	if got := coeff(eqs[1], pins[1]); got != cmplx.Conj(dc.Sigma()) {
		t.Errorf("eq1 coeff(in1) = %v, want conj(sigma)", got)
	}
	if got := coeff(eqs[1], pins[3]); got != -1 {
		t.Errorf("eq1 coeff(out1) = %v, want -1", got)
	}

	for _, eq := range eqs {
		if eq.RHS != 0 {
			t.Errorf("coupler equation has non-zero RHS %v", eq.RHS)
		}
	}
}

func TestCouplerParameterDomain(t *testing.T) {
	alloc := NewPinAllocator()

	for _, kappa := range []float64{-0.1, 1.0001, 2} {
		_, err := NewDirectionalCoupler("dc", CouplerConfig{CrossCoupling: kappa}, alloc.AllocateN(4))
		if !errors.Is(err, ErrCouplingRange) {
			t.Errorf("kappa=%g: got %v, want ErrCouplingRange", kappa, err)
		}
	}

	_, err := NewDirectionalCoupler("dc", DefaultCouplerConfig(), alloc.AllocateN(3))
	if !errors.Is(err, ErrPinCount) {
		t.Errorf("3 pins: got %v, want ErrPinCount", err)
	}
}
