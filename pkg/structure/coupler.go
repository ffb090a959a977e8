package structure

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DirectionalCoupler mixes two inputs into two outputs with a unitary 2x2
// scattering relation. Pins are ordered [in0, in1, out0, out1]:
//
//	sigma*A(in0) + kappa*A(in1) = A(out0)
//	-conj(kappa)*A(in0) + conj(sigma)*A(in1) = A(out1)
//
// where kappa is the cross-coupling and sigma the self-coupling coefficient.
type DirectionalCoupler struct {
	BaseStructure
	kappa complex128
	sigma complex128
}

type CouplerConfig struct {
	CrossCoupling float64 // magnitude of the cross-coupling coefficient, in [0, 1]
	SelfPhase     float64
	CrossPhase    float64
}

func DefaultCouplerConfig() CouplerConfig {
	return CouplerConfig{
		CrossCoupling: math.Sqrt(3.0 / 4.0),
		SelfPhase:     0,
		CrossPhase:    math.Pi / 2,
	}
}

func NewDirectionalCoupler(name string, cfg CouplerConfig, pins []*Pin) (*DirectionalCoupler, error) {
	if len(pins) != 4 {
		return nil, fmt.Errorf("coupler %q: %w: want 4, got %d", name, ErrPinCount, len(pins))
	}
	for _, p := range pins {
		if p == nil {
			return nil, fmt.Errorf("coupler %q: %w", name, ErrNilPin)
		}
	}
	if cfg.CrossCoupling < 0 || cfg.CrossCoupling > 1 {
		return nil, fmt.Errorf("coupler %q: %w: %g", name, ErrCouplingRange, cfg.CrossCoupling)
	}

	// Self-coupling magnitude preserves unitarity: |sigma|^2 + |kappa|^2 = 1.
	selfMag := math.Sqrt(1 - cfg.CrossCoupling*cfg.CrossCoupling)
	return &DirectionalCoupler{
		BaseStructure: newBase(name, "DirectionalCoupler", pins),
		kappa:         complex(cfg.CrossCoupling, 0) * cmplx.Exp(complex(0, cfg.CrossPhase)),
		sigma:         complex(selfMag, 0) * cmplx.Exp(complex(0, cfg.SelfPhase)),
	}, nil
}

func (c *DirectionalCoupler) Type() string { return "DirectionalCoupler" }

func (c *DirectionalCoupler) NumEquations() int { return 2 }

func (c *DirectionalCoupler) Kappa() complex128 { return c.kappa }

func (c *DirectionalCoupler) Sigma() complex128 { return c.sigma }

func (c *DirectionalCoupler) FieldEquations() []Equation {
	return []Equation{
		{
			Terms: []Term{
				{Pin: c.pins[0], Coeff: Constant(c.sigma)},
				{Pin: c.pins[1], Coeff: Constant(c.kappa)},
				{Pin: c.pins[2], Coeff: Constant(-1)},
			},
		},
		{
			Terms: []Term{
				{Pin: c.pins[0], Coeff: Constant(-cmplx.Conj(c.kappa))},
				{Pin: c.pins[1], Coeff: Constant(cmplx.Conj(c.sigma))},
				{Pin: c.pins[3], Coeff: Constant(-1)},
			},
		},
	}
}
