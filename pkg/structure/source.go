package structure

import (
	"fmt"
	"math/cmplx"
)

// Source injects an external field at a single pin. With amplitude zero it
// acts as an explicit "no input" boundary condition terminating an otherwise
// dangling pin.
type Source struct {
	BaseStructure
	amplitude complex128
}

func NewSource(name string, amplitude, phase float64, pin *Pin) (*Source, error) {
	if pin == nil {
		return nil, fmt.Errorf("source %q: %w", name, ErrNilPin)
	}
	return &Source{
		BaseStructure: newBase(name, "Source", []*Pin{pin}),
		amplitude:     complex(amplitude, 0) * cmplx.Exp(complex(0, phase)),
	}, nil
}

func (s *Source) Type() string { return "Source" }

func (s *Source) NumEquations() int { return 1 }

// Amplitude returns the injected complex field amplitude.
func (s *Source) Amplitude() complex128 {
	return s.amplitude
}

func (s *Source) FieldEquations() []Equation {
	return []Equation{{
		Terms: []Term{{Pin: s.pins[0], Coeff: Constant(1)}},
		RHS:   s.amplitude,
	}}
}
