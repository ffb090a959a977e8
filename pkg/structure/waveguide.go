package structure

import (
	"fmt"
	"math"
	"math/cmplx"

	"toy-photonic/internal/consts"
)

// Waveguide propagates the field from its first pin to its second over a
// physical length. The propagation constant is a second-order expansion of
// the wavevector around the medium's central frequency, and the amplitude is
// attenuated by the medium's dB/m loss.
type Waveguide struct {
	BaseStructure
	length float64
	medium Medium
	omegas []float64
}

func NewWaveguide(name string, length float64, med Medium, omegas []float64, pins []*Pin) (*Waveguide, error) {
	if len(pins) != 2 {
		return nil, fmt.Errorf("waveguide %q: %w: want 2, got %d", name, ErrPinCount, len(pins))
	}
	if pins[0] == nil || pins[1] == nil {
		return nil, fmt.Errorf("waveguide %q: %w", name, ErrNilPin)
	}
	if length < 0 {
		return nil, fmt.Errorf("waveguide %q: %w: %g", name, ErrNegativeLength, length)
	}
	if med.CentralWavelength <= 0 {
		return nil, fmt.Errorf("waveguide %q: %w: %g", name, ErrWavelength, med.CentralWavelength)
	}
	return &Waveguide{
		BaseStructure: newBase(name, "Waveguide", pins),
		length:        length,
		medium:        med,
		omegas:        omegas,
	}, nil
}

func (w *Waveguide) Type() string { return "Waveguide" }

func (w *Waveguide) NumEquations() int { return 1 }

func (w *Waveguide) Length() float64 { return w.length }

func (w *Waveguide) Medium() Medium { return w.medium }

// Wavevector returns the propagation constant at every sweep sample:
// zero order from the effective index, first order from the group index,
// second order from the GVD coefficient.
func (w *Waveguide) Wavevector() []float64 {
	omega0 := w.medium.CentralFrequency()
	k := make([]float64, len(w.omegas))
	for i, omega := range w.omegas {
		d := omega - omega0
		k[i] = w.medium.EffectiveIndex*omega0/consts.LIGHTSPEED +
			w.medium.GroupIndex*d/consts.LIGHTSPEED +
			0.5*w.medium.GVD*d*d
	}
	return k
}

// TransferCoefficient returns the complex factor relating output to input
// amplitude at every sweep sample.
func (w *Waveguide) TransferCoefficient() []complex128 {
	lossAmplitude := math.Exp(-w.medium.LossDB * math.Ln10 / 20 * w.length)
	k := w.Wavevector()
	t := make([]complex128, len(k))
	for i := range k {
		t[i] = complex(lossAmplitude, 0) * cmplx.Exp(complex(0, k[i]*w.length))
	}
	return t
}

func (w *Waveguide) FieldEquations() []Equation {
	t := w.TransferCoefficient()
	neg := make([]complex128, len(t))
	for i := range t {
		neg[i] = -t[i]
	}
	return []Equation{{
		Terms: []Term{
			{Pin: w.pins[0], Coeff: Sampled(neg)},
			{Pin: w.pins[1], Coeff: Constant(1)},
		},
	}}
}
