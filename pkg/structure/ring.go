package structure

import (
	"fmt"
	"math"
)

// RingResonator is a directional coupler whose two looped ports are closed by
// a waveguide of length 2*pi*radius. Pin convention:
//
//	pins[0] bus input
//	pins[1] ring return into the coupler
//	pins[2] bus through output
//	pins[3] ring output of the coupler (intra-cavity monitor)
//
// The ring contributes 3 equations over its 4 pins; a Source on pins[0]
// closes the system.
type RingResonator struct {
	baseComposite
	cfg  RingConfig
	ring *Waveguide
}

type RingConfig struct {
	Radius        float64
	CrossCoupling float64
	Medium        Medium
	Omegas        []float64
}

func NewRingResonator(name string, cfg RingConfig, pins []*Pin, alloc *PinAllocator) (*RingResonator, error) {
	if pins == nil {
		if alloc == nil {
			return nil, fmt.Errorf("ring %q: %w", name, ErrNoAllocator)
		}
		pins = alloc.AllocateN(4)
	}
	if len(pins) != 4 {
		return nil, fmt.Errorf("ring %q: %w: want 4, got %d", name, ErrPinCount, len(pins))
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("ring %q: %w: radius %g", name, ErrNegativeLength, cfg.Radius)
	}

	r := &RingResonator{cfg: cfg}
	r.BaseStructure = newBase(name, "RingResonator", pins)

	coupler, err := NewDirectionalCoupler(r.Name()+".coupler", CouplerConfig{
		CrossCoupling: cfg.CrossCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins)
	if err != nil {
		return nil, err
	}
	ring, err := NewWaveguide(r.Name()+".ring", 2*math.Pi*cfg.Radius, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[3], pins[1]})
	if err != nil {
		return nil, err
	}

	r.ring = ring
	r.children = []Structure{coupler, ring}
	return r, nil
}

func (r *RingResonator) Type() string { return "RingResonator" }

// Wavevector returns the ring waveguide's propagation constant per sample.
func (r *RingResonator) Wavevector() []float64 {
	return r.ring.Wavevector()
}

// Transmission is the power at the bus through port.
func (r *RingResonator) Transmission(f FieldSet) []float64 {
	return powerSeries(f.PinSeries(r.pins[2]))
}

// FieldEnhancement is the field magnitude inside the cavity, just after the
// coupler.
func (r *RingResonator) FieldEnhancement(f FieldSet) []float64 {
	return magnitudeSeries(f.PinSeries(r.pins[3]))
}

// TheoreticalTransmission is the closed-form all-pass ring response,
// (sigma^2 + a^2 - 2*sigma*a*cos(phi)) / (1 + (sigma*a)^2 - 2*sigma*a*cos(phi)),
// with a the round-trip amplitude loss and phi the round-trip phase.
func (r *RingResonator) TheoreticalTransmission() []float64 {
	circumference := 2 * math.Pi * r.cfg.Radius
	sigma := math.Sqrt(1 - r.cfg.CrossCoupling*r.cfg.CrossCoupling)
	loss := math.Exp(-r.cfg.Medium.LossDB * math.Ln10 / 20 * circumference)
	k := r.ring.Wavevector()

	t := make([]float64, len(k))
	for i := range k {
		cos := math.Cos(k[i] * circumference)
		t[i] = (sigma*sigma + loss*loss - 2*sigma*loss*cos) /
			(1 + sigma*sigma*loss*loss - 2*sigma*loss*cos)
	}
	return t
}
