package structure

import (
	"fmt"
	"math"
)

// RingInterferometer is a double-ring device with an interferometer arm: the
// main ring is threaded through an input coupler, a ring coupler and a
// through coupler, a Mach-Zehnder arm runs in parallel with the ring between
// the two bus couplers, and an auxiliary ring closes over the ring coupler.
// An input Source is part of the assembly, so the structure solves as-is.
//
// Pin convention:
//
//	pins[0..3]  input coupler   [bus in, ring return, arm out, ring out]
//	pins[4..7]  through coupler [arm in, ring in, bus out, ring return]
//	pins[8..11] ring coupler    [main in, aux return, main out, aux out]
//
// pins[1] is the intra-cavity monitor used for field-enhancement spectra.
// Setting RingCoupling to zero isolates the auxiliary ring.
type RingInterferometer struct {
	baseComposite
	cfg RingInterferometerConfig
	arc *Waveguide
}

type RingInterferometerConfig struct {
	MainRadius      float64
	AuxiliaryRadius float64
	ArmLength       float64 // Mach-Zehnder arm length
	InputCoupling   float64
	ThroughCoupling float64
	RingCoupling    float64
	InputAmplitude  float64
	Medium          Medium
	Omegas          []float64
}

func NewRingInterferometer(name string, cfg RingInterferometerConfig, alloc *PinAllocator) (*RingInterferometer, error) {
	if alloc == nil {
		return nil, fmt.Errorf("interferometer %q: %w", name, ErrNoAllocator)
	}
	if cfg.MainRadius < 0 || cfg.AuxiliaryRadius < 0 || cfg.ArmLength < 0 {
		return nil, fmt.Errorf("interferometer %q: %w", name, ErrNegativeLength)
	}
	pins := alloc.AllocateN(12)

	ri := &RingInterferometer{cfg: cfg}
	ri.BaseStructure = newBase(name, "RingInterferometer", pins)

	input, err := NewDirectionalCoupler(ri.Name()+".input", CouplerConfig{
		CrossCoupling: cfg.InputCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins[0:4])
	if err != nil {
		return nil, err
	}
	through, err := NewDirectionalCoupler(ri.Name()+".through", CouplerConfig{
		CrossCoupling: cfg.ThroughCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins[4:8])
	if err != nil {
		return nil, err
	}
	ringCoupler, err := NewDirectionalCoupler(ri.Name()+".ring", CouplerConfig{
		CrossCoupling: cfg.RingCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins[8:12])
	if err != nil {
		return nil, err
	}

	// The main ring is split in three arcs by the couplers it threads:
	// input -> ring coupler, ring coupler -> through, through -> input.
	arm, err := NewWaveguide(ri.Name()+".arm", cfg.ArmLength, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[2], pins[4]})
	if err != nil {
		return nil, err
	}
	arcUp, err := NewWaveguide(ri.Name()+".arc-up", math.Pi*cfg.MainRadius/2, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[3], pins[8]})
	if err != nil {
		return nil, err
	}
	arcDown, err := NewWaveguide(ri.Name()+".arc-down", math.Pi*cfg.MainRadius/2, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[10], pins[5]})
	if err != nil {
		return nil, err
	}
	arcReturn, err := NewWaveguide(ri.Name()+".arc-return", math.Pi*cfg.MainRadius, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[7], pins[1]})
	if err != nil {
		return nil, err
	}
	auxRing, err := NewWaveguide(ri.Name()+".aux-ring", 2*math.Pi*cfg.AuxiliaryRadius, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[11], pins[9]})
	if err != nil {
		return nil, err
	}

	in, err := NewSource(ri.Name()+".in", cfg.InputAmplitude, 0, pins[0])
	if err != nil {
		return nil, err
	}

	ri.arc = arcUp
	ri.children = []Structure{input, through, ringCoupler, arm, arcUp, arcDown, arcReturn, auxRing, in}
	return ri, nil
}

func (ri *RingInterferometer) Type() string { return "RingInterferometer" }

// Wavevector returns the main-ring propagation constant per sample.
func (ri *RingInterferometer) Wavevector() []float64 {
	return ri.arc.Wavevector()
}

// Transmission is the power at the bus output of the through coupler.
func (ri *RingInterferometer) Transmission(fs FieldSet) []float64 {
	return powerSeries(fs.PinSeries(ri.pins[6]))
}

// FieldEnhancement is the field magnitude at the main-ring return into the
// input coupler.
func (ri *RingInterferometer) FieldEnhancement(fs FieldSet) []float64 {
	return magnitudeSeries(fs.PinSeries(ri.pins[1]))
}
