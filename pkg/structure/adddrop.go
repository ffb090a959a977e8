package structure

import (
	"fmt"
	"math"
)

// AddDropFilter is a ring threaded through two directional couplers: an input
// coupler on the bus and an auxiliary coupler feeding the drop port. The two
// half-ring waveguides each span pi*radius. Pin convention:
//
//	pins[0..3] input coupler  [bus in, ring return, bus through, ring out]
//	pins[4..7] aux coupler    [add in, ring return, drop out, ring out]
//
// 6 equations over 8 pins; Sources on pins[0] (input) and pins[4] (add, zero
// amplitude when unused) close the system.
type AddDropFilter struct {
	baseComposite
	cfg  AddDropConfig
	half *Waveguide
}

type AddDropConfig struct {
	Radius            float64
	InputCoupling     float64
	AuxiliaryCoupling float64
	Medium            Medium
	Omegas            []float64
}

func NewAddDropFilter(name string, cfg AddDropConfig, pins []*Pin, alloc *PinAllocator) (*AddDropFilter, error) {
	if pins == nil {
		if alloc == nil {
			return nil, fmt.Errorf("add-drop %q: %w", name, ErrNoAllocator)
		}
		pins = alloc.AllocateN(8)
	}
	if len(pins) != 8 {
		return nil, fmt.Errorf("add-drop %q: %w: want 8, got %d", name, ErrPinCount, len(pins))
	}
	if cfg.Radius < 0 {
		return nil, fmt.Errorf("add-drop %q: %w: radius %g", name, ErrNegativeLength, cfg.Radius)
	}

	f := &AddDropFilter{cfg: cfg}
	f.BaseStructure = newBase(name, "AddDropFilter", pins)

	input, err := NewDirectionalCoupler(f.Name()+".input", CouplerConfig{
		CrossCoupling: cfg.InputCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins[:4])
	if err != nil {
		return nil, err
	}
	aux, err := NewDirectionalCoupler(f.Name()+".aux", CouplerConfig{
		CrossCoupling: cfg.AuxiliaryCoupling,
		CrossPhase:    math.Pi / 2,
	}, pins[4:])
	if err != nil {
		return nil, err
	}
	upper, err := NewWaveguide(f.Name()+".upper", math.Pi*cfg.Radius, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[3], pins[5]})
	if err != nil {
		return nil, err
	}
	lower, err := NewWaveguide(f.Name()+".lower", math.Pi*cfg.Radius, cfg.Medium, cfg.Omegas,
		[]*Pin{pins[7], pins[1]})
	if err != nil {
		return nil, err
	}

	f.half = upper
	f.children = []Structure{input, aux, upper, lower}
	return f, nil
}

func (f *AddDropFilter) Type() string { return "AddDropFilter" }

// Wavevector returns the ring waveguides' propagation constant per sample.
func (f *AddDropFilter) Wavevector() []float64 {
	return f.half.Wavevector()
}

// DropTransmission is the power at the drop port.
func (f *AddDropFilter) DropTransmission(fs FieldSet) []float64 {
	return powerSeries(fs.PinSeries(f.pins[6]))
}

// ThroughTransmission is the power at the bus through port.
func (f *AddDropFilter) ThroughTransmission(fs FieldSet) []float64 {
	return powerSeries(fs.PinSeries(f.pins[2]))
}

// FieldEnhancement is the field magnitude inside the cavity, just after the
// input coupler.
func (f *AddDropFilter) FieldEnhancement(fs FieldSet) []float64 {
	return magnitudeSeries(fs.PinSeries(f.pins[3]))
}

// TheoreticalDropTransmission is the closed-form drop-port response,
// (kin*kaux*ah)^2 / (1 + (sin*saux*a)^2 - 2*sin*saux*a*cos(phi)), with ah the
// half-loop amplitude loss, a = ah^2 the round-trip loss and phi the
// round-trip phase.
func (f *AddDropFilter) TheoreticalDropTransmission() []float64 {
	circumference := 2 * math.Pi * f.cfg.Radius
	sigmaIn := math.Sqrt(1 - f.cfg.InputCoupling*f.cfg.InputCoupling)
	sigmaAux := math.Sqrt(1 - f.cfg.AuxiliaryCoupling*f.cfg.AuxiliaryCoupling)
	halfLoss := math.Exp(-f.cfg.Medium.LossDB * math.Ln10 / 20 * circumference / 2)
	loss := halfLoss * halfLoss
	num := f.cfg.InputCoupling * f.cfg.AuxiliaryCoupling * halfLoss
	k := f.half.Wavevector()

	t := make([]float64, len(k))
	for i := range k {
		cos := math.Cos(k[i] * circumference)
		denom := 1 + sigmaIn*sigmaIn*sigmaAux*sigmaAux*loss*loss - 2*sigmaIn*sigmaAux*loss*cos
		t[i] = num * num / denom
	}
	return t
}
