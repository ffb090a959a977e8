package structure

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"toy-photonic/internal/consts"
)

// Structure is the contract every circuit element implements: a fixed set of
// pins and the linear field equations relating the field amplitudes at those
// pins.
type Structure interface {
	Name() string
	Type() string
	Pins() []*Pin
	NumPins() int
	NumEquations() int
	FieldEquations() []Equation
}

// Composite is a structure assembled from child structures that share some of
// its pins. Its field equations are the recursively flattened union of its
// children's equations.
type Composite interface {
	Structure
	Children() []Structure
}

// FieldSet is a solved field array queried by pin. Implemented by the
// solver's result type.
type FieldSet interface {
	PinSeries(p *Pin) []complex128
}

type BaseStructure struct {
	name string
	pins []*Pin
}

func newBase(name, typ string, pins []*Pin) BaseStructure {
	if name == "" {
		name = strings.ToLower(typ) + "-" + uuid.NewString()[:8]
	}
	return BaseStructure{name: name, pins: pins}
}

func (b *BaseStructure) Name() string {
	return b.name
}

func (b *BaseStructure) Pins() []*Pin {
	return b.pins
}

func (b *BaseStructure) NumPins() int {
	return len(b.pins)
}

// Medium carries the propagation parameters shared by the waveguides of an
// assembly.
type Medium struct {
	EffectiveIndex    float64
	GroupIndex        float64
	GVD               float64 // group-velocity dispersion coefficient (s^2/m)
	LossDB            float64 // propagation loss (dB/m)
	CentralWavelength float64 // expansion wavelength (m)
}

func DefaultMedium() Medium {
	return Medium{
		EffectiveIndex:    1,
		GroupIndex:        1,
		GVD:               0,
		LossDB:            10,
		CentralWavelength: consts.DEFWAVELENGTH,
	}
}

// CentralFrequency returns the angular frequency of the medium's expansion
// wavelength.
func (m Medium) CentralFrequency() float64 {
	return WavelengthToAngularFrequency(m.CentralWavelength)
}

func WavelengthToAngularFrequency(wavelength float64) float64 {
	return 2 * math.Pi * consts.LIGHTSPEED / wavelength
}
