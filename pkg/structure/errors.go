package structure

import "errors"

// Construction-time parameter errors. All of these are detected when a
// structure is built, never at solve time.
var (
	ErrPinCount       = errors.New("structure: pin count does not match structure contract")
	ErrNilPin         = errors.New("structure: nil pin")
	ErrNoAllocator    = errors.New("structure: pins omitted and no allocator given")
	ErrCouplingRange  = errors.New("structure: cross-coupling coefficient outside [0, 1]")
	ErrNegativeLength = errors.New("structure: length must be non-negative")
	ErrWavelength     = errors.New("structure: central wavelength must be positive")
)
