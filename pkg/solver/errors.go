package solver

import "errors"

var (
	// ErrEquationCount indicates a malformed circuit: the flattened equation
	// count does not equal the distinct pin count, so the system is under- or
	// over-determined. Detected before any solve is attempted.
	ErrEquationCount = errors.New("solver: equation count does not match distinct pin count")

	// ErrSingular indicates the coefficient matrix could not be factored at
	// one or more sweep samples.
	ErrSingular = errors.New("solver: singular coefficient matrix")

	// ErrEmptySweep indicates a sweep with no frequency samples.
	ErrEmptySweep = errors.New("solver: sweep must contain at least one frequency")

	// ErrSweepOrder indicates a sweep that is not strictly monotonic.
	ErrSweepOrder = errors.New("solver: sweep must be strictly monotonic")

	// ErrSeriesLength indicates a frequency-dependent coefficient whose
	// sample series does not match the sweep length.
	ErrSeriesLength = errors.New("solver: coefficient series length does not match sweep length")

	// ErrUnknownPin indicates an equation referencing a pin that no structure
	// in the tree exposes.
	ErrUnknownPin = errors.New("solver: equation references a pin outside the structure tree")
)
