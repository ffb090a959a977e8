package solver

import (
	"fmt"

	"toy-photonic/internal/consts"
	"toy-photonic/pkg/structure"
)

// LinearSweep returns n angular frequencies evenly spaced from start to stop
// inclusive. n == 1 yields just start.
func LinearSweep(start, stop float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d points", ErrEmptySweep, n)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	if stop == start {
		return nil, fmt.Errorf("%w: start == stop == %g", ErrSweepOrder, start)
	}

	omegas := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range omegas {
		omegas[i] = start + float64(i)*step
	}
	return omegas, nil
}

// ResonanceSweep returns n angular frequencies centered on the given
// wavelength, spanning nres free spectral ranges of a ring with the given
// radius and group index.
func ResonanceSweep(centralWavelength, radius, groupIndex float64, nres float64, n int) ([]float64, error) {
	omega0 := structure.WavelengthToAngularFrequency(centralWavelength)
	omegaFSR := consts.LIGHTSPEED / radius / groupIndex
	return LinearSweep(omega0-nres/2*omegaFSR, omega0+nres/2*omegaFSR, n)
}

// ValidateSweep checks the solver's sweep contract: at least one sample,
// strictly monotonic in either direction.
func ValidateSweep(omegas []float64) error {
	if len(omegas) == 0 {
		return ErrEmptySweep
	}
	if len(omegas) == 1 {
		return nil
	}

	ascending := omegas[1] > omegas[0]
	for i := 1; i < len(omegas); i++ {
		d := omegas[i] - omegas[i-1]
		if d == 0 || (d > 0) != ascending {
			return fmt.Errorf("%w: samples %d..%d", ErrSweepOrder, i-1, i)
		}
	}
	return nil
}
