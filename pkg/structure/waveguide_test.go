package structure

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"toy-photonic/internal/consts"
)

func testSweep(n int) []float64 {
	omega0 := WavelengthToAngularFrequency(1550e-9)
	omegas := make([]float64, n)
	for i := range omegas {
		omegas[i] = omega0 * (0.999 + 0.002*float64(i)/float64(n-1))
	}
	return omegas
}

func TestWaveguideTransferMagnitude(t *testing.T) {
	t.Run("Lossless", func(t *testing.T) {
		alloc := NewPinAllocator()
		med := Medium{EffectiveIndex: 1.7, GroupIndex: 2, GVD: 0.6e-24, LossDB: 0, CentralWavelength: 1550e-9}
		wg, err := NewWaveguide("wg", 1e-3, med, testSweep(64), alloc.AllocateN(2))
		if err != nil {
			t.Fatal(err)
		}
		for i, tc := range wg.TransferCoefficient() {
			if math.Abs(cmplx.Abs(tc)-1) > 1e-12 {
				t.Errorf("sample %d: |t| = %g, want 1", i, cmplx.Abs(tc))
			}
		}
	})

	t.Run("Lossy", func(t *testing.T) {
		alloc := NewPinAllocator()
		lossDB, length := 10.0, 2e-3
		med := Medium{EffectiveIndex: 1.7, GroupIndex: 2, LossDB: lossDB, CentralWavelength: 1550e-9}
		wg, err := NewWaveguide("wg", length, med, testSweep(64), alloc.AllocateN(2))
		if err != nil {
			t.Fatal(err)
		}
		want := math.Pow(10, -lossDB*length/20)
		for i, tc := range wg.TransferCoefficient() {
			if math.Abs(cmplx.Abs(tc)-want) > 1e-12 {
				t.Errorf("sample %d: |t| = %g, want %g", i, cmplx.Abs(tc), want)
			}
		}
	})
}

func TestWaveguideWavevector(t *testing.T) {
	alloc := NewPinAllocator()
	med := Medium{EffectiveIndex: 1.7, GroupIndex: 2, GVD: 0.6e-24, LossDB: 10, CentralWavelength: 1550e-9}
	omega0 := med.CentralFrequency()
	delta := 1e12
	wg, err := NewWaveguide("wg", 1e-3, med, []float64{omega0, omega0 + delta}, alloc.AllocateN(2))
	if err != nil {
		t.Fatal(err)
	}

	k := wg.Wavevector()
	atCenter := med.EffectiveIndex * omega0 / consts.LIGHTSPEED
	if math.Abs(k[0]-atCenter) > 1e-9*atCenter {
		t.Errorf("k(omega0) = %g, want %g", k[0], atCenter)
	}

	detuned := atCenter + med.GroupIndex*delta/consts.LIGHTSPEED + 0.5*med.GVD*delta*delta
	if math.Abs(k[1]-detuned) > 1e-9*detuned {
		t.Errorf("k(omega0+d) = %g, want %g", k[1], detuned)
	}
}

func TestWaveguideEquation(t *testing.T) {
	alloc := NewPinAllocator()
	pins := alloc.AllocateN(2)
	wg, err := NewWaveguide("wg", 1e-3, DefaultMedium(), testSweep(16), pins)
	if err != nil {
		t.Fatal(err)
	}

	eqs := wg.FieldEquations()
	if len(eqs) != 1 {
		t.Fatalf("got %d equations, want 1", len(eqs))
	}
	if len(eqs[0].Terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(eqs[0].Terms))
	}
	tc := wg.TransferCoefficient()
	for k := 0; k < 16; k++ {
		if got := eqs[0].Terms[0].Coeff.At(k); got != -tc[k] {
			t.Errorf("sample %d: input coeff %v, want %v", k, got, -tc[k])
		}
		if got := eqs[0].Terms[1].Coeff.At(k); got != 1 {
			t.Errorf("sample %d: output coeff %v, want 1", k, got)
		}
	}
}

func TestWaveguideParameterDomain(t *testing.T) {
	alloc := NewPinAllocator()

	_, err := NewWaveguide("wg", -1, DefaultMedium(), testSweep(4), alloc.AllocateN(2))
	if !errors.Is(err, ErrNegativeLength) {
		t.Errorf("negative length: got %v, want ErrNegativeLength", err)
	}

	_, err = NewWaveguide("wg", 1e-3, DefaultMedium(), testSweep(4), alloc.AllocateN(3))
	if !errors.Is(err, ErrPinCount) {
		t.Errorf("3 pins: got %v, want ErrPinCount", err)
	}

	_, err = NewWaveguide("wg", 1e-3, Medium{}, testSweep(4), alloc.AllocateN(2))
	if !errors.Is(err, ErrWavelength) {
		t.Errorf("zero wavelength: got %v, want ErrWavelength", err)
	}
}
