package util

import (
	"fmt"
	"math"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatAngularFrequency renders an optical angular frequency (rad/s).
func FormatAngularFrequency(omega float64) string {
	switch {
	case omega >= 1e15:
		return fmt.Sprintf("%9.4f Prad/s", omega/1e15)
	case omega >= 1e12:
		return fmt.Sprintf("%9.4f Trad/s", omega/1e12)
	default:
		return fmt.Sprintf("%9.4g rad/s ", omega)
	}
}

func FormatWavelength(wavelength float64) string {
	switch {
	case wavelength >= 1e-6:
		return fmt.Sprintf("%8.3f um", wavelength*1e6)
	default:
		return fmt.Sprintf("%8.3f nm", wavelength*1e9)
	}
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.3f", value) // radians
}

func FormatMagnitudePhase(name string, value, phase float64) string {
	return fmt.Sprintf("%s=%s<%s rad", name, FormatMagnitude(value), FormatPhase(phase))
}
