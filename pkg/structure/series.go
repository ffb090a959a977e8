package structure

import "math/cmplx"

func magnitudeSeries(fields []complex128) []float64 {
	out := make([]float64, len(fields))
	for i, v := range fields {
		out[i] = cmplx.Abs(v)
	}
	return out
}

func powerSeries(fields []complex128) []float64 {
	out := make([]float64, len(fields))
	for i, v := range fields {
		mag := cmplx.Abs(v)
		out[i] = mag * mag
	}
	return out
}
