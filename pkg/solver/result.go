package solver

import (
	"fmt"
	"math/cmplx"

	"toy-photonic/pkg/structure"
)

// Result is the solved field array of one sweep: one row per frequency
// sample, one column per distinct pin, immutable once computed.
type Result struct {
	Omegas []float64

	fields  [][]complex128
	columns []*structure.Pin
	index   map[int]int // pin ID -> column
}

func newResult(omegas []float64, pins []*structure.Pin) *Result {
	index := make(map[int]int, len(pins))
	for c, p := range pins {
		index[p.ID()] = c
	}
	fields := make([][]complex128, len(omegas))
	for i := range fields {
		fields[i] = make([]complex128, len(pins))
	}
	return &Result{
		Omegas:  omegas,
		fields:  fields,
		columns: pins,
		index:   index,
	}
}

// Fields returns the raw (samples x pins) complex field array.
func (r *Result) Fields() [][]complex128 {
	return r.fields
}

// Columns returns the pins in column order.
func (r *Result) Columns() []*structure.Pin {
	return r.columns
}

func (r *Result) column(p *structure.Pin) int {
	col, ok := r.index[p.ID()]
	if !ok {
		panic(fmt.Sprintf("solver: pin %d is not a column of this result", p.ID()))
	}
	return col
}

// At returns the field amplitude at one sample for one pin. The pin must
// belong to the solved structure.
func (r *Result) At(sample int, p *structure.Pin) complex128 {
	return r.fields[sample][r.column(p)]
}

// PinSeries returns the field amplitude at every sample for one pin.
func (r *Result) PinSeries(p *structure.Pin) []complex128 {
	col := r.column(p)
	series := make([]complex128, len(r.fields))
	for i := range r.fields {
		series[i] = r.fields[i][col]
	}
	return series
}

// Magnitude returns |field| per sample for one pin.
func (r *Result) Magnitude(p *structure.Pin) []float64 {
	series := r.PinSeries(p)
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = cmplx.Abs(v)
	}
	return out
}

// Power returns |field|^2 per sample for one pin.
func (r *Result) Power(p *structure.Pin) []float64 {
	series := r.PinSeries(p)
	out := make([]float64, len(series))
	for i, v := range series {
		mag := cmplx.Abs(v)
		out[i] = mag * mag
	}
	return out
}

// Phase returns the field phase in radians per sample for one pin.
func (r *Result) Phase(p *structure.Pin) []float64 {
	series := r.PinSeries(p)
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = cmplx.Phase(v)
	}
	return out
}
