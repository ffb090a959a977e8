package structure

// Coeff is one complex coefficient of a field equation. Frequency independent
// coefficients carry a single Value; frequency dependent ones carry a Series
// with one entry per sweep sample, computed vectorized over the whole sweep.
type Coeff struct {
	Value  complex128
	Series []complex128
}

func Constant(v complex128) Coeff {
	return Coeff{Value: v}
}

func Sampled(series []complex128) Coeff {
	return Coeff{Series: series}
}

// At returns the coefficient for sweep sample k.
func (c Coeff) At(k int) complex128 {
	if c.Series != nil {
		return c.Series[k]
	}
	return c.Value
}

// Term is one (pin, coefficient) pair of a field equation.
type Term struct {
	Pin   *Pin
	Coeff Coeff
}

// Equation is one row of the linear system: the sum over Terms of
// coefficient times the pin's field amplitude equals RHS. RHS is zero for
// every equation except the one contributed by a Source.
type Equation struct {
	Terms []Term
	RHS   complex128
}
