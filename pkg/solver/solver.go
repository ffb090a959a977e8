package solver

import (
	"fmt"
	"math/cmplx"
	"sort"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"toy-photonic/pkg/matrix"
	"toy-photonic/pkg/structure"
)

// Solver assembles and solves the per-frequency linear system of a fully
// composed structure. The zero-option solver fails fast on the first
// singular sample and runs single threaded.
type Solver struct {
	logger  *zap.Logger
	workers int
	gapFill bool
}

type Option func(*Solver)

// WithLogger routes solve diagnostics through the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithWorkers splits the sweep across n goroutines, each with its own
// matrix. Output row order is unaffected.
func WithWorkers(n int) Option {
	return func(s *Solver) { s.workers = n }
}

// WithGapFill reports singular samples as NaN rows in the field array
// instead of aborting the sweep. The returned error aggregates every
// offending sample.
func WithGapFill() Option {
	return func(s *Solver) { s.gapFill = true }
}

func New(opts ...Option) *Solver {
	s := &Solver{
		logger:  zap.NewNop(),
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve is shorthand for New().Solve(top, omegas).
func Solve(top structure.Structure, omegas []float64) (*Result, error) {
	return New().Solve(top, omegas)
}

// Solve validates the structure, assembles one complex coefficient matrix
// and ordinate vector per sweep sample and solves for the field amplitude at
// every distinct pin.
func (s *Solver) Solve(top structure.Structure, omegas []float64) (*Result, error) {
	if err := ValidateSweep(omegas); err != nil {
		return nil, err
	}

	pins := structure.DistinctPins(top)
	sort.Slice(pins, func(i, j int) bool { return pins[i].ID() < pins[j].ID() })

	cols := make(map[int]int, len(pins))
	for c, p := range pins {
		cols[p.ID()] = c
	}

	eqs := top.FieldEquations()
	if len(eqs) != len(pins) {
		return nil, fmt.Errorf("%w: %d equations, %d pins (structure %q)",
			ErrEquationCount, len(eqs), len(pins), top.Name())
	}
	if declared := top.NumEquations(); declared != len(eqs) {
		return nil, fmt.Errorf("%w: structure %q declares %d equations, contributes %d",
			ErrEquationCount, top.Name(), declared, len(eqs))
	}
	for r, eq := range eqs {
		for _, term := range eq.Terms {
			if _, ok := cols[term.Pin.ID()]; !ok {
				return nil, fmt.Errorf("%w: equation %d, pin %d", ErrUnknownPin, r, term.Pin.ID())
			}
			if term.Coeff.Series != nil && len(term.Coeff.Series) != len(omegas) {
				return nil, fmt.Errorf("%w: equation %d has %d samples, sweep has %d",
					ErrSeriesLength, r, len(term.Coeff.Series), len(omegas))
			}
		}
	}

	res := newResult(omegas, pins)
	sampleErrs := make([]error, len(omegas))

	solveRange := func(lo, hi int) error {
		mat, err := matrix.New(len(pins))
		if err != nil {
			return err
		}
		defer func() { mat.Destroy() }()

		for k := lo; k < hi; k++ {
			mat.Clear()
			for r, eq := range eqs {
				for _, term := range eq.Terms {
					mat.AddElement(r+1, cols[term.Pin.ID()]+1, term.Coeff.At(k))
				}
				if eq.RHS != 0 {
					mat.AddRHS(r+1, eq.RHS)
				}
			}

			sol, err := mat.Solve()
			if err != nil {
				serr := fmt.Errorf("%w: sample %d (omega=%g): %v", ErrSingular, k, omegas[k], err)
				if !s.gapFill {
					return serr
				}
				s.logger.Warn("singular system, filling gap",
					zap.Int("sample", k),
					zap.Float64("omega", omegas[k]))
				for c := range res.fields[k] {
					res.fields[k][c] = cmplx.NaN()
				}
				sampleErrs[k] = serr
				// A failed factorization leaves the matrix unusable;
				// start the next sample from a fresh one.
				mat.Destroy()
				if mat, err = matrix.New(len(pins)); err != nil {
					return err
				}
				continue
			}
			copy(res.fields[k], sol)
		}
		return nil
	}

	workers := s.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(omegas) {
		workers = len(omegas)
	}

	if workers == 1 {
		if err := solveRange(0, len(omegas)); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group
		chunk := (len(omegas) + workers - 1) / workers
		for lo := 0; lo < len(omegas); lo += chunk {
			hi := min(lo+chunk, len(omegas))
			g.Go(func() error { return solveRange(lo, hi) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if err := multierr.Combine(sampleErrs...); err != nil {
		return res, err
	}

	s.logger.Debug("sweep solved",
		zap.String("structure", top.Name()),
		zap.Int("samples", len(omegas)),
		zap.Int("pins", len(pins)))
	return res, nil
}
