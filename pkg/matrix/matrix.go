package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// SystemMatrix wraps a sparse complex matrix and its ordinate vector for one
// linear system A*x = b. Elements and ordinate entries are addressed with
// 1-based indices.
type SystemMatrix struct {
	Size    int
	matrix  *sparse.Matrix
	rhs     []float64
	rhsImag []float64
	config  *sparse.Configuration
}

func New(size int) (*SystemMatrix, error) {
	// Translate must stay on: elements are re-stamped through GetElement
	// after every factorization, which reorders the matrix.
	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              true,
		Translate:               true,
		ModifiedNodal:           true,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &SystemMatrix{
		Size:    size,
		matrix:  mat,
		rhs:     make([]float64, size+1), // 1-based indexing
		rhsImag: make([]float64, size+1),
		config:  config,
	}, nil
}

func (m *SystemMatrix) AddElement(i, j int, value complex128) {
	element := m.matrix.GetElement(int64(i), int64(j))
	element.Real += real(value)
	element.Imag += imag(value)
}

func (m *SystemMatrix) AddRHS(i int, value complex128) {
	m.rhs[i] += real(value)
	m.rhsImag[i] += imag(value)
}

func (m *SystemMatrix) Clear() {
	m.matrix.Clear()
	for i := range m.rhs {
		m.rhs[i] = 0
	}
	for i := range m.rhsImag {
		m.rhsImag[i] = 0
	}
}

// Solve factors the matrix and returns the 0-based complex solution vector.
func (m *SystemMatrix) Solve() ([]complex128, error) {
	err := m.matrix.Factor()
	if err != nil {
		return nil, fmt.Errorf("matrix factorization failed: %v", err)
	}

	solReal, solImag, err := m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return nil, fmt.Errorf("matrix solve failed: %v", err)
	}

	solution := make([]complex128, m.Size)
	for i := 1; i <= m.Size; i++ {
		solution[i-1] = complex(solReal[i], solImag[i])
	}
	return solution, nil
}

func (m *SystemMatrix) Destroy() {
	if m == nil || m.matrix == nil {
		return
	}
	m.matrix.Destroy()
}
