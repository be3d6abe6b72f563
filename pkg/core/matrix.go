package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant is zero
var ErrNotInvertible = errors.New("matrix is not invertible")

// maxMatrixSize is the largest supported matrix dimension
const maxMatrixSize = 4

// Matrix is an immutable square matrix of up to 4x4 float64 elements.
// Smaller sizes only arise from submatrix operations.
type Matrix struct {
	size int
	data [maxMatrixSize * maxMatrixSize]float64
}

// NewMatrix creates a square matrix from rows
func NewMatrix(rows ...[]float64) (Matrix, error) {
	n := len(rows)
	if n == 0 || n > maxMatrixSize {
		return Matrix{}, fmt.Errorf("unsupported matrix size %d", n)
	}

	m := Matrix{size: n}
	for r, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("row %d has %d columns, expected %d", r, len(row), n)
		}
		for c, v := range row {
			m.set(r, c, v)
		}
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on malformed input
func MustMatrix(rows ...[]float64) Matrix {
	m, err := NewMatrix(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return identity(maxMatrixSize)
}

func identity(n int) Matrix {
	m := Matrix{size: n}
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}
	return m
}

func (m *Matrix) set(row, col int, v float64) {
	m.data[row*maxMatrixSize+col] = v
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.data[row*maxMatrixSize+col]
}

// Row returns a copy of the given row
func (m Matrix) Row(row int) []float64 {
	out := make([]float64, m.size)
	for c := 0; c < m.size; c++ {
		out[c] = m.At(row, c)
	}
	return out
}

// Col returns a copy of the given column
func (m Matrix) Col(col int) []float64 {
	out := make([]float64, m.size)
	for r := 0; r < m.size; r++ {
		out[r] = m.At(r, col)
	}
	return out
}

// Multiply returns m x other. Both matrices must have the same size.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.size != other.size {
		panic(fmt.Sprintf("matrix size mismatch: %d x %d", m.size, other.size))
	}

	result := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			var sum float64
			for k := 0; k < m.size; k++ {
				sum += m.At(r, k) * other.At(k, c)
			}
			result.set(r, c, sum)
		}
	}
	return result
}

// MultiplyTuple returns m x t for a 4x4 matrix. Translation only affects
// tuples with w = 1, so vectors pass through it unchanged.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	row := func(r int) float64 {
		return m.At(r, 0)*t.X + m.At(r, 1)*t.Y + m.At(r, 2)*t.Z + m.At(r, 3)*t.W
	}
	return Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	result := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			result.set(c, r, m.At(r, c))
		}
	}
	return result
}

// Submatrix removes the given row and column
func (m Matrix) Submatrix(row, col int) Matrix {
	result := Matrix{size: m.size - 1}
	dr := 0
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			result.set(dr, dc, m.At(r, c))
			dc++
		}
		dr++
	}
	return result
}

// Minor is the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor with sign (-1)^(row+col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 0 {
		return minor
	}
	return -minor
}

// Determinant uses the closed form for 2x2 and cofactor expansion along row 0 otherwise
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.At(0, 0)
	case 2:
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}

	var det float64
	for c := 0; c < m.size; c++ {
		det += m.At(0, c) * m.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse computes the adjugate divided by the determinant
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}

	result := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			// transposed on purpose: adjugate is the transpose of the cofactor matrix
			result.set(c, r, m.Cofactor(r, c)/det)
		}
	}
	return result, nil
}

// Equals compares element-wise within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if !Equal(m.At(r, c), other.At(r, c)) {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.size; r++ {
		sb.WriteString("|")
		for c := 0; c < m.size; c++ {
			fmt.Fprintf(&sb, " % 9.5f |", m.At(r, c))
		}
		if r < m.size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
