// seehuhn.de/go/pixel - integer grid rasterization and affine geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixel

import (
	"fmt"
	"strings"
)

// Matrix is a dense, row-major table of numbers.
//
// The same type serves as the 1×4 parametrization row and the 4×4 basis of
// the Bézier evaluator, and as the 3×3 homogeneous matrices of the affine
// transforms. Matrix values are immutable: all operations return new
// matrices.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a rows×cols matrix filled with the given values in
// row-major order. If no values are given, the matrix is all zeros.
func NewMatrix(rows, cols int, values ...float64) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: %d×%d", ErrInvalidShape, rows, cols)
	}
	data := make([]float64, rows*cols)
	switch len(values) {
	case 0:
		// all zeros
	case len(data):
		copy(data, values)
	default:
		return Matrix{}, fmt.Errorf("%w: %d values for %d×%d",
			ErrInvalidShape, len(values), rows, cols)
	}
	return Matrix{rows: rows, cols: cols, data: data}, nil
}

// MatrixFromRows builds a matrix from a slice of rows.
// All rows must be non-empty and have the same length.
func MatrixFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: empty matrix", ErrInvalidShape)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrInvalidShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}, nil
}

// mustMatrix is for matrices whose shape is fixed in the source code.
func mustMatrix(m Matrix, err error) Matrix {
	if err != nil {
		panic(err)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the element in row i and column j.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("pixel: index (%d, %d) out of range for %d×%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Mul returns the matrix product a·b.
// The number of columns of a must equal the number of rows of b,
// otherwise ErrInvalidShape is returned.
func Mul(a, b Matrix) (Matrix, error) {
	if a.cols == 0 || b.rows == 0 || a.cols != b.rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %d×%d by %d×%d",
			ErrInvalidShape, a.rows, a.cols, b.rows, b.cols)
	}
	res := Matrix{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	for i := range a.rows {
		for j := range b.cols {
			var sum float64
			for k := range a.cols {
				// The explicit conversion prevents fused multiply-add, so
				// that results agree bit for bit with EvaluateCubicDirect.
				sum += float64(a.data[i*a.cols+k] * b.data[k*b.cols+j])
			}
			res.data[i*b.cols+j] = sum
		}
	}
	return res, nil
}

// Equal reports whether m and o have the same shape and elements.
func (m Matrix) Equal(o Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := range m.rows {
		if i > 0 {
			b.WriteString("; ")
		}
		for j := range m.cols {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.cols+j])
		}
	}
	b.WriteByte(']')
	return b.String()
}
