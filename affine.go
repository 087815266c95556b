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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Affine is a 2D affine transformation, stored as a 3×3 homogeneous matrix.
//
// Points are row vectors which are multiplied from the left:
//
//	(x' y' 1) = (x y 1) · M
//
// so that the translation lives in the bottom row of M. This is the same
// convention as used by PDF and by [matrix.Matrix].
//
// The zero value is the identity transformation.
type Affine struct {
	m Matrix
}

var identity3 = mustMatrix(NewMatrix(3, 3, 1, 0, 0, 0, 1, 0, 0, 0, 1))

func affine(values ...float64) Affine {
	return Affine{m: mustMatrix(NewMatrix(3, 3, values...))}
}

// Matrix3 returns the 3×3 homogeneous matrix of the transformation.
func (a Affine) Matrix3() Matrix {
	if a.m.rows == 0 {
		return identity3
	}
	return a.m
}

// ScaleMatrix scales by sx in x-direction and by sy in y-direction.
func ScaleMatrix(sx, sy float64) Affine {
	return affine(
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1)
}

// TranslateMatrix moves points by (dx, dy).
func TranslateMatrix(dx, dy float64) Affine {
	return affine(
		1, 0, 0,
		0, 1, 0,
		dx, dy, 1)
}

// RotateMatrix rotates by the angle theta (in radians).
// With the row vector convention, (1, 0) is mapped to (cos θ, sin θ).
func RotateMatrix(theta float64) Affine {
	s, c := math.Sincos(theta)
	return affine(
		c, s, 0,
		-s, c, 0,
		0, 0, 1)
}

// Axis selects the axis of a reflection or shear.
type Axis int

// These are the valid values for an Axis.
const (
	// AxisBoth reflects through the origin.
	AxisBoth Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

// MirrorMatrix reflects across the x-axis (AxisX), the y-axis (AxisY) or
// through the origin (AxisBoth).
func MirrorMatrix(axis Axis) Affine {
	sx, sy := -1.0, -1.0
	switch axis {
	case AxisX:
		sx = 1
	case AxisY:
		sy = 1
	}
	return ScaleMatrix(sx, sy)
}

// ShearMatrix shears along the x-axis for AxisX, mapping (x, y) to
// (x + value·y, y). For all other axes it shears along the y-axis,
// mapping (x, y) to (x, y + value·x).
func ShearMatrix(value float64, axis Axis) Affine {
	if axis == AxisX {
		return affine(
			1, 0, 0,
			value, 1, 0,
			0, 0, 1)
	}
	return affine(
		1, value, 0,
		0, 1, 0,
		0, 0, 1)
}

// Then returns the transformation which first applies a and then b.
func (a Affine) Then(b Affine) Affine {
	m, err := Mul(a.Matrix3(), b.Matrix3())
	if err != nil {
		panic(err) // unreachable: both matrices are 3×3
	}
	return Affine{m: m}
}

// Apply transforms the given points. The result is a new slice;
// points is not modified.
func (a Affine) Apply(points []vec.Vec2) []vec.Vec2 {
	m := a.Matrix3()
	res := make([]vec.Vec2, len(points))
	for i, p := range points {
		row := Matrix{rows: 1, cols: 3, data: []float64{p.X, p.Y, 1}}
		q, err := Mul(row, m)
		if err != nil {
			panic(err) // unreachable: 1×3 times 3×3
		}
		res[i] = vec.Vec2{X: q.data[0], Y: q.data[1]}
	}
	return res
}

// ApplyPoint transforms a single point.
func (a Affine) ApplyPoint(p vec.Vec2) vec.Vec2 {
	return a.Apply([]vec.Vec2{p})[0]
}

// Det returns the determinant of the linear part of the transformation.
func (a Affine) Det() float64 {
	m := a.Matrix3()
	return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
}

// Matrix returns the transformation in the six element form
// [a b c d e f] used by PDF.
func (a Affine) Matrix() matrix.Matrix {
	m := a.Matrix3()
	return matrix.Matrix{
		m.At(0, 0), m.At(0, 1),
		m.At(1, 0), m.At(1, 1),
		m.At(2, 0), m.At(2, 1),
	}
}

// AffineFromMatrix converts a PDF style matrix to an Affine.
// The zero matrix is interpreted as the identity.
func AffineFromMatrix(M matrix.Matrix) Affine {
	if M == (matrix.Matrix{}) {
		return Affine{}
	}
	return affine(
		M[0], M[1], 0,
		M[2], M[3], 0,
		M[4], M[5], 1)
}

// Scale scales the points by sx and sy, relative to the origin.
func Scale(points []vec.Vec2, sx, sy float64) []vec.Vec2 {
	return ScaleMatrix(sx, sy).Apply(points)
}

// ScaleUniform scales the points by s in both directions.
func ScaleUniform(points []vec.Vec2, s float64) []vec.Vec2 {
	return Scale(points, s, s)
}

// Translate moves the points by (dx, dy).
func Translate(points []vec.Vec2, dx, dy float64) []vec.Vec2 {
	return TranslateMatrix(dx, dy).Apply(points)
}

// TranslateUniform moves the points by d in both directions.
func TranslateUniform(points []vec.Vec2, d float64) []vec.Vec2 {
	return Translate(points, d, d)
}

// Rotate rotates the points by theta (in radians) around the origin.
func Rotate(points []vec.Vec2, theta float64) []vec.Vec2 {
	return RotateMatrix(theta).Apply(points)
}

// Mirror reflects the points, see [MirrorMatrix].
func Mirror(points []vec.Vec2, axis Axis) []vec.Vec2 {
	return MirrorMatrix(axis).Apply(points)
}

// Shear shears the points, see [ShearMatrix].
func Shear(points []vec.Vec2, value float64, axis Axis) []vec.Vec2 {
	return ShearMatrix(value, axis).Apply(points)
}

// RotateAroundPoint rotates the points by theta (in radians) around center.
func RotateAroundPoint(points []vec.Vec2, center vec.Vec2, theta float64) []vec.Vec2 {
	return aroundPoint(points, center, RotateMatrix(theta))
}

// ScaleAroundPoint scales the points by sx and sy, keeping center fixed.
func ScaleAroundPoint(points []vec.Vec2, center vec.Vec2, sx, sy float64) []vec.Vec2 {
	return aroundPoint(points, center, ScaleMatrix(sx, sy))
}

// aroundPoint applies op in a coordinate system centred at center.
func aroundPoint(points []vec.Vec2, center vec.Vec2, op Affine) []vec.Vec2 {
	moved := Translate(points, -center.X, -center.Y)
	moved = op.Apply(moved)
	return Translate(moved, center.X, center.Y)
}
