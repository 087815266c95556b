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
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// bezierBasis is the cubic Bézier basis matrix in power form.
// Row i holds the coefficients of t^(3-i).
var bezierBasis = mustMatrix(MatrixFromRows([][]float64{
	{-1, 3, -3, 1},
	{3, -6, 3, 0},
	{-3, 3, 0, 0},
	{1, 0, 0, 0},
}))

func checkCubic(ctrl []vec.Vec2, n int) error {
	if len(ctrl) != 4 {
		return fmt.Errorf("%w: %d control points, need 4", ErrInvalidSample, len(ctrl))
	}
	if n < 1 {
		return fmt.Errorf("%w: accuracy %d", ErrInvalidSample, n)
	}
	return nil
}

// EvaluateCubic samples the cubic Bézier curve with control points ctrl
// at t = i/n for i = 0, ..., n and rounds the results to grid cells.
//
// The curve is evaluated in matrix form: the coordinate columns are
// multiplied by the basis matrix once, and each sample is the product of
// the row [t³ t² t 1] with the resulting coefficient columns.
//
// ctrl must contain exactly four points and n must be at least one,
// otherwise ErrInvalidSample is returned.
func EvaluateCubic(ctrl []vec.Vec2, n int) ([]image.Point, error) {
	if err := checkCubic(ctrl, n); err != nil {
		return nil, err
	}

	xs, err := NewMatrix(4, 1, ctrl[0].X, ctrl[1].X, ctrl[2].X, ctrl[3].X)
	if err != nil {
		return nil, err
	}
	ys, err := NewMatrix(4, 1, ctrl[0].Y, ctrl[1].Y, ctrl[2].Y, ctrl[3].Y)
	if err != nil {
		return nil, err
	}
	cx, err := Mul(bezierBasis, xs)
	if err != nil {
		return nil, err
	}
	cy, err := Mul(bezierBasis, ys)
	if err != nil {
		return nil, err
	}

	res := make([]image.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		row, err := NewMatrix(1, 4, t*t*t, t*t, t, 1)
		if err != nil {
			return nil, err
		}
		x, err := Mul(row, cx)
		if err != nil {
			return nil, err
		}
		y, err := Mul(row, cy)
		if err != nil {
			return nil, err
		}
		res = append(res, roundCell(x.At(0, 0), y.At(0, 0)))
	}
	return res, nil
}

// EvaluateCubicDirect is like EvaluateCubic, but evaluates the power form
// coefficients of the curve directly, without going through Matrix.
// The two functions give identical results.
func EvaluateCubicDirect(ctrl []vec.Vec2, n int) ([]image.Point, error) {
	if err := checkCubic(ctrl, n); err != nil {
		return nil, err
	}

	ax, bx, cx, dx := cubicCoefficients(ctrl[0].X, ctrl[1].X, ctrl[2].X, ctrl[3].X)
	ay, by, cy, dy := cubicCoefficients(ctrl[0].Y, ctrl[1].Y, ctrl[2].Y, ctrl[3].Y)

	res := make([]image.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		t2 := t * t
		t3 := t * t * t
		// float64() conversions keep the rounding steps identical to Mul
		x := float64(t3*ax) + float64(t2*bx) + float64(t*cx) + dx
		y := float64(t3*ay) + float64(t2*by) + float64(t*cy) + dy
		res = append(res, roundCell(x, y))
	}
	return res, nil
}

// cubicCoefficients returns a, b, c, d such that the Bézier polynomial with
// coefficients p0, ..., p3 equals a·t³ + b·t² + c·t + d.
func cubicCoefficients(p0, p1, p2, p3 float64) (a, b, c, d float64) {
	a = -p0 + float64(3*p1) - float64(3*p2) + p3
	b = float64(3*p0) - float64(6*p1) + float64(3*p2)
	c = -float64(3*p0) + float64(3*p1)
	d = p0
	return a, b, c, d
}

func roundCell(x, y float64) image.Point {
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}
