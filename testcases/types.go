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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Shapes []Shape       // the geometry to draw, in order
	Width  int           // grid width in pixels
	Height int           // grid height in pixels
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// Shape is one of Line, Circle or Curve.
type Shape interface {
	isShape()
}

// Line is a straight segment from A to B.
type Line struct {
	A, B vec.Vec2
}

func (Line) isShape() {}

// Circle is a circle outline.
type Circle struct {
	Center vec.Vec2
	Radius float64
}

func (Circle) isShape() {}

// Curve is a cubic Bézier curve, drawn as Accuracy straight segments.
type Curve struct {
	Points   [4]vec.Vec2
	Accuracy int
}

func (Curve) isShape() {}

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// Outline returns the exact geometry of s as a path, for use by vector
// back-ends.
func Outline(s Shape) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		switch s := s.(type) {
		case Line:
			if !yield(path.CmdMoveTo, []vec.Vec2{s.A}) {
				return
			}
			yield(path.CmdLineTo, []vec.Vec2{s.B})
		case Circle:
			cx, cy, r := s.Center.X, s.Center.Y, s.Radius
			k := r * kappa
			if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+r, cy)}) {
				return
			}
			quadrants := [][]vec.Vec2{
				{pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)},
				{pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)},
				{pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)},
				{pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)},
			}
			for _, q := range quadrants {
				if !yield(path.CmdCubeTo, q) {
					return
				}
			}
			yield(path.CmdClose, nil)
		case Curve:
			if !yield(path.CmdMoveTo, []vec.Vec2{s.Points[0]}) {
				return
			}
			yield(path.CmdCubeTo, s.Points[1:])
		}
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polar returns the point at distance r and angle phi (in degrees) from (cx, cy).
func polar(cx, cy, r, phi float64) vec.Vec2 {
	s, c := math.Sincos(phi * math.Pi / 180)
	return pt(cx+r*c, cy+r*s)
}
