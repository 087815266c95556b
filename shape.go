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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is one of [Line], [Circle] or [Curve].
type Shape interface {
	isShape()
}

// Line is the straight segment from A to B.
type Line struct {
	A, B  vec.Vec2
	Color color.Color
}

func (Line) isShape() {}

// Circle is a circle outline.
type Circle struct {
	Center vec.Vec2
	Radius float64 // >= 0
	Color  color.Color
}

func (Circle) isShape() {}

// Curve is a cubic Bézier curve, drawn as a polyline of Accuracy straight
// segments.
//
// A curve is drawable once it has exactly four control points. Callers
// which collect points one at a time may keep fewer points in the slice
// until the curve is complete.
type Curve struct {
	Points   []vec.Vec2
	Accuracy int // number of line segments, >= 1
	Color    color.Color
}

func (Curve) isShape() {}

// Complete reports whether the curve has all four control points.
func (c Curve) Complete() bool {
	return len(c.Points) == 4
}

// Path returns the exact outline of the curve.
// For an incomplete curve, the path visits the points collected so far
// with straight lines.
func (c Curve) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(c.Points) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{c.Points[0]}) {
			return
		}
		if c.Complete() {
			yield(path.CmdCubeTo, []vec.Vec2{c.Points[1], c.Points[2], c.Points[3]})
			return
		}
		for _, p := range c.Points[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{p}) {
				return
			}
		}
	}
}

// BBox returns the bounding box of the control points.
// The curve lies inside this box.
func (c Curve) BBox() rect.Rect {
	if len(c.Points) == 0 {
		return rect.Rect{}
	}
	box := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range c.Points {
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	return box
}

// Samples returns the vertices of the polyline which approximates the
// curve, see [EvaluateCubic].
func (c Curve) Samples() ([]image.Point, error) {
	return EvaluateCubic(c.Points, c.Accuracy)
}
