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

import "seehuhn.de/go/geom/vec"

// Shapes in these cases extend beyond the grid. The rasterizer moves
// cells outside the grid to the nearest border cell.
var clampCases = []TestCase{
	{
		Name:   "line_overshoot",
		Shapes: []Shape{Line{A: pt(-20, 10), B: pt(50, 20)}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "circle_corner",
		Shapes: []Shape{Circle{Center: pt(2, 2), Radius: 12}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "circle_outside",
		Shapes: []Shape{Circle{Center: pt(-40, 16), Radius: 10}},
		Width:  32,
		Height: 32,
	},
	{
		Name: "curve_overshoot",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(2, 30), pt(2, -40), pt(30, -40), pt(30, 30)},
			Accuracy: 30,
		}},
		Width:  32,
		Height: 32,
	},
}
