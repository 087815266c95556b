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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Shapes: []Shape{Line{A: pt(0, 0), B: pt(10, 5)}, Circle{Center: pt(10, 10), Radius: 6}},
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(2, 2).Translate(8, 8),
	},
	{
		Name:   "scale_half",
		Shapes: []Shape{Circle{Center: pt(40, 40), Radius: 30}},
		Width:  64,
		Height: 64,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},
	{
		Name:   "rotate_30deg",
		Shapes: []Shape{Line{A: pt(-20, 0), B: pt(20, 0)}, Line{A: pt(0, -10), B: pt(0, 10)}},
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name: "rotate_curve_90deg",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(-24, 12), pt(-24, -12), pt(24, -12), pt(24, 12)},
			Accuracy: 40,
		}},
		Width:  64,
		Height: 64,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},
	{
		Name:   "mirror_y",
		Shapes: []Shape{Line{A: pt(4, 4), B: pt(28, 20)}},
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{-1, 0, 0, 1, 60, 0},
	},
	{
		Name:   "shear_x",
		Shapes: []Shape{Line{A: pt(10, 0), B: pt(10, 40)}},
		Width:  64,
		Height: 64,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 10},
	},
}
