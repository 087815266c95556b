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

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Shapes: []Shape{Line{A: pt(4, 16), B: pt(28, 16)}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "vertical",
		Shapes: []Shape{Line{A: pt(16, 28), B: pt(16, 4)}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "diagonal",
		Shapes: []Shape{Line{A: pt(2, 2), B: pt(29, 29)}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "shallow",
		Shapes: []Shape{Line{A: pt(0, 0), B: pt(30, 10)}}, // slope 1/3
		Width:  32,
		Height: 32,
	},
	{
		Name:   "steep_reverse",
		Shapes: []Shape{Line{A: pt(20, 30), B: pt(12, 1)}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "single_point",
		Shapes: []Shape{Line{A: pt(7, 9), B: pt(7, 9)}},
		Width:  16,
		Height: 16,
	},
	{
		Name:   "fractional",
		Shapes: []Shape{Line{A: pt(3.7, 2.2), B: pt(27.9, 19.5)}}, // floored to cells
		Width:  32,
		Height: 32,
	},
	{
		Name:   "star",
		Shapes: star(32, 32, 28, 12),
		Width:  64,
		Height: 64,
	},
}

// star returns n lines radiating from (cx, cy).
func star(cx, cy, r float64, n int) []Shape {
	shapes := make([]Shape, n)
	for i := range n {
		shapes[i] = Line{A: pt(cx, cy), B: polar(cx, cy, r, float64(i)*360/float64(n))}
	}
	return shapes
}
