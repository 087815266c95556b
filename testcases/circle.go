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

var circleCases = []TestCase{
	{
		Name:   "small",
		Shapes: []Shape{Circle{Center: pt(16, 16), Radius: 5}},
		Width:  32,
		Height: 32,
	},
	{
		Name:   "large",
		Shapes: []Shape{Circle{Center: pt(32, 32), Radius: 29}},
		Width:  64,
		Height: 64,
	},
	{
		Name:   "radius_zero",
		Shapes: []Shape{Circle{Center: pt(8, 8), Radius: 0}},
		Width:  16,
		Height: 16,
	},
	{
		Name:   "radius_one",
		Shapes: []Shape{Circle{Center: pt(8, 8), Radius: 1}},
		Width:  16,
		Height: 16,
	},
	{
		Name:   "fractional_radius",
		Shapes: []Shape{Circle{Center: pt(16, 16), Radius: 9.6}}, // rounded to 10
		Width:  32,
		Height: 32,
	},
	{
		Name: "concentric",
		Shapes: []Shape{
			Circle{Center: pt(32, 32), Radius: 8},
			Circle{Center: pt(32, 32), Radius: 16},
			Circle{Center: pt(32, 32), Radius: 24},
		},
		Width:  64,
		Height: 64,
	},
}
