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

var curveCases = []TestCase{
	{
		Name: "arch",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(4, 56), pt(4, 4), pt(60, 4), pt(60, 56)},
			Accuracy: 100,
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name: "arch_coarse",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(4, 56), pt(4, 4), pt(60, 4), pt(60, 56)},
			Accuracy: 4,
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name: "endpoints_only",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(4, 32), pt(4, 4), pt(60, 4), pt(60, 32)},
			Accuracy: 1,
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name: "s_shape",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(4, 32), pt(24, -10), pt(40, 74), pt(60, 32)},
			Accuracy: 50,
		}},
		Width:  64,
		Height: 64,
	},
	{
		Name: "loop",
		Shapes: []Shape{Curve{
			Points:   [4]vec.Vec2{pt(10, 50), pt(70, 0), pt(-6, 0), pt(54, 50)},
			Accuracy: 80,
		}},
		Width:  64,
		Height: 64,
	},
}
