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
	"math"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		in   vec.Vec2
		want image.Point
	}{
		{vec.Vec2{X: 3.7, Y: 2.2}, image.Point{X: 3, Y: 2}},
		{vec.Vec2{X: 0, Y: 0}, image.Point{X: 0, Y: 0}},
		{vec.Vec2{X: -5, Y: 4}, image.Point{X: 0, Y: 4}},
		{vec.Vec2{X: 12, Y: 4}, image.Point{X: 9, Y: 4}},
		{vec.Vec2{X: 9.99, Y: 7.99}, image.Point{X: 9, Y: 7}},
		{vec.Vec2{X: 100, Y: -100}, image.Point{X: 9, Y: 0}},
		{vec.Vec2{X: -0.5, Y: 0.5}, image.Point{X: 0, Y: 0}},
		{vec.Vec2{X: math.NaN(), Y: math.Inf(1)}, image.Point{X: 0, Y: 7}},
	}
	for _, c := range cases {
		got := Clamp(c.in, 10, 8)
		if got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClampRect(t *testing.T) {
	clip := rect.Rect{LLx: -4, LLy: 10, URx: 4, URy: 20}
	cases := []struct {
		in   vec.Vec2
		want image.Point
	}{
		{vec.Vec2{X: 0.5, Y: 15.5}, image.Point{X: 0, Y: 15}},
		{vec.Vec2{X: -3.5, Y: 10}, image.Point{X: -4, Y: 10}},
		{vec.Vec2{X: -10, Y: 0}, image.Point{X: -4, Y: 10}},
		{vec.Vec2{X: 10, Y: 30}, image.Point{X: 3, Y: 19}},
	}
	for _, c := range cases {
		got := ClampRect(c.in, clip)
		if got != c.want {
			t.Errorf("ClampRect(%v) = %v, want %v", c.in, got, c.want)
		}
		if !inRect(got, clip) {
			t.Errorf("ClampRect(%v) = %v is outside the clip", c.in, got)
		}
	}
}
