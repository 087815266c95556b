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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Clamp maps p to the cell of a width×height grid which contains it.
// Coordinates outside the grid are moved to the nearest border cell:
//
//	x' = floor(min(max(0, x), width-1))
//
// and likewise for y. Width and height must be positive.
func Clamp(p vec.Vec2, width, height int) image.Point {
	return image.Point{
		X: clampCoord(p.X, 0, float64(width-1)),
		Y: clampCoord(p.Y, 0, float64(height-1)),
	}
}

// ClampRect is like Clamp, but for a clip rectangle with integer-aligned
// corners. The result satisfies LLx <= x < URx and LLy <= y < URy.
func ClampRect(p vec.Vec2, clip rect.Rect) image.Point {
	return image.Point{
		X: clampCoord(p.X, clip.LLx, clip.URx-1),
		Y: clampCoord(p.Y, clip.LLy, clip.URy-1),
	}
}

func clampCoord(v, lo, hi float64) int {
	// NaN ends up at the low border
	if !(v > lo) {
		v = lo
	}
	v = min(v, hi)
	return int(math.Floor(v))
}

// Pt returns the grid cell p as a vector.
func Pt(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// inRect reports whether the cell p lies inside the clip rectangle.
func inRect(p image.Point, clip rect.Rect) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= clip.LLx && x < clip.URx && y >= clip.LLy && y < clip.URy
}
