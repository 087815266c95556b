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
	"iter"
)

// RasterizeLine returns the grid cells of the line segment from a to b,
// using Bresenham's algorithm.
//
// The sequence starts at a, ends at b and every step moves by at most one
// cell in each direction. It contains max(|bx-ax|, |by-ay|)+1 cells.
// If a == b, the sequence consists of a alone. The returned sequence can be
// iterated any number of times and always yields the same cells.
//
// Coordinates outside [-MaxCoord, MaxCoord] are first moved to the nearest
// value in this range.
func RasterizeLine(a, b image.Point) iter.Seq[image.Point] {
	a, b = limitPoint(a), limitPoint(b)
	return func(yield func(image.Point) bool) {
		dx := abs(b.X - a.X)
		dy := -abs(b.Y - a.Y)
		sx, sy := 1, 1
		if a.X >= b.X {
			sx = -1
		}
		if a.Y >= b.Y {
			sy = -1
		}
		err := dx + dy

		p := a
		for {
			if !yield(p) {
				return
			}
			if p == b {
				return
			}

			e2 := 2 * err
			if e2 >= dy {
				err += dy
				p.X += sx
			}
			if e2 <= dx {
				err += dx
				p.Y += sy
			}
		}
	}
}

// MaxCoord bounds the coordinates accepted by RasterizeLine, so that the
// error term of the algorithm cannot overflow, not even for a 32-bit int.
const MaxCoord = 1 << 28

func limitPoint(p image.Point) image.Point {
	return image.Point{
		X: min(max(p.X, -MaxCoord), MaxCoord),
		Y: min(max(p.Y, -MaxCoord), MaxCoord),
	}
}

// appendLine appends the cells of the segment from a to b to buf.
func appendLine(buf []image.Point, a, b image.Point) []image.Point {
	for p := range RasterizeLine(a, b) {
		buf = append(buf, p)
	}
	return buf
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
