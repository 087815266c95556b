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
	"fmt"
	"image"
	"iter"
	"math"
)

// MaxRadius is the largest radius accepted by RasterizeCircle.
const MaxRadius = MaxCoord

// RasterizeCircle returns the grid cells of the circle with the given
// center and radius, using the midpoint (Bresenham) circle algorithm.
//
// The radius is rounded to the nearest integer. A negative radius, or one
// above MaxRadius, gives ErrInvalidRadius. The cells are produced in groups
// of up to eight mirror images of one octant cell; cells may repeat between
// groups, but not within a group. A radius of zero yields the center once.
//
// The cells are not clamped; they can lie outside of any target grid.
func RasterizeCircle(center image.Point, radius float64) (iter.Seq[image.Point], error) {
	if !(radius >= 0) || radius > MaxRadius {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}
	r := int(math.Round(radius))

	seq := func(yield func(image.Point) bool) {
		x, y := 0, r
		d := 3 - 2*r

		for x < y {
			if !yieldOctants(center, x, y, yield) {
				return
			}
			if d < 0 {
				d += 4*x + 6
			} else {
				y--
				d += 4*(x-y) + 10
			}
			if !yieldOctants(center, x, y, yield) {
				return
			}
			x++
		}
		if x == y {
			yieldOctants(center, x, y, yield)
		}
	}
	return seq, nil
}

// yieldOctants yields the distinct cells among the eight reflections of
// (x, y) around the center.
func yieldOctants(c image.Point, x, y int, yield func(image.Point) bool) bool {
	pts := [8]image.Point{
		{c.X + x, c.Y + y},
		{c.X - x, c.Y + y},
		{c.X + x, c.Y - y},
		{c.X - x, c.Y - y},
		{c.X + y, c.Y + x},
		{c.X - y, c.Y + x},
		{c.X + y, c.Y - x},
		{c.X - y, c.Y - x},
	}
outer:
	for i, p := range pts {
		for _, q := range pts[:i] {
			if p == q {
				continue outer
			}
		}
		if !yield(p) {
			return false
		}
	}
	return true
}
