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
	"slices"
	"testing"
)

func TestRasterizeLine(t *testing.T) {
	cases := []struct {
		a, b image.Point
		want []image.Point
	}{
		{
			a:    image.Point{0, 0},
			b:    image.Point{3, 1},
			want: []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}},
		},
		{
			a:    image.Point{2, 5},
			b:    image.Point{2, 5},
			want: []image.Point{{2, 5}},
		},
		{
			a:    image.Point{0, 0},
			b:    image.Point{0, 3},
			want: []image.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		},
		{
			a:    image.Point{3, 3},
			b:    image.Point{0, 0},
			want: []image.Point{{3, 3}, {2, 2}, {1, 1}, {0, 0}},
		},
		{
			a:    image.Point{-2, 1},
			b:    image.Point{1, 1},
			want: []image.Point{{-2, 1}, {-1, 1}, {0, 1}, {1, 1}},
		},
	}
	for _, c := range cases {
		got := slices.Collect(RasterizeLine(c.a, c.b))
		diff(t, c.want, got)
	}
}

func TestRasterizeLineProperties(t *testing.T) {
	ends := []image.Point{
		{0, 0}, {7, 2}, {-3, 9}, {5, -6}, {-8, -8}, {1, 13}, {12, 0}, {-4, 1},
	}
	for _, a := range ends {
		for _, b := range ends {
			cells := slices.Collect(RasterizeLine(a, b))

			if cells[0] != a || cells[len(cells)-1] != b {
				t.Errorf("%v→%v: runs from %v to %v", a, b, cells[0], cells[len(cells)-1])
			}
			if n := max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1; len(cells) != n {
				t.Errorf("%v→%v: %d cells, want %d", a, b, len(cells), n)
			}
			for i := 1; i < len(cells); i++ {
				d := cells[i].Sub(cells[i-1])
				if abs(d.X) > 1 || abs(d.Y) > 1 || d == (image.Point{}) {
					t.Errorf("%v→%v: step %v at %d", a, b, d, i)
					break
				}
			}
		}
	}
}

func TestRasterizeLineStop(t *testing.T) {
	var got []image.Point
	for p := range RasterizeLine(image.Point{0, 0}, image.Point{10, 0}) {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	diff(t, []image.Point{{0, 0}, {1, 0}, {2, 0}}, got)
}

func TestRasterizeLineLimits(t *testing.T) {
	far := image.Point{X: math.MaxInt, Y: math.MinInt}
	got := slices.Collect(RasterizeLine(far, far))
	diff(t, []image.Point{{MaxCoord, -MaxCoord}}, got)

	got = nil
	a := image.Point{X: math.MinInt, Y: 0}
	b := image.Point{X: math.MaxInt, Y: 2}
	for p := range RasterizeLine(a, b) {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	want := []image.Point{{-MaxCoord, 0}, {-MaxCoord + 1, 0}, {-MaxCoord + 2, 0}}
	diff(t, want, got)
}
