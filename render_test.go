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
	"image/color"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel/testcases"
)

func TestRenderExamples(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				if err := RenderExample(tc, actual, w, h, w); err != nil {
					t.Fatal(err)
				}

				// every cell reported by Pixels must be set, and nothing else
				want := make([]byte, w*h)
				r := NewGrid(w, h)
				if tc.CTM != (matrix.Matrix{}) {
					r.CTM = tc.CTM
				}
				for _, s := range ExampleShapes(tc) {
					cells, err := r.Pixels(s)
					if err != nil {
						t.Fatal(err)
					}
					if len(cells) == 0 {
						t.Errorf("%T: no cells", s)
					}
					for _, p := range cells {
						if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
							t.Fatalf("%T: cell %v outside %d×%d", s, p, w, h)
						}
						want[p.Y*w+p.X] = 255
					}
				}
				diff(t, want, actual)
			})
		}
	}
}

func TestRenderExampleStride(t *testing.T) {
	tc := testcases.TestCase{
		Name:   "stride",
		Width:  4,
		Height: 2,
		Shapes: []testcases.Shape{
			testcases.Line{A: vec.Vec2{X: 0, Y: 1}, B: vec.Vec2{X: 3, Y: 1}},
		},
	}
	buf := make([]byte, 2*6)
	if err := RenderExample(tc, buf, 4, 2, 6); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0, 0, 0, 0, 0, 0,
		255, 255, 255, 255, 0, 0,
	}
	diff(t, want, buf)
}

func TestDrawImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	red := color.NRGBA{R: 255, A: 255}
	err := DrawImage(img,
		Line{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 7, Y: 0}, Color: red},
		Circle{Center: vec.Vec2{X: 4, Y: 4}, Radius: 2},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.NRGBAAt(5, 0); got != red {
		t.Errorf("line cell has color %v", got)
	}
	if got := img.NRGBAAt(6, 4); got != (color.NRGBA{A: 255}) {
		t.Errorf("circle cell has color %v", got)
	}
	if got := img.NRGBAAt(4, 4); got != (color.NRGBA{}) {
		t.Errorf("circle center was painted: %v", got)
	}

	err = DrawImage(img, Circle{Radius: -2})
	if err == nil {
		t.Error("negative radius accepted")
	}
}

// The generators draw curve outlines with Curve.Path; it must agree with
// the outline of the test case.
func TestCurvePathMatchesOutline(t *testing.T) {
	type seg struct {
		Cmd path.Command
		Pts []vec.Vec2
	}
	collect := func(p path.Path) []seg {
		var res []seg
		for cmd, pts := range p {
			res = append(res, seg{cmd, slices.Clone(pts)})
		}
		return res
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			shapes := ExampleShapes(tc)
			for i, s := range tc.Shapes {
				c, ok := shapes[i].(Curve)
				if !ok {
					continue
				}
				n++
				diff(t, collect(testcases.Outline(s)), collect(c.Path()))

				box := c.BBox()
				for _, p := range c.Points {
					if p.X < box.LLx || p.X > box.URx || p.Y < box.LLy || p.Y > box.URy {
						t.Errorf("%s: control point %v outside %v", tc.Name, p, box)
					}
				}
			}
		}
	}
	if n == 0 {
		t.Error("no curves among the test cases")
	}
}
