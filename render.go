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

// Package pixel implements integer-grid rasterization of lines, circles and
// cubic Bézier curves, together with a pipeline of 2D affine transforms.
//
// Lines are drawn with Bresenham's algorithm ([RasterizeLine]) and circles
// with the midpoint algorithm ([RasterizeCircle]). Cubic Bézier curves are
// sampled in matrix form ([EvaluateCubic]) and drawn as polylines.
// The transforms ([Scale], [Translate], [Rotate], [Mirror], [Shear] and the
// pivot variants) use row vectors, (x y 1)·M, like PDF.
//
// None of the functions draw to a surface. They produce grid cells, and the
// caller decides what to do with them; [Rasterizer] clips the cells to a
// grid, and [DrawImage] and [RenderExample] paint them into images.
package pixel

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Cells touched by a shape are set to 255.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) error {
	r := NewGrid(width, height)
	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	for i, s := range ExampleShapes(tc) {
		err := r.Draw(s, func(p image.Point, _ color.Color) {
			buf[p.Y*stride+p.X] = 255
		})
		if err != nil {
			return fmt.Errorf("%s: shape %d: %w", tc.Name, i, err)
		}
	}
	return nil
}

// ExampleShapes converts the shapes of a test case to drawable shapes.
// All shapes are white.
func ExampleShapes(tc testcases.TestCase) []Shape {
	res := make([]Shape, 0, len(tc.Shapes))
	for _, s := range tc.Shapes {
		switch s := s.(type) {
		case testcases.Line:
			res = append(res, Line{A: s.A, B: s.B, Color: color.White})
		case testcases.Circle:
			res = append(res, Circle{Center: s.Center, Radius: s.Radius, Color: color.White})
		case testcases.Curve:
			res = append(res, Curve{
				Points:   append([]vec.Vec2(nil), s.Points[:]...),
				Accuracy: s.Accuracy,
				Color:    color.White,
			})
		}
	}
	return res
}

// DrawImage rasterizes the shapes into dst, clipped to the bounds of dst.
// Every cell is set to the color of its shape.
func DrawImage(dst draw.Image, shapes ...Shape) error {
	b := dst.Bounds()
	r := NewRasterizer(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	for _, s := range shapes {
		err := r.Draw(s, func(p image.Point, c color.Color) {
			dst.Set(p.X, p.Y, c)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
