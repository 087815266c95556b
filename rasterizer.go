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
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer converts shapes to the grid cells of a clip rectangle.
// Create one instance and reuse it for multiple shapes; the internal buffer
// grows as needed but never shrinks.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms shape coordinates to grid coordinates.
	// The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Clip is the target grid. Coordinates must be integer-aligned and the
	// rectangle must contain at least one cell. Cells which fall outside
	// are moved to the nearest border cell, never dropped.
	Clip rect.Rect

	pixels []image.Point // reused between calls
	ctrl   []vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle,
// with the identity as the CTM.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:  matrix.Identity,
		Clip: clip,
	}
}

// NewGrid returns a Rasterizer for a width×height grid with the origin in
// the top-left corner.
func NewGrid(width, height int) *Rasterizer {
	return NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
}

// Reset prepares the Rasterizer for a new clip rectangle and restores the
// identity CTM. Internal buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.pixels = r.pixels[:0]
	r.ctrl = r.ctrl[:0]
}

// Draw rasterizes s and calls emit for every cell, in drawing order.
// Cells can be emitted more than once. A shape without a color is drawn in
// black.
//
// Invalid shapes (negative radius, radius above MaxRadius after the CTM,
// incomplete curves, accuracy below one) give an error before emit is
// called, even if the clip rectangle is empty.
func (r *Rasterizer) Draw(s Shape, emit func(p image.Point, c color.Color)) error {
	pixels, err := r.Pixels(s)
	if err != nil {
		return err
	}
	col := shapeColor(s)
	for _, p := range pixels {
		emit(p, col)
	}
	return nil
}

// Pixels returns the cells of s inside the clip rectangle.
// The returned slice is owned by the Rasterizer and is only valid until the
// next call.
func (r *Rasterizer) Pixels(s Shape) ([]image.Point, error) {
	r.pixels = r.pixels[:0]
	ctm := AffineFromMatrix(r.CTM)

	var radius float64
	switch s := s.(type) {
	case Line:
	case Circle:
		radius = s.Radius * math.Sqrt(math.Abs(ctm.Det()))
		if !(s.Radius >= 0) || !(radius <= MaxRadius) {
			return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, s.Radius)
		}
	case Curve:
		if err := checkCubic(s.Points, s.Accuracy); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("pixel: unsupported shape %T", s)
	}

	if r.Clip.URx-r.Clip.LLx < 1 || r.Clip.URy-r.Clip.LLy < 1 {
		return r.pixels, nil
	}

	var clamped int
	switch s := s.(type) {
	case Line:
		r.ctrl = append(r.ctrl[:0], s.A, s.B)
		pts := ctm.Apply(r.ctrl)
		a, b := r.clamp(pts[0], &clamped), r.clamp(pts[1], &clamped)
		r.pixels = appendLine(r.pixels, a, b)

	case Circle:
		// Centers far outside the clip are moved to within one radius of it.
		// All cells end up on the same border cells as before.
		c := ctm.ApplyPoint(s.Center)
		margin := math.Ceil(radius) + 1
		center := image.Point{
			X: limitCoord(c.X, r.Clip.LLx-margin, r.Clip.URx+margin),
			Y: limitCoord(c.Y, r.Clip.LLy-margin, r.Clip.URy+margin),
		}
		seq, err := RasterizeCircle(center, radius)
		if err != nil {
			return nil, err
		}
		for p := range seq {
			if !inRect(p, r.Clip) {
				p = r.clamp(Pt(p), &clamped)
			}
			r.pixels = append(r.pixels, p)
		}

	case Curve:
		samples, err := EvaluateCubic(ctm.Apply(s.Points), s.Accuracy)
		if err != nil {
			return nil, err
		}
		prev := r.clampCell(samples[0], &clamped)
		for _, q := range samples[1:] {
			next := r.clampCell(q, &clamped)
			if len(r.pixels) > 0 {
				r.pixels = r.pixels[:len(r.pixels)-1] // shared vertex
			}
			r.pixels = appendLine(r.pixels, prev, next)
			prev = next
		}
	}

	if clamped > 0 {
		Logger().Debug("cells clamped to clip",
			"shape", fmt.Sprintf("%T", s),
			"clamped", clamped,
			"clip", r.Clip)
	}
	return r.pixels, nil
}

func (r *Rasterizer) clamp(p vec.Vec2, count *int) image.Point {
	q := ClampRect(p, r.Clip)
	if float64(q.X) != math.Floor(p.X) || float64(q.Y) != math.Floor(p.Y) {
		*count++
	}
	return q
}

// limitCoord limits v to [lo, hi] and rounds down. NaN maps to lo.
func limitCoord(v, lo, hi float64) int {
	if !(v > lo) {
		v = lo
	}
	return int(math.Floor(min(v, hi)))
}

func (r *Rasterizer) clampCell(p image.Point, count *int) image.Point {
	if inRect(p, r.Clip) {
		return p
	}
	*count++
	return ClampRect(Pt(p), r.Clip)
}

func shapeColor(s Shape) color.Color {
	var c color.Color
	switch s := s.(type) {
	case Line:
		c = s.Color
	case Circle:
		c = s.Color
	case Curve:
		c = s.Color
	}
	if c == nil {
		c = color.Black
	}
	return c
}
