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

package scene

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

// Limits for the curve accuracy.
const (
	MinAccuracy     = 1
	MaxAccuracy     = 10000
	DefaultAccuracy = 100
)

// Drawing collects shapes the way an interactive drawing tool does:
// lines and circles are added in one step, while a curve is built from
// four separate clicks. At most one curve is open (incomplete) at any time.
//
// The zero value is not ready for use; call NewDrawing.
type Drawing struct {
	color    color.Color
	accuracy int

	shapes []pixel.Shape
	open   *pixel.Curve
}

// NewDrawing returns an empty drawing which uses black and the default
// accuracy for new shapes.
func NewDrawing() *Drawing {
	return &Drawing{
		color:    color.Black,
		accuracy: DefaultAccuracy,
	}
}

// AddLine adds a line from a to b in the current color.
func (d *Drawing) AddLine(a, b vec.Vec2) {
	d.shapes = append(d.shapes, pixel.Line{A: a, B: b, Color: d.color})
}

// AddCircle adds a circle in the current color. The circle is centred at
// center and passes through rim.
func (d *Drawing) AddCircle(center, rim vec.Vec2) {
	d.AddCircleRadius(center, rim.Sub(center).Length())
}

// AddCircleRadius adds a circle with the given center and radius.
func (d *Drawing) AddCircleRadius(center vec.Vec2, radius float64) {
	d.shapes = append(d.shapes, pixel.Circle{Center: center, Radius: radius, Color: d.color})
}

// AddCurvePoint adds a control point to the open curve, starting a new
// curve if none is open. When the fourth point is added, the curve is
// closed and becomes part of the drawing; in this case the function
// returns true.
func (d *Drawing) AddCurvePoint(p vec.Vec2) bool {
	if d.open == nil {
		d.open = &pixel.Curve{
			Points:   make([]vec.Vec2, 0, 4),
			Accuracy: d.accuracy,
			Color:    d.color,
		}
	}
	d.open.Points = append(d.open.Points, p)
	if !d.open.Complete() {
		return false
	}
	d.shapes = append(d.shapes, *d.open)
	d.open = nil
	return true
}

// Open returns a copy of the curve which is currently being built.
func (d *Drawing) Open() (pixel.Curve, bool) {
	if d.open == nil {
		return pixel.Curve{}, false
	}
	c := *d.open
	c.Points = slices.Clone(c.Points)
	return c, true
}

// Discard drops the open curve, if any.
func (d *Drawing) Discard() {
	d.open = nil
}

// SetColor sets the color for new shapes and for the open curve.
func (d *Drawing) SetColor(c color.Color) {
	d.color = c
	if d.open != nil {
		d.open.Color = c
	}
}

// SetAccuracy sets the accuracy for new curves and for the open curve.
// The value is clamped to [MinAccuracy, MaxAccuracy]; the value actually
// used is returned.
func (d *Drawing) SetAccuracy(n int) int {
	n = min(max(n, MinAccuracy), MaxAccuracy)
	d.accuracy = n
	if d.open != nil {
		d.open.Accuracy = n
	}
	return n
}

// Shapes returns the completed shapes, in the order they were added.
// The open curve is not included.
func (d *Drawing) Shapes() []pixel.Shape {
	return slices.Clone(d.shapes)
}

// Clear removes all shapes, including the open curve.
// Color and accuracy are kept.
func (d *Drawing) Clear() {
	d.shapes = nil
	d.open = nil
}
