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

// Package scene reads drawings from TOML files.
//
// A scene file gives the grid size, a background color, lists of lines,
// circles and curves, and an optional list of transforms which is applied,
// in order, to the coordinates of every shape:
//
//	width = 200
//	height = 120
//	background = "#ffffff"
//
//	[[transform]]
//	op = "rotate_around"
//	angle = 0.3
//	center = [100, 60]
//
//	[[line]]
//	from = [10, 10]
//	to = [190, 110]
//	color = "#ff0000"
//
//	[[circle]]
//	center = [100, 60]
//	radius = 40
//
//	[[curve]]
//	points = [[10, 100], [40, 10], [160, 10], [190, 100]]
//	accuracy = 50
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

var (
	// ErrUnknownTransform is returned for a transform with an unknown op.
	ErrUnknownTransform = errors.New("scene: unknown transform")

	// ErrBadColor is returned for a color which is not of the form
	// #rrggbb or #rrggbbaa.
	ErrBadColor = errors.New("scene: malformed color")

	// ErrBadSize is returned if the grid width or height is not positive.
	ErrBadSize = errors.New("scene: invalid grid size")
)

// File is the contents of a scene file.
type File struct {
	Width      int          `toml:"width"`
	Height     int          `toml:"height"`
	Background string       `toml:"background"`
	Transforms []Transform  `toml:"transform"`
	Lines      []LineSpec   `toml:"line"`
	Circles    []CircleSpec `toml:"circle"`
	Curves     []CurveSpec  `toml:"curve"`
}

// LineSpec describes a line segment.
type LineSpec struct {
	From  [2]float64 `toml:"from"`
	To    [2]float64 `toml:"to"`
	Color string     `toml:"color"`
}

// CircleSpec describes a circle.
type CircleSpec struct {
	Center [2]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
	Color  string     `toml:"color"`
}

// CurveSpec describes a cubic Bézier curve.
// If Accuracy is zero, DefaultAccuracy is used.
type CurveSpec struct {
	Points   [][2]float64 `toml:"points"`
	Accuracy int          `toml:"accuracy"`
	Color    string       `toml:"color"`
}

// Transform is one step of the transform list.
//
// The meaning of the fields depends on Op:
//
//   - "scale": X and Y are the scale factors; Y defaults to X.
//   - "translate": X and Y are the offsets; Y defaults to X.
//   - "rotate": Angle in radians, around the origin.
//   - "mirror": Axis is "x", "y" or empty (reflect through the origin).
//   - "shear": Value is the shear factor, Axis is "x" or "y".
//   - "rotate_around": Angle in radians, around Center.
//   - "scale_around": X and Y as for "scale", around Center.
type Transform struct {
	Op     string     `toml:"op"`
	X      float64    `toml:"x"`
	Y      *float64   `toml:"y"`
	Angle  float64    `toml:"angle"`
	Axis   string     `toml:"axis"`
	Value  float64    `toml:"value"`
	Center [2]float64 `toml:"center"`
}

// Load decodes a scene from r. Unknown keys are an error.
func Load(r io.Reader) (*File, error) {
	f := &File{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadSize, f.Width, f.Height)
	}
	for i, t := range f.Transforms {
		if _, err := t.matrix(); err != nil {
			return nil, fmt.Errorf("transform %d: %w", i, err)
		}
	}
	return f, nil
}

// LoadFile reads a scene from the named file.
func LoadFile(name string) (*File, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// BackgroundColor returns the background color, white if none is set.
func (f *File) BackgroundColor() (color.Color, error) {
	if f.Background == "" {
		return color.White, nil
	}
	return ParseColor(f.Background)
}

// Drawing returns the shapes of the scene, with all transforms applied,
// in the order lines, circles, curves.
func (f *File) Drawing() (*Drawing, error) {
	d := NewDrawing()
	scale := 1.0
	for _, t := range f.Transforms {
		m, err := t.matrix()
		if err != nil {
			return nil, err
		}
		scale *= math.Sqrt(math.Abs(m.Det()))
	}

	for i, l := range f.Lines {
		c, err := parseColorDefault(l.Color)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		pts := f.apply([]vec.Vec2{toVec(l.From), toVec(l.To)})
		d.SetColor(c)
		d.AddLine(pts[0], pts[1])
	}

	for i, s := range f.Circles {
		c, err := parseColorDefault(s.Color)
		if err != nil {
			return nil, fmt.Errorf("circle %d: %w", i, err)
		}
		if !(s.Radius >= 0) {
			return nil, fmt.Errorf("circle %d: %w: %g", i, pixel.ErrInvalidRadius, s.Radius)
		}
		center := f.apply([]vec.Vec2{toVec(s.Center)})[0]
		d.SetColor(c)
		d.AddCircleRadius(center, s.Radius*scale)
	}

	for i, s := range f.Curves {
		c, err := parseColorDefault(s.Color)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
		if len(s.Points) != 4 {
			return nil, fmt.Errorf("curve %d: %w: %d control points, need 4",
				i, pixel.ErrInvalidSample, len(s.Points))
		}
		acc := s.Accuracy
		if acc == 0 {
			acc = DefaultAccuracy
		} else if acc < MinAccuracy || acc > MaxAccuracy {
			return nil, fmt.Errorf("curve %d: %w: accuracy %d", i, pixel.ErrInvalidSample, acc)
		}

		pts := make([]vec.Vec2, len(s.Points))
		for j, p := range s.Points {
			pts[j] = toVec(p)
		}
		pts = f.apply(pts)

		d.SetColor(c)
		d.SetAccuracy(acc)
		for _, p := range pts {
			d.AddCurvePoint(p)
		}
	}
	return d, nil
}

// apply runs the transform list on the points.
func (f *File) apply(pts []vec.Vec2) []vec.Vec2 {
	for _, t := range f.Transforms {
		pts = t.Apply(pts)
	}
	return pts
}

// Apply transforms the points. Invalid transforms leave the points
// unchanged; Load rejects them.
func (t Transform) Apply(pts []vec.Vec2) []vec.Vec2 {
	x := t.X
	y := x
	if t.Y != nil {
		y = *t.Y
	}
	center := toVec(t.Center)

	switch t.Op {
	case "scale":
		return pixel.Scale(pts, x, y)
	case "translate":
		return pixel.Translate(pts, x, y)
	case "rotate":
		return pixel.Rotate(pts, t.Angle)
	case "mirror":
		axis, _ := parseAxis(t.Axis)
		return pixel.Mirror(pts, axis)
	case "shear":
		axis, _ := parseAxis(t.Axis)
		return pixel.Shear(pts, t.Value, axis)
	case "rotate_around":
		return pixel.RotateAroundPoint(pts, center, t.Angle)
	case "scale_around":
		return pixel.ScaleAroundPoint(pts, center, x, y)
	}
	return pts
}

// matrix returns the transform as a single affine map.
func (t Transform) matrix() (pixel.Affine, error) {
	x := t.X
	y := x
	if t.Y != nil {
		y = *t.Y
	}
	center := toVec(t.Center)
	toOrigin := pixel.TranslateMatrix(-center.X, -center.Y)
	back := pixel.TranslateMatrix(center.X, center.Y)

	switch t.Op {
	case "scale":
		return pixel.ScaleMatrix(x, y), nil
	case "translate":
		return pixel.TranslateMatrix(x, y), nil
	case "rotate":
		return pixel.RotateMatrix(t.Angle), nil
	case "mirror", "shear":
		axis, err := parseAxis(t.Axis)
		if err != nil {
			return pixel.Affine{}, err
		}
		if t.Op == "mirror" {
			return pixel.MirrorMatrix(axis), nil
		}
		if axis == pixel.AxisBoth {
			return pixel.Affine{}, fmt.Errorf("%w: shear needs axis x or y", ErrUnknownTransform)
		}
		return pixel.ShearMatrix(t.Value, axis), nil
	case "rotate_around":
		return toOrigin.Then(pixel.RotateMatrix(t.Angle)).Then(back), nil
	case "scale_around":
		return toOrigin.Then(pixel.ScaleMatrix(x, y)).Then(back), nil
	}
	return pixel.Affine{}, fmt.Errorf("%w: %q", ErrUnknownTransform, t.Op)
}

func parseAxis(s string) (pixel.Axis, error) {
	switch s {
	case "x":
		return pixel.AxisX, nil
	case "y":
		return pixel.AxisY, nil
	case "", "both":
		return pixel.AxisBoth, nil
	}
	return pixel.AxisBoth, fmt.Errorf("%w: axis %q", ErrUnknownTransform, s)
}

// ParseColor parses a color of the form #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	// color.NRGBA, since the alpha is not premultiplied in the file
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func parseColorDefault(s string) (color.Color, error) {
	if s == "" {
		return color.Black, nil
	}
	return ParseColor(s)
}

func toVec(p [2]float64) vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}
