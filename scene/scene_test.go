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
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pixel"
)

func TestLoadFile(t *testing.T) {
	f, err := LoadFile(filepath.Join("testdata", "example.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 64 || f.Height != 48 {
		t.Errorf("size %d×%d", f.Width, f.Height)
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		t.Fatal(err)
	}
	if bg != (color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}) {
		t.Errorf("background %v", bg)
	}

	d, err := f.Drawing()
	if err != nil {
		t.Fatal(err)
	}
	shapes := d.Shapes()
	if len(shapes) != 4 {
		t.Fatalf("%d shapes, want 4", len(shapes))
	}
	line := shapes[0].(pixel.Line)
	if line.A != (vec.Vec2{X: 2, Y: 41}) || line.B != (vec.Vec2{X: 62, Y: 41}) {
		t.Errorf("translate not applied: %v", line)
	}
	curve := shapes[3].(pixel.Curve)
	if curve.Accuracy != 40 || curve.Color != (color.NRGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xc0}) {
		t.Errorf("wrong curve settings: %v", curve)
	}

	// the scene must be drawable as a whole
	r := pixel.NewGrid(f.Width, f.Height)
	for _, s := range shapes {
		if _, err := r.Pixels(s); err != nil {
			t.Errorf("%T: %v", s, err)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want a not-exist error", err)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no_size", `background = "#000000"`, ErrBadSize},
		{"negative_size", "width = -3\nheight = 5", ErrBadSize},
		{"unknown_op", "width = 4\nheight = 4\n[[transform]]\nop = \"twist\"", ErrUnknownTransform},
		{"unknown_axis", "width = 4\nheight = 4\n[[transform]]\nop = \"mirror\"\naxis = \"z\"", ErrUnknownTransform},
		{"shear_without_axis", "width = 4\nheight = 4\n[[transform]]\nop = \"shear\"\nvalue = 1", ErrUnknownTransform},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(c.src))
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}

	// unknown keys and syntax errors come from the TOML decoder
	for _, src := range []string{"width = 4\nheight = 4\ncolour = 1", "width = = 4"} {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Errorf("%q: no error", src)
		}
	}
}

func TestDrawingErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"bad_color", "[[line]]\nfrom = [0, 0]\nto = [1, 1]\ncolor = \"red\"", ErrBadColor},
		{"bad_radius", "[[circle]]\ncenter = [0, 0]\nradius = -2", pixel.ErrInvalidRadius},
		{"three_points", "[[curve]]\npoints = [[0, 0], [1, 1], [2, 2]]", pixel.ErrInvalidSample},
		{"bad_accuracy", "[[curve]]\npoints = [[0, 0], [1, 1], [2, 2], [3, 3]]\naccuracy = -5", pixel.ErrInvalidSample},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Load(strings.NewReader("width = 8\nheight = 8\n" + c.src))
			if err != nil {
				t.Fatal(err)
			}
			_, err = f.Drawing()
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestTransformOrder(t *testing.T) {
	src := `
width = 100
height = 100

[[transform]]
op = "scale"
x = 2

[[transform]]
op = "translate"
x = 10
y = -1

[[transform]]
op = "rotate_around"
angle = 3.141592653589793
center = [20, 20]

[[circle]]
center = [5, 5]
radius = 3
`
	f, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	d, err := f.Drawing()
	if err != nil {
		t.Fatal(err)
	}
	// (5, 5) → (10, 10) → (20, 9) → (20, 31); the radius is scaled by 2
	want := []pixel.Shape{
		pixel.Circle{Center: vec.Vec2{X: 20, Y: 31}, Radius: 6, Color: color.Black},
	}
	if diff := cmp.Diff(want, d.Shapes(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Error(diff)
	}
}

func TestTransformApply(t *testing.T) {
	two := 2.0
	pts := []vec.Vec2{{X: 1, Y: 3}}
	cases := []struct {
		tr   Transform
		want vec.Vec2
	}{
		{Transform{Op: "scale", X: 3}, vec.Vec2{X: 3, Y: 9}},
		{Transform{Op: "scale", X: 3, Y: &two}, vec.Vec2{X: 3, Y: 6}},
		{Transform{Op: "translate", X: -1, Y: &two}, vec.Vec2{X: 0, Y: 5}},
		{Transform{Op: "rotate", Angle: math.Pi / 2}, vec.Vec2{X: -3, Y: 1}},
		{Transform{Op: "mirror", Axis: "x"}, vec.Vec2{X: 1, Y: -3}},
		{Transform{Op: "mirror", Axis: "y"}, vec.Vec2{X: -1, Y: 3}},
		{Transform{Op: "mirror"}, vec.Vec2{X: -1, Y: -3}},
		{Transform{Op: "shear", Axis: "x", Value: 2}, vec.Vec2{X: 7, Y: 3}},
		{Transform{Op: "shear", Axis: "y", Value: 2}, vec.Vec2{X: 1, Y: 5}},
		{Transform{Op: "scale_around", X: 2, Center: [2]float64{1, 1}}, vec.Vec2{X: 1, Y: 5}},
	}
	for _, c := range cases {
		got := c.tr.Apply(pts)
		if diff := cmp.Diff([]vec.Vec2{c.want}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s: %s", c.tr.Op, diff)
		}
		m, err := c.tr.matrix()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(c.want, m.ApplyPoint(pts[0]), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("%s as matrix: %s", c.tr.Op, diff)
		}
	}
}

func TestParseColor(t *testing.T) {
	good := map[string]color.NRGBA{
		"#000000":   {A: 0xff},
		"#ff8000":   {R: 0xff, G: 0x80, A: 0xff},
		"#ABCDEF":   {R: 0xab, G: 0xcd, B: 0xef, A: 0xff},
		"#10203040": {R: 0x10, G: 0x20, B: 0x30, A: 0x40},
	}
	for s, want := range good {
		got, err := ParseColor(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %v, want %v", s, got, want)
		}
	}

	for _, s := range []string{"", "ff8000", "#ff800", "#ff80001", "#gg0000", "#-10000"} {
		if _, err := ParseColor(s); !errors.Is(err, ErrBadColor) {
			t.Errorf("%q: got %v, want ErrBadColor", s, err)
		}
	}
}
