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

// Command export writes test case definitions, together with the cells
// produced by the rasterizer, to testdata/testcases.json.
// Other implementations can use the file to check their output.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string      `json:"name"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	CTM    []float64   `json:"ctm,omitempty"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Kind     string      `json:"kind"`
	Pts      [][]float64 `json:"pts"`
	Radius   float64     `json:"radius,omitempty"`
	Accuracy int         `json:"accuracy,omitempty"`
	BBox     []float64   `json:"bbox,omitempty"`
	Outline  []jsonSeg   `json:"outline"`
	Pixels   [][2]int    `json:"pixels"`
}

type jsonSeg struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	r := pixel.NewGrid(tc.Width, tc.Height)
	r.CTM = tc.CTM
	shapes := pixel.ExampleShapes(tc)
	for i, s := range tc.Shapes {
		var js jsonShape
		switch s := s.(type) {
		case testcases.Line:
			js.Kind = "line"
			js.Pts = [][]float64{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
		case testcases.Circle:
			js.Kind = "circle"
			js.Pts = [][]float64{{s.Center.X, s.Center.Y}}
			js.Radius = s.Radius
		case testcases.Curve:
			js.Kind = "curve"
			for _, p := range s.Points {
				js.Pts = append(js.Pts, []float64{p.X, p.Y})
			}
			js.Accuracy = s.Accuracy
		}
		js.Outline = pathToJSON(testcases.Outline(s))
		if c, ok := shapes[i].(pixel.Curve); ok {
			box := c.BBox()
			js.BBox = []float64{box.LLx, box.LLy, box.URx, box.URy}
			js.Outline = pathToJSON(c.Path())
		}

		pixels, err := r.Pixels(shapes[i])
		if err != nil {
			return jtc, fmt.Errorf("%s: %w", jtc.Name, err)
		}
		js.Pixels = cellsToJSON(pixels)

		jtc.Shapes = append(jtc.Shapes, js)
	}
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSeg {
	var segs []jsonSeg
	for cmd, pts := range p {
		seg := jsonSeg{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}

func cellsToJSON(cells []image.Point) [][2]int {
	res := make([][2]int, len(cells))
	for i, c := range cells {
		res[i] = [2]int{c.X, c.Y}
	}
	return res
}
