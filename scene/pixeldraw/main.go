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

// Command pixeldraw renders a scene file to a PNG image.
//
// Usage:
//
//	pixeldraw [-o out.png] [-scale n] [-v] scene.toml
//
// Every grid cell becomes an n×n block of image pixels, so that the
// individual cells stay visible.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"seehuhn.de/go/pixel"
	"seehuhn.de/go/pixel/scene"
)

func main() {
	out := flag.String("o", "", "output file (default: scene name with .png)")
	scale := flag.Int("scale", 4, "size of a grid cell in image pixels")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.toml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	pixel.SetLogger(logger)

	in := flag.Arg(0)
	if *out == "" {
		*out = strings.TrimSuffix(in, ".toml") + ".png"
	}

	if err := run(in, *out, *scale); err != nil {
		logger.Error("pixeldraw failed", "scene", in, "err", err)
		os.Exit(1)
	}
	logger.Debug("image written", "file", *out)
}

func run(in, out string, scale int) error {
	if scale < 1 {
		return fmt.Errorf("invalid scale %d", scale)
	}

	f, err := scene.LoadFile(in)
	if err != nil {
		return err
	}
	bg, err := f.BackgroundColor()
	if err != nil {
		return err
	}
	d, err := f.Drawing()
	if err != nil {
		return err
	}

	grid := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if err := pixel.DrawImage(grid, d.Shapes()...); err != nil {
		return err
	}

	img := grid
	if scale > 1 {
		img = image.NewNRGBA(image.Rect(0, 0, f.Width*scale, f.Height*scale))
		draw.NearestNeighbor.Scale(img, img.Bounds(), grid, grid.Bounds(), draw.Src, nil)
	}

	fd, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(fd, img); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}
