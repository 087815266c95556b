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

import "errors"

// Sentinel errors for invalid input.
// All of them are detected before any output is produced.
var (
	// ErrInvalidShape is returned when matrix dimensions are incompatible,
	// for example a product with a.Cols() != b.Rows().
	ErrInvalidShape = errors.New("pixel: invalid matrix shape")

	// ErrInvalidSample is returned for a curve accuracy below one, or a
	// curve that does not have exactly four control points.
	ErrInvalidSample = errors.New("pixel: invalid curve sampling")

	// ErrInvalidRadius is returned for a negative (or NaN) circle radius,
	// or for a radius above MaxRadius.
	ErrInvalidRadius = errors.New("pixel: invalid radius")
)
