// seehuhn.de/go/ledgeom - geometry and rasterisation for LED matrices
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

package testcases

import (
	"seehuhn.de/go/ledgeom/xypath"
)

// precisionCases place single samples at sub-pixel offsets.  On a 33×33
// grid, unit square coordinates are multiples of 1/32 pixel apart.
var precisionCases = []TestCase{
	subpixelPoint("subpixel_offset_00", 0),
	subpixelPoint("subpixel_offset_25", 0.25),
	subpixelPoint("subpixel_offset_50", 0.5),
	subpixelPoint("subpixel_offset_75", 0.75),
	{
		Name:   "line_dense_samples",
		Path:   gen(xypath.Line{X0: 0, Y0: 0.5, X1: 1, Y1: 0.5}),
		Width:  33,
		Height: 33,
		Steps:  1000,
		Op:     full,
	},
	{
		Name:   "line_sparse_samples",
		Path:   gen(xypath.Line{X0: 0, Y0: 0.5, X1: 1, Y1: 0.5}),
		Width:  33,
		Height: 33,
		Steps:  9,
		Op:     full,
	},
}

// subpixelPoint draws one sample which is offset pixels right of and
// below the centre of pixel (16, 16).
func subpixelPoint(name string, offset float64) TestCase {
	c := (16 + offset) / 32
	return TestCase{
		Name:   name,
		Path:   gen(xypath.Point{X: c, Y: c}),
		Width:  33,
		Height: 33,
		Steps:  1,
		Op:     full,
	}
}
