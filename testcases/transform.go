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
	"math"

	"seehuhn.de/go/ledgeom/xypath"
)

var transformCases = []TestCase{
	{
		Name:      "scale_half",
		Path:      gen(xypath.Circle{}),
		Width:     32,
		Height:    32,
		Steps:     256,
		Transform: xypath.Transform{Scale: 0.5},
		Op:        full,
	},
	{
		Name:      "scale_quarter_offset",
		Path:      gen(xypath.Heart{}),
		Width:     32,
		Height:    32,
		Steps:     256,
		Transform: xypath.Transform{Scale: 0.25, XOffset: -0.25, YOffset: 0.25},
		Op:        full,
	},
	{
		Name:      "rotate_45deg",
		Path:      gen(xypath.Line{X0: 0, Y0: 0.5, X1: 1, Y1: 0.5}),
		Width:     32,
		Height:    32,
		Steps:     64,
		Transform: xypath.Transform{Scale: 1, Rotation: math.Pi / 4},
		Op:        full,
	},
	{
		Name:      "rotate_90deg",
		Path:      gen(xypath.Heart{}),
		Width:     32,
		Height:    32,
		Steps:     256,
		Transform: xypath.Transform{Scale: 1, Rotation: math.Pi / 2},
		Op:        full,
	},
	{
		Name:      "rotate_5deg",
		Path:      gen(xypath.Rose{N: 4, D: 1}),
		Width:     32,
		Height:    32,
		Steps:     512,
		Transform: xypath.Transform{Scale: 0.9, Rotation: 5 * math.Pi / 180},
		Op:        full,
	},
	{
		Name:      "offset_partly_outside",
		Path:      gen(xypath.Circle{}),
		Width:     32,
		Height:    32,
		Steps:     256,
		Transform: xypath.Transform{Scale: 1, XOffset: 0.4, YOffset: -0.3},
		Op:        full,
	},
}
