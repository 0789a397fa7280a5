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

var fillCases = []TestCase{
	{
		Name:   "circle",
		Path:   gen(xypath.Circle{}),
		Width:  32,
		Height: 32,
		Steps:  128,
		Op:     Fill{},
	},
	{
		Name:   "heart",
		Path:   gen(xypath.Heart{}),
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     Fill{},
	},
	{
		Name:   "rose_3",
		Path:   gen(xypath.Rose{N: 3, D: 1}),
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     Fill{},
	},
	{
		Name:   "gielis_star",
		Path:   func() xypath.Generator { return xypath.NewGielis(1, 1, 5, 2, 7, 7) },
		Width:  32,
		Height: 32,
		Steps:  512,
		Op:     Fill{},
	},
	{
		Name:      "heart_rotated",
		Path:      gen(xypath.Heart{}),
		Width:     32,
		Height:    32,
		Steps:     256,
		Transform: xypath.Transform{Scale: 0.8, Rotation: 0.3},
		Op:        Fill{},
	},
	{
		Name:   "circle_tiny",
		Path:   gen(xypath.Circle{}),
		Width:  3,
		Height: 3,
		Steps:  64,
		Op:     Fill{},
	},
}
