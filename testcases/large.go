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

// largeCases contain fills with bounding boxes above 65536 pixels, which
// the filler processes one scanline at a time.
var largeCases = []TestCase{
	{
		Name:   "large_circle",
		Path:   gen(xypath.Circle{}),
		Width:  320,
		Height: 320,
		Steps:  1024,
		Op:     Fill{},
	},
	{
		Name:   "large_rose",
		Path:   gen(xypath.Rose{N: 5, D: 1}),
		Width:  300,
		Height: 300,
		Steps:  2048,
		Op:     Fill{},
	},
	{
		Name:   "large_spiral",
		Path:   gen(xypath.ArchimedeanSpiral{Turns: 8, Radius: 0.5}),
		Width:  300,
		Height: 300,
		Steps:  8192,
		Op:     full,
	},
}
