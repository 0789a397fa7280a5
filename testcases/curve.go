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

var curveCases = []TestCase{
	{
		Name:   "line_diagonal",
		Path:   gen(xypath.Line{X0: 0, Y0: 0, X1: 1, Y1: 1}),
		Width:  32,
		Height: 32,
		Steps:  64,
		Op:     full,
	},
	{
		Name:   "line_shallow",
		Path:   gen(xypath.Line{X0: 0, Y0: 0.2, X1: 1, Y1: 0.45}),
		Width:  32,
		Height: 16,
		Steps:  64,
		Op:     full,
	},
	{
		Name:   "circle",
		Path:   gen(xypath.Circle{}),
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     full,
	},
	{
		Name:   "circle_oval",
		Path:   gen(xypath.Circle{}),
		Width:  48,
		Height: 16,
		Steps:  256,
		Op:     full,
	},
	{
		Name:   "heart",
		Path:   gen(xypath.Heart{}),
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     full,
	},
	{
		Name:   "spiral",
		Path:   gen(xypath.ArchimedeanSpiral{Turns: 4, Radius: 0.5}),
		Width:  48,
		Height: 48,
		Steps:  1024,
		Op:     full,
	},
	{
		Name:   "rose_3",
		Path:   gen(xypath.Rose{N: 3, D: 1}),
		Width:  32,
		Height: 32,
		Steps:  512,
		Op:     full,
	},
	{
		Name:   "rose_5_4",
		Path:   gen(xypath.Rose{N: 5, D: 4}),
		Width:  48,
		Height: 48,
		Steps:  2048,
		Op:     full,
	},
	{
		Name:   "phyllotaxis",
		Path:   gen(xypath.Phyllotaxis{Count: 200, Radius: 0.5}),
		Width:  48,
		Height: 48,
		Steps:  200,
		Op:     full,
	},
	{
		Name:   "gielis_star",
		Path:   func() xypath.Generator { return xypath.NewGielis(1, 1, 5, 2, 7, 7) },
		Width:  32,
		Height: 32,
		Steps:  512,
		Op:     full,
	},
	{
		Name:   "gielis_flower",
		Path:   func() xypath.Generator { return xypath.NewGielis(1, 1, 6, 1, 7, 8) },
		Width:  32,
		Height: 32,
		Steps:  512,
		Op:     full,
	},
	{
		Name:   "lissajous",
		Path:   gen(xypath.Lissajous{A: 3, B: 2, Delta: math.Pi / 2}),
		Width:  32,
		Height: 32,
		Steps:  512,
		Op:     full,
	},
	{
		Name: "catmull_rom",
		Path: func() xypath.Generator {
			return xypath.NewCatmullRom(xypath.Centripetal,
				pt(0.1, 0.1), pt(0.3, 0.8), pt(0.5, 0.5), pt(0.7, 0.2), pt(0.9, 0.9))
		},
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     full,
	},
	{
		Name: "catmull_rom_uniform",
		Path: func() xypath.Generator {
			return xypath.NewCatmullRom(xypath.Uniform,
				pt(0.1, 0.1), pt(0.3, 0.8), pt(0.5, 0.5), pt(0.7, 0.2), pt(0.9, 0.9))
		},
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     full,
	},
	{
		Name:   "circle_half",
		Path:   gen(xypath.Circle{}),
		Width:  32,
		Height: 32,
		Steps:  128,
		Op:     Trace{From: 0, To: 0.5},
	},
	{
		Name:   "heart_reverse",
		Path:   gen(xypath.Heart{}),
		Width:  32,
		Height: 32,
		Steps:  256,
		Op:     Trace{From: 1, To: 0},
	},
}
