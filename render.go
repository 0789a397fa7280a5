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

// Package ledgeom is the geometry and rasterisation core of an LED matrix
// animation library.
//
// Parametric curves (package xypath) are sampled, splatted into 2×2
// coverage tiles (package tile) and accumulated in dense or sparse
// rasters (package raster), which are then composited onto LED frame
// buffers through a coordinate map (package xymap).  Package corkscrew
// maps LEDs on a helically wound strip to a 2D surface, and package
// traverse enumerates the grid cells crossed by a line segment.
//
// This package holds the shared logger and renders the scenes of
// package testcases.
package ledgeom

//go:generate go run ./testcases/export

import (
	"log/slog"

	"seehuhn.de/go/ledgeom/internal/logging"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/raster"
	"seehuhn.de/go/ledgeom/testcases"
	"seehuhn.de/go/ledgeom/xypath"
)

// SetLogger installs the logger used by all ledgeom packages.  Passing
// nil restores the default, which discards everything.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger used by all ledgeom packages.
func Logger() *slog.Logger {
	return logging.Logger()
}

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	p := xypath.New(tc.Path(), width, height)
	p.SetTransform(tc.EffectiveTransform())

	d := raster.NewDense(point.Vec2i{}, width, height)
	switch op := tc.Op.(type) {
	case testcases.Trace:
		p.Rasterize(d, op.From, op.To, tc.Steps, nil)
	case testcases.Fill:
		p.Fill(d, tc.Steps)
	}

	for y := range height {
		row := buf[y*stride : y*stride+width]
		for x := range row {
			row[x] = d.At(x, y)
		}
	}
}
