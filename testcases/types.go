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

// Package testcases holds the scenes used to check and preview the
// renderers.
package testcases

import (
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/xypath"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string                  // lowercase a-z, 0-9 and _ only
	Path      func() xypath.Generator // returns a curve not shared with other callers
	Width     int                     // grid width in pixels
	Height    int                     // grid height in pixels
	Steps     int                     // number of samples
	Transform xypath.Transform        // zero value means no transform
	Op        Operation               // trace or fill
}

// Operation is the rendering operation to apply to the curve.
type Operation interface {
	isOperation()
}

// Trace splats Steps samples with alpha evenly spaced in [From, To].
type Trace struct {
	From, To float64
}

func (Trace) isOperation() {}

// Fill fills the outline through Steps samples of the closed curve.
type Fill struct{}

func (Fill) isOperation() {}

// EffectiveTransform returns the transform of tc, with the zero value
// replaced by the identity.
func (tc TestCase) EffectiveTransform() xypath.Transform {
	if tc.Transform == (xypath.Transform{}) {
		return xypath.DefaultTransform()
	}
	return tc.Transform
}

// full traces the whole curve.
var full = Trace{From: 0, To: 1}

// pt is a helper to create a point.Vec2f from x, y coordinates.
func pt(x, y float64) point.Vec2f {
	return point.Vec2f{X: x, Y: y}
}

type valueGenerator interface {
	xypath.Point | xypath.Line | xypath.Circle | xypath.Heart |
		xypath.ArchimedeanSpiral | xypath.Rose | xypath.Phyllotaxis |
		xypath.Lissajous
	xypath.Generator
}

// gen wraps a generator with value semantics.  Generators with mutable
// state (*xypath.Gielis, *xypath.CatmullRom) are constructed inside the
// Path function instead, so that every call returns a new instance.
func gen[G valueGenerator](g G) func() xypath.Generator {
	return func() xypath.Generator { return g }
}
