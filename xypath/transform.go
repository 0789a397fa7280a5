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

package xypath

import (
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/ledgeom/point"
)

// Transform adjusts generator output before it is mapped to pixels.
// The point is rotated by Rotation radians and scaled by Scale, both
// about the centre of the unit square, and then shifted by the offsets.
// The zero Transform collapses every curve onto the centre; use
// DefaultTransform for the identity.
type Transform struct {
	Scale   float64
	XOffset float64
	YOffset float64

	// Rotation is the counter-clockwise rotation angle in radians.
	Rotation float64
}

// DefaultTransform returns the identity transform.
func DefaultTransform() Transform {
	return Transform{Scale: 1}
}

// IsIdentity reports whether tr leaves all points unchanged.
func (tr Transform) IsIdentity() bool {
	return tr.Scale == 1 && tr.XOffset == 0 && tr.YOffset == 0 && tr.Rotation == 0
}

// Apply transforms a point of the unit square.
func (tr Transform) Apply(p point.Vec2f) point.Vec2f {
	if tr.IsIdentity() {
		return p
	}
	x, y := tr.Matrix().Apply(p.X, p.Y)
	return point.Vec2f{X: x, Y: y}
}

// Matrix returns tr as an affine matrix.
func (tr Transform) Matrix() matrix.Matrix {
	s, c := math.Sincos(tr.Rotation)
	m := matrix.Matrix{
		tr.Scale * c, tr.Scale * s,
		-tr.Scale * s, tr.Scale * c,
		0, 0,
	}
	m[4] = 0.5 + tr.XOffset - 0.5*(m[0]+m[2])
	m[5] = 0.5 + tr.YOffset - 0.5*(m[1]+m[3])
	return m
}
