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
	"slices"

	"seehuhn.de/go/ledgeom/point"
)

// CatmullRom is a Catmull-Rom spline through a list of control points in
// the unit square.  Alpha is clamped to [0, 1]; alpha 0 is the first
// control point and alpha 1 the last one.  The end points are repeated
// to obtain tangents for the first and last segment.
//
// The knot spacing is controlled by the parameterisation exponent: 0 gives
// the uniform spline, 0.5 the centripetal one and 1 the chordal one.
// Segments whose control points coincide fall back to uniform spacing.
type CatmullRom struct {
	pts   []point.Vec2f
	alpha float64
}

// Parameterisation exponents.
const (
	Uniform     = 0.0
	Centripetal = 0.5
	Chordal     = 1.0
)

// NewCatmullRom returns a spline through the given points.  The
// exponent is clamped to [0, 1].
func NewCatmullRom(exponent float64, pts ...point.Vec2f) *CatmullRom {
	return &CatmullRom{
		pts:   slices.Clone(pts),
		alpha: clamp01(exponent),
	}
}

// AddPoint appends a control point.
func (c *CatmullRom) AddPoint(p point.Vec2f) {
	c.pts = append(c.pts, p)
}

// Clear removes all control points.
func (c *CatmullRom) Clear() {
	c.pts = c.pts[:0]
}

// Points returns a copy of the control points.
func (c *CatmullRom) Points() []point.Vec2f {
	return slices.Clone(c.pts)
}

// Len returns the number of control points.
func (c *CatmullRom) Len() int {
	return len(c.pts)
}

// Exponent returns the knot parameterisation exponent.
func (c *CatmullRom) Exponent() float64 {
	return c.alpha
}

// SetExponent changes the knot parameterisation.  The value is clamped
// to [0, 1].
func (c *CatmullRom) SetExponent(e float64) {
	c.alpha = clamp01(e)
}

// At implements the Generator interface.  Without control points the
// spline sits at the centre of the unit square.
func (c *CatmullRom) At(alpha float64) point.Vec2f {
	n := len(c.pts)
	switch n {
	case 0:
		return centre
	case 1:
		return c.pts[0]
	}

	s := clamp01(alpha) * float64(n-1)
	seg := min(int(s), n-2)
	t := s - float64(seg)

	p0 := c.pts[max(seg-1, 0)]
	p1 := c.pts[seg]
	p2 := c.pts[seg+1]
	p3 := c.pts[min(seg+2, n-1)]
	return c.segment(p0, p1, p2, p3, t)
}

// Name implements the Generator interface.
func (c *CatmullRom) Name() string { return "catmull_rom" }

// minKnotStep is the smallest knot interval used as is.
const minKnotStep = 1e-9

// segment evaluates the spline piece between p1 and p2 at t ∈ [0, 1],
// using the pyramidal scheme of Barry and Goldman.
func (c *CatmullRom) segment(p0, p1, p2, p3 point.Vec2f, t float64) point.Vec2f {
	t0 := 0.0
	t1 := t0 + math.Pow(p0.Distance(p1), c.alpha)
	t2 := t1 + math.Pow(p1.Distance(p2), c.alpha)
	t3 := t2 + math.Pow(p2.Distance(p3), c.alpha)
	if t1-t0 < minKnotStep || t2-t1 < minKnotStep || t3-t2 < minKnotStep {
		t0, t1, t2, t3 = 0, 1, 2, 3
	}

	u := t1 + t*(t2-t1)
	a1 := point.Lerp(p0, p1, (u-t0)/(t1-t0))
	a2 := point.Lerp(p1, p2, (u-t1)/(t2-t1))
	a3 := point.Lerp(p2, p3, (u-t2)/(t3-t2))
	b1 := point.Lerp(a1, a2, (u-t0)/(t2-t0))
	b2 := point.Lerp(a2, a3, (u-t1)/(t3-t1))
	return point.Lerp(b1, b2, (u-t1)/(t2-t1))
}
