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

// Package xypath draws parametric curves onto LED matrices.
//
// A Generator maps the curve parameter alpha ∈ [0, 1] to a point in the
// unit square.  A Renderer applies a Transform, maps the unit square onto
// a pixel grid and splats the samples into a raster.  XYPath bundles a
// generator with its renderer.
package xypath

import (
	"math"

	"seehuhn.de/go/ledgeom/point"
)

// Generator evaluates a parametric curve.  At maps alpha ∈ [0, 1] to a
// point in [0, 1]².  Each implementation documents what happens for
// alpha outside of [0, 1].
type Generator interface {
	At(alpha float64) point.Vec2f
	Name() string
}

var centre = point.Vec2f{X: 0.5, Y: 0.5}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	case math.IsNaN(v):
		return 0
	default:
		return v
	}
}

// polar returns the point at distance r from the centre of the unit
// square in direction theta.
func polar(r, theta float64) point.Vec2f {
	s, c := math.Sincos(theta)
	return point.Vec2f{X: 0.5 + r*c, Y: 0.5 + r*s}
}

// Point is a degenerate curve which stays at a single position.
type Point struct {
	X, Y float64
}

// At implements the Generator interface.
func (p Point) At(float64) point.Vec2f { return point.Vec2f{X: p.X, Y: p.Y} }

// Name implements the Generator interface.
func (Point) Name() string { return "point" }

// Line is the straight line from (X0, Y0) to (X1, Y1).
// Alpha is clamped to [0, 1].
type Line struct {
	X0, Y0 float64
	X1, Y1 float64
}

// At implements the Generator interface.
func (l Line) At(alpha float64) point.Vec2f {
	t := clamp01(alpha)
	return point.Lerp(point.Vec2f{X: l.X0, Y: l.Y0}, point.Vec2f{X: l.X1, Y: l.Y1}, t)
}

// Name implements the Generator interface.
func (Line) Name() string { return "line" }

// Circle is the largest circle inside the unit square, traversed once
// counter-clockwise starting at (1, 0.5).  Alpha wraps around.
type Circle struct{}

// At implements the Generator interface.
func (Circle) At(alpha float64) point.Vec2f {
	return polar(0.5, 2*math.Pi*alpha)
}

// Name implements the Generator interface.
func (Circle) Name() string { return "circle" }

// Heart is the classic heart curve
//
//	x = 16 sin³t,  y = 13 cos t − 5 cos 2t − 2 cos 3t − cos 4t,
//
// scaled to fill the unit square.  Alpha wraps around.
type Heart struct{}

// At implements the Generator interface.
func (Heart) At(alpha float64) point.Vec2f {
	t := 2 * math.Pi * alpha
	s := math.Sin(t)
	x := 16 * s * s * s
	y := 13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)
	// x ∈ [-16, 16], y ∈ [-17, 11.9]
	return point.Vec2f{X: 0.5 + x/32, Y: (y + 17) / 29}
}

// Name implements the Generator interface.
func (Heart) Name() string { return "heart" }

// ArchimedeanSpiral winds Turns times around the centre, with the
// radius growing linearly from 0 to Radius.  Alpha is clamped to [0, 1].
type ArchimedeanSpiral struct {
	Turns  float64
	Radius float64
}

// At implements the Generator interface.
func (s ArchimedeanSpiral) At(alpha float64) point.Vec2f {
	t := clamp01(alpha)
	return polar(s.Radius*t, 2*math.Pi*s.Turns*t)
}

// Name implements the Generator interface.
func (ArchimedeanSpiral) Name() string { return "archimedean_spiral" }

// Rose is the rhodonea curve r = cos(k θ) with k = N/D.  One period of
// alpha traverses the closed curve once.  Alpha wraps around.
type Rose struct {
	N, D int
}

// At implements the Generator interface.
func (r Rose) At(alpha float64) point.Vec2f {
	n, d := r.N, r.D
	if d <= 0 {
		d = 1
	}
	k := float64(n) / float64(d)
	theta := 2 * math.Pi * float64(d) * alpha
	return polar(0.5*math.Cos(k*theta), theta)
}

// Name implements the Generator interface.
func (Rose) Name() string { return "rose" }

// goldenAngle is the divergence angle of sunflower seeds, in radians.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Phyllotaxis walks through the seeds of Vogel's sunflower model: seed
// n sits at radius Radius·sqrt(n/Count) and angle n times the golden
// angle.  Alpha is clamped to [0, 1] and interpolates continuously
// between seeds.
type Phyllotaxis struct {
	Count  int
	Radius float64
}

// At implements the Generator interface.
func (p Phyllotaxis) At(alpha float64) point.Vec2f {
	count := max(p.Count, 1)
	n := clamp01(alpha) * float64(count)
	return polar(p.Radius*math.Sqrt(n/float64(count)), n*goldenAngle)
}

// Name implements the Generator interface.
func (Phyllotaxis) Name() string { return "phyllotaxis" }

// Lissajous is the curve (sin(2πA·α + Delta), sin(2πB·α)), scaled to the
// unit square.  Alpha wraps around.
type Lissajous struct {
	A, B  float64
	Delta float64
}

// At implements the Generator interface.
func (l Lissajous) At(alpha float64) point.Vec2f {
	t := 2 * math.Pi * alpha
	return point.Vec2f{
		X: 0.5 + 0.5*math.Sin(l.A*t+l.Delta),
		Y: 0.5 + 0.5*math.Sin(l.B*t),
	}
}

// Name implements the Generator interface.
func (Lissajous) Name() string { return "lissajous" }

// gielisSamples is the number of angles used to find the largest radius
// of a superformula shape.
const gielisSamples = 720

// Gielis is Gielis' superformula
//
//	r(φ) = (|cos(mφ/4)/a|^n2 + |sin(mφ/4)/b|^n3)^(−1/n1),
//
// scaled so that the largest radius is 0.5.  Alpha wraps around.  Use NewGielis or SetParams to change the
// shape, so that the scale factor is kept up to date.
type Gielis struct {
	a, b, m    float64
	n1, n2, n3 float64
	scale      float64
}

// NewGielis returns the superformula shape with the given parameters.
// Zero values for a or b are replaced by 1.
func NewGielis(a, b, m, n1, n2, n3 float64) *Gielis {
	g := &Gielis{}
	g.SetParams(a, b, m, n1, n2, n3)
	return g
}

// SetParams changes the shape parameters.
func (g *Gielis) SetParams(a, b, m, n1, n2, n3 float64) {
	if a == 0 {
		a = 1
	}
	if b == 0 {
		b = 1
	}
	g.a, g.b, g.m = a, b, m
	g.n1, g.n2, g.n3 = n1, n2, n3

	rMax := 0.0
	for i := range gielisSamples {
		rMax = max(rMax, g.radius(2*math.Pi*float64(i)/gielisSamples))
	}
	g.scale = 0
	if rMax > 0 {
		g.scale = 0.5 / rMax
	}
}

// Params returns the shape parameters.
func (g *Gielis) Params() (a, b, m, n1, n2, n3 float64) {
	return g.a, g.b, g.m, g.n1, g.n2, g.n3
}

func (g *Gielis) radius(phi float64) float64 {
	s, c := math.Sincos(g.m * phi / 4)
	t := math.Pow(math.Abs(c/g.a), g.n2) + math.Pow(math.Abs(s/g.b), g.n3)
	r := math.Pow(t, -1/g.n1)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// At implements the Generator interface.
func (g *Gielis) At(alpha float64) point.Vec2f {
	phi := 2 * math.Pi * alpha
	return polar(g.scale*g.radius(phi), phi)
}

// Name implements the Generator interface.
func (g *Gielis) Name() string { return "gielis" }
