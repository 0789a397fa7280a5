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

// Package point provides small value types for 2D and 3D geometry:
// vectors over any numeric type and axis-aligned rectangles.
//
// All types are plain values.  Methods never modify the receiver.
package point

import (
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/geom/vec"
)

// Number is the set of element types allowed in vectors and rectangles.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a 2D vector.
type Vec2[T Number] struct {
	X, Y T
}

// Common instantiations.
type (
	Vec2f   = Vec2[float64]
	Vec2i   = Vec2[int]
	Vec2u8  = Vec2[uint8]
	Vec2u16 = Vec2[uint16]
)

// V2 is a shorthand for Vec2[T]{x, y}.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns v+o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + o.X, v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - o.X, v.Y - o.Y}
}

// Mul returns the elementwise product of v and o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * o.X, v.Y * o.Y}
}

// Div returns the elementwise quotient of v and o.
// For integer types, a zero component in o panics.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / o.X, v.Y / o.Y}
}

// Scale returns v*s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{v.X * s, v.Y * s}
}

// DivScalar returns v/s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{v.X / s, v.Y / s}
}

// Min returns the componentwise minimum of v and o.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)}
}

// Dot returns the scalar product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean norm of v.
func (v Vec2[T]) Length() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// Distance returns the Euclidean distance between v and o.
// The difference is formed in float64, so unsigned types do not wrap.
func (v Vec2[T]) Distance(o Vec2[T]) float64 {
	return math.Hypot(float64(v.X)-float64(o.X), float64(v.Y)-float64(o.Y))
}

// IsZero reports whether both components are zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Cast converts the components of v to type U, using Go conversion rules
// (floats are truncated towards zero when converted to integers).
func Cast[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// Floor returns the integer vector obtained by rounding both components
// of v towards negative infinity.
func Floor(v Vec2f) Vec2i {
	return Vec2i{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Lerp interpolates between a (t=0) and b (t=1).
func Lerp(a, b Vec2f, t float64) Vec2f {
	return Vec2f{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// ToVec converts v into a geom vector.
func ToVec[T Number](v Vec2[T]) vec.Vec2 {
	return vec.Vec2{X: float64(v.X), Y: float64(v.Y)}
}
