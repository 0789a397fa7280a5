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

package point

import "math"

// Vec3 is a 3D vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Vec3f is the float64 instantiation of Vec3.
type Vec3f = Vec3[float64]

// Add returns v+o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the elementwise product of v and o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the elementwise quotient of v and o.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Scale returns v*s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Min returns the componentwise minimum of v and o.
func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the componentwise maximum of v and o.
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Length returns the Euclidean norm of v.
func (v Vec3[T]) Length() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Sqrt(x*x + y*y + z*z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3[T]) Distance(o Vec3[T]) float64 {
	dx := float64(v.X) - float64(o.X)
	dy := float64(v.Y) - float64(o.Y)
	dz := float64(v.Z) - float64(o.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Cast3 converts the components of v to type U.
func Cast3[U, T Number](v Vec3[T]) Vec3[U] {
	return Vec3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}
