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

import "seehuhn.de/go/geom/rect"

// Rect is an axis-aligned rectangle.  Min is inclusive, Max is exclusive
// for containment tests.
type Rect[T Number] struct {
	Min, Max Vec2[T]
}

// R is a shorthand for the rectangle with corners (x0, y0) and (x1, y1).
// The corners are not reordered.
func R[T Number](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Vec2[T]{x0, y0}, Max: Vec2[T]{x1, y1}}
}

// Width returns Max.X - Min.X.
func (r Rect[T]) Width() T {
	return r.Max.X - r.Min.X
}

// Height returns Max.Y - Min.Y.
func (r Rect[T]) Height() T {
	return r.Max.Y - r.Min.Y
}

// Empty reports whether r contains no points.  This includes the
// degenerate case Min == Max.
func (r Rect[T]) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies in the half-open rectangle r.
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Expand returns the smallest rectangle containing r and the point p,
// treating p as a corner (not as a pixel).
func (r Rect[T]) Expand(p Vec2[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Min(p), Max: r.Max.Max(p)}
}

// Union returns the smallest rectangle containing r and o.
// Empty rectangles are ignored.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return Rect[T]{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Intersect returns the largest rectangle contained in both r and o.
// If they do not overlap, the zero rectangle is returned.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	res := Rect[T]{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
	if res.Empty() {
		return Rect[T]{}
	}
	return res
}

// ToGeom converts r into a geom rectangle.
func ToGeom[T Number](r Rect[T]) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Min.X),
		LLy: float64(r.Min.Y),
		URx: float64(r.Max.X),
		URy: float64(r.Max.Y),
	}
}
