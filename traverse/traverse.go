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

// Package traverse enumerates the grid cells crossed by a line segment,
// using the algorithm of Amanatides and Woo.
//
// Cell (i, j) is the unit square [i, i+1)×[j, j+1).  Every engine visits
// the cell containing the start point first and the cell containing the
// end point last, and visits each cell in between exactly once, moving
// to a horizontally or vertically adjacent cell at every step.  When the
// segment passes exactly through a grid corner, the vertical step is
// taken first.
//
// Three engines are provided.  SegmentFloat works in float64 and serves
// as reference.  SegmentQ8_8 and SegmentQ24_8 quantise the end points to
// 1/256 of a cell and then decide the crossing order with exact integer
// arithmetic; for end points on the 1/256 grid all three engines visit
// identical cells.  Segment picks an engine based on the segment length.
package traverse

import (
	"math"

	"seehuhn.de/go/ledgeom/point"
)

// Visitor receives the cells crossed by a segment.
type Visitor interface {
	Visit(x, y int)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(x, y int)

// Visit implements the Visitor interface.
func (f VisitorFunc) Visit(x, y int) { f(x, y) }

// Engine is the signature shared by all traversal functions.
type Engine func(start, end point.Vec2f, v Visitor)

// Thresholds used by Segment to select an engine.
const (
	q8Limit  = 256     // spans below this use the Q8.8 engine
	q24Limit = 1 << 24 // spans below this use the Q24.8 engine

	// Coordinates must stay below these magnitudes for the shifted grid
	// line positions to fit the engine's integer type.
	q8Reach  = 1 << 22
	q24Reach = 1 << 46
)

// Segment visits all cells crossed by the segment from start to end.
// Spans (the larger of |dx| and |dy|) below 256 cells are traversed in
// Q8.8 fixed point, spans below 2^24 in Q24.8, and anything longer in
// floating point.  Segments far from the origin move to a wider engine
// when their coordinates do not fit the narrower one.  Segments with
// non-finite coordinates are ignored.
func Segment(start, end point.Vec2f, v Visitor) {
	span := max(math.Abs(end.X-start.X), math.Abs(end.Y-start.Y))
	reach := max(math.Abs(start.X), math.Abs(start.Y), math.Abs(end.X), math.Abs(end.Y))
	switch {
	case span < q8Limit && reach < q8Reach:
		SegmentQ8_8(start, end, v)
	case span < q24Limit && reach < q24Reach:
		SegmentQ24_8(start, end, v)
	default:
		SegmentFloat(start, end, v)
	}
}

// Collect runs engine on the segment and returns the visited cells
// in order.
func Collect(engine Engine, start, end point.Vec2f) []point.Vec2i {
	var cells []point.Vec2i
	engine(start, end, VisitorFunc(func(x, y int) {
		cells = append(cells, point.Vec2i{X: x, Y: y})
	}))
	return cells
}

// Cells is Collect using the engine chosen by Segment.
func Cells(start, end point.Vec2f) []point.Vec2i {
	return Collect(Segment, start, end)
}

func finite(p point.Vec2f) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func sign[T int | int32 | int64 | float64](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SegmentFloat is the floating point engine.
//
// The crossing parameter of each grid line is computed afresh from the
// start point rather than accumulated, so rounding errors do not build
// up along long segments.
func SegmentFloat(start, end point.Vec2f, v Visitor) {
	if !finite(start) || !finite(end) {
		return
	}

	x, y := int(math.Floor(start.X)), int(math.Floor(start.Y))
	x1, y1 := int(math.Floor(end.X)), int(math.Floor(end.Y))
	dx := end.X - start.X
	dy := end.Y - start.Y
	stepX, stepY := sign(dx), sign(dy)

	v.Visit(x, y)
	for n := absInt(x1-x) + absInt(y1-y); n > 0; n-- {
		switch {
		case x == x1:
			y += stepY
		case y == y1:
			x += stepX
		default:
			// x != x1 implies dx != 0, and likewise for y
			bx := float64(x)
			if stepX > 0 {
				bx++
			}
			by := float64(y)
			if stepY > 0 {
				by++
			}
			tx := (bx - start.X) / dx
			ty := (by - start.Y) / dy
			if tx < ty {
				x += stepX
			} else {
				y += stepY
			}
		}
		v.Visit(x, y)
	}
}

// SegmentQ8_8 is the 16 bit fixed point engine.  End points are
// quantised to Q8.8 (8 fractional bits).  Distances along the segment
// fit into 16 bits for spans below 256 cells, and crossing decisions
// compare 32 bit products.  Absolute coordinates are held in 32 bits,
// so the end points must lie within ±2^22.
//
// For spans of 256 cells or more the products overflow and the result
// is unspecified; use Segment or SegmentQ24_8 instead.
func SegmentQ8_8(start, end point.Vec2f, v Visitor) {
	if !finite(start) || !finite(end) {
		return
	}

	sx, sy := toQ8(start.X), toQ8(start.Y)
	ex, ey := toQ8(end.X), toQ8(end.Y)

	x, y := sx>>8, sy>>8
	x1, y1 := ex>>8, ey>>8
	stepX, stepY := int32(sign(ex-sx)), int32(sign(ey-sy))
	adx := uint32(abs32(ex - sx))
	ady := uint32(abs32(ey - sy))

	v.Visit(int(x), int(y))
	for n := abs32(x1-x) + abs32(y1-y); n > 0; n-- {
		switch {
		case x == x1:
			y += stepY
		case y == y1:
			x += stepX
		default:
			bx := x << 8
			if stepX > 0 {
				bx += 1 << 8
			}
			by := y << 8
			if stepY > 0 {
				by += 1 << 8
			}
			// the next grid lines lie between start and end, so both
			// distances are bounded by adx and ady respectively
			ax := uint32(abs32(bx - sx))
			ay := uint32(abs32(by - sy))
			if ax*ady < ay*adx {
				x += stepX
			} else {
				y += stepY
			}
		}
		v.Visit(int(x), int(y))
	}
}

// SegmentQ24_8 is the 32 bit fixed point engine, for spans up to 2^24
// cells.  End points are quantised to Q24.8 and crossing decisions
// compare 64 bit products.  Absolute coordinates are held in 64 bits
// and must lie within ±2^46.
func SegmentQ24_8(start, end point.Vec2f, v Visitor) {
	if !finite(start) || !finite(end) {
		return
	}

	sx, sy := toQ24(start.X), toQ24(start.Y)
	ex, ey := toQ24(end.X), toQ24(end.Y)

	x, y := sx>>8, sy>>8
	x1, y1 := ex>>8, ey>>8
	stepX, stepY := int64(sign(ex-sx)), int64(sign(ey-sy))
	adx := uint64(abs64(ex - sx))
	ady := uint64(abs64(ey - sy))

	v.Visit(int(x), int(y))
	for n := abs64(x1-x) + abs64(y1-y); n > 0; n-- {
		switch {
		case x == x1:
			y += stepY
		case y == y1:
			x += stepX
		default:
			bx := x << 8
			if stepX > 0 {
				bx += 1 << 8
			}
			by := y << 8
			if stepY > 0 {
				by += 1 << 8
			}
			ax := uint64(abs64(bx - sx))
			ay := uint64(abs64(by - sy))
			if ax*ady < ay*adx {
				x += stepX
			} else {
				y += stepY
			}
		}
		v.Visit(int(x), int(y))
	}
}

func toQ8(v float64) int32 {
	return int32(math.Floor(v * 256))
}

func toQ24(v float64) int64 {
	return int64(math.Floor(v * 256))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
