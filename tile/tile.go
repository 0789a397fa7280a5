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

// Package tile implements 2×2 coverage tiles.  A Tile2x2 is what a single
// continuous sample point turns into after bilinear splatting; a WrapTile
// is the same tile with its coordinates reduced onto a cylinder.
package tile

import (
	"math"

	"seehuhn.de/go/ledgeom/point"
)

// Tile2x2 holds four coverage values anchored at an integer origin.
// Tiles[x][y] is the coverage of the cell Origin+(x, y): [0][0] is the
// lower-left cell, [1][0] lower-right, [0][1] upper-left and [1][1]
// upper-right.  Coverage runs from 0 (untouched) to 255 (fully covered).
//
// The origin is signed: samples close to the left or lower edge of a
// raster produce tiles which start one cell outside of it.
type Tile2x2 struct {
	Origin point.Vec2i
	Tiles  [2][2]uint8
}

// At returns the coverage of the cell at offset (x, y) from the origin,
// for x, y in {0, 1}.
func (t Tile2x2) At(x, y int) uint8 {
	return t.Tiles[x][y]
}

// Set stores the coverage of the cell at offset (x, y).
func (t *Tile2x2) Set(x, y int, v uint8) {
	t.Tiles[x][y] = v
}

// Scale returns t with all four values multiplied by s/256.
// The product of two bytes fits into 16 bits, so no saturation is needed.
func (t Tile2x2) Scale(s uint8) Tile2x2 {
	for x := range 2 {
		for y := range 2 {
			t.Tiles[x][y] = uint8((uint16(t.Tiles[x][y]) * uint16(s)) >> 8)
		}
	}
	return t
}

// MaxValue returns the largest of the four coverage values.
func (t Tile2x2) MaxValue() uint8 {
	return max(t.Tiles[0][0], t.Tiles[1][0], t.Tiles[0][1], t.Tiles[1][1])
}

// Bounds returns the half-open rectangle of the four cells.
func (t Tile2x2) Bounds() point.Rect[int] {
	return point.Rect[int]{
		Min: t.Origin,
		Max: t.Origin.Add(point.Vec2i{X: 2, Y: 2}),
	}
}

// ForEach calls fn with the absolute position and coverage of every
// cell with non-zero coverage.
func (t Tile2x2) ForEach(fn func(x, y int, v uint8)) {
	for x := range 2 {
		for y := range 2 {
			if v := t.Tiles[x][y]; v > 0 {
				fn(t.Origin.X+x, t.Origin.Y+y, v)
			}
		}
	}
}

// Splat converts the continuous point (x, y), given in pixel units where
// pixel (i, j) covers [i, i+1)×[j, j+1), into a bilinearly weighted
// 2×2 tile.  A point at a pixel centre puts all its weight into that pixel.
func Splat(x, y float64) Tile2x2 {
	x -= 0.5
	y -= 0.5

	cx := math.Floor(x)
	cy := math.Floor(y)
	fx := x - cx
	fy := y - cy

	wll := (1 - fx) * (1 - fy)
	wlr := fx * (1 - fy)
	wul := (1 - fx) * fy
	wur := fx * fy

	var t Tile2x2
	t.Origin = point.Vec2i{X: int(cx), Y: int(cy)}
	t.Tiles[0][0] = weightToByte(wll)
	t.Tiles[1][0] = weightToByte(wlr)
	t.Tiles[0][1] = weightToByte(wul)
	t.Tiles[1][1] = weightToByte(wur)
	return t
}

// SplatVec is Splat for a vector argument.
func SplatVec(p point.Vec2f) Tile2x2 {
	return Splat(p.X, p.Y)
}

func weightToByte(w float64) uint8 {
	v := math.Round(w * 255)
	if v >= 255 {
		return 255
	}
	if !(v > 0) { // also catches NaN
		return 0
	}
	return uint8(v)
}

// MaxTiles merges two tiles with the same origin by taking the
// cellwise maximum.  If the origins differ, a is returned unchanged.
func MaxTiles(a, b Tile2x2) Tile2x2 {
	if a.Origin != b.Origin {
		return a
	}
	for x := range 2 {
		for y := range 2 {
			a.Tiles[x][y] = max(a.Tiles[x][y], b.Tiles[x][y])
		}
	}
	return a
}
