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

package tile

import "seehuhn.de/go/ledgeom/point"

// WrapEntry is one cell of a WrapTile: an absolute position inside the
// wrap space and its coverage.
type WrapEntry struct {
	Pos   point.Vec2i
	Alpha uint8
}

// WrapTile is a Tile2x2 whose cells have been reduced modulo the width
// and height of a cylindrical surface.  Entries[x][y] corresponds to
// Tiles[x][y] of the source tile.
//
// Every position satisfies 0 <= X < width and 0 <= Y < height for the
// space the tile was built against.
type WrapTile struct {
	Entries [2][2]WrapEntry
}

// Wrap reduces the coordinates of t modulo width and height.
// Non-positive sizes collapse the corresponding axis onto 0.
func Wrap(t Tile2x2, width, height int) WrapTile {
	var w WrapTile
	for x := range 2 {
		for y := range 2 {
			w.Entries[x][y] = WrapEntry{
				Pos: point.Vec2i{
					X: wrapInt(t.Origin.X+x, width),
					Y: wrapInt(t.Origin.Y+y, height),
				},
				Alpha: t.Tiles[x][y],
			}
		}
	}
	return w
}

// WrapX reduces only the x coordinates of t modulo width.  Row
// coordinates are copied unchanged and may lie outside any surface.
func WrapX(t Tile2x2, width int) WrapTile {
	var w WrapTile
	for x := range 2 {
		for y := range 2 {
			w.Entries[x][y] = WrapEntry{
				Pos: point.Vec2i{
					X: wrapInt(t.Origin.X+x, width),
					Y: t.Origin.Y + y,
				},
				Alpha: t.Tiles[x][y],
			}
		}
	}
	return w
}

// At returns the entry for offset (x, y) of the source tile.
func (w WrapTile) At(x, y int) WrapEntry {
	return w.Entries[x][y]
}

// ForEach calls fn for every entry with non-zero coverage.  Two entries
// can refer to the same position when the wrap space is narrower than
// two cells.
func (w WrapTile) ForEach(fn func(x, y int, alpha uint8)) {
	for x := range 2 {
		for y := range 2 {
			e := w.Entries[x][y]
			if e.Alpha > 0 {
				fn(e.Pos.X, e.Pos.Y, e.Alpha)
			}
		}
	}
}

// Total returns the sum of all four coverage values.
func (w WrapTile) Total() int {
	var s int
	for x := range 2 {
		for y := range 2 {
			s += int(w.Entries[x][y].Alpha)
		}
	}
	return s
}

func wrapInt(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
