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

package raster

import (
	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

// SparseU8 is a coverage raster which only stores cells that have been
// written to.
type SparseU8 struct {
	s sparse[uint8]
}

// NewSparseU8 returns an empty raster.  opt may be nil.
func NewSparseU8(opt *SparseOptions) *SparseU8 {
	r := &SparseU8{}
	r.s.init(opt)
	return r
}

// Rasterize implements the Sink interface.  Cells which cannot be stored
// are dropped; use Err to find out whether the cell limit was hit.
func (r *SparseU8) Rasterize(t tile.Tile2x2) {
	for dx := range 2 {
		for dy := range 2 {
			v := t.Tiles[dx][dy]
			if v == 0 {
				continue
			}
			slot, status := r.s.slot(point.Vec2i{X: t.Origin.X + dx, Y: t.Origin.Y + dy})
			switch {
			case status == slotFull:
				r.s.fail()
			case status == slotOK && v > r.s.vals[slot]:
				r.s.vals[slot] = v
			}
		}
	}
}

// RasterizeTiles rasterises all tiles in order.
func (r *SparseU8) RasterizeTiles(tiles []tile.Tile2x2) {
	for _, t := range tiles {
		r.Rasterize(t)
	}
}

// Write sets the coverage of cell (x, y), replacing the previous value.
// Writes outside the configured bounds are dropped silently.  If the
// raster is full, ErrAllocationFailed is returned.
func (r *SparseU8) Write(x, y int, v uint8) error {
	slot, status := r.s.slot(point.Vec2i{X: x, Y: y})
	switch status {
	case slotDropped:
		return nil
	case slotFull:
		return ErrAllocationFailed
	}
	r.s.vals[slot] = v
	return nil
}

// At returns the coverage of cell (x, y), or zero if the cell has not
// been written.
func (r *SparseU8) At(x, y int) uint8 {
	slot, ok := r.s.lookup(point.Vec2i{X: x, Y: y})
	if !ok {
		return 0
	}
	return r.s.vals[slot]
}

// Len returns the number of stored cells.
func (r *SparseU8) Len() int {
	return r.s.len()
}

// Err returns ErrAllocationFailed if a cell was dropped by Rasterize
// because the cell limit was reached since the last Clear.
func (r *SparseU8) Err() error {
	return r.s.err
}

// Clear removes all cells.  Bounds and the cell limit are kept.
func (r *SparseU8) Clear() {
	r.s.clear()
}

// SetBounds fixes the half-open rectangle of storable cells.  Cells
// already stored outside b are kept.
func (r *SparseU8) SetBounds(b point.Rect[int]) {
	r.s.setBounds(b)
}

// ClearBounds removes the fixed bounds.
func (r *SparseU8) ClearBounds() {
	r.s.bounds = point.Rect[int]{}
	r.s.hasBounds = false
}

// Bounds returns the bounding box of the raster with an inclusive
// maximum corner: the fixed bounds if set, otherwise the box around all
// stored cells.  Without fixed bounds, this scans all cells and should
// not be called once per frame on large rasters.
func (r *SparseU8) Bounds() point.Rect[int] {
	return r.s.cornerBounds()
}

// BoundsPixels is like Bounds, but returns a half-open rectangle.
func (r *SparseU8) BoundsPixels() point.Rect[int] {
	return r.s.pixelBounds()
}

// ForEach calls fn for every stored cell, in the order the cells were
// first written.
func (r *SparseU8) ForEach(fn func(x, y int, v uint8)) {
	for i, k := range r.s.keys {
		fn(k.X, k.Y, r.s.vals[i])
	}
}

// CacheStats returns the number of write-cache hits and misses since the
// raster was created.
func (r *SparseU8) CacheStats() (hits, misses int) {
	return r.s.hits, r.s.misses
}

// Draw composites color onto out, see Dense.Draw.
func (r *SparseU8) Draw(color pixel.RGB, m xymap.Map, out []pixel.RGB) {
	for i, k := range r.s.keys {
		composite(color, r.s.vals[i], k.X, k.Y, m, out)
	}
}

// Dense copies the stored cells inside the given rectangle into a new
// dense raster.
func (r *SparseU8) Dense(b point.Rect[int]) *Dense {
	d := NewDense(b.Min, b.Width(), b.Height())
	for i, k := range r.s.keys {
		if b.Contains(k) {
			*d.Cell(k.X, k.Y) = r.s.vals[i]
		}
	}
	return d
}
