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

// Package raster accumulates splatted coverage tiles and composites the
// result onto LED frame buffers.
//
// Two storage strategies are provided.  Dense keeps a full W×H byte grid
// and is the right choice when most of the drawing area is touched.
// SparseU8 and SparseRGB only store cells which have been written to,
// which suits thin paths on large or unbounded canvases.
//
// Coverage from overlapping tiles is combined by taking the maximum, never
// by adding, so repeated or overlapping splats cannot over-brighten a cell.
//
// None of the types in this package are safe for concurrent use.
package raster

import (
	"errors"

	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

// ErrAllocationFailed is reported when a sparse raster has reached its
// cell limit and cannot store a new cell.
var ErrAllocationFailed = errors.New("raster: allocation failed")

// Sink receives coverage tiles.  Implementations combine each cell with
// existing coverage using the maximum.
type Sink interface {
	Rasterize(t tile.Tile2x2)
}

// composite blends color, faded to the given coverage, into the output
// pixel which the map assigns to cell (x, y).  Zero coverage, cells
// without an LED, and indices outside out are skipped.
func composite(color pixel.RGB, coverage uint8, x, y int, m xymap.Map, out []pixel.RGB) {
	if coverage == 0 || !m.Has(x, y) {
		return
	}
	idx := m.Index(x, y)
	if idx < 0 || idx >= len(out) {
		return
	}
	c := color
	if coverage < 255 {
		c = c.Scale(coverage)
	}
	out[idx] = pixel.BlendAlphaMaxChannel(c, out[idx])
}
