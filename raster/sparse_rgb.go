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

// SparseRGB is a sparse raster of colours.  Each tile is drawn in a
// colour, scaled by the tile coverage, and combined channelwise with the
// maximum.
type SparseRGB struct {
	s sparse[pixel.RGB]
}

// NewSparseRGB returns an empty raster.  opt may be nil.
func NewSparseRGB(opt *SparseOptions) *SparseRGB {
	r := &SparseRGB{}
	r.s.init(opt)
	return r
}

// Rasterize draws t in the given colour.
func (r *SparseRGB) Rasterize(t tile.Tile2x2, color pixel.RGB) {
	for dx := range 2 {
		for dy := range 2 {
			v := t.Tiles[dx][dy]
			if v == 0 {
				continue
			}
			slot, status := r.s.slot(point.Vec2i{X: t.Origin.X + dx, Y: t.Origin.Y + dy})
			if status == slotFull {
				r.s.fail()
			}
			if status != slotOK {
				continue
			}
			c := color
			if v < 255 {
				c = c.Scale(v)
			}
			r.s.vals[slot] = r.s.vals[slot].Max(c)
		}
	}
}

// Brush returns a Sink which rasterises tiles into r using color.
func (r *SparseRGB) Brush(color pixel.RGB) Sink {
	return brush{r: r, color: color}
}

type brush struct {
	r     *SparseRGB
	color pixel.RGB
}

func (b brush) Rasterize(t tile.Tile2x2) {
	b.r.Rasterize(t, b.color)
}

// Write sets the colour of cell (x, y).  See SparseU8.Write.
func (r *SparseRGB) Write(x, y int, c pixel.RGB) error {
	slot, status := r.s.slot(point.Vec2i{X: x, Y: y})
	switch status {
	case slotDropped:
		return nil
	case slotFull:
		return ErrAllocationFailed
	}
	r.s.vals[slot] = c
	return nil
}

// At returns the colour of cell (x, y), or black.
func (r *SparseRGB) At(x, y int) pixel.RGB {
	slot, ok := r.s.lookup(point.Vec2i{X: x, Y: y})
	if !ok {
		return pixel.Black
	}
	return r.s.vals[slot]
}

func (r *SparseRGB) Len() int   { return r.s.len() }
func (r *SparseRGB) Err() error { return r.s.err }
func (r *SparseRGB) Clear()     { r.s.clear() }

// SetBounds fixes the half-open rectangle of storable cells.
func (r *SparseRGB) SetBounds(b point.Rect[int]) {
	r.s.setBounds(b)
}

// Bounds returns the bounding box with an inclusive maximum corner.
func (r *SparseRGB) Bounds() point.Rect[int] {
	return r.s.cornerBounds()
}

// BoundsPixels returns the half-open bounding box.
func (r *SparseRGB) BoundsPixels() point.Rect[int] {
	return r.s.pixelBounds()
}

// Draw blends every stored colour into out, using the brightest
// channel of the stored colour as its opacity.
func (r *SparseRGB) Draw(m xymap.Map, out []pixel.RGB) {
	for i, k := range r.s.keys {
		c := r.s.vals[i]
		if c.IsBlack() || !m.Has(k.X, k.Y) {
			continue
		}
		idx := m.Index(k.X, k.Y)
		if idx < 0 || idx >= len(out) {
			continue
		}
		out[idx] = pixel.BlendAlphaMaxChannel(c, out[idx])
	}
}

// DrawGrid blends every stored colour into g.
func (r *SparseRGB) DrawGrid(g *pixel.Grid) {
	for i, k := range r.s.keys {
		c := r.s.vals[i]
		if c.IsBlack() || !g.In(k.X, k.Y) {
			continue
		}
		j := k.Y*g.Width + k.X
		g.Pix[j] = pixel.BlendAlphaMaxChannel(c, g.Pix[j])
	}
}
