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
	"image"
	"slices"

	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

// Dense is a fixed-size grid of coverage values.  The grid covers the
// cells Origin.X <= x < Origin.X+Width and Origin.Y <= y < Origin.Y+Height;
// all methods take absolute cell coordinates.
//
// Reads outside the grid return zero and writes outside the grid are
// discarded.
type Dense struct {
	origin point.Vec2i
	width  int
	height int
	buf    []uint8

	// null is handed out by Cell for positions outside the grid.
	null uint8
}

// NewDense allocates an empty grid.
func NewDense(origin point.Vec2i, width, height int) *Dense {
	d := &Dense{}
	d.Reset(origin, width, height)
	return d
}

// Reset changes the position and size of the grid and clears it.
// The backing buffer is only reallocated if it is too small for the
// new size.
func (d *Dense) Reset(origin point.Vec2i, width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height
	d.origin = origin
	d.width = width
	d.height = height
	d.buf = slices.Grow(d.buf[:0], n)[:n]
	clear(d.buf)
}

// Clear sets all coverage values to zero.
func (d *Dense) Clear() {
	clear(d.buf)
}

func (d *Dense) Origin() point.Vec2i { return d.origin }
func (d *Dense) Width() int          { return d.width }
func (d *Dense) Height() int         { return d.height }

// Bounds returns the half-open rectangle of cells covered by the grid.
func (d *Dense) Bounds() point.Rect[int] {
	return point.Rect[int]{
		Min: d.origin,
		Max: d.origin.Add(point.Vec2i{X: d.width, Y: d.height}),
	}
}

func (d *Dense) offset(x, y int) (int, bool) {
	x -= d.origin.X
	y -= d.origin.Y
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, false
	}
	return y*d.width + x, true
}

// At returns the coverage of cell (x, y).
func (d *Dense) At(x, y int) uint8 {
	i, ok := d.offset(x, y)
	if !ok {
		return 0
	}
	return d.buf[i]
}

// Cell returns a pointer to the coverage of cell (x, y).  For cells
// outside the grid, a pointer to a cleared scratch byte is returned;
// writing through it has no effect on the raster.
func (d *Dense) Cell(x, y int) *uint8 {
	i, ok := d.offset(x, y)
	if !ok {
		d.null = 0
		return &d.null
	}
	return &d.buf[i]
}

// Rasterize implements the Sink interface.
func (d *Dense) Rasterize(t tile.Tile2x2) {
	for dx := range 2 {
		for dy := range 2 {
			v := t.Tiles[dx][dy]
			if v == 0 {
				continue
			}
			if i, ok := d.offset(t.Origin.X+dx, t.Origin.Y+dy); ok && v > d.buf[i] {
				d.buf[i] = v
			}
		}
	}
}

// RasterizeTiles rasterises all tiles in order.
func (d *Dense) RasterizeTiles(tiles []tile.Tile2x2) {
	for _, t := range tiles {
		d.Rasterize(t)
	}
}

// Draw composites color onto out.  Every cell with non-zero coverage is
// looked up in m and blended into the corresponding output pixel.
func (d *Dense) Draw(color pixel.RGB, m xymap.Map, out []pixel.RGB) {
	for row := range d.height {
		line := d.buf[row*d.width : (row+1)*d.width]
		y := d.origin.Y + row
		for col, v := range line {
			if v == 0 {
				continue
			}
			composite(color, v, d.origin.X+col, y, m, out)
		}
	}
}

// DrawGrid composites color onto g, using the absolute cell
// coordinates of the raster as grid coordinates.
func (d *Dense) DrawGrid(color pixel.RGB, g *pixel.Grid) {
	for row := range d.height {
		y := d.origin.Y + row
		for col := range d.width {
			v := d.buf[row*d.width+col]
			x := d.origin.X + col
			if v == 0 || !g.In(x, y) {
				continue
			}
			c := color
			if v < 255 {
				c = c.Scale(v)
			}
			i := y*g.Width + x
			g.Pix[i] = pixel.BlendAlphaMaxChannel(c, g.Pix[i])
		}
	}
}

// Image returns a copy of the raster as a grayscale image.  The image
// bounds match the raster bounds.
func (d *Dense) Image() *image.Gray {
	img := image.NewGray(image.Rect(d.origin.X, d.origin.Y, d.origin.X+d.width, d.origin.Y+d.height))
	for row := range d.height {
		copy(img.Pix[row*img.Stride:], d.buf[row*d.width:(row+1)*d.width])
	}
	return img
}
