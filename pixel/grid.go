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

package pixel

import "image"

// Grid is a rectangular frame of RGB values in row-major order.
// Reads and writes outside the grid are ignored.
type Grid struct {
	Width, Height int
	Pix           []RGB
}

// NewGrid allocates a black grid of the given size.
// Negative sizes are treated as zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// In reports whether (x, y) is inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the colour at (x, y), or black outside the grid.
func (g *Grid) At(x, y int) RGB {
	if !g.In(x, y) {
		return Black
	}
	return g.Pix[y*g.Width+x]
}

// Set stores c at (x, y).
func (g *Grid) Set(x, y int, c RGB) {
	if !g.In(x, y) {
		return
	}
	g.Pix[y*g.Width+x] = c
}

// Fill sets every pixel to c.
func (g *Grid) Fill(c RGB) {
	for i := range g.Pix {
		g.Pix[i] = c
	}
}

// Clear sets every pixel to black.
func (g *Grid) Clear() {
	clear(g.Pix)
}

// Image copies the grid into an opaque RGBA image.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		row := img.Pix[y*img.Stride:]
		for x := range g.Width {
			c := g.Pix[y*g.Width+x]
			row[4*x] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = 255
		}
	}
	return img
}
