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

// Package xymap maps 2D cell coordinates onto linear LED indices.
//
// The wiring of a physical LED panel (row order, serpentine runs, gaps)
// is described by a Map.  Rasters only ever ask whether a cell has an
// LED and, if so, which index in the output buffer it has.
package xymap

// Map is the interface consumed by the compositors.
type Map interface {
	// Has reports whether an LED is present at cell (x, y).
	Has(x, y int) bool

	// Index returns the linear LED index of cell (x, y).
	// The result is only meaningful if Has(x, y) is true.
	Index(x, y int) int
}

// Rectangular is a row-major map: index = y*Width + x.
type Rectangular struct {
	W, H int
}

// NewRectangular returns a row-major map of the given size.
func NewRectangular(width, height int) Rectangular {
	return Rectangular{W: max(width, 0), H: max(height, 0)}
}

func (m Rectangular) Width() int  { return m.W }
func (m Rectangular) Height() int { return m.H }
func (m Rectangular) Len() int    { return m.W * m.H }

// Has implements the Map interface.
func (m Rectangular) Has(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Index implements the Map interface.
func (m Rectangular) Index(x, y int) int {
	return y*m.W + x
}

// Serpentine is a map where every odd row runs right to left, the
// usual wiring of LED matrices built from a single strip.
type Serpentine struct {
	W, H int
}

// NewSerpentine returns a serpentine map of the given size.
func NewSerpentine(width, height int) Serpentine {
	return Serpentine{W: max(width, 0), H: max(height, 0)}
}

func (m Serpentine) Width() int  { return m.W }
func (m Serpentine) Height() int { return m.H }
func (m Serpentine) Len() int    { return m.W * m.H }

// Has implements the Map interface.
func (m Serpentine) Has(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// Index implements the Map interface.
func (m Serpentine) Index(x, y int) int {
	if y%2 == 1 {
		x = m.W - 1 - x
	}
	return y*m.W + x
}

// Func adapts an index function to the Map interface.  The function is
// called only for cells inside the W×H rectangle; a negative result
// means that there is no LED at this cell.
type Func struct {
	W, H int
	Fn   func(x, y int) int
}

// Has implements the Map interface.
func (m Func) Has(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.Fn(x, y) >= 0
}

// Index implements the Map interface.
func (m Func) Index(x, y int) int {
	return m.Fn(x, y)
}
