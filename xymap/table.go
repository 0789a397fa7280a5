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

package xymap

// LookupTable is a map backed by an explicit table.  Cells without an
// LED hold -1.
type LookupTable struct {
	w, h  int
	table []int32
	count int
}

// NewLookupTable returns a table of the given size with no LEDs assigned.
func NewLookupTable(width, height int) *LookupTable {
	width = max(width, 0)
	height = max(height, 0)
	t := &LookupTable{
		w:     width,
		h:     height,
		table: make([]int32, width*height),
	}
	for i := range t.table {
		t.table[i] = -1
	}
	return t
}

// FromMap copies an arbitrary map into a lookup table of the given size.
func FromMap(m Map, width, height int) *LookupTable {
	t := NewLookupTable(width, height)
	for y := range t.h {
		for x := range t.w {
			if m.Has(x, y) {
				t.Set(x, y, m.Index(x, y))
			}
		}
	}
	return t
}

func (t *LookupTable) Width() int  { return t.w }
func (t *LookupTable) Height() int { return t.h }

// Len returns the number of cells which have an LED assigned.
func (t *LookupTable) Len() int { return t.count }

// Set assigns LED index idx to cell (x, y).  A negative index removes
// the assignment.  Cells outside the table are ignored.
func (t *LookupTable) Set(x, y, idx int) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	pos := y*t.w + x
	old := t.table[pos]
	if idx < 0 {
		idx = -1
	}
	t.table[pos] = int32(idx)
	switch {
	case old < 0 && idx >= 0:
		t.count++
	case old >= 0 && idx < 0:
		t.count--
	}
}

// Has implements the Map interface.
func (t *LookupTable) Has(x, y int) bool {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return false
	}
	return t.table[y*t.w+x] >= 0
}

// Index implements the Map interface.  It returns -1 for cells without
// an LED.
func (t *LookupTable) Index(x, y int) int {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return -1
	}
	return int(t.table[y*t.w+x])
}
