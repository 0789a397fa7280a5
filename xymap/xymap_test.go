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

import "testing"

func TestRectangular(t *testing.T) {
	m := NewRectangular(4, 3)
	if m.Len() != 12 {
		t.Errorf("Len = %d", m.Len())
	}
	if !m.Has(3, 2) || m.Has(4, 0) || m.Has(0, -1) {
		t.Error("Has gives wrong answers at the border")
	}
	if got := m.Index(1, 2); got != 9 {
		t.Errorf("Index(1, 2) = %d, want 9", got)
	}
}

func TestSerpentine(t *testing.T) {
	m := NewSerpentine(4, 3)
	cases := []struct{ x, y, want int }{
		{0, 0, 0},
		{3, 0, 3},
		{0, 1, 7},
		{3, 1, 4},
		{2, 2, 10},
	}
	for _, c := range cases {
		if got := m.Index(c.x, c.y); got != c.want {
			t.Errorf("Index(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestSerpentineIsPermutation(t *testing.T) {
	m := NewSerpentine(7, 5)
	seen := make([]bool, m.Len())
	for y := range m.Height() {
		for x := range m.Width() {
			idx := m.Index(x, y)
			if seen[idx] {
				t.Fatalf("index %d used twice", idx)
			}
			seen[idx] = true
		}
	}
}

func TestLookupTable(t *testing.T) {
	tab := FromMap(NewSerpentine(3, 2), 3, 2)
	if tab.Len() != 6 {
		t.Errorf("Len = %d", tab.Len())
	}
	if got := tab.Index(0, 1); got != 5 {
		t.Errorf("Index(0, 1) = %d, want 5", got)
	}

	tab.Set(0, 1, -7)
	if tab.Has(0, 1) || tab.Len() != 5 {
		t.Errorf("removal failed: Has=%t Len=%d", tab.Has(0, 1), tab.Len())
	}
	if tab.Index(9, 9) != -1 {
		t.Error("out of range index should be -1")
	}
	tab.Set(9, 9, 3) // ignored
	if tab.Len() != 5 {
		t.Errorf("Len = %d after out of range Set", tab.Len())
	}
}

func TestFunc(t *testing.T) {
	// only the diagonal is populated
	m := Func{W: 3, H: 3, Fn: func(x, y int) int {
		if x != y {
			return -1
		}
		return x
	}}
	if !m.Has(2, 2) || m.Has(1, 2) || m.Has(3, 3) {
		t.Error("unexpected Has result")
	}
	if m.Index(1, 1) != 1 {
		t.Errorf("Index(1, 1) = %d", m.Index(1, 1))
	}
}
