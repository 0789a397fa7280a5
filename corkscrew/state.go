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

// Package corkscrew maps LEDs on a helically wound strip to a 2D
// surface.
//
// Unrolling the cylinder gives a grid whose columns run around the
// circumference and whose rows are the turns of the helix.  LED i sits
// at column i mod Width and, rising continuously, at row i/Width.
// Effects can be drawn onto the surface grid and read back into the
// LED buffer, or the surface cells can be mapped to LED indices for use
// with the raster compositor.
package corkscrew

import (
	"math"

	"seehuhn.de/go/ledgeom/internal/logging"
	"seehuhn.de/go/ledgeom/point"
)

// Input describes the physical layout of a corkscrew.
type Input struct {
	// TotalLength is the length of the LED strip, in cm.
	TotalLength float64

	// TotalHeight is the height of the wound cylinder, in cm.
	TotalHeight float64

	// TotalTurns is the number of times the strip goes around the
	// cylinder.  Values which are not positive are treated as 1.
	TotalTurns float64

	// OffsetCircumference shifts every turn around the circumference
	// by this many columns relative to the previous one, to account for
	// gaps between strip segments.
	OffsetCircumference float64

	// NumLEDs is the number of LEDs on the strip.  If it is not
	// positive, the surface is sampled cell by cell instead (grid mode)
	// and one LED per cm of TotalLength is assumed.
	NumLEDs int

	// Invert reverses the direction of the strip.
	Invert bool
}

// DefaultInput returns the layout of a 144 LED strip wound 19 times
// around a one metre cylinder.
func DefaultInput() Input {
	return Input{
		TotalLength: 100,
		TotalHeight: 100,
		TotalTurns:  19,
		NumLEDs:     144,
	}
}

// State is the surface layout derived from an Input.
type State struct {
	Width  int
	Height int

	// Mapping gives the surface position of every LED, in index order.
	// In grid mode there is one entry per surface cell, in row-major
	// order.
	Mapping []point.Vec2f
}

// GridMode reports whether the state was generated without a LED count.
func (in Input) GridMode() bool {
	return in.NumLEDs <= 0
}

func (in Input) ledCount() int {
	if !in.GridMode() {
		return in.NumLEDs
	}
	n := math.Round(in.TotalLength)
	if !(n >= 1) {
		return 1
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func (in Input) turns() float64 {
	t := in.TotalTurns
	if !(t > 0) || math.IsInf(t, 0) {
		return 1
	}
	return t
}

// Dimensions returns the size of the surface grid for n LEDs wound the
// given number of turns: the width is the number of LEDs per whole turn
// (turns rounded to the nearest integer, at least 1), rounded up, and the height is the number of rows needed to hold all
// LEDs at that width.  Both are at least 1.
func Dimensions(n int, turns float64) (width, height int) {
	if !(turns > 0) || math.IsInf(turns, 0) {
		turns = 1
	}
	turns = max(math.Round(turns), 1)
	n = max(n, 1)
	width = max(int(math.Ceil(float64(n)/turns)), 1)
	height = (n + width - 1) / width
	return width, height
}

// GenerateState computes the surface layout for in.
func GenerateState(in Input) State {
	n := in.ledCount()
	w, h := Dimensions(n, in.turns())
	st := State{Width: w, Height: h}

	if in.GridMode() {
		st.Mapping = gridMapping(w, h, in.OffsetCircumference)
	} else {
		st.Mapping = make([]point.Vec2f, n)
		for i := range n {
			k := i
			if in.Invert {
				k = n - 1 - i
			}
			st.Mapping[i] = ledPosition(k, w, in.OffsetCircumference)
		}
	}

	logging.Logger().Debug("corkscrew: state generated",
		"width", w, "height", h, "entries", len(st.Mapping), "grid", in.GridMode())
	return st
}

// ledPosition returns the surface position of the LED with index k.
func ledPosition(k, width int, offset float64) point.Vec2f {
	w := float64(width)
	y := float64(k) / w
	x := float64(k % width)
	if offset != 0 {
		x = wrap(x+offset*math.Floor(y), w)
	}
	return point.Vec2f{X: x, Y: y}
}

// gridTaps are the sub-cell offsets averaged in grid mode.
var gridTaps = [4]point.Vec2f{
	{X: 0.25, Y: 0.25},
	{X: 0.75, Y: 0.25},
	{X: 0.25, Y: 0.75},
	{X: 0.75, Y: 0.75},
}

// gridMapping computes one entry per surface cell by averaging four taps
// inside the cell.  Row h is shifted around the circumference by
// offset·h, reduced modulo the width, so that offsets of a full turn or
// more wrap around.
func gridMapping(width, height int, offset float64) []point.Vec2f {
	w := float64(width)
	res := make([]point.Vec2f, 0, width*height)
	for row := range height {
		shift := wrap(offset*float64(row), w)
		for col := range width {
			var first, sum point.Vec2f
			for k, d := range gridTaps {
				p := point.Vec2f{
					X: wrap(float64(col)+d.X+shift, w),
					Y: float64(row) + d.Y,
				}
				if k == 0 {
					first = p
				} else {
					p.X = unwrapNear(p.X, first.X, w)
				}
				sum = sum.Add(p)
			}
			avg := sum.Scale(0.25)
			avg.X = wrap(avg.X, w)
			res = append(res, avg)
		}
	}
	return res
}

// wrap reduces x to [0, w).
func wrap(x, w float64) float64 {
	x = math.Mod(x, w)
	if x < 0 {
		x += w
	}
	if x >= w { // x was a tiny negative number
		x = 0
	}
	return x
}

// unwrapNear shifts x by a multiple of w so that it lies within w/2 of
// ref.
func unwrapNear(x, ref, w float64) float64 {
	switch d := x - ref; {
	case d > w/2:
		return x - w
	case d < -w/2:
		return x + w
	default:
		return x
	}
}
