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

package corkscrew

import (
	"math"
	"slices"

	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

// Corkscrew projects LED positions onto the unrolled cylinder surface.
//
// The state is computed once, in New.  Wrapped tiles for whole-number
// LED positions are cached when caching is enabled (the default);
// the cache never changes the returned values.
type Corkscrew struct {
	in Input
	st State

	caching bool
	tiles   []tile.WrapTile
	valid   []bool

	surface *pixel.Grid
}

// New computes the layout for in.
func New(in Input) *Corkscrew {
	return &Corkscrew{
		in:      in,
		st:      GenerateState(in),
		caching: true,
	}
}

// Input returns the configuration the corkscrew was built from.
func (c *Corkscrew) Input() Input { return c.in }

// State returns a copy of the derived layout.
func (c *Corkscrew) State() State {
	st := c.st
	st.Mapping = slices.Clone(st.Mapping)
	return st
}

// Width returns the number of surface columns.
func (c *Corkscrew) Width() int { return c.st.Width }

// Height returns the number of surface rows.
func (c *Corkscrew) Height() int { return c.st.Height }

// NumLEDs returns the number of mapping entries.  In grid mode this is
// the number of surface cells.
func (c *Corkscrew) NumLEDs() int { return len(c.st.Mapping) }

// AtExact returns the surface position of LED i.  Indices outside the
// strip are clamped to the first or last LED.
func (c *Corkscrew) AtExact(i int) point.Vec2f {
	i = min(max(i, 0), len(c.st.Mapping)-1)
	return c.st.Mapping[i]
}

// AtNoWrap returns the surface position at the fractional LED index i,
// interpolating between neighbouring LEDs.  When the two LEDs lie on
// opposite sides of the seam, the result may fall outside [0, Width).
// Positions outside the strip are clamped.
func (c *Corkscrew) AtNoWrap(i float64) point.Vec2f {
	n := len(c.st.Mapping)
	if !(i > 0) { // also catches NaN
		return c.st.Mapping[0]
	}
	if i >= float64(n-1) {
		return c.st.Mapping[n-1]
	}
	k := int(i)
	a, b := c.st.Mapping[k], c.st.Mapping[k+1]
	b.X = unwrapNear(b.X, a.X, float64(c.st.Width))
	return point.Lerp(a, b, i-float64(k))
}

// AtWrap splats the LED at the fractional index i onto the surface.
// All four tile positions lie inside the surface grid.
func (c *Corkscrew) AtWrap(i float64) tile.WrapTile {
	if !c.caching || i != math.Trunc(i) || i < 0 || i >= float64(len(c.st.Mapping)) {
		return c.wrapTile(i)
	}

	k := int(i)
	if c.tiles == nil {
		c.tiles = make([]tile.WrapTile, len(c.st.Mapping))
		c.valid = make([]bool, len(c.st.Mapping))
	}
	if !c.valid[k] {
		c.tiles[k] = c.wrapTile(i)
		c.valid[k] = true
	}
	return c.tiles[k]
}

func (c *Corkscrew) wrapTile(i float64) tile.WrapTile {
	p := c.AtNoWrap(i)
	t := tile.Splat(p.X+0.5, p.Y+0.5)
	return tile.Wrap(t, c.st.Width, c.st.Height)
}

// SetCachingEnabled turns the tile cache on or off.  Turning it off
// releases the cached tiles.
func (c *Corkscrew) SetCachingEnabled(on bool) {
	c.caching = on
	if !on {
		c.tiles = nil
		c.valid = nil
	}
}

// CachingEnabled reports whether the tile cache is in use.
func (c *Corkscrew) CachingEnabled() bool { return c.caching }

// At3D returns the physical position of the LED at fractional index i.
// The cylinder axis is the z axis, and z runs from 0 at the first turn
// to TotalHeight at the last one.
func (c *Corkscrew) At3D(i float64) point.Vec3f {
	p := c.AtNoWrap(i)
	turns := c.in.turns()
	radius := c.in.TotalLength / turns / (2 * math.Pi)
	theta := 2 * math.Pi * p.X / float64(c.st.Width)
	s, co := math.Sincos(theta)
	return point.Vec3f{
		X: radius * co,
		Y: radius * s,
		Z: c.in.TotalHeight * p.Y / turns,
	}
}

// Surface returns the surface grid, allocating it on first use.
// Effects draw into this grid; Draw copies it onto the LEDs.
func (c *Corkscrew) Surface() *pixel.Grid {
	if c.surface == nil {
		c.surface = pixel.NewGrid(c.st.Width, c.st.Height)
	}
	return c.surface
}

// Draw resamples the surface grid into out.
func (c *Corkscrew) Draw(out []pixel.RGB) {
	c.ReadFrom(c.Surface(), out)
}

// ReadFrom samples g at the position of every LED and stores the result
// in out.  Each LED averages the four grid cells of its tile, weighted
// by coverage.  Grid cells outside g count as black.  Only the first
// min(len(out), NumLEDs()) entries of out are written.
func (c *Corkscrew) ReadFrom(g *pixel.Grid, out []pixel.RGB) {
	n := min(len(out), len(c.st.Mapping))
	for i := range n {
		t := c.AtWrap(float64(i))
		var r, gr, b, total int
		t.ForEach(func(x, y int, alpha uint8) {
			col := g.At(x, y)
			a := int(alpha)
			r += int(col.R) * a
			gr += int(col.G) * a
			b += int(col.B) * a
			total += a
		})
		if total == 0 {
			out[i] = pixel.Black
			continue
		}
		out[i] = pixel.RGB{
			R: uint8(r / total),
			G: uint8(gr / total),
			B: uint8(b / total),
		}
	}
}

// XYMap returns a map from surface cells to LED indices.  A cell is
// assigned to the first LED which falls into it; cells without an LED
// are reported as missing.
func (c *Corkscrew) XYMap() *xymap.LookupTable {
	m := xymap.NewLookupTable(c.st.Width, c.st.Height)
	w, h := float64(c.st.Width), float64(c.st.Height)
	for i, p := range c.st.Mapping {
		x := int(wrap(math.Floor(p.X), w))
		y := int(wrap(math.Floor(p.Y), h))
		if !m.Has(x, y) {
			m.Set(x, y, i)
		}
	}
	return m
}
