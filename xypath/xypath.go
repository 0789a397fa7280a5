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

package xypath

import (
	"seehuhn.de/go/ledgeom/internal/scanfill"
	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/raster"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

// XYPath is a curve together with the renderer drawing it.  All
// Renderer methods are available on an XYPath.
type XYPath struct {
	*Renderer

	scratch *raster.Dense
	filler  *scanfill.Filler
}

// New returns a path drawing g onto a width×height grid.
func New(g Generator, width, height int) *XYPath {
	return &XYPath{Renderer: NewRenderer(g, width, height)}
}

// NewPointPath returns a path which stays at (x, y).
func NewPointPath(x, y float64, width, height int) *XYPath {
	return New(Point{X: x, Y: y}, width, height)
}

// NewLinePath returns a path along the line from (x0, y0) to (x1, y1).
func NewLinePath(x0, y0, x1, y1 float64, width, height int) *XYPath {
	return New(Line{X0: x0, Y0: y0, X1: x1, Y1: y1}, width, height)
}

// NewCirclePath returns a circle filling the grid.
func NewCirclePath(width, height int) *XYPath {
	return New(Circle{}, width, height)
}

// NewHeartPath returns a heart filling the grid.
func NewHeartPath(width, height int) *XYPath {
	return New(Heart{}, width, height)
}

// NewSpiralPath returns an Archimedean spiral with the given number of
// turns, filling the grid.
func NewSpiralPath(turns float64, width, height int) *XYPath {
	return New(ArchimedeanSpiral{Turns: turns, Radius: 0.5}, width, height)
}

// NewRosePath returns the rose curve with k = n/d.
func NewRosePath(n, d int, width, height int) *XYPath {
	return New(Rose{N: n, D: d}, width, height)
}

// NewPhyllotaxisPath returns a sunflower pattern with count seeds.
func NewPhyllotaxisPath(count int, width, height int) *XYPath {
	return New(Phyllotaxis{Count: count, Radius: 0.5}, width, height)
}

// NewGielisCurve returns a superformula shape.
func NewGielisCurve(a, b, m, n1, n2, n3 float64, width, height int) *XYPath {
	return New(NewGielis(a, b, m, n1, n2, n3), width, height)
}

// NewCatmullRomPath returns a centripetal Catmull-Rom spline through the
// given points.
func NewCatmullRomPath(width, height int, pts ...point.Vec2f) *XYPath {
	return New(NewCatmullRom(Centripetal, pts...), width, height)
}

// Draw samples the whole curve steps times into an internal raster and
// blends color onto out, using m to locate the LEDs.
func (p *XYPath) Draw(color pixel.RGB, m xymap.Map, out []pixel.RGB, steps int) {
	if p.scratch == nil {
		p.scratch = raster.NewDense(point.Vec2i{}, p.width, p.height)
	} else {
		p.scratch.Reset(point.Vec2i{}, p.width, p.height)
	}
	p.Rasterize(p.scratch, 0, 1, steps, nil)
	p.scratch.Draw(color, m, out)
}

// Fill sends the area enclosed by the curve to sink, using the outline
// with the given number of samples and the nonzero winding rule.  Every
// covered pixel is delivered as a tile with a single non-zero cell.
func (p *XYPath) Fill(sink raster.Sink, steps int) {
	clip := point.ToGeom(point.Rect[int]{Max: point.Vec2i{X: p.width, Y: p.height}})
	if p.filler == nil {
		p.filler = scanfill.New(clip)
	} else {
		p.filler.Reset(clip)
	}

	outline := p.Outline(steps)
	p.filler.Fill(outline, scanfill.NonZero, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			v := uint8(c*255 + 0.5)
			if v == 0 {
				continue
			}
			var t tile.Tile2x2
			t.Origin = point.Vec2i{X: xMin + i, Y: y}
			t.Tiles[0][0] = v
			sink.Rasterize(t)
		}
	})
}
