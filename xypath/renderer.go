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
	"math"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/ledgeom/internal/logging"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/raster"
	"seehuhn.de/go/ledgeom/tile"
)

// AlphaCurve returns the brightness, from 0 to 255, of the sample at the
// given curve parameter.
type AlphaCurve func(alpha float64) uint8

// Renderer samples a Generator and splats the samples onto a pixel grid
// of a given size.  The unit square is mapped so that (0, 0) lands on
// the centre of pixel (0, 0) and (1, 1) on the centre of pixel
// (width-1, height-1).
//
// A Renderer can cache the transformed curve in a lookup table.  The
// table is built only by BuildLUT; every parameter change discards it,
// and it is never rebuilt implicitly.
type Renderer struct {
	gen    Generator
	tf     Transform
	width  int
	height int

	lut []point.Vec2f
}

// NewRenderer returns a renderer for g with the identity transform.
func NewRenderer(g Generator, width, height int) *Renderer {
	return &Renderer{
		gen:    g,
		tf:     DefaultTransform(),
		width:  width,
		height: height,
	}
}

// Generator returns the curve being rendered.
func (r *Renderer) Generator() Generator { return r.gen }

// SetGenerator replaces the curve and discards the lookup table.
func (r *Renderer) SetGenerator(g Generator) {
	r.gen = g
	r.ClearLUT()
}

// Transform returns the current transform.
func (r *Renderer) Transform() Transform { return r.tf }

// SetTransform replaces the transform and discards the lookup table.
func (r *Renderer) SetTransform(tr Transform) {
	r.tf = tr
	r.ClearLUT()
}

// SetScale changes the scale factor of the transform.
func (r *Renderer) SetScale(s float64) {
	r.tf.Scale = s
	r.ClearLUT()
}

// SetOffset changes the translation of the transform.
func (r *Renderer) SetOffset(x, y float64) {
	r.tf.XOffset, r.tf.YOffset = x, y
	r.ClearLUT()
}

// SetRotation changes the rotation angle of the transform, in radians.
func (r *Renderer) SetRotation(rad float64) {
	r.tf.Rotation = rad
	r.ClearLUT()
}

// DrawBounds returns the size of the pixel grid.
func (r *Renderer) DrawBounds() (width, height int) {
	return r.width, r.height
}

// SetDrawBounds changes the size of the pixel grid and discards the
// lookup table.
func (r *Renderer) SetDrawBounds(width, height int) {
	r.width, r.height = width, height
	r.ClearLUT()
}

// BuildLUT samples the transformed curve at steps evenly spaced values
// of alpha in [0, 1].  Subsequent calls to At interpolate in the table.
// A step count below 2 discards the table.
func (r *Renderer) BuildLUT(steps int) {
	if steps < 2 {
		r.ClearLUT()
		return
	}
	if cap(r.lut) >= steps {
		r.lut = r.lut[:steps]
	} else {
		r.lut = make([]point.Vec2f, steps)
	}
	last := float64(steps - 1)
	for i := range r.lut {
		r.lut[i] = r.eval(float64(i) / last)
	}
	logging.Logger().Debug("xypath: lookup table built",
		"curve", r.gen.Name(), "steps", steps)
}

// ClearLUT discards the lookup table.
func (r *Renderer) ClearLUT() {
	r.lut = nil
}

// HasLUT reports whether a lookup table is present.
func (r *Renderer) HasLUT() bool {
	return r.lut != nil
}

func (r *Renderer) eval(alpha float64) point.Vec2f {
	return r.tf.Apply(r.gen.At(alpha))
}

// At returns the transformed curve point for alpha, in unit square
// coordinates.  With a lookup table, alpha is clamped to [0, 1] and the
// result is linearly interpolated between table entries.
func (r *Renderer) At(alpha float64) point.Vec2f {
	if r.lut == nil {
		return r.eval(alpha)
	}
	f := clamp01(alpha) * float64(len(r.lut)-1)
	i := int(f)
	if i >= len(r.lut)-1 {
		return r.lut[len(r.lut)-1]
	}
	return point.Lerp(r.lut[i], r.lut[i+1], f-float64(i))
}

// ToPixel maps a point of the unit square to pixel coordinates.
func (r *Renderer) ToPixel(p point.Vec2f) point.Vec2f {
	return point.Vec2f{
		X: 0.5 + p.X*float64(r.width-1),
		Y: 0.5 + p.Y*float64(r.height-1),
	}
}

// AtPixel returns the curve point for alpha in pixel coordinates.
func (r *Renderer) AtPixel(alpha float64) point.Vec2f {
	return r.ToPixel(r.At(alpha))
}

// AtSubpixel splats the curve point for alpha into a tile.
func (r *Renderer) AtSubpixel(alpha float64) tile.Tile2x2 {
	return tile.SplatVec(r.AtPixel(alpha))
}

// Rasterize feeds steps samples, evenly spaced in [from, to], into
// sink.  A single step samples from.  If curve is not nil, the coverage
// of each sample is scaled by curve(alpha).
func (r *Renderer) Rasterize(sink raster.Sink, from, to float64, steps int, curve AlphaCurve) {
	if steps <= 0 {
		return
	}
	span := 0.0
	if steps > 1 {
		span = (to - from) / float64(steps-1)
	}
	for i := range steps {
		alpha := from + float64(i)*span
		t := r.AtSubpixel(alpha)
		if curve != nil {
			t = t.Scale(curve(alpha))
		}
		sink.Rasterize(t)
	}
}

// Outline returns the closed polygon through steps samples of the curve,
// in pixel coordinates.  Samples which are not finite are left out.
func (r *Renderer) Outline(steps int) *path.Data {
	p := &path.Data{}
	if steps < 2 {
		return p
	}
	first := true
	for i := range steps {
		q := r.AtPixel(float64(i) / float64(steps-1))
		if math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsInf(q.X, 0) || math.IsInf(q.Y, 0) {
			continue
		}
		v := point.ToVec(q)
		if first {
			p = p.MoveTo(v)
			first = false
		} else {
			p = p.LineTo(v)
		}
	}
	if !first {
		p = p.Close()
	}
	return p
}
