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

// Package scanfill computes anti-aliased coverage of filled paths.
//
// Coverage is the exact area of the path inside each pixel, accumulated
// per scanline from signed cover and area contributions of the path
// edges.  Pixel (x, y) is the square [x, x+1)×[y, y+1) in device space.
package scanfill

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how winding numbers map to coverage.
type Rule int

const (
	// NonZero fills every point with a nonzero winding number.
	NonZero Rule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

// EmitFunc receives the coverage of one scanline.  Coverage[i] belongs
// to pixel (xMin+i, y) and lies in [0, 1].  The slice is only valid
// for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Filler converts closed paths to per-pixel coverage.  A Filler can be
// reused for many paths; its buffers grow as needed and are kept
// between calls.
type Filler struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device region receiving coverage.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a
	// curve and the polygon replacing it.
	Flatness float64

	// bounding boxes with at least this many pixels are processed one
	// scanline at a time
	rowLimit int

	segs   []segment
	active []int
	cover  []float32
	area   []float32
	hit    []bool
	ys     []float64

	box     rect.Rect
	haveBox bool
}

// segment is a non-horizontal line segment in device space.
type segment struct {
	x0, y0 float64
	x1, y1 float64
	slope  float64 // dx/dy
}

func (s *segment) top() float64    { return min(s.y0, s.y1) }
func (s *segment) bottom() float64 { return max(s.y0, s.y1) }
func (s *segment) xAt(y float64) float64 {
	return s.x0 + s.slope*(y-s.y0)
}

const (
	defaultFlatness = 0.25
	defaultRowLimit = 1 << 16

	// segments with smaller vertical extent carry no coverage
	minHeight = 1e-10
)

// New returns a Filler with identity CTM for the given clip rectangle.
func New(clip rect.Rect) *Filler {
	return &Filler{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		rowLimit: defaultRowLimit,
	}
}

// Reset restores the defaults of New while keeping allocated buffers.
func (f *Filler) Reset(clip rect.Rect) {
	f.CTM = matrix.Identity
	f.Clip = clip
	f.Flatness = defaultFlatness
	if f.rowLimit == 0 {
		f.rowLimit = defaultRowLimit
	}
	f.segs = f.segs[:0]
	f.active = f.active[:0]
}

// Fill computes the coverage of p under the given rule and reports it
// row by row, in increasing y.  Rows without coverage are skipped.
// Open subpaths are closed implicitly.
func (f *Filler) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	f.collect(p)
	f.run(rule, emit)
}

// Polygon fills the closed polygon with the given vertices.
func (f *Filler) Polygon(pts []vec.Vec2, rule Rule, emit EmitFunc) {
	f.segs = f.segs[:0]
	f.haveBox = false
	for i := range pts {
		f.addLine(pts[i], pts[(i+1)%len(pts)])
	}
	f.run(rule, emit)
}

func (f *Filler) run(rule Rule, emit EmitFunc) {
	x0, x1, y0, y1, ok := f.pixelBox()
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < f.rowLimit {
		f.fillBuffered(x0, x1, y0, y1, rule, emit)
	} else {
		f.fillRows(x0, x1, y0, y1, rule, emit)
	}
}

// collect flattens p into device space segments.
func (f *Filler) collect(p *path.Data) {
	f.segs = f.segs[:0]
	f.haveBox = false

	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && cur != start {
				f.addLine(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			k++
		case path.CmdLineTo:
			f.addLine(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			f.quad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			f.cube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				f.addLine(cur, start)
			}
			cur = start
			open = false
		}
	}
	if open && cur != start {
		f.addLine(cur, start)
	}
}

// linear applies the linear part of the CTM.
func (f *Filler) linear(v vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

// quad flattens a quadratic Bézier curve.  The number of pieces is
// chosen so that the chord error in device space stays below Flatness.
func (f *Filler) quad(p0, p1, p2 vec.Vec2) {
	dev := f.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		f.addLine(prev, q)
		prev = q
	}
}

// cube flattens a cubic Bézier curve, using Wang's formula for the
// number of pieces.
func (f *Filler) cube(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := f.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if k := math.Sqrt(3 * m / (4 * f.Flatness)); k > 1 {
			n = int(math.Ceil(k))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		f.addLine(prev, q)
		prev = q
	}
}

// addLine transforms a line to device space and records it.
func (f *Filler) addLine(a, b vec.Vec2) {
	x0, y0 := f.CTM.Apply(a.X, a.Y)
	x1, y1 := f.CTM.Apply(b.X, b.Y)

	dy := y1 - y0
	if math.Abs(dy) < minHeight || math.IsNaN(dy) {
		return
	}
	f.segs = append(f.segs, segment{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		slope: (x1 - x0) / dy,
	})

	r := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if !f.haveBox {
		f.box = r
		f.haveBox = true
		return
	}
	f.box.LLx = min(f.box.LLx, r.LLx)
	f.box.LLy = min(f.box.LLy, r.LLy)
	f.box.URx = max(f.box.URx, r.URx)
	f.box.URy = max(f.box.URy, r.URy)
}

// pixelBox returns the pixel range touched by the segments, clipped.
func (f *Filler) pixelBox() (x0, x1, y0, y1 int, ok bool) {
	if len(f.segs) == 0 {
		return 0, 0, 0, 0, false
	}
	x0 = max(int(math.Floor(f.box.LLx)), int(f.Clip.LLx))
	x1 = min(int(math.Floor(f.box.URx))+1, int(f.Clip.URx))
	y0 = max(int(math.Floor(f.box.LLy)), int(f.Clip.LLy))
	y1 = min(int(math.Floor(f.box.URy))+1, int(f.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return x0, x1, y0, y1, true
}

// Each piece of a segment inside a pixel adds its signed height to the
// pixel's cover and the part of that height lying right of the piece
// to the pixel's area.  Summing cover from the left and adding area
// gives the signed coverage of each pixel.  Pieces left of the clip
// fall into the first pixel with full area.

// deposit records one piece of height h at horizontal position x.
func deposit(cover, area []float32, x0, x1 int, x float64, h float32) {
	pix := int(math.Floor(x))
	switch {
	case pix < x0:
		cover[0] += h
		area[0] += h
	case pix < x1:
		i := pix - x0
		cover[i] += h
		area[i] += h * float32(1-(x-float64(pix)))
	}
}

// scan adds the part of s inside scanline y to cover and area, which
// span the pixels x0, ..., x1-1.
func (f *Filler) scan(s *segment, y int, cover, area []float32, x0, x1 int) {
	top := max(float64(y), s.top())
	bot := min(float64(y+1), s.bottom())
	if bot <= top {
		return
	}
	dir := float32(1)
	if s.y1 < s.y0 {
		dir = -1
	}

	xa, xb := s.xAt(top), s.xAt(bot)
	left, right := min(xa, xb), max(xa, xb)
	pl, pr := int(math.Floor(left)), int(math.Floor(right))

	switch {
	case pr < x0:
		h := dir * float32(bot-top)
		cover[0] += h
		area[0] += h
		return
	case pl >= x1:
		return
	case pl == pr:
		deposit(cover, area, x0, x1, s.xAt((top+bot)/2), dir*float32(bot-top))
		return
	}

	// split the piece where it crosses vertical pixel boundaries
	f.ys = append(f.ys[:0], top, bot)
	for x := pl + 1; x <= pr; x++ {
		yx := s.y0 + (float64(x)-s.x0)/s.slope
		if yx > top && yx < bot {
			f.ys = append(f.ys, yx)
		}
	}
	slices.Sort(f.ys)
	for i := 1; i < len(f.ys); i++ {
		a, b := f.ys[i-1], f.ys[i]
		if b <= a {
			continue
		}
		deposit(cover, area, x0, x1, s.xAt((a+b)/2), dir*float32(b-a))
	}
}

// integrate turns one row of cover and area into coverage, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		switch rule {
		case EvenOdd:
			v -= 2 * float32(int(v/2))
			if v > 1 {
				v = 2 - v
			}
		default:
			v = min(v, 1)
		}
		cover[i] = v
	}
}

// trim strips zero coverage from both ends of a row.
func trim(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

// fillBuffered accumulates all rows at once into a 2D buffer.
func (f *Filler) fillBuffered(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	w, h := x1-x0, y1-y0
	n := w * h
	f.cover = slices.Grow(f.cover[:0], n)[:n]
	f.area = slices.Grow(f.area[:0], n)[:n]
	f.hit = slices.Grow(f.hit[:0], h)[:h]
	clear(f.cover)
	clear(f.area)
	clear(f.hit)

	for i := range f.segs {
		s := &f.segs[i]
		ya := max(int(math.Floor(s.top())), y0)
		yb := min(int(math.Floor(s.bottom()))+1, y1)
		for y := ya; y < yb; y++ {
			row := (y - y0) * w
			f.scan(s, y, f.cover[row:row+w], f.area[row:row+w], x0, x1)
			f.hit[y-y0] = true
		}
	}

	for r := range h {
		if !f.hit[r] {
			continue
		}
		row := f.cover[r*w : (r+1)*w]
		integrate(row, f.area[r*w:(r+1)*w], rule)
		if cov, off := trim(row); cov != nil {
			emit(y0+r, x0+off, cov)
		}
	}
}

// fillRows processes one scanline at a time, keeping a list of the
// segments which intersect the current scanline.
func (f *Filler) fillRows(x0, x1, y0, y1 int, rule Rule, emit EmitFunc) {
	w := x1 - x0
	f.cover = slices.Grow(f.cover[:0], w)[:w]
	f.area = slices.Grow(f.area[:0], w)[:w]

	slices.SortFunc(f.segs, func(a, b segment) int {
		return cmp.Compare(a.top(), b.top())
	})

	f.active = f.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		yf := float64(y)
		for next < len(f.segs) && f.segs[next].top() < yf+1 {
			f.active = append(f.active, next)
			next++
		}
		if len(f.active) == 0 {
			continue
		}

		clear(f.cover)
		clear(f.area)
		for i := 0; i < len(f.active); {
			s := &f.segs[f.active[i]]
			if s.bottom() <= yf {
				last := len(f.active) - 1
				f.active[i] = f.active[last]
				f.active = f.active[:last]
				continue
			}
			f.scan(s, y, f.cover, f.area, x0, x1)
			i++
		}

		integrate(f.cover, f.area, rule)
		if cov, off := trim(f.cover); cov != nil {
			emit(y, x0+off, cov)
		}
	}
}
