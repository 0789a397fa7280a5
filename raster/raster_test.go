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
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/tile"
	"seehuhn.de/go/ledgeom/xymap"
)

func fullTile(x, y int, v uint8) tile.Tile2x2 {
	return tile.Tile2x2{
		Origin: point.Vec2i{X: x, Y: y},
		Tiles:  [2][2]uint8{{v, v}, {v, v}},
	}
}

func TestDenseRasterize(t *testing.T) {
	d := NewDense(point.Vec2i{X: 10, Y: 20}, 4, 3)
	d.Rasterize(fullTile(10, 20, 100))
	d.Rasterize(fullTile(11, 20, 50))

	cases := []struct {
		x, y int
		want uint8
	}{
		{10, 20, 100},
		{11, 21, 100}, // max(100, 50)
		{12, 20, 50},
		{13, 20, 0},
		{9, 20, 0}, // outside
		{10, 23, 0},
	}
	for _, c := range cases {
		if got := d.At(c.x, c.y); got != c.want {
			t.Errorf("At(%d, %d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestDenseNullCell(t *testing.T) {
	d := NewDense(point.Vec2i{}, 2, 2)
	p := d.Cell(-1, 5)
	*p = 200
	if d.Cell(7, 7) == nil || *d.Cell(7, 7) != 0 {
		t.Error("null cell must read as zero")
	}
	for y := range 2 {
		for x := range 2 {
			if d.At(x, y) != 0 {
				t.Errorf("write through null cell leaked to (%d, %d)", x, y)
			}
		}
	}

	*d.Cell(1, 1) = 9
	if d.At(1, 1) != 9 {
		t.Error("Cell does not alias the buffer")
	}
}

func TestDenseReset(t *testing.T) {
	d := NewDense(point.Vec2i{}, 4, 4)
	d.Rasterize(fullTile(0, 0, 255))
	buf := &d.buf[0]

	d.Reset(point.Vec2i{X: 1, Y: 1}, 4, 4)
	if &d.buf[0] != buf {
		t.Error("same size reset should not reallocate")
	}
	if d.At(1, 1) != 0 {
		t.Error("reset did not clear")
	}

	d.Reset(point.Vec2i{}, 8, 8)
	if d.Width() != 8 || d.Height() != 8 || len(d.buf) != 64 {
		t.Errorf("resize failed: %dx%d, len %d", d.Width(), d.Height(), len(d.buf))
	}
	if b := d.Bounds(); b != point.R(0, 0, 8, 8) {
		t.Errorf("Bounds = %v", b)
	}
}

func TestMaxIdempotence(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 100 {
		tl := tile.Splat(rng.Float64()*16, rng.Float64()*16)

		d1 := NewDense(point.Vec2i{X: -1, Y: -1}, 18, 18)
		d2 := NewDense(point.Vec2i{X: -1, Y: -1}, 18, 18)
		d1.Rasterize(tl)
		d2.Rasterize(tl)
		d2.Rasterize(tl)
		if diff := cmp.Diff(d1.buf, d2.buf); diff != "" {
			t.Fatalf("dense not idempotent (-once +twice):\n%s", diff)
		}

		s := NewSparseU8(nil)
		s.Rasterize(tl)
		n := s.Len()
		before := s.At(tl.Origin.X, tl.Origin.Y)
		s.Rasterize(tl)
		if s.Len() != n || s.At(tl.Origin.X, tl.Origin.Y) != before {
			t.Fatal("sparse not idempotent")
		}
	}
}

func TestSparseDenseEquivalence(t *testing.T) {
	bounds := point.R(0, 0, 32, 24)
	rng := rand.New(rand.NewPCG(7, 8))

	d := NewDense(bounds.Min, bounds.Width(), bounds.Height())
	s := NewSparseU8(&SparseOptions{Bounds: &bounds})
	for range 2000 {
		tl := tile.Splat(rng.Float64()*34-1, rng.Float64()*26-1)
		if rng.IntN(4) == 0 {
			tl = tl.Scale(uint8(rng.IntN(256)))
		}
		d.Rasterize(tl)
		s.Rasterize(tl)
	}

	for y := -2; y < 26; y++ {
		for x := -2; x < 34; x++ {
			if dv, sv := d.At(x, y), s.At(x, y); dv != sv {
				t.Fatalf("cell (%d, %d): dense %d, sparse %d", x, y, dv, sv)
			}
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSparseCache(t *testing.T) {
	s := NewSparseU8(nil)
	tl := fullTile(3, 4, 10)
	s.Rasterize(tl)
	hits, misses := s.CacheStats()
	if hits != 0 || misses != 4 {
		t.Errorf("first pass: %d hits, %d misses", hits, misses)
	}
	s.Rasterize(tl.Scale(255))
	hits, misses = s.CacheStats()
	if hits != 4 || misses != 4 {
		t.Errorf("second pass: %d hits, %d misses", hits, misses)
	}
}

func TestSparseCacheSurvivesGrowth(t *testing.T) {
	s := NewSparseU8(nil)
	want := map[point.Vec2i]uint8{}
	rng := rand.New(rand.NewPCG(9, 10))

	// interleave writes to a small hot set with writes which force the
	// slot arena and the map to grow
	for i := range 5000 {
		var x, y int
		if i%3 == 0 {
			x, y = rng.IntN(3), rng.IntN(3)
		} else {
			x, y = rng.IntN(200), rng.IntN(200)
		}
		v := uint8(rng.IntN(255) + 1)
		if err := s.Write(x, y, v); err != nil {
			t.Fatal(err)
		}
		want[point.Vec2i{X: x, Y: y}] = v
	}

	if s.Len() != len(want) {
		t.Errorf("Len = %d, want %d", s.Len(), len(want))
	}
	for k, v := range want {
		if got := s.At(k.X, k.Y); got != v {
			t.Fatalf("At(%d, %d) = %d, want %d", k.X, k.Y, got, v)
		}
	}
}

func TestSparseAllocationFailed(t *testing.T) {
	s := NewSparseU8(&SparseOptions{MaxCells: 2})
	if err := s.Write(0, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(2, 0, 1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("Write to full raster: got %v", err)
	}
	if err := s.Write(0, 0, 7); err != nil {
		t.Errorf("overwriting an existing cell failed: %v", err)
	}
	if s.Err() != nil {
		t.Error("Write should not set the sticky error")
	}

	s.Rasterize(fullTile(5, 5, 9))
	if !errors.Is(s.Err(), ErrAllocationFailed) {
		t.Errorf("Err() = %v", s.Err())
	}
	if s.Len() != 2 || s.At(0, 0) != 7 {
		t.Errorf("raster changed: len %d, (0,0)=%d", s.Len(), s.At(0, 0))
	}

	s.Clear()
	if s.Err() != nil || s.Len() != 0 {
		t.Error("Clear should reset the raster and the error")
	}
}

func TestSparseBounds(t *testing.T) {
	s := NewSparseU8(nil)
	if b := s.BoundsPixels(); !b.Empty() {
		t.Errorf("empty raster has bounds %v", b)
	}
	s.Rasterize(fullTile(2, 3, 1))
	s.Rasterize(fullTile(-4, 7, 1))
	if b := s.BoundsPixels(); b != point.R(-4, 3, 4, 9) {
		t.Errorf("BoundsPixels = %v", b)
	}
	if b := s.Bounds(); b != point.R(-4, 3, 3, 8) {
		t.Errorf("Bounds = %v", b)
	}

	fixed := point.R(0, 0, 4, 4)
	s.SetBounds(fixed)
	if b := s.BoundsPixels(); b != fixed {
		t.Errorf("fixed BoundsPixels = %v", b)
	}
	n := s.Len()
	s.Rasterize(fullTile(10, 10, 50))
	if s.Len() != n {
		t.Error("writes outside the bounds must be dropped")
	}
	if err := s.Write(-1, 0, 3); err != nil {
		t.Errorf("out of bounds Write: %v", err)
	}

	s.ClearBounds()
	s.Rasterize(fullTile(10, 10, 50))
	if s.At(11, 11) != 50 {
		t.Error("write after ClearBounds dropped")
	}
}

func TestDrawCompositing(t *testing.T) {
	m := xymap.NewRectangular(3, 1)
	d := NewDense(point.Vec2i{}, 4, 1)
	*d.Cell(0, 0) = 255
	*d.Cell(1, 0) = 128
	*d.Cell(3, 0) = 255 // no LED in the map

	out := make([]pixel.RGB, 3)
	out[2] = pixel.Blue
	d.Draw(pixel.Red, m, out)

	if out[0] != pixel.Red {
		t.Errorf("full coverage: got %v", out[0])
	}
	if out[1].R == 0 || out[1].R >= 255 || out[1].G != 0 {
		t.Errorf("partial coverage: got %v", out[1])
	}
	if out[2] != pixel.Blue {
		t.Errorf("untouched pixel changed to %v", out[2])
	}

	// sparse rasters composite identically
	s := NewSparseU8(nil)
	s.Write(0, 0, 255)
	s.Write(1, 0, 128)
	s.Write(3, 0, 255)
	out2 := make([]pixel.RGB, 3)
	out2[2] = pixel.Blue
	s.Draw(pixel.Red, m, out2)
	if diff := cmp.Diff(out, out2); diff != "" {
		t.Errorf("dense and sparse draw differ (-dense +sparse):\n%s", diff)
	}
}

func TestDrawAccentNotAveraged(t *testing.T) {
	m := xymap.NewRectangular(2, 1)
	out := []pixel.RGB{{0, 0, 200}, pixel.White}
	d := NewDense(point.Vec2i{}, 2, 1)
	*d.Cell(0, 0) = 255
	*d.Cell(1, 0) = 64
	d.Draw(pixel.Green, m, out)

	// a saturated accent replaces the background instead of mixing with it
	if out[0] != pixel.Green {
		t.Errorf("accent over blue: got %v", out[0])
	}
	// a faint accent keeps at least its own brightness
	if out[1].G < pixel.Green.Scale(64).G {
		t.Errorf("faint accent over white: got %v", out[1])
	}
}

func TestSparseRGB(t *testing.T) {
	r := NewSparseRGB(nil)
	r.Rasterize(fullTile(0, 0, 255), pixel.Red)
	r.Rasterize(fullTile(1, 0, 255), pixel.Blue)

	if got := r.At(0, 0); got != pixel.Red {
		t.Errorf("At(0, 0) = %v", got)
	}
	if got := r.At(1, 1); got != (pixel.RGB{255, 0, 255}) {
		t.Errorf("overlap = %v, want channelwise max", got)
	}
	if r.Len() != 6 {
		t.Errorf("Len = %d", r.Len())
	}

	var sink Sink = r.Brush(pixel.Green)
	sink.Rasterize(fullTile(5, 5, 255))
	if r.At(5, 5) != pixel.Green {
		t.Error("brush did not draw")
	}

	out := make([]pixel.RGB, 4)
	r.Draw(xymap.NewRectangular(2, 2), out)
	want := []pixel.RGB{pixel.Red, {255, 0, 255}, pixel.Red, {255, 0, 255}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Draw (-want +got):\n%s", diff)
	}

	g := pixel.NewGrid(8, 8)
	r.DrawGrid(g)
	if g.At(6, 6) != pixel.Green {
		t.Errorf("DrawGrid: got %v", g.At(6, 6))
	}
}

func TestDenseImage(t *testing.T) {
	d := NewDense(point.Vec2i{X: 2, Y: 3}, 3, 2)
	*d.Cell(4, 4) = 77
	img := d.Image()
	if img.Bounds().Min.X != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if img.GrayAt(4, 4).Y != 77 {
		t.Errorf("pixel = %d", img.GrayAt(4, 4).Y)
	}
}

func TestSparseToDense(t *testing.T) {
	s := NewSparseU8(nil)
	s.Rasterize(fullTile(1, 1, 40))
	d := s.Dense(point.R(0, 0, 3, 3))
	if d.At(2, 2) != 40 || d.At(0, 0) != 0 {
		t.Errorf("conversion failed")
	}
}

func BenchmarkSparseRasterize(b *testing.B) {
	s := NewSparseU8(nil)
	tiles := make([]tile.Tile2x2, 256)
	for i := range tiles {
		a := float64(i) / 16
		tiles[i] = tile.Splat(32+a, 32+a/2)
	}
	b.ReportAllocs()
	for b.Loop() {
		s.Clear()
		s.RasterizeTiles(tiles)
	}
}
