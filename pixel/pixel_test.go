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

import (
	"image/color"
	"testing"
)

func TestScale8(t *testing.T) {
	cases := []struct {
		v, s, want uint8
	}{
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{128, 255, 128},
		{255, 127, 127},
		{200, 128, 100},
	}
	for _, c := range cases {
		if got := Scale8(c.v, c.s); got != c.want {
			t.Errorf("Scale8(%d, %d) = %d, want %d", c.v, c.s, got, c.want)
		}
	}
}

func TestBlend8Endpoints(t *testing.T) {
	for a := range 256 {
		for _, b := range []uint8{0, 17, 128, 255} {
			if got := Blend8(uint8(a), b, 0); got != uint8(a) {
				t.Fatalf("Blend8(%d, %d, 0) = %d", a, b, got)
			}
			if got := Blend8(uint8(a), b, 255); got != b {
				t.Fatalf("Blend8(%d, %d, 255) = %d", a, b, got)
			}
		}
	}
}

func TestBlendAlphaMaxChannel(t *testing.T) {
	bg := RGB{10, 20, 30}

	// black on top keeps the background
	if got := BlendAlphaMaxChannel(Black, bg); got != bg {
		t.Errorf("black over %v = %v", bg, got)
	}

	// a saturated channel replaces the background
	if got := BlendAlphaMaxChannel(Red, bg); got != Red {
		t.Errorf("red over %v = %v", bg, got)
	}

	// a dim accent never darkens the brightest background channel past
	// a plain average
	dim := RGB{128, 0, 0}
	got := BlendAlphaMaxChannel(dim, White)
	if got.R < 128 || got.G < 100 {
		t.Errorf("dim red over white = %v", got)
	}
}

func TestFadeAndAdd(t *testing.T) {
	if got := White.FadeToBlackBy(255); got != Black {
		t.Errorf("full fade: got %v", got)
	}
	if got := White.FadeToBlackBy(0); got != White {
		t.Errorf("no fade: got %v", got)
	}
	if got := (RGB{200, 10, 0}).AddSat(RGB{100, 10, 0}); got != (RGB{255, 20, 0}) {
		t.Errorf("AddSat: got %v", got)
	}
	if got := (RGB{1, 9, 3}).MaxChannel(); got != 9 {
		t.Errorf("MaxChannel: got %d", got)
	}
}

func TestColorInterface(t *testing.T) {
	var c color.Color = RGB{255, 0, 128}
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 1, Blue)
	g.Set(5, 5, Red) // ignored
	if got := g.At(2, 1); got != Blue {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := g.At(-1, 0); got != Black {
		t.Errorf("At(-1, 0) = %v", got)
	}

	img := g.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v", img.Bounds())
	}
	if c := img.RGBAAt(2, 1); c != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("image pixel = %v", c)
	}

	g.Fill(Green)
	if g.At(0, 0) != Green {
		t.Error("Fill failed")
	}
	g.Clear()
	if g.At(0, 0) != Black {
		t.Error("Clear failed")
	}
}
