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

// Package pixel provides the 8-bit RGB colour type written to LED
// buffers, together with the integer scaling and blending rules used
// when compositing coverage onto a frame.
package pixel

// RGB is a 24-bit colour, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// Some frequently used colours.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// Scale8 scales v by s/256, mapping s=255 to the identity and s=0 to zero.
func Scale8(v, s uint8) uint8 {
	return uint8((uint16(v) * (1 + uint16(s))) >> 8)
}

// Blend8 interpolates between a and b.  amountOfB=0 gives a,
// amountOfB=255 gives b.
func Blend8(a, b, amountOfB uint8) uint8 {
	partial := int(a)<<8 | int(b)
	partial += int(b) * int(amountOfB)
	partial -= int(a) * int(amountOfB)
	return uint8(partial >> 8)
}

// Scale returns c with every channel scaled by s/256.
func (c RGB) Scale(s uint8) RGB {
	return RGB{Scale8(c.R, s), Scale8(c.G, s), Scale8(c.B, s)}
}

// FadeToBlackBy darkens c by the given amount; 255 gives black.
func (c RGB) FadeToBlackBy(amount uint8) RGB {
	return c.Scale(255 - amount)
}

// MaxChannel returns the brightest of the three channels.
func (c RGB) MaxChannel() uint8 {
	return max(c.R, c.G, c.B)
}

// AddSat adds o to c, saturating every channel at 255.
func (c RGB) AddSat(o RGB) RGB {
	return RGB{qadd8(c.R, o.R), qadd8(c.G, o.G), qadd8(c.B, o.B)}
}

// Max returns the channelwise maximum of c and o.
func (c RGB) Max(o RGB) RGB {
	return RGB{max(c.R, o.R), max(c.G, o.G), max(c.B, o.B)}
}

// IsBlack reports whether all channels are zero.
func (c RGB) IsBlack() bool {
	return c == RGB{}
}

// RGBA implements the image/color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Blend interpolates channelwise between p1 and p2.
func Blend(p1, p2 RGB, amountOfP2 uint8) RGB {
	return RGB{
		Blend8(p1.R, p2.R, amountOfP2),
		Blend8(p1.G, p2.G, amountOfP2),
		Blend8(p1.B, p2.B, amountOfP2),
	}
}

// BlendAlphaMaxChannel composites upper over lower, using the brightest
// channel of upper as its opacity.  A saturated upper colour replaces
// lower completely; black leaves lower unchanged.
func BlendAlphaMaxChannel(upper, lower RGB) RGB {
	return Blend(upper, lower, 255-upper.MaxChannel())
}

func qadd8(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
