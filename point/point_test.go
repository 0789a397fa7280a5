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

package point

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, -2)

	cases := []struct {
		name string
		got  Vec2i
		want Vec2i
	}{
		{"add", a.Add(b), V2(4, 2)},
		{"sub", a.Sub(b), V2(2, 6)},
		{"mul", a.Mul(b), V2(3, -8)},
		{"div", a.Div(V2(3, 2)), V2(1, 2)},
		{"scale", a.Scale(2), V2(6, 8)},
		{"min", a.Min(b), V2(1, -2)},
		{"max", a.Max(b), V2(3, 4)},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}
	if d := a.Dot(b); d != -5 {
		t.Errorf("dot: got %d", d)
	}
	if l := a.Length(); l != 5 {
		t.Errorf("length: got %g", l)
	}
}

func TestDistanceUnsigned(t *testing.T) {
	a := Vec2u16{X: 1, Y: 1}
	b := Vec2u16{X: 4, Y: 5}
	if d := a.Distance(b); d != 5 {
		t.Errorf("got %g, want 5", d)
	}
	if d := b.Distance(a); d != 5 {
		t.Errorf("got %g, want 5", d)
	}
}

func TestCast(t *testing.T) {
	f := Vec2f{X: 2.75, Y: -1.5}
	if got := Cast[int](f); got != (Vec2i{X: 2, Y: -1}) {
		t.Errorf("Cast: got %v", got)
	}
	if got := Floor(f); got != (Vec2i{X: 2, Y: -2}) {
		t.Errorf("Floor: got %v", got)
	}
	u := Cast[uint8](Vec2i{X: 10, Y: 200})
	if u != (Vec2u8{X: 10, Y: 200}) {
		t.Errorf("Cast to uint8: got %v", u)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3f{X: 1, Y: 2, Z: 2}
	if l := a.Length(); l != 3 {
		t.Errorf("length: got %g", l)
	}
	b := a.Add(Vec3f{X: 1, Y: 1, Z: 1}).Scale(2)
	if diff := cmp.Diff(Vec3f{X: 4, Y: 6, Z: 6}, b); diff != "" {
		t.Errorf("unexpected result (-want +got):\n%s", diff)
	}
	if d := a.Distance(Vec3f{}); d != 3 {
		t.Errorf("distance: got %g", d)
	}
	if got := Cast3[int](Vec3f{X: 1.9, Y: -0.5, Z: 7}); got != (Vec3[int]{X: 1, Y: 0, Z: 7}) {
		t.Errorf("Cast3: got %v", got)
	}
}

func TestRect(t *testing.T) {
	r := R(0, 0, 4, 3)
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size: got %dx%d", r.Width(), r.Height())
	}
	if !r.Contains(V2(0, 0)) || !r.Contains(V2(3, 2)) {
		t.Error("corner points should be inside")
	}
	if r.Contains(V2(4, 0)) || r.Contains(V2(0, 3)) {
		t.Error("max edge must be exclusive")
	}
	if !R(2, 2, 2, 2).Empty() {
		t.Error("degenerate rectangle should be empty")
	}

	u := r.Union(R(-1, 1, 2, 5))
	if diff := cmp.Diff(R(-1, 0, 4, 5), u); diff != "" {
		t.Errorf("union (-want +got):\n%s", diff)
	}
	if got := r.Union(Rect[int]{}); got != r {
		t.Errorf("union with empty: got %v", got)
	}
	if got := r.Intersect(R(2, 1, 10, 10)); got != R(2, 1, 4, 3) {
		t.Errorf("intersect: got %v", got)
	}
	if got := r.Intersect(R(10, 10, 12, 12)); got != (Rect[int]{}) {
		t.Errorf("disjoint intersect: got %v", got)
	}
	if got := r.Expand(V2(-2, 7)); got != R(-2, 0, 4, 7) {
		t.Errorf("expand: got %v", got)
	}
}

func TestGeomConversion(t *testing.T) {
	if got := ToVec(V2(3, -2)); got != (vec.Vec2{X: 3, Y: -2}) {
		t.Errorf("ToVec: got %v", got)
	}

	g := ToGeom(R(1, 2, 5, 7))
	want := rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 7}
	if g != want {
		t.Errorf("ToGeom: got %v", g)
	}
}
