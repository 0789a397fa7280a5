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

package traverse

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/ledgeom/point"
)

func v2(x, y float64) point.Vec2f { return point.Vec2f{X: x, Y: y} }

func cells(xy ...int) []point.Vec2i {
	var res []point.Vec2i
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, point.Vec2i{X: xy[i], Y: xy[i+1]})
	}
	return res
}

var engines = map[string]Engine{
	"float": SegmentFloat,
	"q8.8":  SegmentQ8_8,
	"q24.8": SegmentQ24_8,
	"auto":  Segment,
}

func TestSegmentCases(t *testing.T) {
	cases := []struct {
		name       string
		start, end point.Vec2f
		want       []point.Vec2i
	}{
		{"point", v2(1.5, 2.5), v2(1.5, 2.5), cells(1, 2)},
		{"same cell", v2(1.1, 2.2), v2(1.9, 2.8), cells(1, 2)},
		{"horizontal", v2(0.5, 0.5), v2(3.5, 0.5), cells(0, 0, 1, 0, 2, 0, 3, 0)},
		{"backwards", v2(2.5, 0.5), v2(-0.5, 0.5), cells(2, 0, 1, 0, 0, 0, -1, 0)},
		{"vertical", v2(0.5, 0.25), v2(0.5, -1.75), cells(0, 0, 0, -1, 0, -2)},
		{"corner tie", v2(0.5, 0.5), v2(1.5, 1.5), cells(0, 0, 0, 1, 1, 1)},
		{"through corner", v2(0.5, 0.5), v2(3.5, 1.5), cells(0, 0, 1, 0, 1, 1, 2, 1, 3, 1)},
		{"shallow", v2(0.5, 0.25), v2(3.5, 1.25), cells(0, 0, 1, 0, 2, 0, 2, 1, 3, 1)},
		{"end on grid line", v2(0.5, 0.5), v2(2, 0.5), cells(0, 0, 1, 0, 2, 0)},
	}
	for _, c := range cases {
		for name, engine := range engines {
			got := Collect(engine, c.start, c.end)
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("%s/%s: unexpected cells (-want +got):\n%s", c.name, name, d)
			}
		}
	}
}

func TestNonFinite(t *testing.T) {
	for name, engine := range engines {
		for _, p := range []point.Vec2f{v2(math.NaN(), 0), v2(0, math.Inf(1))} {
			if got := Collect(engine, p, v2(1, 1)); len(got) != 0 {
				t.Errorf("%s: visited %v for non-finite start", name, got)
			}
			if got := Collect(engine, v2(1, 1), p); len(got) != 0 {
				t.Errorf("%s: visited %v for non-finite end", name, got)
			}
		}
	}
}

// checkWalk verifies the structural properties every traversal has.
func checkWalk(t *testing.T, name string, start, end point.Vec2f, got []point.Vec2i) {
	t.Helper()
	first := point.Vec2i{X: int(math.Floor(start.X)), Y: int(math.Floor(start.Y))}
	last := point.Vec2i{X: int(math.Floor(end.X)), Y: int(math.Floor(end.Y))}
	if len(got) == 0 {
		t.Fatalf("%s %v->%v: no cells", name, start, end)
	}
	if got[0] != first {
		t.Errorf("%s %v->%v: first cell %v, want %v", name, start, end, got[0], first)
	}
	if got[len(got)-1] != last {
		t.Errorf("%s %v->%v: last cell %v, want %v", name, start, end, got[len(got)-1], last)
	}
	wantLen := absInt(last.X-first.X) + absInt(last.Y-first.Y) + 1
	if len(got) != wantLen {
		t.Errorf("%s %v->%v: %d cells, want %d", name, start, end, len(got), wantLen)
	}
	for i := 1; i < len(got); i++ {
		d := got[i].Sub(got[i-1])
		if absInt(d.X)+absInt(d.Y) != 1 {
			t.Errorf("%s %v->%v: step %v -> %v is not 4-connected", name, start, end, got[i-1], got[i])
			break
		}
	}
}

// gridCoord returns a random multiple of 1/256 in [-r, r).
func gridCoord(rng *rand.Rand, r int) float64 {
	return float64(rng.IntN(2*r*256)-r*256) / 256
}

func TestWalkProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 2000 {
		start := v2(gridCoord(rng, 100), gridCoord(rng, 100))
		end := start.Add(v2(gridCoord(rng, 120), gridCoord(rng, 120)))
		for name, engine := range engines {
			checkWalk(t, name, start, end, Collect(engine, start, end))
		}
	}
}

func TestFixedAgreesWithFloat(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 5000 {
		start := v2(gridCoord(rng, 50), gridCoord(rng, 50))
		end := start.Add(v2(gridCoord(rng, 20), gridCoord(rng, 20)))
		ref := Collect(SegmentFloat, start, end)
		if d := cmp.Diff(ref, Collect(SegmentQ8_8, start, end)); d != "" {
			t.Fatalf("Q8.8 %v->%v differs from float (-float +q8.8):\n%s", start, end, d)
		}
		if d := cmp.Diff(ref, Collect(SegmentQ24_8, start, end)); d != "" {
			t.Fatalf("Q24.8 %v->%v differs from float (-float +q24.8):\n%s", start, end, d)
		}
	}
}

func TestQ24AgreesWithFloatLong(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		start := v2(gridCoord(rng, 1000), gridCoord(rng, 1000))
		end := start.Add(v2(gridCoord(rng, 3000), gridCoord(rng, 3000)))
		ref := Collect(SegmentFloat, start, end)
		got := Collect(SegmentQ24_8, start, end)
		if d := cmp.Diff(ref, got); d != "" {
			t.Fatalf("Q24.8 %v->%v differs from float (-float +q24.8):\n%s", start, end, d)
		}
		checkWalk(t, "auto", start, end, Cells(start, end))
	}
}

func TestFarFromOrigin(t *testing.T) {
	got := Cells(v2(1e7+0.5, 0.5), v2(1e7+3.5, 0.5))
	want := cells(1e7, 0, 1e7+1, 0, 1e7+2, 0, 1e7+3, 0)
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected cells (-want +got):\n%s", d)
	}

	segments := [][2]point.Vec2f{
		{v2(1e7+0.5, 0.5), v2(1e7+3.5, 0.5)},
		{v2(-5e6-0.25, 3e6+0.5), v2(-5e6+2.75, 3e6+2.5)},
		{v2(8388607.5, -8388607.5), v2(8388609.25, -8388605.75)},
		{v2(1e13+0.5, 2.5), v2(1e13-1.5, 4.5)},
		{v2(1e15+0.5, 1e15+0.5), v2(1e15+3.5, 1e15+1.5)},
	}
	for _, seg := range segments {
		start, end := seg[0], seg[1]
		got := Cells(start, end)
		checkWalk(t, "auto", start, end, got)
		if d := cmp.Diff(Collect(SegmentFloat, start, end), got); d != "" {
			t.Errorf("%v->%v differs from float (-float +auto):\n%s", start, end, d)
		}
	}
}

func TestVisitorFunc(t *testing.T) {
	count := 0
	Segment(v2(0, 0), v2(10.5, 0.5), VisitorFunc(func(x, y int) { count++ }))
	if count != 11 {
		t.Errorf("visited %d cells, want 11", count)
	}
}

func BenchmarkSegment(b *testing.B) {
	benches := []struct {
		name   string
		engine Engine
	}{
		{"float", SegmentFloat},
		{"q8.8", SegmentQ8_8},
		{"q24.8", SegmentQ24_8},
	}
	start, end := v2(0.3, 0.7), v2(97.1, 41.9)
	n := 0
	v := VisitorFunc(func(x, y int) { n += x + y })
	for _, bb := range benches {
		b.Run(bb.name, func(b *testing.B) {
			for b.Loop() {
				bb.engine(start, end, v)
			}
		})
	}
}
