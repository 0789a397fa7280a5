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

// Command export writes the sample points of all test scenes, together
// with the default corkscrew layout, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/ledgeom/corkscrew"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/testcases"
	"seehuhn.de/go/ledgeom/xypath"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
		Corkscrew jsonCorkscrew  `json:"corkscrew"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}
	out.Corkscrew = corkscrewToJSON(corkscrew.DefaultInput())

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(fmt.Errorf("testcases.json: %w", err))
	}
}

type jsonTestCase struct {
	Name     string      `json:"name"`
	Curve    string      `json:"curve"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Steps    int         `json:"steps"`
	Op       string      `json:"op"`
	From     float64     `json:"from,omitempty"`
	To       float64     `json:"to,omitempty"`
	Scale    float64     `json:"scale"`
	XOffset  float64     `json:"x_offset,omitempty"`
	YOffset  float64     `json:"y_offset,omitempty"`
	Rotation float64     `json:"rotation,omitempty"`
	Points   [][]float64 `json:"points"`
}

type jsonCorkscrew struct {
	Input   corkscrew.Input `json:"input"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Mapping [][]float64     `json:"mapping"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	tr := tc.EffectiveTransform()
	p := xypath.New(tc.Path(), tc.Width, tc.Height)
	p.SetTransform(tr)

	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Curve:    p.Generator().Name(),
		Width:    tc.Width,
		Height:   tc.Height,
		Steps:    tc.Steps,
		Scale:    tr.Scale,
		XOffset:  tr.XOffset,
		YOffset:  tr.YOffset,
		Rotation: tr.Rotation,
	}

	from, to := 0.0, 1.0
	switch op := tc.Op.(type) {
	case testcases.Trace:
		jtc.Op = "trace"
		jtc.From, jtc.To = op.From, op.To
		from, to = op.From, op.To
	case testcases.Fill:
		jtc.Op = "fill"
	}

	for i := range tc.Steps {
		alpha := from
		if tc.Steps > 1 {
			alpha += (to - from) * float64(i) / float64(tc.Steps-1)
		}
		jtc.Points = append(jtc.Points, vecToJSON(p.AtPixel(alpha)))
	}
	return jtc
}

func corkscrewToJSON(in corkscrew.Input) jsonCorkscrew {
	st := corkscrew.GenerateState(in)
	res := jsonCorkscrew{
		Input:  in,
		Width:  st.Width,
		Height: st.Height,
	}
	for _, p := range st.Mapping {
		res.Mapping = append(res.Mapping, vecToJSON(p))
	}
	return res
}

func vecToJSON(p point.Vec2f) []float64 {
	return []float64{p.X, p.Y}
}
