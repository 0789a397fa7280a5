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

// Command genpdf generates preview images of the test scenes.
// For every scene it writes a PDF, with each lit LED drawn as a square,
// and an upscaled PNG.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/ledgeom"
	"seehuhn.de/go/ledgeom/pixel"
	"seehuhn.de/go/ledgeom/point"
	"seehuhn.de/go/ledgeom/raster"
	"seehuhn.de/go/ledgeom/testcases"
)

const (
	previewDir = "testdata/preview"

	// cellSize is the size of one LED in PDF points and PNG pixels
	cellSize = 8

	// ledGap is the gap between neighbouring LEDs in the PDF, in points
	ledGap = 1.0
)

// categoryColor is the LED colour used for each category.
var categoryColor = map[string]pixel.RGB{
	"curve":     pixel.Red,
	"transform": pixel.Green,
	"fill":      pixel.Blue,
	"precision": pixel.White,
	"large":     {R: 255, G: 160, B: 0},
}

func main() {
	if err := os.MkdirAll(previewDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			col, ok := categoryColor[category]
			if !ok {
				col = pixel.White
			}
			g := renderGrid(tc, col)

			if err := generatePDF(g, filepath.Join(previewDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(g, filepath.Join(previewDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// renderGrid renders tc and composites the coverage onto a black LED
// grid.
func renderGrid(tc testcases.TestCase, col pixel.RGB) *pixel.Grid {
	w, h := tc.Width, tc.Height
	buf := make([]byte, w*h)
	ledgeom.RenderExample(tc, buf, w, h, w)

	d := raster.NewDense(point.Vec2i{}, w, h)
	for y := range h {
		for x := range w {
			*d.Cell(x, y) = buf[y*w+x]
		}
	}
	g := pixel.NewGrid(w, h)
	d.DrawGrid(col, g)
	return g
}

func generatePDF(g *pixel.Grid, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(g.Width * cellSize),
		URy: float64(g.Height * cellSize),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// PDF origin is bottom-left; LED rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	for y := range g.Height {
		for x := range g.Width {
			c := g.At(x, y)
			if c.IsBlack() {
				continue
			}
			page.SetFillColor(color.DeviceRGB(
				float64(c.R)/255, float64(c.G)/255, float64(c.B)/255))
			page.Rectangle(
				float64(x*cellSize)+ledGap/2, float64(y*cellSize)+ledGap/2,
				cellSize-ledGap, cellSize-ledGap)
			page.Fill()
		}
	}

	return page.Close()
}

func generatePNG(g *pixel.Grid, pngPath string) error {
	src := g.Image()
	dst := image.NewRGBA(image.Rect(0, 0, g.Width*cellSize, g.Height*cellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
