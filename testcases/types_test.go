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

package testcases

import (
	"maps"
	"reflect"
	"slices"
	"testing"
)

func TestPathNotShared(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, tc := range All[category] {
			a, b := tc.Path(), tc.Path()
			if a == nil {
				t.Errorf("%s/%s: nil curve", category, tc.Name)
				continue
			}
			if reflect.ValueOf(a).Kind() == reflect.Pointer && a == b {
				t.Errorf("%s/%s: Path returns a shared %T", category, tc.Name, a)
			}
		}
	}
}
