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
	"seehuhn.de/go/ledgeom/internal/logging"
	"seehuhn.de/go/ledgeom/point"
)

// cacheSize is the number of recently written cells remembered by a
// sparse raster.
const cacheSize = 8

// SparseOptions configures a sparse raster.  The zero value gives an
// unbounded raster without a cell limit.
type SparseOptions struct {
	// Bounds, if non-nil, is the half-open rectangle of cells which can be
	// stored.  Writes outside are dropped silently, and Bounds()
	// becomes O(1).
	Bounds *point.Rect[int]

	// MaxCells limits the number of stored cells.  Zero means no limit.
	// Once the limit is reached, writes to new cells fail with
	// ErrAllocationFailed.
	MaxCells int
}

type cacheEntry struct {
	key  point.Vec2i
	slot int32
}

// sparse is the storage shared by the sparse raster types.  Values live
// in an append-only slot arena; the map only translates keys to slot
// indices.
//
// The write cache remembers (key, slot) pairs of recently touched cells,
// so that runs of writes to the same few cells skip the map.  It stores
// indices, never pointers, so growing the arena or the map cannot
// invalidate an entry.  Clearing the raster empties the cache.
type sparse[V any] struct {
	index map[point.Vec2i]int32
	keys  []point.Vec2i
	vals  []V

	bounds    point.Rect[int]
	hasBounds bool
	maxCells  int

	cache    [cacheSize]cacheEntry
	cacheLen int

	hits, misses int
	err          error
}

func (s *sparse[V]) init(opt *SparseOptions) {
	s.index = make(map[point.Vec2i]int32)
	if opt != nil {
		if opt.Bounds != nil {
			s.bounds = *opt.Bounds
			s.hasBounds = true
		}
		s.maxCells = max(opt.MaxCells, 0)
	}
}

// setBounds restricts future writes to b.  Cached slots may refer to
// cells outside the new bounds, so the cache is emptied.
func (s *sparse[V]) setBounds(b point.Rect[int]) {
	s.bounds = b
	s.hasBounds = true
	s.cacheLen = 0
}

// clear removes all cells but keeps the allocated storage.
func (s *sparse[V]) clear() {
	clear(s.index)
	s.keys = s.keys[:0]
	s.vals = s.vals[:0]
	s.cacheLen = 0
	s.err = nil
}

// remember adds an entry to the write cache.  A full cache is emptied
// rather than searched for a victim.
func (s *sparse[V]) remember(key point.Vec2i, slot int32) {
	if s.cacheLen == cacheSize {
		s.cacheLen = 0
	}
	s.cache[s.cacheLen] = cacheEntry{key: key, slot: slot}
	s.cacheLen++
}

// lookup returns the slot of key without modifying the raster.
func (s *sparse[V]) lookup(key point.Vec2i) (int32, bool) {
	for i := range s.cacheLen {
		if s.cache[i].key == key {
			return s.cache[i].slot, true
		}
	}
	slot, ok := s.index[key]
	return slot, ok
}

// slotStatus is the outcome of a slot request.
type slotStatus int

const (
	slotOK      slotStatus = iota
	slotDropped            // outside the fixed bounds
	slotFull               // the cell limit has been reached
)

// slot returns the slot for key, creating a zero-valued cell if needed.
func (s *sparse[V]) slot(key point.Vec2i) (int32, slotStatus) {
	for i := range s.cacheLen {
		if s.cache[i].key == key {
			s.hits++
			return s.cache[i].slot, slotOK
		}
	}
	s.misses++

	if s.hasBounds && !s.bounds.Contains(key) {
		return 0, slotDropped
	}

	if slot, ok := s.index[key]; ok {
		s.remember(key, slot)
		return slot, slotOK
	}

	if s.maxCells > 0 && len(s.vals) >= s.maxCells {
		return 0, slotFull
	}

	var zero V
	slot := int32(len(s.vals))
	s.keys = append(s.keys, key)
	s.vals = append(s.vals, zero)
	s.index[key] = slot
	s.remember(key, slot)
	return slot, slotOK
}

// fail records a dropped write in the sticky error.
func (s *sparse[V]) fail() {
	if s.err == nil {
		logging.Logger().Warn("sparse raster: cell limit reached", "cells", len(s.vals))
	}
	s.err = ErrAllocationFailed
}

func (s *sparse[V]) len() int {
	return len(s.vals)
}

// tight returns the smallest half-open rectangle containing all stored
// cells.  This takes time proportional to the number of cells.
func (s *sparse[V]) tight() point.Rect[int] {
	if len(s.keys) == 0 {
		return point.Rect[int]{}
	}
	lo, hi := s.keys[0], s.keys[0]
	for _, k := range s.keys[1:] {
		lo = lo.Min(k)
		hi = hi.Max(k)
	}
	return point.Rect[int]{Min: lo, Max: hi.Add(point.Vec2i{X: 1, Y: 1})}
}

// pixelBounds returns the fixed bounds, if any, or the tight bounds of
// the stored cells.
func (s *sparse[V]) pixelBounds() point.Rect[int] {
	if s.hasBounds {
		return s.bounds
	}
	return s.tight()
}

// cornerBounds is pixelBounds with an inclusive maximum corner.
func (s *sparse[V]) cornerBounds() point.Rect[int] {
	b := s.pixelBounds()
	if b.Empty() {
		return point.Rect[int]{}
	}
	b.Max = b.Max.Sub(point.Vec2i{X: 1, Y: 1})
	return b
}
