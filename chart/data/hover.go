// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package data

import "strings"

// HoverSet is an ordered set of rendered points keyed by [PointKey]. Membership is by key and not by pointer
// because points are rebuilt every frame.
type HoverSet struct {
	keys   map[PointKey]int
	points []*RenderedPoint
}

// NewHoverSet keeps the first point seen for each key and preserves the given order.
func NewHoverSet(points ...*RenderedPoint) HoverSet {
	h := HoverSet{keys: make(map[PointKey]int, len(points))}
	for _, p := range points {
		if _, dup := h.keys[p.Key]; dup {
			continue
		}
		h.keys[p.Key] = len(h.points)
		h.points = append(h.points, p)
	}
	return h
}

func (h HoverSet) Len() int    { return len(h.points) }
func (h HoverSet) Empty() bool { return len(h.points) == 0 }

func (h HoverSet) Has(k PointKey) bool {
	_, ok := h.keys[k]
	return ok
}

// Points returns the members in insertion order, the slice must not be modified.
func (h HoverSet) Points() []*RenderedPoint { return h.points }

func (h HoverSet) Keys() []PointKey {
	ret := make([]PointKey, len(h.points))
	for i, p := range h.points {
		ret[i] = p.Key
	}
	return ret
}

// Difference is every member of h whose key is not in other.
func (h HoverSet) Difference(other HoverSet) []*RenderedPoint {
	var ret []*RenderedPoint
	for _, p := range h.points {
		if !other.Has(p.Key) {
			ret = append(ret, p)
		}
	}
	return ret
}

func (h HoverSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range h.points {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Key.String())
	}
	b.WriteByte('}')
	return b.String()
}
