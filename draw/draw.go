// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package draw

import (
	"bytes"
	"sync/atomic"

	"github.com/Lexer747/acci-chart/utils/sliceutils"
)

// Buffer is a helper type for the terminal view, instead of writing everything as literal go strings (the
// output type expected by the terminal) we keep a byte buffer for every z-index in our program. This allows
// the program to re-use the memory we allocate every frame, this means the total memory we need to allocate
// for drawing is bounded for the amount of the single largest frame we ever draw.
type Buffer struct {
	storage []*bytes.Buffer
}

func NewPaintBuffer() *Buffer {
	return newBuffer(int(indexCount.Load()))
}

type Index int

// Get the underlying buffer for this z-index
func (b *Buffer) Get(z Index) *bytes.Buffer {
	return b.storage[z]
}

// Reset will reset the given buffers so that they no longer contain the last frame but are all empty.
func (b *Buffer) Reset(toReset ...Index) {
	for _, idx := range toReset {
		b.Get(idx).Reset()
	}
}

// Paint writes every buffer in [PaintOrder] to out.
func (b *Buffer) Paint(out *bytes.Buffer) {
	for _, idx := range PaintOrder {
		out.Write(b.Get(idx).Bytes())
	}
}

var (
	WedgeIndex   = newIndex()
	MarkerIndex  = newIndex()
	TooltipIndex = newIndex()
	CursorIndex  = newIndex()
	StatusIndex  = newIndex()
)

// Z-order is top to bottom so the first item added to ret is at the back, the last item is at the front
var PaintOrder = []Index{
	WedgeIndex,
	// markers are small and would be lost under a wedge
	MarkerIndex,
	// the cursor sits on the chart but under the tooltip it is pointing at
	CursorIndex,
	TooltipIndex,
	StatusIndex,
}

// ChartIndexes is the [PaintOrder] with the overlay indexes removed, these are redrawn whenever a shape moves.
var ChartIndexes = sliceutils.Remove(PaintOrder,
	CursorIndex,
	TooltipIndex,
	StatusIndex,
)

// OverlayIndexes is the above paint order with the ChartIndexes indexes removed
var OverlayIndexes = sliceutils.Remove(PaintOrder, ChartIndexes...)

// newBuffer creates a new [Buffer] of [n] z-buffers.
func newBuffer(zMax int) *Buffer {
	ret := &Buffer{
		storage: make([]*bytes.Buffer, zMax),
	}
	for i := range zMax {
		ret.storage[i] = &bytes.Buffer{}
	}
	return ret
}

func newIndex() Index {
	cur := Index(indexCount.Add(1))
	return cur - 1
}

var indexCount atomic.Int32
