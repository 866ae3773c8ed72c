// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package draw_test

import (
	"bytes"
	"testing"

	"github.com/Lexer747/acci-chart/draw"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestPaintOrder(t *testing.T) {
	t.Parallel()
	b := draw.NewPaintBuffer()
	b.Get(draw.TooltipIndex).WriteString("tooltip,")
	b.Get(draw.WedgeIndex).WriteString("wedge,")
	b.Get(draw.MarkerIndex).WriteString("marker,")
	out := &bytes.Buffer{}
	b.Paint(out)
	assert.Check(t, is.Equal("wedge,marker,tooltip,", out.String()))

	b.Reset(draw.ChartIndexes...)
	out.Reset()
	b.Paint(out)
	assert.Check(t, is.Equal("tooltip,", out.String()))
}

func TestIndexesPartition(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Len(draw.PaintOrder, len(draw.ChartIndexes)+len(draw.OverlayIndexes)))
	assert.Check(t, is.DeepEqual([]draw.Index{draw.WedgeIndex, draw.MarkerIndex}, draw.ChartIndexes))
}
