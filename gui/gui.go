// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// gui draws the small boxed widgets, like the tooltip, that sit over a chart in the terminal view.
package gui

import (
	"bytes"
	"strconv"

	"github.com/Lexer747/acci-chart/terminal"
)

// Widget writes itself to the frame buffer of a terminal of the given size.
type Widget interface {
	Draw(size terminal.Size, b *bytes.Buffer)
}

var (
	_ Widget = Box{}
	_ Widget = Line{}
)

// Cell is a 1 indexed terminal position.
type Cell struct {
	Row, Column int
}

// Alignment of a [Line] within the width of its box.
type Alignment int

const (
	Left Alignment = iota
	Centre
	Right
)

func (a Alignment) String() string {
	switch a {
	case Left:
		return "Left"
	case Centre:
		return "Centre"
	case Right:
		return "Right"
	default:
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
}
