// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
)

// Box is a bordered list of lines with its top left corner at a cell. A box which would overflow the
// terminal is pushed back on screen.
type Box struct {
	Lines []Line
	At    Cell
	Style Style
}

type Style int

const (
	Rounded Style = iota
	Sharp
)

func (s Style) String() string {
	switch s {
	case Rounded:
		return "Rounded"
	case Sharp:
		return "Sharp"
	default:
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}
}

type border struct {
	topLeft, topRight, bottomLeft, bottomRight string
}

func (s Style) border() border {
	switch s {
	case Rounded:
		return border{topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯"}
	case Sharp:
		return border{topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘"}
	default:
		panic("gui: no border for box style " + s.String())
	}
}

func (b Box) Draw(size terminal.Size, buf *bytes.Buffer) {
	at := b.origin(size)
	inner := b.innerWidth()
	edge := b.Style.border()
	rule := strings.Repeat("─", inner)
	buf.WriteString(ansi.CursorPosition(at.Row, at.Column) + edge.topLeft + rule + edge.topRight)
	for i, l := range b.Lines {
		buf.WriteString(ansi.CursorPosition(at.Row+i+1, at.Column) + "│")
		l.pad(inner, buf)
		buf.WriteString("│")
	}
	buf.WriteString(ansi.CursorPosition(at.Row+len(b.Lines)+1, at.Column) + edge.bottomLeft + rule + edge.bottomRight)
}

// Size is the number of cells the box covers including its border.
func (b Box) Size() terminal.Size {
	return terminal.Size{Height: len(b.Lines) + 2, Width: b.innerWidth() + 2}
}

// origin is the top left cell actually drawn, if the terminal is too small for the box its top left corner
// stays visible.
func (b Box) origin(size terminal.Size) Cell {
	s := b.Size()
	return Cell{
		Row:    max(min(b.At.Row, size.Height-s.Height+1), 1),
		Column: max(min(b.At.Column, size.Width-s.Width+1), 1),
	}
}

func (b Box) innerWidth() int {
	ret := 0
	for _, l := range b.Lines {
		ret = max(ret, l.cells())
	}
	return ret
}
