// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/Lexer747/acci-chart/terminal"
)

// Line is one row of text inside a box.
type Line struct {
	Text string
	// Width is the number of cells Text covers, zero means the rune count of Text. Text carrying ansi colours
	// must set it.
	Width int
	Align Alignment
}

// Text is a plain left aligned line.
func Text(s string) Line { return Line{Text: s} }

// Styled is a left aligned line whose text carries control sequences and so covers fewer cells than it has
// runes.
func Styled(s string, width int) Line { return Line{Text: s, Width: width} }

func (l Line) cells() int {
	if l.Width > 0 {
		return l.Width
	}
	return utf8.RuneCountInString(l.Text)
}

// Draw writes the line at the cursor without padding.
func (l Line) Draw(_ terminal.Size, b *bytes.Buffer) { b.WriteString(l.Text) }

// pad fills the line out to width cells. A line wider than width is written as is.
func (l Line) pad(width int, b *bytes.Buffer) {
	gap := width - l.cells()
	if gap <= 0 {
		b.WriteString(l.Text)
		return
	}
	var before int
	switch l.Align {
	case Left:
	case Centre:
		before = gap / 2
	case Right:
		before = gap
	default:
		panic("gui: cannot pad a line aligned " + l.Align.String())
	}
	b.WriteString(strings.Repeat(" ", before))
	b.WriteString(l.Text)
	b.WriteString(strings.Repeat(" ", gap-before))
}
