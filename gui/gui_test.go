// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package gui_test

import (
	"bytes"
	"testing"

	"github.com/Lexer747/acci-chart/gui"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var screen = terminal.Size{Height: 10, Width: 20}

func TestBoxAt(t *testing.T) {
	t.Parallel()
	b := gui.Box{
		Lines: []gui.Line{gui.Text("pie[0]"), gui.Text("25")},
		At:    gui.Cell{Row: 2, Column: 3},
		Style: gui.Rounded,
	}
	assert.Check(t, is.Equal(terminal.Size{Height: 4, Width: 8}, b.Size()))
	buf := &bytes.Buffer{}
	b.Draw(screen, buf)
	want := ansi.CursorPosition(2, 3) + "╭──────╮" +
		ansi.CursorPosition(3, 3) + "│pie[0]│" +
		ansi.CursorPosition(4, 3) + "│25    │" +
		ansi.CursorPosition(5, 3) + "╰──────╯"
	assert.Check(t, is.Equal(want, buf.String()))
}

func TestBoxStaysOnScreen(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		at   gui.Cell
		want gui.Cell
	}{
		{name: "bottom right", at: gui.Cell{Row: 9, Column: 19}, want: gui.Cell{Row: 8, Column: 16}},
		{name: "before the origin", at: gui.Cell{Row: -4, Column: 0}, want: gui.Cell{Row: 1, Column: 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b := gui.Box{Lines: []gui.Line{gui.Text("abc")}, At: tc.at, Style: gui.Sharp}
			buf := &bytes.Buffer{}
			b.Draw(screen, buf)
			top := ansi.CursorPosition(tc.want.Row, tc.want.Column) + "┌───┐"
			assert.Check(t, is.Equal(top, buf.String()[:len(top)]))
		})
	}
}

func TestLineAlignment(t *testing.T) {
	t.Parallel()
	b := gui.Box{
		Lines: []gui.Line{
			gui.Text("wide line"),
			{Text: "c", Align: gui.Centre},
			{Text: ansi.Red("r"), Width: 1, Align: gui.Right},
			gui.Styled(ansi.Red("ab"), 2),
		},
		At:    gui.Cell{Row: 1, Column: 1},
		Style: gui.Sharp,
	}
	assert.Check(t, is.Equal(11, b.Size().Width))
	buf := &bytes.Buffer{}
	b.Draw(screen, buf)
	out := buf.String()
	assert.Check(t, is.Contains(out, "│    c    │"))
	assert.Check(t, is.Contains(out, "│        "+ansi.Red("r")+"│"))
	assert.Check(t, is.Contains(out, "│"+ansi.Red("ab")+"       │"))
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal("Centre", gui.Centre.String()))
	assert.Check(t, is.Equal("Style(7)", gui.Style(7).String()))
}
