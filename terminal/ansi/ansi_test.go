// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi_test

import (
	"testing"

	"github.com/Lexer747/acci-chart/terminal/ansi"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestColours(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal("\033[94mx\033[0m", ansi.Blue("x")))
	assert.Check(t, is.Equal("\033[31mx\033[0m", ansi.DarkRed("x")))
	assert.Check(t, is.Equal(ansi.Blue("y"), ansi.Colour(len(ansi.Palette))("y")))
	assert.Check(t, is.Equal(ansi.Yellow("y"), ansi.Colour(-1)("y")))
}

func TestCursor(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal("\033[3;7H", ansi.CursorPosition(3, 7)))
	assert.Check(t, is.Equal("\033[2J", ansi.Clear))
	assert.Check(t, is.Equal("\033[1;1H", ansi.Home))
}
