// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package frame_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/cmd/subcommands/frame"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	tth "github.com/Lexer747/acci-chart/terminal/th"
	"github.com/Lexer747/acci-chart/terminal/typography"
	"github.com/Lexer747/acci-chart/utils/th"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestDraw(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: pie\nseries: [{name: pie, values: [1]}]\n"), 0o600))
	_, stdout, term, setSize, err := tth.NewTestTerminal()
	require.NoError(t, err)
	setSize(terminal.Size{Height: 10, Width: 20})

	s := chart.DefaultSettings()
	s.AnimationDuration = 0
	require.NoError(t, frame.Draw(context.Background(), term, path, s, th.QuietLogger(t, false)))
	out := stdout.ReadString(t)
	assert.Check(t, is.Contains(out, ansi.Clear+ansi.Home))
	assert.Check(t, is.Contains(out, ansi.Blue(typography.LightBlock)))
}

func TestDrawMismatch(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: pie\nseries: [{name: line, points: [[0, 1]]}]\n"), 0o600))
	_, _, term, _, err := tth.NewTestTerminal()
	require.NoError(t, err)
	err = frame.Draw(context.Background(), term, path, chart.DefaultSettings(), th.QuietLogger(t, false))
	assert.Check(t, is.ErrorIs(err, chart.ErrCapabilityMismatch))
}

func TestMakeTerminal(t *testing.T) {
	t.Parallel()
	term, err := frame.MakeTerminal("12x34")
	require.NoError(t, err)
	assert.Check(t, is.Equal(terminal.Size{Height: 12, Width: 34}, term.Size()))
	_, err = frame.MakeTerminal("tall")
	assert.Check(t, is.ErrorContains(err, "tall"))
}
