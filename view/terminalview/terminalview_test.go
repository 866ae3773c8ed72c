// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminalview_test

import (
	"context"
	"testing"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/series"
	charth "github.com/Lexer747/acci-chart/chart/th"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	termth "github.com/Lexer747/acci-chart/terminal/th"
	"github.com/Lexer747/acci-chart/terminal/typography"
	"github.com/Lexer747/acci-chart/utils/th"
	"github.com/Lexer747/acci-chart/view/terminalview"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func setup(t *testing.T, kind chart.Kind, s ...chart.Series) (*termth.TestFile, *terminalview.View, *chart.Model) {
	t.Helper()
	_, stdout, term, setSize, err := termth.NewTestTerminal()
	require.NoError(t, err)
	setSize(terminal.Size{Height: 10, Width: 20})
	v := terminalview.New(term, th.QuietLogger(t, false))
	settings := chart.DefaultSettings()
	settings.AnimationDuration = 0
	m, err := chart.NewModel(chart.Config{
		View:      v,
		Kind:      kind,
		Settings:  settings,
		Scheduler: &charth.FakeScheduler{},
		Logger:    th.QuietLogger(t, false),
	})
	require.NoError(t, err)
	require.NoError(t, m.SetSeries(s...))
	require.NoError(t, m.Update(context.Background(), false))
	return stdout, v, m
}

func TestControlSize(t *testing.T) {
	t.Parallel()
	_, v, m := setup(t, chart.Pie)
	assert.Check(t, is.DeepEqual(geom.Size{Width: 20, Height: 20}, v.ControlSize()))
	assert.Check(t, is.DeepEqual(geom.Rect{Origin: geom.Point{X: 2, Y: 2}, Size: geom.Size{Width: 16, Height: 16}}, v.DrawArea()))
	assert.Check(t, is.DeepEqual(v.DrawArea(), m.DrawArea()))
}

func TestPieRendering(t *testing.T) {
	t.Parallel()
	pie := series.NewPie("pie", 1, 1)
	stdout, v, m := setup(t, chart.Pie, pie)
	assert.Check(t, is.Equal(2, v.Shapes()))

	out := string(v.Render())
	assert.Check(t, is.Contains(out, ansi.CursorPosition(5, 15)+ansi.Blue(typography.LightBlock)))
	assert.Check(t, is.Contains(out, ansi.CursorPosition(5, 6)+ansi.Yellow(typography.MediumBlock)))
	// Outside the circle nothing is drawn.
	assert.Check(t, !contains(out, ansi.CursorPosition(1, 1)+ansi.Blue(typography.LightBlock)))

	m.PointerMoved(geom.Point{X: 14.5, Y: 9})
	tooltip := v.DataTooltip().(*terminalview.Tooltip)
	assert.Check(t, tooltip.Visible())
	assert.Check(t, is.DeepEqual([]string{"pie[0]: 1"}, tooltip.Lines()))
	assert.Check(t, is.Contains(string(v.Render()), "│pie[0]: 1│"))

	require.NoError(t, v.Paint())
	assert.Check(t, is.Contains(stdout.ReadString(t), ansi.Clear))

	pie.SetVisible(false)
	require.NoError(t, m.Update(context.Background(), false))
	assert.Check(t, is.Equal(0, v.Shapes()))
	assert.Check(t, !contains(string(v.Render()), typography.LightBlock))
}

func TestMarkerRendering(t *testing.T) {
	t.Parallel()
	line := series.NewLine("l", geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1})
	line.SetLabels("origin")
	_, v, m := setup(t, chart.Cartesian, line)
	assert.Check(t, is.Equal(2, v.Shapes()))
	out := string(v.Render())
	assert.Check(t, is.Contains(out, ansi.CursorPosition(9, 3)+ansi.Blue(typography.Bullet)))
	assert.Check(t, !contains(out, ansi.Yellow(typography.Bullet)), "markers share their series colour")

	m.PointerMoved(geom.Point{X: 2, Y: 18})
	tooltip := v.DataTooltip().(*terminalview.Tooltip)
	assert.Check(t, is.DeepEqual([]string{"l[0] (origin): 0"}, tooltip.Lines()))
}

func TestCursorAndStatus(t *testing.T) {
	t.Parallel()
	_, v, _ := setup(t, chart.Pie)
	v.SetCursor(geom.Point{X: 3, Y: 5})
	v.SetStatus("help")
	out := string(v.Render())
	assert.Check(t, is.Contains(out, ansi.CursorPosition(3, 4)+ansi.White(typography.Cross)))
	assert.Check(t, is.Contains(out, ansi.CursorPosition(10, 1)+ansi.Gray("help")))
}

func TestHalted(t *testing.T) {
	t.Parallel()
	_, v, m := setup(t, chart.Pie, series.NewPie("pie", 1, 1))
	v.SetCursor(geom.Point{X: 3, Y: 5})
	v.SetStatus("failed")
	m.PointerMoved(geom.Point{X: 14.5, Y: 9})

	v.SetHalted(true)
	out := string(v.Render())
	assert.Check(t, !contains(out, typography.LightBlock))
	assert.Check(t, !contains(out, typography.Cross))
	assert.Check(t, !contains(out, "pie[0]: 1"))
	assert.Check(t, is.Contains(out, ansi.CursorPosition(10, 1)+ansi.Gray("failed")))
	assert.Check(t, is.Equal(2, v.Shapes()), "shapes are kept while halted")

	v.SetHalted(false)
	out = string(v.Render())
	assert.Check(t, is.Contains(out, ansi.CursorPosition(5, 15)+ansi.Blue(typography.LightBlock)))
	assert.Check(t, is.Contains(out, "│pie[0]: 1│"))
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	_, v, _ := setup(t, chart.Pie)
	calls := 0
	v.Invalidate()
	v.OnInvalidate(func() { calls++ })
	v.Invalidate()
	assert.Check(t, is.Equal(1, calls))
}

func contains(s, sub string) bool {
	return is.Contains(s, sub)().Success()
}
