// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package interactive

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/interaction"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/view/terminalview"
	"github.com/charmbracelet/log"
)

// ErrQuit is the stop cause when the user asks to leave.
var ErrQuit = errors.New("user quit")

type visibility interface {
	IsVisible() bool
	SetVisible(bool)
}

// Application drives one chart from key presses. Every method other than [Application.Listeners] must run on
// the event loop passed as post.
type Application struct {
	model  *chart.Model
	view   *terminalview.View
	logger *log.Logger
	post   func(func()) bool
	stop   context.CancelCauseFunc

	cursor       geom.Point
	paintPending bool
	lastErr      error
}

func NewApplication(
	m *chart.Model,
	v *terminalview.View,
	post func(func()) bool,
	stop context.CancelCauseFunc,
	logger *log.Logger,
) *Application {
	a := &Application{model: m, view: v, post: post, stop: stop, logger: logger}
	v.OnInvalidate(a.schedulePaint)
	m.OnDataPointerEnter(func(points []*data.RenderedPoint) {
		a.logger.Debug("pointer entered", "points", data.NewHoverSet(points...))
	})
	m.OnUpdateFinished(func(e chart.UpdateEvent) {
		a.lastErr = e.Err
		if e.Err != nil {
			a.logger.Warn("update aborted", "frame", e.Frame, "err", e.Err)
		}
	})
	return a
}

// Init lays the chart out and centres the cursor.
func (a *Application) Init(ctx context.Context) error {
	if err := a.model.Update(ctx, true); err != nil {
		return err
	}
	a.cursor = a.model.DrawArea().Centre()
	a.view.SetCursor(a.cursor)
	a.paint()
	return nil
}

func (a *Application) Cursor() geom.Point { return a.cursor }

// Move shifts the cursor by one cell, clamped to the control.
func (a *Application) Move(dx, dy float64) {
	size := a.view.ControlSize()
	a.cursor = geom.Point{
		X: clamp(a.cursor.X+dx, 0, size.Width-1),
		Y: clamp(a.cursor.Y+dy*terminalview.CellAspect, 0, size.Height-1),
	}
	a.view.SetCursor(a.cursor)
	a.pointerMoved()
	a.paint()
}

// Halted is true while the last update failed, the chart is not drawn until an update succeeds.
func (a *Application) Halted() bool { return a.lastErr != nil }

// Toggle flips the visibility of the i'th series, out of range is ignored.
func (a *Application) Toggle(ctx context.Context, i int) {
	series := a.model.Series()
	if i < 0 || i >= len(series) {
		return
	}
	s, ok := series[i].(visibility)
	if !ok {
		return
	}
	s.SetVisible(!s.IsVisible())
	a.update(ctx, false)
}

func (a *Application) Restart(ctx context.Context) { a.update(ctx, true) }

// Resized re-lays the chart out after the terminal changed size.
func (a *Application) Resized(ctx context.Context) {
	size := a.view.ControlSize()
	a.cursor.X = clamp(a.cursor.X, 0, size.Width-1)
	a.cursor.Y = clamp(a.cursor.Y, 0, size.Height-1)
	a.view.SetCursor(a.cursor)
	a.update(ctx, false)
}

func (a *Application) ToggleSelectionMode() {
	s := a.model.Settings()
	if s.SelectionMode == interaction.Auto {
		s.SelectionMode = interaction.Exact
	} else {
		s.SelectionMode = interaction.Auto
	}
	a.model.SetSettings(s)
	a.pointerMoved()
	a.paint()
}

// update leaves the failure in lastErr through the finished event, which halts drawing.
func (a *Application) update(ctx context.Context, restart bool) {
	_ = a.model.Update(ctx, restart)
	a.pointerMoved()
	a.paint()
}

func (a *Application) pointerMoved() {
	if a.Halted() {
		return
	}
	a.model.PointerMoved(a.cursor)
}

func (a *Application) schedulePaint() {
	if a.paintPending {
		return
	}
	a.paintPending = true
	a.post(a.paint)
}

func (a *Application) paint() {
	a.paintPending = false
	a.view.SetHalted(a.Halted())
	a.view.SetStatus(a.Status())
	if err := a.view.Paint(); err != nil {
		a.stop(errors.Wrap(err, "failed to paint"))
	}
}

// Status is the line drawn under the chart.
func (a *Application) Status() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "mode: %s | hover: %s", a.model.Settings().SelectionMode, a.model.HoverState())
	if !a.model.Hovered().Empty() {
		fmt.Fprintf(b, " %s", a.model.Hovered())
	}
	if a.lastErr != nil {
		b.WriteString(" | " + ansi.Red("halted: "+a.lastErr.Error()))
	}
	b.WriteString(" | [arrows] move [1-9] toggle [r] restart [m] mode [q] quit")
	return b.String()
}

// Listeners forward key presses onto the event loop, they are called from the terminal's reading goroutine.
func (a *Application) Listeners(ctx context.Context) []terminal.Listener {
	return []terminal.Listener{
		{
			Name:       "move",
			Applicable: func(r rune) bool { return r >= terminal.ArrowUp && r <= terminal.ArrowLeft },
			Action: func(r rune) error {
				dx, dy := 0.0, 0.0
				switch r {
				case terminal.ArrowUp:
					dy = -1
				case terminal.ArrowDown:
					dy = 1
				case terminal.ArrowRight:
					dx = 1
				case terminal.ArrowLeft:
					dx = -1
				}
				a.post(func() { a.Move(dx, dy) })
				return nil
			},
		},
		{
			Name:       "toggle series",
			Applicable: func(r rune) bool { return r >= '1' && r <= '9' },
			Action: func(r rune) error {
				a.post(func() { a.Toggle(ctx, int(r-'1')) })
				return nil
			},
		},
		{
			Name:       "restart",
			Applicable: func(r rune) bool { return r == 'r' },
			Action: func(rune) error {
				a.post(func() { a.Restart(ctx) })
				return nil
			},
		},
		{
			Name:       "selection mode",
			Applicable: func(r rune) bool { return r == 'm' },
			Action: func(rune) error {
				a.post(a.ToggleSelectionMode)
				return nil
			},
		},
		{
			Name:       "quit",
			Applicable: func(r rune) bool { return r == 'q' },
			Action: func(rune) error {
				a.stop(ErrQuit)
				return nil
			},
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
