// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"time"

	"github.com/Lexer747/acci-chart/chart/interaction"
	"github.com/Lexer747/acci-chart/geom"
)

// Padding is the space between the edge of the view and the draw area.
type Padding struct {
	Top, Bottom, Left, Right float64
}

// Apply shrinks a control of size s by p, the result may be degenerate.
func (p Padding) Apply(s geom.Size) geom.Rect {
	return geom.Rect{
		Origin: geom.Point{X: p.Left, Y: p.Top},
		Size: geom.Size{
			Width:  s.Width - p.Left - p.Right,
			Height: s.Height - p.Top - p.Bottom,
		},
	}
}

type Settings struct {
	Padding       Padding
	SelectionMode interaction.SelectionMode
	// TooltipTimeout is the dwell time before the tooltip hides once the pointer has left every point.
	TooltipTimeout time.Duration

	// StartingRotation offsets every wedge of a radial chart, in degrees.
	StartingRotation float64
	// InnerRadius turns a pie into a doughnut, in pixels.
	InnerRadius float64

	// MarkerRadius is the size of cartesian points and their hit areas, in pixels.
	MarkerRadius float64

	AnimationDuration time.Duration
	AnimationInterval time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Padding:           Padding{Top: 2, Bottom: 2, Left: 2, Right: 2},
		SelectionMode:     interaction.Auto,
		TooltipTimeout:    1500 * time.Millisecond,
		StartingRotation:  0,
		InnerRadius:       0,
		MarkerRadius:      2,
		AnimationDuration: 400 * time.Millisecond,
		AnimationInterval: 40 * time.Millisecond,
	}
}
