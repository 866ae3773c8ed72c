// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"github.com/Lexer747/acci-chart/chart/animation"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/view"
)

// Series is one set of data drawn by a chart. Every frame a visible series is driven through UpdateStarted,
// UpdateView and UpdateFinished in that order, UpdateFinished is called even when UpdateView fails.
type Series interface {
	// Name identifies the series, it must be unique within a chart.
	Name() string
	IsVisible() bool
	Capabilities() data.Capability
	Bounds() data.Bounds

	UpdateStarted(v view.View)
	// UpdateView rebuilds every point of the series for this frame. Shapes are allocated through
	// [Model.Resources] and must be listed in the returned points' Resources or they are released.
	UpdateView(m *Model, ctx UpdateContext) ([]*data.RenderedPoint, error)
	UpdateFinished(v view.View)
}

// UpdateContext is what a series needs to know about the frame it is drawing.
type UpdateContext struct {
	Frame uint64
	// Restart means in flight transitions are discarded, shapes jump straight to the new geometry.
	Restart bool
	// SeriesIndex is the position of the series in the chart's declaration order.
	SeriesIndex int
	// Layer is the position of the series amongst the visible series, and Layers how many are visible.
	Layer, Layers int
	Animator      *animation.Animator
}
