// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// view is the boundary between the chart core and whatever actually draws it. The core never draws, it only
// asks a [View] for shapes and positions them.
package view

import (
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/geom"
)

type View interface {
	// ControlSize is the full pixel size of the control the chart is hosted in.
	ControlSize() geom.Size
	// SetDrawArea is called once per non degenerate update with the padded area the chart will draw into.
	SetDrawArea(geom.Rect)
	DataTooltip() Tooltip
	NewWedge() Wedge
	NewMarker() Marker
}

type Tooltip interface {
	// ShowAndMeasure makes the tooltip visible with the content for points and returns its size.
	ShowAndMeasure(points []*data.RenderedPoint, v View) geom.Size
	Move(to geom.Point, v View)
	Hide(v View)
}

// Wedge is a pie slice shape owned by the view, centre and startingRotation are shared by every slice of a
// chart.
type Wedge interface {
	resources.Resource
	Set(centre geom.Point, startingRotation float64, g data.PieGeometry)
}

// Marker is a point shape of a cartesian series.
type Marker interface {
	resources.Resource
	Set(centre geom.Point, radius float64)
}

// Batcher is optionally implemented by views which can group all the shape changes of one series.
type Batcher interface {
	BeginBatch(series string)
	EndBatch(series string)
}

// Invalidator is optionally implemented by views which need to be told that an animation step moved shapes.
type Invalidator interface {
	Invalidate()
}
