// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package series

import (
	"slices"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/chart/transform"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/check"
	"github.com/Lexer747/acci-chart/utils/errors"
)

// Line is a cartesian series of (x, y) points, each drawn as a marker. Points with a non finite coordinate are
// skipped.
type Line struct {
	name   string
	points []geom.Point
	labels []string
	hidden bool

	markers map[int]*markerState
}

var _ chart.Series = (*Line)(nil)

type markerState struct {
	id      resources.ID
	shape   view.Marker
	current geom.Point
}

func NewLine(name string, points ...geom.Point) *Line {
	return &Line{
		name:    name,
		points:  slices.Clone(points),
		markers: map[int]*markerState{},
	}
}

func (l *Line) Name() string                   { return l.name }
func (l *Line) IsVisible() bool                { return !l.hidden }
func (l *Line) SetVisible(visible bool)        { l.hidden = !visible }
func (l *Line) Capabilities() data.Capability  { return data.CartesianCapable }
func (l *Line) Points() []geom.Point           { return slices.Clone(l.points) }
func (l *Line) SetPoints(points ...geom.Point) { l.points = slices.Clone(points) }
func (l *Line) SetLabels(labels ...string)     { l.labels = slices.Clone(labels) }

func (l *Line) Bounds() data.Bounds {
	b := data.Bounds{Empty: true}
	for _, p := range l.points {
		if !p.IsFinite() {
			continue
		}
		b = b.Union(data.Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y})
	}
	return b
}

func (l *Line) UpdateStarted(v view.View) {
	if b, ok := v.(view.Batcher); ok {
		b.BeginBatch(l.name)
	}
}

func (l *Line) UpdateFinished(v view.View) {
	if b, ok := v.(view.Batcher); ok {
		b.EndBatch(l.name)
	}
}

func (l *Line) UpdateView(m *chart.Model, ctx chart.UpdateContext) ([]*data.RenderedPoint, error) {
	tr := m.Transform()
	check.Check(tr != nil, "line updated without a transform")
	radius := m.Settings().MarkerRadius
	points := make([]*data.RenderedPoint, 0, len(l.points))
	for i, p := range l.points {
		if !p.IsFinite() {
			delete(l.markers, i)
			continue
		}
		x, err := tr.ToPixel(p.X, transform.X)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		y, err := tr.ToPixel(p.Y, transform.Y)
		if err != nil {
			return nil, errors.Wrapf(err, "point %d", i)
		}
		to := geom.Point{X: x, Y: y}
		state := l.marker(m, i, to)
		from := state.current
		if ctx.Restart {
			from = to
		}
		animate(ctx.Animator, &markerTrack{state: state, from: from, to: to, radius: radius})
		points = append(points, &data.RenderedPoint{
			Key:         data.PointKey{Series: l.name, Index: i},
			SeriesIndex: ctx.SeriesIndex,
			Label:       label(l.labels, i),
			Value:       p.Y,
			ViewModel:   &data.CartesianViewModel{From: from, To: to, Radius: radius},
			Area:        geom.Square(to, radius),
			Resources:   []resources.ID{state.id},
		})
	}
	for i := range l.markers {
		if i >= len(l.points) {
			delete(l.markers, i)
		}
	}
	return points, nil
}

// marker reuses the shape of point i if the chart still holds it, a new marker appears in place.
func (l *Line) marker(m *chart.Model, i int, to geom.Point) *markerState {
	if s, ok := l.markers[i]; ok {
		if _, live := m.Resources().Get(s.id); live {
			return s
		}
	}
	shape := m.View().NewMarker()
	s := &markerState{id: m.Resources().Allocate(shape), shape: shape, current: to}
	l.markers[i] = s
	return s
}

type markerTrack struct {
	state    *markerState
	from, to geom.Point
	radius   float64
}

func (t *markerTrack) Step(progress float64) {
	p := data.LerpPoint(t.from, t.to, progress)
	if progress >= 1 {
		p = t.to
	}
	t.state.current = p
	t.state.shape.Set(p, t.radius)
}
