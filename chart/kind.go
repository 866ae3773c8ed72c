// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"strings"

	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/transform"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/errors"
)

// Kind is the layout of a chart. It decides which series may be drawn, how data maps to pixels each frame and
// where the tooltip of a point is anchored.
type Kind interface {
	Name() string
	// Requires is the capability every series must have to be drawn by this kind.
	Requires() data.Capability
	// Transform builds the mapping for one frame from the draw area and the bounds of every visible series in
	// order.
	Transform(area geom.Rect, visible []data.Bounds, s Settings) transform.Transform
	Anchor(p *data.RenderedPoint, s Settings) (geom.Point, bool)
}

var (
	Pie       Kind = pieKind{}
	Cartesian Kind = cartesianKind{}
)

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pie", "doughnut":
		return Pie, nil
	case "cartesian", "line":
		return Cartesian, nil
	default:
		return nil, errors.Errorf("unknown chart kind %q, expected one of [pie, cartesian]", s)
	}
}

type pieKind struct{}

func (pieKind) Name() string              { return "pie" }
func (pieKind) Requires() data.Capability { return data.Radial }

// Transform of a pie maps the Angle plane over the total of every visible series, and the Radius plane over
// one ring per series: series i of n is drawn between radius data values i and i+1.
func (pieKind) Transform(area geom.Rect, visible []data.Bounds, s Settings) transform.Transform {
	total := 0.0
	for _, b := range visible {
		total += b.Total
	}
	outer := min(area.Size.Width, area.Size.Height) / 2
	return &transform.Polar{
		Total:       total,
		RadiusMin:   0,
		RadiusMax:   float64(max(len(visible), 1)),
		InnerRadius: min(s.InnerRadius, outer),
		OuterRadius: outer,
	}
}

func (pieKind) Anchor(p *data.RenderedPoint, s Settings) (geom.Point, bool) {
	vm, ok := p.ViewModel.(*data.PieViewModel)
	if !ok {
		return geom.Point{}, false
	}
	angle := s.StartingRotation + vm.To.Rotation + vm.To.Wedge*.5
	return geom.Polar(vm.ChartCenter, vm.To.OuterRadius, angle), true
}

type cartesianKind struct{}

func (cartesianKind) Name() string              { return "cartesian" }
func (cartesianKind) Requires() data.Capability { return data.CartesianCapable }

// Transform of a cartesian chart fits the union of every visible series' bounds, an empty chart is plotted
// over the unit square.
func (cartesianKind) Transform(area geom.Rect, visible []data.Bounds, _ Settings) transform.Transform {
	b := data.Bounds{Empty: true}
	for _, v := range visible {
		b = b.Union(v)
	}
	if b.Empty {
		b = data.Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}
	}
	return transform.NewCartesian(area, b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Anchor of a cartesian point sits on top of its marker.
func (cartesianKind) Anchor(p *data.RenderedPoint, _ Settings) (geom.Point, bool) {
	vm, ok := p.ViewModel.(*data.CartesianViewModel)
	if !ok {
		return geom.Point{}, false
	}
	return geom.Point{X: vm.To.X, Y: vm.To.Y - vm.Radius}, true
}
