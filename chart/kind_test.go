// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart_test

import (
	"testing"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/transform"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/utils/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]chart.Kind{"pie": chart.Pie, " Doughnut": chart.Pie, "cartesian": chart.Cartesian, "LINE": chart.Cartesian} {
		got, err := chart.ParseKind(in)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(want.Name(), got.Name()))
	}
	_, err := chart.ParseKind("radar")
	assert.Check(t, is.ErrorContains(err, "radar"))
}

func TestPieAnchor(t *testing.T) {
	t.Parallel()
	p := &data.RenderedPoint{ViewModel: &data.PieViewModel{
		To:          data.PieGeometry{Rotation: 0, Wedge: 90, OuterRadius: 50},
		ChartCenter: geom.Point{X: 100, Y: 100},
	}}
	s := chart.DefaultSettings()
	got, ok := chart.Pie.Anchor(p, s)
	assert.Assert(t, ok)
	th.AssertPointEqual(t, geom.Point{X: 135.4, Y: 135.4}, got, 4)

	s.StartingRotation = 180
	got, ok = chart.Pie.Anchor(p, s)
	assert.Assert(t, ok)
	th.AssertPointEqual(t, geom.Point{X: 64.64466, Y: 64.64466}, got, 7)

	_, ok = chart.Pie.Anchor(&data.RenderedPoint{ViewModel: &data.CartesianViewModel{}}, s)
	assert.Check(t, !ok)
	_, ok = chart.Cartesian.Anchor(p, s)
	assert.Check(t, !ok)
}

func TestKindTransforms(t *testing.T) {
	t.Parallel()
	area := geom.Rect{Size: geom.Size{Width: 300, Height: 100}}
	s := chart.DefaultSettings()
	s.InnerRadius = 500

	pie := chart.Pie.Transform(area, []data.Bounds{{Total: 3}, {Total: 5}}, s)
	assert.Check(t, pie.Supports(transform.Angle))
	assert.Check(t, !pie.Supports(transform.X))
	total, err := pie.ToData(360, transform.Angle)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(8.0, total))
	outer, err := pie.ToPixel(2, transform.Radius)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(50.0, outer))
	inner, err := pie.ToPixel(0, transform.Radius)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(50.0, inner), "inner radius is clamped to the outer")

	empty := chart.Cartesian.Transform(area, nil, s)
	x, err := empty.ToPixel(1, transform.X)
	assert.NilError(t, err)
	assert.Check(t, is.Equal(300.0, x))
	_, err = empty.ToPixel(1, transform.Radius)
	assert.Check(t, errors.Is(err, transform.ErrUnsupported))
}

func TestPaddingApply(t *testing.T) {
	t.Parallel()
	p := chart.Padding{Top: 1, Bottom: 2, Left: 3, Right: 4}
	got := p.Apply(geom.Size{Width: 10, Height: 10})
	assert.Check(t, is.DeepEqual(geom.Rect{Origin: geom.Point{X: 3, Y: 1}, Size: geom.Size{Width: 3, Height: 7}}, got))
	assert.Check(t, p.Apply(geom.Size{Width: 7, Height: 10}).Degenerate())
}
