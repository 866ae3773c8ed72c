// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// data holds the per frame values a chart produces: rendered points, their hit areas and view models, and the
// keyed hover set interaction is resolved against.
package data

import (
	"fmt"
	"math"
	"strings"

	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/geom"
)

// Capability is a bitset of the chart kinds a series can be drawn by.
type Capability uint8

const (
	CartesianCapable Capability = 1 << iota
	Radial
)

// Has is true if every bit of want is set in c.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	if c == 0 {
		return "None"
	}
	var b strings.Builder
	add := func(s string) {
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(s)
	}
	if c.Has(CartesianCapable) {
		add("Cartesian")
	}
	if c.Has(Radial) {
		add("Radial")
	}
	if rest := c &^ (CartesianCapable | Radial); rest != 0 {
		add(fmt.Sprintf("Unknown(%d)", uint8(rest)))
	}
	return b.String()
}

// PointKey identifies a data point across frames, the [RenderedPoint] for it is recreated every update.
type PointKey struct {
	Series string
	Index  int
}

func (k PointKey) String() string { return fmt.Sprintf("%s[%d]", k.Series, k.Index) }

// Area is the pixel space hit region of a rendered point.
type Area interface {
	Contains(geom.Point) bool
	// Centre is used to pick the closest point when several overlap.
	Centre() geom.Point
}

var _ Area = geom.Rect{}

// WedgeArea is the hit region of a pie slice. Angles are in degrees, StartingRotation is the chart wide offset
// and Rotation the slice's own offset from it.
type WedgeArea struct {
	Origin           geom.Point
	StartingRotation float64
	Rotation         float64
	Wedge            float64
	InnerRadius      float64
	OuterRadius      float64
}

var _ Area = WedgeArea{}

func (w WedgeArea) Contains(p geom.Point) bool {
	if !p.IsFinite() || w.Wedge <= 0 {
		return false
	}
	angle, r := geom.Angle(w.Origin, p)
	if r < w.InnerRadius || r > w.OuterRadius {
		return false
	}
	if w.Wedge >= 360 {
		return true
	}
	rel := geom.NormaliseAngle(angle - w.StartingRotation - w.Rotation)
	return rel <= w.Wedge
}

func (w WedgeArea) Centre() geom.Point {
	a := w.StartingRotation + w.Rotation + w.Wedge/2
	return geom.Polar(w.Origin, (w.InnerRadius+w.OuterRadius)/2, a)
}

// ViewModel is the animatable geometry of a rendered point, either [*PieViewModel] or [*CartesianViewModel].
type ViewModel interface {
	viewModel()
}

// PieGeometry is one snapshot of a wedge, Rotation and Wedge are in degrees.
type PieGeometry struct {
	Rotation    float64
	Wedge       float64
	InnerRadius float64
	OuterRadius float64
}

// Lerp interpolates from g towards to, t of 0 is g and 1 is to.
func (g PieGeometry) Lerp(to PieGeometry, t float64) PieGeometry {
	return PieGeometry{
		Rotation:    lerp(g.Rotation, to.Rotation, t),
		Wedge:       lerp(g.Wedge, to.Wedge, t),
		InnerRadius: lerp(g.InnerRadius, to.InnerRadius, t),
		OuterRadius: lerp(g.OuterRadius, to.OuterRadius, t),
	}
}

type PieViewModel struct {
	From, To    PieGeometry
	ChartCenter geom.Point
}

func (*PieViewModel) viewModel() {}

type CartesianViewModel struct {
	From, To geom.Point
	Radius   float64
}

func (*CartesianViewModel) viewModel() {}

// LerpPoint interpolates between two pixel positions.
func LerpPoint(from, to geom.Point, t float64) geom.Point {
	return geom.Point{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// RenderedPoint is everything a chart knows about one data point for one frame.
type RenderedPoint struct {
	Key PointKey
	// SeriesIndex is the declaration order of the owning series, used for ordering hits.
	SeriesIndex int
	Label       string
	Value       float64
	ViewModel   ViewModel
	Area        Area
	// Resources are the handles this point keeps alive, see [resources.Tracker.Collect].
	Resources []resources.ID
}

func (p *RenderedPoint) String() string {
	return fmt.Sprintf("%s=%s", p.Key, FormatValue(p.Value))
}

// FormatValue prints whole numbers without a fraction and anything else to 4 significant figures.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.4g", v)
}

// Frame is the committed result of one successful update.
type Frame struct {
	ID     uint64
	Points []*RenderedPoint
}

// Referenced is every resource some point in this frame keeps alive.
func (f *Frame) Referenced() resources.Set {
	s := resources.NewSet()
	if f == nil {
		return s
	}
	for _, p := range f.Points {
		s.Add(p.Resources...)
	}
	return s
}

// Bounds summarises the values of a series, charts combine them to build the frame transform.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	// Total is the sum of the non negative values, the radial share of a series.
	Total float64
	Empty bool
}

// Union merges b into a, an empty side is ignored.
func (a Bounds) Union(b Bounds) Bounds {
	switch {
	case b.Empty:
		return a
	case a.Empty:
		return b
	}
	return Bounds{
		MinX:  min(a.MinX, b.MinX),
		MaxX:  max(a.MaxX, b.MaxX),
		MinY:  min(a.MinY, b.MinY),
		MaxY:  max(a.MaxY, b.MaxY),
		Total: a.Total + b.Total,
	}
}
