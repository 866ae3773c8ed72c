// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// series holds the concrete series a chart can draw.
package series

import (
	"slices"

	"github.com/Lexer747/acci-chart/chart"
	"github.com/Lexer747/acci-chart/chart/animation"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/chart/transform"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/check"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/utils/numeric"
)

// Pie is a radial series, each value is one wedge. When several pie series are visible each is drawn as its own
// ring, the first visible series innermost.
type Pie struct {
	name   string
	values []float64
	labels []string
	hidden bool

	wedges map[int]*wedgeState
}

var _ chart.Series = (*Pie)(nil)

type wedgeState struct {
	id      resources.ID
	shape   view.Wedge
	current data.PieGeometry
}

func NewPie(name string, values ...float64) *Pie {
	return &Pie{
		name:   name,
		values: slices.Clone(values),
		wedges: map[int]*wedgeState{},
	}
}

func (p *Pie) Name() string                  { return p.name }
func (p *Pie) IsVisible() bool               { return !p.hidden }
func (p *Pie) SetVisible(visible bool)       { p.hidden = !visible }
func (p *Pie) Capabilities() data.Capability { return data.Radial }
func (p *Pie) Values() []float64             { return slices.Clone(p.values) }

// SetValues replaces the data, negative values are drawn as empty wedges.
func (p *Pie) SetValues(values ...float64) { p.values = slices.Clone(values) }

// SetLabels names the values in order, values without a label are shown by their index.
func (p *Pie) SetLabels(labels ...string) { p.labels = slices.Clone(labels) }

func (p *Pie) Bounds() data.Bounds {
	b := data.Bounds{Empty: true}
	for i, v := range p.values {
		if !numeric.IsFinite(v) {
			continue
		}
		x := float64(i)
		b = b.Union(data.Bounds{MinX: x, MaxX: x, MinY: v, MaxY: v, Total: wedgeValue(v)})
	}
	return b
}

func (p *Pie) UpdateStarted(v view.View) {
	if b, ok := v.(view.Batcher); ok {
		b.BeginBatch(p.name)
	}
}

func (p *Pie) UpdateFinished(v view.View) {
	if b, ok := v.(view.Batcher); ok {
		b.EndBatch(p.name)
	}
}

func (p *Pie) UpdateView(m *chart.Model, ctx chart.UpdateContext) ([]*data.RenderedPoint, error) {
	tr := m.Transform()
	check.Check(tr != nil, "pie updated without a transform")
	inner, err := tr.ToPixel(float64(ctx.Layer), transform.Radius)
	if err != nil {
		return nil, err
	}
	outer, err := tr.ToPixel(float64(ctx.Layer+1), transform.Radius)
	if err != nil {
		return nil, err
	}
	// Every ring is a full circle so the angle is scaled by this series' share of the chart total.
	chartTotal, err := tr.ToData(360, transform.Angle)
	if err != nil {
		return nil, err
	}
	share := 0.0
	if chartTotal != 0 {
		share = p.Bounds().Total / chartTotal
	}

	settings := m.Settings()
	centre := m.DrawArea().Centre()
	points := make([]*data.RenderedPoint, 0, len(p.values))
	rotation := 0.0
	for i, v := range p.values {
		wedge, err := tr.ToPixel(wedgeValue(v), transform.Angle, share)
		if err != nil {
			return nil, errors.Wrapf(err, "wedge %d", i)
		}
		to := data.PieGeometry{Rotation: rotation, Wedge: wedge, InnerRadius: inner, OuterRadius: outer}
		rotation += wedge

		state := p.wedge(m, i, to)
		from := state.current
		if ctx.Restart {
			from = to
		}
		animate(ctx.Animator, &wedgeTrack{
			state:            state,
			from:             from,
			to:               to,
			centre:           centre,
			startingRotation: settings.StartingRotation,
		})
		points = append(points, &data.RenderedPoint{
			Key:         data.PointKey{Series: p.name, Index: i},
			SeriesIndex: ctx.SeriesIndex,
			Label:       label(p.labels, i),
			Value:       v,
			ViewModel:   &data.PieViewModel{From: from, To: to, ChartCenter: centre},
			Area: data.WedgeArea{
				Origin:           centre,
				StartingRotation: settings.StartingRotation,
				Rotation:         to.Rotation,
				Wedge:            to.Wedge,
				InnerRadius:      to.InnerRadius,
				OuterRadius:      to.OuterRadius,
			},
			Resources: []resources.ID{state.id},
		})
	}
	for i := range p.wedges {
		if i >= len(p.values) {
			delete(p.wedges, i)
		}
	}
	return points, nil
}

// wedge reuses the shape of value i if the chart still holds it, a new shape grows out from nothing at its
// target rotation.
func (p *Pie) wedge(m *chart.Model, i int, to data.PieGeometry) *wedgeState {
	if s, ok := p.wedges[i]; ok {
		if _, live := m.Resources().Get(s.id); live {
			return s
		}
	}
	shape := m.View().NewWedge()
	s := &wedgeState{
		id:      m.Resources().Allocate(shape),
		shape:   shape,
		current: data.PieGeometry{Rotation: to.Rotation, InnerRadius: to.InnerRadius, OuterRadius: to.InnerRadius},
	}
	p.wedges[i] = s
	return s
}

type wedgeTrack struct {
	state            *wedgeState
	from, to         data.PieGeometry
	centre           geom.Point
	startingRotation float64
}

func (t *wedgeTrack) Step(progress float64) {
	g := t.from.Lerp(t.to, progress)
	if progress >= 1 {
		g = t.to
	}
	t.state.current = g
	t.state.shape.Set(t.centre, t.startingRotation, g)
}

func wedgeValue(v float64) float64 {
	if v < 0 || !numeric.IsFinite(v) {
		return 0
	}
	return v
}

func animate(a *animation.Animator, t animation.Track) {
	if a == nil {
		t.Step(1)
		return
	}
	a.Animate(t)
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}
