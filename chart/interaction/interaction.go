// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// interaction resolves pointer movement over the last committed frame into hover notifications and tooltip
// placement.
package interaction

import (
	"slices"
	"strings"
	"time"

	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/check"
	"github.com/Lexer747/acci-chart/utils/errors"
)

type SelectionMode int

const (
	// Auto picks the single point the pointer is closest to.
	Auto SelectionMode = iota
	// Exact keeps every point under the pointer.
	Exact
)

func (m SelectionMode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

func ParseSelectionMode(s string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return Auto, nil
	case "exact":
		return Exact, nil
	default:
		return Auto, errors.Errorf("unknown selection mode %q, expected one of [auto, exact]", s)
	}
}

type State int

const (
	Idle State = iota
	Hovering
	// Leaving means the pointer left every point and the tooltip is waiting on the dwell timer.
	Leaving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Hovering:
		return "Hovering"
	case Leaving:
		return "Leaving"
	default:
		return "Unknown State"
	}
}

type Config struct {
	View      view.View
	Scheduler eventloop.Scheduler
	// Timeout is how long the tooltip lingers after the pointer leaves every point.
	Timeout time.Duration
	// Anchor places the tooltip for the representative point, false means the point cannot be anchored and the
	// tooltip is left where it is.
	Anchor func(*data.RenderedPoint) (geom.Point, bool)

	OnEnter func([]*data.RenderedPoint)
	OnLeave func([]*data.RenderedPoint)
}

// Resolver is the hover state machine. Like the rest of a chart it must only be used from the chart's event
// loop, the dwell timer is scheduled on that same loop.
type Resolver struct {
	cfg Config

	state   State
	hovered data.HoverSet

	anchor      geom.Point
	anchorValid bool
	timer       eventloop.Timer
}

func NewResolver(cfg Config) *Resolver {
	check.Check(cfg.View != nil, "resolver needs a view")
	check.Check(cfg.Scheduler != nil, "resolver needs a scheduler")
	check.Check(cfg.Anchor != nil, "resolver needs an anchor func")
	return &Resolver{cfg: cfg, hovered: data.NewHoverSet()}
}

func (r *Resolver) State() State { return r.state }

// SetTimeout changes the dwell time of the next timer, a pending one keeps its deadline.
func (r *Resolver) SetTimeout(d time.Duration) { r.cfg.Timeout = d }

// Hovered is the hit set of the last pointer event.
func (r *Resolver) Hovered() data.HoverSet { return r.hovered }

// Anchor is the last position the tooltip was moved to, false if the tooltip is not showing.
func (r *Resolver) Anchor() (geom.Point, bool) { return r.anchor, r.anchorValid }

// PointerMoved resolves location against points, the points of the last committed frame.
func (r *Resolver) PointerMoved(points []*data.RenderedPoint, location geom.Point, mode SelectionMode) {
	r.stopTimer()

	hits := Query(points, location, mode)
	previous := r.hovered
	current := data.NewHoverSet(hits...)
	r.hovered = current

	if len(hits) > 0 {
		r.state = Hovering
		r.show(hits)
		r.notify(r.cfg.OnEnter, hits)
	} else if r.state != Idle {
		r.state = Leaving
		r.startTimer()
	}
	r.notify(r.cfg.OnLeave, previous.Difference(current))
}

// Rebind re-keys the hovered set against points, the points of a newly committed frame, so that later
// notifications carry the new frame's points. Hovered keys missing from points are left and if none remain
// the tooltip starts its dwell timer. A showing tooltip is refreshed and re-anchored.
func (r *Resolver) Rebind(points []*data.RenderedPoint) {
	if r.hovered.Empty() {
		return
	}
	var kept []*data.RenderedPoint
	for _, p := range points {
		if r.hovered.Has(p.Key) {
			kept = append(kept, p)
		}
	}
	slices.SortStableFunc(kept, compareOrder)
	previous := r.hovered
	current := data.NewHoverSet(kept...)
	r.hovered = current

	switch {
	case len(kept) > 0 && r.state == Hovering:
		r.show(kept)
	case len(kept) == 0 && r.state == Hovering:
		r.state = Leaving
		r.startTimer()
	}
	r.notify(r.cfg.OnLeave, previous.Difference(current))
}

// Reset is used when the chart clears its content, any hovered point is left and the tooltip hidden
// immediately.
func (r *Resolver) Reset() {
	r.stopTimer()
	previous := r.hovered
	r.hovered = data.NewHoverSet()
	if r.state != Idle {
		r.hide()
	}
	r.notify(r.cfg.OnLeave, previous.Points())
}

func (r *Resolver) show(hits []*data.RenderedPoint) {
	tooltip := r.cfg.View.DataTooltip()
	tooltip.ShowAndMeasure(hits, r.cfg.View)
	if anchor, ok := r.cfg.Anchor(hits[0]); ok && (!r.anchorValid || anchor != r.anchor) {
		tooltip.Move(anchor, r.cfg.View)
		r.anchor = anchor
		r.anchorValid = true
	}
}

func (r *Resolver) startTimer() {
	var t eventloop.Timer
	t = r.cfg.Scheduler.AfterFunc(r.cfg.Timeout, func() {
		if r.timer != t || r.state != Leaving {
			return
		}
		r.timer = nil
		r.hide()
	})
	r.timer = t
}

func (r *Resolver) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Resolver) hide() {
	r.cfg.View.DataTooltip().Hide(r.cfg.View)
	r.anchorValid = false
	r.anchor = geom.Point{}
	r.state = Idle
}

func (r *Resolver) notify(f func([]*data.RenderedPoint), points []*data.RenderedPoint) {
	if f == nil || len(points) == 0 {
		return
	}
	f(points)
}

// Query is the hit test of a single pointer location, ordered by series then point index. In [Auto] mode at
// most one point is returned: the one whose area centre is nearest the pointer, ties going to the earlier
// series and then the earlier point. A non finite location hits nothing.
func Query(points []*data.RenderedPoint, location geom.Point, mode SelectionMode) []*data.RenderedPoint {
	if !location.IsFinite() {
		return nil
	}
	var hits []*data.RenderedPoint
	for _, p := range points {
		if p.Area != nil && p.Area.Contains(location) {
			hits = append(hits, p)
		}
	}
	slices.SortStableFunc(hits, compareOrder)
	if mode != Auto || len(hits) <= 1 {
		return hits
	}
	best := hits[0]
	bestDistance := best.Area.Centre().Distance(location)
	for _, p := range hits[1:] {
		if d := p.Area.Centre().Distance(location); d < bestDistance {
			best, bestDistance = p, d
		}
	}
	return []*data.RenderedPoint{best}
}

func compareOrder(a, b *data.RenderedPoint) int {
	if a.SeriesIndex != b.SeriesIndex {
		return a.SeriesIndex - b.SeriesIndex
	}
	return a.Key.Index - b.Key.Index
}
