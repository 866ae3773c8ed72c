// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th holds recording fakes of the chart's collaborators, for use in tests only.
package th

import (
	"slices"
	"time"

	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/geom"
)

// FakeView records everything the chart asks of it.
type FakeView struct {
	Size      geom.Size
	DrawAreas []geom.Rect
	Tooltip   *FakeTooltip
	Wedges    []*FakeWedge
	Markers   []*FakeMarker
	// Batches is the "begin:name" / "end:name" sequence of [view.Batcher] calls.
	Batches     []string
	Invalidated int
}

var (
	_ view.View        = (*FakeView)(nil)
	_ view.Batcher     = (*FakeView)(nil)
	_ view.Invalidator = (*FakeView)(nil)
)

func NewFakeView(width, height float64) *FakeView {
	return &FakeView{
		Size:    geom.Size{Width: width, Height: height},
		Tooltip: &FakeTooltip{},
	}
}

func (v *FakeView) ControlSize() geom.Size    { return v.Size }
func (v *FakeView) SetDrawArea(r geom.Rect)   { v.DrawAreas = append(v.DrawAreas, r) }
func (v *FakeView) DataTooltip() view.Tooltip { return v.Tooltip }
func (v *FakeView) BeginBatch(series string)  { v.Batches = append(v.Batches, "begin:"+series) }
func (v *FakeView) EndBatch(series string)    { v.Batches = append(v.Batches, "end:"+series) }
func (v *FakeView) Invalidate()               { v.Invalidated++ }

func (v *FakeView) NewWedge() view.Wedge {
	w := &FakeWedge{}
	v.Wedges = append(v.Wedges, w)
	return w
}

func (v *FakeView) NewMarker() view.Marker {
	m := &FakeMarker{}
	v.Markers = append(v.Markers, m)
	return m
}

// LiveShapes counts the shapes which have not been released.
func (v *FakeView) LiveShapes() int {
	n := 0
	for _, w := range v.Wedges {
		if w.Released == 0 {
			n++
		}
	}
	for _, m := range v.Markers {
		if m.Released == 0 {
			n++
		}
	}
	return n
}

type FakeWedge struct {
	Centre           geom.Point
	StartingRotation float64
	Geometry         data.PieGeometry
	Sets             int
	Released         int
}

func (w *FakeWedge) Set(centre geom.Point, startingRotation float64, g data.PieGeometry) {
	w.Centre, w.StartingRotation, w.Geometry = centre, startingRotation, g
	w.Sets++
}

func (w *FakeWedge) Release() { w.Released++ }

type FakeMarker struct {
	Centre   geom.Point
	Radius   float64
	Sets     int
	Released int
}

func (m *FakeMarker) Set(centre geom.Point, radius float64) {
	m.Centre, m.Radius = centre, radius
	m.Sets++
}

func (m *FakeMarker) Release() { m.Released++ }

// FakeTooltip records the calls made to it.
type FakeTooltip struct {
	Shown   [][]data.PointKey
	Moves   []geom.Point
	Hides   int
	Visible bool
	Measure geom.Size
}

func (t *FakeTooltip) ShowAndMeasure(points []*data.RenderedPoint, _ view.View) geom.Size {
	keys := make([]data.PointKey, len(points))
	for i, p := range points {
		keys[i] = p.Key
	}
	t.Shown = append(t.Shown, keys)
	t.Visible = true
	return t.Measure
}

func (t *FakeTooltip) Move(to geom.Point, _ view.View) { t.Moves = append(t.Moves, to) }

func (t *FakeTooltip) Hide(_ view.View) {
	t.Hides++
	t.Visible = false
}

// FakeScheduler never fires on its own, tests advance it with [FakeScheduler.Advance].
type FakeScheduler struct {
	now    time.Duration
	timers []*FakeTimer
}

var _ eventloop.Scheduler = (*FakeScheduler)(nil)

type FakeTimer struct {
	At      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *FakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) eventloop.Timer {
	t := &FakeTimer{At: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Pending is the number of timers which have neither fired nor been stopped.
func (s *FakeScheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves time forward by d firing every due timer in deadline order, timers scheduled by a callback
// fire too if they fall due within d.
func (s *FakeScheduler) Advance(d time.Duration) int {
	end := s.now + d
	fired := 0
	for {
		due := s.nextDue(end)
		if due == nil {
			break
		}
		s.now = due.At
		due.fired = true
		due.f()
		fired++
	}
	s.now = end
	return fired
}

func (s *FakeScheduler) nextDue(end time.Duration) *FakeTimer {
	s.timers = slices.DeleteFunc(s.timers, func(t *FakeTimer) bool { return t.stopped || t.fired })
	var next *FakeTimer
	for _, t := range s.timers {
		if t.At <= end && (next == nil || t.At < next.At) {
			next = t
		}
	}
	return next
}
