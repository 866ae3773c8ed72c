// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// animation eases rendered points from their previous geometry to their new one. It is driven entirely by the
// chart's update notifications and ticks on the chart's [eventloop.Scheduler].
package animation

import (
	"time"

	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/utils/numeric"
)

// Track is one animated value, Step is called with eased progress in [0, 1] and always finishes with exactly 1.
type Track interface {
	Step(progress float64)
}

// TrackFunc adapts a plain func to a [Track].
type TrackFunc func(progress float64)

func (f TrackFunc) Step(progress float64) { f(progress) }

type Animator struct {
	scheduler eventloop.Scheduler
	steps     int
	interval  time.Duration
	onStep    func()

	pending     []Track
	running     []Track
	interrupted []Track
	step        int
	timer       eventloop.Timer
}

// New creates an animator which runs every animation over duration in ticks of interval. A nil scheduler or a
// zero duration disables animation, tracks jump straight to their end state.
func New(scheduler eventloop.Scheduler, duration, interval time.Duration, onStep func()) *Animator {
	steps := 0
	if scheduler != nil && duration > 0 {
		if interval <= 0 {
			interval = duration
		}
		steps = max(int(duration/interval), 1)
	}
	return &Animator{
		scheduler: scheduler,
		steps:     steps,
		interval:  interval,
		onStep:    onStep,
	}
}

// Animate queues t to run once the current update finishes.
func (a *Animator) Animate(t Track) {
	if a.steps == 0 {
		t.Step(1)
		return
	}
	a.pending = append(a.pending, t)
}

// UpdateStarted stops whatever is running, tracks are left at their current progress. The new frame continues
// from wherever its shapes were left, or snaps them on a restart.
func (a *Animator) UpdateStarted() {
	a.stop()
	a.interrupted = append(a.interrupted, a.running...)
	a.running = nil
	a.pending = nil
}

// UpdateFinished starts every track queued during the update, tracks interrupted by the update were superseded
// by them.
func (a *Animator) UpdateFinished() {
	a.interrupted = nil
	if len(a.pending) == 0 {
		return
	}
	a.running, a.pending = a.pending, nil
	a.step = 0
	a.tick()
}

// Cancel drops queued tracks without running them, used when an update was aborted. Tracks the aborted update
// interrupted still belong to the committed frame so they jump to their end state.
func (a *Animator) Cancel() {
	a.pending = nil
	if len(a.interrupted) == 0 {
		return
	}
	for _, t := range a.interrupted {
		t.Step(1)
	}
	a.interrupted = nil
	if a.onStep != nil {
		a.onStep()
	}
}

// Running is true while any track has not reached its end.
func (a *Animator) Running() bool { return len(a.running) > 0 }

func (a *Animator) stop() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Animator) tick() {
	a.step++
	progress := EaseOutCubic(numeric.Clamp(float64(a.step)/float64(a.steps), 0, 1))
	if a.step >= a.steps {
		progress = 1
	}
	for _, t := range a.running {
		t.Step(progress)
	}
	if a.onStep != nil {
		a.onStep()
	}
	if a.step >= a.steps {
		a.running = nil
		a.timer = nil
		return
	}
	a.timer = a.scheduler.AfterFunc(a.interval, a.tick)
}

// EaseOutCubic starts fast and decelerates into t = 1.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}
