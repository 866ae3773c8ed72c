// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// chart is the update and interaction core of a chart: a [Model] turns its [Series] into rendered points once
// per update, keeps the view's shapes in step with them and resolves pointer movement over the last frame.
package chart

import (
	"context"
	"slices"

	"github.com/Lexer747/acci-chart/chart/animation"
	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/interaction"
	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/chart/transform"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/charmbracelet/log"
)

type Config struct {
	View     view.View
	Kind     Kind
	Settings Settings
	// Scheduler runs the tooltip dwell timer and animation ticks, it must run callbacks on the same thread the
	// model is used from.
	Scheduler eventloop.Scheduler
	Logger    *log.Logger
}

// UpdateEvent is passed to the update observers, Started and Finished events of one update share a Frame.
type UpdateEvent struct {
	Frame      uint64
	Restart    bool
	Degenerate bool
	// Err is set on the finished event of an aborted update.
	Err error
}

// Model owns the series of one chart and everything derived from them. It takes no locks: every method must
// be called from the chart's event loop.
type Model struct {
	view      view.View
	kind      Kind
	settings  Settings
	logger    *log.Logger
	scheduler eventloop.Scheduler
	tracker   *resources.Tracker
	resolver  *interaction.Resolver
	animator  *animation.Animator
	series    []Series
	restart   bool
	frameID   uint64
	frame     *data.Frame
	drawArea  geom.Rect
	transform transform.Transform

	onUpdateStarted  []func(UpdateEvent)
	onUpdateFinished []func(UpdateEvent)
	onEnter          []func([]*data.RenderedPoint)
	onLeave          []func([]*data.RenderedPoint)
}

func NewModel(cfg Config) (*Model, error) {
	if cfg.View == nil {
		return nil, errors.New("chart model needs a view")
	}
	if cfg.Kind == nil {
		return nil, errors.New("chart model needs a kind")
	}
	if cfg.Scheduler == nil {
		return nil, errors.New("chart model needs a scheduler")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("chart")
	}
	m := &Model{
		view:      cfg.View,
		kind:      cfg.Kind,
		settings:  cfg.Settings,
		logger:    logger,
		scheduler: cfg.Scheduler,
		tracker:   resources.NewTracker(logger.WithPrefix("resources")),
		frame:     &data.Frame{},
	}
	m.resolver = interaction.NewResolver(interaction.Config{
		View:      cfg.View,
		Scheduler: cfg.Scheduler,
		Timeout:   cfg.Settings.TooltipTimeout,
		Anchor:    func(p *data.RenderedPoint) (geom.Point, bool) { return m.kind.Anchor(p, m.settings) },
		OnEnter:   func(p []*data.RenderedPoint) { emit(m.onEnter, p) },
		OnLeave:   func(p []*data.RenderedPoint) { emit(m.onLeave, p) },
	})
	m.animator = m.newAnimator()
	return m, nil
}

func (m *Model) View() view.View               { return m.view }
func (m *Model) Kind() Kind                    { return m.kind }
func (m *Model) Settings() Settings            { return m.settings }
func (m *Model) Resources() *resources.Tracker { return m.tracker }
func (m *Model) HoverState() interaction.State { return m.resolver.State() }
func (m *Model) Hovered() data.HoverSet        { return m.resolver.Hovered() }

// TooltipAnchor is where the tooltip was last moved to, false when nothing is hovered.
func (m *Model) TooltipAnchor() (geom.Point, bool) { return m.resolver.Anchor() }

// DrawArea is the padded area of the last update, it may be degenerate.
func (m *Model) DrawArea() geom.Rect { return m.drawArea }

// Transform of the last non degenerate update, nil before the first one.
func (m *Model) Transform() transform.Transform { return m.transform }

// Frame is the last committed frame, an aborted update leaves the previous one in place.
func (m *Model) Frame() *data.Frame { return m.frame }

func (m *Model) Points() []*data.RenderedPoint { return m.frame.Points }

// Series returns a copy of the series in declaration order.
func (m *Model) Series() []Series { return slices.Clone(m.series) }

// AddSeries appends s, it will be drawn on top of every existing series. The next update is a restart.
func (m *Model) AddSeries(s Series) error {
	if m.indexOf(s.Name()) >= 0 {
		return errors.Errorf("chart already has a series named %q", s.Name())
	}
	m.series = append(m.series, s)
	m.restart = true
	return nil
}

// RemoveSeries reports whether a series called name was removed. The next update is a restart.
func (m *Model) RemoveSeries(name string) bool {
	i := m.indexOf(name)
	if i < 0 {
		return false
	}
	m.series = slices.Delete(m.series, i, i+1)
	m.restart = true
	return true
}

// SetSeries replaces every series. The next update is a restart.
func (m *Model) SetSeries(series ...Series) error {
	seen := map[string]struct{}{}
	for _, s := range series {
		if _, dup := seen[s.Name()]; dup {
			return errors.Errorf("chart already has a series named %q", s.Name())
		}
		seen[s.Name()] = struct{}{}
	}
	m.series = slices.Clone(series)
	m.restart = true
	return nil
}

// SetSettings takes effect on the next update, which is a restart.
func (m *Model) SetSettings(s Settings) {
	m.settings = s
	m.restart = true
	m.resolver.SetTimeout(s.TooltipTimeout)
	m.animator.UpdateStarted()
	m.animator.Cancel()
	m.animator = m.newAnimator()
}

func (m *Model) newAnimator() *animation.Animator {
	return animation.New(m.scheduler, m.settings.AnimationDuration, m.settings.AnimationInterval, m.invalidate)
}

func (m *Model) indexOf(name string) int {
	return slices.IndexFunc(m.series, func(s Series) bool { return s.Name() == name })
}

func (m *Model) OnUpdateStarted(f func(UpdateEvent)) {
	m.onUpdateStarted = append(m.onUpdateStarted, f)
}

func (m *Model) OnUpdateFinished(f func(UpdateEvent)) {
	m.onUpdateFinished = append(m.onUpdateFinished, f)
}

// OnDataPointerEnter is called with every hovered point on every pointer event that hits something.
func (m *Model) OnDataPointerEnter(f func([]*data.RenderedPoint)) { m.onEnter = append(m.onEnter, f) }

// OnDataPointerLeave is called with the points which were hovered by the previous event but not this one.
func (m *Model) OnDataPointerLeave(f func([]*data.RenderedPoint)) { m.onLeave = append(m.onLeave, f) }

// PointerMoved resolves a pointer event against the last committed frame.
func (m *Model) PointerMoved(location geom.Point) {
	m.resolver.PointerMoved(m.frame.Points, location, m.settings.SelectionMode)
}

// Update rebuilds the chart for the current view size and series. restart discards in flight transitions, it is
// implied by any structural change since the previous update. A degenerate draw area clears the chart and is not
// an error. On error the previous frame stays committed and anything allocated by the failed update is
// released.
func (m *Model) Update(ctx context.Context, restart bool) error {
	restart = restart || m.restart
	m.restart = false
	m.frameID++
	event := UpdateEvent{Frame: m.frameID, Restart: restart}
	emit(m.onUpdateStarted, event)
	m.animator.UpdateStarted()

	m.drawArea = m.settings.Padding.Apply(m.view.ControlSize())
	if m.drawArea.Degenerate() {
		released := m.tracker.CollectAll()
		// Interrupted tracks belong to released shapes.
		m.animator.UpdateFinished()
		m.frame = &data.Frame{ID: m.frameID}
		m.transform = nil
		m.resolver.Reset()
		m.logger.Debug("degenerate draw area", "area", m.drawArea, "released", released)
		event.Degenerate = true
		emit(m.onUpdateFinished, event)
		return nil
	}

	m.view.SetDrawArea(m.drawArea)
	visible := m.visible()
	bounds := make([]data.Bounds, len(visible))
	for i, v := range visible {
		bounds[i] = v.Bounds()
	}
	m.transform = m.kind.Transform(m.drawArea, bounds, m.settings)

	points, err := m.updateSeries(ctx, visible, restart)
	if err != nil {
		m.animator.Cancel()
		released := m.tracker.Collect(m.frame.Referenced())
		m.logger.Error("update aborted", "frame", m.frameID, "released", released, "err", err)
		event.Err = err
		emit(m.onUpdateFinished, event)
		return err
	}

	m.frame = &data.Frame{ID: m.frameID, Points: points}
	released := m.tracker.Collect(m.frame.Referenced())
	m.animator.UpdateFinished()
	m.resolver.Rebind(points)
	m.logger.Debug("update",
		"frame", m.frameID,
		"restart", restart,
		"series", len(visible),
		"points", len(points),
		"released", released,
	)
	emit(m.onUpdateFinished, event)
	return nil
}

type visibleSeries struct {
	Series
	index int
}

func (m *Model) visible() []visibleSeries {
	ret := make([]visibleSeries, 0, len(m.series))
	for i, s := range m.series {
		if s.IsVisible() {
			ret = append(ret, visibleSeries{Series: s, index: i})
		}
	}
	return ret
}

func (m *Model) updateSeries(ctx context.Context, visible []visibleSeries, restart bool) ([]*data.RenderedPoint, error) {
	requires := m.kind.Requires()
	var points []*data.RenderedPoint
	for layer, s := range visible {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(context.Cause(ctx), "update of frame %d cancelled", m.frameID)
		}
		if has := s.Capabilities(); !has.Has(requires) {
			return nil, &CapabilityMismatchError{Series: s.Name(), Kind: m.kind.Name(), Has: has, Requires: requires}
		}
		uctx := UpdateContext{
			Frame:       m.frameID,
			Restart:     restart,
			SeriesIndex: s.index,
			Layer:       layer,
			Layers:      len(visible),
			Animator:    m.animator,
		}
		p, err := m.runSeries(s.Series, uctx)
		if err != nil {
			return nil, errors.Wrapf(err, "updating series %q", s.Name())
		}
		points = append(points, p...)
	}
	return points, nil
}

func (m *Model) runSeries(s Series, ctx UpdateContext) ([]*data.RenderedPoint, error) {
	s.UpdateStarted(m.view)
	defer s.UpdateFinished(m.view)
	return s.UpdateView(m, ctx)
}

func (m *Model) invalidate() {
	if i, ok := m.view.(view.Invalidator); ok {
		i.Invalidate()
	}
}

func emit[T any](listeners []func(T), v T) {
	for _, f := range listeners {
		f(v)
	}
}
