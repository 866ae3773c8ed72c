// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// terminalview draws a chart onto a terminal. A cell is one pixel wide and [CellAspect] pixels tall, which
// keeps circles round on a typical terminal font.
package terminalview

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/chart/view"
	"github.com/Lexer747/acci-chart/draw"
	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/gui"
	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	"github.com/Lexer747/acci-chart/terminal/typography"
	"github.com/charmbracelet/log"
)

const CellAspect = 2

// View is not safe for concurrent use, like the chart it must be driven from one event loop.
type View struct {
	term   *terminal.Terminal
	logger *log.Logger

	drawArea geom.Rect
	shapes   []shape
	nextSeq  int
	tooltip  *Tooltip

	batch         string
	seriesColours map[string]int
	seriesShapes  map[string]int

	cursor      geom.Point
	cursorShown bool
	status      string
	halted      bool

	buffer       *draw.Buffer
	out          *bytes.Buffer
	onInvalidate func()
}

var (
	_ view.View        = (*View)(nil)
	_ view.Batcher     = (*View)(nil)
	_ view.Invalidator = (*View)(nil)
)

func New(term *terminal.Terminal, logger *log.Logger) *View {
	if logger == nil {
		logger = log.Default().WithPrefix("terminalview")
	}
	v := &View{
		term:          term,
		logger:        logger,
		seriesColours: map[string]int{},
		seriesShapes:  map[string]int{},
		buffer:        draw.NewPaintBuffer(),
		out:           &bytes.Buffer{},
	}
	v.tooltip = &Tooltip{view: v}
	return v
}

// OnInvalidate is called whenever an animation moved a shape, hosts use it to schedule a [View.Paint].
func (v *View) OnInvalidate(f func()) { v.onInvalidate = f }

func (v *View) ControlSize() geom.Size {
	s := v.term.Size()
	return geom.Size{Width: float64(s.Width), Height: float64(s.Height * CellAspect)}
}

func (v *View) SetDrawArea(r geom.Rect) { v.drawArea = r }

func (v *View) DrawArea() geom.Rect { return v.drawArea }

func (v *View) DataTooltip() view.Tooltip { return v.tooltip }

func (v *View) BeginBatch(series string) {
	v.batch = series
	if _, ok := v.seriesColours[series]; !ok {
		v.seriesColours[series] = len(v.seriesColours)
	}
}

func (v *View) EndBatch(string) { v.batch = "" }

func (v *View) Invalidate() {
	if v.onInvalidate != nil {
		v.onInvalidate()
	}
}

// SetCursor shows where the pointer is, in pixels.
func (v *View) SetCursor(p geom.Point) {
	v.cursor = p
	v.cursorShown = true
}

// SetStatus is a line of text drawn at the bottom of the terminal.
func (v *View) SetStatus(s string) { v.status = s }

// SetHalted stops drawing the chart, while halted only the status line is painted.
func (v *View) SetHalted(halted bool) { v.halted = halted }

func (v *View) NewWedge() view.Wedge {
	w := &wedge{shapeBase: v.newShape(true)}
	v.shapes = append(v.shapes, w)
	return w
}

func (v *View) NewMarker() view.Marker {
	m := &marker{shapeBase: v.newShape(false)}
	v.shapes = append(v.shapes, m)
	return m
}

// Shapes is the number of shapes which have not been released.
func (v *View) Shapes() int { return len(v.shapes) }

// newShape colours a shape by the series being batched, perShape gives every shape of the series its own
// colour.
func (v *View) newShape(perShape bool) shapeBase {
	colour := v.seriesColours[v.batch]
	if perShape {
		colour += v.seriesShapes[v.batch]
		v.seriesShapes[v.batch]++
	}
	v.nextSeq++
	return shapeBase{view: v, seq: v.nextSeq, colour: colour}
}

func (v *View) release(s shape) {
	for i, other := range v.shapes {
		if other == s {
			v.shapes = append(v.shapes[:i], v.shapes[i+1:]...)
			return
		}
	}
}

// Paint draws the current state of every shape and the tooltip to the terminal.
func (v *View) Paint() error {
	if err := v.term.UpdateCurrentTerminalSize(); err != nil {
		return err
	}
	return v.term.Write(v.Render())
}

// Render is the bytes [View.Paint] would write, the returned slice is only valid until the next call.
func (v *View) Render() []byte {
	size := v.term.Size()
	v.buffer.Reset(draw.PaintOrder...)
	if !v.halted {
		v.paintChart(size)
	}
	if v.status != "" {
		v.buffer.Get(draw.StatusIndex).WriteString(ansi.CursorPosition(size.Height, 1) + ansi.Gray(v.status))
	}
	v.out.Reset()
	v.out.WriteString(ansi.Clear + ansi.Home)
	v.buffer.Paint(v.out)
	v.logger.Debug("rendered", "size", size, "shapes", len(v.shapes), "halted", v.halted, "bytes", v.out.Len())
	return v.out.Bytes()
}

func (v *View) paintChart(size terminal.Size) {
	v.rasterise(size)
	if v.cursorShown {
		if row, col, ok := toCell(v.cursor, size); ok {
			v.buffer.Get(draw.CursorIndex).WriteString(ansi.CursorPosition(row, col) + ansi.White(typography.Cross))
		}
	}
	if v.tooltip.visible {
		v.tooltip.box().Draw(size, v.buffer.Get(draw.TooltipIndex))
	}
}

// rasterise samples the centre of every cell against every shape, later shapes draw on top.
func (v *View) rasterise(size terminal.Size) {
	wedges := v.buffer.Get(draw.WedgeIndex)
	markers := v.buffer.Get(draw.MarkerIndex)
	for row := range size.Height {
		for col := range size.Width {
			p := geom.Point{X: float64(col) + .5, Y: (float64(row) + .5) * CellAspect}
			var top shape
			for _, s := range v.shapes {
				if s.covers(p) {
					top = s
				}
			}
			if top == nil {
				continue
			}
			buf := wedges
			if _, ok := top.(*marker); ok {
				buf = markers
			}
			buf.WriteString(ansi.CursorPosition(row+1, col+1) + top.glyph())
		}
	}
}

func toCell(p geom.Point, size terminal.Size) (row, col int, ok bool) {
	if !p.IsFinite() {
		return 0, 0, false
	}
	col = int(math.Floor(p.X)) + 1
	row = int(math.Floor(p.Y/CellAspect)) + 1
	return row, col, row >= 1 && row <= size.Height && col >= 1 && col <= size.Width
}

type shape interface {
	covers(geom.Point) bool
	glyph() string
}

type shapeBase struct {
	view     *View
	seq      int
	colour   int
	set      bool
	released bool
}

func (s *shapeBase) releaseFrom(self shape) {
	if s.released {
		return
	}
	s.released = true
	s.view.release(self)
}

type wedge struct {
	shapeBase
	area data.WedgeArea
}

func (w *wedge) Set(centre geom.Point, startingRotation float64, g data.PieGeometry) {
	w.set = true
	w.area = data.WedgeArea{
		Origin:           centre,
		StartingRotation: startingRotation,
		Rotation:         g.Rotation,
		Wedge:            g.Wedge,
		InnerRadius:      g.InnerRadius,
		OuterRadius:      g.OuterRadius,
	}
}

func (w *wedge) Release() { w.releaseFrom(w) }

func (w *wedge) covers(p geom.Point) bool { return w.set && w.area.Contains(p) }

func (w *wedge) glyph() string {
	return ansi.Colour(w.colour)(typography.Shades[w.colour%len(typography.Shades)])
}

type marker struct {
	shapeBase
	centre geom.Point
	radius float64
}

func (m *marker) Set(centre geom.Point, radius float64) {
	m.set = true
	m.centre, m.radius = centre, radius
}

func (m *marker) Release() { m.releaseFrom(m) }

// covers is true for the one cell the marker centre falls in, a marker is always visible however small.
func (m *marker) covers(p geom.Point) bool {
	return m.set &&
		math.Abs(p.X-m.centre.X) <= .5 &&
		math.Abs(p.Y-m.centre.Y) <= CellAspect*.5
}

func (m *marker) glyph() string { return ansi.Colour(m.colour)(typography.Bullet) }

// Tooltip is a box listing the hovered points.
type Tooltip struct {
	view    *View
	lines   []gui.Line
	anchor  geom.Point
	visible bool
}

var _ view.Tooltip = (*Tooltip)(nil)

func (t *Tooltip) ShowAndMeasure(points []*data.RenderedPoint, _ view.View) geom.Size {
	t.lines = t.lines[:0]
	for _, p := range points {
		t.lines = append(t.lines, gui.Text(describe(p)))
	}
	t.visible = true
	s := t.box().Size()
	return geom.Size{Width: float64(s.Width), Height: float64(s.Height * CellAspect)}
}

func (t *Tooltip) Move(to geom.Point, _ view.View) { t.anchor = to }

func (t *Tooltip) Hide(_ view.View) { t.visible = false }

func (t *Tooltip) Visible() bool { return t.visible }

func (t *Tooltip) Lines() []string {
	ret := make([]string, len(t.lines))
	for i, l := range t.lines {
		ret[i] = l.Text
	}
	return ret
}

func (t *Tooltip) box() gui.Box {
	row := int(math.Floor(t.anchor.Y/CellAspect)) + 1
	col := int(math.Floor(t.anchor.X)) + 1
	return gui.Box{Lines: t.lines, At: gui.Cell{Row: row, Column: col}, Style: gui.Rounded}
}

func describe(p *data.RenderedPoint) string {
	name := p.Key.String()
	if p.Label != "" {
		name = fmt.Sprintf("%s (%s)", name, p.Label)
	}
	return fmt.Sprintf("%s: %s", name, data.FormatValue(p.Value))
}
