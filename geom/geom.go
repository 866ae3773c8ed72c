// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// geom holds the pixel space value types shared by the chart packages. Pixel space has its origin in the top
// left, x grows to the right and y grows downwards.
package geom

import (
	"fmt"
	"math"

	"github.com/Lexer747/acci-chart/utils/numeric"
)

type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

func (p Point) IsFinite() bool {
	return numeric.IsFinite(p.X) && numeric.IsFinite(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

type Size struct {
	Width, Height float64
}

// Degenerate is true when nothing can be drawn into a region of this size.
func (s Size) Degenerate() bool {
	return s.Width <= 0 || s.Height <= 0
}

type Rect struct {
	Origin Point
	Size   Size
}

func (r Rect) Degenerate() bool { return r.Size.Degenerate() }

func (r Rect) Centre() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains is inclusive on every edge.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%s+%.2fx%.2f", r.Origin, r.Size.Width, r.Size.Height)
}

// Square returns the rect of side 2*radius centred on p.
func Square(p Point, radius float64) Rect {
	return Rect{
		Origin: Point{X: p.X - radius, Y: p.Y - radius},
		Size:   Size{Width: radius * 2, Height: radius * 2},
	}
}

func Radians(degrees float64) float64 { return degrees * math.Pi / 180 }
func Degrees(radians float64) float64 { return radians * 180 / math.Pi }

// NormaliseAngle folds degrees into [0, 360).
func NormaliseAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Polar returns the point radius away from centre at angle degrees. An angle of zero points along +y and the
// angle grows towards +x, which is the convention radial charts measure their rotation in.
func Polar(centre Point, radius, angle float64) Point {
	r := Radians(angle)
	return Point{
		X: centre.X + radius*math.Sin(r),
		Y: centre.Y + radius*math.Cos(r),
	}
}

// Angle is the inverse of [Polar], the angle is in [0, 360).
func Angle(centre, p Point) (angle, radius float64) {
	dx := p.X - centre.X
	dy := p.Y - centre.Y
	return NormaliseAngle(Degrees(math.Atan2(dx, dy))), math.Hypot(dx, dy)
}
