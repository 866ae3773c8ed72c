// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package transform

import "github.com/Lexer747/acci-chart/geom"

// Cartesian maps the X and Y planes linearly onto a draw area.
type Cartesian struct {
	XAxis Axis
	YAxis Axis
}

var _ Transform = (*Cartesian)(nil)

// NewCartesian fits the data bounds into area, larger y values are drawn higher up the screen.
func NewCartesian(area geom.Rect, xMin, xMax, yMin, yMax float64) *Cartesian {
	return &Cartesian{
		XAxis: Axis{
			DataMin:  xMin,
			DataMax:  xMax,
			PixelMin: area.Origin.X,
			PixelMax: area.Origin.X + area.Size.Width,
		},
		YAxis: Axis{
			DataMin:  yMin,
			DataMax:  yMax,
			PixelMin: area.Origin.Y + area.Size.Height,
			PixelMax: area.Origin.Y,
		},
	}
}

func (c *Cartesian) Name() string { return "cartesian" }

func (c *Cartesian) Supports(p Plane) bool {
	_, ok := c.axis(p)
	return ok
}

func (c *Cartesian) ToPixel(value float64, p Plane, sizeVector ...float64) (float64, error) {
	a, ok := c.axis(p)
	if !ok {
		return 0, &UnsupportedError{Transform: c.Name(), Plane: p}
	}
	return a.ToPixel(value / scaleFor(p, sizeVector)), nil
}

func (c *Cartesian) ToData(pixel float64, p Plane, sizeVector ...float64) (float64, error) {
	a, ok := c.axis(p)
	if !ok {
		return 0, &UnsupportedError{Transform: c.Name(), Plane: p}
	}
	return a.ToData(pixel) * scaleFor(p, sizeVector), nil
}

func (c *Cartesian) axis(p Plane) (Axis, bool) {
	switch p {
	case X:
		return c.XAxis, true
	case Y:
		return c.YAxis, true
	default:
		return Axis{}, false
	}
}
