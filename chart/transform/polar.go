// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package transform

// Polar maps the Angle and Radius planes of a radial chart.
//
// Angle: data in [0, Total] maps onto [0, 360] degrees, measured from the chart's starting rotation (which the
// caller adds, it is not part of the mapping). Radius: data in [RadiusMin, RadiusMax] maps onto
// [InnerRadius, OuterRadius] pixels.
type Polar struct {
	Total float64

	RadiusMin, RadiusMax     float64
	InnerRadius, OuterRadius float64
}

var _ Transform = (*Polar)(nil)

func (p *Polar) Name() string { return "polar" }

func (p *Polar) Supports(plane Plane) bool {
	return plane == Angle || plane == Radius
}

func (p *Polar) ToPixel(value float64, plane Plane, sizeVector ...float64) (float64, error) {
	v := value / scaleFor(plane, sizeVector)
	switch plane {
	case Angle:
		return p.angle().ToPixel(v), nil
	case Radius:
		return p.radius().ToPixel(v), nil
	default:
		return 0, &UnsupportedError{Transform: p.Name(), Plane: plane}
	}
}

func (p *Polar) ToData(pixel float64, plane Plane, sizeVector ...float64) (float64, error) {
	s := scaleFor(plane, sizeVector)
	switch plane {
	case Angle:
		return p.angle().ToData(pixel) * s, nil
	case Radius:
		return p.radius().ToData(pixel) * s, nil
	default:
		return 0, &UnsupportedError{Transform: p.Name(), Plane: plane}
	}
}

// angle of an empty chart maps everything to zero degrees so no wedge has any size.
func (p *Polar) angle() Axis {
	if p.Total == 0 {
		return Axis{PixelMin: 0, PixelMax: 0}
	}
	return Axis{DataMin: 0, DataMax: p.Total, PixelMin: 0, PixelMax: 360}
}

func (p *Polar) radius() Axis {
	return Axis{DataMin: p.RadiusMin, DataMax: p.RadiusMax, PixelMin: p.InnerRadius, PixelMax: p.OuterRadius}
}
