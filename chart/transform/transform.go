// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// transform maps data space values onto pixel space and back, one [Plane] at a time.
package transform

import (
	"fmt"
	"strconv"

	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/utils/numeric"
)

// Plane is an axis identity a [Transform] can map along.
type Plane int

const (
	X      Plane = 0
	Y      Plane = 1
	Angle  Plane = 2
	Radius Plane = 3
)

func (p Plane) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Angle:
		return "Angle"
	case Radius:
		return "Radius"
	default:
		return "Unknown Plane: " + strconv.Itoa(int(p))
	}
}

// Dimension is the index of this plane inside a size vector.
func (p Plane) Dimension() int {
	switch p {
	case X, Angle:
		return 0
	case Y, Radius:
		return 1
	default:
		return -1
	}
}

// Transform is the bidirectional data <-> pixel mapping of one chart kind. ToPixel and ToData are exact
// inverses (up to float rounding) for any value inside the plotted domain.
//
// The optional size vector is a per dimension scale hint used by normalised layouts: a data value v is mapped
// as v/size[p.Dimension()]. A missing, zero or non finite entry leaves the default mapping in place.
type Transform interface {
	Name() string
	// Supports reports whether this transform can map along p, callers branch on this instead of provoking an
	// [ErrUnsupported].
	Supports(p Plane) bool
	ToPixel(value float64, p Plane, sizeVector ...float64) (float64, error)
	ToData(pixel float64, p Plane, sizeVector ...float64) (float64, error)
}

var ErrUnsupported = errors.New("unsupported plane")

type UnsupportedError struct {
	Transform string
	Plane     Plane
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s transform does not support the %s plane", e.Transform, e.Plane)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// Axis is a linear mapping of [DataMin, DataMax] onto [PixelMin, PixelMax]. PixelMin may be larger than
// PixelMax, which flips the direction.
type Axis struct {
	DataMin, DataMax   float64
	PixelMin, PixelMax float64
}

// ToPixel of a zero width data domain is the pixel midpoint.
func (a Axis) ToPixel(v float64) float64 {
	if a.DataMin == a.DataMax {
		return (a.PixelMin + a.PixelMax) / 2
	}
	return numeric.NormalizeToRange(v, a.DataMin, a.DataMax, a.PixelMin, a.PixelMax)
}

// ToData of a degenerate axis (either range has zero width) is DataMin.
func (a Axis) ToData(px float64) float64 {
	if a.DataMin == a.DataMax || a.PixelMin == a.PixelMax {
		return a.DataMin
	}
	return numeric.NormalizeToRange(px, a.PixelMin, a.PixelMax, a.DataMin, a.DataMax)
}

func scaleFor(p Plane, sizeVector []float64) float64 {
	d := p.Dimension()
	if d < 0 || d >= len(sizeVector) {
		return 1
	}
	s := sizeVector[d]
	if s == 0 || !numeric.IsFinite(s) {
		return 1
	}
	return s
}
