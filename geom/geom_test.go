// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package geom_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestPolarRoundTrip(t *testing.T) {
	t.Parallel()
	centre := geom.Point{X: 100, Y: 100}
	for _, angle := range []float64{0, 1, 45, 90, 179.5, 180, 270, 359} {
		t.Run(fmt.Sprintf("%.1f", angle), func(t *testing.T) {
			t.Parallel()
			p := geom.Polar(centre, 50, angle)
			a, r := geom.Angle(centre, p)
			th.AssertFloatEqual(t, angle, a, 6)
			th.AssertFloatEqual(t, 50, r, 6)
		})
	}
}

func TestPolarConvention(t *testing.T) {
	t.Parallel()
	centre := geom.Point{X: 100, Y: 100}
	th.AssertPointEqual(t, geom.Point{X: 100, Y: 150}, geom.Polar(centre, 50, 0), 6)
	th.AssertPointEqual(t, geom.Point{X: 150, Y: 100}, geom.Polar(centre, 50, 90), 6)
	th.AssertPointEqual(t, geom.Point{X: 100 + 50*math.Sqrt2/2, Y: 100 + 50*math.Sqrt2/2}, geom.Polar(centre, 50, 45), 6)
}

func TestRect(t *testing.T) {
	t.Parallel()
	r := geom.Rect{Origin: geom.Point{X: 10, Y: 20}, Size: geom.Size{Width: 30, Height: 40}}
	assert.Check(t, r.Contains(geom.Point{X: 10, Y: 20}))
	assert.Check(t, r.Contains(geom.Point{X: 40, Y: 60}))
	assert.Check(t, !r.Contains(geom.Point{X: 40.1, Y: 60}))
	assert.Check(t, !r.Contains(geom.Point{X: math.NaN(), Y: 30}))
	assert.Check(t, is.Equal(geom.Point{X: 25, Y: 40}, r.Centre()))
	assert.Check(t, !r.Degenerate())
	assert.Check(t, geom.Rect{Size: geom.Size{Width: 0, Height: 10}}.Degenerate())
	assert.Check(t, geom.Rect{Size: geom.Size{Width: 10, Height: -1}}.Degenerate())
}

func TestNormaliseAngle(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal(350.0, geom.NormaliseAngle(-10)))
	assert.Check(t, is.Equal(0.0, geom.NormaliseAngle(360)))
	assert.Check(t, is.Equal(30.0, geom.NormaliseAngle(750)))
}
