// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/Lexer747/acci-chart/utils/numeric"
	"github.com/Lexer747/acci-chart/utils/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	type Case struct {
		Min, Max       float64
		NewMin, NewMax float64
		Inputs         []float64
		Expected       []float64
	}
	cases := []Case{
		{
			Min:    float64(7_657_469 * time.Microsecond),
			Max:    float64(12_301_543 * time.Microsecond),
			NewMin: 2,
			NewMax: 24,
			Inputs: []float64{
				float64(7_706_944 * time.Microsecond),
				float64(7_750_314 * time.Microsecond),
				float64(7_789_195 * time.Microsecond),
				float64(12_301_543 * time.Microsecond),
				float64(7_657_469 * time.Microsecond),
			},
			Expected: []float64{
				2.23,
				2.44,
				2.62,
				24,
				2,
			},
		},
		{
			// inverted pixel ranges are how the y axis is drawn
			Min:      0,
			Max:      10,
			NewMin:   100,
			NewMax:   0,
			Inputs:   []float64{0, 2.5, 10},
			Expected: []float64{100, 75, 0},
		},
	}
	for i, test := range cases {
		t.Run(fmt.Sprintf("%d:%f->%f|%+v", i, test.Min, test.Max, test.Inputs), func(t *testing.T) {
			t.Parallel()
			for i, input := range test.Inputs {
				actual := numeric.NormalizeToRange(input, test.Min, test.Max, test.NewMin, test.NewMax)
				th.AssertFloatEqual(t, test.Expected[i], actual, 3)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()
	assert.Check(t, is.Equal(3, numeric.Clamp(7, 1, 3)))
	assert.Check(t, is.Equal(1.0, numeric.Clamp(-2.0, 1, 3)))
	assert.Check(t, is.Equal(2, numeric.Clamp(2, 1, 3)))
}

func TestIsFinite(t *testing.T) {
	t.Parallel()
	assert.Check(t, numeric.IsFinite(0))
	assert.Check(t, !numeric.IsFinite(math.NaN()))
	assert.Check(t, !numeric.IsFinite(math.Inf(-1)))
}

func TestAlmostEqual(t *testing.T) {
	t.Parallel()
	assert.Check(t, numeric.AlmostEqual(1e12, 1e12+1, 1e-9))
	assert.Check(t, numeric.AlmostEqual(0, 1e-12, 1e-9))
	assert.Check(t, !numeric.AlmostEqual(1, 1.1, 1e-9))
}
