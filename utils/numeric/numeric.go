// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NormalizeToRange linearly maps x from [oldMin, oldMax] onto [newMin, newMax]. Values outside the old range
// are extrapolated. The caller must ensure oldMin != oldMax.
func NormalizeToRange[T constraints.Float](x, oldMin, oldMax, newMin, newMax T) T {
	return (((x - oldMin) * (newMax - newMin)) / (oldMax - oldMin)) + newMin
}

func RoundToNearestSigFig(input float64, sigFig int) float64 {
	if input == 0 {
		return 0
	}
	power := float64(sigFig) - Exponent(input)
	magnitude := math.Pow(10.0, power)
	shifted := input * magnitude
	rounded := math.Round(shifted)
	return rounded / magnitude
}

func Exponent(input float64) float64 {
	return math.Ceil(math.Log10(math.Abs(input)))
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Clamp[T constraints.Ordered](x, low, high T) T {
	return min(max(x, low), high)
}

// IsFinite is false for NaN and both infinities.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AlmostEqual compares with a tolerance relative to the larger magnitude, falling back to an absolute
// tolerance near zero.
func AlmostEqual(a, b, tolerance float64) bool {
	diff := math.Abs(a - b)
	if diff <= tolerance {
		return true
	}
	return diff <= tolerance*max(math.Abs(a), math.Abs(b))
}
