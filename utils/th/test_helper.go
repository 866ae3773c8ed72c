// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"io"
	"reflect"
	"testing"

	"github.com/Lexer747/acci-chart/geom"
	"github.com/Lexer747/acci-chart/utils/numeric"
	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func AssertFloatEqual(t *testing.T, expected float64, actual float64, sigFigs int, msgAndArgs ...interface{}) {
	t.Helper()
	a := numeric.RoundToNearestSigFig(actual, sigFigs)
	e := numeric.RoundToNearestSigFig(expected, sigFigs)
	assert.Check(t, is.Equal(e, a), msgAndArgs...)
}

func AssertPointEqual(t *testing.T, expected, actual geom.Point, sigFigs int) {
	t.Helper()
	AssertFloatEqual(t, expected.X, actual.X, sigFigs, "x of %v vs %v", expected, actual)
	AssertFloatEqual(t, expected.Y, actual.Y, sigFigs, "y of %v vs %v", expected, actual)
}

var AllowAllUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// ApproxFloats compares float64 fields with an absolute tolerance of 1e-9.
var ApproxFloats = cmpopts.EquateApprox(0, 1e-9)

// QuietLogger discards everything, set verbose to see debug output in a failing test.
func QuietLogger(t *testing.T, verbose bool) *log.Logger {
	t.Helper()
	if verbose {
		l := log.NewWithOptions(testWriter{t}, log.Options{Level: log.DebugLevel, Prefix: t.Name()})
		return l
	}
	return log.New(io.Discard)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(b []byte) (int, error) {
	w.t.Log(string(b))
	return len(b), nil
}
