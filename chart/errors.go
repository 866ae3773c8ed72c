// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package chart

import (
	"fmt"

	"github.com/Lexer747/acci-chart/chart/data"
	"github.com/Lexer747/acci-chart/utils/errors"
)

var ErrCapabilityMismatch = errors.New("series cannot be drawn by this chart kind")

// CapabilityMismatchError aborts an update, the named series lacks a capability the chart kind requires.
type CapabilityMismatchError struct {
	Series   string
	Kind     string
	Has      data.Capability
	Requires data.Capability
}

func (e *CapabilityMismatchError) Error() string {
	return fmt.Sprintf("series %q (%s) cannot be drawn on a %s chart which requires %s",
		e.Series, e.Has, e.Kind, e.Requires)
}

func (e *CapabilityMismatchError) Is(target error) bool {
	return target == ErrCapabilityMismatch
}
