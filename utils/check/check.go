// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// check holds the assertions used for invariants which can only be broken by a programming error inside this
// module, never by caller input.
package check

import "fmt"

func Check(shouldBeTrue bool, assertMsg string) {
	if !shouldBeTrue {
		panic("check failed: " + assertMsg)
	}
}

func Checkf(shouldBeTrue bool, format string, a ...any) {
	if !shouldBeTrue {
		panic("check failed: " + fmt.Sprintf(format, a...))
	}
}

// NotNil panics when v is nil, name identifies the offending value.
func NotNil[T any](v *T, name string) {
	if v == nil {
		panic("check failed: " + name + " must not be nil")
	}
}
