// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils_test

import (
	"strconv"
	"testing"

	"github.com/Lexer747/acci-chart/utils/sliceutils"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestSliceUtils(t *testing.T) {
	t.Parallel()
	in := []int{1, 2, 3, 4}
	assert.Check(t, is.DeepEqual([]string{"1", "2", "3", "4"}, sliceutils.Map(in, strconv.Itoa)))
	assert.Check(t, is.DeepEqual([]int{2, 4}, sliceutils.Filter(in, func(i int) bool { return i%2 == 0 })))
	assert.Check(t, is.DeepEqual([]int{1, 4}, sliceutils.Remove(in, 2, 3)))
	assert.Check(t, is.DeepEqual([]int{1, 2, 3, 4}, in))
}
