// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package resources_test

import (
	"testing"

	"github.com/Lexer747/acci-chart/chart/resources"
	"github.com/Lexer747/acci-chart/utils/th"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type shape struct {
	released int
}

func (s *shape) Release() { s.released++ }

func newTracker(t *testing.T) *resources.Tracker {
	t.Helper()
	return resources.NewTracker(th.QuietLogger(t, false))
}

func TestCollect(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	a, b, c := &shape{}, &shape{}, &shape{}
	ida := tr.Allocate(a)
	idb := tr.Allocate(b)
	idc := tr.Allocate(c)
	assert.Check(t, is.Equal(3, tr.Len()))

	released := tr.Collect(resources.NewSet(ida, idc))
	assert.Check(t, is.Equal(1, released))
	assert.Check(t, is.Equal(0, a.released))
	assert.Check(t, is.Equal(1, b.released))
	assert.Check(t, is.Equal(0, c.released))

	_, ok := tr.Get(idb)
	assert.Check(t, !ok)
	got, ok := tr.Get(ida)
	require.True(t, ok)
	assert.Check(t, got == resources.Resource(a))

	// Collecting again must not release twice.
	assert.Check(t, is.Equal(0, tr.Collect(resources.NewSet(ida, idb, idc))))
	assert.Check(t, is.Equal(1, b.released))

	assert.Check(t, is.Equal(2, tr.CollectAll()))
	assert.Check(t, is.Equal(1, a.released))
	assert.Check(t, is.Equal(1, c.released))
	assert.Check(t, is.Equal(0, tr.Len()))
}

func TestLiveIsSnapshot(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	id := tr.Allocate(&shape{})
	live := tr.Live()
	tr.CollectAll()
	assert.Check(t, live.Has(id))
	assert.Check(t, is.Len(tr.Live(), 0))
}

func TestAllocateUnique(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	seen := resources.NewSet()
	for range 500 {
		id := tr.Allocate(&shape{})
		assert.Assert(t, !seen.Has(id))
		seen.Add(id)
	}
	assert.Check(t, is.Equal(500, tr.Len()))
}

func TestAllocateNil(t *testing.T) {
	t.Parallel()
	tr := newTracker(t)
	assert.Check(t, is.Panics(func() { tr.Allocate(nil) }))
}
