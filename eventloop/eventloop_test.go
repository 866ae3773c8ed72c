// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package eventloop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Lexer747/acci-chart/eventloop"
	"github.com/Lexer747/acci-chart/utils/errors"
	"github.com/Lexer747/acci-chart/utils/th"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

var errTestDone = errors.New("test done")

func startLoop(t *testing.T) (*eventloop.Loop, context.CancelCauseFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancelCause(context.Background())
	l := eventloop.New(th.QuietLogger(t, false))
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	t.Cleanup(func() { cancel(errTestDone) })
	return l, cancel, done
}

func TestPostRunsInOrder(t *testing.T) {
	t.Parallel()
	l, _, _ := startLoop(t)
	var got []int
	for i := range 100 {
		assert.Assert(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() {}))
	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	assert.Check(t, is.DeepEqual(want, got))
}

func TestRunReturnsCause(t *testing.T) {
	t.Parallel()
	l, cancel, done := startLoop(t)
	cancel(errTestDone)
	select {
	case err := <-done:
		assert.Check(t, errors.Is(err, errTestDone))
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Check(t, !l.Post(func() {}))
	assert.Check(t, errors.Is(l.Do(context.Background(), func() {}), eventloop.ErrStopped))
}

func TestAfterFuncRunsOnLoop(t *testing.T) {
	t.Parallel()
	l, _, _ := startLoop(t)
	fired := make(chan struct{})
	var onLoop bool
	var mu sync.Mutex
	l.AfterFunc(time.Millisecond, func() {
		mu.Lock()
		onLoop = true
		mu.Unlock()
		close(fired)
	})
	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timer did not fire")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Check(t, onLoop)
}

func TestStopAfterExpiry(t *testing.T) {
	t.Parallel()
	l, _, _ := startLoop(t)
	ran := false
	block := make(chan struct{})
	// Hold the loop so the expired timer's callback is queued behind this one.
	l.Post(func() { <-block })
	timer := l.AfterFunc(0, func() { ran = true })
	time.Sleep(20 * time.Millisecond)
	assert.Check(t, timer.Stop())
	assert.Check(t, !timer.Stop())
	close(block)
	require.NoError(t, l.Do(context.Background(), func() {}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, l.Do(context.Background(), func() {}))
	assert.Check(t, !ran)
}

func TestStopAfterRun(t *testing.T) {
	t.Parallel()
	l, _, _ := startLoop(t)
	fired := make(chan struct{})
	timer := l.AfterFunc(0, func() { close(fired) })
	<-fired
	assert.Check(t, !timer.Stop())
}
