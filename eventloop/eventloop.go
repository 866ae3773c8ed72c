// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// eventloop is the single logical thread a chart lives on. Pointer events, redraw triggers and timers are all
// posted here and run one at a time, which is why none of the chart packages take locks.
package eventloop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Timer is a pending single shot callback.
type Timer interface {
	// Stop prevents the callback from running, it returns false if the callback already ran or was already
	// stopped.
	Stop() bool
}

// Scheduler runs f once after d, on the same thread as every other callback of the scheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool

	wake   chan struct{}
	logger *log.Logger
}

var _ Scheduler = (*Loop)(nil)

func New(logger *log.Logger) *Loop {
	if logger == nil {
		logger = log.Default().WithPrefix("eventloop")
	}
	return &Loop{
		wake:   make(chan struct{}, 1),
		logger: logger,
	}
}

// Post queues f to run on the loop, it never blocks. Returns false once the loop has stopped running.
func (l *Loop) Post(f func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, f)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Do posts f and waits for it to have run, it must not be called from the loop itself.
func (l *Loop) Do(ctx context.Context, f func()) error {
	done := make(chan struct{})
	if !l.Post(func() { defer close(done); f() }) {
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// Run holds the calling goroutine running posted callbacks in order until ctx is done, the cause of which is
// returned. Anything still queued when ctx finishes is dropped.
func (l *Loop) Run(ctx context.Context) error {
	defer func() {
		l.mu.Lock()
		l.closed = true
		dropped := len(l.queue)
		l.queue = nil
		l.mu.Unlock()
		if dropped > 0 {
			l.logger.Debug("dropped queued callbacks", "count", dropped)
		}
	}()
	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-l.wake:
		}
		for {
			if ctx.Err() != nil {
				return context.Cause(ctx)
			}
			f, ok := l.next()
			if !ok {
				break
			}
			f()
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return nil, false
	}
	f := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return f, true
}

const (
	pending int32 = iota
	stopped
	fired
)

type timer struct {
	state atomic.Int32
	inner *time.Timer
}

// AfterFunc is [time.AfterFunc] but f is run on the loop. Stopping the returned timer is effective up until f
// actually starts, even when the underlying timer already expired and the callback is sitting in the queue.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &timer{}
	t.inner = time.AfterFunc(d, func() {
		l.Post(func() {
			if t.state.CompareAndSwap(pending, fired) {
				f()
			}
		})
	})
	return t
}

func (t *timer) Stop() bool {
	if !t.state.CompareAndSwap(pending, stopped) {
		return false
	}
	t.inner.Stop()
	return true
}
