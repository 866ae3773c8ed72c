// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Lexer747/acci-chart/terminal"
	"github.com/Lexer747/acci-chart/terminal/ansi"
	"github.com/Lexer747/acci-chart/terminal/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestTerminalWrite(t *testing.T) {
	t.Parallel()
	_, stdout, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)
	ctx, cancelFunc := context.WithCancelCause(context.Background())
	defer cancelFunc(nil)
	_, err = term.StartRaw(ctx, cancelFunc)
	assert.NilError(t, err)
	const hello = "Hello world"
	assert.NilError(t, term.Print(hello))
	assert.Equal(t, ansi.HideCursor+hello, stdout.ReadString(t))
}

func TestTerminalReading(t *testing.T) {
	t.Parallel()
	stdin, _, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)
	timeout := testErr{}
	ctx, cancelFunc := context.WithTimeoutCause(context.Background(), time.Second, timeout)
	defer cancelFunc()
	inner, stop := context.WithCancelCause(ctx)
	defer stop(nil)
	restore, err := term.StartRaw(inner, stop)
	assert.NilError(t, err)
	defer restore()
	stdin.WriteCtrlC(t) // ctrl-c will cause the terminal to cancel

	// Wait till the ctrl-c or timeout cancel the context
	<-inner.Done()
	// if this is equal to our timeout error then the ctrl-c listener didn't work
	assert.Assert(t, !errors.Is(context.Cause(inner), timeout))
	assert.Assert(t, errors.Is(context.Cause(inner), terminal.UserControlCErr))
}

func TestTerminalListener(t *testing.T) {
	t.Parallel()
	stdin, stdout, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)
	ctx, cancelFunc := context.WithCancelCause(context.Background())
	defer cancelFunc(nil)
	lastRune := ' '
	testListener := terminal.Listener{
		Applicable: func(r rune) bool {
			lastRune = r
			return true
		},
		Action: func(r rune) error {
			assert.Equal(t, lastRune, r)
			err := term.Print(string(r))
			assert.NilError(t, err)
			return nil
		},
	}
	_, err = term.StartRaw(ctx, cancelFunc, testListener)
	assert.NilError(t, err)
	_ = stdout.ReadString(t)
	_, _ = stdin.Write([]byte("a"))
	a := stdout.ReadString(t)
	assert.Equal(t, "a", a)
	_, _ = stdin.Write([]byte("b"))
	b := stdout.ReadString(t)
	assert.Equal(t, "b", b)
	_, _ = stdin.Write([]byte("c"))
	c := stdout.ReadString(t)
	assert.Equal(t, "c", c)
}

func TestTerminalListenerError(t *testing.T) {
	t.Parallel()
	stdin, _, term, _, err := th.NewTestTerminal()
	assert.NilError(t, err)
	ctx, cancelFunc := context.WithCancelCause(context.Background())
	defer cancelFunc(nil)
	failure := testErr{}
	_, err = term.StartRaw(ctx, cancelFunc, terminal.Listener{
		Name:       "fails",
		Applicable: func(r rune) bool { return r == 'x' },
		Action:     func(rune) error { return failure },
	})
	assert.NilError(t, err)
	_, _ = stdin.Write([]byte("x"))
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("listener error did not stop the terminal")
	}
	assert.Check(t, errors.Is(context.Cause(ctx), failure))
	assert.Check(t, is.ErrorContains(context.Cause(ctx), `"fails"`))
}

func TestTerminalResize(t *testing.T) {
	t.Parallel()
	_, _, term, setSize, err := th.NewTestTerminal()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(terminal.Size{Height: 5, Width: 5}, term.Size()))
	setSize(terminal.Size{Height: 40, Width: 120})
	assert.Check(t, is.Equal(terminal.Size{Height: 40, Width: 120}, term.Size()))
}

func TestDecode(t *testing.T) {
	t.Parallel()
	got := terminal.Decode([]byte("a\033[A\033[Dé\033x"))
	assert.Check(t, is.DeepEqual([]rune{'a', terminal.ArrowUp, terminal.ArrowLeft, 'é', '\033', 'x'}, got))
}

func TestParseSize(t *testing.T) {
	t.Parallel()
	got, err := terminal.ParseSize("24x80")
	assert.NilError(t, err)
	assert.Check(t, is.Equal(terminal.Size{Height: 24, Width: 80}, got))
	assert.Check(t, is.Equal("24x80", got.String()))
	for _, bad := range []string{"", "24", "ax80", "24xb", "0x80", "-1x2"} {
		_, err := terminal.ParseSize(bad)
		assert.Check(t, err != nil, bad)
	}
}

type testErr struct{}

func (testErr) Error() string {
	return "testErr"
}
