// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Lexer747/acci-chart/terminal/ansi"
	"github.com/Lexer747/acci-chart/utils/errors"

	"golang.org/x/term"
)

type Size struct {
	Height int
	Width  int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Height, s.Width) }

// ParseSize reads the "HxW" format produced by [Size.String].
func ParseSize(s string) (Size, error) {
	h, w, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, errors.Errorf("invalid terminal size %q, expected HEIGHTxWIDTH", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid terminal height %q", h)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, errors.Wrapf(err, "invalid terminal width %q", w)
	}
	if height <= 0 || width <= 0 {
		return Size{}, errors.Errorf("invalid terminal size %q, both dimensions must be positive", s)
	}
	return Size{Height: height, Width: width}, nil
}

// UserControlCErr is the cause of the stop function passed to [Terminal.StartRaw] when the user presses
// ctrl+c.
var UserControlCErr = errors.New("user pressed ctrl+c")

type Terminal struct {
	mu        sync.Mutex
	size      Size
	sizeFn    func() (Size, error)
	listeners []Listener

	stdin  io.Reader
	stdout io.Writer
	inFd   int
	isTerm bool
}

func NewTerminal() (*Terminal, error) {
	t := &Terminal{
		size:   Size{Height: 20, Width: 80},
		stdin:  os.Stdin,
		stdout: os.Stdout,
		inFd:   int(os.Stdin.Fd()),
		isTerm: isRunningUnderTerminal(),
	}
	if t.isTerm {
		t.sizeFn = GetCurrentTerminalSize
		if err := t.UpdateCurrentTerminalSize(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// NewFixedSizeTerminal never queries the real terminal for its size, used for rendering frames to a file or
// pipe.
func NewFixedSizeTerminal(size Size) (*Terminal, error) {
	t, err := NewTerminal()
	if err != nil {
		return nil, err
	}
	t.size = size
	t.sizeFn = nil
	return t, nil
}

// NewTestTerminal is a terminal backed by arbitrary streams, sizeFn is queried on every
// [Terminal.UpdateCurrentTerminalSize].
func NewTestTerminal(stdin io.Reader, stdout io.Writer, sizeFn func() Size) (*Terminal, error) {
	t := &Terminal{
		stdin:  stdin,
		stdout: stdout,
		sizeFn: func() (Size, error) { return sizeFn(), nil },
	}
	return t, t.UpdateCurrentTerminalSize()
}

func (t *Terminal) Size() Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

func (t *Terminal) UpdateCurrentTerminalSize() error {
	if t.sizeFn == nil {
		return nil
	}
	size, err := t.sizeFn()
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.size = size
	t.mu.Unlock()
	return nil
}

type Listener struct {
	// Name is used for if a listener errors for easier identification, it may be omitted.
	Name string
	// Applicable is the applicability of this listen, i.e. for which input runes do you want this action to
	// be fired
	Applicable func(rune) bool
	// Action the callback which will be invoked when a user inputs the applicable rune.
	Action func(rune) error
}

// Runes used for the keys which arrive as escape sequences.
const (
	ArrowUp rune = 0xE000 + iota
	ArrowDown
	ArrowRight
	ArrowLeft
)

// StartRaw takes ownership of the stdin/stdout and control of the incoming context. It will asynchronously
// block on the users input and forward characters to the relevant listener. By default a `ctrl+C` listener is
// added which will call the [stop] function with [UserControlCErr] when detected, a listener which errors
// stops the context with that error.
//
// The returned func restores the terminal to the state it was in before, it must be called even if ctx is
// already done.
func (t *Terminal) StartRaw(ctx context.Context, stop context.CancelCauseFunc, listeners ...Listener) (func(), error) {
	restore := func() {}
	if t.isTerm {
		oldState, err := term.MakeRaw(t.inFd)
		if err != nil {
			return restore, errors.Wrap(err, "failed to set terminal to raw mode")
		}
		once := sync.Once{}
		restore = func() { once.Do(func() { _ = term.Restore(t.inFd, oldState) }) }
	}
	controlCListener := Listener{
		Name:       "ctrl+c",
		Applicable: func(r rune) bool { return r == '\u0003' },
		Action: func(rune) error {
			stop(UserControlCErr)
			return nil
		},
	}
	t.listeners = append(append([]Listener{controlCListener}, listeners...), t.listeners...)
	if err := t.Print(ansi.HideCursor); err != nil {
		return restore, err
	}
	go t.beginListening(ctx, stop)
	return func() {
		_ = t.Print(ansi.ShowCursor)
		restore()
	}, nil
}

func (t *Terminal) Print(s string) error {
	_, err := io.WriteString(t.stdout, s)
	return err
}

func (t *Terminal) Write(b []byte) error {
	_, err := t.stdout.Write(b)
	return err
}

func (t *Terminal) ClearScreen() error {
	return t.Print(ansi.Clear + ansi.Home)
}

func (t *Terminal) beginListening(ctx context.Context, stop context.CancelCauseFunc) {
	type read struct {
		b   []byte
		err error
	}
	inputChannel := make(chan read)
	// Create a go-routine which continuously reads from stdin
	go func() {
		defer close(inputChannel)
		for {
			buffer := make([]byte, 16)
			// This is blocking hence why the go-routine wrapper exists, we still only free ourself when the
			// outer context is done.
			n, err := t.stdin.Read(buffer)
			select {
			case <-ctx.Done():
				return
			case inputChannel <- read{b: buffer[:n], err: err}:
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputChannel:
			if !ok {
				return
			}
			if in.err != nil {
				if !errors.Is(in.err, io.EOF) {
					stop(errors.Wrap(in.err, "unexpected read failure in terminal"))
				}
				return
			}
			for _, r := range Decode(in.b) {
				if err := t.dispatch(r); err != nil {
					stop(err)
					return
				}
			}
		}
	}
}

func (t *Terminal) dispatch(r rune) error {
	for _, l := range t.listeners {
		if !l.Applicable(r) {
			continue
		}
		if err := l.Action(r); err != nil {
			return errors.Wrapf(err, "unexpected failure Action %q in terminal", l.Name)
		}
	}
	return nil
}

// Decode splits one read from the terminal into key presses, arrow key escape sequences are returned as the
// matching Arrow rune.
func Decode(b []byte) []rune {
	var ret []rune
	for len(b) > 0 {
		if len(b) >= 3 && b[0] == '\033' && b[1] == '[' {
			if r, ok := arrows[b[2]]; ok {
				ret = append(ret, r)
				b = b[3:]
				continue
			}
		}
		r, size := utf8.DecodeRune(b)
		ret = append(ret, r)
		b = b[size:]
	}
	return ret
}

var arrows = map[byte]rune{
	'A': ArrowUp,
	'B': ArrowDown,
	'C': ArrowRight,
	'D': ArrowLeft,
}

// GetCurrentTerminalSize gets the current terminal size or error if the program doesn't have a terminal
// attached (e.g. go tests).
func GetCurrentTerminalSize() (Size, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	return Size{Height: h, Width: w}, errors.Wrap(err, "failed to get terminal size")
}

func isRunningUnderTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
