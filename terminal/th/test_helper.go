// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th holds in memory stand-ins for a real terminal, for use in tests only.
package th

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Lexer747/acci-chart/terminal"
	"gotest.tools/v3/assert"
)

// NewTestTerminal is a 5x5 terminal, the returned func resizes it.
func NewTestTerminal() (
	*TestFile,
	*TestFile,
	*terminal.Terminal,
	func(newSize terminal.Size),
	error,
) {
	stdin := newTestFile("stdin")
	stdout := newTestFile("stdout")
	m := &sync.Mutex{}
	captured := &terminal.Size{Height: 5, Width: 5}
	callback := func() terminal.Size {
		m.Lock()
		defer m.Unlock()
		return *captured
	}
	t, err := terminal.NewTestTerminal(stdin, stdout, callback)
	setTermSize := func(newSize terminal.Size) {
		m.Lock()
		*captured = newSize
		m.Unlock()
		_ = t.UpdateCurrentTerminalSize()
	}
	return stdin, stdout, t, setTermSize, err
}

type TestFile struct {
	fileName   string
	m          *sync.Mutex
	buffer     []byte
	readIndex  atomic.Int64
	writeIndex atomic.Int64
}

func newTestFile(name string) *TestFile {
	return &TestFile{fileName: name, m: &sync.Mutex{}, buffer: []byte{}}
}

func (f *TestFile) Name() string { return f.fileName }

// ReadString blocks until something was written and returns everything not yet read.
func (f *TestFile) ReadString(t *testing.T) string {
	t.Helper()
	buffer := make([]byte, 4096)
	n, err := f.Read(buffer)
	assert.NilError(t, err)
	return string(buffer[:n])
}

// Read blocks until data appears, a short p is filled and the rest left for the next read.
func (f *TestFile) Read(p []byte) (n int, err error) {
	for f.readIndex.Load() == f.writeIndex.Load() {
		runtime.Gosched()
	}
	f.m.Lock()
	defer f.m.Unlock()
	r := int(f.readIndex.Load())
	w := int(f.writeIndex.Load())
	if r > w {
		panic("fix the test file impl, writer was behind reader")
	}
	n = copy(p, f.buffer[r:w])
	f.readIndex.Store(int64(r + n))
	return n, nil
}

func (f *TestFile) Write(p []byte) (n int, err error) {
	f.m.Lock()
	defer f.m.Unlock()
	// just grow infinitely
	f.buffer = append(f.buffer, p...)
	f.writeIndex.Store(int64(len(f.buffer)))
	return len(p), nil
}

// Contents is everything ever written, reads do not consume it.
func (f *TestFile) Contents() string {
	f.m.Lock()
	defer f.m.Unlock()
	return string(f.buffer)
}

func (f *TestFile) WriteCtrlC(t *testing.T) {
	t.Helper()
	_, err := f.Write([]byte("\x03"))
	assert.NilError(t, err)
}
