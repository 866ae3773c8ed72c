// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

import "strconv"

type ED int // Erase in Display
type EL int // Erase in Line

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	CursorToScreenEnd         ED = 0
	CursorToScreenBegin       ED = 1
	CursorScreen              ED = 2
	CursorScreenAndScrollBack ED = 3

	CursorToEndOfLine   EL = 0
	CursorToBeginOfLine EL = 1
	EntireLine          EL = 2

	R = CSI + "0m"

	HideCursor = CSI + "?25l"
	ShowCursor = CSI + "?25h"
)

var s = strconv.Itoa

var Clear = EraseInDisplay(CursorScreen)
var Home = CursorPosition(1, 1)

func CursorUp(n int) string                 { return CSI + s(n) + "A" }
func CursorDown(n int) string               { return CSI + s(n) + "B" }
func CursorForward(n int) string            { return CSI + s(n) + "C" }
func CursorBack(n int) string               { return CSI + s(n) + "D" }
func CursorNextLine(n int) string           { return CSI + s(n) + "E" }
func CursorPreviousLine(n int) string       { return CSI + s(n) + "F" }
func CursorHorizontalAbsolute(n int) string { return CSI + s(n) + "G" }

// CursorPosition is 1 indexed, row 1 column 1 is the top left of the terminal.
func CursorPosition(row, column int) string { return CSI + s(row) + ";" + s(column) + "H" }

func EraseInDisplay(n ED) string { return CSI + s(int(n)) + "J" }
func EraseInLine(n EL) string    { return CSI + s(int(n)) + "K" }

func Black(s string) string     { return CSI + "30m" + s + R }
func Gray(s string) string      { return CSI + "90m" + s + R }
func LightGray(s string) string { return CSI + "37m" + s + R }
func White(s string) string     { return CSI + "97m" + s + R }

func DarkRed(s string) string     { return CSI + "31m" + s + R }
func DarkGreen(s string) string   { return CSI + "32m" + s + R }
func DarkYellow(s string) string  { return CSI + "33m" + s + R }
func DarkBlue(s string) string    { return CSI + "34m" + s + R }
func DarkMagenta(s string) string { return CSI + "35m" + s + R }
func DarkCyan(s string) string    { return CSI + "36m" + s + R }

func Red(s string) string     { return CSI + "91m" + s + R }
func Green(s string) string   { return CSI + "92m" + s + R }
func Yellow(s string) string  { return CSI + "93m" + s + R }
func Blue(s string) string    { return CSI + "94m" + s + R }
func Magenta(s string) string { return CSI + "95m" + s + R }
func Cyan(s string) string    { return CSI + "96m" + s + R }

// Palette is the set of colours used to tell series or wedges apart, in order.
var Palette = []func(string) string{
	Blue, Yellow, Green, Magenta, Cyan, Red, DarkBlue, DarkYellow, DarkGreen, DarkMagenta, DarkCyan, DarkRed,
}

// Colour picks the i'th colour of the [Palette], wrapping around.
func Colour(i int) func(string) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}
