// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package typography

const (
	Bullet       = "•"
	HollowBullet = "◦"
	Diamond      = "⯁"
	Cross        = "┼"

	Vertical   = "│"
	Horizontal = "─"

	Block       = "█"
	LightBlock  = "░"
	MediumBlock = "▒"
	DarkBlock   = "▓"
)

// Shade operates on the [0,1] range, picking a denser block the closer g is to 1. Used to draw wedges so
// that neighbouring slices stay distinguishable without colour.
func Shade(g float64) string {
	switch {
	case g > 0.75:
		return Block
	case g > 0.5:
		return DarkBlock
	case g > 0.25:
		return MediumBlock
	default:
		return LightBlock
	}
}

// Shades is every [Shade] from light to dense.
var Shades = []string{LightBlock, MediumBlock, DarkBlock, Block}
