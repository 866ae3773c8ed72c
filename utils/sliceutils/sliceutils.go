// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package sliceutils

func Map[IN, OUT any, S ~[]IN](slice S, f func(IN) OUT) []OUT {
	ret := make([]OUT, len(slice))
	for i, in := range slice {
		ret[i] = f(in)
	}
	return ret
}

// Filter returns a new slice of the elements for which keep is true, order is preserved.
func Filter[T any, S ~[]T](slice S, keep func(T) bool) S {
	ret := make(S, 0, len(slice))
	for _, in := range slice {
		if keep(in) {
			ret = append(ret, in)
		}
	}
	return ret
}

// Remove returns a copy of slice without any of the toRemove values.
func Remove[T comparable, S ~[]T](slice S, toRemove ...T) S {
	return Filter(slice, func(t T) bool {
		for _, r := range toRemove {
			if r == t {
				return false
			}
		}
		return true
	})
}
