// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import (
	"cmp"
	"slices"
)

// Scanner recognises a prefix of its input, returning the number of items in
// that prefix.  A result of zero signals that the scanner did not match.
type Scanner[T any] func(items []T) uint

// Unit matches exactly the given sequence of items.
func Unit[T comparable](expected ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(expected) || !slices.Equal(items[:len(expected)], expected) {
			return 0
		}
		//
		return uint(len(expected))
	}
}

// Within matches a single item in the (inclusive) range lowest..highest.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) > 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		//
		return 0
	}
}

// Or tries each scanner in turn, returning the result of the first to match.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n != 0 {
				return n
			}
		}
		//
		return 0
	}
}

// Many repeatedly applies a scanner for as long as it matches.  Since a match
// of length zero cannot be distinguished from failure, this only matches when
// the scanner matched at least once.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var total uint
		//
		for total < uint(len(items)) {
			n := scanner(items[total:])
			//
			if n == 0 {
				break
			}
			//
			total += n
		}
		//
		return total
	}
}

// Until matches every item up to (but not including) the first occurrence of
// a given terminator, or the end of input.
func Until[T comparable](terminator T) Scanner[T] {
	return func(items []T) uint {
		if i := slices.Index(items, terminator); i >= 0 {
			return uint(i)
		}
		//
		return uint(len(items))
	}
}

// Eof matches only the end of input.  For this to be distinguishable from
// failure, it reports a match of length one.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}

// Sequence matches each scanner in turn, with each starting where the last
// finished.  Every scanner must match for the sequence to match.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var total uint
		//
		for _, scanner := range scanners {
			if total == uint(len(items)) {
				return 0
			}
			//
			n := scanner(items[total:])
			if n == 0 {
				return 0
			}
			//
			total += n
		}
		//
		return total
	}
}

// Optional matches a given scanner, followed by whatever the trailing scanner
// matches (which may be nothing at all).
func Optional[T any](scanner Scanner[T], trailing Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := scanner(items)
		//
		if n == 0 || n >= uint(len(items)) {
			return n
		}
		//
		return n + trailing(items[n:])
	}
}
