// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package search provides reference linear and binary search
// implementations and a generator for the sorted inputs that binary
// search requires.
package search

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Linear scans s from front to back and returns the index of the first
// element equal to target. It returns false if target is not present.
// It visits every element in the worst case and is O(n).
func Linear[S ~[]E, E comparable](s S, target E) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}
	return -1, false
}

// Binary searches s, which must be sorted in ascending order, for target
// and returns its index. It returns false if target is not present. The
// result is undefined if s is not sorted. It halves the closed window
// [low, high] on every iteration and is O(log n).
func Binary[S ~[]E, E cmp.Ordered](s S, target E) (int, bool) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := cmp.Compare(s[mid], target); {
		case c == 0:
			return mid, true
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}

// GenerateSorted returns n distinct integers drawn from [0, 10*n) in
// ascending order.
func GenerateSorted(rnd *rand.Rand, n int) []int {
	if n <= 0 {
		return []int{}
	}
	// Floyd's algorithm for sampling n distinct values from the range.
	limit := 10 * n
	chosen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for j := limit - n; j < limit; j++ {
		v := rnd.IntN(j + 1)
		if _, ok := chosen[v]; ok {
			v = j
		}
		chosen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
