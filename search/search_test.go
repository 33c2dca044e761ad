// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package search_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"cloudeng.io/algolab/search"
)

func TestEmpty(t *testing.T) {
	for _, target := range []int{-1, 0, 1, 42} {
		if idx, ok := search.Linear([]int{}, target); ok || idx != -1 {
			t.Errorf("linear %v: got %v, %v, want -1, false", target, idx, ok)
		}
		if idx, ok := search.Binary([]int(nil), target); ok || idx != -1 {
			t.Errorf("binary %v: got %v, %v, want -1, false", target, idx, ok)
		}
	}
}

func TestBinary(t *testing.T) {
	input := []int{1, 3, 5, 7, 9}
	for _, tc := range []struct {
		target int
		idx    int
		found  bool
	}{
		{5, 2, true},
		{4, -1, false},
		{1, 0, true},
		{9, 4, true},
		{0, -1, false},
		{10, -1, false},
	} {
		idx, ok := search.Binary(input, tc.target)
		if got, want := ok, tc.found; got != want {
			t.Errorf("%v: got %v, want %v", tc.target, got, want)
		}
		if got, want := idx, tc.idx; got != want {
			t.Errorf("%v: got %v, want %v", tc.target, got, want)
		}
	}
}

func TestLinear(t *testing.T) {
	input := []string{"c", "a", "b", "a"}
	if idx, ok := search.Linear(input, "a"); !ok || idx != 1 {
		t.Errorf("got %v, %v, want 1, true", idx, ok)
	}
	if idx, ok := search.Linear(input, "z"); ok || idx != -1 {
		t.Errorf("got %v, %v, want -1, false", idx, ok)
	}
}

func TestAgreement(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11)) // #nosec: G404
	for _, n := range []int{1, 2, 3, 10, 257, 1000} {
		input := search.GenerateSorted(rnd, n)
		for _, target := range append(slices.Clone(input[:min(n, 20)]), -1, 10*n) {
			li, lok := search.Linear(input, target)
			bi, bok := search.Binary(input, target)
			if lok != bok {
				t.Errorf("n=%v, target=%v: linear %v, binary %v", n, target, lok, bok)
				continue
			}
			// Values are distinct so both must report the same index.
			if li != bi {
				t.Errorf("n=%v, target=%v: linear %v, binary %v", n, target, li, bi)
			}
		}
	}
}

func TestGenerateSorted(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1)) // #nosec: G404
	for _, n := range []int{-1, 0, 1, 5, 1000} {
		out := search.GenerateSorted(rnd, n)
		if got, want := len(out), max(n, 0); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if !slices.IsSorted(out) {
			t.Errorf("n=%v: not sorted", n)
		}
		if got, want := len(slices.Compact(slices.Clone(out))), len(out); got != want {
			t.Errorf("n=%v: duplicates: got %v, want %v", n, got, want)
		}
		for _, v := range out {
			if v < 0 || v >= 10*n {
				t.Errorf("n=%v: %v out of range", n, v)
			}
		}
	}
}

func ExampleBinary() {
	idx, ok := search.Binary([]int{1, 3, 5, 7, 9}, 5)
	fmt.Println(idx, ok)
	idx, ok = search.Binary([]int{1, 3, 5, 7, 9}, 4)
	fmt.Println(idx, ok)
	// Output:
	// 2 true
	// -1 false
}

func benchmarkSearch(b *testing.B, n int, fn func([]int, int) (int, bool)) {
	input := search.GenerateSorted(rand.New(rand.NewPCG(0, 0)), n) // #nosec: G404
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fn(input, -1)
	}
}

func BenchmarkLinear_1000(b *testing.B) {
	benchmarkSearch(b, 1000, search.Linear[[]int, int])
}

func BenchmarkLinear_100000(b *testing.B) {
	benchmarkSearch(b, 100000, search.Linear[[]int, int])
}

func BenchmarkBinary_1000(b *testing.B) {
	benchmarkSearch(b, 1000, search.Binary[[]int, int])
}

func BenchmarkBinary_100000(b *testing.B) {
	benchmarkSearch(b, 100000, search.Binary[[]int, int])
}
