// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular

import (
	"math/rand/v2"
	"runtime"
	"slices"
	"testing"
)

func invariants[T comparable](t *testing.T, d *Deque[T], want []T) {
	_, _, line, _ := runtime.Caller(1)
	if got, want := d.Len(), len(want); got != want {
		t.Errorf("line %v: len: got %v, want %v", line, got, want)
	}
	if got, want := d.Values(), want; !slices.Equal(got, want) {
		t.Errorf("line %v: got %v, want %v", line, got, want)
	}
	if d.Len() > d.Cap() {
		t.Errorf("line %v: len %v exceeds cap %v", line, d.Len(), d.Cap())
	}
}

func TestDeque(t *testing.T) {
	d := NewDeque[int](0)
	invariants(t, d, []int{})
	if v, ok := d.PopFront(); ok || v != 0 {
		t.Errorf("got %v, %v, want 0, false", v, ok)
	}
	if v, ok := d.PopBack(); ok || v != 0 {
		t.Errorf("got %v, %v, want 0, false", v, ok)
	}
	d.PushBack(1)
	d.PushBack(2)
	d.PushFront(0)
	invariants(t, d, []int{0, 1, 2})
	d.PushFront(-1)
	d.PushBack(3)
	invariants(t, d, []int{-1, 0, 1, 2, 3})

	if v, ok := d.PopFront(); !ok || v != -1 {
		t.Errorf("got %v, %v, want -1, true", v, ok)
	}
	if v, ok := d.PopBack(); !ok || v != 3 {
		t.Errorf("got %v, %v, want 3, true", v, ok)
	}
	invariants(t, d, []int{0, 1, 2})
}

func TestDequeWrapAround(t *testing.T) {
	// Chase our tail around a fixed size buffer.
	for size := 1; size <= 8; size++ {
		d := NewDeque[int](size)
		var model []int
		next := 0
		for range 50 {
			for d.Len() < size {
				d.PushBack(next)
				model = append(model, next)
				next++
			}
			if got, want := d.Cap(), size; got != want {
				t.Errorf("size %v: cap: got %v, want %v", size, got, want)
			}
			v, _ := d.PopFront()
			if got, want := v, model[0]; got != want {
				t.Errorf("size %v: got %v, want %v", size, got, want)
			}
			model = model[1:]
			invariants(t, d, model)
		}
	}
}

func TestDequeRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4)) // #nosec: G404
	d := NewDeque[int](2)
	var model []int
	for i := range 2000 {
		switch rnd.IntN(4) {
		case 0:
			d.PushBack(i)
			model = append(model, i)
		case 1:
			d.PushFront(i)
			model = slices.Insert(model, 0, i)
		case 2:
			v, ok := d.PopFront()
			if got, want := ok, len(model) > 0; got != want {
				t.Fatalf("op %v: got %v, want %v", i, got, want)
			}
			if ok {
				if got, want := v, model[0]; got != want {
					t.Fatalf("op %v: got %v, want %v", i, got, want)
				}
				model = model[1:]
			}
		case 3:
			v, ok := d.PopBack()
			if got, want := ok, len(model) > 0; got != want {
				t.Fatalf("op %v: got %v, want %v", i, got, want)
			}
			if ok {
				if got, want := v, model[len(model)-1]; got != want {
					t.Fatalf("op %v: got %v, want %v", i, got, want)
				}
				model = model[:len(model)-1]
			}
		}
	}
	invariants(t, d, model)
}

func TestDequeReleasesValues(t *testing.T) {
	d := NewDeque[*int](4)
	for i := range 4 {
		d.PushBack(&i)
	}
	d.PopFront()
	d.PopBack()
	nils := 0
	for _, p := range d.storage {
		if p == nil {
			nils++
		}
	}
	if got, want := nils, 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
