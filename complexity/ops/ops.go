// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ops provides the operations whose complexity is measured by
// the algolab commands: linear and binary search over sorted arrays and
// front insertion/removal for linked lists, slices and deques.
package ops

import (
	"math/rand/v2"
	"slices"
	"sync"

	"cloudeng.io/algolab/complexity"
	"cloudeng.io/algolab/container/circular"
	"cloudeng.io/algolab/container/list"
	"cloudeng.io/algolab/search"
)

// Names of the supported operations.
const (
	LinearSearchName   = "linear-search"
	BinarySearchName   = "binary-search"
	ListPushFrontName  = "list-push-front"
	SlicePushFrontName = "slice-push-front"
	SlicePopFrontName  = "slice-pop-front"
	DequePopFrontName  = "deque-pop-front"
)

// Names returns the names of all of the supported operations.
func Names() []string {
	return []string{
		LinearSearchName,
		BinarySearchName,
		ListPushFrontName,
		SlicePushFrontName,
		SlicePopFrontName,
		DequePopFrontName,
	}
}

// ByName returns the named operation. in is used to generate the inputs
// for the search operations.
func ByName(name string, in *Inputs) (complexity.Operation, bool) {
	switch name {
	case LinearSearchName:
		return LinearSearch(in), true
	case BinarySearchName:
		return BinarySearch(in), true
	case ListPushFrontName:
		return ListPushFront(), true
	case SlicePushFrontName:
		return SlicePushFront(), true
	case SlicePopFrontName:
		return SlicePopFront(), true
	case DequePopFrontName:
		return DequePopFront(), true
	}
	return complexity.Operation{}, false
}

// Inputs generates the sorted arrays used by the search operations.
// A single Inputs may be shared by any number of operations, including
// operations that are being measured concurrently.
type Inputs struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewInputs returns an Inputs that draws from rnd. rnd must not be used
// directly by the caller once passed to NewInputs.
func NewInputs(rnd *rand.Rand) *Inputs {
	return &Inputs{rnd: rnd}
}

// Sorted returns a sorted array of n distinct values.
func (in *Inputs) Sorted(n int) []int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return search.GenerateSorted(in.rnd, n)
}

// LinearSearch searches a sorted array of size n for a value that is
// not present, ie. the worst case.
func LinearSearch(in *Inputs) complexity.Operation {
	return complexity.Operation{
		Name: LinearSearchName,
		Prepare: func(n int) (complexity.Trial, error) {
			input := in.Sorted(n)
			return complexity.Trial{
				Run: func() { search.Linear(input, -1) },
			}, nil
		},
	}
}

// BinarySearch searches a sorted array of size n for its middle element.
func BinarySearch(in *Inputs) complexity.Operation {
	return complexity.Operation{
		Name: BinarySearchName,
		Prepare: func(n int) (complexity.Trial, error) {
			input := in.Sorted(n)
			target := input[n/2]
			return complexity.Trial{
				Run: func() { search.Binary(input, target) },
			}, nil
		},
	}
}

// ListPushFront performs n PushFront operations on an initially empty
// list.Single.
func ListPushFront() complexity.Operation {
	return complexity.Operation{
		Name: ListPushFrontName,
		Prepare: func(n int) (complexity.Trial, error) {
			var sl *list.Single[int]
			return complexity.Trial{
				Reset: func() { sl = list.NewSingle[int]() },
				Run: func() {
					for i := range n {
						sl.PushFront(i)
					}
				},
			}, nil
		},
	}
}

// SlicePushFront performs n insertions at index 0 of an initially empty
// slice, each of which moves every existing element.
func SlicePushFront() complexity.Operation {
	return complexity.Operation{
		Name: SlicePushFrontName,
		Prepare: func(n int) (complexity.Trial, error) {
			var s []int
			return complexity.Trial{
				Reset: func() { s = nil },
				Run: func() {
					for i := range n {
						s = slices.Insert(s, 0, i)
					}
				},
			}, nil
		},
	}
}

// SlicePopFront removes all n elements from the front of a slice, one at a
// time, shifting the remaining elements down on every removal.
func SlicePopFront() complexity.Operation {
	return complexity.Operation{
		Name: SlicePopFrontName,
		Prepare: func(n int) (complexity.Trial, error) {
			initial := make([]int, n)
			for i := range initial {
				initial[i] = i
			}
			s := make([]int, n)
			return complexity.Trial{
				Reset: func() { s = append(s[:0], initial...) },
				Run: func() {
					for len(s) > 0 {
						s = slices.Delete(s, 0, 1)
					}
				},
			}, nil
		},
	}
}

// DequePopFront removes all n elements from the front of a
// circular.Deque.
func DequePopFront() complexity.Operation {
	return complexity.Operation{
		Name: DequePopFrontName,
		Prepare: func(n int) (complexity.Trial, error) {
			d := circular.NewDeque[int](n)
			return complexity.Trial{
				Reset: func() {
					for i := range n {
						d.PushBack(i)
					}
				},
				Run: func() {
					for {
						if _, ok := d.PopFront(); !ok {
							return
						}
					}
				},
			}, nil
		},
	}
}
