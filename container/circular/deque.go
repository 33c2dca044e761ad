// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides 'circular' data structures.
package circular

// Deque provides a double ended queue backed by a circular buffer that
// grows as needed. All operations are amortized O(1).
type Deque[T any] struct {
	storage []T
	used    int
	head    int // index of the first data element.
}

// NewDeque creates a new deque with the specified initial capacity.
func NewDeque[T any](size int) *Deque[T] {
	if size <= 0 {
		size = 1
	}
	return &Deque[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.used
}

// Cap returns the current capacity of the deque.
func (d *Deque[T]) Cap() int {
	return len(d.storage)
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.storage)
}

func (d *Deque[T]) grow() {
	size := 2 * len(d.storage)
	if size == 0 {
		size = 1
	}
	n := make([]T, size)
	if d.used > 0 {
		c := copy(n, d.storage[d.head:min(d.head+d.used, len(d.storage))])
		copy(n[c:], d.storage[:d.used-c])
	}
	d.head = 0
	d.storage = n
}

// PushBack appends v to the back of the deque.
func (d *Deque[T]) PushBack(v T) {
	if d.used == len(d.storage) {
		d.grow()
	}
	d.storage[d.index(d.used)] = v
	d.used++
}

// PushFront prepends v to the front of the deque.
func (d *Deque[T]) PushFront(v T) {
	if d.used == len(d.storage) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.storage)) % len(d.storage)
	d.storage[d.head] = v
	d.used++
}

// PopFront removes and returns the element at the front of the deque,
// it returns false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	v := d.storage[d.head]
	d.storage[d.head] = zero
	d.head = d.index(1)
	d.used--
	return v, true
}

// PopBack removes and returns the element at the back of the deque,
// it returns false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.used == 0 {
		return zero, false
	}
	i := d.index(d.used - 1)
	v := d.storage[i]
	d.storage[i] = zero
	d.used--
	return v, true
}

// Values returns the contents of the deque, front to back.
func (d *Deque[T]) Values() []T {
	o := make([]T, d.used)
	for i := range o {
		o[i] = d.storage[d.index(i)]
	}
	return o
}
