// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides a singly linked list with head and tail pointers.
// Insertion at either end and removal from the front are O(1); traversal
// is O(n).
package list

import "iter"

// Single provides a singly linked list. The zero value is an empty list.
// The chain of items is never cyclic: the tail's next pointer is always
// nil and head is nil iff tail is nil iff the list is empty.
type Single[T any] struct {
	head *singleItem[T]
	tail *singleItem[T]
	len  int
}

type singleItem[T any] struct {
	next *singleItem[T]
	T    T
}

// NewSingle returns a new, empty, list.
func NewSingle[T any]() *Single[T] {
	return &Single[T]{}
}

// Reset empties the list.
func (sl *Single[T]) Reset() {
	sl.head, sl.tail, sl.len = nil, nil, 0
}

// Len returns the number of items in the list.
func (sl *Single[T]) Len() int {
	return sl.len
}

// PushFront inserts val at the head of the list.
func (sl *Single[T]) PushFront(val T) {
	n := &singleItem[T]{T: val, next: sl.head}
	sl.head = n
	if sl.tail == nil {
		sl.tail = n
	}
	sl.len++
}

// PushBack appends val to the tail of the list. It does not traverse
// the list since the tail is tracked explicitly.
func (sl *Single[T]) PushBack(val T) {
	n := &singleItem[T]{T: val}
	if sl.tail == nil {
		sl.head = n
	} else {
		sl.tail.next = n
	}
	sl.tail = n
	sl.len++
}

// PopFront removes and returns the item at the head of the list. It
// returns false if the list is empty.
func (sl *Single[T]) PopFront() (T, bool) {
	n := sl.head
	if n == nil {
		var zero T
		return zero, false
	}
	sl.head = n.next
	if sl.head == nil {
		sl.tail = nil
	}
	sl.len--
	val := n.T
	*n = singleItem[T]{} // release the payload and the link.
	return val, true
}

// Head returns the item at the head of the list without removing it.
func (sl *Single[T]) Head() (T, bool) {
	if sl.head == nil {
		var zero T
		return zero, false
	}
	return sl.head.T, true
}

// Tail returns the item at the tail of the list without removing it.
func (sl *Single[T]) Tail() (T, bool) {
	if sl.tail == nil {
		var zero T
		return zero, false
	}
	return sl.tail.T, true
}

// Forward returns an iterator over the list from head to tail. The list
// must not be modified during iteration.
func (sl *Single[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := sl.head; n != nil; n = n.next {
			if !yield(n.T) {
				return
			}
		}
	}
}

// Values returns all of the items in the list, from head to tail.
func (sl *Single[T]) Values() []T {
	res := make([]T, 0, sl.len)
	for n := sl.head; n != nil; n = n.next {
		res = append(res, n.T)
	}
	return res
}
