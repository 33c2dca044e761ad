// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "fmt"

// CheckInvariantsForTesting verifies the head/tail/length invariants of
// the list and that the chain from head reaches tail in Len()-1 steps
// without revisiting any item.
func CheckInvariantsForTesting[T any](sl *Single[T]) error {
	if (sl.head == nil) != (sl.tail == nil) {
		return fmt.Errorf("head is nil: %v, tail is nil: %v", sl.head == nil, sl.tail == nil)
	}
	if (sl.head == nil) != (sl.len == 0) {
		return fmt.Errorf("head is nil: %v, but len is %v", sl.head == nil, sl.len)
	}
	if sl.tail == nil {
		return nil
	}
	if sl.tail.next != nil {
		return fmt.Errorf("tail has a successor")
	}
	seen := map[*singleItem[T]]bool{}
	steps := 0
	n := sl.head
	for ; n != sl.tail; n = n.next {
		if n == nil {
			return fmt.Errorf("tail is not reachable from head")
		}
		if seen[n] {
			return fmt.Errorf("cycle detected after %v steps", steps)
		}
		seen[n] = true
		steps++
	}
	if got, want := steps, sl.len-1; got != want {
		return fmt.Errorf("head to tail: got %v steps, want %v", got, want)
	}
	return nil
}
