// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package exercises contains small stack, queue and deque exercises
// built on the list and circular containers.
package exercises

import (
	"strings"

	"cloudeng.io/algolab/container/circular"
	"cloudeng.io/algolab/container/list"
)

var closers = map[rune]rune{')': '(', ']': '[', '}': '{'}

// Balanced reports whether the (), [] and {} brackets in expr are
// balanced and correctly nested. All other runes are ignored. A
// list.Single is used as the stack.
func Balanced(expr string) bool {
	stack := list.NewSingle[rune]()
	for _, r := range expr {
		switch r {
		case '(', '[', '{':
			stack.PushFront(r)
		case ')', ']', '}':
			if open, ok := stack.PopFront(); !ok || open != closers[r] {
				return false
			}
		}
	}
	return stack.Len() == 0
}

// PrintQueue returns tasks in the order in which a first-in, first-out
// print queue would process them.
func PrintQueue(tasks []string) []string {
	q := circular.NewDeque[string](len(tasks))
	for _, t := range tasks {
		q.PushBack(t)
	}
	processed := make([]string, 0, len(tasks))
	for {
		t, ok := q.PopFront()
		if !ok {
			break
		}
		processed = append(processed, t)
	}
	return processed
}

// IsPalindrome reports whether s reads the same forwards and backwards,
// ignoring case. Runes are compared pairwise from both ends of a deque.
func IsPalindrome(s string) bool {
	dq := circular.NewDeque[rune](len(s))
	for _, r := range strings.ToLower(s) {
		dq.PushBack(r)
	}
	for dq.Len() > 1 {
		front, _ := dq.PopFront()
		back, _ := dq.PopBack()
		if front != back {
			return false
		}
	}
	return true
}
