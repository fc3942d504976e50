// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package sorting contains an interruptable selection sort. If the
// deadline is missed, the partially sorted data is available as the
// partial result.
package sorting

import (
	"cmp"
	"slices"

	"vawter.tech/anytime"
)

// Selection sorts a slice in place, placing one element per step.
type Selection[T cmp.Ordered] struct {
	data []T
	idx  int
}

var _ anytime.Interruptable[[]int] = (*Selection[int])(nil)

// NewSelection returns a Selection that will sort the slice in place.
func NewSelection[T cmp.Ordered](data []T) *Selection[T] {
	return &Selection[T]{data: data}
}

// Step performs one pass of selection sort. It reports a copy of the
// data once the data is sorted.
func (s *Selection[T]) Step() anytime.Status[[]T] {
	if s.idx < len(s.data) {
		rest := s.data[s.idx:]
		least := s.idx + minIndex(rest)
		s.data[s.idx], s.data[least] = s.data[least], s.data[s.idx]
		s.idx++
	}
	if slices.IsSorted(s.data) {
		return anytime.Done(slices.Clone(s.data))
	}
	return anytime.Pending[[]T]()
}

// Snapshot returns a copy of the data, which is always available.
func (s *Selection[T]) Snapshot() ([]T, bool) {
	return slices.Clone(s.data), true
}

// SortedPrefix returns the length of the longest sorted prefix of the
// slice.
func SortedPrefix[T cmp.Ordered](data []T) int {
	if len(data) == 0 {
		return 0
	}
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[i-1]) {
			return i
		}
	}
	return len(data)
}

// minIndex returns the index of the first minimal element.
func minIndex[T cmp.Ordered](data []T) int {
	ret := 0
	for i := 1; i < len(data); i++ {
		if cmp.Less(data[i], data[ret]) {
			ret = i
		}
	}
	return ret
}
