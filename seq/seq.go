// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq adapts iterators into [anytime.Interruptable]
// computations.
//
// An anytime computation can often be written most naturally as an
// [iter.Seq] that yields successively better results. Each value pulled
// from the sequence is one step, and the most recently pulled value is
// the partial result.
package seq

import (
	"iter"

	"vawter.tech/anytime"
)

// Seq is an [anytime.Interruptable] backed by an [iter.Seq]. The Seq
// must be closed to release the underlying iterator; an
// [anytime.Executor] will do so automatically.
type Seq[T any] struct {
	last   T
	next   func() (T, bool)
	pulled bool
	stop   func()
}

var _ anytime.Interruptable[int] = (*Seq[int])(nil)

// FromSeq returns an adapter which pulls one value from the sequence
// per step. Once the sequence is exhausted, the last value it produced
// is the final result. If the sequence produces no values at all, the
// final result is the zero value.
func FromSeq[T any](items iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(items)
	return &Seq[T]{next: next, stop: stop}
}

// Refine returns a sequence that begins with the initial value and
// yields the result of repeatedly applying the refinement function. The
// sequence ends after yielding a value for which done returns true.
func Refine[T any](initial T, refine func(T) T, done func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := initial; ; value = refine(value) {
			if !yield(value) || done(value) {
				return
			}
		}
	}
}

// Close releases the underlying iterator. It is safe to call Close
// multiple times.
func (s *Seq[T]) Close() error {
	s.stop()
	return nil
}

// Snapshot implements [anytime.Interruptable] and returns the most
// recently pulled value.
func (s *Seq[T]) Snapshot() (T, bool) {
	return s.last, s.pulled
}

// Step implements [anytime.Interruptable] by pulling the next value.
func (s *Seq[T]) Step() anytime.Status[T] {
	value, ok := s.next()
	if !ok {
		return anytime.Done(s.last)
	}
	s.last = value
	s.pulled = true
	return anytime.Pending[T]()
}
