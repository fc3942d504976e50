// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

import "fmt"

// Status is the result of a single call to [Interruptable.Step]. A
// Status is either done, carrying the final output of the computation,
// or pending. The zero value is pending.
type Status[T any] struct {
	done  bool
	value T
}

// Done returns a Status reporting that the computation has finished
// with the given output.
func Done[T any](value T) Status[T] {
	return Status[T]{done: true, value: value}
}

// Pending returns a Status reporting that the computation requires
// further steps.
func Pending[T any]() Status[T] {
	return Status[T]{}
}

// IsDone returns true if the computation has finished.
func (s Status[T]) IsDone() bool { return s.done }

// Value returns the final output of the computation, or false if the
// Status is pending.
func (s Status[T]) Value() (T, bool) {
	return s.value, s.done
}

// String is for debugging use only.
func (s Status[T]) String() string {
	if s.done {
		return fmt.Sprintf("done(%v)", s.value)
	}
	return "pending"
}
