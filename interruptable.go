// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

// An Interruptable is a computation that has been broken into discrete
// steps. An Interruptable cannot be preempted; it must voluntarily
// return control to the [Executor] after each step.
//
// Implementations are not required to be safe for concurrent use. An
// [Executor] will call the methods of an Interruptable from a single
// goroutine.
type Interruptable[T any] interface {
	// Step performs one bounded unit of work and reports whether the
	// computation has finished. Each call should make progress toward
	// completion. The precision of any deadline is limited by the
	// duration of the slowest Step.
	//
	// An [Executor] will not call Step again once it has returned a
	// done [Status]. A Step that panics terminates the run; the panic
	// is not recovered.
	Step() Status[T]

	// Snapshot returns the best output available so far, or false if
	// no meaningful output exists yet. Snapshot may be called at any
	// time, including before the first Step, and must not modify the
	// state of the computation.
	Snapshot() (T, bool)
}

// Func adapts a pair of functions to the [Interruptable] interface. A
// nil SnapshotFn reports that no partial output is available. A Func
// value must have a non-nil StepFn.
type Func[T any] struct {
	StepFn     func() Status[T]
	SnapshotFn func() (T, bool)
}

var _ Interruptable[any] = Func[any]{}

// Step implements [Interruptable].
func (f Func[T]) Step() Status[T] { return f.StepFn() }

// Snapshot implements [Interruptable].
func (f Func[T]) Snapshot() (T, bool) {
	if f.SnapshotFn == nil {
		var zero T
		return zero, false
	}
	return f.SnapshotFn()
}
