// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package anytime runs stepwise computations under a wall-clock
// deadline and recovers their partial results if the deadline is
// missed.
//
// An "anytime" algorithm can be stopped at any point and still produce
// a useful, if imperfect, answer: iterative refinement, approximate
// sorting, or incremental search. This package provides cooperative
// interruption for such algorithms. There is no preemption; a
// computation implements [Interruptable] and voluntarily returns
// control after each step.
//
// # Writing a computation
//
// An [Interruptable] performs one bounded unit of work per call to
// [Interruptable.Step], returning [Done] with its final output or
// [Pending] if more work remains. [Interruptable.Snapshot] returns the
// best output available so far without modifying the computation. The
// [Func] type adapts a pair of closures, and the [seq] sub-package
// adapts an [iter.Seq] of successively better results.
//
//	type countdown struct{ n int }
//
//	func (c *countdown) Step() anytime.Status[int] {
//	    if c.n--; c.n == 0 {
//	        return anytime.Done(0)
//	    }
//	    return anytime.Pending[int]()
//	}
//
//	func (c *countdown) Snapshot() (int, bool) { return c.n, true }
//
// # Running a computation
//
// An [Executor] steps the computation and checks the elapsed time after
// every pending step. A computation that finishes is always returned,
// regardless of how long it took. Otherwise, once the deadline has
// passed, the Executor returns a [*TimeoutError] that records how late
// the computation was and the snapshot taken after its final step.
//
//	out, err := anytime.Exec(c, 10*time.Millisecond)
//	if partial, ok := anytime.PartialFrom[int](err); ok {
//	    // Use the partial result.
//	}
//
// A deadline of zero still permits one step. An Executor is single-use;
// calling [Executor.Run] a second time returns [ErrExhausted] without
// stepping the computation again.
//
// The precision of the deadline is bounded by the duration of the
// slowest step. If the process is suspended, the reported lateness
// includes the time spent suspended.
//
// # Middleware
//
// [Middleware] functions wrap the execution of each step and are
// attached via [WithMiddleware]. The [pace] sub-package ships a
// rate-limiting Middleware.
//
// # Observability
//
// Every run creates a [runtime/trace.Task] named by [WithName], and
// each step is annotated as a trace region. A [logrus.FieldLogger] may
// be attached with [WithLogger] to report the outcome of each run, and
// [Executor.Info] returns a [RunInfo] summary suitable for diagnostics.
//
// # Testing
//
// The [clocktest] sub-package provides a deterministic [Clock] that can
// be installed with [WithClock].
package anytime
