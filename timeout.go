// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

import (
	"errors"
	"fmt"
	"time"
)

// ErrDeadlineExceeded is matched by [errors.Is] for every
// [TimeoutError].
var ErrDeadlineExceeded = errors.New("anytime: deadline exceeded")

// ErrExhausted is returned by [Executor.Run] if the Executor has
// already produced a result.
var ErrExhausted = errors.New("anytime: executor has already run")

// A TimeoutError is returned by [Executor.Run] when the computation did
// not finish within its deadline. It records the amount by which the
// deadline was missed and the partial result of the computation, if one
// was available.
type TimeoutError[T any] struct {
	budget     time.Duration
	lateBy     time.Duration
	partial    T
	hasPartial bool
	steps      int
}

// Budget returns the deadline that was imposed on the computation.
func (e *TimeoutError[T]) Budget() time.Duration { return e.budget }

// Error implements error.
func (e *TimeoutError[T]) Error() string {
	return fmt.Sprintf("%v: missed %s deadline by %s after %d steps",
		ErrDeadlineExceeded, e.budget, e.lateBy, e.steps)
}

// Is allows the TimeoutError to match [ErrDeadlineExceeded].
func (e *TimeoutError[T]) Is(target error) bool {
	return target == ErrDeadlineExceeded
}

// LateBy returns the amount by which the deadline was missed. The value
// is never negative.
func (e *TimeoutError[T]) LateBy() time.Duration { return e.lateBy }

// PartialResult returns the snapshot taken immediately after the last
// step that was executed, or false if the computation had no partial
// output.
func (e *TimeoutError[T]) PartialResult() (T, bool) {
	return e.partial, e.hasPartial
}

// Steps returns the number of steps that were executed before the
// deadline was declared missed.
func (e *TimeoutError[T]) Steps() int { return e.steps }

// Timeout returns true. It follows the convention of [net.Error].
func (e *TimeoutError[T]) Timeout() bool { return true }

// PartialFrom extracts the partial result from an error chain that
// contains a [TimeoutError]. It returns false if there is no such error
// or if the computation had no partial output.
func PartialFrom[T any](err error) (T, bool) {
	var tErr *TimeoutError[T]
	if errors.As(err, &tErr) {
		return tErr.PartialResult()
	}
	var zero T
	return zero, false
}
